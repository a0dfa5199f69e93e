package services

import (
	"sort"

	"finn-budget/internal/models"

	"github.com/shopspring/decimal"
)

const (
	DefaultTopMerchantLimit = 10

	dailyVisitThreshold  = 20
	weeklyVisitThreshold = 4
	minTrendSamples      = 4
	trendUpperRatio      = 1.1
	trendLowerRatio      = 0.9
)

type merchantAggregator struct{}

type merchantAccumulator struct {
	name         string
	category     string
	total        decimal.Decimal
	count        int
	lastVisit    models.Transaction
	transactions []models.Transaction
}

// NewMerchantAggregator creates a new MerchantAggregatorInterface instance
func NewMerchantAggregator() MerchantAggregatorInterface {
	return &merchantAggregator{}
}

// Aggregate groups transactions by merchant key and returns every merchant
// ordered by total spend, highest first
func (a *merchantAggregator) Aggregate(transactions []models.Transaction) []models.MerchantPattern {
	groups := groupByMerchant(transactions)

	patterns := make([]models.MerchantPattern, 0, len(groups))
	for _, group := range groups {
		patterns = append(patterns, group.toPattern())
	}

	sort.SliceStable(patterns, func(i, j int) bool {
		if !patterns[i].TotalSpent.Equal(patterns[j].TotalSpent) {
			return patterns[i].TotalSpent.GreaterThan(patterns[j].TotalSpent)
		}
		return patterns[i].Name < patterns[j].Name
	})

	return patterns
}

// TopMerchants returns at most limit merchants by total spend
func (a *merchantAggregator) TopMerchants(transactions []models.Transaction, limit int) []models.MerchantPattern {
	patterns := a.Aggregate(transactions)
	if limit > 0 && len(patterns) > limit {
		patterns = patterns[:limit]
	}
	return patterns
}

// groupByMerchant preserves first-seen order so category selection is stable
func groupByMerchant(transactions []models.Transaction) []*merchantAccumulator {
	index := make(map[string]*merchantAccumulator)
	ordered := make([]*merchantAccumulator, 0)

	for _, txn := range transactions {
		key := txn.MerchantKey()
		acc, exists := index[key]
		if !exists {
			acc = &merchantAccumulator{
				name:     key,
				category: txn.Category,
				total:    decimal.Zero,
			}
			index[key] = acc
			ordered = append(ordered, acc)
		}

		acc.total = acc.total.Add(txn.Amount)
		acc.count++
		if acc.count == 1 || txn.Date.After(acc.lastVisit.Date) {
			acc.lastVisit = txn
		}
		acc.transactions = append(acc.transactions, txn)
	}

	return ordered
}

func (acc *merchantAccumulator) toPattern() models.MerchantPattern {
	return models.MerchantPattern{
		Name:             acc.name,
		Category:         acc.category,
		AverageAmount:    acc.total.Div(decimal.NewFromInt(int64(acc.count))).Round(2),
		Frequency:        classifyVisitFrequency(acc.count),
		TotalSpent:       acc.total,
		TransactionCount: acc.count,
		LastVisit:        acc.lastVisit.Date,
		Trend:            merchantTrend(acc.transactions),
	}
}

// classifyVisitFrequency uses absolute counts over the whole observed period
func classifyVisitFrequency(count int) string {
	switch {
	case count >= dailyVisitThreshold:
		return models.MerchantFrequencyDaily
	case count >= weeklyVisitThreshold:
		return models.MerchantFrequencyWeekly
	default:
		return models.MerchantFrequencyMonthly
	}
}

// merchantTrend compares the mean spend of the earlier half of visits with the later half
func merchantTrend(transactions []models.Transaction) string {
	if len(transactions) < minTrendSamples {
		return models.TrendStable
	}

	sorted := sortedByDate(transactions)
	half := len(sorted) / 2
	return compareMeans(meanAmount(sorted[:half]), meanAmount(sorted[len(sorted)-half:]))
}

func compareMeans(earlier, later float64) string {
	switch {
	case later > earlier*trendUpperRatio:
		return models.TrendIncreasing
	case later < earlier*trendLowerRatio:
		return models.TrendDecreasing
	default:
		return models.TrendStable
	}
}

func sortedByDate(transactions []models.Transaction) []models.Transaction {
	sorted := models.CloneTransactions(transactions)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})
	return sorted
}

func meanAmount(transactions []models.Transaction) float64 {
	if len(transactions) == 0 {
		return 0
	}
	var sum float64
	for i := range transactions {
		sum += transactions[i].AmountFloat()
	}
	return sum / float64(len(transactions))
}

func sumAmounts(transactions []models.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, txn := range transactions {
		total = total.Add(txn.Amount)
	}
	return total
}
