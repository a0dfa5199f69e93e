package services

import (
	"fmt"
	"sort"
	"time"

	"finn-budget/internal/models"

	"github.com/shopspring/decimal"
)

const (
	minTrendTransactions  = 30
	seasonalCategoryLimit = 3
)

var seasonalThreshold = decimal.NewFromFloat(1.2)

type monthKey struct {
	year  int
	month time.Month
}

type monthBucket struct {
	key        monthKey
	total      decimal.Decimal
	categories map[string]decimal.Decimal
}

type seasonalAnalyzer struct{}

// NewSeasonalAnalyzer creates a new SeasonalAnalyzerInterface instance
func NewSeasonalAnalyzer() SeasonalAnalyzerInterface {
	return &seasonalAnalyzer{}
}

// SeasonalPatterns returns the calendar months whose spend exceeds 1.2x the
// mean monthly total, in chronological order
func (a *seasonalAnalyzer) SeasonalPatterns(transactions []models.Transaction) []models.SeasonalPattern {
	patterns := make([]models.SeasonalPattern, 0)

	buckets := bucketByMonth(transactions)
	if len(buckets) == 0 {
		return patterns
	}

	sum := decimal.Zero
	for _, bucket := range buckets {
		sum = sum.Add(bucket.total)
	}
	mean := sum.Div(decimal.NewFromInt(int64(len(buckets))))
	threshold := mean.Mul(seasonalThreshold)

	for _, bucket := range buckets {
		if !bucket.total.GreaterThan(threshold) {
			continue
		}
		patterns = append(patterns, models.SeasonalPattern{
			Year:         bucket.key.year,
			Month:        bucket.key.month,
			Period:       fmt.Sprintf("%s %d", bucket.key.month, bucket.key.year),
			AverageSpend: bucket.total.Round(2),
			Variance:     bucket.total.Sub(mean).Round(2),
			Categories:   topCategories(bucket.categories, seasonalCategoryLimit),
		})
	}

	return patterns
}

// SpendingTrend compares the mean amount of the first third of transactions
// against the last third. Fewer than 30 transactions is always stable.
func (a *seasonalAnalyzer) SpendingTrend(transactions []models.Transaction) string {
	if len(transactions) < minTrendTransactions {
		return models.TrendStable
	}

	sorted := sortedByDate(transactions)
	third := len(sorted) / 3
	return compareMeans(meanAmount(sorted[:third]), meanAmount(sorted[len(sorted)-third:]))
}

func bucketByMonth(transactions []models.Transaction) []*monthBucket {
	index := make(map[monthKey]*monthBucket)
	for _, txn := range transactions {
		key := monthKey{year: txn.Date.Year(), month: txn.Date.Month()}
		bucket, ok := index[key]
		if !ok {
			bucket = &monthBucket{key: key, categories: make(map[string]decimal.Decimal)}
			index[key] = bucket
		}
		bucket.total = bucket.total.Add(txn.Amount)
		bucket.categories[txn.Category] = bucket.categories[txn.Category].Add(txn.Amount)
	}

	buckets := make([]*monthBucket, 0, len(index))
	for _, bucket := range index {
		buckets = append(buckets, bucket)
	}
	sort.Slice(buckets, func(i, j int) bool {
		if buckets[i].key.year != buckets[j].key.year {
			return buckets[i].key.year < buckets[j].key.year
		}
		return buckets[i].key.month < buckets[j].key.month
	})
	return buckets
}

func topCategories(totals map[string]decimal.Decimal, limit int) []string {
	names := make([]string, 0, len(totals))
	for name := range totals {
		if name == "" {
			continue
		}
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if !totals[names[i]].Equal(totals[names[j]]) {
			return totals[names[i]].GreaterThan(totals[names[j]])
		}
		return names[i] < names[j]
	})
	if len(names) > limit {
		names = names[:limit]
	}
	return names
}
