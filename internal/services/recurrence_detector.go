package services

import (
	"sort"
	"time"

	"finn-budget/internal/models"

	"github.com/shopspring/decimal"
)

const (
	minRecurringOccurrences = 2
	optimizableAmount       = 50
)

var maxRecurringSpread = decimal.NewFromFloat(0.2)

// frequencyBuckets must stay in ascending order; the first bucket whose
// limit covers the mean gap wins.
var frequencyBuckets = []struct {
	maxGapDays float64
	frequency  string
}{
	{7, models.FrequencyWeekly},
	{14, models.FrequencyBiweekly},
	{31, models.FrequencyMonthly},
	{92, models.FrequencyQuarterly},
	{365, models.FrequencyAnnual},
}

type recurrenceDetector struct{}

// NewRecurrenceDetector creates a new RecurrenceDetectorInterface instance
func NewRecurrenceDetector() RecurrenceDetectorInterface {
	return &recurrenceDetector{}
}

// Detect returns every merchant group whose amounts are stable and whose
// visits fall on a regular interval
func (d *recurrenceDetector) Detect(transactions []models.Transaction) []models.RecurringExpense {
	recurring := make([]models.RecurringExpense, 0)

	for _, group := range groupByMerchant(transactions) {
		expense, ok := d.evaluateGroup(group)
		if !ok {
			continue
		}
		recurring = append(recurring, expense)
	}

	sort.SliceStable(recurring, func(i, j int) bool {
		if !recurring[i].Amount.Equal(recurring[j].Amount) {
			return recurring[i].Amount.GreaterThan(recurring[j].Amount)
		}
		return recurring[i].Name < recurring[j].Name
	})

	return recurring
}

// Annotate returns a copy of the transactions with IsRecurring set on every
// member of a recurring group
func (d *recurrenceDetector) Annotate(transactions []models.Transaction) []models.Transaction {
	recurringKeys := make(map[string]bool)
	for _, group := range groupByMerchant(transactions) {
		if _, ok := d.evaluateGroup(group); ok {
			recurringKeys[group.name] = true
		}
	}

	annotated := models.CloneTransactions(transactions)
	for i := range annotated {
		annotated[i].IsRecurring = recurringKeys[annotated[i].MerchantKey()]
	}
	return annotated
}

func (d *recurrenceDetector) evaluateGroup(group *merchantAccumulator) (models.RecurringExpense, bool) {
	if group.count < minRecurringOccurrences {
		return models.RecurringExpense{}, false
	}

	mean := group.total.Div(decimal.NewFromInt(int64(group.count)))
	if !hasStableAmounts(group.transactions, mean) {
		return models.RecurringExpense{}, false
	}

	sorted := sortedByDate(group.transactions)
	frequency, ok := ClassifyRecurrenceFrequency(meanGapDays(sorted))
	if !ok {
		return models.RecurringExpense{}, false
	}

	essential := models.IsEssentialCategory(group.category)
	amount := mean.Round(2)

	return models.RecurringExpense{
		Name:        group.name,
		Category:    group.category,
		Amount:      amount,
		Frequency:   frequency,
		NextDueDate: NextDueDate(sorted[len(sorted)-1].Day(), frequency),
		IsEssential: essential,
		CanOptimize: amount.GreaterThan(decimal.NewFromInt(optimizableAmount)) && !essential,
		Occurrences: group.count,
	}, true
}

// hasStableAmounts checks max - min < 20% of the mean
func hasStableAmounts(transactions []models.Transaction, mean decimal.Decimal) bool {
	minAmount, maxAmount := transactions[0].Amount, transactions[0].Amount
	for _, txn := range transactions[1:] {
		minAmount = decimal.Min(minAmount, txn.Amount)
		maxAmount = decimal.Max(maxAmount, txn.Amount)
	}
	return maxAmount.Sub(minAmount).LessThan(mean.Mul(maxRecurringSpread))
}

func meanGapDays(sorted []models.Transaction) float64 {
	if len(sorted) < 2 {
		return 0
	}

	total := 0
	for i := 1; i < len(sorted); i++ {
		total += models.DaysBetween(sorted[i-1].Date, sorted[i].Date)
	}
	return float64(total) / float64(len(sorted)-1)
}

// ClassifyRecurrenceFrequency maps a mean interval in days to a frequency.
// Intervals longer than a year are not recurring.
func ClassifyRecurrenceFrequency(meanGap float64) (string, bool) {
	for _, bucket := range frequencyBuckets {
		if meanGap <= bucket.maxGapDays {
			return bucket.frequency, true
		}
	}
	return "", false
}

// NextDueDate projects the next occurrence one period after last
func NextDueDate(last time.Time, frequency string) time.Time {
	switch frequency {
	case models.FrequencyWeekly:
		return last.AddDate(0, 0, 7)
	case models.FrequencyBiweekly:
		return last.AddDate(0, 0, 14)
	case models.FrequencyMonthly:
		return last.AddDate(0, 1, 0)
	case models.FrequencyQuarterly:
		return last.AddDate(0, 3, 0)
	case models.FrequencyAnnual:
		return last.AddDate(1, 0, 0)
	default:
		return last
	}
}
