package services

import (
	"time"

	"finn-budget/internal/models"

	"github.com/shopspring/decimal"
)

const daysPerMonth = 30

// SpendSummary carries the totals every analysis pass shares
type SpendSummary struct {
	Total               decimal.Decimal
	Count               int
	PeriodStart         time.Time
	PeriodEnd           time.Time
	MonthSpan           float64
	AverageMonthlySpend decimal.Decimal
}

// AnalysisParts is the fan-in of the independent analysis passes
type AnalysisParts struct {
	Summary              SpendSummary
	TopMerchants         []models.MerchantPattern
	RecurringExpenses    []models.RecurringExpense
	SeasonalPatterns     []models.SeasonalPattern
	SpendingTrend        string
	Anomalies            []models.DataAnomaly
	Lifestyle            models.LifestyleProfile
	Insights             models.Insights
	DataQuality          models.DataQuality
	CategorizationSource string
}

type metadataAssembler struct{}

// NewMetadataAssembler creates a new MetadataAssemblerInterface instance
func NewMetadataAssembler() MetadataAssemblerInterface {
	return &metadataAssembler{}
}

// SummarizeSpend computes totals, period bounds and the month span. The span
// is floored at one month.
func SummarizeSpend(transactions []models.Transaction) SpendSummary {
	summary := SpendSummary{
		Total:               decimal.Zero,
		MonthSpan:           1,
		AverageMonthlySpend: decimal.Zero,
	}
	if len(transactions) == 0 {
		return summary
	}

	summary.Count = len(transactions)
	summary.PeriodStart = transactions[0].Day()
	summary.PeriodEnd = transactions[0].Day()

	for _, txn := range transactions {
		summary.Total = summary.Total.Add(txn.Amount)
		day := txn.Day()
		if day.Before(summary.PeriodStart) {
			summary.PeriodStart = day
		}
		if day.After(summary.PeriodEnd) {
			summary.PeriodEnd = day
		}
	}

	span := float64(models.DaysBetween(summary.PeriodStart, summary.PeriodEnd)) / daysPerMonth
	if span > 1 {
		summary.MonthSpan = span
	}
	summary.AverageMonthlySpend = summary.Total.Div(decimal.NewFromFloat(summary.MonthSpan))

	return summary
}

// CategoryBreakdown sums amounts per category over the whole period
func CategoryBreakdown(transactions []models.Transaction) map[string]decimal.Decimal {
	breakdown := make(map[string]decimal.Decimal)
	for _, txn := range transactions {
		category := txn.Category
		if category == "" {
			category = models.CategoryOther
		}
		breakdown[category] = breakdown[category].Add(txn.Amount)
	}
	return breakdown
}

// Assemble builds the ExpenseMetadata record from the analysis outputs
func (a *metadataAssembler) Assemble(transactions []models.Transaction, parts AnalysisParts) *models.ExpenseMetadata {
	return &models.ExpenseMetadata{
		TotalExpenses:        parts.Summary.Total,
		TransactionCount:     parts.Summary.Count,
		PeriodStart:          parts.Summary.PeriodStart,
		PeriodEnd:            parts.Summary.PeriodEnd,
		MonthSpan:            roundTo(parts.Summary.MonthSpan, 2),
		AverageMonthlySpend:  parts.Summary.AverageMonthlySpend.Round(2),
		CategoryBreakdown:    CategoryBreakdown(transactions),
		TopMerchants:         nonNil(parts.TopMerchants),
		RecurringExpenses:    nonNil(parts.RecurringExpenses),
		SeasonalPatterns:     nonNil(parts.SeasonalPatterns),
		SpendingTrend:        parts.SpendingTrend,
		Anomalies:            nonNil(parts.Anomalies),
		Insights:             parts.Insights,
		Lifestyle:            parts.Lifestyle,
		DataQuality:          parts.DataQuality,
		CategorizationSource: parts.CategorizationSource,
	}
}

// nonNil keeps empty lists encoding as [] rather than null
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
