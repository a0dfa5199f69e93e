package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Merchant visit frequency classes (absolute counts, not rates)
const (
	MerchantFrequencyDaily   = "daily"
	MerchantFrequencyWeekly  = "weekly"
	MerchantFrequencyMonthly = "monthly"
)

// Spend trends
const (
	TrendIncreasing = "increasing"
	TrendDecreasing = "decreasing"
	TrendStable     = "stable"
)

// Recurrence frequencies
const (
	FrequencyWeekly    = "weekly"
	FrequencyBiweekly  = "biweekly"
	FrequencyMonthly   = "monthly"
	FrequencyQuarterly = "quarterly"
	FrequencyAnnual    = "annual"
)

// Anomaly types
const (
	AnomalyTypeUnusualSpending = "unusual-spending"
	AnomalyTypeMissingData     = "missing-data"
	AnomalyTypeDuplicate       = "duplicate"
	AnomalyTypeCategoryShift   = "category-shift"
	AnomalyTypeIncomeChange    = "income-change"
)

// MerchantPattern aggregates every transaction sharing a merchant key
type MerchantPattern struct {
	Name             string          `json:"name"`
	Category         string          `json:"category"`
	AverageAmount    decimal.Decimal `json:"average_amount"`
	Frequency        string          `json:"frequency"`
	TotalSpent       decimal.Decimal `json:"total_spent"`
	TransactionCount int             `json:"transaction_count"`
	LastVisit        time.Time       `json:"last_visit"`
	Trend            string          `json:"trend"`
}

// RecurringExpense is a merchant group with a stable amount and regular interval
type RecurringExpense struct {
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	Frequency   string          `json:"frequency"`
	NextDueDate time.Time       `json:"next_due_date"`
	IsEssential bool            `json:"is_essential"`
	CanOptimize bool            `json:"can_optimize"`
	Occurrences int             `json:"occurrences"`
}

// SeasonalPattern is a calendar month whose spend is well above the average month
type SeasonalPattern struct {
	Year         int             `json:"year"`
	Month        time.Month      `json:"month"`
	Period       string          `json:"period"`
	AverageSpend decimal.Decimal `json:"average_spend"`
	Variance     decimal.Decimal `json:"variance"`
	Categories   []string        `json:"categories"`
}

// DataAnomaly flags a suspicious transaction or gap in the data
type DataAnomaly struct {
	Date        time.Time        `json:"date"`
	Type        string           `json:"type"`
	Description string           `json:"description"`
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	Resolved    bool             `json:"resolved"`
}

// LifestyleProfile holds the heuristic lifestyle signals
type LifestyleProfile struct {
	HasKids              bool            `json:"has_kids"`
	HasPets              bool            `json:"has_pets"`
	HasVehicle           bool            `json:"has_vehicle"`
	HealthSpending       string          `json:"health_spending"`
	FitnessSpending      decimal.Decimal `json:"fitness_spending"`
	TravelFrequency      string          `json:"travel_frequency"`
	SpendingPersonality  string          `json:"spending_personality"`
	ImpulseSpendingScore float64         `json:"impulse_spending_score"`
	LifeStage            string          `json:"life_stage"`
}

// Insights is the summary block embedded into budget prompts and UI badges
type Insights struct {
	DiningFrequency     float64         `json:"dining_frequency"`
	HasKids             bool            `json:"has_kids"`
	HasDebt             bool            `json:"has_debt"`
	EstimatedIncome     decimal.Decimal `json:"estimated_income"`
	SavingsRate         float64         `json:"savings_rate"`
	Lifestyle           string          `json:"lifestyle"`
	TransportMode       string          `json:"transport_mode"`
	LocationGuess       string          `json:"location_guess,omitempty"`
	SubscriptionCount   int             `json:"subscription_count"`
	EmergencyFundMonths float64         `json:"emergency_fund_months"`
}

// DataQuality reports how much of the uploaded text produced usable records
type DataQuality struct {
	TotalLines         int     `json:"total_lines"`
	ParsedTransactions int     `json:"parsed_transactions"`
	SkippedLines       int     `json:"skipped_lines"`
	SyntheticDates     int     `json:"synthetic_dates"`
	HeaderDetected     bool    `json:"header_detected"`
	Completeness       float64 `json:"completeness"`
}

// ExpenseMetadata is the aggregate produced by one analysis run
type ExpenseMetadata struct {
	TotalExpenses        decimal.Decimal            `json:"total_expenses"`
	TransactionCount     int                        `json:"transaction_count"`
	PeriodStart          time.Time                  `json:"period_start"`
	PeriodEnd            time.Time                  `json:"period_end"`
	MonthSpan            float64                    `json:"month_span"`
	AverageMonthlySpend  decimal.Decimal            `json:"average_monthly_spend"`
	CategoryBreakdown    map[string]decimal.Decimal `json:"category_breakdown"`
	TopMerchants         []MerchantPattern          `json:"top_merchants"`
	RecurringExpenses    []RecurringExpense         `json:"recurring_expenses"`
	SeasonalPatterns     []SeasonalPattern          `json:"seasonal_patterns"`
	SpendingTrend        string                     `json:"spending_trend"`
	Anomalies            []DataAnomaly              `json:"anomalies"`
	Insights             Insights                   `json:"insights"`
	Lifestyle            LifestyleProfile           `json:"lifestyle"`
	DataQuality          DataQuality                `json:"data_quality"`
	CategorizationSource string                     `json:"categorization_source"`
}

// LargestCategory returns the category with the highest cumulative spend.
// Ties resolve alphabetically so the answer is stable.
func (m *ExpenseMetadata) LargestCategory() (string, decimal.Decimal) {
	var (
		best   string
		amount decimal.Decimal
	)
	for category, total := range m.CategoryBreakdown {
		if best == "" || total.GreaterThan(amount) || (total.Equal(amount) && category < best) {
			best = category
			amount = total
		}
	}
	return best, amount
}
