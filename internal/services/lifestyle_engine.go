package services

import (
	"math"
	"strings"

	"finn-budget/internal/models"

	"github.com/shopspring/decimal"
)

// Health spending classes
const (
	HealthSpendingMinimal = "minimal"
	HealthSpendingRegular = "regular"
	HealthSpendingHigh    = "high"
)

// Travel frequency classes
const (
	TravelNever        = "never"
	TravelRarely       = "rarely"
	TravelOccasionally = "occasionally"
	TravelFrequently   = "frequently"
)

// Spending personalities
const (
	PersonalityFrugal    = "frugal"
	PersonalityBalanced  = "balanced"
	PersonalityGenerous  = "generous"
	PersonalityImpulsive = "impulsive"
)

// Life stages
const (
	LifeStageStudent     = "student"
	LifeStageEarlyCareer = "early-career"
	LifeStageFamily      = "family"
	LifeStageMidCareer   = "mid-career"
)

// Transport modes
const (
	TransportCar           = "car"
	TransportPublicTransit = "public-transit"
	TransportRideshare     = "rideshare"
	TransportMixed         = "mixed"
	TransportUnknown       = "unknown"
)

const (
	minVehicleFuelTransactions = 3
	impulseAmountLimit         = 100
	impulseDayThreshold        = 3
	maxImpulseScore            = 100.0
)

// estimatedSpendShare is the share of income assumed to be spent when the
// profile carries no income figure.
var estimatedSpendShare = decimal.NewFromFloat(0.75)

var (
	kidsKeywords = []string{
		"school", "daycare", "kindergarten", "preschool", "kids", "children", "toys", "baby", "diaper", "pediatric",
		"学校", "幼儿园", "托儿", "儿童", "玩具", "尿布", "母婴", "学费",
	}
	petKeywords = []string{
		"pet", "petco", "petsmart", "chewy", "vet ", "veterinary", "dog food", "cat food", "grooming",
		"宠物", "猫粮", "狗粮", "兽医",
	}
	fuelKeywords = []string{
		"gas", "fuel", "petrol", "shell", "chevron", "exxon", "mobil", "加油", "油费", "中石化", "中石油",
	}
	fitnessKeywords = []string{
		"gym", "fitness", "yoga", "pilates", "crossfit", "peloton", "健身", "瑜伽",
	}
	travelKeywords = []string{
		"hotel", "flight", "airline", "airbnb", "lodging", "motel", "hostel", "expedia", "booking.com",
		"酒店", "机票", "航空", "民宿", "携程",
	}
	debtKeywords = []string{
		"loan", "mortgage", "credit card payment", "student loan", "debt", "贷款", "还款", "房贷", "信用卡",
	}
	transitKeywords = []string{
		"metro", "subway", "bus", "train", "transit", "mta", "bart", "railway", "地铁", "公交", "高铁", "火车",
	}
	rideshareKeywords = []string{
		"uber", "lyft", "didi", "taxi", "cab", "滴滴", "出租车",
	}
)

// cityKeywords is scanned in order; earlier entries win ties
var cityKeywords = []struct {
	city     string
	keywords []string
}{
	{"New York", []string{"new york", "nyc", "brooklyn", "manhattan"}},
	{"San Francisco", []string{"san francisco", "sf ", "oakland"}},
	{"Los Angeles", []string{"los angeles", "santa monica"}},
	{"Seattle", []string{"seattle"}},
	{"Chicago", []string{"chicago"}},
	{"Boston", []string{"boston", "cambridge ma"}},
	{"Austin", []string{"austin"}},
	{"London", []string{"london"}},
	{"Toronto", []string{"toronto"}},
	{"Beijing", []string{"beijing", "北京"}},
	{"Shanghai", []string{"shanghai", "上海"}},
	{"Shenzhen", []string{"shenzhen", "深圳"}},
	{"Guangzhou", []string{"guangzhou", "广州"}},
	{"Hangzhou", []string{"hangzhou", "杭州"}},
	{"Chengdu", []string{"chengdu", "成都"}},
}

type lifestyleEngine struct{}

// NewLifestyleEngine creates a new LifestyleEngineInterface instance
func NewLifestyleEngine() LifestyleEngineInterface {
	return &lifestyleEngine{}
}

// InferLifestyle derives the lifestyle signals. profile may be nil.
func (e *lifestyleEngine) InferLifestyle(transactions []models.Transaction, summary SpendSummary, profile *models.Profile) models.LifestyleProfile {
	hasKids := countMatching(transactions, kidsKeywords) > 0
	hasDebt := inferHasDebt(transactions, profile)
	monthlySpend := summary.AverageMonthlySpend.InexactFloat64()

	return models.LifestyleProfile{
		HasKids:              hasKids,
		HasPets:              countMatching(transactions, petKeywords) > 0,
		HasVehicle:           hasVehicle(transactions),
		HealthSpending:       classifyHealthSpending(countCategory(transactions, models.CategoryHealthcare)),
		FitnessSpending:      perMonth(sumMatching(transactions, fitnessKeywords), summary.MonthSpan),
		TravelFrequency:      classifyTravelFrequency(countMatching(transactions, travelKeywords)),
		SpendingPersonality:  classifyPersonality(summary.AverageMonthlySpend, EstimateIncome(summary, profile)),
		ImpulseSpendingScore: impulseScore(transactions),
		LifeStage:            InferLifeStage(monthlySpend, hasDebt, hasKids),
	}
}

// BuildInsights derives the insights block from the lifestyle signals and
// the recurring expense list
func (e *lifestyleEngine) BuildInsights(
	transactions []models.Transaction,
	summary SpendSummary,
	recurring []models.RecurringExpense,
	lifestyle models.LifestyleProfile,
	profile *models.Profile,
) models.Insights {
	income := EstimateIncome(summary, profile)

	insights := models.Insights{
		DiningFrequency:   roundTo(float64(countCategory(transactions, models.CategoryFoodDining))/monthSpanDivisor(summary.MonthSpan), 2),
		HasKids:           lifestyle.HasKids,
		HasDebt:           inferHasDebt(transactions, profile),
		EstimatedIncome:   income.Round(2),
		SavingsRate:       savingsRate(income, summary.AverageMonthlySpend),
		Lifestyle:         lifestyle.SpendingPersonality,
		TransportMode:     inferTransportMode(transactions, lifestyle.HasVehicle),
		LocationGuess:     guessLocation(transactions, profile),
		SubscriptionCount: countSubscriptions(recurring),
	}

	if profile != nil && summary.AverageMonthlySpend.IsPositive() {
		months := profile.Savings.Div(summary.AverageMonthlySpend).InexactFloat64()
		insights.EmergencyFundMonths = roundTo(months, 2)
	}

	return insights
}

// EstimateIncome uses the stated monthly income when known, otherwise assumes
// spend is 75% of income
func EstimateIncome(summary SpendSummary, profile *models.Profile) decimal.Decimal {
	if profile != nil && profile.HasKnownIncome() {
		return profile.MonthlyIncome
	}
	return summary.AverageMonthlySpend.Div(estimatedSpendShare)
}

// InferLifeStage applies the life-stage chain in its historical order. A
// low-spending family is classified before the family branch is reached.
func InferLifeStage(monthlySpend float64, hasDebt, hasKids bool) string {
	switch {
	case monthlySpend < 2000 && hasDebt:
		return LifeStageStudent
	case monthlySpend < 4000 && !hasKids:
		return LifeStageEarlyCareer
	case hasKids:
		return LifeStageFamily
	case monthlySpend > 6000:
		return LifeStageMidCareer
	default:
		return LifeStageEarlyCareer
	}
}

func classifyHealthSpending(count int) string {
	switch {
	case count == 0:
		return HealthSpendingMinimal
	case count < 5:
		return HealthSpendingRegular
	default:
		return HealthSpendingHigh
	}
}

func classifyTravelFrequency(count int) string {
	switch {
	case count == 0:
		return TravelNever
	case count < 2:
		return TravelRarely
	case count < 5:
		return TravelOccasionally
	default:
		return TravelFrequently
	}
}

func classifyPersonality(monthlySpend, income decimal.Decimal) string {
	denominator := income
	if denominator.LessThan(decimal.NewFromInt(1)) {
		denominator = decimal.NewFromInt(1)
	}
	ratio := monthlySpend.Div(denominator).InexactFloat64()

	switch {
	case ratio < 0.6:
		return PersonalityFrugal
	case ratio < 0.8:
		return PersonalityBalanced
	case ratio < 0.95:
		return PersonalityGenerous
	default:
		return PersonalityImpulsive
	}
}

// impulseScore is the percentage of active days with more than three small
// non-essential purchases
func impulseScore(transactions []models.Transaction) float64 {
	if len(transactions) == 0 {
		return 0
	}

	limit := decimal.NewFromInt(impulseAmountLimit)
	smallPurchases := make(map[string]int)
	activeDays := make(map[string]bool)

	for _, txn := range transactions {
		day := txn.Day().Format("2006-01-02")
		activeDays[day] = true
		if !models.IsEssentialCategory(txn.Category) && txn.Amount.LessThan(limit) {
			smallPurchases[day]++
		}
	}

	impulseDays := 0
	for _, count := range smallPurchases {
		if count > impulseDayThreshold {
			impulseDays++
		}
	}

	score := float64(impulseDays) / float64(len(activeDays)) * 100
	return roundTo(math.Min(score, maxImpulseScore), 2)
}

func hasVehicle(transactions []models.Transaction) bool {
	count := 0
	for i := range transactions {
		if transactions[i].Category == models.CategoryTransportation && matchesAny(&transactions[i], fuelKeywords) {
			count++
		}
	}
	return count >= minVehicleFuelTransactions
}

func inferHasDebt(transactions []models.Transaction, profile *models.Profile) bool {
	if profile != nil && profile.HasDebt {
		return true
	}
	return countMatching(transactions, debtKeywords) > 0
}

func inferTransportMode(transactions []models.Transaction, vehicle bool) string {
	if vehicle {
		return TransportCar
	}

	var transit, rideshare int
	for i := range transactions {
		if transactions[i].Category != models.CategoryTransportation {
			continue
		}
		switch {
		case matchesAny(&transactions[i], rideshareKeywords):
			rideshare++
		case matchesAny(&transactions[i], transitKeywords):
			transit++
		}
	}

	switch {
	case transit == 0 && rideshare == 0:
		return TransportUnknown
	case transit > rideshare:
		return TransportPublicTransit
	case rideshare > transit:
		return TransportRideshare
	default:
		return TransportMixed
	}
}

func guessLocation(transactions []models.Transaction, profile *models.Profile) string {
	if profile != nil && strings.TrimSpace(profile.Location) != "" {
		return strings.TrimSpace(profile.Location)
	}

	best, bestCount := "", 0
	for _, entry := range cityKeywords {
		if count := countMatching(transactions, entry.keywords); count > bestCount {
			best, bestCount = entry.city, count
		}
	}
	return best
}

func countSubscriptions(recurring []models.RecurringExpense) int {
	count := 0
	for _, expense := range recurring {
		if !expense.IsEssential {
			count++
		}
	}
	return count
}

func savingsRate(income, monthlySpend decimal.Decimal) float64 {
	if !income.IsPositive() {
		return 0
	}
	rate := income.Sub(monthlySpend).Div(income).InexactFloat64()
	if rate < 0 {
		return 0
	}
	return roundTo(rate, 4)
}

func matchesAny(txn *models.Transaction, keywords []string) bool {
	text := strings.ToLower(txn.Description + " " + txn.MerchantName)
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}

func countMatching(transactions []models.Transaction, keywords []string) int {
	count := 0
	for i := range transactions {
		if matchesAny(&transactions[i], keywords) {
			count++
		}
	}
	return count
}

func sumMatching(transactions []models.Transaction, keywords []string) decimal.Decimal {
	total := decimal.Zero
	for i := range transactions {
		if matchesAny(&transactions[i], keywords) {
			total = total.Add(transactions[i].Amount)
		}
	}
	return total
}

func countCategory(transactions []models.Transaction, category string) int {
	count := 0
	for i := range transactions {
		if transactions[i].Category == category {
			count++
		}
	}
	return count
}

func perMonth(amount decimal.Decimal, monthSpan float64) decimal.Decimal {
	return amount.Div(decimal.NewFromFloat(monthSpanDivisor(monthSpan))).Round(2)
}

// monthSpanDivisor floors the month span at one month
func monthSpanDivisor(monthSpan float64) float64 {
	if monthSpan < 1 {
		return 1
	}
	return monthSpan
}

func roundTo(value float64, places int) float64 {
	factor := math.Pow(10, float64(places))
	return math.Round(value*factor) / factor
}
