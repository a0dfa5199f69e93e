package services

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"finn-budget/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
)

const (
	MaxSampleMonths     = 24
	statementDateLayout = "2006-01-02"
	statementHeader     = "Date,Description,Amount"

	maxDailyPurchases = 3
	fuelIntervalDays  = 9
	travelChance      = 0.15
)

type statementGenerator struct {
	faker        *gofakeit.Faker
	merchantPool []models.MerchantInfo
}

// NewStatementGenerator creates a generator for realistic sample statements.
// The same non-zero seed always yields the same statement; zero picks a
// random seed.
func NewStatementGenerator(seed uint64) StatementGeneratorInterface {
	return &statementGenerator{
		faker:        gofakeit.New(seed),
		merchantPool: initializeMerchantPool(),
	}
}

// initializeMerchantPool lists the everyday merchants used for daily purchases
func initializeMerchantPool() []models.MerchantInfo {
	return []models.MerchantInfo{
		{Name: "Whole Foods Market", Category: models.CategoryFoodDining, MinAmount: 25, MaxAmount: 180},
		{Name: "Trader Joe's", Category: models.CategoryFoodDining, MinAmount: 20, MaxAmount: 120},
		{Name: "Safeway", Category: models.CategoryFoodDining, MinAmount: 15, MaxAmount: 150},
		{Name: "Starbucks", Category: models.CategoryFoodDining, MinAmount: 4, MaxAmount: 12},
		{Name: "Chipotle Mexican Grill", Category: models.CategoryFoodDining, MinAmount: 9, MaxAmount: 30},
		{Name: "Panera Bread", Category: models.CategoryFoodDining, MinAmount: 9, MaxAmount: 28},
		{Name: "DoorDash", Category: models.CategoryFoodDining, MinAmount: 18, MaxAmount: 65},
		{Name: "Olive Garden Restaurant", Category: models.CategoryFoodDining, MinAmount: 30, MaxAmount: 110},
		{Name: "Uber Trip", Category: models.CategoryTransportation, MinAmount: 9, MaxAmount: 45},
		{Name: "Lyft Ride", Category: models.CategoryTransportation, MinAmount: 8, MaxAmount: 40},
		{Name: "City Parking", Category: models.CategoryTransportation, MinAmount: 5, MaxAmount: 25},
		{Name: "Amazon.com", Category: models.CategoryShopping, MinAmount: 12, MaxAmount: 220},
		{Name: "Target", Category: models.CategoryShopping, MinAmount: 15, MaxAmount: 160},
		{Name: "Best Buy", Category: models.CategoryShopping, MinAmount: 30, MaxAmount: 400},
		{Name: "IKEA", Category: models.CategoryShopping, MinAmount: 40, MaxAmount: 350},
		{Name: "AMC Movie Theater", Category: models.CategoryEntertainment, MinAmount: 12, MaxAmount: 45},
		{Name: "Steam Games", Category: models.CategoryEntertainment, MinAmount: 5, MaxAmount: 60},
		{Name: "CVS Pharmacy", Category: models.CategoryHealthcare, MinAmount: 8, MaxAmount: 70},
		{Name: "Walgreens", Category: models.CategoryHealthcare, MinAmount: 6, MaxAmount: 55},
		{Name: "Udemy Course", Category: models.CategoryEducation, MinAmount: 12, MaxAmount: 90},
	}
}

// recurringCharge is a bill that lands on the same day every month
type recurringCharge struct {
	name      string
	day       int
	minAmount float64
	maxAmount float64
}

// MerchantPool returns the everyday merchant pool
func (g *statementGenerator) MerchantPool() []models.MerchantInfo {
	return g.merchantPool
}

// Generate builds a statement covering months calendar months starting at
// start. Lines are ordered by date.
func (g *statementGenerator) Generate(start time.Time, months int) []models.StatementLine {
	if months < 1 {
		months = 1
	}
	if months > MaxSampleMonths {
		months = MaxSampleMonths
	}

	start = models.TruncateToDay(start)
	end := start.AddDate(0, months, 0)

	lines := make([]models.StatementLine, 0, months*60)
	lines = append(lines, g.monthlyCharges(start, months)...)
	lines = append(lines, g.fuelPurchases(start, end)...)
	lines = append(lines, g.dailyPurchases(start, end)...)
	lines = append(lines, g.travel(start, months)...)

	sort.SliceStable(lines, func(i, j int) bool {
		return lines[i].Date.Before(lines[j].Date)
	})
	return lines
}

// Render formats lines as the comma separated text accepted by the analyzer
func (g *statementGenerator) Render(lines []models.StatementLine) string {
	var sb strings.Builder
	sb.WriteString(statementHeader)
	sb.WriteByte('\n')
	for _, line := range lines {
		fmt.Fprintf(&sb, "%s,%s,%s\n",
			line.Date.Format(statementDateLayout),
			strings.ReplaceAll(line.Description, ",", " "),
			line.Amount.StringFixed(2))
	}
	return sb.String()
}

// monthlyCharges emits rent, subscriptions and utilities. Rent and
// subscriptions are fixed so they are detected as recurring; utilities vary
// a little from month to month.
func (g *statementGenerator) monthlyCharges(start time.Time, months int) []models.StatementLine {
	rent := g.faker.Price(900, 2600)
	charges := []recurringCharge{
		{name: "Rent Payment", day: 1, minAmount: rent, maxAmount: rent},
		{name: "Netflix", day: 5, minAmount: 15.49, maxAmount: 15.49},
		{name: "Spotify Premium", day: 12, minAmount: 10.99, maxAmount: 10.99},
		{name: "Comcast Internet", day: 15, minAmount: 79.99, maxAmount: 79.99},
		{name: "PG&E Electric", day: 20, minAmount: 85, maxAmount: 95},
		{name: "Verizon Phone Bill", day: 24, minAmount: 65, maxAmount: 65},
	}
	if g.faker.Bool() {
		charges = append(charges, recurringCharge{name: "24 Hour Fitness Gym", day: 3, minAmount: 39.99, maxAmount: 39.99})
	}

	lines := make([]models.StatementLine, 0, months*len(charges))
	for m := 0; m < months; m++ {
		month := start.AddDate(0, m, 0)
		for _, charge := range charges {
			lines = append(lines, models.StatementLine{
				Date:        time.Date(month.Year(), month.Month(), charge.day, 0, 0, 0, 0, time.UTC),
				Description: charge.name,
				Amount:      g.amountBetween(charge.minAmount, charge.maxAmount),
			})
		}
	}
	return lines
}

func (g *statementGenerator) fuelPurchases(start, end time.Time) []models.StatementLine {
	stations := []string{"Shell Gas Station", "Chevron Fuel", "Exxon Gas"}

	var lines []models.StatementLine
	for day := start.AddDate(0, 0, g.faker.IntRange(0, fuelIntervalDays-1)); day.Before(end); day = day.AddDate(0, 0, fuelIntervalDays) {
		lines = append(lines, models.StatementLine{
			Date:        day,
			Description: stations[g.faker.IntN(len(stations))],
			Amount:      g.amountBetween(35, 70),
		})
	}
	return lines
}

func (g *statementGenerator) dailyPurchases(start, end time.Time) []models.StatementLine {
	var lines []models.StatementLine
	for day := start; day.Before(end); day = day.AddDate(0, 0, 1) {
		count := g.faker.IntRange(0, maxDailyPurchases)
		for i := 0; i < count; i++ {
			merchant := g.merchantPool[g.faker.IntN(len(g.merchantPool))]
			lines = append(lines, models.StatementLine{
				Date:        day,
				Description: merchant.Name,
				Amount:      g.amountBetween(merchant.MinAmount, merchant.MaxAmount),
			})
		}
	}
	return lines
}

// travel occasionally adds a flight and hotel stay in a random city
func (g *statementGenerator) travel(start time.Time, months int) []models.StatementLine {
	var lines []models.StatementLine
	for m := 0; m < months; m++ {
		if g.faker.Float64() >= travelChance {
			continue
		}
		month := start.AddDate(0, m, 0)
		day := time.Date(month.Year(), month.Month(), g.faker.IntRange(1, 25), 0, 0, 0, 0, time.UTC)
		city := g.faker.City()
		lines = append(lines,
			models.StatementLine{Date: day, Description: "Delta Airlines Flight", Amount: g.amountBetween(180, 650)},
			models.StatementLine{Date: day.AddDate(0, 0, 1), Description: "Marriott Hotel " + city, Amount: g.amountBetween(140, 420)},
		)
	}
	return lines
}

func (g *statementGenerator) amountBetween(minAmount, maxAmount float64) decimal.Decimal {
	if maxAmount <= minAmount {
		return decimal.NewFromFloat(minAmount).Round(2)
	}
	return decimal.NewFromFloat(g.faker.Price(minAmount, maxAmount)).Round(2)
}
