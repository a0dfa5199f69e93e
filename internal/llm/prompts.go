package llm

import (
	"fmt"
	"sort"
	"strings"

	"finn-budget/internal/models"
)

// CategoryAssignment is one entry of the categorization reply
type CategoryAssignment struct {
	Index    int    `json:"index"`
	Category string `json:"category"`
}

// BudgetLine is one allocation in the budget reply
type BudgetLine struct {
	Category   string  `json:"category"`
	Percentage float64 `json:"percentage"`
	Note       string  `json:"note"`
}

// BudgetReply is the expected shape of the budget generation reply
type BudgetReply struct {
	Allocations     []BudgetLine `json:"allocations"`
	Recommendations []string     `json:"recommendations"`
	Summary         string       `json:"summary"`
}

// CategorizationPrompt asks the model to label each description with one of
// the given categories
func CategorizationPrompt(descriptions []string, categories []string) string {
	var b strings.Builder

	b.WriteString("You are a personal finance assistant that categorizes bank statement lines.\n\n")
	b.WriteString("Allowed categories:\n")
	for _, category := range categories {
		fmt.Fprintf(&b, "- %s\n", category)
	}

	b.WriteString("\nTransactions (index: description):\n")
	for i, description := range descriptions {
		fmt.Fprintf(&b, "%d: %s\n", i, description)
	}

	b.WriteString("\nRules:\n")
	b.WriteString("- Return one entry per transaction index.\n")
	b.WriteString("- Use only the allowed category names, spelled exactly.\n")
	b.WriteString("- Use \"Other\" when nothing fits.\n\n")
	b.WriteString("Return ONLY a raw JSON array like [{\"index\": 0, \"category\": \"Housing\"}].\n")
	b.WriteString("Do NOT wrap the response in code fences.\n")

	return b.String()
}

// BudgetPrompt asks for a monthly budget from the profile and the latest analysis
func BudgetPrompt(profile *models.Profile, metadata *models.ExpenseMetadata, categories []string) string {
	var b strings.Builder

	b.WriteString("You are Finn, a practical budgeting coach.\n\n")
	writeProfile(&b, profile)
	writeMetadata(&b, metadata)

	b.WriteString("\nAllowed budget categories:\n")
	for _, category := range categories {
		fmt.Fprintf(&b, "- %s\n", category)
	}

	b.WriteString("\nTask:\n")
	b.WriteString("- Propose a monthly budget as percentages of monthly income.\n")
	b.WriteString("- Percentages must add up to exactly 100.\n")
	b.WriteString("- Give up to 5 short, concrete recommendations.\n\n")
	b.WriteString("Return ONLY raw JSON with this shape:\n")
	b.WriteString(`{"allocations": [{"category": "Housing", "percentage": 30, "note": "..."}], "recommendations": ["..."], "summary": "..."}`)
	b.WriteString("\n")

	return b.String()
}

// ChatPrompt answers a free-form question with the profile and analysis as context
func ChatPrompt(profile *models.Profile, metadata *models.ExpenseMetadata, message string) string {
	var b strings.Builder

	b.WriteString("You are Finn, a friendly budgeting coach. Answer in at most 120 words.\n\n")
	writeProfile(&b, profile)
	writeMetadata(&b, metadata)
	fmt.Fprintf(&b, "\nUser question: %s\n", strings.TrimSpace(message))

	return b.String()
}

func writeProfile(b *strings.Builder, profile *models.Profile) {
	if profile == nil {
		return
	}

	b.WriteString("Profile:\n")
	fmt.Fprintf(b, "- Age: %d\n", profile.Age)
	fmt.Fprintf(b, "- Monthly income: %s\n", profile.MonthlyIncome.StringFixed(2))
	fmt.Fprintf(b, "- Savings: %s\n", profile.Savings.StringFixed(2))
	fmt.Fprintf(b, "- Has debt: %t\n", profile.HasDebt)
	fmt.Fprintf(b, "- Dependents: %d\n", profile.Dependents)
	fmt.Fprintf(b, "- Risk tolerance: %s\n", profile.RiskTolerance)
	if profile.Location != "" {
		fmt.Fprintf(b, "- Location: %s\n", profile.Location)
	}
	if len(profile.Goals) > 0 {
		fmt.Fprintf(b, "- Goals: %s\n", strings.Join(profile.Goals, ", "))
	}
}

func writeMetadata(b *strings.Builder, metadata *models.ExpenseMetadata) {
	if metadata == nil {
		return
	}

	b.WriteString("\nSpending analysis:\n")
	fmt.Fprintf(b, "- Average monthly spend: %s\n", metadata.AverageMonthlySpend.StringFixed(2))
	fmt.Fprintf(b, "- Period: %s to %s\n", metadata.PeriodStart.Format("2006-01-02"), metadata.PeriodEnd.Format("2006-01-02"))

	categories := make([]string, 0, len(metadata.CategoryBreakdown))
	for category := range metadata.CategoryBreakdown {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	b.WriteString("- Category totals:\n")
	for _, category := range categories {
		fmt.Fprintf(b, "  - %s: %s\n", category, metadata.CategoryBreakdown[category].StringFixed(2))
	}

	if len(metadata.RecurringExpenses) > 0 {
		b.WriteString("- Recurring expenses:\n")
		for _, expense := range metadata.RecurringExpenses {
			fmt.Fprintf(b, "  - %s (%s): %s %s\n", expense.Name, expense.Category, expense.Amount.StringFixed(2), expense.Frequency)
		}
	}

	insights := metadata.Insights
	fmt.Fprintf(b, "- Dining visits per month: %.1f\n", insights.DiningFrequency)
	fmt.Fprintf(b, "- Savings rate: %.0f%%\n", insights.SavingsRate*100)
	fmt.Fprintf(b, "- Spending personality: %s\n", insights.Lifestyle)
	fmt.Fprintf(b, "- Transport: %s\n", insights.TransportMode)
	fmt.Fprintf(b, "- Subscriptions: %d\n", insights.SubscriptionCount)
	fmt.Fprintf(b, "- Has kids: %t, has debt: %t\n", insights.HasKids, insights.HasDebt)
}
