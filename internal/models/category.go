package models

// Spending categories recognised by the classifier and accepted from the LLM
const (
	CategoryFoodDining     = "Food & Dining"
	CategoryTransportation = "Transportation"
	CategoryHousing        = "Housing"
	CategoryShopping       = "Shopping"
	CategoryBillsUtilities = "Bills & Utilities"
	CategoryEntertainment  = "Entertainment"
	CategoryHealthcare     = "Healthcare"
	CategoryEducation      = "Education"
	CategoryOther          = "Other"

	// CategoryInsurance is never produced by the keyword classifier but counts
	// as essential when the LLM or a profile supplies it.
	CategoryInsurance = "Insurance"

	// CategorySavings only appears in budgets.
	CategorySavings = "Savings"
)

// Categorization sources
const (
	CategorizationSourceLLM       = "llm"
	CategorizationSourceHeuristic = "heuristic"
)

// AllCategories returns the closed set of transaction categories
func AllCategories() []string {
	return []string{
		CategoryFoodDining,
		CategoryTransportation,
		CategoryHousing,
		CategoryShopping,
		CategoryBillsUtilities,
		CategoryEntertainment,
		CategoryHealthcare,
		CategoryEducation,
		CategoryOther,
	}
}

// IsValidCategory checks if a category string is one of AllCategories
func IsValidCategory(category string) bool {
	for _, validCategory := range AllCategories() {
		if category == validCategory {
			return true
		}
	}
	return false
}

// IsEssentialCategory reports whether spending in the category is non-discretionary
func IsEssentialCategory(category string) bool {
	switch category {
	case CategoryHousing, CategoryBillsUtilities, CategoryHealthcare, CategoryInsurance, CategoryTransportation:
		return true
	default:
		return false
	}
}

// CategorizationResult contains the result of classifying one description
type CategorizationResult struct {
	Category       string  `json:"category"`
	Source         string  `json:"source"`
	Confidence     float64 `json:"confidence"`
	MatchedKeyword string  `json:"matched_keyword,omitempty"`
}
