package services

import (
	"sort"
	"strings"

	"finn-budget/internal/models"
)

type categoryService struct {
	merchantPatterns    []merchantPattern
	descriptionPatterns []descriptionPattern
}

type merchantPattern struct {
	name       string
	category   string
	confidence float64
}

// descriptionPattern is one row of the keyword table. Rows are evaluated in
// order and the first row with a matching keyword wins.
type descriptionPattern struct {
	category   string
	keywords   []string
	confidence float64
}

// NewCategoryService creates the keyword classifier with the default tables
func NewCategoryService() CategoryServiceInterface {
	return newCategoryServiceWithTables(defaultDescriptionPatterns(), defaultMerchantPatterns())
}

// newCategoryServiceWithTables builds a classifier over the given tables.
// Keywords are lowercased; merchant rows are tried longest name first.
func newCategoryServiceWithTables(descriptions []descriptionPattern, merchants []merchantPattern) CategoryServiceInterface {
	normalized := make([]descriptionPattern, len(descriptions))
	for i, pattern := range descriptions {
		keywords := make([]string, len(pattern.keywords))
		for j, keyword := range pattern.keywords {
			keywords[j] = strings.ToLower(keyword)
		}
		normalized[i] = descriptionPattern{category: pattern.category, keywords: keywords, confidence: pattern.confidence}
	}

	sortedMerchants := make([]merchantPattern, len(merchants))
	copy(sortedMerchants, merchants)
	// longest names first so "Uber Eats" is tried before "Uber"
	sort.SliceStable(sortedMerchants, func(i, j int) bool {
		if len(sortedMerchants[i].name) != len(sortedMerchants[j].name) {
			return len(sortedMerchants[i].name) > len(sortedMerchants[j].name)
		}
		return sortedMerchants[i].name < sortedMerchants[j].name
	})

	return &categoryService{
		merchantPatterns:    sortedMerchants,
		descriptionPatterns: normalized,
	}
}

// Classify maps a description to a category, defaulting to Other
func (s *categoryService) Classify(description string) string {
	category, _, _ := s.matchDescription(description)
	return category
}

// CategorizeByDescription categorizes based on transaction description
func (s *categoryService) CategorizeByDescription(description string) (string, float64) {
	category, confidence, _ := s.matchDescription(description)
	return category, confidence
}

// CategorizeByMerchant categorizes based on a merchant name, falling back to
// fuzzy matching for misspelled or truncated names
func (s *categoryService) CategorizeByMerchant(merchantName string) (string, float64) {
	if merchantName == "" {
		return models.CategoryOther, 0.0
	}

	normalized := normalizeForMatching(merchantName)
	for _, pattern := range s.merchantPatterns {
		if strings.Contains(normalized, normalizeForMatching(pattern.name)) {
			return pattern.category, pattern.confidence
		}
	}

	fuzzyMerchant, score := s.FuzzyMatchMerchant(merchantName)
	if fuzzyMerchant != "" {
		for _, pattern := range s.merchantPatterns {
			if pattern.name == fuzzyMerchant {
				return pattern.category, score * pattern.confidence
			}
		}
	}

	return models.CategoryOther, 0.0
}

// FuzzyMatchMerchant performs fuzzy string matching on merchant names
func (s *categoryService) FuzzyMatchMerchant(input string) (string, float64) {
	if input == "" {
		return "", 0.0
	}

	input = strings.ToLower(strings.TrimSpace(input))
	var bestMatch string
	var bestScore float64

	for _, pattern := range s.merchantPatterns {
		score := calculateSimilarity(input, strings.ToLower(pattern.name))
		if score > bestScore && score > 0.7 {
			bestScore = score
			bestMatch = pattern.name
		}
	}

	return bestMatch, bestScore
}

// CategorizeTransaction tries the merchant table first when a merchant name is
// known, then the description keywords
func (s *categoryService) CategorizeTransaction(transaction *models.Transaction) *models.CategorizationResult {
	if transaction == nil {
		return &models.CategorizationResult{
			Category: models.CategoryOther,
			Source:   models.CategorizationSourceHeuristic,
		}
	}

	if transaction.MerchantName != "" {
		category, confidence := s.CategorizeByMerchant(transaction.MerchantName)
		if category != models.CategoryOther {
			return &models.CategorizationResult{
				Category:       category,
				Source:         models.CategorizationSourceHeuristic,
				Confidence:     confidence,
				MatchedKeyword: transaction.MerchantName,
			}
		}
	}

	category, confidence, keyword := s.matchDescription(transaction.Description)
	return &models.CategorizationResult{
		Category:       category,
		Source:         models.CategorizationSourceHeuristic,
		Confidence:     confidence,
		MatchedKeyword: keyword,
	}
}

// BatchCategorize returns a copy of the transactions with heuristic categories set
func (s *categoryService) BatchCategorize(transactions []models.Transaction) []models.Transaction {
	categorized := models.CloneTransactions(transactions)
	for i := range categorized {
		categorized[i].Category = s.CategorizeTransaction(&categorized[i]).Category
	}
	return categorized
}

func (s *categoryService) matchDescription(description string) (string, float64, string) {
	if strings.TrimSpace(description) == "" {
		return models.CategoryOther, 0.0, ""
	}

	normalized := strings.ToLower(description)
	for _, pattern := range s.descriptionPatterns {
		for _, keyword := range pattern.keywords {
			if strings.Contains(normalized, keyword) {
				return pattern.category, pattern.confidence, keyword
			}
		}
	}

	return models.CategoryOther, 0.0, ""
}

// defaultDescriptionPatterns is the bilingual keyword table. Row order is
// significant: "uber eats" must be seen before "uber", utility "gas bill"
// before the fuel keywords.
func defaultDescriptionPatterns() []descriptionPattern {
	return []descriptionPattern{
		{
			category:   models.CategoryHousing,
			keywords:   []string{"rent", "mortgage", "landlord", "property management", "hoa fee", "apartment", "lease", "房租", "租金", "房贷", "物业"},
			confidence: 0.85,
		},
		{
			category:   models.CategoryBillsUtilities,
			keywords:   []string{"electric", "utility", "utilities", "water bill", "gas bill", "internet", "broadband", "phone bill", "mobile plan", "verizon", "at&t", "comcast", "t-mobile", "insurance", "电费", "水费", "燃气费", "话费", "宽带", "网费", "保险"},
			confidence: 0.85,
		},
		{
			category:   models.CategoryFoodDining,
			keywords:   []string{"restaurant", "cafe", "coffee", "starbucks", "mcdonald", "grocery", "groceries", "supermarket", "whole foods", "trader joe", "safeway", "kroger", "doordash", "uber eats", "grubhub", "pizza", "bakery", "dining", "lunch", "dinner", "餐", "饭", "外卖", "美团", "饿了么", "超市", "咖啡", "星巴克"},
			confidence: 0.80,
		},
		{
			category:   models.CategoryTransportation,
			keywords:   []string{"uber", "lyft", "taxi", "gas station", "fuel", "gasoline", "petrol", "shell", "chevron", "exxon", "parking", "toll", "metro", "transit", "bus fare", "train", "amtrak", "car wash", "auto repair", "加油", "油费", "滴滴", "地铁", "公交", "停车", "出租车", "高铁"},
			confidence: 0.80,
		},
		{
			category:   models.CategoryHealthcare,
			keywords:   []string{"pharmacy", "cvs", "walgreens", "hospital", "clinic", "doctor", "dental", "dentist", "medical", "optometr", "prescription", "医院", "药", "诊所", "医疗", "体检"},
			confidence: 0.85,
		},
		{
			category:   models.CategoryEducation,
			keywords:   []string{"tuition", "school", "university", "college", "course", "udemy", "coursera", "textbook", "学费", "培训", "教育", "课程", "学校"},
			confidence: 0.80,
		},
		{
			category:   models.CategoryEntertainment,
			keywords:   []string{"netflix", "spotify", "hulu", "disney", "movie", "cinema", "theater", "theatre", "concert", "steam", "playstation", "xbox", "ticket", "电影", "游戏", "会员", "娱乐", "ktv"},
			confidence: 0.80,
		},
		{
			category:   models.CategoryShopping,
			keywords:   []string{"amazon", "target", "walmart", "costco", "ebay", "mall", "store", "shop", "clothing", "apparel", "ikea", "best buy", "淘宝", "京东", "天猫", "拼多多", "购物", "商场"},
			confidence: 0.75,
		},
	}
}

func defaultMerchantPatterns() []merchantPattern {
	return []merchantPattern{
		{name: "Starbucks", category: models.CategoryFoodDining, confidence: 0.95},
		{name: "McDonald's", category: models.CategoryFoodDining, confidence: 0.95},
		{name: "Chipotle", category: models.CategoryFoodDining, confidence: 0.95},
		{name: "Whole Foods", category: models.CategoryFoodDining, confidence: 0.95},
		{name: "Trader Joe's", category: models.CategoryFoodDining, confidence: 0.95},
		{name: "Uber Eats", category: models.CategoryFoodDining, confidence: 0.95},
		{name: "DoorDash", category: models.CategoryFoodDining, confidence: 0.95},
		{name: "Uber", category: models.CategoryTransportation, confidence: 0.90},
		{name: "Lyft", category: models.CategoryTransportation, confidence: 0.95},
		{name: "Shell", category: models.CategoryTransportation, confidence: 0.90},
		{name: "Chevron", category: models.CategoryTransportation, confidence: 0.95},
		{name: "ExxonMobil", category: models.CategoryTransportation, confidence: 0.95},
		{name: "Amazon", category: models.CategoryShopping, confidence: 0.90},
		{name: "Target", category: models.CategoryShopping, confidence: 0.90},
		{name: "Best Buy", category: models.CategoryShopping, confidence: 0.95},
		{name: "IKEA", category: models.CategoryShopping, confidence: 0.95},
		{name: "Netflix", category: models.CategoryEntertainment, confidence: 0.95},
		{name: "Spotify", category: models.CategoryEntertainment, confidence: 0.95},
		{name: "Disney+", category: models.CategoryEntertainment, confidence: 0.95},
		{name: "Verizon", category: models.CategoryBillsUtilities, confidence: 0.95},
		{name: "Comcast", category: models.CategoryBillsUtilities, confidence: 0.95},
		{name: "PG&E", category: models.CategoryBillsUtilities, confidence: 0.95},
		{name: "CVS Pharmacy", category: models.CategoryHealthcare, confidence: 0.95},
		{name: "Walgreens", category: models.CategoryHealthcare, confidence: 0.95},
		{name: "Coursera", category: models.CategoryEducation, confidence: 0.95},
		{name: "Udemy", category: models.CategoryEducation, confidence: 0.95},
	}
}

// calculateSimilarity calculates the similarity score between two strings using Levenshtein distance
func calculateSimilarity(s1, s2 string) float64 {
	if s1 == s2 {
		return 1.0
	}

	r1, r2 := []rune(s1), []rune(s2)
	if len(r1) == 0 || len(r2) == 0 {
		return 0.0
	}

	distance := levenshteinDistance(r1, r2)
	maxLen := len(r1)
	if len(r2) > maxLen {
		maxLen = len(r2)
	}

	return 1.0 - float64(distance)/float64(maxLen)
}

// levenshteinDistance works on runes so CJK merchant names compare per character
func levenshteinDistance(s1, s2 []rune) int {
	if len(s1) == 0 {
		return len(s2)
	}
	if len(s2) == 0 {
		return len(s1)
	}

	prev := make([]int, len(s2)+1)
	curr := make([]int, len(s2)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(s1); i++ {
		curr[0] = i
		for j := 1; j <= len(s2); j++ {
			cost := 1
			if s1[i-1] == s2[j-1] {
				cost = 0
			}
			curr[j] = min(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}

	return prev[len(s2)]
}

// normalizeForMatching normalizes strings for consistent matching
func normalizeForMatching(s string) string {
	s = strings.ToLower(s)
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "-", "")
	s = strings.ReplaceAll(s, "_", "")
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "'", "")
	s = strings.ReplaceAll(s, ".", "")
	return s
}
