package services

import (
	"testing"
	"time"

	"finn-budget/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type MerchantAggregatorTestSuite struct {
	suite.Suite
	aggregator MerchantAggregatorInterface
}

func TestMerchantAggregatorSuite(t *testing.T) {
	suite.Run(t, new(MerchantAggregatorTestSuite))
}

func (s *MerchantAggregatorTestSuite) SetupTest() {
	s.aggregator = NewMerchantAggregator()
}

func (s *MerchantAggregatorTestSuite) TestAggregate_SortedByTotalSpend() {
	patterns := s.aggregator.Aggregate(rentStatement())

	s.Require().Len(patterns, 4)
	s.Equal("Rent", patterns[0].Name)
	s.True(decimal.NewFromInt(24000).Equal(patterns[0].TotalSpent))
	s.Equal(3, patterns[0].TransactionCount)
	s.True(decimal.NewFromInt(8000).Equal(patterns[0].AverageAmount))
	s.Equal(date(2024, time.March, 1), patterns[0].LastVisit)
	s.Equal(models.CategoryHousing, patterns[0].Category)

	s.Equal("Shell Gas Station", patterns[1].Name)
	s.Equal("Amazon Marketplace", patterns[2].Name)
	s.Equal("Starbucks Coffee", patterns[3].Name)
}

func (s *MerchantAggregatorTestSuite) TestAggregate_TiesBreakByName() {
	transactions := []models.Transaction{
		txn(date(2024, time.January, 2), "Zeta Books", 20, models.CategoryShopping),
		txn(date(2024, time.January, 3), "Alpha Books", 20, models.CategoryShopping),
	}

	patterns := s.aggregator.Aggregate(transactions)
	s.Require().Len(patterns, 2)
	s.Equal("Alpha Books", patterns[0].Name)
	s.Equal("Zeta Books", patterns[1].Name)
}

func (s *MerchantAggregatorTestSuite) TestAggregate_PrefersMerchantName() {
	first := txn(date(2024, time.January, 2), "POS 1182 STARBUCKS", 5, models.CategoryFoodDining)
	first.MerchantName = "Starbucks"
	second := txn(date(2024, time.January, 9), "POS 2291 STARBUCKS", 7, models.CategoryFoodDining)
	second.MerchantName = "Starbucks"

	patterns := s.aggregator.Aggregate([]models.Transaction{first, second})
	s.Require().Len(patterns, 1)
	s.Equal("Starbucks", patterns[0].Name)
	s.True(decimal.NewFromInt(6).Equal(patterns[0].AverageAmount))
}

func (s *MerchantAggregatorTestSuite) TestVisitFrequency() {
	testCases := []struct {
		count    int
		expected string
	}{
		{1, models.MerchantFrequencyMonthly},
		{3, models.MerchantFrequencyMonthly},
		{4, models.MerchantFrequencyWeekly},
		{19, models.MerchantFrequencyWeekly},
		{20, models.MerchantFrequencyDaily},
		{45, models.MerchantFrequencyDaily},
	}

	for _, tc := range testCases {
		s.Equal(tc.expected, classifyVisitFrequency(tc.count), "count %d", tc.count)
	}
}

func (s *MerchantAggregatorTestSuite) TestTrend() {
	start := date(2024, time.January, 1)
	build := func(amounts ...float64) []models.Transaction {
		transactions := make([]models.Transaction, len(amounts))
		for i, amount := range amounts {
			transactions[i] = txn(start.AddDate(0, 0, 7*i), "Corner Market", amount, models.CategoryFoodDining)
		}
		return transactions
	}

	s.Equal(models.TrendIncreasing, merchantTrend(build(10, 10, 20, 20)))
	s.Equal(models.TrendDecreasing, merchantTrend(build(20, 20, 10, 10)))
	s.Equal(models.TrendStable, merchantTrend(build(10, 10, 10.5, 10.5)))
	s.Equal(models.TrendStable, merchantTrend(build(10, 50, 90)), "fewer than four visits")
}

func (s *MerchantAggregatorTestSuite) TestTrend_UsesDateOrder() {
	transactions := []models.Transaction{
		txn(date(2024, time.April, 1), "Corner Market", 30, models.CategoryFoodDining),
		txn(date(2024, time.January, 1), "Corner Market", 10, models.CategoryFoodDining),
		txn(date(2024, time.March, 1), "Corner Market", 30, models.CategoryFoodDining),
		txn(date(2024, time.February, 1), "Corner Market", 10, models.CategoryFoodDining),
	}

	s.Equal(models.TrendIncreasing, merchantTrend(transactions))
}

func (s *MerchantAggregatorTestSuite) TestTopMerchants_Limit() {
	transactions := rentStatement()

	s.Len(s.aggregator.TopMerchants(transactions, 2), 2)
	s.Len(s.aggregator.TopMerchants(transactions, 10), 4)
	s.Len(s.aggregator.TopMerchants(transactions, 0), 4)
	s.Empty(s.aggregator.TopMerchants(nil, 5))
}
