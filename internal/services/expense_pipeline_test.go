package services

import (
	"context"
	"testing"
	"time"

	"finn-budget/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ExpensePipelineTestSuite struct {
	suite.Suite
	pipeline ExpensePipelineInterface
}

func TestExpensePipelineSuite(t *testing.T) {
	suite.Run(t, new(ExpensePipelineTestSuite))
}

func (s *ExpensePipelineTestSuite) SetupTest() {
	s.pipeline = NewExpensePipeline(fixedNow)
}

func (s *ExpensePipelineTestSuite) TestAnalyzeLocal_SampleStatement() {
	result, err := s.pipeline.AnalyzeLocal(sampleCSV, nil)
	s.Require().NoError(err)

	metadata := result.Metadata
	s.Equal(12, metadata.TransactionCount)
	s.Equal("6252.76", metadata.TotalExpenses.String())
	s.Equal(models.CategorizationSourceHeuristic, metadata.CategorizationSource)
	s.True(metadata.DataQuality.HeaderDetected)

	breakdownTotal := decimal.Zero
	for _, amount := range metadata.CategoryBreakdown {
		breakdownTotal = breakdownTotal.Add(amount)
	}
	s.True(breakdownTotal.Equal(metadata.TotalExpenses))
	s.Equal("6000", metadata.CategoryBreakdown[models.CategoryHousing].String())

	s.Require().Len(metadata.RecurringExpenses, 2)
	s.Equal("Rent Payment", metadata.RecurringExpenses[0].Name)
	s.Equal(models.FrequencyMonthly, metadata.RecurringExpenses[0].Frequency)
	s.Equal("Netflix Subscription", metadata.RecurringExpenses[1].Name)
	s.Equal(1, metadata.Insights.SubscriptionCount)

	s.Require().NotEmpty(metadata.TopMerchants)
	s.Equal("Rent Payment", metadata.TopMerchants[0].Name)

	for _, transaction := range result.Transactions {
		expected := transaction.Description == "Rent Payment" || transaction.Description == "Netflix Subscription"
		s.Equal(expected, transaction.IsRecurring, transaction.Description)
	}
}

func (s *ExpensePipelineTestSuite) TestAnalyzeLocal_MonthlyRent() {
	result, err := s.pipeline.AnalyzeLocal("2024-01-01,Rent,8000\n2024-02-01,Rent,8000\n2024-03-01,Rent,8000", nil)
	s.Require().NoError(err)

	s.Require().Len(result.Metadata.RecurringExpenses, 1)
	rent := result.Metadata.RecurringExpenses[0]
	s.Equal("Rent", rent.Name)
	s.Equal(models.FrequencyMonthly, rent.Frequency)
	s.True(decimal.NewFromInt(8000).Equal(rent.Amount), rent.Amount.String())
	s.True(date(2024, time.April, 1).Equal(rent.NextDueDate), rent.NextDueDate.String())
	s.True(decimal.NewFromInt(24000).Equal(result.Metadata.TotalExpenses))
}

func (s *ExpensePipelineTestSuite) TestAnalyze_Idempotent() {
	parsed, err := s.pipeline.Parse(sampleCSV)
	s.Require().NoError(err)
	input := PipelineInput{
		Transactions: s.pipeline.Categorize(parsed.Transactions),
		Quality:      parsed.Quality,
	}

	first, err := s.pipeline.Analyze(context.Background(), input)
	s.Require().NoError(err)
	second, err := s.pipeline.Analyze(context.Background(), input)
	s.Require().NoError(err)

	s.Equal(first.Metadata, second.Metadata)
	s.Equal(first.Transactions, second.Transactions)
}

func (s *ExpensePipelineTestSuite) TestAnalyze_DoesNotMutateInput() {
	input := rentStatement()

	result, err := s.pipeline.Analyze(context.Background(), PipelineInput{Transactions: input})
	s.Require().NoError(err)

	s.True(result.Transactions[0].IsRecurring)
	for _, transaction := range input {
		s.False(transaction.IsRecurring)
	}
}

func (s *ExpensePipelineTestSuite) TestAnalyze_Empty() {
	result, err := s.pipeline.Analyze(context.Background(), PipelineInput{})
	s.ErrorIs(err, ErrNoValidTransactions)
	s.Nil(result)

	result, err = s.pipeline.AnalyzeLocal("   ", nil)
	s.ErrorIs(err, ErrNoValidTransactions)
	s.Nil(result)
}

func (s *ExpensePipelineTestSuite) TestAnalyze_CancelledContext() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := s.pipeline.Analyze(ctx, PipelineInput{Transactions: rentStatement()})
	s.ErrorIs(err, context.Canceled)
	s.Nil(result)
}

func (s *ExpensePipelineTestSuite) TestAnalyzeLocal_UsesProfile() {
	profile := &models.Profile{Name: "Jo", MonthlyIncome: decimal.NewFromInt(9000), Location: "Austin"}

	result, err := s.pipeline.AnalyzeLocal(sampleCSV, profile)
	s.Require().NoError(err)

	s.True(decimal.NewFromInt(9000).Equal(result.Metadata.Insights.EstimatedIncome))
	s.Equal("Austin", result.Metadata.Insights.LocationGuess)
}
