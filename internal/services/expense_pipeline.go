package services

import (
	"context"
	"fmt"
	"time"

	"finn-budget/internal/models"

	"golang.org/x/sync/errgroup"
)

// PipelineInput is a categorized transaction list ready for analysis
type PipelineInput struct {
	Transactions         []models.Transaction
	Quality              models.DataQuality
	Profile              *models.Profile
	CategorizationSource string
}

// PipelineResult holds the assembled metadata and the transactions annotated
// with their recurring flag
type PipelineResult struct {
	Metadata     *models.ExpenseMetadata
	Transactions []models.Transaction
}

type expensePipeline struct {
	normalizer RecordNormalizerInterface
	classifier CategoryServiceInterface
	merchants  MerchantAggregatorInterface
	recurrence RecurrenceDetectorInterface
	seasonal   SeasonalAnalyzerInterface
	anomalies  AnomalyDetectorInterface
	lifestyle  LifestyleEngineInterface
	assembler  MetadataAssemblerInterface
}

// NewExpensePipeline wires the default analysis components. now is passed to
// the normalizer for undated rows.
func NewExpensePipeline(now func() time.Time) ExpensePipelineInterface {
	return NewExpensePipelineWithClassifier(now, NewCategoryService())
}

// NewExpensePipelineWithClassifier is NewExpensePipeline with a custom keyword classifier
func NewExpensePipelineWithClassifier(now func() time.Time, classifier CategoryServiceInterface) ExpensePipelineInterface {
	return &expensePipeline{
		normalizer: NewRecordNormalizer(now),
		classifier: classifier,
		merchants:  NewMerchantAggregator(),
		recurrence: NewRecurrenceDetector(),
		seasonal:   NewSeasonalAnalyzer(),
		anomalies:  NewAnomalyDetector(),
		lifestyle:  NewLifestyleEngine(),
		assembler:  NewMetadataAssembler(),
	}
}

func (p *expensePipeline) Parse(content string) (*NormalizationResult, error) {
	return p.normalizer.Normalize(content)
}

// Categorize labels every transaction with the keyword classifier
func (p *expensePipeline) Categorize(transactions []models.Transaction) []models.Transaction {
	return p.classifier.BatchCategorize(transactions)
}

// Analyze runs the independent passes concurrently over a shared read-only
// copy of the input, then derives insights and assembles the metadata.
func (p *expensePipeline) Analyze(ctx context.Context, input PipelineInput) (*PipelineResult, error) {
	if len(input.Transactions) == 0 {
		return nil, ErrNoValidTransactions
	}

	transactions := models.CloneTransactions(input.Transactions)
	summary := SummarizeSpend(transactions)

	parts := AnalysisParts{
		Summary:              summary,
		DataQuality:          input.Quality,
		CategorizationSource: input.CategorizationSource,
	}
	if parts.CategorizationSource == "" {
		parts.CategorizationSource = models.CategorizationSourceHeuristic
	}

	var annotated []models.Transaction

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		parts.TopMerchants = p.merchants.TopMerchants(transactions, DefaultTopMerchantLimit)
		return gctx.Err()
	})
	g.Go(func() error {
		parts.RecurringExpenses = p.recurrence.Detect(transactions)
		annotated = p.recurrence.Annotate(transactions)
		return gctx.Err()
	})
	g.Go(func() error {
		parts.SeasonalPatterns = p.seasonal.SeasonalPatterns(transactions)
		parts.SpendingTrend = p.seasonal.SpendingTrend(transactions)
		return gctx.Err()
	})
	g.Go(func() error {
		parts.Anomalies = p.anomalies.Detect(transactions)
		return gctx.Err()
	})
	g.Go(func() error {
		parts.Lifestyle = p.lifestyle.InferLifestyle(transactions, summary, input.Profile)
		return gctx.Err()
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("analysis interrupted: %w", err)
	}

	parts.Insights = p.lifestyle.BuildInsights(transactions, summary, parts.RecurringExpenses, parts.Lifestyle, input.Profile)

	return &PipelineResult{
		Metadata:     p.assembler.Assemble(annotated, parts),
		Transactions: annotated,
	}, nil
}

// AnalyzeLocal parses, classifies with keywords only and analyzes content
// without touching storage or the network
func (p *expensePipeline) AnalyzeLocal(content string, profile *models.Profile) (*PipelineResult, error) {
	parsed, err := p.Parse(content)
	if err != nil {
		return nil, err
	}

	return p.Analyze(context.Background(), PipelineInput{
		Transactions:         p.Categorize(parsed.Transactions),
		Quality:              parsed.Quality,
		Profile:              profile,
		CategorizationSource: models.CategorizationSourceHeuristic,
	})
}
