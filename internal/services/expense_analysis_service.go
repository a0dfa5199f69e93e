package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"finn-budget/internal/llm"
	"finn-budget/internal/models"
	"finn-budget/internal/repositories"
	"finn-budget/internal/storage"

	"github.com/google/uuid"
)

var (
	ErrProfileNotFound  = errors.New("profile not found")
	ErrAnalysisNotFound = errors.New("no analysis found for profile")
)

const (
	fallbackReasonDisabled    = "llm_disabled"
	fallbackReasonCircuitOpen = "circuit_open"
	fallbackReasonCallFailed  = "llm_error"
	fallbackReasonParseError  = "parse_error"
	fallbackReasonNoLabels    = "no_valid_labels"

	statementContentType = "text/csv"
)

// StatementUpload is the raw statement handed to Analyze
type StatementUpload struct {
	Content  []byte
	FileName string
	Source   string
}

// ExpenseAnalysisOptions tunes the analysis run
type ExpenseAnalysisOptions struct {
	LLMCategorization     bool
	MaxTransactionsForLLM int
	Timeout               time.Duration
	ArchivePrefix         string
}

// ExpenseAnalysisDeps collects the collaborators of the analysis service.
// Nil optional fields fall back to disabled or no-op implementations.
type ExpenseAnalysisDeps struct {
	Pipeline       ExpensePipelineInterface
	Completer      llm.Completer
	CircuitBreaker CircuitBreakerInterface
	Profiles       repositories.ProfileStore
	Analyses       repositories.ExpenseAnalysisRepositoryInterface
	Archive        storage.Archive
	AuditService   AuditServiceInterface
	AnalysisLogger AnalysisLoggerInterface
	Metrics        MetricsRecorderInterface
	Options        ExpenseAnalysisOptions
}

type expenseAnalysisService struct {
	pipeline       ExpensePipelineInterface
	completer      llm.Completer
	circuitBreaker CircuitBreakerInterface
	profiles       repositories.ProfileStore
	analyses       repositories.ExpenseAnalysisRepositoryInterface
	archive        storage.Archive
	auditService   AuditServiceInterface
	analysisLogger AnalysisLoggerInterface
	metrics        MetricsRecorderInterface
	options        ExpenseAnalysisOptions
	now            func() time.Time
}

// NewExpenseAnalysisService creates the service that runs, archives and stores analyses
func NewExpenseAnalysisService(deps ExpenseAnalysisDeps) ExpenseAnalysisServiceInterface {
	s := &expenseAnalysisService{
		pipeline:       deps.Pipeline,
		completer:      deps.Completer,
		circuitBreaker: deps.CircuitBreaker,
		profiles:       deps.Profiles,
		analyses:       deps.Analyses,
		archive:        deps.Archive,
		auditService:   deps.AuditService,
		analysisLogger: deps.AnalysisLogger,
		metrics:        deps.Metrics,
		options:        deps.Options,
		now:            time.Now,
	}

	if s.pipeline == nil {
		s.pipeline = NewExpensePipeline(nil)
	}
	if s.completer == nil {
		s.completer = llm.DisabledCompleter{}
	}
	if s.circuitBreaker == nil {
		s.circuitBreaker = NewCircuitBreaker(DefaultCircuitBreakerConfig())
	}
	if s.archive == nil {
		s.archive = storage.NoopArchive{}
	}
	if s.analysisLogger == nil {
		s.analysisLogger = NewAnalysisLogger(slog.Default())
	}
	if s.metrics == nil {
		s.metrics = NewNoopMetrics()
	}

	return s
}

// Analyze runs the full pipeline for a profile and stores the result as the
// profile's latest analysis
func (s *expenseAnalysisService) Analyze(ctx context.Context, profileID uuid.UUID, upload StatementUpload) (*models.ExpenseAnalysis, error) {
	start := s.now()
	source := upload.Source
	if source == "" {
		source = models.AnalysisSourceInline
	}

	profile, err := s.profiles.Get(profileID)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	if s.options.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.options.Timeout)
		defer cancel()
	}

	s.analysisLogger.LogAnalysisStarted(ctx, profileID, source, len(upload.Content))

	parsed, err := s.pipeline.Parse(string(upload.Content))
	if err != nil {
		s.recordFailure(ctx, profileID, source, "no_transactions", err, start)
		return nil, err
	}

	transactions, categorizationSource := s.categorize(ctx, parsed.Transactions)

	result, err := s.pipeline.Analyze(ctx, PipelineInput{
		Transactions:         transactions,
		Quality:              parsed.Quality,
		Profile:              profile,
		CategorizationSource: categorizationSource,
	})
	if err != nil {
		s.recordFailure(ctx, profileID, source, "pipeline", err, start)
		return nil, fmt.Errorf("failed to analyze statement: %w", err)
	}

	analysis := &models.ExpenseAnalysis{
		ID:                   uuid.New(),
		ProfileID:            profileID,
		Source:               source,
		FileName:             upload.FileName,
		CategorizationSource: categorizationSource,
		TransactionCount:     result.Metadata.TransactionCount,
		TotalExpenses:        result.Metadata.TotalExpenses,
		Metadata:             *result.Metadata,
		AnalyzedAt:           s.now().UTC(),
	}
	analysis.ArchiveURI = s.archiveStatement(ctx, profileID, upload)

	if err := s.analyses.Save(analysis); err != nil {
		s.recordFailure(ctx, profileID, source, "storage", err, start)
		return nil, fmt.Errorf("failed to save analysis: %w", err)
	}

	if s.auditService != nil {
		if err := s.auditService.LogAnalysisCompleted(profileID, analysis.ID, analysis.TransactionCount, categorizationSource); err != nil {
			slog.Warn("failed to write analysis audit log", "profile_id", profileID, "error", err)
		}
	}

	duration := s.now().Sub(start)
	s.metrics.IncrementCounter(MetricAnalysisCompleted, map[string]string{"source": source})
	s.metrics.RecordProcessingTime(MetricAnalysisDuration, duration)
	s.metrics.RecordGauge(MetricAnalysisSize, float64(analysis.TransactionCount), nil)
	s.analysisLogger.LogAnalysisCompleted(ctx, profileID, analysis.TransactionCount, categorizationSource, duration.Milliseconds())

	return analysis, nil
}

// GetLatest returns the most recent analysis for the profile
func (s *expenseAnalysisService) GetLatest(profileID uuid.UUID) (*models.ExpenseAnalysis, error) {
	analysis, err := s.analyses.GetLatestByProfileID(profileID)
	if err != nil {
		if errors.Is(err, repositories.ErrAnalysisNotFound) {
			return nil, ErrAnalysisNotFound
		}
		return nil, fmt.Errorf("failed to load analysis: %w", err)
	}
	return analysis, nil
}

// categorize labels transactions with the model when it is reachable and
// falls back to the keyword classifier otherwise. The second return value is
// the categorization source.
func (s *expenseAnalysisService) categorize(ctx context.Context, transactions []models.Transaction) ([]models.Transaction, string) {
	heuristic := s.pipeline.Categorize(transactions)

	if !s.options.LLMCategorization || !llm.Enabled(s.completer) {
		return heuristic, models.CategorizationSourceHeuristic
	}

	if !s.circuitBreaker.Allow() {
		s.analysisLogger.LogCategorizationFallback(ctx, fallbackReasonCircuitOpen, len(transactions))
		s.metrics.IncrementCounter(MetricLLMRequest, map[string]string{"operation": "categorize", "status": "skipped"})
		return heuristic, models.CategorizationSourceHeuristic
	}

	keys := distinctMerchantKeys(transactions, s.options.MaxTransactionsForLLM)

	start := s.now()
	raw, err := s.completer.Complete(ctx, llm.CategorizationPrompt(keys, models.AllCategories()))
	duration := s.now().Sub(start)
	s.metrics.RecordProcessingTime(MetricLLMCategorizeTime, duration)

	if err != nil {
		s.circuitBreaker.RecordFailure()
		s.metrics.IncrementCounter(MetricLLMRequest, map[string]string{"operation": "categorize", "status": "error"})
		s.analysisLogger.LogLLMCall(ctx, "categorize", "error", duration.Milliseconds())
		reason := fallbackReasonCallFailed
		if errors.Is(err, llm.ErrDisabled) {
			reason = fallbackReasonDisabled
		}
		s.analysisLogger.LogCategorizationFallback(ctx, reason, len(transactions))
		return heuristic, models.CategorizationSourceHeuristic
	}
	s.circuitBreaker.RecordSuccess()

	assignments, ok := llm.Decode[[]llm.CategoryAssignment](raw).Value()
	if !ok {
		s.metrics.IncrementCounter(MetricLLMRequest, map[string]string{"operation": "categorize", "status": "parse_error"})
		s.analysisLogger.LogLLMCall(ctx, "categorize", "parse_error", duration.Milliseconds())
		s.analysisLogger.LogCategorizationFallback(ctx, fallbackReasonParseError, len(transactions))
		return heuristic, models.CategorizationSourceHeuristic
	}

	s.metrics.IncrementCounter(MetricLLMRequest, map[string]string{"operation": "categorize", "status": "ok"})
	s.analysisLogger.LogLLMCall(ctx, "categorize", "ok", duration.Milliseconds())

	labelled, applied := ApplyCategoryAssignments(heuristic, keys, assignments)
	if applied == 0 {
		s.analysisLogger.LogCategorizationFallback(ctx, fallbackReasonNoLabels, len(transactions))
		return heuristic, models.CategorizationSourceHeuristic
	}

	return labelled, models.CategorizationSourceLLM
}

// ApplyCategoryAssignments overwrites the category of every transaction whose
// merchant key received a valid label. keys[i] is the description sent at
// index i. Unknown categories and out-of-range indexes are ignored, leaving
// the existing category in place. It returns the labelled copy and the
// number of transactions relabelled.
func ApplyCategoryAssignments(transactions []models.Transaction, keys []string, assignments []llm.CategoryAssignment) ([]models.Transaction, int) {
	labels := make(map[string]string, len(assignments))
	for _, assignment := range assignments {
		if assignment.Index < 0 || assignment.Index >= len(keys) {
			continue
		}
		category := strings.TrimSpace(assignment.Category)
		if !models.IsValidCategory(category) {
			continue
		}
		labels[keys[assignment.Index]] = category
	}

	labelled := models.CloneTransactions(transactions)
	applied := 0
	for i := range labelled {
		if category, ok := labels[labelled[i].MerchantKey()]; ok {
			labelled[i].Category = category
			applied++
		}
	}

	return labelled, applied
}

// distinctMerchantKeys lists merchant keys in first-seen order, capped at limit
func distinctMerchantKeys(transactions []models.Transaction, limit int) []string {
	seen := make(map[string]bool, len(transactions))
	keys := make([]string, 0, len(transactions))
	for i := range transactions {
		key := transactions[i].MerchantKey()
		if seen[key] {
			continue
		}
		seen[key] = true
		keys = append(keys, key)
		if limit > 0 && len(keys) == limit {
			break
		}
	}
	return keys
}

// archiveStatement stores the raw upload. Archive failures are logged and
// do not fail the analysis.
func (s *expenseAnalysisService) archiveStatement(ctx context.Context, profileID uuid.UUID, upload StatementUpload) string {
	if _, noop := s.archive.(storage.NoopArchive); noop {
		return ""
	}

	key := storage.ObjectKey(s.options.ArchivePrefix, profileID, upload.FileName, s.now())
	uri, err := s.archive.Store(ctx, key, upload.Content, statementContentType)
	if err != nil {
		s.metrics.IncrementCounter(MetricArchiveUpload, map[string]string{"status": "error"})
		slog.Warn("failed to archive statement", "profile_id", profileID, "key", key, "error", err)
		return ""
	}

	s.metrics.IncrementCounter(MetricArchiveUpload, map[string]string{"status": "ok"})
	s.analysisLogger.LogStatementArchived(ctx, profileID, uri)
	return uri
}

func (s *expenseAnalysisService) recordFailure(ctx context.Context, profileID uuid.UUID, source, reason string, err error, start time.Time) {
	s.metrics.IncrementCounter(MetricAnalysisFailed, map[string]string{"source": source, "reason": reason})
	s.analysisLogger.LogAnalysisFailed(ctx, profileID, err.Error(), s.now().Sub(start).Milliseconds())

	if s.auditService != nil {
		if auditErr := s.auditService.LogAnalysisFailed(profileID, reason); auditErr != nil {
			slog.Warn("failed to write analysis audit log", "profile_id", profileID, "error", auditErr)
		}
	}
}
