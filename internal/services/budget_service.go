package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"finn-budget/internal/dto"
	"finn-budget/internal/llm"
	"finn-budget/internal/models"
	"finn-budget/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrBudgetIncomeUnknown = errors.New("monthly income is unknown; set it on the profile or analyze a statement first")
	ErrBudgetNotFound      = errors.New("no budget found for profile")
	ErrInvalidBudgetReply  = errors.New("budget reply has no usable allocations")
	ErrEmptyChatMessage    = errors.New("chat message is empty")
)

const (
	ChatSourceLLM      = "llm"
	ChatSourceFallback = "fallback"

	maxRecommendations      = 5
	minEmergencyFundMonths  = 3
	lowSavingsRateThreshold = 0.10
	budgetPercentagePlaces  = 2
	budgetAmountPlaces      = 2
)

var hundred = decimal.NewFromInt(100)

// staticTemplate is the fallback split of monthly income
var staticTemplate = []struct {
	Category   string
	Percentage int64
}{
	{models.CategoryHousing, 30},
	{models.CategoryFoodDining, 15},
	{models.CategoryTransportation, 10},
	{models.CategoryBillsUtilities, 10},
	{models.CategoryHealthcare, 5},
	{models.CategoryEntertainment, 5},
	{models.CategoryShopping, 5},
	{models.CategoryEducation, 5},
	{models.CategorySavings, 15},
}

// BudgetCategories lists the categories a budget line may use
func BudgetCategories() []string {
	return []string{
		models.CategoryHousing,
		models.CategoryFoodDining,
		models.CategoryTransportation,
		models.CategoryBillsUtilities,
		models.CategoryHealthcare,
		models.CategoryInsurance,
		models.CategoryEntertainment,
		models.CategoryShopping,
		models.CategoryEducation,
		models.CategorySavings,
		models.CategoryOther,
	}
}

func isBudgetCategory(category string) bool {
	for _, c := range BudgetCategories() {
		if c == category {
			return true
		}
	}
	return false
}

// BudgetServiceDeps collects the collaborators of the budget service
type BudgetServiceDeps struct {
	Profiles       repositories.ProfileStore
	Analyses       repositories.ExpenseAnalysisRepositoryInterface
	Budgets        repositories.BudgetRepositoryInterface
	Completer      llm.Completer
	CircuitBreaker CircuitBreakerInterface
	AuditService   AuditServiceInterface
	AnalysisLogger AnalysisLoggerInterface
	Metrics        MetricsRecorderInterface
}

type budgetService struct {
	profiles       repositories.ProfileStore
	analyses       repositories.ExpenseAnalysisRepositoryInterface
	budgets        repositories.BudgetRepositoryInterface
	completer      llm.Completer
	circuitBreaker CircuitBreakerInterface
	auditService   AuditServiceInterface
	analysisLogger AnalysisLoggerInterface
	metrics        MetricsRecorderInterface
	now            func() time.Time
}

// NewBudgetService creates the budget and chat service
func NewBudgetService(deps BudgetServiceDeps) BudgetServiceInterface {
	s := &budgetService{
		profiles:       deps.Profiles,
		analyses:       deps.Analyses,
		budgets:        deps.Budgets,
		completer:      deps.Completer,
		circuitBreaker: deps.CircuitBreaker,
		auditService:   deps.AuditService,
		analysisLogger: deps.AnalysisLogger,
		metrics:        deps.Metrics,
		now:            time.Now,
	}

	if s.completer == nil {
		s.completer = llm.DisabledCompleter{}
	}
	if s.circuitBreaker == nil {
		s.circuitBreaker = NewCircuitBreaker(DefaultCircuitBreakerConfig())
	}
	if s.analysisLogger == nil {
		s.analysisLogger = NewAnalysisLogger(slog.Default())
	}
	if s.metrics == nil {
		s.metrics = NewNoopMetrics()
	}

	return s
}

// GenerateBudget builds a monthly budget from the profile and its latest
// analysis. The model is asked first; any failure produces the static template.
func (s *budgetService) GenerateBudget(ctx context.Context, profileID uuid.UUID) (*models.Budget, error) {
	profile, metadata, err := s.loadContext(profileID)
	if err != nil {
		return nil, err
	}

	income := budgetIncome(profile, metadata)
	if !income.IsPositive() {
		return nil, ErrBudgetIncomeUnknown
	}

	budget := &models.Budget{
		ID:            uuid.New(),
		ProfileID:     profileID,
		MonthlyIncome: income.Round(budgetAmountPlaces),
		CreatedAt:     s.now().UTC(),
	}

	if reply, ok := s.requestBudget(ctx, profile, metadata); ok {
		allocations, err := NormalizeBudgetReply(reply, income)
		if err == nil {
			budget.Source = models.BudgetSourceLLM
			budget.Allocations = allocations
			budget.Recommendations = trimRecommendations(reply.Recommendations)
			budget.Summary = strings.TrimSpace(reply.Summary)
		} else {
			slog.Warn("discarding budget reply", "profile_id", profileID, "error", err)
		}
	}

	if budget.Source == "" {
		budget.Source = models.BudgetSourceTemplate
		budget.Allocations = StaticBudgetTemplate(income)
		budget.Recommendations = HeuristicRecommendations(metadata)
		budget.Summary = fmt.Sprintf("Standard split of %s monthly income.", income.StringFixed(2))
	}
	if budget.Recommendations == nil {
		budget.Recommendations = []string{}
	}

	if err := s.budgets.Create(budget); err != nil {
		return nil, fmt.Errorf("failed to save budget: %w", err)
	}

	if s.auditService != nil {
		if err := s.auditService.LogBudgetGenerated(profileID, budget.ID, budget.Source); err != nil {
			slog.Warn("failed to write budget audit log", "profile_id", profileID, "error", err)
		}
	}
	s.metrics.IncrementCounter(MetricBudgetGenerated, map[string]string{"source": budget.Source})
	s.analysisLogger.LogBudgetGenerated(ctx, profileID, budget.Source, len(budget.Allocations))

	return budget, nil
}

func (s *budgetService) GetLatestBudget(profileID uuid.UUID) (*models.Budget, error) {
	budget, err := s.budgets.GetLatestByProfileID(profileID)
	if err != nil {
		if errors.Is(err, repositories.ErrBudgetNotFound) {
			return nil, ErrBudgetNotFound
		}
		return nil, fmt.Errorf("failed to load budget: %w", err)
	}
	return budget, nil
}

// Chat answers a free-form question. Without a model reply it returns a
// canned answer that points at the largest spending category.
func (s *budgetService) Chat(ctx context.Context, profileID uuid.UUID, message string) (*dto.ChatResponse, error) {
	if strings.TrimSpace(message) == "" {
		return nil, ErrEmptyChatMessage
	}

	profile, metadata, err := s.loadContext(profileID)
	if err != nil {
		return nil, err
	}

	response := &dto.ChatResponse{Source: ChatSourceFallback}
	if reply, ok := s.complete(ctx, "chat", MetricLLMChatTime, llm.ChatPrompt(profile, metadata, message)); ok {
		response.Reply = strings.TrimSpace(reply)
		response.Source = ChatSourceLLM
	}
	if response.Reply == "" {
		response.Reply = FallbackChatReply(metadata)
		response.Source = ChatSourceFallback
	}

	if s.auditService != nil {
		if err := s.auditService.LogChatReply(profileID, response.Source); err != nil {
			slog.Warn("failed to write chat audit log", "profile_id", profileID, "error", err)
		}
	}
	s.metrics.IncrementCounter(MetricChatReply, map[string]string{"source": response.Source})

	return response, nil
}

// loadContext returns the profile and, when one exists, its latest metadata
func (s *budgetService) loadContext(profileID uuid.UUID) (*models.Profile, *models.ExpenseMetadata, error) {
	profile, err := s.profiles.Get(profileID)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, nil, ErrProfileNotFound
		}
		return nil, nil, fmt.Errorf("failed to load profile: %w", err)
	}

	analysis, err := s.analyses.GetLatestByProfileID(profileID)
	if err != nil {
		if errors.Is(err, repositories.ErrAnalysisNotFound) {
			return profile, nil, nil
		}
		return nil, nil, fmt.Errorf("failed to load analysis: %w", err)
	}

	return profile, &analysis.Metadata, nil
}

func (s *budgetService) requestBudget(ctx context.Context, profile *models.Profile, metadata *models.ExpenseMetadata) (llm.BudgetReply, bool) {
	raw, ok := s.complete(ctx, "budget", MetricLLMBudgetTime, llm.BudgetPrompt(profile, metadata, BudgetCategories()))
	if !ok {
		return llm.BudgetReply{}, false
	}

	result := llm.Decode[llm.BudgetReply](raw)
	if !result.IsOk() {
		s.metrics.IncrementCounter(MetricLLMRequest, map[string]string{"operation": "budget", "status": "parse_error"})
		slog.Warn("budget reply could not be parsed", "error", result.Err())
		return llm.BudgetReply{}, false
	}
	return result.Value()
}

// complete makes one guarded model call. ok is false when the model is
// disabled, the breaker is open, or the call failed.
func (s *budgetService) complete(ctx context.Context, operation, durationMetric, prompt string) (string, bool) {
	if !llm.Enabled(s.completer) {
		return "", false
	}
	if !s.circuitBreaker.Allow() {
		s.metrics.IncrementCounter(MetricLLMRequest, map[string]string{"operation": operation, "status": "skipped"})
		return "", false
	}

	start := s.now()
	raw, err := s.completer.Complete(ctx, prompt)
	duration := s.now().Sub(start)
	s.metrics.RecordProcessingTime(durationMetric, duration)

	if err != nil {
		s.circuitBreaker.RecordFailure()
		s.metrics.IncrementCounter(MetricLLMRequest, map[string]string{"operation": operation, "status": "error"})
		s.analysisLogger.LogLLMCall(ctx, operation, "error", duration.Milliseconds())
		return "", false
	}

	s.circuitBreaker.RecordSuccess()
	s.metrics.IncrementCounter(MetricLLMRequest, map[string]string{"operation": operation, "status": "ok"})
	s.analysisLogger.LogLLMCall(ctx, operation, "ok", duration.Milliseconds())
	return raw, true
}

// budgetIncome prefers the stated income and falls back to the estimate from
// the latest analysis
func budgetIncome(profile *models.Profile, metadata *models.ExpenseMetadata) decimal.Decimal {
	if profile.HasKnownIncome() {
		return profile.MonthlyIncome
	}
	if metadata != nil && metadata.Insights.EstimatedIncome.IsPositive() {
		return metadata.Insights.EstimatedIncome
	}
	return decimal.Zero
}

// StaticBudgetTemplate splits income with the fixed template percentages
func StaticBudgetTemplate(income decimal.Decimal) []models.BudgetAllocation {
	allocations := make([]models.BudgetAllocation, 0, len(staticTemplate))
	for _, line := range staticTemplate {
		percentage := decimal.NewFromInt(line.Percentage)
		allocations = append(allocations, models.BudgetAllocation{
			Category:   line.Category,
			Percentage: percentage,
			Amount:     allocationAmount(income, percentage),
		})
	}
	return allocations
}

// NormalizeBudgetReply validates the model's allocations and rescales them so
// the percentages sum to exactly 100. Lines with unknown categories or
// negative percentages are dropped and duplicate categories merged. Any
// rounding remainder goes to the largest line.
func NormalizeBudgetReply(reply llm.BudgetReply, income decimal.Decimal) ([]models.BudgetAllocation, error) {
	var (
		order  []string
		totals = make(map[string]decimal.Decimal)
		notes  = make(map[string]string)
		sum    = decimal.Zero
	)

	for _, line := range reply.Allocations {
		category := strings.TrimSpace(line.Category)
		if !isBudgetCategory(category) {
			continue
		}
		if math.IsNaN(line.Percentage) || math.IsInf(line.Percentage, 0) || line.Percentage < 0 {
			continue
		}

		percentage := decimal.NewFromFloat(line.Percentage)
		if _, seen := totals[category]; !seen {
			order = append(order, category)
			notes[category] = strings.TrimSpace(line.Note)
		}
		totals[category] = totals[category].Add(percentage)
		sum = sum.Add(percentage)
	}

	if len(order) == 0 || !sum.IsPositive() {
		return nil, ErrInvalidBudgetReply
	}

	allocations := make([]models.BudgetAllocation, 0, len(order))
	assigned := decimal.Zero
	largest := 0
	for i, category := range order {
		percentage := totals[category].Mul(hundred).Div(sum).Round(budgetPercentagePlaces)
		assigned = assigned.Add(percentage)
		allocations = append(allocations, models.BudgetAllocation{
			Category:   category,
			Percentage: percentage,
			Note:       notes[category],
		})
		if percentage.GreaterThan(allocations[largest].Percentage) {
			largest = i
		}
	}

	allocations[largest].Percentage = allocations[largest].Percentage.Add(hundred.Sub(assigned))
	for i := range allocations {
		allocations[i].Amount = allocationAmount(income, allocations[i].Percentage)
	}

	return allocations, nil
}

// HeuristicRecommendations derives advice from the latest analysis. It is
// used with the static template.
func HeuristicRecommendations(metadata *models.ExpenseMetadata) []string {
	if metadata == nil {
		return []string{"Upload a bank statement so Finn can tailor these numbers to your actual spending."}
	}

	var recommendations []string

	for _, expense := range metadata.RecurringExpenses {
		if expense.CanOptimize {
			recommendations = append(recommendations,
				fmt.Sprintf("Review %s (%s %s); it is a recurring cost you may be able to cut.",
					expense.Name, expense.Amount.StringFixed(2), expense.Frequency))
		}
	}

	if metadata.Insights.SavingsRate < lowSavingsRateThreshold {
		recommendations = append(recommendations, "Your savings rate is under 10%; automate a transfer to savings on payday.")
	}

	if metadata.Insights.EmergencyFundMonths < minEmergencyFundMonths {
		recommendations = append(recommendations,
			fmt.Sprintf("Build an emergency fund of at least %d months of expenses.", minEmergencyFundMonths))
	}

	unusual := 0
	for _, anomaly := range metadata.Anomalies {
		if anomaly.Type == models.AnomalyTypeUnusualSpending {
			unusual++
		}
	}
	if unusual > 0 {
		recommendations = append(recommendations,
			fmt.Sprintf("%d unusually large purchase(s) were found; plan big expenses ahead in a sinking fund.", unusual))
	}

	if metadata.SpendingTrend == models.TrendIncreasing {
		recommendations = append(recommendations, "Spending has been rising over the statement period; set category limits for next month.")
	}

	return trimRecommendations(recommendations)
}

// FallbackChatReply is the canned coach answer used when no model reply is available
func FallbackChatReply(metadata *models.ExpenseMetadata) string {
	if metadata == nil || len(metadata.CategoryBreakdown) == 0 {
		return "I can't reach my planning assistant right now. Upload a statement and I'll point out where your money goes."
	}

	category, amount := metadata.LargestCategory()
	return fmt.Sprintf(
		"I can't reach my planning assistant right now, but your biggest spending category is %s at %s over the statement period. Trimming it is usually the fastest way to free up money.",
		category, amount.StringFixed(2),
	)
}

func trimRecommendations(recommendations []string) []string {
	trimmed := make([]string, 0, len(recommendations))
	for _, recommendation := range recommendations {
		if text := strings.TrimSpace(recommendation); text != "" {
			trimmed = append(trimmed, text)
		}
		if len(trimmed) == maxRecommendations {
			break
		}
	}
	return trimmed
}

func allocationAmount(income, percentage decimal.Decimal) decimal.Decimal {
	return income.Mul(percentage).Div(hundred).Round(budgetAmountPlaces)
}
