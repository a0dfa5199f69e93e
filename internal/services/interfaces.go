package services

import (
	"context"
	"time"

	"finn-budget/internal/dto"
	"finn-budget/internal/models"

	"github.com/google/uuid"
)

// RecordNormalizerInterface turns raw statement text into transactions
type RecordNormalizerInterface interface {
	Normalize(content string) (*NormalizationResult, error)
}

// CategoryServiceInterface defines the keyword classifier
type CategoryServiceInterface interface {
	// Classify maps a description to one of the fixed categories, defaulting to Other
	Classify(description string) string

	// CategorizeByMerchant categorizes a transaction based on merchant name
	CategorizeByMerchant(merchantName string) (category string, confidence float64)

	// CategorizeByDescription categorizes a transaction based on description
	CategorizeByDescription(description string) (category string, confidence float64)

	// FuzzyMatchMerchant performs fuzzy matching on merchant names
	FuzzyMatchMerchant(input string) (merchant string, score float64)

	// CategorizeTransaction performs complete categorization using all available data
	CategorizeTransaction(transaction *models.Transaction) *models.CategorizationResult

	// BatchCategorize returns a categorized copy of the transactions
	BatchCategorize(transactions []models.Transaction) []models.Transaction
}

type MerchantAggregatorInterface interface {
	Aggregate(transactions []models.Transaction) []models.MerchantPattern
	TopMerchants(transactions []models.Transaction, limit int) []models.MerchantPattern
}

type RecurrenceDetectorInterface interface {
	Detect(transactions []models.Transaction) []models.RecurringExpense
	Annotate(transactions []models.Transaction) []models.Transaction
}

type SeasonalAnalyzerInterface interface {
	SeasonalPatterns(transactions []models.Transaction) []models.SeasonalPattern
	SpendingTrend(transactions []models.Transaction) string
}

type AnomalyDetectorInterface interface {
	Detect(transactions []models.Transaction) []models.DataAnomaly
}

type LifestyleEngineInterface interface {
	InferLifestyle(transactions []models.Transaction, summary SpendSummary, profile *models.Profile) models.LifestyleProfile
	BuildInsights(transactions []models.Transaction, summary SpendSummary, recurring []models.RecurringExpense, lifestyle models.LifestyleProfile, profile *models.Profile) models.Insights
}

type MetadataAssemblerInterface interface {
	Assemble(transactions []models.Transaction, parts AnalysisParts) *models.ExpenseMetadata
}

// ExpensePipelineInterface is the deterministic analysis pipeline. None of
// its methods touch storage or the network.
type ExpensePipelineInterface interface {
	Parse(content string) (*NormalizationResult, error)
	Categorize(transactions []models.Transaction) []models.Transaction
	Analyze(ctx context.Context, input PipelineInput) (*PipelineResult, error)
	AnalyzeLocal(content string, profile *models.Profile) (*PipelineResult, error)
}

// ExpenseAnalysisServiceInterface runs and stores analyses for a profile
type ExpenseAnalysisServiceInterface interface {
	Analyze(ctx context.Context, profileID uuid.UUID, upload StatementUpload) (*models.ExpenseAnalysis, error)
	GetLatest(profileID uuid.UUID) (*models.ExpenseAnalysis, error)
}

type ProfileServiceInterface interface {
	CreateProfile(ctx context.Context, req *dto.CreateProfileRequest, ipAddress, userAgent string) (*dto.CreateProfileResponse, error)
	GetProfile(profileID uuid.UUID) (*models.Profile, error)
	UpdateProfile(ctx context.Context, profileID uuid.UUID, req *dto.UpdateProfileRequest, ipAddress, userAgent string) (*models.Profile, error)
	DeleteProfile(ctx context.Context, profileID uuid.UUID, ipAddress, userAgent string) error
	GetActivity(profileID uuid.UUID, offset, limit int) (*dto.ActivityPage, error)
}

type BudgetServiceInterface interface {
	GenerateBudget(ctx context.Context, profileID uuid.UUID) (*models.Budget, error)
	GetLatestBudget(profileID uuid.UUID) (*models.Budget, error)
	Chat(ctx context.Context, profileID uuid.UUID, message string) (*dto.ChatResponse, error)
}

// AuditServiceInterface defines the contract for audit logging operations
type AuditServiceInterface interface {
	CreateAuditLog(log *models.AuditLog) error
	GetProfileActivity(profileID uuid.UUID, offset, limit int) ([]*models.AuditLog, int64, error)
	PurgeBefore(cutoff time.Time) (int64, error)
	LogProfileCreated(profileID uuid.UUID, ipAddress, userAgent string) error
	LogProfileUpdated(profileID uuid.UUID, ipAddress, userAgent string, changes map[string]interface{}) error
	LogProfileDeleted(profileID uuid.UUID, ipAddress, userAgent string) error
	LogAnalysisCompleted(profileID, analysisID uuid.UUID, transactionCount int, categorizationSource string) error
	LogAnalysisFailed(profileID uuid.UUID, reason string) error
	LogBudgetGenerated(profileID, budgetID uuid.UUID, source string) error
	LogChatReply(profileID uuid.UUID, source string) error
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

// StatementGeneratorInterface generates realistic sample statements
type StatementGeneratorInterface interface {
	Generate(start time.Time, months int) []models.StatementLine
	Render(lines []models.StatementLine) string
	MerchantPool() []models.MerchantInfo
}

type TokenServiceInterface interface {
	GenerateSessionToken(profileID uuid.UUID) (string, time.Time, error)
	ValidateSessionToken(tokenString string) (*models.SessionClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
}

type AnalysisLoggerInterface interface {
	LogAnalysisStarted(ctx context.Context, profileID uuid.UUID, source string, sizeBytes int)
	LogAnalysisCompleted(ctx context.Context, profileID uuid.UUID, transactionCount int, categorizationSource string, durationMs int64)
	LogAnalysisFailed(ctx context.Context, profileID uuid.UUID, errorMsg string, durationMs int64)
	LogCategorizationFallback(ctx context.Context, reason string, transactionCount int)
	LogLLMCall(ctx context.Context, operation, status string, durationMs int64)
	LogCircuitBreakerStateChange(ctx context.Context, service string, oldState, newState string)
	LogStatementArchived(ctx context.Context, profileID uuid.UUID, uri string)
	LogBudgetGenerated(ctx context.Context, profileID uuid.UUID, source string, allocationCount int)
}

type ProfileLoggerInterface interface {
	LogProfileCreated(ctx context.Context, profileID uuid.UUID, hasIncome bool)
	LogProfileUpdated(ctx context.Context, profileID uuid.UUID, updatedFields []string)
	LogProfileDeleted(ctx context.Context, profileID uuid.UUID)
	LogValidationFailure(ctx context.Context, operation string, errorMsg string)
	LogAuthorizationFailure(ctx context.Context, operation string, profileID, tokenProfileID uuid.UUID)
}

type CircuitBreakerInterface interface {
	Allow() bool
	IsOpen() bool
	RecordSuccess()
	RecordFailure()
	GetState() models.CircuitBreakerState
	Reset()
	GetFailureCount() int
}
