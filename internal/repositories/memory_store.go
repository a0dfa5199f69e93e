package repositories

import (
	"errors"
	"sort"
	"sync"
	"time"

	"finn-budget/internal/models"

	"github.com/google/uuid"
)

// MemoryProfileStore is a ProfileStore backed by a map. It is used when no
// database is configured.
type MemoryProfileStore struct {
	mu       sync.RWMutex
	profiles map[uuid.UUID]models.Profile
}

// NewMemoryProfileStore creates an empty in-memory profile store
func NewMemoryProfileStore() ProfileStore {
	return &MemoryProfileStore{profiles: make(map[uuid.UUID]models.Profile)}
}

func (s *MemoryProfileStore) Get(id uuid.UUID) (*models.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	profile, ok := s.profiles[id]
	if !ok {
		return nil, ErrProfileNotFound
	}
	return &profile, nil
}

func (s *MemoryProfileStore) Put(id uuid.UUID, profile *models.Profile) error {
	if profile == nil {
		return errors.New("profile cannot be nil")
	}
	if profile.ID == uuid.Nil {
		profile.ID = id
	}
	if profile.ID != id {
		return ErrProfileIDMismatch
	}
	if err := profile.Validate(); err != nil {
		return err
	}

	now := time.Now()
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = now
	}
	profile.UpdatedAt = now
	if profile.RiskTolerance == "" {
		profile.RiskTolerance = models.RiskToleranceModerate
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *profile
	stored.Goals = append([]string(nil), profile.Goals...)
	s.profiles[id] = stored
	return nil
}

func (s *MemoryProfileStore) Delete(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.profiles[id]; !ok {
		return ErrProfileNotFound
	}
	delete(s.profiles, id)
	return nil
}

// MemoryExpenseAnalysisRepository keeps one analysis per profile in memory
type MemoryExpenseAnalysisRepository struct {
	mu       sync.RWMutex
	analyses map[uuid.UUID]models.ExpenseAnalysis
}

// NewMemoryExpenseAnalysisRepository creates an empty in-memory analysis repository
func NewMemoryExpenseAnalysisRepository() ExpenseAnalysisRepositoryInterface {
	return &MemoryExpenseAnalysisRepository{analyses: make(map[uuid.UUID]models.ExpenseAnalysis)}
}

func (r *MemoryExpenseAnalysisRepository) Save(analysis *models.ExpenseAnalysis) error {
	if analysis.ID == uuid.Nil {
		analysis.ID = uuid.New()
	}
	now := time.Now()
	if analysis.AnalyzedAt.IsZero() {
		analysis.AnalyzedAt = now
	}
	if analysis.CreatedAt.IsZero() {
		analysis.CreatedAt = now
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.analyses[analysis.ProfileID] = *analysis
	return nil
}

func (r *MemoryExpenseAnalysisRepository) GetLatestByProfileID(profileID uuid.UUID) (*models.ExpenseAnalysis, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	analysis, ok := r.analyses[profileID]
	if !ok {
		return nil, ErrAnalysisNotFound
	}
	return &analysis, nil
}

func (r *MemoryExpenseAnalysisRepository) DeleteByProfileID(profileID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.analyses, profileID)
	return nil
}

// MemoryBudgetRepository keeps budgets in memory, newest last
type MemoryBudgetRepository struct {
	mu      sync.RWMutex
	budgets map[uuid.UUID][]models.Budget
}

// NewMemoryBudgetRepository creates an empty in-memory budget repository
func NewMemoryBudgetRepository() BudgetRepositoryInterface {
	return &MemoryBudgetRepository{budgets: make(map[uuid.UUID][]models.Budget)}
}

func (r *MemoryBudgetRepository) Create(budget *models.Budget) error {
	if err := budget.Validate(); err != nil {
		return err
	}
	if budget.ID == uuid.Nil {
		budget.ID = uuid.New()
	}
	if budget.CreatedAt.IsZero() {
		budget.CreatedAt = time.Now()
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.budgets[budget.ProfileID] = append(r.budgets[budget.ProfileID], *budget)
	return nil
}

func (r *MemoryBudgetRepository) GetLatestByProfileID(profileID uuid.UUID) (*models.Budget, error) {
	budgets, err := r.ListByProfileID(profileID, 1)
	if err != nil {
		return nil, err
	}
	if len(budgets) == 0 {
		return nil, ErrBudgetNotFound
	}
	return budgets[0], nil
}

func (r *MemoryBudgetRepository) ListByProfileID(profileID uuid.UUID, limit int) ([]*models.Budget, error) {
	if limit <= 0 || limit > 100 {
		limit = defaultBudgetListLimit
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	stored := r.budgets[profileID]
	result := make([]*models.Budget, 0, min(limit, len(stored)))
	for i := len(stored) - 1; i >= 0 && len(result) < limit; i-- {
		budget := stored[i]
		result = append(result, &budget)
	}
	return result, nil
}

func (r *MemoryBudgetRepository) DeleteByProfileID(profileID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.budgets, profileID)
	return nil
}

// MemoryAuditLogRepository keeps audit logs in memory
type MemoryAuditLogRepository struct {
	mu   sync.RWMutex
	logs []models.AuditLog
}

// NewMemoryAuditLogRepository creates an empty in-memory audit log repository
func NewMemoryAuditLogRepository() AuditLogRepositoryInterface {
	return &MemoryAuditLogRepository{}
}

func (r *MemoryAuditLogRepository) Create(log *models.AuditLog) error {
	if log.ID == uuid.Nil {
		log.ID = uuid.New()
	}
	if log.CreatedAt.IsZero() {
		log.CreatedAt = time.Now()
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.logs = append(r.logs, *log)
	return nil
}

func (r *MemoryAuditLogRepository) GetByProfileID(profileID uuid.UUID, offset, limit int) ([]*models.AuditLog, int64, error) {
	if profileID == uuid.Nil {
		return nil, 0, errors.New("invalid profile ID")
	}
	return r.filter(func(log *models.AuditLog) bool {
		return log.ProfileID != nil && *log.ProfileID == profileID
	}, offset, limit)
}

func (r *MemoryAuditLogRepository) DeleteBefore(cutoff time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.logs[:0]
	var deleted int64
	for _, log := range r.logs {
		if log.CreatedAt.Before(cutoff) {
			deleted++
			continue
		}
		kept = append(kept, log)
	}
	r.logs = kept
	return deleted, nil
}

func (r *MemoryAuditLogRepository) filter(match func(*models.AuditLog) bool, offset, limit int) ([]*models.AuditLog, int64, error) {
	offset, limit = NormalizeAuditPage(offset, limit)

	r.mu.RLock()
	matched := make([]*models.AuditLog, 0)
	for i := range r.logs {
		if match(&r.logs[i]) {
			log := r.logs[i]
			matched = append(matched, &log)
		}
	}
	r.mu.RUnlock()

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := int64(len(matched))
	if offset >= len(matched) {
		return []*models.AuditLog{}, total, nil
	}
	end := min(offset+limit, len(matched))
	return matched[offset:end], total, nil
}
