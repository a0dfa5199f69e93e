package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"finn-budget/internal/dto"
	"finn-budget/internal/models"
	"finn-budget/internal/repositories"

	"github.com/google/uuid"
)

var (
	ErrInvalidProfileData = errors.New("invalid profile data")
)

// ProfileService manages onboarding profiles and their session tokens
type ProfileService struct {
	profiles      repositories.ProfileStore
	analyses      repositories.ExpenseAnalysisRepositoryInterface
	budgets       repositories.BudgetRepositoryInterface
	tokenService  TokenServiceInterface
	auditService  AuditServiceInterface
	profileLogger ProfileLoggerInterface
	metrics       MetricsRecorderInterface
}

// NewProfileService creates a new profile service
func NewProfileService(
	profiles repositories.ProfileStore,
	analyses repositories.ExpenseAnalysisRepositoryInterface,
	budgets repositories.BudgetRepositoryInterface,
	tokenService TokenServiceInterface,
	auditService AuditServiceInterface,
	profileLogger ProfileLoggerInterface,
	metrics MetricsRecorderInterface,
) ProfileServiceInterface {
	if profileLogger == nil {
		profileLogger = NewProfileLogger(slog.Default())
	}
	if metrics == nil {
		metrics = NewNoopMetrics()
	}
	return &ProfileService{
		profiles:      profiles,
		analyses:      analyses,
		budgets:       budgets,
		tokenService:  tokenService,
		auditService:  auditService,
		profileLogger: profileLogger,
		metrics:       metrics,
	}
}

// CreateProfile stores a new profile and issues the session token bound to it
func (s *ProfileService) CreateProfile(ctx context.Context, req *dto.CreateProfileRequest, ipAddress, userAgent string) (*dto.CreateProfileResponse, error) {
	profile := req.ToModel()
	profile.ID = uuid.New()
	if profile.RiskTolerance == "" {
		profile.RiskTolerance = models.RiskToleranceModerate
	}

	if err := profile.Validate(); err != nil {
		s.profileLogger.LogValidationFailure(ctx, "create_profile", err.Error())
		return nil, fmt.Errorf("%w: %v", ErrInvalidProfileData, err)
	}

	if err := s.profiles.Put(profile.ID, profile); err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	token, expiresAt, err := s.tokenService.GenerateSessionToken(profile.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to issue session token: %w", err)
	}

	if err := s.auditService.LogProfileCreated(profile.ID, ipAddress, userAgent); err != nil {
		slog.Warn("failed to write profile audit log", "profile_id", profile.ID, "error", err)
	}
	s.profileLogger.LogProfileCreated(ctx, profile.ID, profile.HasKnownIncome())
	s.metrics.IncrementCounter(MetricProfileEvent, map[string]string{"event": "created"})

	return &dto.CreateProfileResponse{
		Profile:      profile,
		SessionToken: token,
		ExpiresAt:    expiresAt,
	}, nil
}

func (s *ProfileService) GetProfile(profileID uuid.UUID) (*models.Profile, error) {
	profile, err := s.profiles.Get(profileID)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return profile, nil
}

// UpdateProfile applies a partial update. A request that changes nothing
// returns the stored profile without writing.
func (s *ProfileService) UpdateProfile(ctx context.Context, profileID uuid.UUID, req *dto.UpdateProfileRequest, ipAddress, userAgent string) (*models.Profile, error) {
	profile, err := s.GetProfile(profileID)
	if err != nil {
		return nil, err
	}

	changes := req.Apply(profile)
	if len(changes) == 0 {
		return profile, nil
	}

	if err := profile.Validate(); err != nil {
		s.profileLogger.LogValidationFailure(ctx, "update_profile", err.Error())
		return nil, fmt.Errorf("%w: %v", ErrInvalidProfileData, err)
	}

	if err := s.profiles.Put(profileID, profile); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	fields := make([]string, 0, len(changes))
	for field := range changes {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	if err := s.auditService.LogProfileUpdated(profileID, ipAddress, userAgent, changes); err != nil {
		slog.Warn("failed to write profile audit log", "profile_id", profileID, "error", err)
	}
	s.profileLogger.LogProfileUpdated(ctx, profileID, fields)
	s.metrics.IncrementCounter(MetricProfileEvent, map[string]string{"event": "updated"})

	return profile, nil
}

// DeleteProfile removes the profile together with its analysis and budgets
func (s *ProfileService) DeleteProfile(ctx context.Context, profileID uuid.UUID, ipAddress, userAgent string) error {
	if _, err := s.GetProfile(profileID); err != nil {
		return err
	}

	if err := s.analyses.DeleteByProfileID(profileID); err != nil {
		return fmt.Errorf("failed to delete analyses: %w", err)
	}
	if err := s.budgets.DeleteByProfileID(profileID); err != nil {
		return fmt.Errorf("failed to delete budgets: %w", err)
	}
	if err := s.profiles.Delete(profileID); err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return ErrProfileNotFound
		}
		return fmt.Errorf("failed to delete profile: %w", err)
	}

	if err := s.auditService.LogProfileDeleted(profileID, ipAddress, userAgent); err != nil {
		slog.Warn("failed to write profile audit log", "profile_id", profileID, "error", err)
	}
	s.profileLogger.LogProfileDeleted(ctx, profileID)
	s.metrics.IncrementCounter(MetricProfileEvent, map[string]string{"event": "deleted"})

	return nil
}

// GetActivity returns one page of the profile's audit trail, newest first.
func (s *ProfileService) GetActivity(profileID uuid.UUID, offset, limit int) (*dto.ActivityPage, error) {
	if _, err := s.GetProfile(profileID); err != nil {
		return nil, err
	}

	offset, limit = repositories.NormalizeAuditPage(offset, limit)
	entries, total, err := s.auditService.GetProfileActivity(profileID, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile activity: %w", err)
	}
	if entries == nil {
		entries = []*models.AuditLog{}
	}

	return &dto.ActivityPage{
		Entries: entries,
		Total:   total,
		Offset:  offset,
		Limit:   limit,
	}, nil
}
