package services

import (
	"errors"
	"testing"
	"time"

	"finn-budget/internal/models"
	"finn-budget/internal/repositories/repository_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// AuditServiceTestSuite is the test suite for AuditService
type AuditServiceTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockRepo *repository_mocks.MockAuditLogRepositoryInterface
	service  AuditServiceInterface
}

func (s *AuditServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRepo = repository_mocks.NewMockAuditLogRepositoryInterface(s.ctrl)
	s.service = NewAuditService(s.mockRepo)
}

func (s *AuditServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestAuditServiceSuite(t *testing.T) {
	suite.Run(t, new(AuditServiceTestSuite))
}

func (s *AuditServiceTestSuite) TestValidateActivityType() {
	tests := []struct {
		name    string
		action  string
		wantErr bool
	}{
		{name: "profile created", action: models.AuditActionProfileCreated},
		{name: "analysis completed", action: models.AuditActionAnalysisCompleted},
		{name: "chat reply", action: models.AuditActionChatReply},
		{name: "unknown", action: "login", wantErr: true},
		{name: "empty", action: "", wantErr: true},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			err := ValidateActivityType(tt.action)
			if tt.wantErr {
				s.Error(err)
				return
			}
			s.NoError(err)
		})
	}
}

func (s *AuditServiceTestSuite) TestCreateAuditLog_NilLog() {
	err := s.service.CreateAuditLog(nil)
	s.ErrorIs(err, ErrInvalidAuditLog)
}

func (s *AuditServiceTestSuite) TestCreateAuditLog_InvalidAction() {
	err := s.service.CreateAuditLog(&models.AuditLog{Action: "budget_shredded", Resource: "budget"})
	s.Error(err)
}

func (s *AuditServiceTestSuite) TestCreateAuditLog_RepositoryError() {
	s.mockRepo.EXPECT().
		Create(gomock.Any()).
		Return(errors.New("database error")).
		Times(1)

	err := s.service.LogProfileDeleted(uuid.New(), "10.0.0.1", "curl/8.0")
	s.Error(err)
	s.Contains(err.Error(), "failed to create audit log")
}

func (s *AuditServiceTestSuite) TestLogProfileUpdated_RecordsSortedFieldNames() {
	profileID := uuid.New()

	s.mockRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(l *models.AuditLog) error {
			s.Equal(models.AuditActionProfileUpdated, l.Action)
			s.Equal(profileID, *l.ProfileID)
			s.Equal([]string{"location", "monthly_income"}, l.Metadata["fields"])
			return nil
		}).
		Times(1)

	err := s.service.LogProfileUpdated(profileID, "10.0.0.1", "curl/8.0", map[string]interface{}{
		"monthly_income": "6000",
		"location":       "Seattle",
	})
	s.NoError(err)
}

func (s *AuditServiceTestSuite) TestLogAnalysisCompleted() {
	profileID, analysisID := uuid.New(), uuid.New()

	s.mockRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(l *models.AuditLog) error {
			s.Equal(models.AuditActionAnalysisCompleted, l.Action)
			s.Equal("analysis", l.Resource)
			s.Equal(analysisID.String(), l.Metadata["analysis_id"])
			s.Equal(42, l.Metadata["transaction_count"])
			s.Equal(models.CategorizationSourceHeuristic, l.Metadata["categorization_source"])
			return nil
		}).
		Times(1)

	s.NoError(s.service.LogAnalysisCompleted(profileID, analysisID, 42, models.CategorizationSourceHeuristic))
}

func (s *AuditServiceTestSuite) TestLogChatReply() {
	s.mockRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(l *models.AuditLog) error {
			s.Equal(models.AuditActionChatReply, l.Action)
			s.Equal("fallback", l.Metadata["source"])
			return nil
		}).
		Times(1)

	s.NoError(s.service.LogChatReply(uuid.New(), "fallback"))
}

func (s *AuditServiceTestSuite) TestGetProfileActivity() {
	profileID := uuid.New()
	logs := []*models.AuditLog{{ID: uuid.New(), ProfileID: &profileID, Action: models.AuditActionBudgetGenerated}}

	s.Run("delegates to repository", func() {
		s.mockRepo.EXPECT().GetByProfileID(profileID, 0, 20).Return(logs, int64(1), nil).Times(1)

		result, total, err := s.service.GetProfileActivity(profileID, 0, 20)
		s.NoError(err)
		s.Equal(int64(1), total)
		s.Equal(logs, result)
	})

	s.Run("nil profile id", func() {
		_, _, err := s.service.GetProfileActivity(uuid.Nil, 0, 20)
		s.ErrorIs(err, ErrInvalidProfileID)
	})
}

func (s *AuditServiceTestSuite) TestPurgeBefore() {
	cutoff := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	s.mockRepo.EXPECT().DeleteBefore(cutoff).Return(int64(4), nil)
	deleted, err := s.service.PurgeBefore(cutoff)
	s.NoError(err)
	s.Equal(int64(4), deleted)

	s.mockRepo.EXPECT().DeleteBefore(cutoff).Return(int64(0), errors.New("database is locked"))
	_, err = s.service.PurgeBefore(cutoff)
	s.ErrorContains(err, "failed to purge audit logs")
}
