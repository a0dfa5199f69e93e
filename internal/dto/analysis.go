package dto

import (
	"time"

	"finn-budget/internal/models"

	"github.com/google/uuid"
)

// AnalyzeStatementRequest carries statement text pasted inline instead of uploaded
type AnalyzeStatementRequest struct {
	Content  string `json:"content" validate:"required"`
	FileName string `json:"file_name" validate:"omitempty,max=255"`
}

// AnalysisResponse represents a stored expense analysis
type AnalysisResponse struct {
	ID                   uuid.UUID               `json:"id"`
	ProfileID            uuid.UUID               `json:"profile_id"`
	Source               string                  `json:"source"`
	FileName             string                  `json:"file_name,omitempty"`
	ArchiveURI           string                  `json:"archive_uri,omitempty"`
	CategorizationSource string                  `json:"categorization_source"`
	AnalyzedAt           time.Time               `json:"analyzed_at"`
	Metadata             *models.ExpenseMetadata `json:"metadata"`
}

// NewAnalysisResponse converts a stored analysis into its API shape
func NewAnalysisResponse(analysis *models.ExpenseAnalysis) *AnalysisResponse {
	metadata := analysis.Metadata
	return &AnalysisResponse{
		ID:                   analysis.ID,
		ProfileID:            analysis.ProfileID,
		Source:               analysis.Source,
		FileName:             analysis.FileName,
		ArchiveURI:           analysis.ArchiveURI,
		CategorizationSource: analysis.CategorizationSource,
		AnalyzedAt:           analysis.AnalyzedAt,
		Metadata:             &metadata,
	}
}

// SampleStatementResponse is returned by the development statement generator
type SampleStatementResponse struct {
	Months  int    `json:"months"`
	Seed    uint64 `json:"seed"`
	Lines   int    `json:"lines"`
	Content string `json:"content"`
}
