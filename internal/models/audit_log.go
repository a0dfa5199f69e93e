package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Audit actions recorded against a profile
const (
	AuditActionProfileCreated    = "profile_created"
	AuditActionProfileUpdated    = "profile_updated"
	AuditActionProfileDeleted    = "profile_deleted"
	AuditActionAnalysisCompleted = "analysis_completed"
	AuditActionAnalysisFailed    = "analysis_failed"
	AuditActionBudgetGenerated   = "budget_generated"
	AuditActionChatReply         = "chat_reply"
)

// AuditLog is one entry of a profile's activity trail. Rows are append-only
// and removed only by the retention purge.
type AuditLog struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	ProfileID *uuid.UUID `gorm:"type:uuid;index" json:"profile_id,omitempty"`
	Action    string     `gorm:"type:varchar(100);not null;index" json:"action"`
	Resource  string     `gorm:"type:varchar(100);not null" json:"resource"`
	IPAddress string     `gorm:"type:varchar(45)" json:"ip_address,omitempty"`
	UserAgent string     `gorm:"type:text" json:"user_agent,omitempty"`
	Metadata  Details    `gorm:"type:text" json:"metadata,omitempty"`
	CreatedAt time.Time  `gorm:"not null;index" json:"created_at"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}

// With stores one detail on the entry and returns it for chaining.
func (al *AuditLog) With(key string, value any) *AuditLog {
	if al.Metadata == nil {
		al.Metadata = Details{}
	}
	al.Metadata[key] = value
	return al
}

func (al *AuditLog) BeforeCreate(_ *gorm.DB) error {
	if al.ID == uuid.Nil {
		al.ID = uuid.New()
	}
	if al.CreatedAt.IsZero() {
		al.CreatedAt = time.Now().UTC()
	}
	return nil
}

func (al *AuditLog) String() string {
	var b strings.Builder
	b.WriteString(al.Action)
	b.WriteString(" ")
	b.WriteString(al.Resource)
	if al.ProfileID != nil {
		fmt.Fprintf(&b, " profile=%s", al.ProfileID)
	}
	if al.IPAddress != "" {
		fmt.Fprintf(&b, " ip=%s", al.IPAddress)
	}
	if !al.CreatedAt.IsZero() {
		fmt.Fprintf(&b, " at=%s", al.CreatedAt.UTC().Format(time.RFC3339))
	}
	return b.String()
}

// Details is a free-form JSON object kept in a text column, which lets the
// same schema run on postgres and sqlite.
type Details map[string]any

// Lookup returns the value under key, if any.
func (d Details) Lookup(key string) (any, bool) {
	v, ok := d[key]
	return v, ok
}

func (d Details) Value() (driver.Value, error) {
	if len(d) == 0 {
		return nil, nil
	}
	raw, err := json.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("failed to encode details: %w", err)
	}
	return string(raw), nil
}

func (d *Details) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported details column type %T", src)
	}
	if len(raw) == 0 {
		*d = nil
		return nil
	}
	return json.Unmarshal(raw, d)
}
