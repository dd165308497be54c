package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// CaseDetails holds the structured fields extracted from a legal document
type CaseDetails struct {
	PetitionerName    string `json:"petitionerName,omitempty"`
	RespondentName    string `json:"respondentName,omitempty"`
	CaseNumber        string `json:"caseNumber,omitempty"`
	CourtName         string `json:"courtName,omitempty"`
	JudgeName         string `json:"judgeName,omitempty"`
	PetitionerCounsel string `json:"petitionerCounsel,omitempty"`
	RespondentCounsel string `json:"respondentCounsel,omitempty"`
	CaseType          string `json:"caseType,omitempty"`
	FilingDate        string `json:"filingDate,omitempty"`
	NextHearingDate   string `json:"nextHearingDate,omitempty"`

	Summary       string   `json:"summary,omitempty"`
	LegalSections []string `json:"legalSections,omitempty"`
	KeyFacts      []string `json:"keyFacts,omitempty"`
}

// Value implements driver.Valuer for JSONB
func (d CaseDetails) Value() (driver.Value, error) {
	return json.Marshal(d)
}

// Scan implements sql.Scanner for JSONB
func (d *CaseDetails) Scan(value interface{}) error {
	if value == nil {
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	if len(bytes) == 0 {
		return nil
	}

	return json.Unmarshal(bytes, d)
}

// CaseDraft is the case payload attached to a chat turn response. It is
// either a fully persisted case (CaseID set) or a draft awaiting user
// confirmation (CaseID empty).
type CaseDraft struct {
	CaseID    string      `json:"caseId,omitempty"`
	CaseName  string      `json:"caseName"`
	Tags      []string    `json:"tags,omitempty"`
	Details   CaseDetails `json:"details"`
	CreatedAt string      `json:"createdAt,omitempty"`
}

// Case represents a persisted case entity
type Case struct {
	ID        uuid.UUID   `json:"id"`
	UserID    uuid.UUID   `json:"user_id"`
	CaseName  string      `json:"case_name"`
	Tags      []string    `json:"tags"`
	Details   CaseDetails `json:"details"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// Draft converts a persisted case into the response payload shape
func (c *Case) Draft() *CaseDraft {
	return &CaseDraft{
		CaseID:    c.ID.String(),
		CaseName:  c.CaseName,
		Tags:      c.Tags,
		Details:   c.Details,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
	}
}
