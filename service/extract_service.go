package service

import (
	"context"
	"errors"
	"log"
	"path/filepath"
	"strings"

	"lexai-backend/llm"
	"lexai-backend/models"

	"github.com/google/uuid"
)

// ExtractService turns uploaded legal documents into structured case
// drafts and optionally persists them.
type ExtractService struct {
	generator llm.Generator
	caseStore CaseStore
}

// ExtractServiceOption is a functional option for ExtractService
type ExtractServiceOption func(*ExtractService)

// ExtractWithGenerator sets the model client
func ExtractWithGenerator(g llm.Generator) ExtractServiceOption {
	return func(s *ExtractService) {
		s.generator = g
	}
}

// ExtractWithCaseStore sets the case store used for persistence
func ExtractWithCaseStore(store CaseStore) ExtractServiceOption {
	return func(s *ExtractService) {
		s.caseStore = store
	}
}

// NewExtractService creates a new extraction service
func NewExtractService(opts ...ExtractServiceOption) *ExtractService {
	s := &ExtractService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// extractionOutput mirrors the structured-output schema of the
// extraction profile.
type extractionOutput struct {
	CaseName          string   `json:"caseName"`
	PetitionerName    string   `json:"petitionerName"`
	RespondentName    string   `json:"respondentName"`
	CaseNumber        string   `json:"caseNumber"`
	CourtName         string   `json:"courtName"`
	JudgeName         string   `json:"judgeName"`
	PetitionerCounsel string   `json:"petitionerCounsel"`
	RespondentCounsel string   `json:"respondentCounsel"`
	CaseType          string   `json:"caseType"`
	FilingDate        string   `json:"filingDate"`
	NextHearingDate   string   `json:"nextHearingDate"`
	Summary           string   `json:"summary"`
	Tags              []string `json:"tags"`
	LegalSections     []string `json:"legalSections"`
	KeyFacts          []string `json:"keyFacts"`
}

// ExtractCase analyzes a document and returns a case draft. It never
// fails: empty documents, model errors, and contract violations all
// collapse into deterministic fallback drafts the user can review
// manually. Tags, legal sections, key facts, and summary are never nil.
func (s *ExtractService) ExtractCase(ctx context.Context, document, documentName string) *models.CaseDraft {
	baseName := strings.TrimSuffix(documentName, filepath.Ext(documentName))
	if baseName == "" {
		baseName = documentName
	}
	// A draft always carries a non-empty case name, even when the
	// upload had no filename to derive one from.
	if strings.TrimSpace(baseName) == "" {
		baseName = "Untitled Case"
	}

	if strings.TrimSpace(document) == "" {
		return &models.CaseDraft{
			CaseName: baseName,
			Tags:     []string{"Empty Document"},
			Details: models.CaseDetails{
				Summary:       "Document appears to be empty or could not be read. Please review manually.",
				LegalSections: []string{},
				KeyFacts:      []string{"Document content is empty or unreadable"},
			},
		}
	}

	if s.generator == nil {
		return analysisFailedDraft(baseName)
	}

	var out extractionOutput
	err := s.generator.GenerateJSON(ctx, llm.ProfileExtraction, llm.BuildExtractionPrompt(document, documentName), &out)
	if err != nil {
		log.Printf("Warning: document analysis failed for %s: %v", documentName, err)
		return &models.CaseDraft{
			CaseName: baseName,
			Tags:     []string{"Analysis Error"},
			Details: models.CaseDetails{
				Summary:       "Document analysis failed due to an error. Please review the document manually.",
				LegalSections: []string{},
				KeyFacts:      []string{"Error occurred during document processing"},
			},
		}
	}

	if out.CaseName == "" && out.Summary == "" && len(out.Tags) == 0 {
		return analysisFailedDraft(baseName)
	}

	// Repair any required field the model left empty rather than
	// propagating invalid data.
	if out.CaseName == "" {
		out.CaseName = baseName
	}
	if out.Summary == "" {
		out.Summary = "Analysis incomplete. Please review manually."
	}
	if len(out.Tags) == 0 {
		out.Tags = []string{"Analysis Incomplete"}
	}
	if out.LegalSections == nil {
		out.LegalSections = []string{}
	}
	if len(out.KeyFacts) == 0 {
		out.KeyFacts = []string{"Analysis incomplete"}
	}

	return &models.CaseDraft{
		CaseName: out.CaseName,
		Tags:     out.Tags,
		Details: models.CaseDetails{
			PetitionerName:    out.PetitionerName,
			RespondentName:    out.RespondentName,
			CaseNumber:        out.CaseNumber,
			CourtName:         out.CourtName,
			JudgeName:         out.JudgeName,
			PetitionerCounsel: out.PetitionerCounsel,
			RespondentCounsel: out.RespondentCounsel,
			CaseType:          out.CaseType,
			FilingDate:        out.FilingDate,
			NextHearingDate:   out.NextHearingDate,
			Summary:           out.Summary,
			LegalSections:     out.LegalSections,
			KeyFacts:          out.KeyFacts,
		},
	}
}

func analysisFailedDraft(baseName string) *models.CaseDraft {
	return &models.CaseDraft{
		CaseName: baseName,
		Tags:     []string{"Analysis Failed"},
		Details: models.CaseDetails{
			Summary:       "AI analysis failed. Please review the document manually.",
			LegalSections: []string{},
			KeyFacts:      []string{"AI could not process the document content"},
		},
	}
}

// PersistDraft writes a case draft to the user's case collection and
// returns the persisted payload with its ID and creation timestamp.
func (s *ExtractService) PersistDraft(ctx context.Context, userID uuid.UUID, draft *models.CaseDraft) (*models.CaseDraft, error) {
	if s.caseStore == nil {
		return nil, errors.New("case store not set")
	}

	c := &models.Case{
		UserID:   userID,
		CaseName: draft.CaseName,
		Tags:     draft.Tags,
		Details:  draft.Details,
	}
	if err := s.caseStore.Create(ctx, c); err != nil {
		return nil, err
	}
	return c.Draft(), nil
}
