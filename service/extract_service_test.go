package service

import (
	"context"
	"errors"
	"testing"

	"lexai-backend/models"

	"github.com/google/uuid"
)

var fullDraftFixture = models.CaseDraft{
	CaseName: "Iyer vs. Nair",
	Tags:     []string{"Civil"},
	Details: models.CaseDetails{
		Summary:       "Appeal against a partition decree.",
		LegalSections: []string{"Section 96 CPC"},
		KeyFacts:      []string{"Decree dated 2025-11-02"},
	},
}

func TestExtractCase_EmptyDocument(t *testing.T) {
	gen := &fakeGenerator{}
	svc := NewExtractService(ExtractWithGenerator(gen))

	draft := svc.ExtractCase(context.Background(), "   \n\t  ", "empty-scan.pdf")

	if draft == nil {
		t.Fatal("Expected a draft, got nil")
	}
	if draft.CaseName != "empty-scan" {
		t.Errorf("Expected file base name as case name, got %q", draft.CaseName)
	}
	if len(draft.Tags) != 1 || draft.Tags[0] != "Empty Document" {
		t.Errorf("Expected Empty Document tag, got %v", draft.Tags)
	}
	if draft.Details.Summary != "Document appears to be empty or could not be read. Please review manually." {
		t.Errorf("Unexpected summary: %q", draft.Details.Summary)
	}
	if gen.jsonCalls != 0 {
		t.Errorf("Empty documents must not reach the model, got %d calls", gen.jsonCalls)
	}
}

func TestExtractCase_ModelError(t *testing.T) {
	gen := &fakeGenerator{jsonErr: errors.New("deadline exceeded")}
	svc := NewExtractService(ExtractWithGenerator(gen))

	draft := svc.ExtractCase(context.Background(), "IN THE COURT OF ...", "notice.pdf")

	if draft.CaseName != "notice" {
		t.Errorf("Expected base name fallback, got %q", draft.CaseName)
	}
	if len(draft.Tags) != 1 || draft.Tags[0] != "Analysis Error" {
		t.Errorf("Expected Analysis Error tag, got %v", draft.Tags)
	}
	if len(draft.Details.KeyFacts) == 0 {
		t.Error("Key facts must never be empty")
	}
}

func TestExtractCase_UnnamedDocument(t *testing.T) {
	gen := &fakeGenerator{jsonErr: errors.New("deadline exceeded")}
	svc := NewExtractService(ExtractWithGenerator(gen))

	draft := svc.ExtractCase(context.Background(), "IN THE HIGH COURT ...", "")

	if draft.CaseName != "Untitled Case" {
		t.Errorf("Expected Untitled Case for a nameless upload, got %q", draft.CaseName)
	}
	if len(draft.Tags) != 1 || draft.Tags[0] != "Analysis Error" {
		t.Errorf("Expected Analysis Error tag, got %v", draft.Tags)
	}

	empty := svc.ExtractCase(context.Background(), "  ", "")
	if empty.CaseName != "Untitled Case" {
		t.Errorf("Empty-document draft must also carry a case name, got %q", empty.CaseName)
	}
}

func TestExtractCase_NoGenerator(t *testing.T) {
	svc := NewExtractService()

	draft := svc.ExtractCase(context.Background(), "some content", "doc.txt")

	if len(draft.Tags) != 1 || draft.Tags[0] != "Analysis Failed" {
		t.Errorf("Expected Analysis Failed tag, got %v", draft.Tags)
	}
	if draft.Details.Summary != "AI analysis failed. Please review the document manually." {
		t.Errorf("Unexpected summary: %q", draft.Details.Summary)
	}
}

func TestExtractCase_AllEmptyOutput(t *testing.T) {
	gen := &fakeGenerator{jsonPayload: `{}`}
	svc := NewExtractService(ExtractWithGenerator(gen))

	draft := svc.ExtractCase(context.Background(), "short note", "note.txt")

	if len(draft.Tags) != 1 || draft.Tags[0] != "Analysis Failed" {
		t.Errorf("Expected Analysis Failed for an all-empty extraction, got %v", draft.Tags)
	}
}

func TestExtractCase_RepairsMissingFields(t *testing.T) {
	gen := &fakeGenerator{jsonPayload: `{"summary": "A money recovery suit.", "tags": ["Civil"]}`}
	svc := NewExtractService(ExtractWithGenerator(gen))

	draft := svc.ExtractCase(context.Background(), "PLAINT ...", "recovery-suit.pdf")

	if draft.CaseName != "recovery-suit" {
		t.Errorf("Missing case name must fall back to the file base name, got %q", draft.CaseName)
	}
	if draft.Details.LegalSections == nil {
		t.Error("Legal sections must never be nil")
	}
	if len(draft.Details.KeyFacts) != 1 || draft.Details.KeyFacts[0] != "Analysis incomplete" {
		t.Errorf("Expected key facts repair, got %v", draft.Details.KeyFacts)
	}
}

func TestExtractCase_FullExtraction(t *testing.T) {
	gen := &fakeGenerator{jsonPayload: `{
		"caseName": "Iyer vs. Nair",
		"petitionerName": "K. Iyer",
		"respondentName": "S. Nair",
		"courtName": "Kerala High Court",
		"caseType": "Civil Appeal",
		"summary": "Appeal against a partition decree.",
		"tags": ["Civil", "Property"],
		"legalSections": ["Section 96 CPC"],
		"keyFacts": ["Decree dated 2025-11-02"]
	}`}
	svc := NewExtractService(ExtractWithGenerator(gen))

	draft := svc.ExtractCase(context.Background(), "IN THE HIGH COURT OF KERALA ...", "appeal.pdf")

	if draft.CaseName != "Iyer vs. Nair" {
		t.Errorf("Unexpected case name: %q", draft.CaseName)
	}
	if draft.Details.PetitionerName != "K. Iyer" {
		t.Errorf("Unexpected petitioner: %q", draft.Details.PetitionerName)
	}
	if draft.CaseID != "" {
		t.Error("ExtractCase must not persist anything")
	}
}

func TestPersistDraft(t *testing.T) {
	store := &fakeCaseStore{}
	svc := NewExtractService(ExtractWithCaseStore(store))
	userID := uuid.New()

	persisted, err := svc.PersistDraft(context.Background(), userID, &fullDraftFixture)
	if err != nil {
		t.Fatalf("PersistDraft failed: %v", err)
	}
	if persisted.CaseID == "" {
		t.Error("Expected a case ID after persistence")
	}
	if persisted.CreatedAt == "" {
		t.Error("Expected a creation timestamp")
	}
	if len(store.created) != 1 || store.created[0].UserID != userID {
		t.Error("Case not stored under the requesting user")
	}
}

func TestPersistDraft_NoStore(t *testing.T) {
	svc := NewExtractService()
	if _, err := svc.PersistDraft(context.Background(), uuid.New(), &fullDraftFixture); err == nil {
		t.Error("Expected an error without a case store")
	}
}
