package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"lexai-backend/llm"
	"lexai-backend/models"
)

// CitationEntry is one record in the in-memory citation corpus
type CitationEntry struct {
	Keywords   []string `json:"keywords"`
	Citation   string   `json:"citation"`
	SourceHint string   `json:"sourceHint"`
}

// citationCorpus seeds retrieval for drafting suggestions. An entry is
// relevant iff any keyword appears as a case-insensitive substring of
// the selected text; matches are returned in corpus order.
var citationCorpus = []CitationEntry{
	{
		Keywords:   []string{"court", "inherent power", "stay proceedings"},
		Citation:   "Order XLI, Rule 5, Code of Civil Procedure, 1908. This rule grants appellate courts the power to stay proceedings under the decree or order appealed from.",
		SourceHint: "Civil Drafting Stay Application",
	},
	{
		Keywords:   []string{"national commission", "jurisdiction", "claims exceeding", "crore"},
		Citation:   "Consumer Protection Act, 2019, Section 58(1)(a)(i). The National Commission has jurisdiction for complaints where the value of goods or services paid as consideration exceeds ten crore rupees.",
		SourceHint: "APPEAL TO NATIONAL COMMISSION UNDER SECTION 19 OF CONSUMER PROTECTION ACT",
	},
	{
		Keywords:   []string{"compensation", "motor accident", "just and reasonable"},
		Citation:   "Raj Kumar v. Ajay Kumar, (2011) 1 SCC 343. The Supreme Court reiterated that compensation in motor accident claims must be just, fair, and equitable.",
		SourceHint: "Appeal under Section 173 of Motor Vehicles Act, 1988",
	},
	{
		Keywords:   []string{"market value", "land", "notification", "section 4"},
		Citation:   "Land Acquisition Act, 1894, Section 23(1). This section outlines matters to be considered in determining compensation, including the market value of the land at the date of the publication of the notification under section 4, sub-section (1).",
		SourceHint: "Appeal under Section 54 of Land Acquisition Act",
	},
	{
		Keywords:   []string{"appeal", "limitation period", "sufficient cause"},
		Citation:   "Section 5, Limitation Act, 1963. This section allows for the extension of prescribed period in certain cases if the appellant or applicant satisfies the court that he had sufficient cause for not preferring the appeal or making the application within such period.",
		SourceHint: "General Civil/Appellate Matters",
	},
}

// CitationService grounds drafting suggestions in the citation corpus
// before calling the model.
type CitationService struct {
	generator llm.Generator
}

// CitationServiceOption is a functional option for CitationService
type CitationServiceOption func(*CitationService)

// CitationWithGenerator sets the model client
func CitationWithGenerator(g llm.Generator) CitationServiceOption {
	return func(s *CitationService) {
		s.generator = g
	}
}

// NewCitationService creates a new citation service
func NewCitationService(opts ...CitationServiceOption) *CitationService {
	s := &CitationService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Retrieve returns every corpus entry with a keyword present in the
// selected text. Pure function, no ranking beyond corpus order.
func (s *CitationService) Retrieve(selectedText string) []CitationEntry {
	lower := strings.ToLower(selectedText)
	var matches []CitationEntry
	for _, entry := range citationCorpus {
		for _, keyword := range entry.Keywords {
			if strings.Contains(lower, keyword) {
				matches = append(matches, entry)
				break
			}
		}
	}
	return matches
}

// SuggestRequest represents a request for a drafting suggestion
type SuggestRequest struct {
	SelectedText string
	ActionType   models.ActionType
}

// SuggestResult represents the result of a drafting suggestion
type SuggestResult struct {
	Suggestion string            `json:"suggestion"`
	Retrieved  []CitationEntry   `json:"retrieved,omitempty"`
	ActionType models.ActionType `json:"actionType"`
}

// Suggest retrieves corpus matches for the selected text and asks the
// model for a citation or rephrasing grounded in them. A failed model
// call degrades to the top retrieved citation, or a fixed notice when
// nothing matched.
func (s *CitationService) Suggest(ctx context.Context, req SuggestRequest) *SuggestResult {
	retrieved := s.Retrieve(req.SelectedText)

	var grounding strings.Builder
	for i, entry := range retrieved {
		fmt.Fprintf(&grounding, "%d. %s (Source: %s)\n", i+1, entry.Citation, entry.SourceHint)
	}

	actionType := req.ActionType
	if actionType != models.ActionRephrase {
		actionType = models.ActionCitation
	}

	result := &SuggestResult{Retrieved: retrieved, ActionType: actionType}

	var out struct {
		Suggestion string `json:"suggestion"`
	}
	if s.generator != nil {
		err := s.generator.GenerateJSON(ctx, llm.ProfileSuggest,
			llm.BuildSuggestPrompt(req.SelectedText, string(actionType), grounding.String()), &out)
		if err != nil {
			log.Printf("Warning: suggestion call failed: %v", err)
		}
	}

	result.Suggestion = strings.TrimSpace(out.Suggestion)
	if result.Suggestion == "" {
		if len(retrieved) > 0 {
			result.Suggestion = retrieved[0].Citation
		} else {
			result.Suggestion = "No specific citation found for the selected text. Please verify references with a licensed advocate."
		}
	}
	return result
}
