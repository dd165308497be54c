package llm

import (
	"fmt"
	"strings"

	"lexai-backend/models"

	"github.com/google/generative-ai-go/genai"
)

// Profile names used to select model configuration per operation
const (
	ProfileGeneral    = "chat_general"
	ProfileCaseScoped = "chat_case"
	ProfileExtraction = "document_extraction"
	ProfileSuggest    = "citation_suggest"
	ProfileTitle      = "chat_title"
)

// ProposedEventMarker is the inline directive case-scoped turns use to
// propose calendar events. The model embeds it in the response text
// followed by a JSON object; the client renders it as a confirmation
// card instead of calling a tool directly.
const ProposedEventMarker = "[PROPOSED_EVENT]"

const defaultModel = "gemini-2.5-flash"

// profile captures the model configuration for one operation class
type profile struct {
	model           string
	temperature     float32
	maxOutputTokens int32
	useTools        bool
	jsonOutput      bool
	schema          *genai.Schema
}

var profiles = map[string]profile{
	ProfileGeneral: {
		model:           defaultModel,
		temperature:     0.7,
		maxOutputTokens: 2048,
		useTools:        true,
	},
	ProfileCaseScoped: {
		model:           defaultModel,
		temperature:     0.7,
		maxOutputTokens: 2048,
		jsonOutput:      true,
		schema:          chatResponseSchema,
	},
	ProfileExtraction: {
		model:       defaultModel,
		temperature: 0.3,
		jsonOutput:  true,
		schema:      CaseExtractionSchema,
	},
	ProfileSuggest: {
		model:       defaultModel,
		temperature: 0.3,
		jsonOutput:  true,
		schema:      SuggestionSchema,
	},
	ProfileTitle: {
		model:       defaultModel,
		temperature: 0.3,
		jsonOutput:  true,
		schema:      TitleSchema,
	},
}

const generalSystemPrompt = `You are LexAI, a specialized legal assistant for the Indian legal system. You help legal professionals with case analysis, document review, legal research, and general legal guidance.

Core guidelines:
- Focus exclusively on Indian law, statutes, and case law
- Provide accurate, well-researched legal information
- Always cite relevant cases, statutes, and legal provisions
- Maintain professional, clear communication
- If uncertain, recommend consulting a licensed advocate

Response requirements:
1. Provide a direct, helpful response to the user's message
2. If an uploaded document is present, your primary goal is to use its content to answer the current message
3. Include relevant legal citations with working links when applicable
4. Suggest 2-3 follow-up questions or actions
5. Use clear markdown formatting with bold headings and bullet points
6. Never provide fake or placeholder links; if no verified link exists, say "No verified case law link available"

Tool usage:
- When the user asks to create or open a case, or uploads a document they want tracked, call createCase with the details you have
- When the user asks to schedule a hearing, deadline, or meeting, call createCalendarEvent
- When the user asks what is coming up, call listUpcomingEvents
- Always pass the User ID given in the context to every tool call`

const caseScopedSystemPrompt = `You are LexAI, a specialized legal assistant for the Indian legal system, working inside a specific case file. Answer strictly in the context of this case using the case metadata and linked document summaries provided.

Core guidelines:
- Focus exclusively on Indian law, statutes, and case law
- Ground every answer in the case context supplied below before reaching for general knowledge
- Cite relevant cases, statutes, and legal provisions
- If uncertain, recommend consulting a licensed advocate
- Suggest 2-3 follow-up questions or actions

Scheduling:
You cannot modify the calendar directly from a case conversation. When a date, hearing, or deadline should be scheduled, embed the line
` + ProposedEventMarker + ` {"title": "...", "date": "YYYY-MM-DD", "time": "HH:MM", "type": "hearing|deadline|appointment|reminder", "description": "..."}
inside your response text. The user will be asked to confirm the event.`

// BuildTurnPrompt renders the user-visible portion of a chat turn for
// the given profile. History goes into the chat session separately;
// this covers context, attached document, and the current message.
func BuildTurnPrompt(profileName string, req *models.ChatTurnRequest) string {
	var b strings.Builder

	b.WriteString("Context information:\n")
	if req.Context.CaseID != "" {
		fmt.Fprintf(&b, "- Linked Case ID: %s\n", req.Context.CaseID)
	}
	if req.Context.DraftID != "" {
		fmt.Fprintf(&b, "- Linked Draft ID: %s\n", req.Context.DraftID)
	}
	if req.Context.UserID != "" {
		fmt.Fprintf(&b, "- User ID: %s\n", req.Context.UserID)
	}

	if meta := req.Context.CaseMetadata; meta != nil {
		b.WriteString("\nCase metadata:\n")
		fmt.Fprintf(&b, "- Case Name: %s\n", meta.CaseName)
		if meta.CaseNumber != "" {
			fmt.Fprintf(&b, "- Case Number: %s\n", meta.CaseNumber)
		}
		if meta.CourtName != "" {
			fmt.Fprintf(&b, "- Court: %s\n", meta.CourtName)
		}
		if meta.PetitionerName != "" || meta.RespondentName != "" {
			fmt.Fprintf(&b, "- Parties: %s vs. %s\n", meta.PetitionerName, meta.RespondentName)
		}
		if meta.Summary != "" {
			fmt.Fprintf(&b, "- Summary: %s\n", meta.Summary)
		}
		if len(meta.Tags) > 0 {
			fmt.Fprintf(&b, "- Tags: %s\n", strings.Join(meta.Tags, ", "))
		}
	}

	if len(req.Context.DocumentContext) > 0 {
		b.WriteString("\nLinked document summaries:\n")
		for _, doc := range req.Context.DocumentContext {
			fmt.Fprintf(&b, "- %s: %s\n", doc.DocumentName, doc.Summary)
		}
	}

	if req.Document != "" {
		b.WriteString("\nUploaded document:\n")
		fmt.Fprintf(&b, "Document Name: %s\n", req.DocumentName)
		fmt.Fprintf(&b, "Content: %s\n", req.Document)
	}

	fmt.Fprintf(&b, "\nCurrent message: %s\n", req.Message)
	return b.String()
}

// BuildExtractionPrompt renders the document analysis prompt. The
// structured output schema enforces the field set; the prompt carries
// the extraction guidelines.
func BuildExtractionPrompt(document, documentName string) string {
	var b strings.Builder
	b.WriteString("You are a meticulous legal analysis AI. Your sole task is to analyze the provided legal document and extract specific, structured data.\n\n")
	fmt.Fprintf(&b, "Document Name: %s\nContent: %s\n\n", documentName, document)
	b.WriteString(`Extraction instructions:
1. Case Name: find the petitioner and respondent names, formatted as "Petitioner Name vs. Respondent Name". If not found, use the document name.
2. Petitioner Name: the primary petitioner(s), often listed after "PETITIONER :".
3. Respondent Name: the primary respondent(s), often listed after "RESPONDENT :" or "VERSUS".
4. Case Number: the primary case number for this filing.
5. Court Name: the court the document is being filed in.
6. Judge Name: a specific judge's name, else leave empty.
7. Petitioner Counsel: the counsel's name, often above "COUNSEL FOR THE PETITIONER".
8. Respondent Counsel: the respondent's counsel, else leave empty.
9. Case Type: the nature of the case.
10. Filing Date: a specific filing date if present. Do not guess.
11. Next Hearing Date: any mention of a future hearing date, else leave empty.
12. Summary: a 2-3 sentence summary of the case.
13. Tags: 3-5 relevant tags.
14. Legal Sections: all specific acts, articles, or sections mentioned.
15. Key Facts: 3-5 key factual points from the document.

If any field cannot be extracted, use an empty string for strings or an empty array for arrays. Never return null values.`)
	return b.String()
}

// BuildSuggestPrompt renders the citation/rephrase suggestion prompt.
func BuildSuggestPrompt(selectedText, actionType, retrievedCitations string) string {
	var b strings.Builder
	b.WriteString("You are LexAI, a legal drafting assistant for the Indian legal system.\n\n")
	fmt.Fprintf(&b, "Selected text from a draft:\n%s\n\n", selectedText)
	if retrievedCitations != "" {
		fmt.Fprintf(&b, "Retrieved statute and case law references relevant to this text:\n%s\n\n", retrievedCitations)
	}
	switch actionType {
	case "rephrase":
		b.WriteString("Rephrase the selected text in precise, formal legal drafting language suitable for an Indian court filing. Preserve the legal meaning exactly.")
	default:
		b.WriteString("Suggest the single most relevant legal citation for the selected text, preferring the retrieved references above when they apply. Give the full citation in standard Indian legal format.")
	}
	return b.String()
}

// BuildTitlePrompt renders the chat title generation prompt.
func BuildTitlePrompt(message string) string {
	return fmt.Sprintf("Generate a short title, 3 to 6 words, for a legal assistant conversation that starts with this message. Use plain title case with no quotes.\n\nMessage: %s", message)
}
