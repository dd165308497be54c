package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ChatRole identifies who authored a chat message
type ChatRole string

const (
	RoleUser      ChatRole = "user"
	RoleAssistant ChatRole = "assistant"
)

// ChatMessage represents a single turn in the conversation history
type ChatMessage struct {
	Role    ChatRole `json:"role"`
	Content string   `json:"content"`
}

// ActionType classifies the UI action a turn response carries
type ActionType string

const (
	ActionCitation   ActionType = "citation"
	ActionRephrase   ActionType = "rephrase"
	ActionCreateCase ActionType = "createCase"
	ActionGeneral    ActionType = "general"
)

// Citation represents a legal citation surfaced alongside a response
type Citation struct {
	Title string `json:"title"`
	URL   string `json:"url,omitempty"`
}

// DocumentSummary represents a case document summary injected into
// case-scoped conversation context
type DocumentSummary struct {
	DocumentID   string `json:"document_id"`
	DocumentName string `json:"document_name"`
	Summary      string `json:"summary"`
}

// CaseMetadata carries the case fields made available to case-scoped turns
type CaseMetadata struct {
	CaseName       string   `json:"caseName"`
	CaseNumber     string   `json:"caseNumber,omitempty"`
	CourtName      string   `json:"courtName,omitempty"`
	PetitionerName string   `json:"petitionerName,omitempty"`
	RespondentName string   `json:"respondentName,omitempty"`
	Summary        string   `json:"summary,omitempty"`
	Tags           []string `json:"tags,omitempty"`
}

// ChatContext carries the routing context for a chat turn. CaseID being
// set is what routes the turn into the case-scoped profile.
type ChatContext struct {
	CaseID          string            `json:"caseId,omitempty"`
	DraftID         string            `json:"draftId,omitempty"`
	UserID          string            `json:"userId,omitempty"`
	CaseMetadata    *CaseMetadata     `json:"caseMetadata,omitempty"`
	DocumentContext []DocumentSummary `json:"documentContext,omitempty"`
}

// ChatTurnRequest represents one inbound chat turn
type ChatTurnRequest struct {
	Message      string        `json:"message"`
	History      []ChatMessage `json:"chatHistory,omitempty"`
	Context      ChatContext   `json:"context,omitempty"`
	Document     string        `json:"document,omitempty"`
	DocumentName string        `json:"documentName,omitempty"`
}

// ChatTurnResponse is the canonical shape every chat turn resolves to.
// Extra holds pass-through fields the model emitted beyond the known
// ones; they survive serialization alongside the typed fields.
type ChatTurnResponse struct {
	Response    string         `json:"response"`
	Citations   []Citation     `json:"citations,omitempty"`
	Suggestions []string       `json:"suggestions"`
	ActionType  ActionType     `json:"actionType,omitempty"`
	CaseData    *CaseDraft     `json:"caseData,omitempty"`
	Extra       map[string]any `json:"-"`
}

// MarshalJSON merges Extra into the serialized object. Typed fields win
// over Extra keys of the same name.
func (r ChatTurnResponse) MarshalJSON() ([]byte, error) {
	type alias ChatTurnResponse
	base, err := json.Marshal(alias(r))
	if err != nil {
		return nil, err
	}
	if len(r.Extra) == 0 {
		return base, nil
	}

	merged := make(map[string]json.RawMessage, len(r.Extra)+6)
	for k, v := range r.Extra {
		raw, err := json.Marshal(v)
		if err != nil {
			continue
		}
		merged[k] = raw
	}
	var typed map[string]json.RawMessage
	if err := json.Unmarshal(base, &typed); err != nil {
		return nil, err
	}
	for k, v := range typed {
		merged[k] = v
	}
	return json.Marshal(merged)
}

// UnmarshalJSON captures unknown keys into Extra so round-trips
// preserve fields this server does not model.
func (r *ChatTurnResponse) UnmarshalJSON(data []byte) error {
	type alias ChatTurnResponse
	var typed alias
	if err := json.Unmarshal(data, &typed); err != nil {
		return err
	}

	var all map[string]json.RawMessage
	if err := json.Unmarshal(data, &all); err != nil {
		return err
	}
	known := map[string]bool{
		"response": true, "citations": true, "suggestions": true,
		"actionType": true, "caseData": true,
	}
	for k, raw := range all {
		if known[k] {
			continue
		}
		var v any
		if err := json.Unmarshal(raw, &v); err != nil {
			continue
		}
		if typed.Extra == nil {
			typed.Extra = make(map[string]any)
		}
		typed.Extra[k] = v
	}

	*r = ChatTurnResponse(typed)
	return nil
}

// Chat represents a stored conversation thread
type Chat struct {
	ID        uuid.UUID  `json:"id"`
	UserID    uuid.UUID  `json:"user_id"`
	CaseID    *uuid.UUID `json:"case_id,omitempty"`
	Title     string     `json:"title"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// ChatMessageRecord represents a persisted chat message
type ChatMessageRecord struct {
	ID        uuid.UUID `json:"id"`
	ChatID    uuid.UUID `json:"chat_id"`
	Role      ChatRole  `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
