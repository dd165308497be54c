package service

import (
	"context"
	"fmt"
	"log"

	"lexai-backend/llm"
	"lexai-backend/models"

	"github.com/google/uuid"
)

// ChatService orchestrates a single chat turn: route to a model
// profile, dispatch tool calls, run the fallback case-creation path,
// and normalize the output. HandleTurn is total; every input yields a
// well-formed response.
type ChatService struct {
	generator llm.Generator
	extractor *ExtractService
}

// ChatServiceOption is a functional option for ChatService
type ChatServiceOption func(*ChatService)

// ChatWithGenerator sets the model client
func ChatWithGenerator(g llm.Generator) ChatServiceOption {
	return func(s *ChatService) {
		s.generator = g
	}
}

// ChatWithExtractor sets the document analysis service used by the
// fallback case-creation path
func ChatWithExtractor(extractor *ExtractService) ChatServiceOption {
	return func(s *ChatService) {
		s.extractor = extractor
	}
}

// NewChatService creates a new chat service
func NewChatService(opts ...ChatServiceOption) *ChatService {
	s := &ChatService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// HandleTurn processes one chat turn end to end. The profile is chosen
// solely by the presence of context.caseId; case-scoped turns get no
// tools and return right after normalization.
func (s *ChatService) HandleTurn(ctx context.Context, req *models.ChatTurnRequest) *models.ChatTurnResponse {
	if s.generator == nil {
		return errorResponse()
	}

	caseScoped := req.Context.CaseID != ""
	profile := llm.ProfileGeneral
	if caseScoped {
		profile = llm.ProfileCaseScoped
	}

	turn, err := s.generator.GenerateTurn(ctx, profile, req)
	if err != nil {
		log.Printf("Warning: chat turn failed: %v", err)
		return errorResponse()
	}

	resp := Normalize(turn.Output)
	if caseScoped {
		return resp
	}

	// Tool dispatch takes precedence over the fallback path; a case
	// already attached here blocks the fallback below.
	if draft := caseDataFromCalls(turn.AllCalls()); draft != nil {
		resp.ActionType = models.ActionCreateCase
		resp.CaseData = draft
		return resp
	}

	if resp.CaseData == nil && req.Document != "" && hasCaseIntent(req.Message) {
		resp = s.fallbackCaseCreation(ctx, req, resp)
	}

	return resp
}

// fallbackCaseCreation runs document analysis and a best-effort
// persistence attempt when the user asked for a case but the model
// never called the createCase tool. Persistence failure downgrades to
// a draft-only result; the turn still succeeds.
func (s *ChatService) fallbackCaseCreation(ctx context.Context, req *models.ChatTurnRequest, resp *models.ChatTurnResponse) *models.ChatTurnResponse {
	if s.extractor == nil {
		return resp
	}

	draft := s.extractor.ExtractCase(ctx, req.Document, req.DocumentName)

	if userID, err := uuid.Parse(req.Context.UserID); err == nil && draft.CaseName != "" {
		persisted, err := s.extractor.PersistDraft(ctx, userID, draft)
		if err != nil {
			log.Printf("Warning: failed to persist case %q: %v", draft.CaseName, err)
		} else {
			draft = persisted
			resp.Response = fmt.Sprintf("%s\n\nI've created the case %q in your workspace.", resp.Response, draft.CaseName)
		}
	}

	resp.ActionType = models.ActionCreateCase
	resp.CaseData = draft
	return resp
}
