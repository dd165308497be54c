package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"lexai-backend/llm"
	"lexai-backend/models"
	"lexai-backend/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// fakeGenerator implements llm.Generator and records the last request
type fakeGenerator struct {
	output  any
	lastReq *models.ChatTurnRequest
}

func (f *fakeGenerator) GenerateTurn(ctx context.Context, profileName string, req *models.ChatTurnRequest) (*llm.Turn, error) {
	f.lastReq = req
	return &llm.Turn{Output: f.output}, nil
}

func (f *fakeGenerator) GenerateJSON(ctx context.Context, profileName string, prompt string, out any) error {
	return nil
}

// fakeCaseStore implements service.CaseStore
type fakeCaseStore struct {
	cases map[uuid.UUID]*models.Case
}

func (f *fakeCaseStore) Create(ctx context.Context, c *models.Case) error {
	c.ID = uuid.New()
	c.CreatedAt = time.Now()
	if f.cases == nil {
		f.cases = make(map[uuid.UUID]*models.Case)
	}
	f.cases[c.ID] = c
	return nil
}

func (f *fakeCaseStore) GetByID(ctx context.Context, id uuid.UUID) (*models.Case, error) {
	c, ok := f.cases[id]
	if !ok {
		return nil, service.ErrCaseNotFound
	}
	return c, nil
}

func (f *fakeCaseStore) ListByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*models.Case, error) {
	var out []*models.Case
	for _, c := range f.cases {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCaseStore) Update(ctx context.Context, c *models.Case) error { return nil }

func (f *fakeCaseStore) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.cases, id)
	return nil
}

// fakeChatStore implements chatStore
type fakeChatStore struct {
	chats    map[uuid.UUID]*models.Chat
	messages map[uuid.UUID][]*models.ChatMessageRecord
}

func newFakeChatStore() *fakeChatStore {
	return &fakeChatStore{
		chats:    make(map[uuid.UUID]*models.Chat),
		messages: make(map[uuid.UUID][]*models.ChatMessageRecord),
	}
}

func (f *fakeChatStore) Create(ctx context.Context, chat *models.Chat) error {
	chat.ID = uuid.New()
	chat.CreatedAt = time.Now()
	f.chats[chat.ID] = chat
	return nil
}

func (f *fakeChatStore) GetByID(ctx context.Context, id uuid.UUID) (*models.Chat, error) {
	chat, ok := f.chats[id]
	if !ok {
		return nil, errors.New("chat not found")
	}
	return chat, nil
}

func (f *fakeChatStore) AppendMessage(ctx context.Context, msg *models.ChatMessageRecord) error {
	msg.ID = uuid.New()
	f.messages[msg.ChatID] = append(f.messages[msg.ChatID], msg)
	return nil
}

func (f *fakeChatStore) ListMessages(ctx context.Context, chatID uuid.UUID) ([]*models.ChatMessageRecord, error) {
	return f.messages[chatID], nil
}

func (f *fakeChatStore) UpdateTitle(ctx context.Context, id uuid.UUID, title string) error {
	if chat, ok := f.chats[id]; ok {
		chat.Title = title
	}
	return nil
}

// fakeFileLister implements caseDocLister
type fakeFileLister struct {
	files []*models.File
}

func (f *fakeFileLister) ListByCaseID(ctx context.Context, caseID uuid.UUID) ([]*models.File, error) {
	return f.files, nil
}

func authAs(userID uuid.UUID) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Next()
	}
}

func newChatTestServer(gen *fakeGenerator, cases *fakeCaseStore, chats *fakeChatStore, files *fakeFileLister, userID uuid.UUID) *gin.Engine {
	gin.SetMode(gin.TestMode)
	chatService := service.NewChatService(service.ChatWithGenerator(gen))
	handler := NewChatHandler(chatService, cases, chats, files)

	r := gin.New()
	r.POST("/api/chat", authAs(userID), handler.HandleChat)
	r.POST("/api/chat/stream", authAs(userID), handler.StreamChat)
	return r
}

func postJSON(r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	data, _ := json.Marshal(body)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestHandleChat_NewThread(t *testing.T) {
	userID := uuid.New()
	gen := &fakeGenerator{output: "Here is some guidance."}
	chats := newFakeChatStore()
	r := newChatTestServer(gen, &fakeCaseStore{}, chats, &fakeFileLister{}, userID)

	w := postJSON(r, "/api/chat", gin.H{"message": "What is a caveat petition?"})

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var body struct {
		Success bool                    `json:"success"`
		ChatID  string                  `json:"chatId"`
		Data    models.ChatTurnResponse `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("Bad response body: %v", err)
	}
	if !body.Success {
		t.Error("Expected success true")
	}
	if body.Data.Response != "Here is some guidance." {
		t.Errorf("Unexpected response text: %q", body.Data.Response)
	}
	if body.ChatID == "" {
		t.Error("Expected a chat thread ID for a new conversation")
	}
	if gen.lastReq.Context.UserID != userID.String() {
		t.Errorf("Expected authenticated user attached to the turn, got %q", gen.lastReq.Context.UserID)
	}

	chatID, err := uuid.Parse(body.ChatID)
	if err != nil {
		t.Fatalf("Invalid chat ID: %v", err)
	}
	msgs := chats.messages[chatID]
	if len(msgs) != 2 {
		t.Fatalf("Expected both turn messages persisted, got %d", len(msgs))
	}
	if msgs[0].Role != models.RoleUser || msgs[1].Role != models.RoleAssistant {
		t.Errorf("Messages persisted in wrong order: %s then %s", msgs[0].Role, msgs[1].Role)
	}
}

func TestHandleChat_MissingMessage(t *testing.T) {
	r := newChatTestServer(&fakeGenerator{output: "x"}, &fakeCaseStore{}, newFakeChatStore(), &fakeFileLister{}, uuid.New())

	w := postJSON(r, "/api/chat", gin.H{"document": "text without a message"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d", w.Code)
	}
}

func TestHandleChat_LoadsHistoryForExistingThread(t *testing.T) {
	userID := uuid.New()
	gen := &fakeGenerator{output: "Continuing the thread."}
	chats := newFakeChatStore()

	chat := &models.Chat{UserID: userID, Title: "earlier"}
	chats.Create(context.Background(), chat)
	chats.AppendMessage(context.Background(), &models.ChatMessageRecord{
		ChatID: chat.ID, Role: models.RoleUser, Content: "first question",
	})
	chats.AppendMessage(context.Background(), &models.ChatMessageRecord{
		ChatID: chat.ID, Role: models.RoleAssistant, Content: "first answer",
	})

	r := newChatTestServer(gen, &fakeCaseStore{}, chats, &fakeFileLister{}, userID)
	w := postJSON(r, "/api/chat", gin.H{"message": "follow up", "chatId": chat.ID.String()})

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	if len(gen.lastReq.History) != 2 {
		t.Fatalf("Expected stored history loaded into the turn, got %d messages", len(gen.lastReq.History))
	}
	if gen.lastReq.History[0].Content != "first question" {
		t.Errorf("Unexpected history content: %q", gen.lastReq.History[0].Content)
	}
}

func TestHandleChat_ForeignThreadIgnored(t *testing.T) {
	userID := uuid.New()
	chats := newFakeChatStore()
	foreign := &models.Chat{UserID: uuid.New(), Title: "someone else's"}
	chats.Create(context.Background(), foreign)

	gen := &fakeGenerator{output: "ok"}
	r := newChatTestServer(gen, &fakeCaseStore{}, chats, &fakeFileLister{}, userID)

	w := postJSON(r, "/api/chat", gin.H{"message": "hi", "chatId": foreign.ID.String()})
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	if len(chats.messages[foreign.ID]) != 0 {
		t.Error("Messages must not be written to another user's thread")
	}
}

func TestHandleChat_EnrichesCaseContext(t *testing.T) {
	userID := uuid.New()
	cases := &fakeCaseStore{}
	caseRecord := &models.Case{
		UserID:   userID,
		CaseName: "Sharma vs. Verma",
		Tags:     []string{"Civil"},
		Details:  models.CaseDetails{CourtName: "Delhi High Court", Summary: "Recovery suit."},
	}
	cases.Create(context.Background(), caseRecord)

	files := &fakeFileLister{files: []*models.File{
		{ID: uuid.New(), Filename: "plaint.pdf", Summary: "The plaint seeks recovery of dues."},
		{ID: uuid.New(), Filename: "unsummarized.pdf"},
	}}

	gen := &fakeGenerator{output: map[string]any{"response": "From the case record..."}}
	r := newChatTestServer(gen, cases, newFakeChatStore(), files, userID)

	w := postJSON(r, "/api/chat", gin.H{
		"message": "Summarize the case",
		"context": gin.H{"caseId": caseRecord.ID.String()},
	})

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	if gen.lastReq.Context.CaseMetadata == nil {
		t.Fatal("Expected case metadata attached to the turn")
	}
	if gen.lastReq.Context.CaseMetadata.CourtName != "Delhi High Court" {
		t.Errorf("Unexpected court name: %q", gen.lastReq.Context.CaseMetadata.CourtName)
	}
	if len(gen.lastReq.Context.DocumentContext) != 1 {
		t.Fatalf("Expected only summarized documents attached, got %d", len(gen.lastReq.Context.DocumentContext))
	}
	if gen.lastReq.Context.DocumentContext[0].DocumentName != "plaint.pdf" {
		t.Errorf("Unexpected document: %q", gen.lastReq.Context.DocumentContext[0].DocumentName)
	}
}

func TestStreamChat_EmitsEventSequence(t *testing.T) {
	userID := uuid.New()
	gen := &fakeGenerator{output: strings.Repeat("All proceedings stayed. ", 10)}
	r := newChatTestServer(gen, &fakeCaseStore{}, newFakeChatStore(), &fakeFileLister{}, userID)

	w := postJSON(r, "/api/chat/stream", gin.H{"message": "stream this"})

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "text/event-stream" {
		t.Errorf("Expected SSE content type, got %q", ct)
	}

	body := w.Body.String()
	if !strings.Contains(body, `"type":"status"`) {
		t.Error("Expected a status event")
	}
	if !strings.Contains(body, `"type":"chunk"`) {
		t.Error("Expected content chunk events")
	}
	if !strings.Contains(body, `"type":"complete"`) {
		t.Error("Expected a final complete event")
	}
	if strings.Index(body, `"type":"status"`) > strings.Index(body, `"type":"complete"`) {
		t.Error("Status event must precede the complete event")
	}
}
