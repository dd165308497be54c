package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"lexai-backend/middleware"
	"lexai-backend/models"
	"lexai-backend/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// chatStore is the persistence surface the chat handler needs for
// conversation threads
type chatStore interface {
	Create(ctx context.Context, chat *models.Chat) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Chat, error)
	AppendMessage(ctx context.Context, msg *models.ChatMessageRecord) error
	ListMessages(ctx context.Context, chatID uuid.UUID) ([]*models.ChatMessageRecord, error)
	UpdateTitle(ctx context.Context, id uuid.UUID, title string) error
}

// caseDocLister lists the documents linked to a case so their
// summaries can be injected into case-scoped turns
type caseDocLister interface {
	ListByCaseID(ctx context.Context, caseID uuid.UUID) ([]*models.File, error)
}

// ChatHandler handles HTTP requests for chat turns
type ChatHandler struct {
	chatService *service.ChatService
	cases       service.CaseStore
	chats       chatStore
	files       caseDocLister
}

// NewChatHandler creates a new chat handler
func NewChatHandler(chatService *service.ChatService, cases service.CaseStore, chats chatStore, files caseDocLister) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
		cases:       cases,
		chats:       chats,
		files:       files,
	}
}

// ChatRequest represents the request body for a chat turn
type ChatRequest struct {
	Message      string               `json:"message" binding:"required"`
	History      []models.ChatMessage `json:"chatHistory"`
	Context      models.ChatContext   `json:"context"`
	Document     string               `json:"document"`
	DocumentName string               `json:"documentName"`
	ChatID       string               `json:"chatId"`
}

// HandleChat handles POST /api/chat
func (h *ChatHandler) HandleChat(c *gin.Context) {
	req, chatID, ok := h.prepareTurn(c)
	if !ok {
		return
	}

	resp := h.chatService.HandleTurn(c.Request.Context(), req)
	h.persistMessages(c.Request.Context(), chatID, req.Message, resp.Response)

	data := gin.H{
		"success": true,
		"data":    resp,
	}
	if chatID != uuid.Nil {
		data["chatId"] = chatID
	}
	c.JSON(http.StatusOK, data)
}

// StreamChat handles POST /api/chat/stream. The response is produced
// in full, then streamed to the client as server-sent events: a status
// event, content chunks, and a final complete event carrying the full
// structured payload.
func (h *ChatHandler) StreamChat(c *gin.Context) {
	req, chatID, ok := h.prepareTurn(c)
	if !ok {
		return
	}

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	writeSSE(c, gin.H{"type": "status", "message": "Thinking..."})

	resp := h.chatService.HandleTurn(c.Request.Context(), req)
	h.persistMessages(c.Request.Context(), chatID, req.Message, resp.Response)

	for _, chunk := range chunkText(resp.Response, 48) {
		writeSSE(c, gin.H{"type": "chunk", "content": chunk})
	}

	complete := gin.H{"type": "complete", "data": resp}
	if chatID != uuid.Nil {
		complete["chatId"] = chatID
	}
	writeSSE(c, complete)
}

// prepareTurn binds the request, attaches the authenticated user,
// resolves the chat thread, and enriches case-scoped context.
func (h *ChatHandler) prepareTurn(c *gin.Context) (*models.ChatTurnRequest, uuid.UUID, bool) {
	var body ChatRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_REQUEST",
				"message": err.Error(),
			},
		})
		return nil, uuid.Nil, false
	}

	userID := middleware.GetUserID(c)
	req := &models.ChatTurnRequest{
		Message:      body.Message,
		History:      body.History,
		Context:      body.Context,
		Document:     body.Document,
		DocumentName: body.DocumentName,
	}
	req.Context.UserID = userID.String()

	chatID := h.resolveChatThread(c.Request.Context(), userID, &body, req)
	h.enrichCaseContext(c.Request.Context(), userID, req)
	return req, chatID, true
}

// resolveChatThread loads history for an existing thread or creates a
// new one. Thread persistence is best-effort; a storage failure never
// blocks the turn.
func (h *ChatHandler) resolveChatThread(ctx context.Context, userID uuid.UUID, body *ChatRequest, req *models.ChatTurnRequest) uuid.UUID {
	if h.chats == nil {
		return uuid.Nil
	}

	if body.ChatID != "" {
		chatID, err := uuid.Parse(body.ChatID)
		if err != nil {
			return uuid.Nil
		}
		chat, err := h.chats.GetByID(ctx, chatID)
		if err != nil || chat.UserID != userID {
			return uuid.Nil
		}
		if len(req.History) == 0 {
			if messages, err := h.chats.ListMessages(ctx, chatID); err == nil {
				for _, msg := range messages {
					req.History = append(req.History, models.ChatMessage{
						Role:    msg.Role,
						Content: msg.Content,
					})
				}
			}
		}
		return chatID
	}

	chat := &models.Chat{UserID: userID, Title: firstWords(body.Message, 6)}
	if body.Context.CaseID != "" {
		if caseID, err := uuid.Parse(body.Context.CaseID); err == nil {
			chat.CaseID = &caseID
		}
	}
	if err := h.chats.Create(ctx, chat); err != nil {
		log.Printf("Warning: failed to create chat thread: %v", err)
		return uuid.Nil
	}
	return chat.ID
}

// enrichCaseContext attaches case metadata and linked document
// summaries to case-scoped requests.
func (h *ChatHandler) enrichCaseContext(ctx context.Context, userID uuid.UUID, req *models.ChatTurnRequest) {
	if req.Context.CaseID == "" || h.cases == nil {
		return
	}
	caseID, err := uuid.Parse(req.Context.CaseID)
	if err != nil {
		return
	}

	caseRecord, err := h.cases.GetByID(ctx, caseID)
	if err != nil || caseRecord.UserID != userID {
		log.Printf("Warning: could not load case %s for chat context", req.Context.CaseID)
		return
	}

	req.Context.CaseMetadata = &models.CaseMetadata{
		CaseName:       caseRecord.CaseName,
		CaseNumber:     caseRecord.Details.CaseNumber,
		CourtName:      caseRecord.Details.CourtName,
		PetitionerName: caseRecord.Details.PetitionerName,
		RespondentName: caseRecord.Details.RespondentName,
		Summary:        caseRecord.Details.Summary,
		Tags:           caseRecord.Tags,
	}

	if h.files == nil {
		return
	}
	docs, err := h.files.ListByCaseID(ctx, caseID)
	if err != nil {
		return
	}
	for _, doc := range docs {
		if doc.Summary == "" {
			continue
		}
		req.Context.DocumentContext = append(req.Context.DocumentContext, models.DocumentSummary{
			DocumentID:   doc.ID.String(),
			DocumentName: doc.Filename,
			Summary:      doc.Summary,
		})
	}
}

func (h *ChatHandler) persistMessages(ctx context.Context, chatID uuid.UUID, userMessage, assistantMessage string) {
	if h.chats == nil || chatID == uuid.Nil {
		return
	}
	userMsg := &models.ChatMessageRecord{ChatID: chatID, Role: models.RoleUser, Content: userMessage}
	if err := h.chats.AppendMessage(ctx, userMsg); err != nil {
		log.Printf("Warning: failed to persist user message: %v", err)
		return
	}
	assistantMsg := &models.ChatMessageRecord{ChatID: chatID, Role: models.RoleAssistant, Content: assistantMessage}
	if err := h.chats.AppendMessage(ctx, assistantMsg); err != nil {
		log.Printf("Warning: failed to persist assistant message: %v", err)
	}
}

func writeSSE(c *gin.Context, payload gin.H) {
	data, err := json.Marshal(payload)
	if err != nil {
		return
	}
	fmt.Fprintf(c.Writer, "data: %s\n\n", data)
	c.Writer.Flush()
}

func chunkText(text string, size int) []string {
	runes := []rune(text)
	var chunks []string
	for start := 0; start < len(runes); start += size {
		end := start + size
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, string(runes[start:end]))
	}
	return chunks
}

func firstWords(message string, n int) string {
	count := 0
	for i, r := range message {
		if r == ' ' {
			count++
			if count >= n {
				return message[:i]
			}
		}
	}
	return message
}
