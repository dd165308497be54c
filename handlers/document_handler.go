package handlers

import (
	"net/http"

	"lexai-backend/middleware"
	"lexai-backend/service"

	"github.com/gin-gonic/gin"
)

// DocumentHandler handles document analysis requests
type DocumentHandler struct {
	extractService *service.ExtractService
	titleService   *service.TitleService
}

// NewDocumentHandler creates a new document handler
func NewDocumentHandler(extractService *service.ExtractService, titleService *service.TitleService) *DocumentHandler {
	return &DocumentHandler{
		extractService: extractService,
		titleService:   titleService,
	}
}

// AnalyzeDocumentRequest represents the request body for analysis
type AnalyzeDocumentRequest struct {
	Document     string `json:"document"`
	DocumentName string `json:"documentName" binding:"required"`
	Persist      bool   `json:"persist"`
}

// AnalyzeDocument handles POST /api/analyze-document. Analysis never
// fails; unreadable documents come back as reviewable fallback drafts.
// With persist set, the extracted case is written to the user's
// workspace immediately.
func (h *DocumentHandler) AnalyzeDocument(c *gin.Context) {
	var req AnalyzeDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_REQUEST",
				"message": err.Error(),
			},
		})
		return
	}

	draft := h.extractService.ExtractCase(c.Request.Context(), req.Document, req.DocumentName)

	if req.Persist && draft.CaseName != "" {
		userID := middleware.GetUserID(c)
		if persisted, err := h.extractService.PersistDraft(c.Request.Context(), userID, draft); err == nil {
			draft = persisted
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    draft,
	})
}

// GenerateTitleRequest represents the request body for title generation
type GenerateTitleRequest struct {
	Message string `json:"message" binding:"required"`
}

// GenerateTitle handles POST /api/generate-title
func (h *DocumentHandler) GenerateTitle(c *gin.Context) {
	var req GenerateTitleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_REQUEST",
				"message": err.Error(),
			},
		})
		return
	}

	title := h.titleService.GenerateTitle(c.Request.Context(), req.Message)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"title": title,
		},
	})
}
