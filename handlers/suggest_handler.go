package handlers

import (
	"net/http"

	"lexai-backend/models"
	"lexai-backend/service"

	"github.com/gin-gonic/gin"
)

// SuggestHandler handles drafting suggestion requests
type SuggestHandler struct {
	citationService *service.CitationService
}

// NewSuggestHandler creates a new suggest handler
func NewSuggestHandler(citationService *service.CitationService) *SuggestHandler {
	return &SuggestHandler{citationService: citationService}
}

// SuggestRequest represents the request body for a suggestion
type SuggestRequest struct {
	SelectedText string `json:"selectedText" binding:"required"`
	ActionType   string `json:"actionType"`
}

// Suggest handles POST /api/suggest
func (h *SuggestHandler) Suggest(c *gin.Context) {
	var req SuggestRequest
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

	result := h.citationService.Suggest(c.Request.Context(), service.SuggestRequest{
		SelectedText: req.SelectedText,
		ActionType:   models.ActionType(req.ActionType),
	})

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    result,
	})
}
