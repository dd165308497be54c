package handlers

import (
	"net/http"
	"time"

	"lexai-backend/middleware"
	"lexai-backend/models"
	"lexai-backend/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// EventHandler handles HTTP requests for calendar events
type EventHandler struct {
	events service.EventStore
}

// NewEventHandler creates a new event handler
func NewEventHandler(events service.EventStore) *EventHandler {
	return &EventHandler{events: events}
}

// CreateEventRequest represents the request body for creating an event.
// This is also the confirmation endpoint for inline event proposals
// surfaced in case-scoped chat responses.
type CreateEventRequest struct {
	Title       string  `json:"title" binding:"required"`
	Date        string  `json:"date" binding:"required"`
	Time        *string `json:"time"`
	Type        string  `json:"type"`
	Description *string `json:"description"`
	CaseID      *string `json:"caseId"`
}

// CreateEvent handles POST /api/calendar/events
func (h *EventHandler) CreateEvent(c *gin.Context) {
	var req CreateEventRequest
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

	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_DATE",
				"message": "Date must be in YYYY-MM-DD format",
			},
		})
		return
	}

	eventType := models.EventType(req.Type)
	switch eventType {
	case models.EventHearing, models.EventDeadline, models.EventAppointment, models.EventReminder:
	default:
		eventType = models.EventReminder
	}

	event := &models.CalendarEvent{
		UserID:      middleware.GetUserID(c),
		Title:       req.Title,
		Date:        req.Date,
		Time:        req.Time,
		Type:        eventType,
		Priority:    models.DefaultPriority(eventType),
		Description: req.Description,
	}
	if req.CaseID != nil {
		if caseID, err := uuid.Parse(*req.CaseID); err == nil {
			event.CaseID = &caseID
		}
	}

	if err := h.events.Create(c.Request.Context(), event); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "CREATE_FAILED",
				"message": err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    event,
	})
}

// ListEvents handles GET /api/calendar/events. Optional from/to query
// parameters bound the date range; the default is the next 30 days.
func (h *EventHandler) ListEvents(c *gin.Context) {
	from := c.Query("from")
	to := c.Query("to")
	if from == "" {
		from = time.Now().Format("2006-01-02")
	}
	if to == "" {
		to = time.Now().AddDate(0, 0, 30).Format("2006-01-02")
	}

	events, err := h.events.ListBetween(c.Request.Context(), middleware.GetUserID(c), from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "LIST_FAILED",
				"message": err.Error(),
			},
		})
		return
	}

	if events == nil {
		events = []*models.CalendarEvent{}
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    events,
	})
}
