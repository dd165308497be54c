package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"lexai-backend/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// fakeEventStore implements service.EventStore
type fakeEventStore struct {
	events []*models.CalendarEvent
}

func (f *fakeEventStore) Create(ctx context.Context, e *models.CalendarEvent) error {
	e.ID = uuid.New()
	e.CreatedAt = time.Now()
	f.events = append(f.events, e)
	return nil
}

func (f *fakeEventStore) ListBetween(ctx context.Context, userID uuid.UUID, fromDate, toDate string) ([]*models.CalendarEvent, error) {
	var out []*models.CalendarEvent
	for _, e := range f.events {
		if e.UserID == userID && e.Date >= fromDate && e.Date <= toDate {
			out = append(out, e)
		}
	}
	return out, nil
}

func newEventTestServer(store *fakeEventStore, userID uuid.UUID) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewEventHandler(store)
	r := gin.New()
	r.POST("/api/calendar/events", authAs(userID), handler.CreateEvent)
	r.GET("/api/calendar/events", authAs(userID), handler.ListEvents)
	return r
}

func TestCreateEvent_Valid(t *testing.T) {
	store := &fakeEventStore{}
	userID := uuid.New()
	r := newEventTestServer(store, userID)

	w := postJSON(r, "/api/calendar/events", gin.H{
		"title": "Final hearing",
		"date":  "2026-09-15",
		"time":  "10:30",
		"type":  "hearing",
	})

	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
	}
	if len(store.events) != 1 {
		t.Fatalf("Expected one stored event, got %d", len(store.events))
	}
	stored := store.events[0]
	if stored.UserID != userID {
		t.Error("Event stored under wrong user")
	}
	if stored.Priority != models.PriorityHigh {
		t.Errorf("Hearings must default to high priority, got %s", stored.Priority)
	}
}

func TestCreateEvent_InvalidDate(t *testing.T) {
	r := newEventTestServer(&fakeEventStore{}, uuid.New())

	w := postJSON(r, "/api/calendar/events", gin.H{
		"title": "Hearing",
		"date":  "15-09-2026",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for a malformed date, got %d", w.Code)
	}
}

func TestCreateEvent_UnknownTypeDefaultsToReminder(t *testing.T) {
	store := &fakeEventStore{}
	r := newEventTestServer(store, uuid.New())

	w := postJSON(r, "/api/calendar/events", gin.H{
		"title": "Follow up",
		"date":  "2026-10-01",
		"type":  "party",
	})

	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d", w.Code)
	}
	if store.events[0].Type != models.EventReminder {
		t.Errorf("Unknown types must default to reminder, got %s", store.events[0].Type)
	}
}

func TestListEvents_DefaultWindow(t *testing.T) {
	store := &fakeEventStore{}
	userID := uuid.New()

	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	distant := time.Now().AddDate(0, 0, 90).Format("2006-01-02")
	store.Create(context.Background(), &models.CalendarEvent{UserID: userID, Title: "Soon", Date: tomorrow, Type: models.EventDeadline})
	store.Create(context.Background(), &models.CalendarEvent{UserID: userID, Title: "Distant", Date: distant, Type: models.EventReminder})
	store.Create(context.Background(), &models.CalendarEvent{UserID: uuid.New(), Title: "Foreign", Date: tomorrow, Type: models.EventHearing})

	r := newEventTestServer(store, userID)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/calendar/events", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	var body struct {
		Data []models.CalendarEvent `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("Bad response body: %v", err)
	}
	if len(body.Data) != 1 {
		t.Fatalf("Expected only the user's event inside the default window, got %d", len(body.Data))
	}
	if body.Data[0].Title != "Soon" {
		t.Errorf("Unexpected event returned: %q", body.Data[0].Title)
	}
}

func TestListEvents_EmptyResultIsArray(t *testing.T) {
	r := newEventTestServer(&fakeEventStore{}, uuid.New())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/calendar/events", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	var body map[string]json.RawMessage
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("Bad response body: %v", err)
	}
	if string(body["data"]) != "[]" {
		t.Errorf("Expected an empty array, got %s", body["data"])
	}
}
