package service

import (
	"context"
	"testing"
	"time"

	"lexai-backend/llm"
	"lexai-backend/models"

	"github.com/google/uuid"
)

// fakeEventStore implements EventStore in memory
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

func TestToolRunner_CreateCase(t *testing.T) {
	store := &fakeCaseStore{}
	runner := NewToolRunner(store, nil)
	userID := uuid.New()

	result, err := runner.Execute(context.Background(), llm.ToolCreateCase, map[string]any{
		"userId":   userID.String(),
		"caseName": "Khan vs. Khan",
		"tags":     []any{"Family"},
	})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if result["success"] != true {
		t.Errorf("Expected success, got %v", result["success"])
	}
	if result["caseId"] == "" {
		t.Error("Expected a case ID in the result")
	}
	if len(store.created) != 1 || store.created[0].UserID != userID {
		t.Error("Case not stored under the calling user")
	}
}

func TestToolRunner_CreateCaseRequiresName(t *testing.T) {
	runner := NewToolRunner(&fakeCaseStore{}, nil)

	_, err := runner.Execute(context.Background(), llm.ToolCreateCase, map[string]any{
		"userId": uuid.NewString(),
	})
	if err == nil {
		t.Error("Expected an error without a case name")
	}
}

func TestToolRunner_InvalidUserID(t *testing.T) {
	runner := NewToolRunner(&fakeCaseStore{}, &fakeEventStore{})

	_, err := runner.Execute(context.Background(), llm.ToolCreateCase, map[string]any{
		"userId":   "not-a-uuid",
		"caseName": "X",
	})
	if err == nil {
		t.Error("Expected an error for a malformed user ID")
	}
}

func TestToolRunner_CreateEvent(t *testing.T) {
	events := &fakeEventStore{}
	runner := NewToolRunner(nil, events)
	userID := uuid.New()

	result, err := runner.Execute(context.Background(), llm.ToolCreateCalendarEvent, map[string]any{
		"userId":    userID.String(),
		"title":     "Final hearing",
		"date":      "2026-09-15",
		"time":      "10:30",
		"eventType": "court_hearing",
	})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if result["success"] != true {
		t.Errorf("Expected success, got %v", result["success"])
	}
	if len(events.events) != 1 {
		t.Fatalf("Expected one stored event, got %d", len(events.events))
	}
	stored := events.events[0]
	if stored.Type != models.EventHearing {
		t.Errorf("Legacy court_hearing must map to hearing, got %s", stored.Type)
	}
	if stored.Priority != models.PriorityHigh {
		t.Errorf("Hearings default to high priority, got %s", stored.Priority)
	}
	if stored.Time == nil || *stored.Time != "10:30" {
		t.Error("Expected the event time stored")
	}
}

func TestToolRunner_CheckAvailability(t *testing.T) {
	events := &fakeEventStore{}
	runner := NewToolRunner(nil, events)
	userID := uuid.New()

	events.Create(context.Background(), &models.CalendarEvent{
		UserID: userID, Title: "Client meeting", Date: "2026-09-15", Type: models.EventAppointment,
	})

	result, err := runner.Execute(context.Background(), llm.ToolCheckAvailability, map[string]any{
		"userId": userID.String(),
		"date":   "2026-09-15",
	})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if result["available"] != false {
		t.Errorf("Expected date marked unavailable, got %v", result["available"])
	}
	conflicts, _ := result["conflicts"].([]string)
	if len(conflicts) != 1 || conflicts[0] != "Client meeting" {
		t.Errorf("Expected the conflicting event listed, got %v", conflicts)
	}

	free, err := runner.Execute(context.Background(), llm.ToolCheckAvailability, map[string]any{
		"userId": userID.String(),
		"date":   "2026-09-16",
	})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if free["available"] != true {
		t.Errorf("Expected a free date marked available, got %v", free["available"])
	}
}

func TestToolRunner_ListUpcoming(t *testing.T) {
	events := &fakeEventStore{}
	runner := NewToolRunner(nil, events)
	userID := uuid.New()

	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	farFuture := time.Now().AddDate(0, 0, 60).Format("2006-01-02")
	events.Create(context.Background(), &models.CalendarEvent{
		UserID: userID, Title: "Filing deadline", Date: tomorrow, Type: models.EventDeadline,
	})
	events.Create(context.Background(), &models.CalendarEvent{
		UserID: userID, Title: "Too far out", Date: farFuture, Type: models.EventReminder,
	})

	result, err := runner.Execute(context.Background(), llm.ToolListUpcomingEvents, map[string]any{
		"userId": userID.String(),
	})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if result["count"] != 1 {
		t.Errorf("Expected only the event inside the default window, got count %v", result["count"])
	}
}

func TestToolRunner_UnknownTool(t *testing.T) {
	runner := NewToolRunner(&fakeCaseStore{}, &fakeEventStore{})
	if _, err := runner.Execute(context.Background(), "deleteEverything", nil); err == nil {
		t.Error("Expected an error for an unknown tool name")
	}
}
