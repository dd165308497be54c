package service

import (
	"context"
	"fmt"
	"time"

	"lexai-backend/llm"
	"lexai-backend/models"

	"github.com/google/uuid"
)

// ToolRunner executes the tool calls surfaced during general-scope
// chat turns against the record stores. It implements llm.ToolExecutor.
type ToolRunner struct {
	cases  CaseStore
	events EventStore
}

// NewToolRunner creates a tool runner over the given stores
func NewToolRunner(cases CaseStore, events EventStore) *ToolRunner {
	return &ToolRunner{cases: cases, events: events}
}

// Execute runs one tool call and returns the structured result fed
// back to the model.
func (t *ToolRunner) Execute(ctx context.Context, name string, args map[string]any) (map[string]any, error) {
	switch name {
	case llm.ToolCreateCase:
		return t.createCase(ctx, args)
	case llm.ToolCreateCalendarEvent:
		return t.createEvent(ctx, args)
	case llm.ToolCheckAvailability:
		return t.checkAvailability(ctx, args)
	case llm.ToolListUpcomingEvents:
		return t.listUpcoming(ctx, args)
	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

func (t *ToolRunner) createCase(ctx context.Context, args map[string]any) (map[string]any, error) {
	if t.cases == nil {
		return nil, fmt.Errorf("case store not configured")
	}
	userID, err := parseUserID(args)
	if err != nil {
		return nil, err
	}
	caseName, _ := args["caseName"].(string)
	if caseName == "" {
		return nil, fmt.Errorf("caseName is required")
	}

	c := &models.Case{
		UserID:   userID,
		CaseName: caseName,
		Tags:     asStringSlice(args["tags"]),
		Details:  detailsFromMap(args),
	}
	if err := t.cases.Create(ctx, c); err != nil {
		return nil, err
	}

	return map[string]any{
		"success":   true,
		"caseId":    c.ID.String(),
		"caseName":  c.CaseName,
		"createdAt": c.CreatedAt.Format(time.RFC3339),
		"message":   fmt.Sprintf("Case %q created successfully.", c.CaseName),
	}, nil
}

func (t *ToolRunner) createEvent(ctx context.Context, args map[string]any) (map[string]any, error) {
	if t.events == nil {
		return nil, fmt.Errorf("event store not configured")
	}
	userID, err := parseUserID(args)
	if err != nil {
		return nil, err
	}
	title, _ := args["title"].(string)
	date, _ := args["date"].(string)
	if title == "" || date == "" {
		return nil, fmt.Errorf("title and date are required")
	}

	event := &models.CalendarEvent{
		UserID: userID,
		Title:  title,
		Date:   date,
		Type:   eventTypeFromArgs(args),
	}
	event.Priority = models.DefaultPriority(event.Type)
	if timeStr, ok := args["time"].(string); ok && timeStr != "" {
		event.Time = &timeStr
	}
	if desc, ok := args["description"].(string); ok && desc != "" {
		event.Description = &desc
	}
	if caseIDStr, ok := args["caseId"].(string); ok && caseIDStr != "" {
		if caseID, err := uuid.Parse(caseIDStr); err == nil {
			event.CaseID = &caseID
		}
	}

	if err := t.events.Create(ctx, event); err != nil {
		return nil, err
	}

	return map[string]any{
		"success": true,
		"eventId": event.ID.String(),
		"title":   event.Title,
		"date":    event.Date,
		"message": fmt.Sprintf("Event %q scheduled for %s.", event.Title, event.Date),
	}, nil
}

func (t *ToolRunner) checkAvailability(ctx context.Context, args map[string]any) (map[string]any, error) {
	if t.events == nil {
		return nil, fmt.Errorf("event store not configured")
	}
	userID, err := parseUserID(args)
	if err != nil {
		return nil, err
	}
	date, _ := args["date"].(string)
	if date == "" {
		return nil, fmt.Errorf("date is required")
	}

	events, err := t.events.ListBetween(ctx, userID, date, date)
	if err != nil {
		return nil, err
	}

	conflicts := make([]string, 0, len(events))
	for _, event := range events {
		conflicts = append(conflicts, event.Title)
	}
	return map[string]any{
		"available": len(conflicts) == 0,
		"date":      date,
		"conflicts": conflicts,
	}, nil
}

func (t *ToolRunner) listUpcoming(ctx context.Context, args map[string]any) (map[string]any, error) {
	if t.events == nil {
		return nil, fmt.Errorf("event store not configured")
	}
	userID, err := parseUserID(args)
	if err != nil {
		return nil, err
	}

	days := 7
	if d, ok := args["days"].(float64); ok && d > 0 {
		days = int(d)
	}
	from := time.Now().Format("2006-01-02")
	to := time.Now().AddDate(0, 0, days).Format("2006-01-02")

	events, err := t.events.ListBetween(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}

	summaries := make([]map[string]any, 0, len(events))
	for _, event := range events {
		summary := map[string]any{
			"title":    event.Title,
			"date":     event.Date,
			"type":     string(event.Type),
			"priority": string(event.Priority),
		}
		if event.Time != nil {
			summary["time"] = *event.Time
		}
		summaries = append(summaries, summary)
	}
	return map[string]any{
		"events": summaries,
		"count":  len(summaries),
	}, nil
}

func parseUserID(args map[string]any) (uuid.UUID, error) {
	idStr, _ := args["userId"].(string)
	userID, err := uuid.Parse(idStr)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid userId: %q", idStr)
	}
	return userID, nil
}

func eventTypeFromArgs(args map[string]any) models.EventType {
	raw, _ := args["eventType"].(string)
	switch models.EventType(raw) {
	case models.EventHearing, models.EventDeadline, models.EventAppointment, models.EventReminder:
		return models.EventType(raw)
	}
	// Legacy names from older clients
	switch raw {
	case "court_hearing":
		return models.EventHearing
	case "filing_deadline", "discovery_deadline":
		return models.EventDeadline
	case "client_meeting":
		return models.EventAppointment
	default:
		return models.EventReminder
	}
}
