package repository

import (
	"context"

	"lexai-backend/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// EventRepository handles database operations for calendar events
type EventRepository struct {
	db *pgxpool.Pool
}

// NewEventRepository creates a new event repository
func NewEventRepository(db *pgxpool.Pool) *EventRepository {
	return &EventRepository{db: db}
}

// Create creates a new calendar event
func (r *EventRepository) Create(ctx context.Context, e *models.CalendarEvent) error {
	query := `
		INSERT INTO events (user_id, case_id, title, event_date, event_time, type, priority, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at`

	err := r.db.QueryRow(
		ctx, query,
		e.UserID,
		e.CaseID,
		e.Title,
		e.Date,
		e.Time,
		e.Type,
		e.Priority,
		e.Description,
	).Scan(&e.ID, &e.CreatedAt)

	return err
}

// GetByID retrieves an event by ID
func (r *EventRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.CalendarEvent, error) {
	e := &models.CalendarEvent{}
	query := `
		SELECT id, user_id, case_id, title, event_date, event_time, type, priority, description, created_at
		FROM events
		WHERE id = $1`

	err := r.db.QueryRow(ctx, query, id).Scan(
		&e.ID,
		&e.UserID,
		&e.CaseID,
		&e.Title,
		&e.Date,
		&e.Time,
		&e.Type,
		&e.Priority,
		&e.Description,
		&e.CreatedAt,
	)

	if err != nil {
		return nil, err
	}

	return e, nil
}

// ListBetween retrieves a user's events with dates in [fromDate, toDate]
func (r *EventRepository) ListBetween(ctx context.Context, userID uuid.UUID, fromDate, toDate string) ([]*models.CalendarEvent, error) {
	query := `
		SELECT id, user_id, case_id, title, event_date, event_time, type, priority, description, created_at
		FROM events
		WHERE user_id = $1 AND event_date >= $2 AND event_date <= $3
		ORDER BY event_date, event_time NULLS LAST`

	rows, err := r.db.Query(ctx, query, userID, fromDate, toDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []*models.CalendarEvent
	for rows.Next() {
		e := &models.CalendarEvent{}
		err := rows.Scan(
			&e.ID,
			&e.UserID,
			&e.CaseID,
			&e.Title,
			&e.Date,
			&e.Time,
			&e.Type,
			&e.Priority,
			&e.Description,
			&e.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}

	return events, rows.Err()
}

// ListByCaseID retrieves all events linked to a case
func (r *EventRepository) ListByCaseID(ctx context.Context, caseID uuid.UUID) ([]*models.CalendarEvent, error) {
	query := `
		SELECT id, user_id, case_id, title, event_date, event_time, type, priority, description, created_at
		FROM events
		WHERE case_id = $1
		ORDER BY event_date`

	rows, err := r.db.Query(ctx, query, caseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []*models.CalendarEvent
	for rows.Next() {
		e := &models.CalendarEvent{}
		err := rows.Scan(
			&e.ID,
			&e.UserID,
			&e.CaseID,
			&e.Title,
			&e.Date,
			&e.Time,
			&e.Type,
			&e.Priority,
			&e.Description,
			&e.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}

	return events, rows.Err()
}

// Delete deletes an event
func (r *EventRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM events WHERE id = $1`
	_, err := r.db.Exec(ctx, query, id)
	return err
}
