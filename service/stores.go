package service

import (
	"context"

	"lexai-backend/models"

	"github.com/google/uuid"
)

// CaseStore is the persistence surface the services need for cases.
// Satisfied by repository.CaseRepository.
type CaseStore interface {
	Create(ctx context.Context, c *models.Case) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Case, error)
	ListByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*models.Case, error)
	Update(ctx context.Context, c *models.Case) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// EventStore is the persistence surface for calendar events.
// Satisfied by repository.EventRepository.
type EventStore interface {
	Create(ctx context.Context, e *models.CalendarEvent) error
	ListBetween(ctx context.Context, userID uuid.UUID, fromDate, toDate string) ([]*models.CalendarEvent, error)
}
