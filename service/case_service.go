package service

import (
	"context"
	"errors"

	"lexai-backend/models"

	"github.com/google/uuid"
)

var ErrCaseNotFound = errors.New("case not found")

// CaseService handles business logic for cases
type CaseService struct {
	caseStore CaseStore
}

// CaseServiceOption is a functional option for CaseService
type CaseServiceOption func(*CaseService)

// CaseWithStore sets the case store
func CaseWithStore(store CaseStore) CaseServiceOption {
	return func(s *CaseService) {
		s.caseStore = store
	}
}

// NewCaseService creates a new case service
func NewCaseService(opts ...CaseServiceOption) *CaseService {
	s := &CaseService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateCaseRequest represents a request to create a case
type CreateCaseRequest struct {
	UserID   uuid.UUID
	CaseName string
	Tags     []string
	Details  models.CaseDetails
}

// CreateCaseResult represents the result of creating a case
type CreateCaseResult struct {
	Case *models.Case
}

// CreateCase creates a new case
func (s *CaseService) CreateCase(ctx context.Context, req CreateCaseRequest) (*CreateCaseResult, error) {
	if s.caseStore == nil {
		return nil, errors.New("case store not set")
	}

	c := &models.Case{
		UserID:   req.UserID,
		CaseName: req.CaseName,
		Tags:     req.Tags,
		Details:  req.Details,
	}
	if c.Tags == nil {
		c.Tags = []string{}
	}

	if err := s.caseStore.Create(ctx, c); err != nil {
		return nil, err
	}
	return &CreateCaseResult{Case: c}, nil
}

// GetCaseRequest represents a request to get a case
type GetCaseRequest struct {
	ID uuid.UUID
}

// GetCaseResult represents the result of getting a case
type GetCaseResult struct {
	Case *models.Case
}

// GetCase retrieves a case by ID
func (s *CaseService) GetCase(ctx context.Context, req GetCaseRequest) (*GetCaseResult, error) {
	if s.caseStore == nil {
		return nil, errors.New("case store not set")
	}

	c, err := s.caseStore.GetByID(ctx, req.ID)
	if err != nil {
		return nil, ErrCaseNotFound
	}
	return &GetCaseResult{Case: c}, nil
}

// ListCasesRequest represents a request to list a user's cases
type ListCasesRequest struct {
	UserID uuid.UUID
	Limit  int
	Offset int
}

// ListCasesResult represents the result of listing cases
type ListCasesResult struct {
	Cases []*models.Case
}

// ListCases lists cases for a user
func (s *CaseService) ListCases(ctx context.Context, req ListCasesRequest) (*ListCasesResult, error) {
	if s.caseStore == nil {
		return nil, errors.New("case store not set")
	}

	cases, err := s.caseStore.ListByUserID(ctx, req.UserID, req.Limit, req.Offset)
	if err != nil {
		return nil, err
	}
	return &ListCasesResult{Cases: cases}, nil
}

// UpdateCaseRequest represents a request to update a case
type UpdateCaseRequest struct {
	Case *models.Case
}

// UpdateCaseResult represents the result of updating a case
type UpdateCaseResult struct {
	Case *models.Case
}

// UpdateCase updates a case
func (s *CaseService) UpdateCase(ctx context.Context, req UpdateCaseRequest) (*UpdateCaseResult, error) {
	if s.caseStore == nil {
		return nil, errors.New("case store not set")
	}

	if err := s.caseStore.Update(ctx, req.Case); err != nil {
		return nil, err
	}
	return &UpdateCaseResult{Case: req.Case}, nil
}

// DeleteCaseRequest represents a request to delete a case
type DeleteCaseRequest struct {
	ID uuid.UUID
}

// DeleteCase deletes a case
func (s *CaseService) DeleteCase(ctx context.Context, req DeleteCaseRequest) error {
	if s.caseStore == nil {
		return errors.New("case store not set")
	}
	return s.caseStore.Delete(ctx, req.ID)
}
