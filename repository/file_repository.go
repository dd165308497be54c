package repository

import (
	"context"

	"lexai-backend/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// FileRepository handles database operations for uploaded documents
type FileRepository struct {
	db *pgxpool.Pool
}

// NewFileRepository creates a new file repository
func NewFileRepository(db *pgxpool.Pool) *FileRepository {
	return &FileRepository{db: db}
}

// Create creates a new file record
func (r *FileRepository) Create(ctx context.Context, file *models.File) error {
	// The caller generates the ID up front; it is part of the storage key.
	query := `
		INSERT INTO files (
			id, user_id, chat_id, case_id, filename, mime_type, size,
			storage_path, extracted_text, summary
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at`

	err := r.db.QueryRow(
		ctx, query,
		file.ID,
		file.UserID,
		file.ChatID,
		file.CaseID,
		file.Filename,
		file.MimeType,
		file.Size,
		file.StoragePath,
		file.ExtractedText,
		file.Summary,
	).Scan(&file.CreatedAt)

	return err
}

// GetByID retrieves a file by ID
func (r *FileRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.File, error) {
	file := &models.File{}
	query := `
		SELECT id, user_id, chat_id, case_id, filename, mime_type, size,
			storage_path, extracted_text, summary, created_at
		FROM files
		WHERE id = $1`

	err := r.db.QueryRow(ctx, query, id).Scan(
		&file.ID,
		&file.UserID,
		&file.ChatID,
		&file.CaseID,
		&file.Filename,
		&file.MimeType,
		&file.Size,
		&file.StoragePath,
		&file.ExtractedText,
		&file.Summary,
		&file.CreatedAt,
	)

	if err != nil {
		return nil, err
	}

	return file, nil
}

// ListByCaseID retrieves all files linked to a case
func (r *FileRepository) ListByCaseID(ctx context.Context, caseID uuid.UUID) ([]*models.File, error) {
	query := `
		SELECT id, user_id, chat_id, case_id, filename, mime_type, size,
			storage_path, extracted_text, summary, created_at
		FROM files
		WHERE case_id = $1
		ORDER BY created_at DESC`

	return r.list(ctx, query, caseID)
}

// ListByChatID retrieves all files attached to a chat thread
func (r *FileRepository) ListByChatID(ctx context.Context, chatID uuid.UUID) ([]*models.File, error) {
	query := `
		SELECT id, user_id, chat_id, case_id, filename, mime_type, size,
			storage_path, extracted_text, summary, created_at
		FROM files
		WHERE chat_id = $1
		ORDER BY created_at DESC`

	return r.list(ctx, query, chatID)
}

func (r *FileRepository) list(ctx context.Context, query string, arg any) ([]*models.File, error) {
	rows, err := r.db.Query(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var files []*models.File
	for rows.Next() {
		file := &models.File{}
		err := rows.Scan(
			&file.ID,
			&file.UserID,
			&file.ChatID,
			&file.CaseID,
			&file.Filename,
			&file.MimeType,
			&file.Size,
			&file.StoragePath,
			&file.ExtractedText,
			&file.Summary,
			&file.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		files = append(files, file)
	}

	return files, rows.Err()
}

// UpdateSummary sets the analysis summary for a file
func (r *FileRepository) UpdateSummary(ctx context.Context, id uuid.UUID, summary string) error {
	query := `UPDATE files SET summary = $2 WHERE id = $1`
	_, err := r.db.Exec(ctx, query, id, summary)
	return err
}

// LinkToCase attaches a file to a case after analysis
func (r *FileRepository) LinkToCase(ctx context.Context, id, caseID uuid.UUID) error {
	query := `UPDATE files SET case_id = $2 WHERE id = $1`
	_, err := r.db.Exec(ctx, query, id, caseID)
	return err
}

// Delete deletes a file record
func (r *FileRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM files WHERE id = $1`
	_, err := r.db.Exec(ctx, query, id)
	return err
}
