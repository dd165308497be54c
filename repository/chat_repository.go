package repository

import (
	"context"

	"lexai-backend/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ChatRepository handles database operations for chat threads and
// their messages
type ChatRepository struct {
	db *pgxpool.Pool
}

// NewChatRepository creates a new chat repository
func NewChatRepository(db *pgxpool.Pool) *ChatRepository {
	return &ChatRepository{db: db}
}

// Create creates a new chat thread
func (r *ChatRepository) Create(ctx context.Context, chat *models.Chat) error {
	query := `
		INSERT INTO chats (user_id, case_id, title)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRow(
		ctx, query,
		chat.UserID,
		chat.CaseID,
		chat.Title,
	).Scan(&chat.ID, &chat.CreatedAt, &chat.UpdatedAt)

	return err
}

// GetByID retrieves a chat thread by ID
func (r *ChatRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Chat, error) {
	chat := &models.Chat{}
	query := `
		SELECT id, user_id, case_id, title, created_at, updated_at
		FROM chats
		WHERE id = $1`

	err := r.db.QueryRow(ctx, query, id).Scan(
		&chat.ID,
		&chat.UserID,
		&chat.CaseID,
		&chat.Title,
		&chat.CreatedAt,
		&chat.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}

	return chat, nil
}

// ListByUserID retrieves all chat threads for a user, most recent first
func (r *ChatRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]*models.Chat, error) {
	query := `
		SELECT id, user_id, case_id, title, created_at, updated_at
		FROM chats
		WHERE user_id = $1
		ORDER BY updated_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var chats []*models.Chat
	for rows.Next() {
		chat := &models.Chat{}
		err := rows.Scan(
			&chat.ID,
			&chat.UserID,
			&chat.CaseID,
			&chat.Title,
			&chat.CreatedAt,
			&chat.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		chats = append(chats, chat)
	}

	return chats, rows.Err()
}

// UpdateTitle updates a chat thread's title
func (r *ChatRepository) UpdateTitle(ctx context.Context, id uuid.UUID, title string) error {
	query := `UPDATE chats SET title = $2, updated_at = NOW() WHERE id = $1`
	_, err := r.db.Exec(ctx, query, id, title)
	return err
}

// AppendMessage stores one message on a chat thread and bumps the
// thread's updated_at
func (r *ChatRepository) AppendMessage(ctx context.Context, msg *models.ChatMessageRecord) error {
	query := `
		INSERT INTO chat_messages (chat_id, role, content)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	err := r.db.QueryRow(
		ctx, query,
		msg.ChatID,
		msg.Role,
		msg.Content,
	).Scan(&msg.ID, &msg.CreatedAt)

	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, `UPDATE chats SET updated_at = NOW() WHERE id = $1`, msg.ChatID)
	return err
}

// ListMessages retrieves a chat thread's messages in order
func (r *ChatRepository) ListMessages(ctx context.Context, chatID uuid.UUID) ([]*models.ChatMessageRecord, error) {
	query := `
		SELECT id, chat_id, role, content, created_at
		FROM chat_messages
		WHERE chat_id = $1
		ORDER BY created_at`

	rows, err := r.db.Query(ctx, query, chatID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []*models.ChatMessageRecord
	for rows.Next() {
		msg := &models.ChatMessageRecord{}
		err := rows.Scan(
			&msg.ID,
			&msg.ChatID,
			&msg.Role,
			&msg.Content,
			&msg.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		messages = append(messages, msg)
	}

	return messages, rows.Err()
}

// Delete deletes a chat thread and its messages
func (r *ChatRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM chat_messages WHERE chat_id = $1`, id); err != nil {
		return err
	}
	_, err := r.db.Exec(ctx, `DELETE FROM chats WHERE id = $1`, id)
	return err
}
