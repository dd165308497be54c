package models

import (
	"time"

	"github.com/google/uuid"
)

// File represents an uploaded document. A file can be attached to a
// chat thread, linked to a case after analysis, or both.
type File struct {
	ID            uuid.UUID  `json:"id"`
	UserID        uuid.UUID  `json:"user_id"`
	ChatID        *uuid.UUID `json:"chat_id,omitempty"`
	CaseID        *uuid.UUID `json:"case_id,omitempty"`
	Filename      string     `json:"filename"`
	MimeType      string     `json:"mime_type"`
	Size          int64      `json:"size"`
	StoragePath   string     `json:"storage_path"`
	ExtractedText string     `json:"-"`
	Summary       string     `json:"summary,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}
