package service

import (
	"context"
	"log"
	"strings"

	"lexai-backend/llm"
)

// TitleService generates short titles for chat threads
type TitleService struct {
	generator llm.Generator
}

// TitleServiceOption is a functional option for TitleService
type TitleServiceOption func(*TitleService)

// TitleWithGenerator sets the model client
func TitleWithGenerator(g llm.Generator) TitleServiceOption {
	return func(s *TitleService) {
		s.generator = g
	}
}

// NewTitleService creates a new title service
func NewTitleService(opts ...TitleServiceOption) *TitleService {
	s := &TitleService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GenerateTitle produces a short title for a conversation opening with
// the given message. A failed model call degrades to a truncation of
// the message itself.
func (s *TitleService) GenerateTitle(ctx context.Context, message string) string {
	var out struct {
		Title string `json:"title"`
	}
	if s.generator != nil {
		if err := s.generator.GenerateJSON(ctx, llm.ProfileTitle, llm.BuildTitlePrompt(message), &out); err != nil {
			log.Printf("Warning: title generation failed: %v", err)
		}
	}

	title := strings.TrimSpace(out.Title)
	if title != "" {
		return title
	}
	return truncateTitle(message)
}

func truncateTitle(message string) string {
	words := strings.Fields(message)
	if len(words) == 0 {
		return "New Conversation"
	}
	if len(words) > 6 {
		return strings.Join(words[:6], " ") + "..."
	}
	return strings.Join(words, " ")
}
