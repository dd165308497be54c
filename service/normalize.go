package service

import (
	"encoding/json"

	"lexai-backend/models"
)

// Canonical user-facing fallback text. These exact strings are part of
// the product contract with the UI.
const (
	fallbackMessage = "I apologize, but I encountered an issue processing your message. Please try again."
	errorMessage    = "I apologize, but I encountered a technical issue. Please try again or contact support if the problem persists."
)

func fallbackResponse() *models.ChatTurnResponse {
	return &models.ChatTurnResponse{
		Response: fallbackMessage,
		Suggestions: []string{
			"Could you rephrase your question?",
			"Would you like to upload a document for analysis?",
		},
	}
}

func errorResponse() *models.ChatTurnResponse {
	return &models.ChatTurnResponse{
		Response: errorMessage,
		Suggestions: []string{
			"Try rephrasing your question",
			"Check your internet connection",
			"Contact support",
		},
	}
}

// Normalize coerces whatever shape the model produced into a canonical
// ChatTurnResponse. Rules, in priority order:
//
//  1. nil or empty input yields the canonical fallback response.
//  2. A bare string is wrapped as the response text.
//  3. A payload with a non-empty "response" string passes through,
//     retaining any fields beyond the known schema.
//  4. A payload with only a "text" string is wrapped like rule 2.
//  5. Anything else yields the canonical fallback response.
//
// Normalize never panics and is idempotent on canonical input.
func Normalize(raw any) (resp *models.ChatTurnResponse) {
	defer func() {
		if r := recover(); r != nil {
			resp = fallbackResponse()
		}
	}()

	switch v := raw.(type) {
	case nil:
		return fallbackResponse()
	case string:
		if v == "" {
			return fallbackResponse()
		}
		return &models.ChatTurnResponse{Response: v, Suggestions: []string{}}
	case *models.ChatTurnResponse:
		if v == nil || v.Response == "" {
			return fallbackResponse()
		}
		if v.Suggestions == nil {
			v.Suggestions = []string{}
		}
		return v
	case models.ChatTurnResponse:
		return Normalize(&v)
	case map[string]any:
		return normalizeMap(v)
	default:
		// Unknown shapes go through a JSON round-trip so struct-typed
		// adapter payloads get the same treatment as maps.
		data, err := json.Marshal(raw)
		if err != nil {
			return fallbackResponse()
		}
		var m map[string]any
		if err := json.Unmarshal(data, &m); err != nil {
			var s string
			if json.Unmarshal(data, &s) == nil && s != "" {
				return &models.ChatTurnResponse{Response: s, Suggestions: []string{}}
			}
			return fallbackResponse()
		}
		return normalizeMap(m)
	}
}

func normalizeMap(m map[string]any) *models.ChatTurnResponse {
	if m == nil {
		return fallbackResponse()
	}

	if r, ok := m["response"].(string); ok && r != "" {
		resp := &models.ChatTurnResponse{Response: r}
		if data, err := json.Marshal(m); err == nil {
			var typed models.ChatTurnResponse
			if json.Unmarshal(data, &typed) == nil && typed.Response != "" {
				resp = &typed
			}
		}
		if resp.Suggestions == nil {
			resp.Suggestions = []string{}
		}
		return resp
	}

	if t, ok := m["text"].(string); ok && t != "" {
		return &models.ChatTurnResponse{Response: t, Suggestions: []string{}}
	}

	return fallbackResponse()
}
