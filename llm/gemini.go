package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	"lexai-backend/models"

	"github.com/google/generative-ai-go/genai"
)

// Generator is the model-facing surface the services depend on.
// GenerateTurn runs a conversational turn under the named profile,
// including the tool loop for profiles that carry tools. GenerateJSON
// runs a single structured-output call and decodes the result into out.
type Generator interface {
	GenerateTurn(ctx context.Context, profileName string, req *models.ChatTurnRequest) (*Turn, error)
	GenerateJSON(ctx context.Context, profileName string, prompt string, out any) error
}

var (
	ErrUnknownProfile = errors.New("unknown model profile")
	ErrEmptyCandidate = errors.New("model returned no candidates")
)

const (
	maxRetries     = 3
	initialBackoff = time.Second
	maxToolRounds  = 4
)

// Client calls Gemini through the official SDK. It implements Generator.
type Client struct {
	genai *genai.Client
	exec  ToolExecutor
}

// ClientOption is a functional option for Client
type ClientOption func(*Client)

// WithToolExecutor sets the executor used to run tool calls surfaced
// during a turn. Without one, tool calls are surfaced but not executed.
func WithToolExecutor(exec ToolExecutor) ClientOption {
	return func(c *Client) {
		c.exec = exec
	}
}

// NewClient wraps a Gemini API client
func NewClient(client *genai.Client, opts ...ClientOption) *Client {
	c := &Client{genai: client}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) configureModel(p profile, system string) *genai.GenerativeModel {
	model := c.genai.GenerativeModel(p.model)
	model.SetTemperature(p.temperature)
	if p.maxOutputTokens > 0 {
		model.SetMaxOutputTokens(p.maxOutputTokens)
	}
	if system != "" {
		model.SystemInstruction = &genai.Content{
			Parts: []genai.Part{genai.Text(system)},
		}
	}
	if p.useTools {
		model.Tools = chatTools()
	}
	// Tools and constrained JSON output are mutually exclusive on the
	// generateContent API, so tool profiles get plain text back.
	if p.jsonOutput && !p.useTools {
		model.ResponseMIMEType = "application/json"
		model.ResponseSchema = p.schema
	}
	return model
}

// GenerateTurn runs one conversational turn under the named profile.
func (c *Client) GenerateTurn(ctx context.Context, profileName string, req *models.ChatTurnRequest) (*Turn, error) {
	p, ok := profiles[profileName]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownProfile, profileName)
	}

	system := generalSystemPrompt
	if profileName == ProfileCaseScoped {
		system = caseScopedSystemPrompt
	}
	model := c.configureModel(p, system)

	session := model.StartChat()
	session.History = historyToContents(req.History)

	resp, err := c.sendWithRetry(ctx, session, genai.Text(BuildTurnPrompt(profileName, req)))
	if err != nil {
		return nil, err
	}

	turn := &Turn{}
	text, calls := splitParts(resp)

	// Tool loop: execute surfaced calls and feed results back until the
	// model settles on a text answer.
	for round := 0; len(calls) > 0 && c.exec != nil; round++ {
		if round >= maxToolRounds {
			log.Printf("Warning: tool loop exceeded %d rounds, stopping", maxToolRounds)
			break
		}

		responses := make([]genai.Part, 0, len(calls))
		for _, call := range calls {
			result, err := c.exec.Execute(ctx, call.Name, call.Input)
			if err != nil {
				log.Printf("Warning: tool %s failed: %v", call.Name, err)
				result = map[string]any{"success": false, "error": err.Error()}
			}
			call.Result = result
			turn.Calls = append(turn.Calls, call)
			responses = append(responses, genai.FunctionResponse{
				Name:     call.Name,
				Response: result,
			})
		}

		resp, err = c.sendWithRetry(ctx, session, responses...)
		if err != nil {
			// Tool results are already recorded; surface what we have.
			turn.Output = text
			return turn, nil
		}
		text, calls = splitParts(resp)
	}

	// Calls surfaced with no executor attached still end up on the turn.
	turn.Calls = append(turn.Calls, calls...)
	turn.Output = decodeOutput(text)
	return turn, nil
}

// GenerateJSON runs a single structured-output call under the named
// profile and decodes the JSON response into out.
func (c *Client) GenerateJSON(ctx context.Context, profileName string, prompt string, out any) error {
	p, ok := profiles[profileName]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownProfile, profileName)
	}

	model := c.configureModel(p, "")

	var resp *genai.GenerateContentResponse
	var err error
	for attempt := 0; attempt < maxRetries; attempt++ {
		if attempt > 0 {
			backoff := initialBackoff * time.Duration(math.Pow(2, float64(attempt-1)))
			log.Printf("Retrying %s call in %v (attempt %d/%d)", profileName, backoff, attempt+1, maxRetries)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(backoff):
			}
		}
		resp, err = model.GenerateContent(ctx, genai.Text(prompt))
		if err == nil {
			break
		}
	}
	if err != nil {
		return err
	}

	text, _ := splitParts(resp)
	if text == "" {
		return ErrEmptyCandidate
	}
	return json.Unmarshal([]byte(stripCodeFences(text)), out)
}

func (c *Client) sendWithRetry(ctx context.Context, session *genai.ChatSession, parts ...genai.Part) (*genai.GenerateContentResponse, error) {
	var resp *genai.GenerateContentResponse
	var err error
	for attempt := 0; attempt < maxRetries; attempt++ {
		if attempt > 0 {
			backoff := initialBackoff * time.Duration(math.Pow(2, float64(attempt-1)))
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(backoff):
			}
		}
		resp, err = session.SendMessage(ctx, parts...)
		if err == nil {
			return resp, nil
		}
		log.Printf("Warning: model call failed (attempt %d/%d): %v", attempt+1, maxRetries, err)
	}
	return nil, err
}

func historyToContents(history []models.ChatMessage) []*genai.Content {
	var contents []*genai.Content
	for _, msg := range history {
		role := "user"
		if msg.Role == models.RoleAssistant {
			role = "model"
		}
		contents = append(contents, &genai.Content{
			Role:  role,
			Parts: []genai.Part{genai.Text(msg.Content)},
		})
	}
	return contents
}

// splitParts separates the text and function call parts of a response
func splitParts(resp *genai.GenerateContentResponse) (string, []ToolCall) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", nil
	}

	var text strings.Builder
	var calls []ToolCall
	for _, part := range resp.Candidates[0].Content.Parts {
		switch p := part.(type) {
		case genai.Text:
			text.WriteString(string(p))
		case genai.FunctionCall:
			calls = append(calls, ToolCall{Name: p.Name, Input: p.Args})
		}
	}
	return text.String(), calls
}

// decodeOutput turns raw model text into the richest payload it can.
// Structured replies come back as a map, anything else stays a string
// and gets wrapped downstream.
func decodeOutput(text string) any {
	trimmed := stripCodeFences(text)
	if strings.HasPrefix(trimmed, "{") {
		var m map[string]any
		if err := json.Unmarshal([]byte(trimmed), &m); err == nil {
			return m
		}
	}
	if text == "" {
		return nil
	}
	return text
}

func stripCodeFences(text string) string {
	trimmed := strings.TrimSpace(text)
	if strings.HasPrefix(trimmed, "```") {
		trimmed = strings.TrimPrefix(trimmed, "```json")
		trimmed = strings.TrimPrefix(trimmed, "```")
		trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
		trimmed = strings.TrimSpace(trimmed)
	}
	return trimmed
}
