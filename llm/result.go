package llm

// ToolCall represents a single tool invocation from a model turn.
// Input holds the arguments the model supplied. Result holds the
// executor's output for calls that were actually executed; it is nil
// for calls that were surfaced but never run.
type ToolCall struct {
	Name   string         `json:"name"`
	Input  map[string]any `json:"input,omitempty"`
	Result map[string]any `json:"result,omitempty"`
}

// Turn is the outcome of one model turn. Output is the raw payload the
// model produced, normalized downstream. Tool invocations arrive under
// either Calls or ToolCalls depending on which wire convention the
// provider used; AllCalls is the only accessor callers should read.
type Turn struct {
	Output    any        `json:"output"`
	Calls     []ToolCall `json:"calls,omitempty"`
	ToolCalls []ToolCall `json:"toolCalls,omitempty"`
}

// AllCalls returns every tool call on the turn regardless of which
// field the provider populated.
func (t *Turn) AllCalls() []ToolCall {
	if t == nil {
		return nil
	}
	if len(t.Calls) == 0 {
		return t.ToolCalls
	}
	if len(t.ToolCalls) == 0 {
		return t.Calls
	}
	merged := make([]ToolCall, 0, len(t.Calls)+len(t.ToolCalls))
	merged = append(merged, t.Calls...)
	merged = append(merged, t.ToolCalls...)
	return merged
}
