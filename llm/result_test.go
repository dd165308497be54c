package llm

import "testing"

func TestAllCalls_NilTurn(t *testing.T) {
	var turn *Turn
	if calls := turn.AllCalls(); calls != nil {
		t.Errorf("Expected nil for a nil turn, got %v", calls)
	}
}

func TestAllCalls_CallsOnly(t *testing.T) {
	turn := &Turn{Calls: []ToolCall{{Name: ToolCreateCase}}}
	calls := turn.AllCalls()
	if len(calls) != 1 || calls[0].Name != ToolCreateCase {
		t.Errorf("Expected the calls field returned, got %v", calls)
	}
}

func TestAllCalls_ToolCallsOnly(t *testing.T) {
	turn := &Turn{ToolCalls: []ToolCall{{Name: ToolListUpcomingEvents}}}
	calls := turn.AllCalls()
	if len(calls) != 1 || calls[0].Name != ToolListUpcomingEvents {
		t.Errorf("Expected the toolCalls field returned, got %v", calls)
	}
}

func TestAllCalls_MergesBothFields(t *testing.T) {
	turn := &Turn{
		Calls:     []ToolCall{{Name: "a"}, {Name: "b"}},
		ToolCalls: []ToolCall{{Name: "c"}},
	}
	calls := turn.AllCalls()
	if len(calls) != 3 {
		t.Fatalf("Expected 3 merged calls, got %d", len(calls))
	}
	if calls[0].Name != "a" || calls[2].Name != "c" {
		t.Errorf("Expected Calls before ToolCalls, got %v", calls)
	}
}
