package service

import (
	"lexai-backend/llm"
	"lexai-backend/models"
)

// caseDataFromCalls inspects a turn's tool calls for a createCase
// invocation and extracts the case payload for the response. A call
// whose result confirms persistence wins outright; a call that was
// only invoked yields a draft built from the model's input arguments so
// the caller can prefill a confirmation UI. Other tool names are the
// model adapter's business and are ignored here. Malformed calls are
// skipped, never fatal.
func caseDataFromCalls(calls []llm.ToolCall) *models.CaseDraft {
	for _, call := range calls {
		if call.Name != llm.ToolCreateCase {
			continue
		}
		if draft := draftFromResult(call.Result); draft != nil {
			return draft
		}
		if draft := draftFromInput(call.Input); draft != nil {
			return draft
		}
	}
	return nil
}

// draftFromResult builds a persisted CaseDraft from a createCase tool
// result that confirms success and carries the new case ID.
func draftFromResult(result map[string]any) *models.CaseDraft {
	if result == nil {
		return nil
	}
	success, _ := result["success"].(bool)
	caseID, _ := result["caseId"].(string)
	if !success || caseID == "" {
		return nil
	}

	draft := &models.CaseDraft{CaseID: caseID}
	draft.CaseName, _ = result["caseName"].(string)
	draft.CreatedAt, _ = result["createdAt"].(string)
	draft.Tags = asStringSlice(result["tags"])
	if summary, ok := result["summary"].(string); ok {
		draft.Details.Summary = summary
	}
	return draft
}

// draftFromInput builds an unpersisted CaseDraft from the arguments the
// model passed to createCase.
func draftFromInput(input map[string]any) *models.CaseDraft {
	if input == nil {
		return nil
	}
	name, _ := input["caseName"].(string)
	if name == "" {
		return nil
	}

	draft := &models.CaseDraft{
		CaseName: name,
		Tags:     asStringSlice(input["tags"]),
		Details:  detailsFromMap(input),
	}
	return draft
}

// detailsFromMap pulls the known case detail fields out of a loosely
// typed tool argument map.
func detailsFromMap(m map[string]any) models.CaseDetails {
	str := func(key string) string {
		s, _ := m[key].(string)
		return s
	}
	return models.CaseDetails{
		PetitionerName:    str("petitionerName"),
		RespondentName:    str("respondentName"),
		CaseNumber:        str("caseNumber"),
		CourtName:         str("courtName"),
		JudgeName:         str("judgeName"),
		PetitionerCounsel: str("petitionerCounsel"),
		RespondentCounsel: str("respondentCounsel"),
		CaseType:          str("caseType"),
		FilingDate:        str("filingDate"),
		NextHearingDate:   str("nextHearingDate"),
		Summary:           str("summary"),
		LegalSections:     asStringSlice(m["legalSections"]),
		KeyFacts:          asStringSlice(m["keyFacts"]),
	}
}

func asStringSlice(v any) []string {
	switch items := v.(type) {
	case []string:
		return items
	case []any:
		out := make([]string, 0, len(items))
		for _, item := range items {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}
