package service

import "strings"

// caseIntentPhrases are the message fragments that trigger the
// fallback case-creation path when the model did not call the
// createCase tool itself.
var caseIntentPhrases = []string{
	"create a case",
	"create case",
	"analyze and create",
}

// hasCaseIntent reports whether the message asks for case creation.
// Matching is a case-insensitive substring check.
func hasCaseIntent(message string) bool {
	lower := strings.ToLower(message)
	for _, phrase := range caseIntentPhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}
