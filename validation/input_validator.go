// Package validation provides input sanity checks for user-supplied
// query text before it reaches the lookup core.
package validation

import (
	"fmt"
	"strings"
	"unicode"
)

const (
	// maxQueryLength bounds a spoken utterance; transcripts longer
	// than this are never legitimate medicine queries.
	maxQueryLength = 500
	maxQueryWords  = 40
)

// dangerousPatterns caught with plain string matching, which is much
// cheaper than a regex pass on the hot path.
var dangerousPatterns = []string{
	"<script",
	"javascript:",
	"onerror=",
	"onload=",
	"../",
	"\\x",
}

// ValidateQueryText checks free-form query text from the /query and
// /assistant endpoints. Empty input is not rejected here: the request
// handler maps it to its own client error.
func ValidateQueryText(input string) error {
	if len(input) > maxQueryLength {
		return fmt.Errorf("query too long: maximum %d characters", maxQueryLength)
	}

	if len(strings.Fields(input)) > maxQueryWords {
		return fmt.Errorf("query too complex: maximum %d words", maxQueryWords)
	}

	lower := strings.ToLower(input)
	for _, pattern := range dangerousPatterns {
		if strings.Contains(lower, pattern) {
			return fmt.Errorf("query contains potentially dangerous content")
		}
	}

	for _, r := range input {
		if unicode.IsControl(r) && r != '\n' && r != '\t' {
			return fmt.Errorf("query contains control characters")
		}
	}

	return nil
}

// ValidateMedicineName checks a medicine identifier from a URL path
// segment.
func ValidateMedicineName(input string) error {
	if strings.TrimSpace(input) == "" {
		return fmt.Errorf("medicine name cannot be empty")
	}

	if len(input) > 100 {
		return fmt.Errorf("medicine name too long: maximum 100 characters")
	}

	return ValidateQueryText(input)
}
