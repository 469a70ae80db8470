package search

import (
	"errors"
	"strings"

	"github.com/medivoice/medivoice-api/medicines"
)

// ErrEmptyInput is returned by Answer when the query text is empty or
// whitespace-only. The HTTP layer maps it to a client error.
var ErrEmptyInput = errors.New("no text provided")

// Answer is the request orchestration for the voice path: it trims the
// raw text, matches it with the strict transcript matcher and extracts
// the requested field. No match yields the fixed not-found reply, which
// is a normal outcome. Answer is stateless and safe for concurrent use.
func Answer(rawText string, catalog *medicines.Catalog) (string, error) {
	text := strings.TrimSpace(rawText)
	if text == "" {
		return "", ErrEmptyInput
	}

	// Wake words answer without a catalog lookup: the reply must be
	// the fixed acknowledgement even when nothing matches
	lower := strings.ToLower(text)
	for _, phrase := range triggerPhrases {
		if strings.Contains(lower, phrase) {
			return TriggerReply, nil
		}
	}

	med := FindByTranscript(text, catalog)
	if med == nil {
		return NotFoundReply, nil
	}

	return ExtractField(text, med), nil
}
