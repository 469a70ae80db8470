package search

import (
	"strings"

	"github.com/medivoice/medivoice-api/medicines/entities"
)

// Reply strings shared with the request handler.
const (
	TriggerReply     = "yes tell me"
	NotFoundReply    = "Medicine not found."
	infoNotAvailable = "Info not available for requested field"
)

// triggerPhrases short-circuit extraction when the user is just waking
// the assistant. Several spellings show up in real transcripts.
var triggerPhrases = []string{
	"hey murfmedu",
	"hey medu",
	"hey murf medu",
}

// fieldRule maps a keyword set to a field category. Rules are
// evaluated in order, first match wins. These are kept as literal
// data on purpose: the exact keyword sets and their order are the
// observed contract.
type fieldRule struct {
	category string
	keywords []string
}

var fieldRules = []fieldRule{
	{category: "uses", keywords: []string{"use", "uses", "ka use", "kya karta", "what is this for"}},
	{category: "prescription", keywords: []string{"prescription", "prescribe", "doctor"}},
	{category: "dosage", keywords: []string{"dosage", "dose", "kitni", "kitna"}},
}

// ExtractField classifies a query against a matched medicine and
// formats the reply. Trigger phrases take absolute priority and return
// the fixed acknowledgement regardless of the record. The function is
// total: every (query, record) pair yields exactly one string.
func ExtractField(query string, med *entities.Medicine) string {
	q := strings.ToLower(query)

	for _, phrase := range triggerPhrases {
		if strings.Contains(q, phrase) {
			return TriggerReply
		}
	}

	category := ""
	for _, rule := range fieldRules {
		if containsAny(q, rule.keywords) {
			category = rule.category
			break
		}
	}

	if value := fieldValue(med, category); value != "" {
		return med.Name + " - " + value
	}

	return med.Name + " - " + infoNotAvailable
}

// containsAny reports whether any keyword is contained in q.
func containsAny(q string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(q, kw) {
			return true
		}
	}
	return false
}

// fieldValue resolves a category to the record's field value, or ""
// when the category is unknown or the field is empty.
func fieldValue(med *entities.Medicine, category string) string {
	switch category {
	case "uses":
		return strings.Join(med.Uses, ", ")
	case "prescription":
		return med.Prescription
	case "dosage":
		return med.DosageAdults
	}
	return ""
}
