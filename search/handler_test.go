package search

import (
	"errors"
	"testing"

	"github.com/medivoice/medivoice-api/medicines"
)

func TestAnswer(t *testing.T) {
	catalog := testCatalog()

	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "dosage lookup",
			text: "What is the dosage of paracetamol",
			want: "Paracetamol - 500-1000mg every 4-6 hours max 4000mg/day",
		},
		{
			name: "uses lookup",
			text: "paracetamol uses",
			want: "Paracetamol - Fever, Mild to moderate pain",
		},
		{
			name: "unknown medicine",
			text: "xyznotreal",
			want: NotFoundReply,
		},
		{
			name: "trigger phrase with known medicine",
			text: "hey medu paracetamol",
			want: TriggerReply,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Answer(tt.text, catalog)
			if err != nil {
				t.Fatalf("Answer(%q) returned error: %v", tt.text, err)
			}
			if got != tt.want {
				t.Errorf("Answer(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestAnswerEmptyInput(t *testing.T) {
	catalog := testCatalog()

	for _, text := range []string{"", "   ", "\t\n"} {
		_, err := Answer(text, catalog)
		if !errors.Is(err, ErrEmptyInput) {
			t.Errorf("Answer(%q) error = %v, want ErrEmptyInput", text, err)
		}
	}
}

// A wake word answers with the fixed acknowledgement regardless of
// catalog contents, even when no medicine matches.
func TestAnswerBareTrigger(t *testing.T) {
	catalogs := []*medicines.Catalog{testCatalog(), medicines.NewCatalog()}

	for _, catalog := range catalogs {
		got, err := Answer("hey murf medu", catalog)
		if err != nil {
			t.Fatalf("Answer returned error: %v", err)
		}
		if got != TriggerReply {
			t.Errorf("Answer(\"hey murf medu\") = %q, want %q", got, TriggerReply)
		}
	}
}
