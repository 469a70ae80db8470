package validation

import (
	"strings"
	"testing"
)

func TestValidateQueryText(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"normal query", "what is the dosage of paracetamol", false},
		{"empty is allowed here", "", false},
		{"newline and tab allowed", "dosage\nof\tparacetamol", false},
		{"accented name", "doliprane comprimé", false},
		{"at length limit", strings.Repeat("a", 500), false},
		{"over length limit", strings.Repeat("a", 501), true},
		{"too many words", strings.Repeat("word ", 41), true},
		{"script tag", "tell me about <script>alert(1)</script>", true},
		{"javascript scheme", "JAVASCRIPT:void(0)", true},
		{"path traversal", "../../etc/passwd", true},
		{"control character", "paracetamol\x00", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateQueryText(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateQueryText(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateMedicineName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"normal name", "paracetamol", false},
		{"empty", "", true},
		{"whitespace only", "   ", true},
		{"too long", strings.Repeat("a", 101), true},
		{"dangerous content", "<script>paracetamol", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateMedicineName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateMedicineName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
