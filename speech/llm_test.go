package speech

import (
	"context"
	"strings"
	"testing"
)

// Without a configured provider the assistant must answer from the
// rule table instead of failing.
func TestChatAssistantDisabledFallsBackToRules(t *testing.T) {
	tests := []struct {
		name     string
		provider string
	}{
		{"provider none", "none"},
		{"groq without key", "groq"},
		{"openai without key", "openai"},
		{"unknown provider", "other"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assistant := NewChatAssistant(tt.provider, "", "")

			reply, source := assistant.Generate(context.Background(), "hello", "")
			if source != SourceRules {
				t.Errorf("source = %q, want %q", source, SourceRules)
			}
			if !strings.HasPrefix(reply, "Hello!") {
				t.Errorf("reply = %q, want greeting rule", reply)
			}
		})
	}
}

func TestNewChatAssistantEnabled(t *testing.T) {
	if a := NewChatAssistant("groq", "", "gsk-test"); !a.enabled || a.model != "llama3-70b-8192" {
		t.Errorf("groq assistant = %+v", a)
	}
	if a := NewChatAssistant("openai", "sk-test", ""); !a.enabled || a.model != "gpt-3.5-turbo" {
		t.Errorf("openai assistant = %+v", a)
	}
}
