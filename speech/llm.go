package speech

import (
	"context"

	openai "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"github.com/medivoice/medivoice-api/interfaces"
	"github.com/medivoice/medivoice-api/logging"
)

const groqBaseURL = "https://api.groq.com/openai/v1"

// Reply sources reported alongside assistant replies.
const (
	SourceLLM   = "llm"
	SourceRules = "rules"
)

// Compile-time check to ensure ChatAssistant implements Assistant
var _ interfaces.Assistant = (*ChatAssistant)(nil)

// ChatAssistant generates enrichment replies through an OpenAI-protocol
// chat API (OpenAI or Groq). It is off the critical lookup path: when
// no provider is configured or a call fails, it degrades to the
// rule-based reply table instead of returning an error.
type ChatAssistant struct {
	client  openai.Client
	model   string
	enabled bool
}

// NewChatAssistant selects a provider. Unknown providers or missing
// keys yield a rules-only assistant.
func NewChatAssistant(provider, openaiKey, groqKey string) *ChatAssistant {
	switch provider {
	case "openai":
		if openaiKey != "" {
			return &ChatAssistant{
				client:  openai.NewClient(option.WithAPIKey(openaiKey)),
				model:   "gpt-3.5-turbo",
				enabled: true,
			}
		}
	case "groq":
		if groqKey != "" {
			return &ChatAssistant{
				client: openai.NewClient(
					option.WithAPIKey(groqKey),
					option.WithBaseURL(groqBaseURL),
				),
				model:   "llama3-70b-8192",
				enabled: true,
			}
		}
	}

	logging.Info("LLM assistant not configured, using rule-based replies", "provider", provider)
	return &ChatAssistant{}
}

// Generate returns a reply and its source. LLM failures are logged and
// recovered with the rule-based table; Generate never fails.
func (a *ChatAssistant) Generate(ctx context.Context, prompt, systemPrompt string) (string, string) {
	if !a.enabled {
		return RuleBasedReply(prompt), SourceRules
	}

	messages := make([]openai.ChatCompletionMessageParamUnion, 0, 2)
	if systemPrompt != "" {
		messages = append(messages, openai.SystemMessage(systemPrompt))
	}
	messages = append(messages, openai.UserMessage(prompt))

	resp, err := a.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages:    messages,
		Model:       openai.ChatModel(a.model),
		Temperature: openai.Float(0.7),
		MaxTokens:   openai.Int(500),
	})
	if err != nil {
		logging.Warn("LLM request failed, falling back to rules", "error", err)
		return RuleBasedReply(prompt), SourceRules
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		logging.Warn("LLM returned no content, falling back to rules")
		return RuleBasedReply(prompt), SourceRules
	}

	return resp.Choices[0].Message.Content, SourceLLM
}
