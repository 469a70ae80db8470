package speech

import (
	"fmt"
	"strings"
)

// replyRule maps a keyword set to a canned reply. Rules are evaluated
// in order, first match wins; kept as literal data since the exact
// table is the fallback contract.
type replyRule struct {
	keywords []string
	reply    string
}

var replyRules = []replyRule{
	{
		keywords: []string{"hello", "hi", "hey"},
		reply:    "Hello! I'm MediVoice AI. I can help you with medicine information, set reminders, and check interactions.",
	},
	{
		keywords: []string{"thank"},
		reply:    "You're welcome! Let me know if you need any more help with medicines.",
	},
	{
		keywords: []string{"medicine", "drug", "pill"},
		reply:    "I can help you find information about medicines. Please tell me the name of the medicine you're interested in.",
	},
	{
		keywords: []string{"remind"},
		reply:    "I can help you set reminders for taking medicines. Please tell me the time and what you'd like to be reminded about.",
	},
}

// RuleBasedReply answers a prompt from the fixed keyword table. The
// default restates the prompt so the caller always gets a usable reply.
func RuleBasedReply(prompt string) string {
	lower := strings.ToLower(prompt)

	for _, rule := range replyRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.reply
			}
		}
	}

	return fmt.Sprintf("I understand you're asking: '%s'. I'm your medical assistant. I can help with medicine information, reminders, and checking interactions between medicines.", prompt)
}
