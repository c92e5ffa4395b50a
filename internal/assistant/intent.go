package assistant

import "strings"

// Intent is the classified purpose of an administrator message.
type Intent int

const (
	IntentGeneral Intent = iota
	IntentCreateCategory
	IntentListCategories
)

func (i Intent) String() string {
	switch i {
	case IntentCreateCategory:
		return "create_category"
	case IntentListCategories:
		return "list_categories"
	default:
		return "general"
	}
}

type intentRule struct {
	matches func(string) bool
	intent  Intent
}

// The rules are evaluated top to bottom and the first match wins. Creation is
// checked before listing, so a message mentioning both verbs resolves to a
// creation request. A message like "show me how to create a category" is
// therefore treated as creation; callers depend on this precedence.
var intentRules = []intentRule{
	{
		matches: func(m string) bool {
			return strings.Contains(m, "create") && strings.Contains(m, "categor")
		},
		intent: IntentCreateCategory,
	},
	{
		matches: func(m string) bool {
			listing := strings.Contains(m, "list") ||
				strings.Contains(m, "show") ||
				strings.Contains(m, "what")
			return listing && strings.Contains(m, "categor")
		},
		intent: IntentListCategories,
	},
}

// Classify resolves a free-text administrator message to an intent.
func Classify(message string) Intent {
	normalized := strings.ToLower(message)
	for _, rule := range intentRules {
		if rule.matches(normalized) {
			return rule.intent
		}
	}
	return IntentGeneral
}
