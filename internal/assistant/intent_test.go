package assistant

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		message  string
		expected Intent
	}{
		{"create request", "please create a category called Gadgets", IntentCreateCategory},
		{"create case insensitive", "CREATE a new Category please", IntentCreateCategory},
		{"list with list verb", "list my categories", IntentListCategories},
		{"list with show verb", "show me all categories", IntentListCategories},
		{"list with what verb", "what categories do we have?", IntentListCategories},
		{"plain question", "how do I publish an article?", IntentGeneral},
		{"category mention without verbs", "I like the sports category", IntentGeneral},
		{"listing verb without category noun", "show me the dashboard", IntentGeneral},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Classify(tc.message))
		})
	}
}

// Creation is checked before listing, so messages carrying both verbs always
// resolve to creation. This covers the documented precedence contract.
func TestClassifyCreationPrecedence(t *testing.T) {
	tests := []string{
		"show me how to create a category",
		"list categories and create one called News",
		"what do I need to create a category?",
	}

	for _, message := range tests {
		assert.Equal(t, IntentCreateCategory, Classify(message), message)
	}
}

func TestIntentString(t *testing.T) {
	assert.Equal(t, "create_category", IntentCreateCategory.String())
	assert.Equal(t, "list_categories", IntentListCategories.String())
	assert.Equal(t, "general", IntentGeneral.String())
}
