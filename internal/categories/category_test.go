package categories

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"lowercase", "Technology", "technology"},
		{"spaces become hyphens", "World News", "world-news"},
		{"underscores become hyphens", "tech_news", "tech-news"},
		{"mixed separators", "Breaking_News Today", "breaking-news-today"},
		{"already normalized", "sports", "sports"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Slugify(tc.input))
		})
	}
}

func TestSlugifyDeterministic(t *testing.T) {
	assert.Equal(t, Slugify("Consumer Electronics"), Slugify("Consumer Electronics"))
}

func TestMapHTTPStatus(t *testing.T) {
	tests := []struct {
		err      error
		expected int
	}{
		{ErrNotFound, http.StatusNotFound},
		{ErrDuplicate, http.StatusConflict},
		{ErrInvalidName, http.StatusBadRequest},
		{fmt.Errorf("find category: %w", ErrNotFound), http.StatusNotFound},
		{errors.New("connection refused"), http.StatusInternalServerError},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.expected, MapHTTPStatus(tc.err))
	}
}
