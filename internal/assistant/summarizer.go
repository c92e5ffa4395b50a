package assistant

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pressbox-io/pressbox/internal/agents"
)

const (
	summaryInputLimit = 2000
	summaryFallback   = "Summary not available."
)

// Summarizer condenses article content through the chat agent. It never
// fails: when the agent is unavailable or errors, it returns a fixed
// fallback string so summarization can never block the caller.
type Summarizer struct {
	agents AgentSource
	logger *slog.Logger
}

func NewSummarizer(agents AgentSource, logger *slog.Logger) *Summarizer {
	return &Summarizer{
		agents: agents,
		logger: logger.With("system", "summarizer"),
	}
}

// Summarize returns a 2-3 sentence summary of content. Input is truncated
// before prompting so cost stays bounded regardless of article size.
func (s *Summarizer) Summarize(ctx context.Context, content string) string {
	if content == "" {
		return summaryFallback
	}

	runes := []rune(content)
	if len(runes) > summaryInputLimit {
		content = string(runes[:summaryInputLimit])
	}

	agent, err := s.agents.GetOrCreate(agents.TypeChat)
	if err != nil {
		s.logger.Error("summarizer agent unavailable", "error", err)
		return summaryFallback
	}

	result := agent.Execute(ctx, fmt.Sprintf(summaryPrompt, content), false)
	if !result.Success || result.Content == "" {
		s.logger.Warn("summary generation failed", "error", result.Error)
		return summaryFallback
	}

	return result.Content
}
