package agents

import (
	"context"
	"log/slog"

	"github.com/pressbox-io/pressbox/internal/config"
	"github.com/pressbox-io/pressbox/internal/llm"
)

const chatSystemPrompt = "You are a helpful assistant for a news and content platform. " +
	"Answer questions clearly and concisely."

// ChatAgent is a general-purpose conversational agent.
type ChatAgent struct {
	provider    llm.Provider
	model       string
	temperature float64
	maxTokens   int
	logger      *slog.Logger
}

func NewChatAgent(provider llm.Provider, cfg *config.LLMConfig, logger *slog.Logger) *ChatAgent {
	return &ChatAgent{
		provider:    provider,
		model:       cfg.ChatModel,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
		logger:      logger.With("agent", TypeChat),
	}
}

func (a *ChatAgent) Execute(ctx context.Context, prompt string, useTools bool) Result {
	resp, err := a.provider.Chat(ctx, llm.ChatRequest{
		Model: a.model,
		Messages: []llm.Message{
			{Role: "system", Content: chatSystemPrompt},
			{Role: "user", Content: prompt},
		},
		Temperature: a.temperature,
		MaxTokens:   a.maxTokens,
	})
	if err != nil {
		a.logger.Error("chat execution failed", "error", err)
		return Failure(err)
	}

	return Result{
		Success: true,
		Content: resp.Content,
		Metadata: map[string]any{
			"model":        a.model,
			"total_tokens": resp.Usage.TotalTokens,
		},
	}
}

func (a *ChatAgent) Capabilities() []string {
	return []string{"chat", "summarization", "content-generation"}
}
