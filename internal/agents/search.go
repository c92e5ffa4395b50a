package agents

import (
	"context"
	"log/slog"

	"github.com/pressbox-io/pressbox/internal/config"
	"github.com/pressbox-io/pressbox/internal/llm"
)

const searchSystemPrompt = "You are a research assistant. Use the web search tool " +
	"when current information is needed, and cite what you find."

var webSearchTool = llm.ToolDefinition{
	Type: "function",
	Function: llm.FunctionDef{
		Name:        "web_search",
		Description: "Search the web for current information on a topic",
		Parameters: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"query": map[string]any{
					"type":        "string",
					"description": "The search query",
				},
			},
			"required": []string{"query"},
		},
	},
}

// SearchAgent answers research prompts with an optional web search tool.
type SearchAgent struct {
	provider    llm.Provider
	model       string
	temperature float64
	maxTokens   int
	logger      *slog.Logger
}

func NewSearchAgent(provider llm.Provider, cfg *config.LLMConfig, logger *slog.Logger) *SearchAgent {
	return &SearchAgent{
		provider:    provider,
		model:       cfg.SearchModel,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
		logger:      logger.With("agent", TypeSearch),
	}
}

func (a *SearchAgent) Execute(ctx context.Context, prompt string, useTools bool) Result {
	req := llm.ChatRequest{
		Model: a.model,
		Messages: []llm.Message{
			{Role: "system", Content: searchSystemPrompt},
			{Role: "user", Content: prompt},
		},
		Temperature: a.temperature,
		MaxTokens:   a.maxTokens,
	}
	if useTools {
		req.Tools = []llm.ToolDefinition{webSearchTool}
	}

	resp, err := a.provider.Chat(ctx, req)
	if err != nil {
		a.logger.Error("search execution failed", "error", err)
		return Failure(err)
	}

	return Result{
		Success: true,
		Content: resp.Content,
		Metadata: map[string]any{
			"model":          a.model,
			"total_tokens":   resp.Usage.TotalTokens,
			"tool_run_count": len(resp.ToolCalls),
		},
	}
}

func (a *SearchAgent) Capabilities() []string {
	return []string{"search", "research", "web-search"}
}
