package agents

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pressbox-io/pressbox/internal/config"
	"github.com/pressbox-io/pressbox/internal/llm"
)

type fakeProvider struct {
	response *llm.ChatResponse
	err      error

	mu       sync.Mutex
	requests []llm.ChatRequest
}

func (p *fakeProvider) Chat(ctx context.Context, req llm.ChatRequest) (*llm.ChatResponse, error) {
	p.mu.Lock()
	p.requests = append(p.requests, req)
	p.mu.Unlock()

	if p.err != nil {
		return nil, p.err
	}
	return p.response, nil
}

func testLLMConfig() *config.LLMConfig {
	return &config.LLMConfig{
		ChatModel:   "test-chat",
		SearchModel: "test-search",
		Temperature: 0.2,
		MaxTokens:   256,
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestRegistryReturnsSameInstance(t *testing.T) {
	registry := NewRegistry(&fakeProvider{}, testLLMConfig(), testLogger())

	first, err := registry.GetOrCreate(TypeChat)
	require.NoError(t, err)

	second, err := registry.GetOrCreate(TypeChat)
	require.NoError(t, err)

	assert.Same(t, first, second)
}

func TestRegistryUnknownType(t *testing.T) {
	registry := NewRegistry(&fakeProvider{}, testLLMConfig(), testLogger())

	_, err := registry.GetOrCreate("oracle")
	assert.ErrorIs(t, err, ErrUnknownType)
}

func TestRegistryConcurrentFirstUse(t *testing.T) {
	registry := NewRegistry(&fakeProvider{}, testLLMConfig(), testLogger())

	const workers = 16
	results := make([]Agent, workers)
	errs := make([]error, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = registry.GetOrCreate(TypeSearch)
		}(i)
	}
	wg.Wait()

	for i := range results {
		require.NoError(t, errs[i])
	}
	for _, agent := range results[1:] {
		assert.Same(t, results[0], agent)
	}
}

func TestRegistryCapabilities(t *testing.T) {
	registry := NewRegistry(&fakeProvider{}, testLLMConfig(), testLogger())

	capabilities, err := registry.Capabilities()
	require.NoError(t, err)

	assert.Contains(t, capabilities[TypeChat], "chat")
	assert.Contains(t, capabilities[TypeSearch], "search")
}

func TestChatAgentExecute(t *testing.T) {
	provider := &fakeProvider{
		response: &llm.ChatResponse{
			Content: "hello",
			Usage:   llm.Usage{TotalTokens: 42},
		},
	}
	agent := NewChatAgent(provider, testLLMConfig(), testLogger())

	result := agent.Execute(context.Background(), "hi", false)

	require.True(t, result.Success)
	assert.Equal(t, "hello", result.Content)
	assert.Equal(t, 42, result.Metadata["total_tokens"])

	require.Len(t, provider.requests, 1)
	assert.Equal(t, "test-chat", provider.requests[0].Model)
	assert.Empty(t, provider.requests[0].Tools)
}

func TestChatAgentExecuteFailure(t *testing.T) {
	provider := &fakeProvider{err: errors.New("runtime unreachable")}
	agent := NewChatAgent(provider, testLLMConfig(), testLogger())

	result := agent.Execute(context.Background(), "hi", false)

	assert.False(t, result.Success)
	assert.Empty(t, result.Content)
	assert.Contains(t, result.Error, "runtime unreachable")
}

func TestSearchAgentToolUsage(t *testing.T) {
	provider := &fakeProvider{
		response: &llm.ChatResponse{
			Content: "findings",
			ToolCalls: []llm.ToolCall{
				{Name: "web_search", Arguments: map[string]any{"query": "go releases"}},
				{Name: "web_search", Arguments: map[string]any{"query": "go 1.25"}},
			},
		},
	}
	agent := NewSearchAgent(provider, testLLMConfig(), testLogger())

	result := agent.Execute(context.Background(), "latest go release", true)

	require.True(t, result.Success)
	assert.Equal(t, 2, result.Metadata["tool_run_count"])

	require.Len(t, provider.requests, 1)
	require.Len(t, provider.requests[0].Tools, 1)
	assert.Equal(t, "web_search", provider.requests[0].Tools[0].Function.Name)
}

func TestSearchAgentWithoutTools(t *testing.T) {
	provider := &fakeProvider{response: &llm.ChatResponse{Content: "findings"}}
	agent := NewSearchAgent(provider, testLLMConfig(), testLogger())

	result := agent.Execute(context.Background(), "latest go release", false)

	require.True(t, result.Success)
	assert.Equal(t, 0, result.Metadata["tool_run_count"])

	require.Len(t, provider.requests, 1)
	assert.Empty(t, provider.requests[0].Tools)
}
