package agents

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pressbox-io/pressbox/internal/llm"
)

func newTestHandler(provider *fakeProvider) *Handler {
	registry := NewRegistry(provider, testLLMConfig(), testLogger())
	return NewHandler(registry, testLogger())
}

func TestChatEndpoint(t *testing.T) {
	handler := newTestHandler(&fakeProvider{
		response: &llm.ChatResponse{Content: "hello back"},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/chat",
		strings.NewReader(`{"message": "hello"}`))
	rec := httptest.NewRecorder()
	handler.chat(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp ChatResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "hello back", resp.Response)
	assert.Equal(t, TypeChat, resp.AgentType)
	assert.Contains(t, resp.Capabilities, "chat")
}

func TestChatEndpointSelectsAgentType(t *testing.T) {
	handler := newTestHandler(&fakeProvider{
		response: &llm.ChatResponse{Content: "findings"},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/chat",
		strings.NewReader(`{"message": "hello", "agent_type": "search"}`))
	rec := httptest.NewRecorder()
	handler.chat(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp ChatResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, TypeSearch, resp.AgentType)
	assert.Contains(t, resp.Capabilities, "search")
}

func TestChatEndpointUnknownAgentType(t *testing.T) {
	handler := newTestHandler(&fakeProvider{})

	req := httptest.NewRequest(http.MethodPost, "/api/chat",
		strings.NewReader(`{"message": "hello", "agent_type": "oracle"}`))
	rec := httptest.NewRecorder()
	handler.chat(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestChatEndpointMirrorsAgentFailure(t *testing.T) {
	handler := newTestHandler(&fakeProvider{err: errors.New("runtime unreachable")})

	req := httptest.NewRequest(http.MethodPost, "/api/chat",
		strings.NewReader(`{"message": "hello"}`))
	rec := httptest.NewRecorder()
	handler.chat(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp ChatResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Error, "runtime unreachable")
}

func TestChatEndpointEmptyMessage(t *testing.T) {
	handler := newTestHandler(&fakeProvider{})

	req := httptest.NewRequest(http.MethodPost, "/api/chat",
		strings.NewReader(`{"message": "  "}`))
	rec := httptest.NewRecorder()
	handler.chat(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSearchEndpoint(t *testing.T) {
	handler := newTestHandler(&fakeProvider{
		response: &llm.ChatResponse{
			Content: "findings",
			ToolCalls: []llm.ToolCall{
				{Name: "web_search", Arguments: map[string]any{"query": "go"}},
			},
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/search",
		strings.NewReader(`{"query": "latest go release"}`))
	rec := httptest.NewRecorder()
	handler.search(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp SearchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "latest go release", resp.Query)
	assert.Equal(t, "findings", resp.Summary)
	assert.Equal(t, 1, resp.SourcesCount)
}

func TestSearchEndpointMirrorsAgentFailure(t *testing.T) {
	handler := newTestHandler(&fakeProvider{err: errors.New("runtime unreachable")})

	req := httptest.NewRequest(http.MethodPost, "/api/search",
		strings.NewReader(`{"query": "anything"}`))
	rec := httptest.NewRecorder()
	handler.search(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp SearchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Empty(t, resp.Summary)
	assert.Zero(t, resp.SourcesCount)
}

func TestCapabilitiesEndpoint(t *testing.T) {
	handler := newTestHandler(&fakeProvider{})

	req := httptest.NewRequest(http.MethodGet, "/api/agents/capabilities", nil)
	rec := httptest.NewRecorder()
	handler.capabilities(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp CapabilitiesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Contains(t, resp.Capabilities, TypeChat)
	assert.Contains(t, resp.Capabilities, TypeSearch)
}
