package agents

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/pressbox-io/pressbox/internal/routes"
	"github.com/pressbox-io/pressbox/pkg/handlers"
)

type ChatRequest struct {
	Message   string         `json:"message"`
	AgentType string         `json:"agent_type"`
	Context   map[string]any `json:"context,omitempty"`
}

type ChatResponse struct {
	Success      bool           `json:"success"`
	Response     string         `json:"response"`
	AgentType    string         `json:"agent_type"`
	Capabilities []string       `json:"capabilities"`
	Metadata     map[string]any `json:"metadata,omitempty"`
	Error        string         `json:"error,omitempty"`
}

type SearchRequest struct {
	Query      string `json:"query"`
	MaxResults int    `json:"max_results"`
}

type SearchResponse struct {
	Success       bool           `json:"success"`
	Query         string         `json:"query"`
	Summary       string         `json:"summary"`
	SearchResults map[string]any `json:"search_results,omitempty"`
	SourcesCount  int            `json:"sources_count"`
	Error         string         `json:"error,omitempty"`
}

type CapabilitiesResponse struct {
	Success      bool                `json:"success"`
	Capabilities map[string][]string `json:"capabilities,omitempty"`
	Error        string              `json:"error,omitempty"`
}

type Handler struct {
	registry *Registry
	logger   *slog.Logger
}

func NewHandler(registry *Registry, logger *slog.Logger) *Handler {
	return &Handler{
		registry: registry,
		logger:   logger.With("handler", "agents"),
	}
}

func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/api",
		Description: "Agent execution",
		Routes: []routes.Route{
			{Method: http.MethodPost, Pattern: "/chat", Handler: h.chat},
			{Method: http.MethodPost, Pattern: "/search", Handler: h.search},
			{Method: http.MethodGet, Pattern: "/agents/capabilities", Handler: h.capabilities},
		},
	}
}

func (h *Handler) chat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}

	if strings.TrimSpace(req.Message) == "" {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, errors.New("message is required"))
		return
	}
	if req.AgentType == "" {
		req.AgentType = TypeChat
	}

	agent, err := h.registry.GetOrCreate(req.AgentType)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	// Failed executions are mirrored in the body; only unknown agent types
	// and malformed requests are transport errors.
	result := agent.Execute(r.Context(), req.Message, false)

	handlers.RespondJSON(w, http.StatusOK, ChatResponse{
		Success:      result.Success,
		Response:     result.Content,
		AgentType:    req.AgentType,
		Capabilities: agent.Capabilities(),
		Metadata:     result.Metadata,
		Error:        result.Error,
	})
}

func (h *Handler) search(w http.ResponseWriter, r *http.Request) {
	var req SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}

	if strings.TrimSpace(req.Query) == "" {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, errors.New("query is required"))
		return
	}

	agent, err := h.registry.GetOrCreate(TypeSearch)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	prompt := fmt.Sprintf(
		"Search for information about: %s. Provide a comprehensive summary with key findings.",
		req.Query,
	)
	result := agent.Execute(r.Context(), prompt, true)

	if !result.Success {
		handlers.RespondJSON(w, http.StatusOK, SearchResponse{
			Success: false,
			Query:   req.Query,
			Error:   result.Error,
		})
		return
	}

	sources := 0
	if count, ok := result.Metadata["tool_run_count"].(int); ok {
		sources = count
	}

	handlers.RespondJSON(w, http.StatusOK, SearchResponse{
		Success:       true,
		Query:         req.Query,
		Summary:       result.Content,
		SearchResults: result.Metadata,
		SourcesCount:  sources,
	})
}

func (h *Handler) capabilities(w http.ResponseWriter, r *http.Request) {
	capabilities, err := h.registry.Capabilities()
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, CapabilitiesResponse{
		Success:      true,
		Capabilities: capabilities,
	})
}
