package assistant

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

type Handler struct {
	resolver *Resolver
	logger   *slog.Logger
}

func NewHandler(resolver *Resolver, logger *slog.Logger) *Handler {
	return &Handler{
		resolver: resolver,
		logger:   logger.With("handler", "assistant"),
	}
}

func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/api/admin/assistant",
		Description: "Natural-language admin assistant",
		Routes: []routes.Route{
			{Method: http.MethodPost, Pattern: "/chat", Handler: h.chat},
		},
	}
}

func (h *Handler) chat(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}

	if strings.TrimSpace(req.Message) == "" {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, errors.New("message is required"))
		return
	}

	// Resolver errors are store failures; everything else comes back as a
	// well-formed non-success Response.
	response, err := h.resolver.Respond(r.Context(), req)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, response)
}
