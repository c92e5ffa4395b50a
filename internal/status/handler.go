package status

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/pressbox-io/pressbox/internal/routes"
	"github.com/pressbox-io/pressbox/pkg/handlers"
)

type Handler struct {
	system System
	logger *slog.Logger
}

func NewHandler(system System, logger *slog.Logger) *Handler {
	return &Handler{
		system: system,
		logger: logger.With("handler", "status"),
	}
}

func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/api/status",
		Description: "Client status checks",
		Routes: []routes.Route{
			{Method: http.MethodGet, Pattern: "", Handler: h.list},
			{Method: http.MethodPost, Pattern: "", Handler: h.create},
		},
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	result, err := h.system.List(r.Context())
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	if result == nil {
		result = []Check{}
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var cmd CreateCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}

	check, err := h.system.Create(r.Context(), cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, check)
}
