package categories

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
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
		logger: logger.With("handler", "categories"),
	}
}

func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/api/categories",
		Description: "Article category management",
		Routes: []routes.Route{
			{Method: http.MethodGet, Pattern: "", Handler: h.list},
			{Method: http.MethodPost, Pattern: "", Handler: h.create},
			{Method: http.MethodGet, Pattern: "/{id}", Handler: h.find},
			{Method: http.MethodDelete, Pattern: "/{id}", Handler: h.delete},
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
		result = []Category{}
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var cmd CreateCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}

	category, err := h.system.Create(r.Context(), cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, category)
}

func (h *Handler) find(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, fmt.Errorf("invalid category id: %w", err))
		return
	}

	category, err := h.system.Find(r.Context(), id)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, category)
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, fmt.Errorf("invalid category id: %w", err))
		return
	}

	if err := h.system.Delete(r.Context(), id); err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
