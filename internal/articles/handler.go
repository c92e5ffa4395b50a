package articles

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/pressbox-io/pressbox/internal/routes"
	"github.com/pressbox-io/pressbox/pkg/handlers"
	"github.com/pressbox-io/pressbox/pkg/pagination"
)

type Handler struct {
	system  System
	pageCfg pagination.Config
	logger  *slog.Logger
}

func NewHandler(system System, pageCfg pagination.Config, logger *slog.Logger) *Handler {
	return &Handler{
		system:  system,
		pageCfg: pageCfg,
		logger:  logger.With("handler", "articles"),
	}
}

func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/api/articles",
		Description: "Article content management",
		Routes: []routes.Route{
			{Method: http.MethodGet, Pattern: "", Handler: h.list},
			{Method: http.MethodPost, Pattern: "", Handler: h.create},
			{Method: http.MethodGet, Pattern: "/{id}", Handler: h.find},
			{Method: http.MethodPut, Pattern: "/{id}", Handler: h.update},
			{Method: http.MethodDelete, Pattern: "/{id}", Handler: h.delete},
			{Method: http.MethodPost, Pattern: "/{id}/share", Handler: h.share},
		},
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	req := pagination.PageRequestFromQuery(r.URL.Query(), h.pageCfg)

	var filters Filters
	if category := r.URL.Query().Get("category"); category != "" {
		filters.Category = &category
	}
	if raw := r.URL.Query().Get("published"); raw != "" {
		published, err := strconv.ParseBool(raw)
		if err != nil {
			handlers.RespondError(w, h.logger, http.StatusBadRequest, fmt.Errorf("invalid published filter: %w", err))
			return
		}
		filters.Published = &published
	}

	result, err := h.system.List(r.Context(), req, filters)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var cmd CreateCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}

	article, err := h.system.Create(r.Context(), cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, article)
}

func (h *Handler) find(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, fmt.Errorf("invalid article id: %w", err))
		return
	}

	article, err := h.system.Find(r.Context(), id)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, article)
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, fmt.Errorf("invalid article id: %w", err))
		return
	}

	var cmd UpdateCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}

	article, err := h.system.Update(r.Context(), id, cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, article)
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, fmt.Errorf("invalid article id: %w", err))
		return
	}

	if err := h.system.Delete(r.Context(), id); err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) share(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, fmt.Errorf("invalid article id: %w", err))
		return
	}

	if err := h.system.TrackShare(r.Context(), id); err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "shared"})
}
