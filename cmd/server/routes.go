package main

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/pressbox-io/pressbox/internal/agents"
	"github.com/pressbox-io/pressbox/internal/articles"
	"github.com/pressbox-io/pressbox/internal/assistant"
	"github.com/pressbox-io/pressbox/internal/auth"
	"github.com/pressbox-io/pressbox/internal/categories"
	"github.com/pressbox-io/pressbox/internal/config"
	"github.com/pressbox-io/pressbox/internal/middleware"
	"github.com/pressbox-io/pressbox/internal/routes"
	"github.com/pressbox-io/pressbox/internal/status"
	"github.com/pressbox-io/pressbox/internal/uploads"
	"github.com/pressbox-io/pressbox/pkg/handlers"
)

func buildRoutes(cfg *config.Config, d *domain, db *sql.DB, logger *slog.Logger) http.Handler {
	system := routes.New(logger)

	system.RegisterRoute(routes.Route{
		Method:  http.MethodGet,
		Pattern: "/healthz",
		Handler: func(w http.ResponseWriter, r *http.Request) {
			handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		},
	})

	system.RegisterRoute(routes.Route{
		Method:  http.MethodGet,
		Pattern: "/readyz",
		Handler: func(w http.ResponseWriter, r *http.Request) {
			if err := db.PingContext(r.Context()); err != nil {
				handlers.RespondError(w, logger, http.StatusServiceUnavailable, err)
				return
			}
			handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "ready"})
		},
	})

	system.RegisterGroup(status.NewHandler(d.status, logger).Routes())
	system.RegisterGroup(categories.NewHandler(d.categories, logger).Routes())
	system.RegisterGroup(articles.NewHandler(d.articles, cfg.Pagination, logger).Routes())
	system.RegisterGroup(agents.NewHandler(d.registry, logger).Routes())
	bearer := middleware.RequireBearer(d.auth, logger)
	system.RegisterGroup(assistant.NewHandler(d.resolver, logger).Routes().With(bearer))
	system.RegisterGroup(auth.NewHandler(d.auth, logger).Routes())
	system.RegisterGroup(uploads.NewHandler(&cfg.Uploads, logger).Routes())

	return system.Build()
}
