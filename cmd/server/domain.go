package main

import (
	"database/sql"
	"log/slog"

	"github.com/pressbox-io/pressbox/internal/agents"
	"github.com/pressbox-io/pressbox/internal/articles"
	"github.com/pressbox-io/pressbox/internal/assistant"
	"github.com/pressbox-io/pressbox/internal/auth"
	"github.com/pressbox-io/pressbox/internal/categories"
	"github.com/pressbox-io/pressbox/internal/config"
	"github.com/pressbox-io/pressbox/internal/llm"
	"github.com/pressbox-io/pressbox/internal/status"
)

// domain wires the domain systems to their shared dependencies.
type domain struct {
	status     status.System
	categories categories.System
	articles   articles.System
	registry   *agents.Registry
	resolver   *assistant.Resolver
	auth       *auth.Service
}

func buildDomain(cfg *config.Config, db *sql.DB, logger *slog.Logger) *domain {
	provider := llm.NewClient(&cfg.LLM, logger)
	registry := agents.NewRegistry(provider, &cfg.LLM, logger)
	summarizer := assistant.NewSummarizer(registry, logger)
	categorySystem := categories.NewRepository(db, logger)

	return &domain{
		status:     status.NewRepository(db, logger),
		categories: categorySystem,
		articles:   articles.NewRepository(db, summarizer, logger),
		registry:   registry,
		resolver:   assistant.NewResolver(registry, categorySystem, logger),
		auth:       auth.NewService(&cfg.Auth, logger),
	}
}
