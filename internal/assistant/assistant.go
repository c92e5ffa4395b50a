// Package assistant resolves free-text administrator messages into actions:
// category creation, category listing, or general conversation. Classification
// is deterministic; extraction of action parameters is delegated to the chat
// agent with a structured-then-plain fallback.
package assistant

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/pressbox-io/pressbox/internal/agents"
	"github.com/pressbox-io/pressbox/internal/categories"
)

// AgentSource supplies cached agent instances by type.
type AgentSource interface {
	GetOrCreate(agentType string) (agents.Agent, error)
}

// Request is an inbound administrator message. The conversation history is
// accepted for transport compatibility but does not influence resolution.
type Request struct {
	Message             string           `json:"message"`
	ConversationHistory []map[string]any `json:"conversation_history,omitempty"`
}

// Response is the resolver outcome. Failed extractions and naming conflicts
// are reported here as non-success outcomes, never as Go errors.
type Response struct {
	Success      bool           `json:"success"`
	Response     string         `json:"response"`
	ActionTaken  string         `json:"action_taken,omitempty"`
	ActionResult map[string]any `json:"action_result,omitempty"`
	Error        string         `json:"error,omitempty"`
}

// Resolver classifies administrator messages and dispatches the resulting
// action against the category store.
type Resolver struct {
	agents     AgentSource
	categories categories.System
	logger     *slog.Logger
}

func NewResolver(agents AgentSource, categories categories.System, logger *slog.Logger) *Resolver {
	return &Resolver{
		agents:     agents,
		categories: categories,
		logger:     logger.With("system", "assistant"),
	}
}

// Respond resolves a message to a well-formed Response. Only store failures
// surface as Go errors; agent and extraction failures degrade to non-success
// responses so the admin always gets an explanation.
func (r *Resolver) Respond(ctx context.Context, req Request) (*Response, error) {
	switch Classify(req.Message) {
	case IntentCreateCategory:
		return r.createCategory(ctx, req.Message)
	case IntentListCategories:
		return r.listCategories(ctx)
	default:
		return r.general(ctx, req.Message)
	}
}

func (r *Resolver) createCategory(ctx context.Context, message string) (*Response, error) {
	agent, err := r.agents.GetOrCreate(agents.TypeChat)
	if err != nil {
		return apologize(err), nil
	}

	name, description, ok := r.extract(ctx, agent, message)
	if !ok {
		return &Response{
			Success: false,
			Response: "I couldn't understand the category name. Could you please rephrase? " +
				"For example: 'Create a category called Technology'",
			Error: "Could not parse category name",
		}, nil
	}

	slug := categories.Slugify(name)
	existing, err := r.categories.FindBySlug(ctx, slug)
	if err != nil && !errors.Is(err, categories.ErrNotFound) {
		return nil, fmt.Errorf("check category slug: %w", err)
	}
	if existing != nil {
		return alreadyExists(name), nil
	}

	category, err := r.categories.Create(ctx, categories.CreateCommand{
		Name:        name,
		Description: description,
	})
	if err != nil {
		// The slug unique index closes the window between the existence
		// check and the insert.
		if errors.Is(err, categories.ErrDuplicate) {
			return alreadyExists(name), nil
		}
		return nil, fmt.Errorf("create category: %w", err)
	}

	r.logger.Info("assistant created category", "slug", category.Slug)

	text := fmt.Sprintf("Great! I've created the category '%s' for you.", category.Name)
	if category.Description != "" {
		text += fmt.Sprintf(" Description: %s", category.Description)
	}

	return &Response{
		Success:      true,
		Response:     text,
		ActionTaken:  "create_category",
		ActionResult: map[string]any{"category": category},
	}, nil
}

// extract runs the two-stage extraction pipeline: a structured JSON attempt,
// then a plain-text fallback asking only for the bare name. It reports false
// only after both stages fail.
func (r *Resolver) extract(ctx context.Context, agent agents.Agent, message string) (name, description string, ok bool) {
	structured := agent.Execute(ctx, fmt.Sprintf(extractionPrompt, message), false)
	if structured.Success {
		if parsed, ok := parseExtraction(structured.Content); ok {
			return parsed.Name, parsed.Description, true
		}
		r.logger.Warn("structured extraction unparseable, retrying plain")
	}

	plain := agent.Execute(ctx, fmt.Sprintf(simpleExtractionPrompt, message), false)
	if !plain.Success {
		return "", "", false
	}

	name = cleanPlainName(plain.Content)
	if name == "" {
		return "", "", false
	}

	return name, "", true
}

func (r *Resolver) listCategories(ctx context.Context) (*Response, error) {
	list, err := r.categories.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	if len(list) == 0 {
		return &Response{
			Success:      true,
			Response:     "You don't have any categories yet. Would you like me to create one?",
			ActionTaken:  "list_categories",
			ActionResult: map[string]any{"categories": []categories.Category{}, "count": 0},
		}, nil
	}

	names := make([]string, len(list))
	for i, category := range list {
		names[i] = "• " + category.Name
	}

	return &Response{
		Success:      true,
		Response:     "Here are your categories:\n" + strings.Join(names, "\n"),
		ActionTaken:  "list_categories",
		ActionResult: map[string]any{"count": len(list)},
	}, nil
}

func (r *Resolver) general(ctx context.Context, message string) (*Response, error) {
	agent, err := r.agents.GetOrCreate(agents.TypeChat)
	if err != nil {
		return apologize(err), nil
	}

	result := agent.Execute(ctx, fmt.Sprintf(generalPrompt, message), false)

	return &Response{
		Success:  result.Success,
		Response: result.Content,
		Error:    result.Error,
	}, nil
}

func alreadyExists(name string) *Response {
	return &Response{
		Success:  false,
		Response: fmt.Sprintf("A category called '%s' already exists. Please choose a different name.", name),
		Error:    "Category already exists",
	}
}

func apologize(err error) *Response {
	return &Response{
		Success:  false,
		Response: "Sorry, I encountered an error. Please try again.",
		Error:    err.Error(),
	}
}
