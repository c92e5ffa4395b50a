package assistant

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pressbox-io/pressbox/internal/agents"
	"github.com/pressbox-io/pressbox/internal/categories"
)

type fakeAgent struct {
	results []agents.Result
	prompts []string
}

func (a *fakeAgent) Execute(ctx context.Context, prompt string, useTools bool) agents.Result {
	a.prompts = append(a.prompts, prompt)
	if len(a.results) == 0 {
		return agents.Result{Success: true, Content: "ok"}
	}
	result := a.results[0]
	a.results = a.results[1:]
	return result
}

func (a *fakeAgent) Capabilities() []string {
	return []string{"chat"}
}

type fakeAgentSource struct {
	agent agents.Agent
	err   error
}

func (s *fakeAgentSource) GetOrCreate(agentType string) (agents.Agent, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.agent, nil
}

type fakeCategoryStore struct {
	items     map[string]categories.Category
	listErr   error
	createErr error
}

func newFakeStore() *fakeCategoryStore {
	return &fakeCategoryStore{items: make(map[string]categories.Category)}
}

func (s *fakeCategoryStore) Create(ctx context.Context, cmd categories.CreateCommand) (*categories.Category, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}

	slug := categories.Slugify(cmd.Name)
	if _, exists := s.items[slug]; exists {
		return nil, categories.ErrDuplicate
	}

	category := categories.Category{
		ID:          uuid.New(),
		Name:        cmd.Name,
		Slug:        slug,
		Description: cmd.Description,
		CreatedAt:   time.Now().UTC(),
	}
	s.items[slug] = category
	return &category, nil
}

func (s *fakeCategoryStore) Find(ctx context.Context, id uuid.UUID) (*categories.Category, error) {
	for _, category := range s.items {
		if category.ID == id {
			return &category, nil
		}
	}
	return nil, categories.ErrNotFound
}

func (s *fakeCategoryStore) FindBySlug(ctx context.Context, slug string) (*categories.Category, error) {
	if category, ok := s.items[slug]; ok {
		return &category, nil
	}
	return nil, categories.ErrNotFound
}

func (s *fakeCategoryStore) List(ctx context.Context) ([]categories.Category, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}

	list := make([]categories.Category, 0, len(s.items))
	for _, category := range s.items {
		list = append(list, category)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list, nil
}

func (s *fakeCategoryStore) Delete(ctx context.Context, id uuid.UUID) error {
	for slug, category := range s.items {
		if category.ID == id {
			delete(s.items, slug)
			return nil
		}
	}
	return categories.ErrNotFound
}

func newResolver(agent *fakeAgent, store *fakeCategoryStore) *Resolver {
	return NewResolver(
		&fakeAgentSource{agent: agent},
		store,
		slog.New(slog.DiscardHandler),
	)
}

func TestCreateCategoryStructuredExtraction(t *testing.T) {
	agent := &fakeAgent{results: []agents.Result{
		{Success: true, Content: `{"name": "Gadgets", "description": "Consumer electronics"}`},
	}}
	store := newFakeStore()
	resolver := newResolver(agent, store)

	resp, err := resolver.Respond(context.Background(),
		Request{Message: "please create a category called Gadgets for consumer electronics"})
	require.NoError(t, err)

	assert.True(t, resp.Success)
	assert.Equal(t, "create_category", resp.ActionTaken)
	assert.Contains(t, resp.Response, "Great! I've created the category 'Gadgets'")
	assert.Contains(t, resp.Response, "Consumer electronics")

	stored, ok := store.items["gadgets"]
	require.True(t, ok)
	assert.Equal(t, "Gadgets", stored.Name)
	assert.Equal(t, "gadgets", stored.Slug)
}

func TestCreateCategoryAlreadyExists(t *testing.T) {
	agent := &fakeAgent{results: []agents.Result{
		{Success: true, Content: `{"name": "Gadgets", "description": ""}`},
	}}
	store := newFakeStore()
	store.items["gadgets"] = categories.Category{ID: uuid.New(), Name: "Gadgets", Slug: "gadgets"}
	resolver := newResolver(agent, store)

	resp, err := resolver.Respond(context.Background(),
		Request{Message: "create a category called Gadgets"})
	require.NoError(t, err)

	assert.False(t, resp.Success)
	assert.Contains(t, resp.Response, "A category called 'Gadgets' already exists")
	assert.Equal(t, "Category already exists", resp.Error)
	assert.Len(t, store.items, 1)
}

func TestCreateCategoryDuplicateRace(t *testing.T) {
	// FindBySlug misses but the insert hits the unique index: the outcome
	// reads the same as the ordinary already-exists path.
	agent := &fakeAgent{results: []agents.Result{
		{Success: true, Content: `{"name": "Gadgets", "description": ""}`},
	}}
	store := newFakeStore()
	store.createErr = categories.ErrDuplicate
	resolver := newResolver(agent, store)

	resp, err := resolver.Respond(context.Background(),
		Request{Message: "create a category called Gadgets"})
	require.NoError(t, err)

	assert.False(t, resp.Success)
	assert.Contains(t, resp.Response, "already exists")
}

func TestCreateCategoryPlainTextFallback(t *testing.T) {
	agent := &fakeAgent{results: []agents.Result{
		{Success: true, Content: "Sure! I'd call it Gadgets."},
		{Success: true, Content: `"Gadgets"`},
	}}
	store := newFakeStore()
	resolver := newResolver(agent, store)

	resp, err := resolver.Respond(context.Background(),
		Request{Message: "create a category for gadgets"})
	require.NoError(t, err)

	assert.True(t, resp.Success)
	assert.Contains(t, store.items, "gadgets")

	require.Len(t, agent.prompts, 2)
	assert.Contains(t, agent.prompts[0], "JSON")
	assert.Contains(t, agent.prompts[1], "Extract only the category name")
}

func TestCreateCategoryTerminalFailure(t *testing.T) {
	tests := []struct {
		name   string
		second agents.Result
	}{
		{"fallback agent failure", agents.Result{Success: false, Error: "timeout"}},
		{"fallback empty content", agents.Result{Success: true, Content: "  "}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			agent := &fakeAgent{results: []agents.Result{
				{Success: true, Content: "not json"},
				tc.second,
			}}
			store := newFakeStore()
			resolver := newResolver(agent, store)

			resp, err := resolver.Respond(context.Background(),
				Request{Message: "create a category"})
			require.NoError(t, err)

			assert.False(t, resp.Success)
			assert.Contains(t, resp.Response, "rephrase")
			assert.Equal(t, "Could not parse category name", resp.Error)
			assert.Empty(t, store.items)
		})
	}
}

func TestCreateCategoryAtMostOneWrite(t *testing.T) {
	agent := &fakeAgent{results: []agents.Result{
		{Success: true, Content: `{"name": "Gadgets", "description": ""}`},
	}}
	store := newFakeStore()
	resolver := newResolver(agent, store)

	_, err := resolver.Respond(context.Background(),
		Request{Message: "create a category called Gadgets"})
	require.NoError(t, err)

	assert.Len(t, store.items, 1)
}

func TestListCategoriesEmpty(t *testing.T) {
	resolver := newResolver(&fakeAgent{}, newFakeStore())

	resp, err := resolver.Respond(context.Background(),
		Request{Message: "show me all categories"})
	require.NoError(t, err)

	assert.True(t, resp.Success)
	assert.Equal(t, "list_categories", resp.ActionTaken)
	assert.Contains(t, resp.Response, "Would you like me to create one?")
	assert.Equal(t, 0, resp.ActionResult["count"])
	assert.Empty(t, resp.ActionResult["categories"])
}

func TestListCategories(t *testing.T) {
	store := newFakeStore()
	store.items["sports"] = categories.Category{Name: "Sports", Slug: "sports"}
	store.items["tech"] = categories.Category{Name: "Tech", Slug: "tech"}
	resolver := newResolver(&fakeAgent{}, store)

	resp, err := resolver.Respond(context.Background(),
		Request{Message: "list my categories"})
	require.NoError(t, err)

	assert.True(t, resp.Success)
	assert.Contains(t, resp.Response, "Sports")
	assert.Contains(t, resp.Response, "Tech")
	assert.Equal(t, 2, resp.ActionResult["count"])
	assert.NotContains(t, resp.ActionResult, "categories")
}

func TestGeneralConversation(t *testing.T) {
	agent := &fakeAgent{results: []agents.Result{
		{Success: true, Content: "You can publish from the articles tab."},
	}}
	resolver := newResolver(agent, newFakeStore())

	resp, err := resolver.Respond(context.Background(),
		Request{Message: "how do I publish an article?"})
	require.NoError(t, err)

	assert.True(t, resp.Success)
	assert.Equal(t, "You can publish from the articles tab.", resp.Response)
	assert.Empty(t, resp.ActionTaken)

	require.Len(t, agent.prompts, 1)
	assert.Contains(t, agent.prompts[0], "how do I publish an article?")
}

func TestGeneralConversationMirrorsAgentFailure(t *testing.T) {
	agent := &fakeAgent{results: []agents.Result{
		{Success: false, Error: "runtime unreachable"},
	}}
	resolver := newResolver(agent, newFakeStore())

	resp, err := resolver.Respond(context.Background(),
		Request{Message: "hello"})
	require.NoError(t, err)

	assert.False(t, resp.Success)
	assert.Equal(t, "runtime unreachable", resp.Error)
}

func TestAgentUnavailableApologizes(t *testing.T) {
	resolver := NewResolver(
		&fakeAgentSource{err: errors.New("registry broken")},
		newFakeStore(),
		slog.New(slog.DiscardHandler),
	)

	resp, err := resolver.Respond(context.Background(),
		Request{Message: "create a category called Gadgets"})
	require.NoError(t, err)

	assert.False(t, resp.Success)
	assert.Equal(t, "Sorry, I encountered an error. Please try again.", resp.Response)
	assert.Contains(t, resp.Error, "registry broken")
}

func TestStoreFailurePropagates(t *testing.T) {
	store := newFakeStore()
	store.listErr = errors.New("connection refused")
	resolver := newResolver(&fakeAgent{}, store)

	_, err := resolver.Respond(context.Background(),
		Request{Message: "show me all categories"})
	assert.Error(t, err)
}
