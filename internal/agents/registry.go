package agents

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/pressbox-io/pressbox/internal/config"
	"github.com/pressbox-io/pressbox/internal/llm"
)

// Registry creates agents on first use and caches them for the lifetime of
// the process. One instance exists per agent type.
type Registry struct {
	provider llm.Provider
	cfg      *config.LLMConfig
	logger   *slog.Logger

	mu     sync.Mutex
	agents map[string]Agent
}

func NewRegistry(provider llm.Provider, cfg *config.LLMConfig, logger *slog.Logger) *Registry {
	return &Registry{
		provider: provider,
		cfg:      cfg,
		logger:   logger.With("system", "agents"),
		agents:   make(map[string]Agent),
	}
}

// GetOrCreate returns the cached agent for the given type, constructing it on
// first use. Unknown types return ErrUnknownType.
func (r *Registry) GetOrCreate(agentType string) (Agent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if agent, ok := r.agents[agentType]; ok {
		return agent, nil
	}

	var agent Agent
	switch agentType {
	case TypeChat:
		agent = NewChatAgent(r.provider, r.cfg, r.logger)
	case TypeSearch:
		agent = NewSearchAgent(r.provider, r.cfg, r.logger)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownType, agentType)
	}

	r.logger.Info("agent initialized", "type", agentType)
	r.agents[agentType] = agent
	return agent, nil
}

// Capabilities reports the capabilities of every known agent type.
func (r *Registry) Capabilities() (map[string][]string, error) {
	capabilities := make(map[string][]string)
	for _, agentType := range []string{TypeChat, TypeSearch} {
		agent, err := r.GetOrCreate(agentType)
		if err != nil {
			return nil, err
		}
		capabilities[agentType] = agent.Capabilities()
	}
	return capabilities, nil
}
