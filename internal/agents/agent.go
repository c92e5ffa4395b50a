// Package agents provides the agent registry and the chat and search agents
// backed by the language-model runtime. Agents are created lazily and reused
// for the lifetime of the process.
package agents

import "context"

// Agent type identifiers accepted by the registry.
const (
	TypeChat   = "chat"
	TypeSearch = "search"
)

// Agent executes prompts against a language model. Execute never returns a
// Go error: runtime failures are reported in the Result.
type Agent interface {
	Execute(ctx context.Context, prompt string, useTools bool) Result
	Capabilities() []string
}
