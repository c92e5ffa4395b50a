package agents

// Result is the outcome of an agent execution. Execution failures are
// reported through Success and Error rather than Go errors so callers can
// always render a response.
type Result struct {
	Success  bool           `json:"success"`
	Content  string         `json:"content"`
	Metadata map[string]any `json:"metadata,omitempty"`
	Error    string         `json:"error,omitempty"`
}

// Failure creates a failed Result from an error.
func Failure(err error) Result {
	return Result{
		Success: false,
		Error:   err.Error(),
	}
}
