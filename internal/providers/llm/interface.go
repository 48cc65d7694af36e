package llm

import (
    "context"
)

// Client is the minimal interface the planner needs.
// Any provider implementation should satisfy this.
//
// GeneratePlan sends a system instruction plus a user prompt and returns the
// model's raw text output. The plan response schema is fixed per client at
// construction time, not passed per call.
type Client interface {
    GeneratePlan(ctx context.Context, system, prompt string) (string, error)
    Close() error
}
