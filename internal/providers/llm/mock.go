package llm

import (
    "context"
)

// MockClient returns a canned schema-conforming plan. Used by tests; the
// factory never falls back to it, a missing credential is a hard error.
type MockClient struct {
    Response string
    Err      error
}

func (m *MockClient) GeneratePlan(ctx context.Context, system, prompt string) (string, error) {
    if m.Err != nil {
        return "", m.Err
    }
    if m.Response != "" {
        return m.Response, nil
    }
    return `{"goal_title":"Mock Goal","total_estimated_days":1,"tasks":[{"task_id":1,"name":"Do the thing","estimated_days":1,"suggested_deadline":"Day 1","dependencies":[]}]}`, nil
}

func (m *MockClient) Close() error { return nil }
