package planner

import (
    "context"
    "errors"
    "strings"
    "testing"

    "github.com/example/task-planner/internal/providers/llm"
)

const goodPlanJSON = `{"goal_title":"Launch Product","total_estimated_days":14,"tasks":[{"task_id":1,"name":"Plan","estimated_days":2,"suggested_deadline":"Day 2","dependencies":[]}]}`

// recordingClient captures the prompts the planner sends.
type recordingClient struct {
    system   string
    prompt   string
    response string
    err      error
}

func (c *recordingClient) GeneratePlan(ctx context.Context, system, prompt string) (string, error) {
    c.system = system
    c.prompt = prompt
    if c.err != nil {
        return "", c.err
    }
    return c.response, nil
}

func (c *recordingClient) Close() error { return nil }

func withClient(c llm.Client) *Planner {
    return &Planner{NewClient: func(ctx context.Context) (llm.Client, error) { return c, nil }}
}

func wantKind(t *testing.T, err error, kind Kind) *Error {
    t.Helper()
    if err == nil {
        t.Fatalf("GeneratePlan() error = nil, want kind %s", kind)
    }
    var perr *Error
    if !errors.As(err, &perr) {
        t.Fatalf("GeneratePlan() error = %T, want *planner.Error", err)
    }
    if perr.Kind != kind {
        t.Fatalf("error kind = %s, want %s", perr.Kind, kind)
    }
    return perr
}

func TestGeneratePlan_Success(t *testing.T) {
    c := &recordingClient{response: goodPlanJSON}
    plan, err := withClient(c).GeneratePlan(context.Background(), "Launch a product in 2 weeks")
    if err != nil {
        t.Fatalf("GeneratePlan() error = %v", err)
    }
    if plan.GoalTitle != "Launch Product" || plan.TotalEstimatedDays != 14 || len(plan.Tasks) != 1 {
        t.Errorf("plan = %+v, want mocked structure", plan)
    }
}

func TestGeneratePlan_PromptEmbedsGoal(t *testing.T) {
    c := &recordingClient{response: goodPlanJSON}
    if _, err := withClient(c).GeneratePlan(context.Background(), "Launch a product in 2 weeks"); err != nil {
        t.Fatalf("GeneratePlan() error = %v", err)
    }
    if !strings.Contains(c.prompt, "'Launch a product in 2 weeks'") {
        t.Errorf("user prompt %q does not embed the goal", c.prompt)
    }
    if !strings.Contains(c.system, "expert project manager") {
        t.Errorf("system instruction %q lost its role framing", c.system)
    }
}

func TestGeneratePlan_FencedOutput(t *testing.T) {
    c := &recordingClient{response: "```json\n" + goodPlanJSON + "\n```"}
    plan, err := withClient(c).GeneratePlan(context.Background(), "goal")
    if err != nil {
        t.Fatalf("GeneratePlan() error = %v", err)
    }
    if plan.GoalTitle != "Launch Product" {
        t.Errorf("GoalTitle = %q, want %q", plan.GoalTitle, "Launch Product")
    }
}

func TestGeneratePlan_CredentialMissing(t *testing.T) {
    p := &Planner{NewClient: func(ctx context.Context) (llm.Client, error) {
        return nil, llm.ErrMissingAPIKey
    }}
    _, err := p.GeneratePlan(context.Background(), "goal")
    perr := wantKind(t, err, KindCredentialMissing)
    if !strings.Contains(perr.Detail(), "not configured") {
        t.Errorf("Detail() = %q, want mention of configuration", perr.Detail())
    }
}

func TestGeneratePlan_NetworkFailure(t *testing.T) {
    c := &recordingClient{err: errors.New("dial tcp: connection refused")}
    _, err := withClient(c).GeneratePlan(context.Background(), "goal")
    wantKind(t, err, KindNetworkFailure)
}

func TestGeneratePlan_MalformedOutput(t *testing.T) {
    c := &recordingClient{response: "here is your plan!"}
    _, err := withClient(c).GeneratePlan(context.Background(), "goal")
    wantKind(t, err, KindMalformedOutput)
}

func TestGeneratePlan_SchemaViolation(t *testing.T) {
    c := &recordingClient{response: `{"goal_title":"g","total_estimated_days":1}`}
    _, err := withClient(c).GeneratePlan(context.Background(), "goal")
    wantKind(t, err, KindSchemaViolation)
}

func TestGeneratePlan_MockClient(t *testing.T) {
    plan, err := withClient(&llm.MockClient{}).GeneratePlan(context.Background(), "goal")
    if err != nil {
        t.Fatalf("GeneratePlan() error = %v", err)
    }
    if len(plan.Tasks) == 0 {
        t.Error("mock plan has no tasks")
    }
}

func TestNormalizeJSONText(t *testing.T) {
    cases := []struct {
        name string
        in   string
        want string
    }{
        {"plain", `{"a":1}`, `{"a":1}`},
        {"fenced", "```json\n{\"a\":1}\n```", `{"a":1}`},
        {"fence no hint", "```\n{\"a\":1}\n```", `{"a":1}`},
        {"prose prefix", `Sure: {"a":1} done`, `{"a":1}`},
        {"nested braces", `x {"a":{"b":2}} y`, `{"a":{"b":2}}`},
        {"whitespace", "  {\"a\":1}\n", `{"a":1}`},
    }
    for _, tc := range cases {
        t.Run(tc.name, func(t *testing.T) {
            if got := normalizeJSONText(tc.in); got != tc.want {
                t.Errorf("normalizeJSONText(%q) = %q, want %q", tc.in, got, tc.want)
            }
        })
    }
}
