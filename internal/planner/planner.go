package planner

import (
    "context"
    "encoding/json"
    "errors"
    "fmt"
    "log"
    "strings"

    "github.com/example/task-planner/internal/models"
    "github.com/example/task-planner/internal/providers/llm"
)

const systemInstruction = "You are an expert project manager. Your task is to break down a user's high-level goal " +
    "into a series of concrete, actionable tasks. You must provide a plan that includes " +
    "suggested deadlines and logical dependencies. All output must strictly follow the " +
    "provided JSON Schema."

func buildUserPrompt(goal string) string {
    return fmt.Sprintf("Break down this goal into actionable tasks: '%s'. "+
        "The total timeline implied by the goal is the constraint for the total_estimated_days.", goal)
}

// Planner turns a free-text goal into a validated TaskPlan via one blocking
// model call. NewClient is called per request so no client handle is shared
// between requests.
type Planner struct {
    NewClient func(ctx context.Context) (llm.Client, error)
}

func New() *Planner {
    return &Planner{NewClient: llm.NewFromEnv}
}

func (p *Planner) GeneratePlan(ctx context.Context, goal string) (*models.TaskPlan, error) {
    client, err := p.NewClient(ctx)
    if err != nil {
        log.Printf("planner: client init failed: %v", err)
        if errors.Is(err, llm.ErrMissingAPIKey) {
            return nil, &Error{Kind: KindCredentialMissing, Err: err}
        }
        return nil, &Error{Kind: KindNetworkFailure, Err: err}
    }
    defer client.Close()

    raw, err := client.GeneratePlan(ctx, systemInstruction, buildUserPrompt(goal))
    if err != nil {
        log.Printf("planner: generate failed: %v", err)
        return nil, &Error{Kind: KindNetworkFailure, Err: err}
    }

    plan, err := models.ParseTaskPlan([]byte(normalizeJSONText(raw)))
    if err != nil {
        log.Printf("planner: invalid model output: %v raw=%.200q", err, raw)
        var syn *json.SyntaxError
        if errors.As(err, &syn) {
            return nil, &Error{Kind: KindMalformedOutput, Err: err}
        }
        return nil, &Error{Kind: KindSchemaViolation, Err: err}
    }
    return plan, nil
}

// normalizeJSONText strips code fences and extracts the first top-level JSON
// object. The response schema constrains the model to JSON, but models still
// occasionally wrap output in ```json fences or prose.
func normalizeJSONText(s string) string {
    t := strings.TrimSpace(s)
    if strings.HasPrefix(t, "```") {
        t = strings.TrimPrefix(t, "```")
        // drop possible language hint, e.g., json
        if idx := strings.IndexByte(t, '\n'); idx != -1 {
            t = t[idx+1:]
        }
        if j := strings.LastIndex(t, "```"); j != -1 {
            t = t[:j]
        }
        t = strings.TrimSpace(t)
    }
    if !strings.HasPrefix(t, "{") {
        if obj := extractJSONObject(t); obj != "" {
            return obj
        }
    }
    return t
}

func extractJSONObject(s string) string {
    // crude extractor for the first top-level JSON object in a string
    start := strings.Index(s, "{")
    if start == -1 {
        return ""
    }
    depth := 0
    for i := start; i < len(s); i++ {
        if s[i] == '{' {
            depth++
        }
        if s[i] == '}' {
            depth--
            if depth == 0 {
                return s[start : i+1]
            }
        }
    }
    return ""
}
