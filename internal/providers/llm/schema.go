package llm

import (
    genai "github.com/google/generative-ai-go/genai"
)

// Response schema for the task plan, declared once at package init. The shape
// is fixed at compile time, so there is no per-request reflection: the SDK
// client attaches planSchema, the raw HTTP client sends planSchemaJSON.

var planSchema = &genai.Schema{
    Type: genai.TypeObject,
    Properties: map[string]*genai.Schema{
        "goal_title": {
            Type:        genai.TypeString,
            Description: "The original goal, reformatted as a title.",
        },
        "total_estimated_days": {
            Type:        genai.TypeNumber,
            Description: "The sum of all estimated_days for all tasks.",
        },
        "tasks": {
            Type:        genai.TypeArray,
            Description: "The detailed, ordered list of tasks required to achieve the goal.",
            Items:       taskSchema,
        },
    },
    Required: []string{"goal_title", "total_estimated_days", "tasks"},
}

var taskSchema = &genai.Schema{
    Type: genai.TypeObject,
    Properties: map[string]*genai.Schema{
        "task_id": {
            Type:        genai.TypeInteger,
            Description: "A unique integer ID for the task.",
        },
        "name": {
            Type:        genai.TypeString,
            Description: "A clear, actionable description of the task.",
        },
        "estimated_days": {
            Type:        genai.TypeNumber,
            Description: "The estimated time to complete the task in days (e.g., 1.5).",
        },
        "suggested_deadline": {
            Type:        genai.TypeString,
            Description: "The relative deadline, e.g., 'Day 3', 'End of Week 1'.",
        },
        "dependencies": {
            Type:        genai.TypeArray,
            Description: "A list of task_ids that must be completed before this task starts. Empty if none.",
            Items:       &genai.Schema{Type: genai.TypeInteger},
        },
    },
    Required: []string{"task_id", "name", "estimated_days", "suggested_deadline", "dependencies"},
}

// planSchemaJSON is the JSON Schema equivalent of planSchema for the REST
// generationConfig payload.
var planSchemaJSON = map[string]any{
    "type": "object",
    "properties": map[string]any{
        "goal_title":           map[string]any{"type": "string"},
        "total_estimated_days": map[string]any{"type": "number"},
        "tasks": map[string]any{
            "type": "array",
            "items": map[string]any{
                "type": "object",
                "properties": map[string]any{
                    "task_id":            map[string]any{"type": "integer"},
                    "name":               map[string]any{"type": "string"},
                    "estimated_days":     map[string]any{"type": "number"},
                    "suggested_deadline": map[string]any{"type": "string"},
                    "dependencies": map[string]any{
                        "type":  "array",
                        "items": map[string]any{"type": "integer"},
                    },
                },
                "required": []string{"task_id", "name", "estimated_days", "suggested_deadline", "dependencies"},
            },
        },
    },
    "required": []string{"goal_title", "total_estimated_days", "tasks"},
}
