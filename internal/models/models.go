package models

import (
    "encoding/json"
    "fmt"
)

// GoalInput is the request payload for the plan endpoint.
type GoalInput struct {
    GoalText string `json:"goal_text"`
}

// Task is a single actionable unit inside a plan.
type Task struct {
    TaskID            int     `json:"task_id"`
    Name              string  `json:"name"`
    EstimatedDays     float64 `json:"estimated_days"`
    SuggestedDeadline string  `json:"suggested_deadline"`
    Dependencies      []int   `json:"dependencies"`
}

// TaskPlan is the structured decomposition of a goal. Values are trusted from
// the model and only structurally validated: total_estimated_days is not
// checked against the task sum and dependencies are not cycle-checked.
type TaskPlan struct {
    GoalTitle          string  `json:"goal_title"`
    TotalEstimatedDays float64 `json:"total_estimated_days"`
    Tasks              []Task  `json:"tasks"`
}

// wire mirrors of TaskPlan/Task with pointer fields so absent keys are
// distinguishable from zero values during validation.
type wirePlan struct {
    GoalTitle          *string     `json:"goal_title"`
    TotalEstimatedDays *float64    `json:"total_estimated_days"`
    Tasks              *[]wireTask `json:"tasks"`
}

type wireTask struct {
    TaskID            *int     `json:"task_id"`
    Name              *string  `json:"name"`
    EstimatedDays     *float64 `json:"estimated_days"`
    SuggestedDeadline *string  `json:"suggested_deadline"`
    Dependencies      *[]int   `json:"dependencies"`
}

// ParseTaskPlan decodes data and checks that every required field of the plan
// and of each task is present with the right type. A *json.SyntaxError is
// returned as-is so callers can tell "not JSON" apart from "JSON of the
// wrong shape".
func ParseTaskPlan(data []byte) (*TaskPlan, error) {
    var w wirePlan
    if err := json.Unmarshal(data, &w); err != nil {
        return nil, err
    }
    if w.GoalTitle == nil {
        return nil, fmt.Errorf("task plan: missing required field %q", "goal_title")
    }
    if w.TotalEstimatedDays == nil {
        return nil, fmt.Errorf("task plan: missing required field %q", "total_estimated_days")
    }
    if w.Tasks == nil {
        return nil, fmt.Errorf("task plan: missing required field %q", "tasks")
    }
    plan := &TaskPlan{
        GoalTitle:          *w.GoalTitle,
        TotalEstimatedDays: *w.TotalEstimatedDays,
        Tasks:              make([]Task, 0, len(*w.Tasks)),
    }
    for i, t := range *w.Tasks {
        task, err := t.validate()
        if err != nil {
            return nil, fmt.Errorf("task plan: tasks[%d]: %w", i, err)
        }
        plan.Tasks = append(plan.Tasks, task)
    }
    return plan, nil
}

func (t wireTask) validate() (Task, error) {
    if t.TaskID == nil {
        return Task{}, fmt.Errorf("missing required field %q", "task_id")
    }
    if t.Name == nil {
        return Task{}, fmt.Errorf("missing required field %q", "name")
    }
    if t.EstimatedDays == nil {
        return Task{}, fmt.Errorf("missing required field %q", "estimated_days")
    }
    if t.SuggestedDeadline == nil {
        return Task{}, fmt.Errorf("missing required field %q", "suggested_deadline")
    }
    if t.Dependencies == nil {
        return Task{}, fmt.Errorf("missing required field %q", "dependencies")
    }
    if *t.EstimatedDays < 0 {
        return Task{}, fmt.Errorf("estimated_days must be >= 0, got %v", *t.EstimatedDays)
    }
    return Task{
        TaskID:            *t.TaskID,
        Name:              *t.Name,
        EstimatedDays:     *t.EstimatedDays,
        SuggestedDeadline: *t.SuggestedDeadline,
        Dependencies:      *t.Dependencies,
    }, nil
}
