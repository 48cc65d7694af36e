package api

import (
    "encoding/json"
    "errors"
    "net/http"
    "strings"

    "github.com/example/task-planner/internal/models"
    "github.com/example/task-planner/internal/planner"
)

const serviceName = "Smart Task Planner API"

func RegisterRoutes(mux *http.ServeMux, p *planner.Planner) {
    mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
        if r.URL.Path != "/" {
            http.NotFound(w, r)
            return
        }
        if r.Method != http.MethodGet {
            w.WriteHeader(http.StatusMethodNotAllowed)
            return
        }
        respondJSON(w, map[string]string{"status": "ok", "service": serviceName})
    })

    mux.HandleFunc("/api/v1/plan_goal", func(w http.ResponseWriter, r *http.Request) {
        if r.Method != http.MethodPost {
            w.WriteHeader(http.StatusMethodNotAllowed)
            return
        }
        var in models.GoalInput
        if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
            respondError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
            return
        }
        if strings.TrimSpace(in.GoalText) == "" {
            respondError(w, http.StatusBadRequest, "goal_text is required")
            return
        }
        plan, err := p.GeneratePlan(r.Context(), in.GoalText)
        if err != nil {
            var perr *planner.Error
            if errors.As(err, &perr) {
                respondError(w, http.StatusInternalServerError, perr.Detail())
                return
            }
            respondError(w, http.StatusInternalServerError, "Error generating plan.")
            return
        }
        respondJSON(w, plan)
    })
}

func respondJSON(w http.ResponseWriter, v any) {
    w.Header().Set("Content-Type", "application/json")
    enc := json.NewEncoder(w)
    enc.SetIndent("", "  ")
    enc.Encode(v)
}

func respondError(w http.ResponseWriter, status int, detail string) {
    w.Header().Set("Content-Type", "application/json")
    w.WriteHeader(status)
    json.NewEncoder(w).Encode(map[string]string{"detail": detail})
}
