package planner

import (
    "fmt"
)

// Kind tags every way plan generation can fail. All kinds surface to the
// caller as the same HTTP status; only the detail text differs.
type Kind string

const (
    KindCredentialMissing Kind = "credential_missing"
    KindNetworkFailure    Kind = "network_failure"
    KindMalformedOutput   Kind = "malformed_output"
    KindSchemaViolation   Kind = "schema_violation"
)

type Error struct {
    Kind Kind
    Err  error
}

func (e *Error) Error() string {
    return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Detail is the user-facing message. The underlying error never leaks to the
// caller; each kind maps to one fixed sentence.
func (e *Error) Detail() string {
    switch e.Kind {
    case KindCredentialMissing:
        return "Server Error: GEMINI_API_KEY not configured. Check the .env file."
    case KindNetworkFailure:
        return "Error generating plan: the model API call failed."
    case KindMalformedOutput:
        return "Error generating plan: the model returned malformed JSON."
    case KindSchemaViolation:
        return "Error generating plan: the model output did not match the task plan schema."
    }
    return "Error generating plan."
}
