package llm

import (
    "context"
    "errors"
    "os"
    "strings"
)

// ErrMissingAPIKey is returned before any network call when no Gemini
// credential is configured. Callers surface it as a server configuration
// error, never as a silent mock fallback.
var ErrMissingAPIKey = errors.New("GEMINI_API_KEY not configured")

// NewFromEnv returns a Gemini-backed Client built from environment variables:
// - GEMINI_API_KEY (or GOOGLE_API_KEY) — required credential
// - LLM_MODEL — optional model override, default gemini-2.5-flash
// - GEMINI_API_URL — optional endpoint base; when set, the raw HTTP client
//   is used instead of the SDK so the endpoint can be pointed elsewhere.
// A client is constructed per request; callers must Close it.
func NewFromEnv(ctx context.Context) (Client, error) {
    key := strings.TrimSpace(os.Getenv("GEMINI_API_KEY"))
    if key == "" {
        key = strings.TrimSpace(os.Getenv("GOOGLE_API_KEY"))
    }
    if key == "" {
        return nil, ErrMissingAPIKey
    }
    model := getModelWithDefault("LLM_MODEL", "gemini-2.5-flash")
    if base := strings.TrimSpace(os.Getenv("GEMINI_API_URL")); base != "" {
        return &GeminiHTTPClient{APIKey: key, Model: model, BaseURL: strings.TrimRight(base, "/")}, nil
    }
    return NewGeminiClient(ctx, key, model)
}

func getModelWithDefault(envKey, def string) string {
    if v := strings.TrimSpace(os.Getenv(envKey)); v != "" {
        return v
    }
    return def
}
