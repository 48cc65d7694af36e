package llm

import (
    "bytes"
    "context"
    "encoding/json"
    "errors"
    "fmt"
    "net/http"
    "net/url"
    "os"
    "time"
)

// GeminiHTTPClient talks to the generateContent REST endpoint directly. It is
// selected when GEMINI_API_URL is set, which lets tests and local proxies
// stand in for the real service. Same request shape as the SDK client:
// system instruction, JSON MIME type, plan response schema.
type GeminiHTTPClient struct {
    APIKey  string
    Model   string
    BaseURL string
}

func (c *GeminiHTTPClient) GeneratePlan(ctx context.Context, system, prompt string) (string, error) {
    base := c.BaseURL
    if base == "" {
        base = "https://generativelanguage.googleapis.com/v1beta"
    }
    endpoint := fmt.Sprintf("%s/models/%s:generateContent?key=%s", base, url.PathEscape(c.Model), url.QueryEscape(c.APIKey))
    body := map[string]any{
        "contents": []map[string]any{{
            "role":  "user",
            "parts": []map[string]string{{"text": prompt}},
        }},
        "generationConfig": map[string]any{
            "response_mime_type": "application/json",
            "response_schema":    planSchemaJSON,
        },
    }
    if system != "" {
        body["systemInstruction"] = map[string]any{
            "parts": []map[string]string{{"text": system}},
        }
    }
    b, _ := json.Marshal(body)
    req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(b))
    if err != nil {
        return "", err
    }
    req.Header.Set("content-type", "application/json")
    httpClient := &http.Client{Timeout: clientTimeout()}
    res, err := httpClient.Do(req)
    if err != nil {
        return "", err
    }
    defer res.Body.Close()
    if res.StatusCode < 200 || res.StatusCode >= 300 {
        var eresp map[string]any
        _ = json.NewDecoder(res.Body).Decode(&eresp)
        return "", fmt.Errorf("gemini status %d: %v", res.StatusCode, eresp)
    }
    var out struct {
        Candidates []struct {
            Content struct {
                Parts []struct {
                    Text string `json:"text"`
                } `json:"parts"`
            } `json:"content"`
        } `json:"candidates"`
    }
    if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
        return "", err
    }
    if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
        return "", errors.New("no candidates")
    }
    return out.Candidates[0].Content.Parts[0].Text, nil
}

func (c *GeminiHTTPClient) Close() error { return nil }

func clientTimeout() time.Duration {
    if v := os.Getenv("LLM_HTTP_TIMEOUT_MS"); v != "" {
        if ms, err := time.ParseDuration(v + "ms"); err == nil {
            return ms
        }
    }
    return 45 * time.Second
}
