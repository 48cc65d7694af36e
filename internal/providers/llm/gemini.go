package llm

import (
    "context"
    "errors"

    genai "github.com/google/generative-ai-go/genai"
    "google.golang.org/api/option"
)

// GeminiClient wraps the official SDK. The plan response schema and JSON MIME
// type are attached to the model, so the API rejects free-form text output.
type GeminiClient struct {
    client *genai.Client
    model  string
}

func NewGeminiClient(ctx context.Context, apiKey, model string) (*GeminiClient, error) {
    c, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
    if err != nil {
        return nil, err
    }
    return &GeminiClient{client: c, model: model}, nil
}

func (c *GeminiClient) GeneratePlan(ctx context.Context, system, prompt string) (string, error) {
    m := c.client.GenerativeModel(c.model)
    m.ResponseMIMEType = "application/json"
    m.ResponseSchema = planSchema
    if system != "" {
        m.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(system)}}
    }
    resp, err := m.GenerateContent(ctx, genai.Text(prompt))
    if err != nil {
        return "", err
    }
    txt := firstText(resp)
    if txt == "" {
        return "", errors.New("no candidates")
    }
    return txt, nil
}

func (c *GeminiClient) Close() error {
    return c.client.Close()
}

func firstText(r *genai.GenerateContentResponse) string {
    if r == nil {
        return ""
    }
    for _, c := range r.Candidates {
        if c.Content == nil {
            continue
        }
        for _, part := range c.Content.Parts {
            if t, ok := part.(genai.Text); ok {
                return string(t)
            }
        }
    }
    return ""
}
