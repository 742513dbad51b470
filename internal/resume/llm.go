package resume

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"
)

// generationConfig steers the model toward deterministic JSON output.
var generationConfig = map[string]any{
	"temperature":      0.2,
	"topK":             40,
	"topP":             0.95,
	"maxOutputTokens":  8192,
	"responseMimeType": "application/json",
}

type llmPart struct {
	Text       string         `json:"text,omitempty"`
	InlineData *llmInlineData `json:"inline_data,omitempty"`
}

type llmInlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type llmRequest struct {
	Contents []struct {
		Parts []llmPart `json:"parts"`
	} `json:"contents"`
	GenerationConfig map[string]any `json:"generationConfig"`
}

type llmResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// LLMClient calls a Gemini-style generateContent endpoint.
type LLMClient struct {
	apiKey     string
	model      string
	endpoint   string
	httpClient *http.Client
}

// NewLLMClient creates a client for the given endpoint and model.
func NewLLMClient(apiKey, model, endpoint string) *LLMClient {
	return &LLMClient{
		apiKey:   apiKey,
		model:    model,
		endpoint: strings.TrimRight(endpoint, "/"),
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// GenerateFromPDF sends the prompt together with the PDF bytes inline.
func (c *LLMClient) GenerateFromPDF(ctx context.Context, prompt string, pdf []byte) (string, error) {
	return c.generate(ctx, []llmPart{
		{Text: prompt},
		{InlineData: &llmInlineData{
			MimeType: "application/pdf",
			Data:     base64.StdEncoding.EncodeToString(pdf),
		}},
	})
}

// GenerateFromText sends the prompt together with pre-extracted resume text.
func (c *LLMClient) GenerateFromText(ctx context.Context, prompt, text string) (string, error) {
	return c.generate(ctx, []llmPart{
		{Text: prompt},
		{Text: "Resume Text:\n" + text},
	})
}

func (c *LLMClient) generate(ctx context.Context, parts []llmPart) (string, error) {
	var reqBody llmRequest
	reqBody.Contents = append(reqBody.Contents, struct {
		Parts []llmPart `json:"parts"`
	}{Parts: parts})
	reqBody.GenerationConfig = generationConfig

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.endpoint, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("call model: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("model returned status %d", resp.StatusCode)
	}

	var out llmResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("model returned no candidates")
	}

	var sb strings.Builder
	for _, p := range out.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	return sb.String(), nil
}

var jsonFencePattern = regexp.MustCompile("```json\\n?|\\n?```")

// extractJSON strips markdown code fences the model sometimes wraps around
// its JSON output.
func extractJSON(s string) string {
	return strings.TrimSpace(jsonFencePattern.ReplaceAllString(s, ""))
}
