// resume/client.go

package resume

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

////////////////////////////////////////////////////////////////////////

// ErrNoOutput is returned when the model responds without any message content.
var ErrNoOutput = errors.New("no output from model")

// LLMClient defines an interface for making model calls, so tests can inject
// a mock instead of hitting the hosted endpoint.
type LLMClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

////////////////////////////////////////////////////////////////////////

// GroqClient calls an OpenAI-compatible chat-completions endpoint.
type GroqClient struct {
	apiURL string
	apiKey string
	model  string
	client *http.Client
}

// NewGroqClient creates a client for the given endpoint, key and model id.
func NewGroqClient(apiURL, apiKey, model string, client *http.Client) *GroqClient {
	return &GroqClient{
		apiURL: apiURL,
		apiKey: apiKey,
		model:  model,
		client: client,
	}
}

////////////////////////////////////////////////////////////////////////

// chatCompletionResponse maps only the fields we need from the API response.
type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Complete sends one synchronous chat-completion request and returns the raw
// text of the first choice. The model endpoint is rate-limited and unreliable
// in practice; callers bound the call with their request context.
func (g *GroqClient) Complete(ctx context.Context, prompt string) (string, error) {
	requestBody := map[string]any{
		"model": g.model,
		"messages": []map[string]string{
			{"role": "system", "content": "You are a helpful resume parser."},
			{"role": "user", "content": prompt},
		},
	}
	bodyBytes, err := json.Marshal(requestBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.apiURL, bytes.NewBuffer(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("failed to create http request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.apiKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("http request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("model API returned non-200 status: %s", resp.Status)
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	var apiResp chatCompletionResponse
	if err := json.Unmarshal(respBody, &apiResp); err != nil {
		return "", fmt.Errorf("failed to unmarshal api response: %w", err)
	}

	if len(apiResp.Choices) == 0 || apiResp.Choices[0].Message.Content == "" {
		return "", ErrNoOutput
	}

	return apiResp.Choices[0].Message.Content, nil
}
