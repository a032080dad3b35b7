package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"resume-editor/internal/model"
	"resume-editor/pkg/ai/formatters"
)

const DefaultServiceURL = "http://ai-service:8000"

// Client calls the internal ai-service chat endpoint to rewrite one
// resume section at a time.
type Client struct {
	BaseURL         string
	HTTP            *http.Client
	DefaultLanguage string
	// Attempts bounds doPostWithRetry. Zero means 3.
	Attempts int
	Backoff  time.Duration
}

func NewClient(baseURL, language string) *Client {
	if baseURL == "" {
		baseURL = DefaultServiceURL
	}
	return &Client{
		BaseURL:         baseURL,
		HTTP:            &http.Client{Timeout: 60 * time.Second},
		DefaultLanguage: language,
		Backoff:         time.Second,
	}
}

// doPostWithRetry performs an HTTP POST to the given path with retry/backoff.
func (c *Client) doPostWithRetry(ctx context.Context, path string, body []byte) (*http.Response, error) {
	attempts := c.Attempts
	if attempts <= 0 {
		attempts = 3
	}
	var lastErr error
	for i := 0; i < attempts; i++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewReader(body))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.HTTP.Do(req)
		if err == nil {
			return resp, nil
		}
		lastErr = err
		// exponential backoff before retrying
		if i < attempts-1 {
			backoff := time.Duration(1<<i) * c.Backoff
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}
	return nil, lastErr
}

// Enhance asks the ai-service for replacement text for the section.
func (c *Client) Enhance(ctx context.Context, section model.Section, text string) (string, error) {
	f := formatters.New(section, c.DefaultLanguage)
	chatReq := map[string]interface{}{
		"agent": "auto",
		"input": f.Prompt(text),
	}
	b, err := json.Marshal(chatReq)
	if err != nil {
		return "", err
	}

	slog.Debug("ai.client: POST /v1/chat", "baseURL", c.BaseURL, "section", section)

	resp, err := c.doPostWithRetry(ctx, "/v1/chat", b)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("ai-service returned non-200 status: %d", resp.StatusCode)
	}

	var chatResp struct {
		Agent  string `json:"agent"`
		Output string `json:"output"`
	}
	if err := json.Unmarshal(respBytes, &chatResp); err != nil {
		return "", err
	}
	return formatters.Parse(chatResp.Output)
}
