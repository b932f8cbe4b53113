// Package openai implements the completion client used to generate vibe card
// content. It talks to an OpenAI-compatible chat completions endpoint with a
// system/user message pair and returns the raw text of the first choice. The
// client performs no parsing of the generated text; callers interpret it.
//
// Network calls are performed using the configured http.Client allowing
// callers to substitute a test client. If HTTP is nil a client with a 30
// second timeout is created on first use.
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultBaseURL is the production endpoint prefix. Tests point BaseURL at an
// httptest server instead.
const DefaultBaseURL = "https://api.openai.com/v1"

// defaultModel is used when no model is configured.
const defaultModel = "gpt-4o-mini"

// temperature is fixed: content should vary between moods, not between
// retries of the same mood.
const temperature = 0.7

// ErrNoContent is returned when the provider answers 2xx but the response
// carries no message content.
var ErrNoContent = errors.New("completion response missing content")

// APIError reports a non-2xx response from the completion provider. The
// status code is preserved so handlers can surface auth and rate-limit
// failures verbatim.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("openai: status %d: %s", e.StatusCode, e.Message)
}

// Client calls the chat completions API. APIKey is required; Model and
// BaseURL fall back to defaults when empty.
type Client struct {
	APIKey  string
	Model   string
	BaseURL string
	HTTP    *http.Client
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Generate sends the system and user prompts to the provider and returns the
// generated text. maxTokens bounds the response length. A non-2xx status is
// returned as *APIError; a 2xx response without content is ErrNoContent.
func (c *Client) Generate(ctx context.Context, systemPrompt, userPrompt string, maxTokens int) (string, error) {
	if c.APIKey == "" {
		return "", &APIError{StatusCode: http.StatusUnauthorized, Message: "api key not configured"}
	}
	if c.HTTP == nil {
		c.HTTP = &http.Client{Timeout: 30 * time.Second}
	}
	model := c.Model
	if model == "" {
		model = defaultModel
	}
	base := c.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	body, err := json.Marshal(chatRequest{
		Model: model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		Temperature: temperature,
		MaxTokens:   maxTokens,
	})
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, base+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.APIKey)
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		msg := resp.Status
		var decoded chatResponse
		if data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16)); err == nil {
			if json.Unmarshal(data, &decoded) == nil && decoded.Error != nil {
				msg = decoded.Error.Message
			}
		}
		return "", &APIError{StatusCode: resp.StatusCode, Message: msg}
	}
	var decoded chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", err
	}
	if len(decoded.Choices) == 0 || decoded.Choices[0].Message.Content == "" {
		return "", ErrNoContent
	}
	return decoded.Choices[0].Message.Content, nil
}
