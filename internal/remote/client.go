// Package remote implements the hosted classifier tier: a structured-output
// chat completion bounded by a hard timeout. Every failure mode (timeout,
// non-2xx, malformed payload) surfaces as an error for the router to swallow
// by falling through to the heuristic tier.
package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"anota/internal/common"
	"anota/internal/model"
)

// DefaultTimeout bounds the remote call; the user is waiting synchronously
// for a chat reply, so there are no retries.
const DefaultTimeout = 10 * time.Second

const defaultBaseURL = "https://api.openai.com/v1/chat/completions"

// systemInstruction is the fixed contract sent with every request. The
// response must be exactly one JSON object against the enumerated schema;
// anything else is treated as a parse failure, never patched.
const systemInstruction = `Sos el clasificador de una app de registro personal. ` +
	`El usuario escribe una frase en español sobre su vida (gastos, ingresos, ánimo, actividad física, notas). ` +
	`Respondé SOLO con un objeto JSON válido, sin texto adicional, con este esquema: ` +
	`{"brain": "money"|"physical"|"mental"|"general", ` +
	`"intent": "add_expense"|"add_income"|"add_subscription"|"log_entry"|"unknown", ` +
	`"confidence": número entre 0 y 1, ` +
	`"money": {"amount": número, "currency": string, "merchant": string, "description": string, "is_subscription": bool} (solo si brain es money), ` +
	`"entry": {"text": string, "domain": string} (solo si brain no es money)}. ` +
	`Empezá la respuesta con { y terminala con }.`

// Config holds the remote tier's settings.
type Config struct {
	APIKey   string
	Model    string
	BaseURL  string
	Timeout  time.Duration
	TestMode bool
}

// Enabled is the policy gate: the tier is attempted only when a credential
// is present and test mode is off. The two are independent on purpose — a
// credential can be present while the caller still wants deterministic
// output.
func Enabled(cfg Config) bool {
	return cfg.APIKey != "" && !cfg.TestMode
}

// Client implements classify.Classifier against a hosted chat-completions API.
type Client struct {
	httpClient *http.Client
	apiKey     string
	model      string
	baseURL    string
	timeout    time.Duration
}

// NewClient creates a remote classifier client.
func NewClient(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("remote classifier API key is required")
	}

	modelName := cfg.Model
	if modelName == "" {
		modelName = "gpt-4o-mini"
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		apiKey:  cfg.APIKey,
		model:   modelName,
		baseURL: baseURL,
		timeout: timeout,
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 2,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}, nil
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Classify sends the user text with the fixed system instruction and parses
// the structured response. The returned confidence is trusted as-is.
func (c *Client) Classify(ctx context.Context, text string) (model.Result, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	requestBody := map[string]any{
		"model": c.model,
		"messages": []map[string]string{
			{"role": "system", "content": systemInstruction},
			{"role": "user", "content": text},
		},
		"temperature": 0.2,
		"max_tokens":  300,
	}

	jsonBody, err := json.Marshal(requestBody)
	if err != nil {
		return model.Result{}, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, strings.NewReader(string(jsonBody)))
	if err != nil {
		return model.Result{}, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return model.Result{}, fmt.Errorf("%w: request failed: %v", common.ErrRemoteUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return model.Result{}, fmt.Errorf("%w: failed to read response: %v", common.ErrRemoteUnavailable, err)
	}

	if resp.StatusCode != http.StatusOK {
		return model.Result{}, fmt.Errorf("%w: status %d: %s", common.ErrRemoteUnavailable, resp.StatusCode, string(body))
	}

	var response chatResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return model.Result{}, fmt.Errorf("failed to parse response envelope: %w", err)
	}

	if len(response.Choices) == 0 {
		return model.Result{}, fmt.Errorf("no completion choices returned")
	}

	return ParseClassification(response.Choices[0].Message.Content)
}
