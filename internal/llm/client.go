package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"google.golang.org/genai"
)

const (
	DefaultModel   = "gemini-2.0-flash"
	DefaultTimeout = 30 * time.Second
)

// Completer sends a single prompt and returns the model's text reply
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Config configures the Gemini client
type Config struct {
	APIKey  string
	Model   string
	Timeout time.Duration
	Retry   RetryConfig
}

// contentGenerator is the subset of genai.Models the client uses
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// GeminiClient implements Completer over the Gemini API
type GeminiClient struct {
	models  contentGenerator
	model   string
	timeout time.Duration
	retry   RetryConfig
}

// NewGeminiClient creates a Gemini-backed Completer
func NewGeminiClient(ctx context.Context, cfg Config) (*GeminiClient, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, ErrDisabled
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      cfg.APIKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{APIVersion: "v1beta"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return newGeminiClient(client.Models, cfg), nil
}

func newGeminiClient(models contentGenerator, cfg Config) *GeminiClient {
	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &GeminiClient{
		models:  models,
		model:   model,
		timeout: timeout,
		retry:   cfg.Retry,
	}
}

// Complete sends the prompt as a single user turn. Each attempt is bounded by
// the configured timeout.
func (c *GeminiClient) Complete(ctx context.Context, prompt string) (string, error) {
	start := time.Now()

	text, err := WithRetry(ctx, c.retry, func(ctx context.Context) (string, error) {
		attemptCtx, cancel := context.WithTimeout(ctx, c.timeout)
		defer cancel()
		return c.generate(attemptCtx, prompt)
	})
	if err != nil {
		slog.Warn("gemini completion failed", "model", c.model, "duration", time.Since(start), "error", err)
		return "", err
	}

	slog.Debug("gemini completion succeeded", "model", c.model, "duration", time.Since(start), "chars", len(text))
	return text, nil
}

func (c *GeminiClient) generate(ctx context.Context, prompt string) (string, error) {
	contents := []*genai.Content{
		{
			Role:  "user",
			Parts: []*genai.Part{{Text: prompt}},
		},
	}

	resp, err := c.models.GenerateContent(ctx, c.model, contents, &genai.GenerateContentConfig{
		Temperature: genai.Ptr[float32](0.2),
	})
	if err != nil {
		return "", classifyError(err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", &Error{Code: ErrCodeEmptyResponse, Message: "empty response from model", Retryable: true}
	}
	return text, nil
}

func classifyError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return &Error{Code: ErrCodeTimeout, Message: "model call timed out", Retryable: true, Cause: err}
	}
	if errors.Is(err, context.Canceled) {
		return &Error{Code: ErrCodeUnavailable, Message: "model call cancelled", Retryable: false, Cause: err}
	}

	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.Code == http.StatusTooManyRequests:
			return &Error{Code: ErrCodeRateLimited, Message: "model rate limited", Retryable: true, Cause: err}
		case apiErr.Code >= http.StatusInternalServerError:
			return &Error{Code: ErrCodeUnavailable, Message: "model service unavailable", Retryable: true, Cause: err}
		default:
			return &Error{Code: ErrCodeRejected, Message: "model rejected the request", Retryable: false, Cause: err}
		}
	}

	return &Error{Code: ErrCodeUnavailable, Message: "model call failed", Retryable: true, Cause: err}
}

// DisabledCompleter is used when no API key is configured
type DisabledCompleter struct{}

// Complete always fails with ErrDisabled
func (DisabledCompleter) Complete(context.Context, string) (string, error) {
	return "", ErrDisabled
}

// Enabled reports whether c can reach a model
func Enabled(c Completer) bool {
	if c == nil {
		return false
	}
	_, disabled := c.(DisabledCompleter)
	return !disabled
}
