// Package stylist implements the outfit stylist on top of the Anthropic Messages API.
package stylist

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/CharlieZimmermann/wardrobe-app/internal/domain/outfits"
	"github.com/CharlieZimmermann/wardrobe-app/internal/pkg/config"
	"github.com/CharlieZimmermann/wardrobe-app/internal/pkg/logger"
	"github.com/CharlieZimmermann/wardrobe-app/internal/pkg/metrics"
)

const (
	anthropicVersion = "2023-06-01"
	messagesPath     = "/v1/messages"
	maxResponseSize  = 4 << 20
)

// AnthropicStylist sends prompts to the Anthropic Messages API
type AnthropicStylist struct {
	apiKey     string
	url        string
	model      string
	maxTokens  int
	retry      RetryConfig
	httpClient *http.Client
	logger     logger.Logger
}

// NewAnthropicStylist creates a stylist. An empty API key is allowed; calls then fail with outfits.ErrStylistNotConfigured.
func NewAnthropicStylist(settings *config.StylistSettings, httpClient *http.Client, logger logger.Logger) *AnthropicStylist {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: settings.Timeout}
	}

	retry := DefaultRetryConfig()
	if settings.MaxAttempts > 0 {
		retry.MaxAttempts = settings.MaxAttempts
	}

	return &AnthropicStylist{
		apiKey:     strings.TrimSpace(settings.APIKey),
		url:        strings.TrimSuffix(settings.BaseURL, "/") + messagesPath,
		model:      settings.Model,
		maxTokens:  settings.MaxTokens,
		retry:      retry,
		httpClient: httpClient,
		logger:     logger,
	}
}

type messageRequest struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	Messages  []message `json:"messages"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type messageResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	StopReason string `json:"stop_reason"`
	Usage      struct {
		InputTokens  int `json:"input_tokens"`
		OutputTokens int `json:"output_tokens"`
	} `json:"usage"`
}

type apiErrorResponse struct {
	Error struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// Complete implements outfits.Stylist
func (s *AnthropicStylist) Complete(ctx context.Context, prompt string) (string, error) {
	if s.apiKey == "" {
		return "", outfits.ErrStylistNotConfigured
	}

	body, err := json.Marshal(messageRequest{
		Model:     s.model,
		MaxTokens: s.maxTokens,
		Messages:  []message{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode stylist request: %w", err)
	}

	var lastErr error
	for attempt := 1; attempt <= s.retry.MaxAttempts; attempt++ {
		text, err := s.doRequest(ctx, body)
		if err == nil {
			return text, nil
		}
		lastErr = err

		if !isTransient(err) {
			return "", unwrapTransient(err)
		}

		if attempt < s.retry.MaxAttempts {
			backoff := s.retry.backoff(attempt)
			s.logger.Warn("stylist request failed, retrying",
				"attempt", attempt,
				"max_attempts", s.retry.MaxAttempts,
				"backoff", backoff,
				"error", err)

			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(backoff):
			}
		}
	}

	return "", unwrapTransient(lastErr)
}

func unwrapTransient(err error) error {
	var t *transientError
	if errors.As(err, &t) {
		return t.err
	}
	return err
}

func (s *AnthropicStylist) doRequest(ctx context.Context, body []byte) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create stylist request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", s.apiKey)
	req.Header.Set("anthropic-version", anthropicVersion)

	start := time.Now()
	resp, err := s.httpClient.Do(req)
	if err != nil {
		metrics.ObserveUpstream("anthropic", 0, time.Since(start))
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", &transientError{err: &outfits.UpstreamError{StatusCode: http.StatusBadGateway, Message: err.Error()}}
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	metrics.ObserveUpstream("anthropic", resp.StatusCode, time.Since(start))

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return "", &transientError{err: &outfits.UpstreamError{StatusCode: http.StatusBadGateway, Message: "failed to read stylist response"}}
	}

	if resp.StatusCode != http.StatusOK {
		return "", classifyHTTPError(resp.StatusCode, respBody)
	}

	var parsed messageResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("%w: %v", outfits.ErrInvalidReply, err)
	}

	var text strings.Builder
	for _, block := range parsed.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}

	s.logger.Debug("stylist reply received",
		"stop_reason", parsed.StopReason,
		"input_tokens", parsed.Usage.InputTokens,
		"output_tokens", parsed.Usage.OutputTokens)

	if strings.TrimSpace(text.String()) == "" {
		return "", outfits.ErrEmptyReply
	}
	return text.String(), nil
}

// classifyHTTPError retries rate limits and server errors and fails fast on everything else
func classifyHTTPError(statusCode int, body []byte) error {
	message := http.StatusText(statusCode)
	var apiErr apiErrorResponse
	if json.Unmarshal(body, &apiErr) == nil && apiErr.Error.Message != "" {
		message = apiErr.Error.Message
	}

	err := &outfits.UpstreamError{StatusCode: statusCode, Message: message}
	if statusCode == http.StatusTooManyRequests || statusCode >= 500 {
		return &transientError{err: err}
	}
	return err
}
