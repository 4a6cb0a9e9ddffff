package llm

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/match-recap/internal/domain/recap"
	"github.com/riskibarqy/match-recap/internal/platform/logging"
	"github.com/riskibarqy/match-recap/internal/platform/resilience"
	"github.com/riskibarqy/match-recap/internal/usecase"
	"github.com/valyala/bytebufferpool"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	defaultBaseURL      = "https://api.openai.com/v1"
	defaultModel        = "gpt-4o-mini"
	defaultTimeout      = 30 * time.Second
	defaultRetryBackoff = time.Second
	completionsPath     = "/chat/completions"
	maxResponseBytes    = 4 << 20
)

var errLLMTransient = crerr.New("llm transient failure")

var _ recap.Generator = (*Client)(nil)

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	APIKey         string
	Model          string
	Timeout        time.Duration
	MaxRetries     int
	RetryBackoff   time.Duration
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client calls an OpenAI-compatible chat completions endpoint.
type Client struct {
	httpClient   *http.Client
	endpoint     string
	apiKey       string
	model        string
	maxRetries   int
	retryBackoff time.Duration
	logger       *logging.Logger
	breaker      *resilience.CircuitBreaker
	flight       resilience.SingleFlight[[]byte]
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = defaultTimeout
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = defaultModel
	}
	backoff := cfg.RetryBackoff
	if backoff <= 0 {
		backoff = defaultRetryBackoff
	}

	return &Client{
		httpClient:   httpClient,
		endpoint:     baseURL + completionsPath,
		apiKey:       strings.TrimSpace(cfg.APIKey),
		model:        model,
		maxRetries:   max(cfg.MaxRetries, 0),
		retryBackoff: backoff,
		logger:       logger,
		breaker:      resilience.NewCircuitBreakerFromConfig(cfg.CircuitBreaker),
	}
}

// Generate sends the prompt and returns the first choice. Identical prompts
// in flight at the same time share one upstream call.
func (c *Client) Generate(ctx context.Context, prompt recap.Prompt) (recap.Completion, error) {
	if len(prompt.Messages) == 0 {
		return recap.Completion{}, fmt.Errorf("%w: prompt has no messages", usecase.ErrInvalidInput)
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	if err := sonic.ConfigDefault.NewEncoder(buf).Encode(c.newRequest(prompt)); err != nil {
		return recap.Completion{}, fmt.Errorf("encode completion request: %w", err)
	}

	sum := sha256.Sum256(buf.B)
	raw, err, shared := c.flight.Do(hex.EncodeToString(sum[:]), func() ([]byte, error) {
		return c.guardedRequest(ctx, buf.B)
	})
	if err != nil {
		return recap.Completion{}, err
	}
	if shared {
		c.logger.DebugContext(ctx, "llm completion shared with concurrent caller")
	}

	var decoded completionResponse
	if err := sonic.Unmarshal(raw, &decoded); err != nil {
		return recap.Completion{}, fmt.Errorf("decode completion response: %w", err)
	}
	if len(decoded.Choices) == 0 {
		return recap.Completion{}, fmt.Errorf("completion response has no choices")
	}

	model := decoded.Model
	if model == "" {
		model = c.model
	}
	return recap.Completion{
		Text:             strings.TrimSpace(decoded.Choices[0].Message.Content),
		Model:            model,
		PromptTokens:     decoded.Usage.PromptTokens,
		CompletionTokens: decoded.Usage.CompletionTokens,
	}, nil
}

func (c *Client) guardedRequest(ctx context.Context, body []byte) ([]byte, error) {
	if c.breaker == nil {
		return c.executeRequest(ctx, body)
	}

	var raw []byte
	err := c.breaker.Execute(func() (err error) {
		raw, err = c.executeRequest(ctx, body)
		return err
	}, isTransient)
	if crerr.Is(err, resilience.ErrCircuitOpen) {
		counts := c.breaker.Counts()
		c.logger.WarnContext(ctx, "llm circuit breaker rejected request",
			"state", string(counts.State),
			"consecutive_failures", counts.ConsecutiveFailures,
			"rejected", counts.Rejected,
		)
		return nil, fmt.Errorf("%w: language model is temporarily unavailable", usecase.ErrDependencyUnavailable)
	}
	return raw, err
}

func isTransient(err error) bool {
	return crerr.Is(err, errLLMTransient)
}

func (c *Client) newRequest(prompt recap.Prompt) completionRequest {
	messages := make([]chatMessage, 0, len(prompt.Messages))
	for _, m := range prompt.Messages {
		messages = append(messages, chatMessage{Role: m.Role, Content: m.Content})
	}
	return completionRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: prompt.Temperature,
		MaxTokens:   prompt.MaxTokens,
	}
}

func (c *Client) executeRequest(ctx context.Context, body []byte) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Accept", "application/json")
		if c.apiKey != "" {
			req.Header.Set("Authorization", "Bearer "+c.apiKey)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = crerr.Wrapf(errLLMTransient, "send request: %s", sanitizeSensitiveText(err.Error(), c.apiKey))
		} else {
			raw, readErr := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
			_ = resp.Body.Close()
			switch {
			case readErr != nil:
				lastErr = crerr.Wrapf(errLLMTransient, "read response body: %v", readErr)
			case resp.StatusCode >= 200 && resp.StatusCode < 300:
				return raw, nil
			case isRetryableStatus(resp.StatusCode):
				lastErr = crerr.Wrapf(errLLMTransient, "llm status=%d body=%s", resp.StatusCode, abbreviateBody(raw))
			default:
				return nil, fmt.Errorf("%w: llm status=%d body=%s", usecase.ErrUpstreamRejected, resp.StatusCode, abbreviateBody(raw))
			}
		}

		if attempt == c.maxRetries {
			break
		}
		timer := time.NewTimer(time.Duration(attempt+1) * c.retryBackoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("llm request failed")
	}
	c.logger.WarnContext(ctx, "llm request failed", "endpoint", c.endpoint, "attempts", c.maxRetries+1, "error", lastErr)
	return nil, lastErr
}

func isRetryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

func sanitizeSensitiveText(value, apiKey string) string {
	value = strings.TrimSpace(value)
	if apiKey != "" {
		value = strings.ReplaceAll(value, apiKey, "REDACTED")
	}
	return value
}

func abbreviateBody(raw []byte) string {
	const limit = 256
	text := strings.TrimSpace(string(raw))
	if len(text) <= limit {
		return text
	}
	return text[:limit] + "..."
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type completionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

type completionResponse struct {
	Model   string `json:"model"`
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
	} `json:"usage"`
}
