package llm

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"
)

// Message roles used by the planner.
const (
	RoleSystem = "system"
	RoleUser   = "user"
)

// Message is one role-tagged chat message.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Options holds the per-call parameters chosen by the caller.
type Options struct {
	Model     string // empty uses the configured model
	MaxTokens int    // 0 uses the short token budget
}

// Completer returns a complete model reply in one call.
type Completer interface {
	Complete(ctx context.Context, msgs []Message, opts Options) (string, error)
}

// Streamer returns a model reply as incremental text chunks. The chunk
// channel is closed when the stream ends; at most one error is delivered on
// the error channel, which is closed afterwards.
type Streamer interface {
	Stream(ctx context.Context, msgs []Message, opts Options) (<-chan string, <-chan error)
}

// Client provides access to a language model.
type Client interface {
	Completer
	Streamer

	// Available checks whether the model server is reachable.
	Available(ctx context.Context) bool
}

// NewClient builds the client for cfg.Provider.
func NewClient(cfg Config, observer Observer) Client {
	if cfg.Provider == ProviderOpenAI {
		return NewOpenAIClient(cfg, observer)
	}
	return NewOllamaClient(cfg, observer)
}

func newHTTPClient() *http.Client {
	return &http.Client{
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout: 5 * time.Second,
			}).DialContext,
		},
	}
}

func (c Config) resolve(opts Options) (model string, maxTokens int) {
	model = opts.Model
	if model == "" {
		model = c.Model
	}
	maxTokens = opts.MaxTokens
	if maxTokens <= 0 {
		maxTokens = c.ShortMaxTokens
	}
	return model, maxTokens
}

// attemptFunc performs one request under an attempt-scoped context.
type attemptFunc func(ctx context.Context) (string, error)

// completeWithRetry runs fn up to 1+MaxRetries times, each attempt under its
// own timeout, and reports the outcome to the observer.
func completeWithRetry(ctx context.Context, cfg Config, observer Observer, provider, model string, wait func(context.Context) error, fn attemptFunc) (string, error) {
	start := time.Now()
	timeout := time.Duration(cfg.TimeoutMs) * time.Millisecond

	var lastErr error
	attempts := 1 + cfg.MaxRetries
	for i := 0; i < attempts; i++ {
		if wait != nil {
			if err := wait(ctx); err != nil {
				lastErr = err
				break
			}
		}

		attemptCtx, cancel := context.WithTimeout(ctx, timeout)
		text, err := fn(attemptCtx)
		timedOut := attemptCtx.Err() != nil
		cancel()

		if err == nil {
			observer.OnCallComplete(LLMCallEvent{
				Provider:  provider,
				Model:     model,
				LatencyMs: time.Since(start).Milliseconds(),
				Success:   true,
			})
			return text, nil
		}
		if timedOut && ctx.Err() == nil {
			err = fmt.Errorf("%w: %v", ErrTimeout, err)
		}
		lastErr = err

		// The caller gave up, or the provider said no: stop.
		if ctx.Err() != nil || !retryable(err) {
			break
		}
	}

	finalErr := classify(ctx, lastErr)
	observer.OnCallComplete(LLMCallEvent{
		Provider:  provider,
		Model:     model,
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   false,
		ErrorCode: errorCode(finalErr),
	})
	return "", finalErr
}

// classify maps the last attempt error onto a taxonomy sentinel.
func classify(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, ErrAuth), errors.Is(err, ErrRateLimited), errors.Is(err, ErrTimeout):
		return err
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	case ctx.Err() != nil:
		return ctx.Err()
	case isConnectionError(err):
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	default:
		return fmt.Errorf("%w: %w", ErrRetryExhausted, err)
	}
}

func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	var netErr *net.OpError
	return errors.As(err, &netErr)
}

func errorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrAuth):
		return "AUTH"
	case errors.Is(err, ErrRateLimited):
		return "RATE_LIMITED"
	case errors.Is(err, ErrTimeout):
		return "TIMEOUT"
	case errors.Is(err, ErrUnavailable):
		return "UNAVAILABLE"
	case errors.Is(err, ErrInvalidOutput):
		return "INVALID_OUTPUT"
	default:
		return "UNKNOWN"
	}
}
