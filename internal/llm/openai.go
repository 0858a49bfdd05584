package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const providerOpenAI = "openai"

// openAIClient implements Client against any OpenAI-compatible
// /chat/completions endpoint.
type openAIClient struct {
	cfg      Config
	http     *http.Client
	observer Observer
	limiter  *rate.Limiter
}

// NewOpenAIClient creates a Client for an OpenAI-compatible server. The API
// key only ever travels in the Authorization header.
func NewOpenAIClient(cfg Config, observer Observer) Client {
	if observer == nil {
		observer = NoopObserver{}
	}
	c := &openAIClient{
		cfg:      cfg,
		http:     newHTTPClient(),
		observer: observer,
	}
	if cfg.RatePerSec > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RatePerSec), 1)
	}
	return c
}

type openAIRequest struct {
	Model          string          `json:"model"`
	Messages       []Message       `json:"messages"`
	MaxTokens      int             `json:"max_tokens,omitempty"`
	Stream         bool            `json:"stream,omitempty"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type openAIResponse struct {
	Model   string `json:"model"`
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
}

type openAIStreamChunk struct {
	Choices []struct {
		Delta struct {
			Content string `json:"content"`
		} `json:"delta"`
	} `json:"choices"`
}

func (c *openAIClient) request(msgs []Message, opts Options, stream bool) openAIRequest {
	model, maxTok := c.cfg.resolve(opts)
	return openAIRequest{
		Model:          model,
		Messages:       msgs,
		MaxTokens:      maxTok,
		Stream:         stream,
		ResponseFormat: &responseFormat{Type: "json_object"},
	}
}

func (c *openAIClient) wait(ctx context.Context) error {
	if c.limiter == nil {
		return nil
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}
	return nil
}

func (c *openAIClient) Complete(ctx context.Context, msgs []Message, opts Options) (string, error) {
	body := c.request(msgs, opts, false)
	return completeWithRetry(ctx, c.cfg, c.observer, providerOpenAI, body.Model, c.wait, func(ctx context.Context) (string, error) {
		resp, err := c.post(ctx, body)
		if err != nil {
			return "", err
		}
		defer resp.Body.Close()

		respBody, err := io.ReadAll(resp.Body)
		if err != nil {
			return "", fmt.Errorf("reading response: %w", err)
		}
		if resp.StatusCode != http.StatusOK {
			return "", statusError(providerOpenAI, resp.StatusCode, respBody)
		}

		var out openAIResponse
		if err := json.Unmarshal(respBody, &out); err != nil {
			return "", fmt.Errorf("%w: decoding response: %v", ErrInvalidOutput, err)
		}
		if len(out.Choices) == 0 {
			return "", fmt.Errorf("%w: response has no choices", ErrInvalidOutput)
		}
		return out.Choices[0].Message.Content, nil
	})
}

func (c *openAIClient) Stream(ctx context.Context, msgs []Message, opts Options) (<-chan string, <-chan error) {
	body := c.request(msgs, opts, true)
	return streamCall{
		cfg:      c.cfg,
		observer: c.observer,
		provider: providerOpenAI,
		model:    body.Model,
		wait:     c.wait,
		open: func(ctx context.Context) (*http.Response, error) {
			return c.post(ctx, body)
		},
		decode: decodeSSELine,
	}.run(ctx)
}

// decodeSSELine handles one server-sent-events line. Comment and event
// lines carry no text.
func decodeSSELine(line []byte) (string, bool, error) {
	s := string(line)
	if !strings.HasPrefix(s, "data:") {
		return "", false, nil
	}
	data := strings.TrimSpace(strings.TrimPrefix(s, "data:"))
	if data == "[DONE]" {
		return "", true, nil
	}

	var chunk openAIStreamChunk
	if err := json.Unmarshal([]byte(data), &chunk); err != nil {
		return "", false, err
	}
	if len(chunk.Choices) == 0 {
		return "", false, nil
	}
	return chunk.Choices[0].Delta.Content, false, nil
}

func (c *openAIClient) post(ctx context.Context, body openAIRequest) (*http.Response, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint+"/chat/completions", bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	c.authorize(httpReq)
	httpReq.Header.Set("Content-Type", "application/json")
	if body.Stream {
		httpReq.Header.Set("Accept", "text/event-stream")
	}

	return c.http.Do(httpReq)
}

func (c *openAIClient) authorize(req *http.Request) {
	if c.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	}
}

func (c *openAIClient) Available(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.Endpoint+"/models", nil)
	if err != nil {
		return false
	}
	c.authorize(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}
