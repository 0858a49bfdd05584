package llm

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

const providerOllama = "ollama"

// ollamaClient implements Client using the Ollama chat API.
type ollamaClient struct {
	cfg      Config
	http     *http.Client
	observer Observer
}

// NewOllamaClient creates a Client that talks to an Ollama instance.
func NewOllamaClient(cfg Config, observer Observer) Client {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &ollamaClient{
		cfg:      cfg,
		http:     newHTTPClient(),
		observer: observer,
	}
}

// ollamaRequest is the JSON body sent to POST /api/chat.
type ollamaRequest struct {
	Model    string        `json:"model"`
	Messages []Message     `json:"messages"`
	Stream   bool          `json:"stream"`
	Format   string        `json:"format,omitempty"`
	Options  ollamaOptions `json:"options,omitempty"`
}

type ollamaOptions struct {
	NumPredict int `json:"num_predict,omitempty"`
}

// ollamaResponse is one /api/chat reply, or one NDJSON line when streaming.
type ollamaResponse struct {
	Model   string  `json:"model"`
	Message Message `json:"message"`
	Done    bool    `json:"done"`
	Error   string  `json:"error,omitempty"`
}

func (c *ollamaClient) request(msgs []Message, opts Options, stream bool) ollamaRequest {
	model, maxTok := c.cfg.resolve(opts)
	return ollamaRequest{
		Model:    model,
		Messages: msgs,
		Stream:   stream,
		Format:   "json",
		Options:  ollamaOptions{NumPredict: maxTok},
	}
}

func (c *ollamaClient) Complete(ctx context.Context, msgs []Message, opts Options) (string, error) {
	body := c.request(msgs, opts, false)
	return completeWithRetry(ctx, c.cfg, c.observer, providerOllama, body.Model, nil, func(ctx context.Context) (string, error) {
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
			return "", statusError(providerOllama, resp.StatusCode, respBody)
		}

		var out ollamaResponse
		if err := json.Unmarshal(respBody, &out); err != nil {
			return "", fmt.Errorf("%w: decoding response: %v", ErrInvalidOutput, err)
		}
		return out.Message.Content, nil
	})
}

func (c *ollamaClient) Stream(ctx context.Context, msgs []Message, opts Options) (<-chan string, <-chan error) {
	body := c.request(msgs, opts, true)
	return streamCall{
		cfg:      c.cfg,
		observer: c.observer,
		provider: providerOllama,
		model:    body.Model,
		open: func(ctx context.Context) (*http.Response, error) {
			return c.post(ctx, body)
		},
		decode: decodeOllamaLine,
	}.run(ctx)
}

func decodeOllamaLine(line []byte) (string, bool, error) {
	var chunk ollamaResponse
	if err := json.Unmarshal(line, &chunk); err != nil {
		return "", false, err
	}
	if chunk.Error != "" {
		return "", false, errors.New(chunk.Error)
	}
	return chunk.Message.Content, chunk.Done, nil
}

func (c *ollamaClient) post(ctx context.Context, body ollamaRequest) (*http.Response, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint+"/api/chat", bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	return c.http.Do(httpReq)
}

func (c *ollamaClient) Available(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.Endpoint+"/api/tags", nil)
	if err != nil {
		return false
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}
