package llm

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// lineDecoder turns one line of a streaming body into a text chunk. done
// reports the provider's end-of-stream marker.
type lineDecoder func(line []byte) (text string, done bool, err error)

type streamCall struct {
	cfg      Config
	observer Observer
	provider string
	model    string
	wait     func(context.Context) error
	open     func(ctx context.Context) (*http.Response, error)
	decode   lineDecoder
}

// run starts the stream in a goroutine. Streams are not retried: once a
// chunk has been delivered a retry would duplicate text.
func (s streamCall) run(ctx context.Context) (<-chan string, <-chan error) {
	chunks := make(chan string)
	errs := make(chan error, 1)

	go func() {
		defer close(errs)
		defer close(chunks)

		start := time.Now()
		err := s.pump(ctx, chunks)
		s.observer.OnCallComplete(LLMCallEvent{
			Provider:  s.provider,
			Model:     s.model,
			LatencyMs: time.Since(start).Milliseconds(),
			Success:   err == nil,
			ErrorCode: errorCode(err),
			Streamed:  true,
		})
		if err != nil {
			errs <- err
		}
	}()

	return chunks, errs
}

func (s streamCall) pump(ctx context.Context, chunks chan<- string) error {
	if s.wait != nil {
		if err := s.wait(ctx); err != nil {
			return classify(ctx, err)
		}
	}

	ctx, cancel := context.WithTimeout(ctx, time.Duration(s.cfg.TimeoutMs)*time.Millisecond)
	defer cancel()

	resp, err := s.open(ctx)
	if err != nil {
		return classify(ctx, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return statusError(s.provider, resp.StatusCode, body)
	}

	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		text, done, err := s.decode(line)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidOutput, err)
		}
		if text != "" {
			select {
			case chunks <- text:
			case <-ctx.Done():
				return classify(ctx, ctx.Err())
			}
		}
		if done {
			return nil
		}
	}
	if err := scanner.Err(); err != nil {
		return classify(ctx, err)
	}
	return nil
}

// Collect drains a stream into the final text. onChunk, when non-nil,
// receives the accumulated partial text after every chunk; partial text is
// for progress display only. On error the partial text is discarded.
func Collect(ctx context.Context, chunks <-chan string, errs <-chan error, onChunk func(partial string)) (string, error) {
	var b strings.Builder
	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case chunk, ok := <-chunks:
			if !ok {
				if err := <-errs; err != nil {
					return "", err
				}
				return b.String(), nil
			}
			b.WriteString(chunk)
			if onChunk != nil {
				onChunk(b.String())
			}
		}
	}
}
