package testutil

import (
	"context"
	"sync"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/alexanderramin/dayplan/internal/llm"
)

// FakeLLM is an in-process llm.Client.
//
// In the default mode every call returns Reply or Err immediately. With
// Manual set, each call parks as a PendingCall until the test resolves it,
// which lets tests complete overlapping calls in any order.
type FakeLLM struct {
	Reply  string
	Err    error
	Manual bool
	// ChunkRunes is the stream chunk size; 0 sends the reply in one chunk.
	ChunkRunes int

	mu      sync.Mutex
	calls   []llm.Options
	msgs    [][]llm.Message
	pending chan *PendingCall
	once    sync.Once
}

// PendingCall is one parked call awaiting Resolve or Fail.
type PendingCall struct {
	Msgs  []llm.Message
	Opts  llm.Options
	reply chan fakeReply
}

type fakeReply struct {
	text string
	err  error
}

func (p *PendingCall) Resolve(text string) { p.reply <- fakeReply{text: text} }
func (p *PendingCall) Fail(err error)      { p.reply <- fakeReply{err: err} }

func (f *FakeLLM) queue() chan *PendingCall {
	f.once.Do(func() { f.pending = make(chan *PendingCall, 16) })
	return f.pending
}

func (f *FakeLLM) record(msgs []llm.Message, opts llm.Options) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, opts)
	f.msgs = append(f.msgs, msgs)
}

// Calls returns the number of Complete and Stream calls made so far.
func (f *FakeLLM) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

// LastOptions returns the options of the most recent call.
func (f *FakeLLM) LastOptions() llm.Options {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.calls) == 0 {
		return llm.Options{}
	}
	return f.calls[len(f.calls)-1]
}

// LastMessages returns the messages of the most recent call.
func (f *FakeLLM) LastMessages() []llm.Message {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.msgs) == 0 {
		return nil
	}
	return f.msgs[len(f.msgs)-1]
}

// Next waits for the next parked call in Manual mode.
func (f *FakeLLM) Next(t *testing.T) *PendingCall {
	t.Helper()
	select {
	case p := <-f.queue():
		return p
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for llm call")
		return nil
	}
}

func (f *FakeLLM) await(ctx context.Context, msgs []llm.Message, opts llm.Options) (string, error) {
	f.record(msgs, opts)
	if !f.Manual {
		return f.Reply, f.Err
	}
	p := &PendingCall{Msgs: msgs, Opts: opts, reply: make(chan fakeReply, 1)}
	f.queue() <- p
	select {
	case r := <-p.reply:
		return r.text, r.err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

func (f *FakeLLM) Complete(ctx context.Context, msgs []llm.Message, opts llm.Options) (string, error) {
	return f.await(ctx, msgs, opts)
}

func (f *FakeLLM) Stream(ctx context.Context, msgs []llm.Message, opts llm.Options) (<-chan string, <-chan error) {
	chunks := make(chan string)
	errs := make(chan error, 1)
	go func() {
		defer close(errs)
		defer close(chunks)
		text, err := f.await(ctx, msgs, opts)
		if err != nil {
			errs <- err
			return
		}
		for _, c := range splitRunes(text, f.ChunkRunes) {
			select {
			case chunks <- c:
			case <-ctx.Done():
				errs <- ctx.Err()
				return
			}
		}
	}()
	return chunks, errs
}

func (f *FakeLLM) Available(context.Context) bool { return f.Err == nil }

func splitRunes(s string, n int) []string {
	if n <= 0 || utf8.RuneCountInString(s) <= n {
		if s == "" {
			return nil
		}
		return []string{s}
	}
	var out []string
	runes := []rune(s)
	for i := 0; i < len(runes); i += n {
		out = append(out, string(runes[i:min(i+n, len(runes))]))
	}
	return out
}
