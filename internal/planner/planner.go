// Package planner runs the day-analysis pipeline: fingerprint, cache
// lookup, prompt assembly, model call, normalization and a guarded cache
// write.
package planner

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/dayplan/internal/analysis"
	"github.com/alexanderramin/dayplan/internal/cache"
	"github.com/alexanderramin/dayplan/internal/domain"
	"github.com/alexanderramin/dayplan/internal/llm"
	"github.com/alexanderramin/dayplan/internal/prompt"
	"github.com/alexanderramin/dayplan/internal/schedparse"
)

// Model is the transport the planner needs.
type Model interface {
	llm.Completer
	llm.Streamer
}

// AnalyzeRequest is one analysis invocation.
type AnalyzeRequest struct {
	domain.PromptRequest

	// Model overrides the configured model when set.
	Model  string
	Stream bool
	// OnProgress receives accumulated partial text while streaming.
	OnProgress func(partial string)
}

// Outcome is the result of Analyze plus how it was produced.
type Outcome struct {
	Result domain.AnalysisResult
	Key    string
	// CacheHit is set when the result came from the store without a model call.
	CacheHit bool
	// Stored is set when this call wrote the result to the store.
	Stored    bool
	Source    analysis.Source
	Defaulted []string
	EnergyTip string
}

type Planner struct {
	assembler *prompt.Assembler
	model     Model
	store     cache.Store
	guard     cache.Guard
	budgets   llm.Config
	observer  UseCaseObserver
}

type Option func(*Planner)

// WithStore replaces the default in-memory store.
func WithStore(s cache.Store) Option {
	return func(p *Planner) { p.store = s }
}

func WithObserver(o UseCaseObserver) Option {
	return func(p *Planner) { p.observer = o }
}

// WithTokenBudgets sets the short and long budgets from cfg.
func WithTokenBudgets(cfg llm.Config) Option {
	return func(p *Planner) { p.budgets = cfg }
}

func New(assembler *prompt.Assembler, model Model, opts ...Option) *Planner {
	p := &Planner{
		assembler: assembler,
		model:     model,
		store:     cache.NewMemoryStore(),
		budgets:   llm.DefaultConfig(),
		observer:  NoopUseCaseObserver{},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Analyze produces the analysis for req. Only transport errors are
// returned; malformed model output degrades inside the result instead.
//
// Rest-day requests skip the cache in both directions, since a rest-mode
// result for a set of records must not replace the regular one. Degraded
// text-fallback results are returned but never stored.
func (p *Planner) Analyze(ctx context.Context, req AnalyzeRequest) (out *Outcome, err error) {
	startedAt := time.Now().UTC()
	req.PromptRequest = withDefaults(req.PromptRequest)
	fields := map[string]any{
		"records": len(req.Records),
		"detail":  string(req.Detail),
		"stream":  req.Stream,
		"rest":    req.IsRestDay,
	}
	defer func() {
		if out != nil {
			fields["cache_hit"] = out.CacheHit
			fields["source"] = string(out.Source)
		}
		p.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "analyze",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	key := cache.Fingerprint(req.Records, req.Energy, req.AdvisorIDs())
	if s, ok := p.store.(cache.Scoper); ok {
		key = s.ScopeKey(key, req.Profile, req.Detail)
	}
	ticket := p.guard.Begin()
	energyTip := EnergyTip(req.Energy, req.Records)

	if !req.IsRestDay {
		if r, ok := p.store.Get(key); ok {
			return &Outcome{Result: r, Key: key, CacheHit: true, EnergyTip: energyTip}, nil
		}
	}

	msgs := p.assembler.Assemble(req.PromptRequest)
	opts := llm.Options{Model: req.Model, MaxTokens: p.budgets.TokenBudget(req.Detail)}

	var raw string
	raw, err = p.call(ctx, msgs, opts, req)
	if err != nil {
		return nil, fmt.Errorf("analyzing day: %w", err)
	}

	report := analysis.NormalizeDetailed(raw)
	result := report.Result
	mergeInsights(&result, req.PromptRequest)

	stored := false
	if !req.IsRestDay && !result.ParseFailed {
		stored = ticket.Commit(p.store, key, result)
	}
	return &Outcome{
		Result:    result,
		Key:       key,
		Stored:    stored,
		Source:    report.Source,
		Defaulted: report.Defaulted,
		EnergyTip: energyTip,
	}, nil
}

func (p *Planner) call(ctx context.Context, msgs []llm.Message, opts llm.Options, req AnalyzeRequest) (string, error) {
	if !req.Stream {
		return p.model.Complete(ctx, msgs, opts)
	}
	chunks, errs := p.model.Stream(ctx, msgs, opts)
	return llm.Collect(ctx, chunks, errs, req.OnProgress)
}

// ParseInput parses free text into records. Non-empty text that yields no
// record returns ErrTimeNotRecognized; empty text yields no records and no error.
func ParseInput(text string) ([]domain.ScheduleRecord, error) {
	res := schedparse.ParseDetailed(text)
	if res.Unrecognized() {
		return nil, fmt.Errorf("%w: %q", ErrTimeNotRecognized, strings.TrimSpace(text))
	}
	return res.Records, nil
}

func withDefaults(req domain.PromptRequest) domain.PromptRequest {
	if !domain.ValidEnergyLevels[req.Energy] {
		req.Energy = domain.DefaultEnergy
	}
	if !domain.ValidDetailModes[req.Detail] {
		req.Detail = domain.DefaultDetail
	}
	return req
}
