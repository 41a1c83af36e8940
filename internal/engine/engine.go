// Package engine implements the recommendation pipeline: a fixed sequence of
// pure stages over a normalized assessment and read-only reference tables.
// Engine.Recommend composes the stages and turns any failure into the
// fallback result, so callers always receive a usable result.
package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/actuallystonmai/skincare-recommendation-service/internal/catalog"
	"github.com/actuallystonmai/skincare-recommendation-service/internal/domain"
	"github.com/actuallystonmai/skincare-recommendation-service/internal/logging"
	"github.com/actuallystonmai/skincare-recommendation-service/internal/metrics"
)

// Stage names, used in StageError and metrics.
const (
	StageNormalize   = "normalize"
	StageProfile     = "profile"
	StageGenerate    = "generate"
	StageConstraints = "constraints"
	StageConflicts   = "conflicts"
	StageScore       = "score"
	StagePersonalize = "personalize"
	StageStructure   = "structure"
	StageRoutine     = "routine"
	StageWarnings    = "warnings"
)

var errNoTables = errors.New("reference tables not loaded")

type Engine struct {
	tables        *catalog.Tables
	defaultMarket string
	now           func() time.Time
	logger        zerolog.Logger
}

type Option func(*Engine)

// WithTables replaces the built-in reference tables.
func WithTables(t *catalog.Tables) Option {
	return func(e *Engine) { e.tables = t }
}

// WithClock sets the source of generated_at timestamps.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

func WithLogger(l zerolog.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// WithDefaultMarket sets the market used when the assessment names one the
// tables do not know.
func WithDefaultMarket(code string) Option {
	return func(e *Engine) { e.defaultMarket = code }
}

func New(opts ...Option) *Engine {
	e := &Engine{
		tables:        catalog.Default(),
		defaultMarket: domain.DefaultMarket,
		now:           time.Now,
		logger:        logging.Component("engine"),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Recommend runs the full pipeline. It never returns nil: a failing or
// panicking stage yields the fallback result instead.
func (e *Engine) Recommend(ctx context.Context, raw domain.RawAssessment) (res *domain.RecommendationResult) {
	start := time.Now()
	stage := StageNormalize
	market := e.defaultMarket

	defer func() {
		if r := recover(); r != nil {
			res = e.fallback(ctx, raw, &StageError{Stage: stage, Err: fmt.Errorf("%w: %v", errPanic, r)})
		}
		metrics.RecordPipelineRun(market, stage, res.Fallback, time.Since(start))
	}()

	res, err := e.run(raw, &stage, &market)
	if err != nil {
		return e.fallback(ctx, raw, err)
	}
	metrics.RecordBucketSizes(map[string]int{
		domain.CategoryEssential:  len(res.Recommendations.Essential),
		domain.CategoryTargeted:   len(res.Recommendations.Targeted),
		domain.CategorySupporting: len(res.Recommendations.Supporting),
		domain.CategoryOptional:   len(res.Recommendations.Optional),
	})
	return res
}

func (e *Engine) run(raw domain.RawAssessment, stage, marketCode *string) (*domain.RecommendationResult, error) {
	fail := func(err error) error { return &StageError{Stage: *stage, Err: err} }

	a := Normalize(raw)
	if e.tables == nil {
		return nil, fail(errNoTables)
	}
	m := e.resolveMarket(a.Market)
	*marketCode = m.Code

	*stage = StageProfile
	p := BuildProfile(a, e.tables)

	*stage = StageGenerate
	list, err := Generate(p, e.tables)
	if err != nil {
		return nil, fail(err)
	}

	*stage = StageConstraints
	if list, err = ApplyMedicalConstraints(list, p, e.tables); err != nil {
		return nil, fail(err)
	}

	*stage = StageConflicts
	if list, err = ResolveConflicts(list, p, e.tables); err != nil {
		return nil, fail(err)
	}

	*stage = StageScore
	if list, err = Score(list, p, e.tables); err != nil {
		return nil, fail(err)
	}

	*stage = StagePersonalize
	if list, err = Personalize(list, p, e.tables, m); err != nil {
		return nil, fail(err)
	}

	*stage = StageStructure
	buckets := Structure(list, p, e.tables)

	*stage = StageRoutine
	routine, err := AssembleRoutine(buckets, p, e.tables, m)
	if err != nil {
		return nil, fail(err)
	}

	*stage = StageWarnings
	warnings, timeline, err := GenerateWarnings(buckets.All(), p, e.tables)
	if err != nil {
		return nil, fail(err)
	}

	return &domain.RecommendationResult{
		UserProfile:        p,
		GeneratedAt:        e.now().UTC(),
		Market:             m.Code,
		Currency:           m.Currency,
		Recommendations:    buckets,
		RoutineSuggestions: routine,
		Warnings:           warnings,
		Timeline:           timeline,
		FollowUp:           FollowUpFor(p),
	}, nil
}

// resolveMarket falls back to the default market, then to a bare market with
// the full catalog, so an incomplete market table never fails a run.
func (e *Engine) resolveMarket(code string) catalog.Market {
	if m, ok := e.tables.Market(code); ok {
		return m
	}
	if m, ok := e.tables.Market(e.defaultMarket); ok {
		return m
	}
	return catalog.Market{Code: e.defaultMarket}
}

func (e *Engine) fallback(ctx context.Context, raw domain.RawAssessment, err error) *domain.RecommendationResult {
	stage := "unknown"
	var se *StageError
	if errors.As(err, &se) {
		stage = se.Stage
	}
	e.logger.Warn().
		Str("stage", stage).
		Str("request_id", logging.RequestIDFromContext(ctx)).
		Err(err).
		Msg("pipeline failed, returning fallback result")

	res := Fallback(raw)
	res.GeneratedAt = e.now().UTC()
	return res
}
