package pipeline

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"anagram/internal/domain"
	"anagram/internal/logger"
	"anagram/internal/telemetry"
)

var tracer = otel.Tracer("anagram/internal/pipeline")

// Summary counts the outcomes applied during a run.
type Summary struct {
	Words    int
	NonWords int
}

// Resolved returns the number of words whose outcome reached the observer.
func (s Summary) Resolved() int { return s.Words + s.NonWords }

// Pipeline runs sequential lookups against a single Lookuper.
type Pipeline struct {
	lookup domain.Lookuper
	log    logger.Logger
}

type Option func(*Pipeline)

// WithLogger sets the logger used for per-word debug output.
func WithLogger(l logger.Logger) Option {
	return func(p *Pipeline) {
		p.log = l
	}
}

// New returns a pipeline issuing lookups through lookup.
func New(lookup domain.Lookuper, opts ...Option) *Pipeline {
	p := &Pipeline{
		lookup: lookup,
		log:    logger.NewNoopLogger(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run looks up words in order. Unknown membership is reported as a non-word.
// It returns the first lookup error, or ctx.Err() if ctx is cancelled between
// lookups.
func (p *Pipeline) Run(ctx context.Context, words []string, obs domain.Observer) (Summary, error) {
	ctx, span := tracer.Start(ctx, "pipeline.Run")
	span.SetAttributes(attribute.Int("candidates", len(words)))
	defer span.End()

	var sum Summary
	for i, word := range words {
		if err := ctx.Err(); err != nil {
			return sum, err
		}

		res, err := p.lookup.Lookup(ctx, word)
		if err != nil {
			telemetry.TraceError(span, err)
			return sum, fmt.Errorf("lookup %q (%d of %d): %w", word, i+1, len(words), err)
		}

		if res.IsAWord() {
			obs.MarkWord(word)
			sum.Words++
		} else {
			obs.MarkNonWord(word)
			sum.NonWords++
		}
		p.log.DebugWithContext(ctx, "resolved candidate",
			zap.String("word", word),
			zap.Stringer("membership", res.Membership),
		)
	}

	span.SetAttributes(attribute.Int("words", sum.Words))
	return sum, nil
}

// Run is a convenience for New(lookup).Run(ctx, words, obs).
func Run(ctx context.Context, words []string, lookup domain.Lookuper, obs domain.Observer) (Summary, error) {
	return New(lookup).Run(ctx, words, obs)
}
