package finder

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"anagram/internal/domain"
	"anagram/internal/logger"
	"anagram/internal/permute"
	"anagram/internal/pipeline"
)

// Run describes one pass over one submitted word.
type Run struct {
	ID           ulid.ULID
	OriginalWord string
	// Candidates are the distinct permutations in lexicographic order, which
	// is also the order they are looked up in.
	Candidates []string
	Summary    pipeline.Summary
	Elapsed    time.Duration
}

// Finder wires the input, display and lookup boundaries together.
type Finder struct {
	input      domain.Input
	display    domain.Display
	pipeline   *pipeline.Pipeline
	log        logger.Logger
	maxSymbols int
}

type Option func(*Finder)

func WithLogger(l logger.Logger) Option {
	return func(f *Finder) {
		f.log = l
	}
}

// WithMaxSymbols sets the word length ceiling; 0 disables it.
func WithMaxSymbols(n int) Option {
	return func(f *Finder) {
		f.maxSymbols = n
	}
}

// New returns a Finder. Every boundary is required.
func New(in domain.Input, display domain.Display, lookup domain.Lookuper, opts ...Option) (*Finder, error) {
	switch {
	case in == nil:
		return nil, errors.New("finder: input boundary is required")
	case display == nil:
		return nil, errors.New("finder: display boundary is required")
	case lookup == nil:
		return nil, errors.New("finder: lookup capability is required")
	}

	f := &Finder{
		input:      in,
		display:    display,
		log:        logger.NewNoopLogger(),
		maxSymbols: permute.DefaultMaxSymbols,
	}
	for _, opt := range opts {
		opt(f)
	}
	f.pipeline = pipeline.New(lookup, pipeline.WithLogger(f.log))
	return f, nil
}

// Run processes submitted words until the input is exhausted (returning nil)
// or ctx is cancelled (returning ctx.Err()). A failed run is logged and the
// finder moves on to the next word.
func (f *Finder) Run(ctx context.Context) error {
	for {
		word, err := f.input.NextWord(ctx)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		if _, err := f.RunWord(ctx, word); err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			f.log.Error("run failed", zap.String("word", word), zap.Error(err))
		}
	}
}

// RunWord performs a single run for word. On a lookup error the returned Run
// holds the outcomes applied before the failure.
func (f *Finder) RunWord(ctx context.Context, word string) (*Run, error) {
	run := &Run{ID: ulid.Make(), OriginalWord: word}
	log := f.log.With(zap.Stringer("run", run.ID))

	candidates, err := permute.Sorted(word, f.maxSymbols)
	f.display.Clear()
	f.display.SetOriginalWord(word)
	if err != nil {
		log.Warn("word rejected", zap.String("word", word), zap.Error(err))
		return run, fmt.Errorf("enumerating %q: %w", word, err)
	}
	run.Candidates = candidates
	f.display.SetCandidates(slices.Clone(candidates))

	log.Info("run started", zap.String("word", word), zap.Int("candidates", len(candidates)))
	start := time.Now()
	run.Summary, err = f.pipeline.Run(ctx, candidates, f.display)
	run.Elapsed = time.Since(start)
	if err != nil {
		return run, err
	}

	log.Info("run finished",
		zap.Int("words", run.Summary.Words),
		zap.Int("non_words", run.Summary.NonWords),
		zap.Duration("elapsed", run.Elapsed),
	)
	return run, nil
}
