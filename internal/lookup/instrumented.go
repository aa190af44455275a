package lookup

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"anagram/internal/domain"
	"anagram/internal/telemetry"
)

var tracer = otel.Tracer("anagram/internal/lookup")

var (
	lookupsCounter = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "anagram",
		Name:      "lookups_total",
		Help:      "The total number of lookups issued, by backend and outcome.",
	}, []string{"backend", "outcome"})

	lookupDurationHistogram = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace:                       "anagram",
		Name:                            "lookup_duration_ms",
		Help:                            "The latency of a single lookup in milliseconds.",
		Buckets:                         []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000, 5000},
		NativeHistogramBucketFactor:     1.1,
		NativeHistogramMaxBucketNumber:  100,
		NativeHistogramMinResetDuration: time.Hour,
	}, []string{"backend"})
)

// Instrumented records a span, a counter and a latency observation per
// lookup.
type Instrumented struct {
	delegate domain.Lookuper
	backend  string
}

var _ domain.Lookuper = (*Instrumented)(nil)

func NewInstrumented(delegate domain.Lookuper, backend string) *Instrumented {
	return &Instrumented{delegate: delegate, backend: backend}
}

func (i *Instrumented) Lookup(ctx context.Context, word string) (domain.LookupResult, error) {
	ctx, span := tracer.Start(ctx, "lookup.Lookup")
	span.SetAttributes(attribute.String("backend", i.backend), attribute.String("word", word))
	defer span.End()

	start := time.Now()
	res, err := i.delegate.Lookup(ctx, word)
	lookupDurationHistogram.WithLabelValues(i.backend).Observe(float64(time.Since(start).Milliseconds()))

	outcome := res.Membership.String()
	if err != nil {
		outcome = "error"
		telemetry.TraceError(span, err)
	}
	span.SetAttributes(attribute.String("outcome", outcome))
	lookupsCounter.WithLabelValues(i.backend, outcome).Inc()
	return res, err
}
