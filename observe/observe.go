// Package observe wraps a scanner so that every scan operation records
// how much work it actually did: scans run, elements visited before the
// scan finished or short-circuited, and whether a match was found.
//
// Two recording backends are provided. Metrics feeds OpenTelemetry
// counter instruments created from a caller-supplied meter. Counter is a
// dependency-free atomic mirror for callers without a metrics pipeline.
// Either or both may be attached; results of the wrapped scans are
// bit-identical to the underlying scanner's.
package observe

import (
	"context"
	"sync/atomic"

	"github.com/lguimbarda/rawslice"
	"go.opentelemetry.io/otel/metric"
)

// Metrics holds the OpenTelemetry instruments fed by instrumented scans.
type Metrics struct {
	scans    metric.Int64Counter
	elements metric.Int64Counter
	matches  metric.Int64Counter
}

// NewMetrics creates the scan instruments on the given meter.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	scans, err := meter.Int64Counter("rawslice.scans",
		metric.WithDescription("count of scan operations"))
	if err != nil {
		return nil, err
	}
	elements, err := meter.Int64Counter("rawslice.elements",
		metric.WithDescription("count of elements visited by scans"))
	if err != nil {
		return nil, err
	}
	matches, err := meter.Int64Counter("rawslice.matches",
		metric.WithDescription("count of scans that short-circuited on a match"))
	if err != nil {
		return nil, err
	}
	return &Metrics{scans: scans, elements: elements, matches: matches}, nil
}

// Counter accumulates the same figures as Metrics without any metrics
// pipeline. Safe to read concurrently while scans are running elsewhere.
type Counter struct {
	scans    atomic.Int64
	elements atomic.Int64
	matches  atomic.Int64
}

// Scans returns the number of scan operations recorded.
func (c *Counter) Scans() int64 { return c.scans.Load() }

// Elements returns the number of elements visited across all scans.
func (c *Counter) Elements() int64 { return c.elements.Load() }

// Matches returns the number of scans that short-circuited on a match.
func (c *Counter) Matches() int64 { return c.matches.Load() }

// Instrumented wraps a Scanner so each scan records to the attached
// backends after it completes. The element count is exact: it is taken
// from the wrapped predicate, so early exits record only what was
// actually visited.
type Instrumented[T any] struct {
	scanner rawslice.Scanner[T]
	metrics *Metrics
	counter *Counter
}

// Instrument attaches recording backends to a scanner. Either backend may
// be nil.
func Instrument[T any](s rawslice.Scanner[T], m *Metrics, c *Counter) Instrumented[T] {
	return Instrumented[T]{scanner: s, metrics: m, counter: c}
}

// Len returns the scanner's remaining length. Not recorded.
func (s Instrumented[T]) Len() int {
	return s.scanner.Len()
}

// All runs the underlying All and records the scan.
func (s Instrumented[T]) All(ctx context.Context, pred func(T) bool) bool {
	var visited int64
	ok := s.scanner.All(func(v T) bool {
		visited++
		return pred(v)
	})
	s.record(ctx, visited, !ok)
	return ok
}

// Any runs the underlying Any and records the scan.
func (s Instrumented[T]) Any(ctx context.Context, pred func(T) bool) bool {
	var visited int64
	ok := s.scanner.Any(func(v T) bool {
		visited++
		return pred(v)
	})
	s.record(ctx, visited, ok)
	return ok
}

// Find runs the underlying Find and records the scan.
func (s Instrumented[T]) Find(ctx context.Context, pred func(T) bool) *T {
	var visited int64
	e := s.scanner.Find(func(v T) bool {
		visited++
		return pred(v)
	})
	s.record(ctx, visited, e != nil)
	return e
}

// Position runs the underlying Position and records the scan.
func (s Instrumented[T]) Position(ctx context.Context, pred func(T) bool) int {
	var visited int64
	i := s.scanner.Position(func(v T) bool {
		visited++
		return pred(v)
	})
	s.record(ctx, visited, i >= 0)
	return i
}

// RPosition runs the underlying RPosition and records the scan.
func (s Instrumented[T]) RPosition(ctx context.Context, pred func(T) bool) int {
	var visited int64
	i := s.scanner.RPosition(func(v T) bool {
		visited++
		return pred(v)
	})
	s.record(ctx, visited, i >= 0)
	return i
}

func (s Instrumented[T]) record(ctx context.Context, visited int64, matched bool) {
	if s.metrics != nil {
		s.metrics.scans.Add(ctx, 1)
		s.metrics.elements.Add(ctx, visited)
		if matched {
			s.metrics.matches.Add(ctx, 1)
		}
	}
	if s.counter != nil {
		s.counter.scans.Add(1)
		s.counter.elements.Add(visited)
		if matched {
			s.counter.matches.Add(1)
		}
	}
}
