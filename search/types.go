// Package search defines the graph abstraction, sentinel errors and functional
// options shared by the shortest-path and traversal engines.
package search

import (
	"context"
	"errors"
	"fmt"
	"iter"

	"golang.org/x/exp/constraints"
)

// Sentinel errors returned by the search engines.
var (
	// ErrPathNotFound is returned when the frontier is exhausted without
	// reaching the end vertex. An end vertex that does not exist in the graph
	// is indistinguishable from an unreachable one.
	ErrPathNotFound = errors.New("search: path not found")

	// ErrCyclicPredecessors is returned by Reconstruct when following
	// predecessor links revisits a vertex.
	ErrCyclicPredecessors = errors.New("search: predecessor chain contains a cycle")

	// ErrExpansionLimit is returned when WithMaxExpansions is set and the
	// search expands more vertices than allowed.
	ErrExpansionLimit = errors.New("search: expansion limit reached")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")
)

// Weight is the set of numeric types usable as edge weights. The zero value
// is the distance of the start vertex to itself.
type Weight interface {
	constraints.Integer | constraints.Float
}

// Graph is an implicit unweighted graph: the neighbors of a vertex are
// generated on demand and never stored by the engines.
type Graph[V comparable] interface {
	Neighbors(v V) iter.Seq[V]
}

// WeightedGraph is an implicit graph whose edges carry a weight.
type WeightedGraph[V comparable, W Weight] interface {
	WeightedNeighbors(v V) iter.Seq2[V, W]
}

// NeighborsFunc adapts an ordinary function to the Graph interface.
type NeighborsFunc[V comparable] func(v V) iter.Seq[V]

// Neighbors calls f(v).
func (f NeighborsFunc[V]) Neighbors(v V) iter.Seq[V] { return f(v) }

// EdgesFunc adapts an ordinary function to the WeightedGraph interface.
type EdgesFunc[V comparable, W Weight] func(v V) iter.Seq2[V, W]

// WeightedNeighbors calls f(v).
func (f EdgesFunc[V, W]) WeightedNeighbors(v V) iter.Seq2[V, W] { return f(v) }

// Unweighted views a weighted graph as an unweighted one by dropping weights.
func Unweighted[V comparable, W Weight](g WeightedGraph[V, W]) Graph[V] {
	return NeighborsFunc[V](func(v V) iter.Seq[V] {
		return func(yield func(V) bool) {
			for n := range g.WeightedNeighbors(v) {
				if !yield(n) {
					return
				}
			}
		}
	})
}

// Stats collects counters about a single search call.
type Stats struct {
	// Expanded is the number of vertices whose edges were generated.
	Expanded int
	// Discovered is the number of distinct vertices ever placed on the frontier,
	// the start vertex included.
	Discovered int
}

// Option configures a search call.
// Invalid options are recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds the tunables of a search call.
type Options struct {
	// Ctx allows cancellation; it is checked once per expansion.
	Ctx context.Context

	// MaxExpansions, if > 0, caps the number of expanded vertices.
	MaxExpansions int

	// Stats, if non-nil, receives the counters of the call.
	Stats *Stats

	err error
}

// DefaultOptions returns Options with a background context, no expansion cap
// and no stats collection.
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		MaxExpansions: 0,
		Stats:         nil,
	}
}

// WithContext sets the context used for cancellation.
// A nil context is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxExpansions caps the number of expanded vertices. Zero disables the cap.
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithStats makes the search record its counters into s.
func WithStats(s *Stats) Option {
	return func(o *Options) {
		o.Stats = s
	}
}

// buildOptions applies opts over the defaults and resets the stats sink.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}
	if o.Stats == nil {
		o.Stats = &Stats{}
	} else {
		*o.Stats = Stats{}
	}

	return o, nil
}

// beforeExpand checks cancellation and the expansion budget, then counts
// one more expansion.
func (o *Options) beforeExpand() error {
	if err := o.Ctx.Err(); err != nil {
		return err
	}
	if o.MaxExpansions > 0 && o.Stats.Expanded >= o.MaxExpansions {
		return fmt.Errorf("%w: %d vertices expanded", ErrExpansionLimit, o.Stats.Expanded)
	}
	o.Stats.Expanded++

	return nil
}
