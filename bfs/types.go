// Package bfs provides tunable options and error definitions
// for breadth‐first shortest-path search over a core.Graph.
package bfs

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/katalvlaran/hopgraph/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*BFSOptions)

// BFSOptions holds parameters to customize BFS execution.
type BFSOptions struct {
	// Ctx allows cancellation and deadlines. It is checked once per dequeue.
	Ctx context.Context

	// MaxDepth, if > 0, stops exploring beyond this many hops; a destination
	// farther away is reported unreachable. 0 disables the limit.
	MaxDepth int

	// Parallelism bounds the concurrent searches run by ShortestPaths.
	Parallelism int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with sane defaults:
//   - Context.Background()
//   - no depth limit (MaxDepth == 0)
//   - Parallelism == GOMAXPROCS
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:         context.Background(),
		MaxDepth:    0,
		Parallelism: runtime.GOMAXPROCS(0),
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0: limit to d hops
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithParallelism bounds how many searches ShortestPaths runs at once.
// n must be positive.
func WithParallelism(n int) Option {
	return func(o *BFSOptions) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: Parallelism must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.Parallelism = n
	}
}

func buildOptions(opts []Option) (BFSOptions, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o, o.err
}

// Result is the outcome of one shortest-path query.
//   - Reachable: false when the destination cannot be reached; not an error.
//   - Distance: hop count of Path, or -1 when unreachable.
//   - Path: source … destination inclusive; nil when unreachable.
//   - Visited: vertices dequeued before the search stopped.
type Result[V comparable] struct {
	Reachable bool
	Distance  int
	Path      []*core.Vertex[V]
	Visited   int
}

// Payloads returns the payload of every vertex on Path, in order.
func (r *Result[V]) Payloads() []V {
	if r.Path == nil {
		return nil
	}
	out := make([]V, len(r.Path))
	for i, v := range r.Path {
		out[i] = v.Payload()
	}
	return out
}

// String renders "distance=N path=[a b c]" or "unreachable".
func (r *Result[V]) String() string {
	if !r.Reachable {
		return "unreachable"
	}
	return fmt.Sprintf("distance=%d path=%v", r.Distance, r.Payloads())
}

// Pair is one (source, destination) query for ShortestPaths.
type Pair[V comparable] struct {
	Source      *core.Vertex[V]
	Destination *core.Vertex[V]
}
