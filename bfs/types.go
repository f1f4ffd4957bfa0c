package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartVertexNotFound is returned when the start ID is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// An invalid Option (e.g. negative depth) is recorded and surfaced as
// ErrOptionViolation when the search starts.
type Option func(*Options)

// Options holds the parameters of one search.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// MaxDepth, if > 0, stops exploring beyond this depth.
	MaxDepth int

	err error
}

// DefaultOptions returns Options with a background context and no depth limit.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth limits the search to vertices at most d hops away.
//
//	d > 0: limit to depth d
//	d == 0: no limit
//	d < 0: ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// Result holds the outcome of a traversal.
type Result struct {
	// Order lists reached vertices in visit sequence.
	Order []string

	// Depth maps a reached vertex to its hop count from the start.
	Depth map[string]int
}
