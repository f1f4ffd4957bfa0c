package cycle

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/logindomarcio/permuta-magis-v3/preference"
)

// Supported cycle lengths.
const (
	MinLength = 2
	MaxLength = 4
)

var (
	// ErrInvalidLength is returned when the requested cycle length is outside [MinLength, MaxLength].
	ErrInvalidLength = errors.New("cycle: length must be 2, 3 or 4")

	// ErrBudgetExceeded is returned when more candidates than allowed by WithMaxCandidates were examined.
	ErrBudgetExceeded = errors.New("cycle: candidate budget exceeded")
)

// invalidLength reports k as ErrInvalidLength.
func invalidLength(k int) error {
	return fmt.Errorf("%w: k=%d", ErrInvalidLength, k)
}

// Leg is one position of a cycle: the participant and where they go.
type Leg struct {
	// Participant is the record at this position.
	Participant preference.Record

	// Destination is the location the participant moves to, which is the current
	// location of the next participant in the cycle.
	Destination string

	// Rank is the desire slot (1 = most preferred) that names Destination.
	Rank int
}

// Cycle is a closed exchange: Legs[i].Participant moves to the location of
// Legs[(i+1)%len(Legs)].Participant. Cycles are values built fresh per query.
type Cycle struct {
	Legs []Leg
}

// Len returns the number of participants in the cycle.
func (c Cycle) Len() int { return len(c.Legs) }

// Participants returns the records in cycle order.
func (c Cycle) Participants() []preference.Record {
	out := make([]preference.Record, len(c.Legs))
	for i, l := range c.Legs {
		out[i] = l.Participant
	}

	return out
}

// Key returns a rotation-invariant signature of the participants: the record IDs
// joined with commas, rotated so that the smallest ID comes first. Two cycles
// with the same Key are the same real-world exchange.
//
// Complexity: O(k).
func (c Cycle) Key() string {
	k := len(c.Legs)
	if k == 0 {
		return ""
	}
	start := 0
	for i := 1; i < k; i++ {
		if c.Legs[i].Participant.ID < c.Legs[start].Participant.ID {
			start = i
		}
	}
	parts := make([]string, k)
	for i := 0; i < k; i++ {
		parts[i] = strconv.Itoa(c.Legs[(start+i)%k].Participant.ID)
	}

	return strings.Join(parts, ",")
}

// Option configures optional behavior of FindAll and FindFor.
type Option func(*Options)

// Options holds configurable parameters of a query.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// MaxCandidates, if positive, bounds the number of candidate extensions
	// examined; exceeding it aborts the query with ErrBudgetExceeded.
	MaxCandidates int

	// OnCycle, if non-nil, is invoked for every cycle as soon as it is found.
	// Returning an error aborts the query with that error.
	OnCycle func(Cycle) error
}

// DefaultOptions returns Options with a background context, no budget and no hook.
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		MaxCandidates: 0,
		OnCycle:       nil,
	}
}

// WithContext sets the Context checked while searching.
// Passing a nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxCandidates bounds the search; n <= 0 means unlimited.
func WithMaxCandidates(n int) Option {
	return func(o *Options) {
		o.MaxCandidates = n
	}
}

// WithOnCycle installs a streaming hook called for every emitted cycle.
func WithOnCycle(fn func(Cycle) error) Option {
	return func(o *Options) {
		o.OnCycle = fn
	}
}

// ValidLength reports whether k is a supported cycle length.
func ValidLength(k int) bool { return k >= MinLength && k <= MaxLength }
