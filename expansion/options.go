// SPDX-License-Identifier: MIT

package expansion

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/mrfgrid/flow"
	"github.com/katalvlaran/mrfgrid/gridgraph"
)

// Option configures a Solver via functional arguments.
// If an Option is invalid (e.g. zero passes), it is recorded internally and
// surfaced as ErrOptionViolation by NewSolver.
type Option func(*Options)

// Options holds parameters and callbacks that customise a Solver.
type Options struct {
	// Ctx allows cancellation between moves and inside the oracle.
	Ctx context.Context

	// Passes is the number of full label cycles; must be > 0.
	Passes int

	// StopWhenStable ends Run early after a pass that changed no pixel.
	StopWhenStable bool

	// Rand drives the per-pass label order.
	Rand *rand.Rand

	// Oracle solves each binary subproblem.
	Oracle Oracle

	// Flow is passed to the Oracle on every call.
	Flow flow.FlowOptions

	// Policy handles negative non-terminal capacities.
	Policy Policy

	// Initial, if non-nil, replaces the observed image as starting labeling.
	// It is copied, never aliased.
	Initial *gridgraph.Labeling

	// OnStep is called after each applied cut. A non-nil error aborts Run.
	OnStep func(StepStats) error

	// Logger receives pass summaries (Info) and per-alpha progress (Debug).
	Logger zerolog.Logger

	// err records the first option violation.
	err error
}

// DefaultOptions returns Options with defaults:
//   - Context.Background()
//   - one pass, no early stop
//   - time-seeded label order
//   - flow.MinCut with flow.DefaultOptions()
//   - PolicyTruncate
//   - no-op hook and logger
func DefaultOptions() Options {
	return Options{
		Ctx:    context.Background(),
		Passes: 1,
		Rand:   rand.New(rand.NewSource(time.Now().UnixNano())),
		Oracle: flow.MinCut,
		Flow:   flow.DefaultOptions(),
		Policy: PolicyTruncate,
		OnStep: func(StepStats) error { return nil },
		Logger: zerolog.Nop(),
	}
}

func (o *Options) violate(format string, args ...interface{}) {
	if o.err == nil {
		o.err = fmt.Errorf("%w: "+format, append([]interface{}{ErrOptionViolation}, args...)...)
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx == nil {
			o.violate("nil context")
			return
		}
		o.Ctx = ctx
	}
}

// WithPasses sets the number of full passes over the label pool.
func WithPasses(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.violate("passes must be positive, got %d", n)
			return
		}
		o.Passes = n
	}
}

// WithStopWhenStable ends Run after the first pass with zero changes.
func WithStopWhenStable(stop bool) Option {
	return func(o *Options) { o.StopWhenStable = stop }
}

// WithSeed makes the label order reproducible.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Rand = rand.New(rand.NewSource(seed)) }
}

// WithRand supplies the random source for the label order.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r == nil {
			o.violate("nil rand")
			return
		}
		o.Rand = r
	}
}

// WithOracle replaces the min-cut oracle.
func WithOracle(fn Oracle) Option {
	return func(o *Options) {
		if fn == nil {
			o.violate("nil oracle")
			return
		}
		o.Oracle = fn
	}
}

// WithFlowOptions sets the options handed to the oracle. Their Ctx is
// always replaced by the Solver's context.
func WithFlowOptions(fo flow.FlowOptions) Option {
	return func(o *Options) { o.Flow = fo }
}

// WithPolicy selects truncation or strict rejection of non-submodular pairs.
func WithPolicy(p Policy) Option {
	return func(o *Options) {
		if p != PolicyTruncate && p != PolicyStrict {
			o.violate("unknown policy %d", int(p))
			return
		}
		o.Policy = p
	}
}

// WithInitial starts from a copy of lab instead of the observed image.
func WithInitial(lab *gridgraph.Labeling) Option {
	return func(o *Options) {
		if lab == nil {
			o.violate("nil initial labeling")
			return
		}
		o.Initial = lab
	}
}

// WithOnStep installs a hook called after every applied cut.
func WithOnStep(fn func(StepStats) error) Option {
	return func(o *Options) {
		if fn == nil {
			o.violate("nil step hook")
			return
		}
		o.OnStep = fn
	}
}

// WithLogger sets the structured logger.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}
