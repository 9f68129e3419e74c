package planner

import (
	"github.com/benbjohnson/clock"
	"go.uber.org/zap"
)

// Options configures a single Plan call.
//
//   - UseRRTStar:    enable radius-neighbor rewiring after each insertion.
//   - UseRRTConnect: enable multi-step extension toward each sample.
//   - RewireRadius:  radius for the RRT* neighborhood query, and (when
//     RRT-Connect is disabled) the effective step limit enforced by the
//     caller's own connectable function. Must be > 0.
//   - MaxIterations: upper bound on outer-loop iterations.
//   - MaxDurationSeconds: wall-clock budget measured from Plan's entry.
//   - FastReturn: if true, stop the first time the goal becomes
//     reachable from the tree; if false, keep iterating until a budget
//     expires, letting RRT* keep improving cost after first contact.
type Options struct {
	UseRRTStar         bool
	UseRRTConnect      bool
	RewireRadius       float64
	MaxIterations      uint64
	MaxDurationSeconds float64
	FastReturn         bool

	logger *zap.Logger
	clock  clock.Clock
}

// Option is a functional option mutating Options before a Plan call.
type Option func(*Options)

// DefaultOptions returns an Options value with conservative defaults:
// plain RRT (no star, no connect), a generous iteration budget, no time
// limit, and FastReturn enabled. Override with the With* functions.
func DefaultOptions() Options {
	return Options{
		UseRRTStar:         false,
		UseRRTConnect:      false,
		RewireRadius:       1.0,
		MaxIterations:      10000,
		MaxDurationSeconds: 0, // 0 means "no wall-clock limit"
		FastReturn:         true,
		logger:             zap.NewNop(),
		clock:              clock.New(),
	}
}

// WithRRTStar enables RRT* rewiring with the given neighborhood radius.
// Panics if radius is not strictly positive, matching the teacher's
// convention of failing Option construction eagerly on invalid input
// rather than deferring to a runtime error deep in Plan.
func WithRRTStar(radius float64) Option {
	if radius <= 0 {
		panic(ErrBadRewireRadius.Error())
	}
	return func(o *Options) {
		o.UseRRTStar = true
		o.RewireRadius = radius
	}
}

// WithRRTConnect enables greedy multi-step extension toward each sample.
func WithRRTConnect() Option {
	return func(o *Options) {
		o.UseRRTConnect = true
	}
}

// WithRewireRadius sets RewireRadius directly, independent of
// WithRRTStar. Useful when RRT-Connect is disabled and the radius value
// doubles as the effective step limit. Panics if radius is
// not strictly positive.
func WithRewireRadius(radius float64) Option {
	if radius <= 0 {
		panic(ErrBadRewireRadius.Error())
	}
	return func(o *Options) {
		o.RewireRadius = radius
	}
}

// WithMaxIterations sets the outer-loop iteration budget.
func WithMaxIterations(n uint64) Option {
	return func(o *Options) {
		o.MaxIterations = n
	}
}

// WithMaxDuration sets the wall-clock budget in seconds, measured from
// Plan's entry. A value of 0 disables the wall-clock check entirely.
func WithMaxDuration(seconds float64) Option {
	return func(o *Options) {
		o.MaxDurationSeconds = seconds
	}
}

// WithFastReturn controls whether Plan stops at first goal contact
// (true, the default) or keeps iterating to exhaustion so RRT* can keep
// improving the goal's cost (false).
func WithFastReturn(fast bool) Option {
	return func(o *Options) {
		o.FastReturn = fast
	}
}

// WithLogger attaches a *zap.Logger for per-iteration diagnostics. The
// default is a no-op logger, so Plan is silent unless a caller opts in.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithClock overrides the clock.Clock used to enforce MaxDurationSeconds.
// Intended for tests (clock.NewMock()); production callers never need
// this.
func WithClock(c clock.Clock) Option {
	return func(o *Options) {
		if c != nil {
			o.clock = c
		}
	}
}
