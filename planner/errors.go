package planner

import "errors"

// Sentinel errors returned by Plan. ErrNoPathFound is wrapped with
// github.com/pkg/errors to carry the iteration count, which helps a
// caller decide whether to retry with larger budgets.
var (
	// ErrNoPathFound indicates the budget (iterations or wall time) was
	// exhausted without the goal becoming connectable to the tree.
	ErrNoPathFound = errors.New("planner: no path found")

	// ErrBadRewireRadius indicates a non-positive RewireRadius with RRT*
	// enabled; the value is required to be > 0. Plan returns it, and
	// WithRRTStar/WithRewireRadius panic with its message.
	ErrBadRewireRadius = errors.New("planner: rewire radius must be positive")
)
