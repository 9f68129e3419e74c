package planner

// SampleFunc returns a freshly sampled configuration. May be stateful
// (e.g. closing over an RNG).
type SampleFunc[T any] func() T

// ExtendFunc returns a new configuration "closer" to toward than from,
// typically from + step*unit(toward-from). Must be deterministic in its
// arguments.
type ExtendFunc[T any] func(from, toward T) T

// ConnectableFunc reports whether the segment from->to is both
// geometrically reachable (step bound) and collision-free. The planner
// calls this in both directions and never assumes symmetry.
type ConnectableFunc[T any] func(from, to T) bool
