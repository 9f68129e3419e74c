// Package geom provides a ready-made 2-D tree.Value[T] implementation
// (Point) and a small rectangular World (bounds plus circular obstacles)
// so the planner package is directly usable without every caller writing
// their own configuration type from scratch.
//
// The planning core itself treats the configuration-space type, sampling,
// and collision checking as external collaborators specified only by
// interface; this package is one concrete, optional implementation of
// those interfaces, ported from the original Rust project's
// examples/world_example.rs (RobotPose/World).
//
// Point wraps float64 coordinates through a canonicalized bit-pattern
// representation so that it is comparable and hashable the way
// tree.Value requires, without suffering the NaN/negative-zero pitfalls
// of comparing raw IEEE-754 floats directly.
package geom
