package geom

import "math/rand/v2"

// Circle is a disc obstacle: points inside it or on its boundary are
// invalid.
type Circle struct {
	Center Point
	Radius float64
}

// contains reports whether p lies within (or on) the circle.
func (c Circle) contains(p Point) bool {
	return c.Center.Distance(p) <= c.Radius
}

// World is a rectangular 2-D planning arena with disc obstacles, ported
// from the original Rust project's examples/world_example.rs (RobotPose,
// World). It supplies the sample/connectable collaborators the planning
// core leaves external to itself.
type World struct {
	MaxX, MaxY float64
	Obstacles  []Circle
}

// NewWorld constructs a World with the given bounds and obstacles.
func NewWorld(maxX, maxY float64, obstacles ...Circle) *World {
	return &World{MaxX: maxX, MaxY: maxY, Obstacles: obstacles}
}

// Sample returns a uniformly random point within the world's bounds.
// Suitable as a planner.SampleFunc[Point] once bound to a *rand.Rand.
func (w *World) Sample(r *rand.Rand) Point {
	x := r.Float64() * w.MaxX
	y := r.Float64() * w.MaxY
	return NewPoint(x, y)
}

// Valid reports whether p lies within bounds and outside every obstacle.
func (w *World) Valid(p Point) bool {
	x, y := p.XY()
	if x < 0 || x > w.MaxX || y < 0 || y > w.MaxY {
		return false
	}
	for _, obstacle := range w.Obstacles {
		if obstacle.contains(p) {
			return false
		}
	}
	return true
}

// Connectable reports whether the straight segment from->to is within
// stepLimit and collision-free: both endpoints valid, and the segment
// does not pass through any obstacle. The result is a planner.ConnectableFunc
// combining reachability and collision-freedom into the single check the
// planner expects.
func (w *World) Connectable(stepLimit float64) func(from, to Point) bool {
	return func(from, to Point) bool {
		if from.Distance(to) > stepLimit {
			return false
		}
		if !w.Valid(from) || !w.Valid(to) {
			return false
		}
		for _, obstacle := range w.Obstacles {
			if segmentIntersectsCircle(from, to, obstacle) {
				return false
			}
		}
		return true
	}
}

// segmentIntersectsCircle reports whether the segment a-b comes within
// the circle's radius of its center, using the standard closest-point-on-
// segment projection.
func segmentIntersectsCircle(a, b Point, c Circle) bool {
	ax, ay := a.XY()
	bx, by := b.XY()
	cx, cy := c.Center.XY()

	dx, dy := bx-ax, by-ay
	lengthSq := dx*dx + dy*dy
	if lengthSq == 0 {
		return c.contains(a)
	}

	t := ((cx-ax)*dx + (cy-ay)*dy) / lengthSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}

	closest := NewPoint(ax+t*dx, ay+t*dy)
	return closest.Distance(c.Center) <= c.Radius
}
