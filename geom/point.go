package geom

import "math"

// Coord is a single planar coordinate, stored as the canonical IEEE-754
// bit pattern of the float64 it represents rather than as a raw float64.
// Two Coord values compare equal iff their underlying bit patterns are
// identical, which sidesteps the NaN-never-equals-itself and
// negative-zero pitfalls of comparing raw floats directly.
type Coord uint64

// NewCoord canonicalizes f into a Coord: negative zero is folded into
// positive zero and every NaN into the single math.NaN() bit pattern.
func NewCoord(f float64) Coord {
	switch {
	case f == 0:
		f = 0
	case math.IsNaN(f):
		f = math.NaN()
	}
	return Coord(math.Float64bits(f))
}

// Float returns the canonical float64 value the Coord represents (equal
// to the value passed to NewCoord, except that -0 reads back as +0).
func (c Coord) Float() float64 {
	return math.Float64frombits(uint64(c))
}

// Point is a 2-D configuration: a comparable, hashable tree.Value[Point]
// implementation suitable for planning over a Euclidean plane.
type Point struct {
	X, Y Coord
}

// NewPoint constructs a Point from ordinary float64 coordinates.
func NewPoint(x, y float64) Point {
	return Point{X: NewCoord(x), Y: NewCoord(y)}
}

// XY returns the point's coordinates as float64, for printing or
// interop with code that wants plain floats.
func (p Point) XY() (float64, float64) {
	return p.X.Float(), p.Y.Float()
}

// Distance returns the Euclidean distance between p and other.
func (p Point) Distance(other Point) float64 {
	dx := p.X.Float() - other.X.Float()
	dy := p.Y.Float() - other.Y.Float()
	return math.Sqrt(dx*dx + dy*dy)
}

// Extend returns the point step units from p toward to, along the
// straight line between them. If p and to coincide, p is returned
// unchanged (there is no direction to step in).
func (p Point) Extend(to Point, step float64) Point {
	dx := to.X.Float() - p.X.Float()
	dy := to.Y.Float() - p.Y.Float()
	length := math.Sqrt(dx*dx + dy*dy)
	if length == 0 {
		return p
	}

	px, py := p.XY()
	return NewPoint(px+dx/length*step, py+dy/length*step)
}
