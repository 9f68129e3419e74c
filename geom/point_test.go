package geom_test

import (
	"math"
	"testing"

	"github.com/eholum/rustplanning/geom"
)

func TestPointEquality(t *testing.T) {
	a := geom.NewPoint(1.5, -2.5)
	b := geom.NewPoint(1.5, -2.5)
	if a != b {
		t.Fatalf("expected equal points, got %v != %v", a, b)
	}
}

func TestPointDistance(t *testing.T) {
	a := geom.NewPoint(0, 0)
	b := geom.NewPoint(3, 4)
	if got := a.Distance(b); got != 5 {
		t.Fatalf("expected distance 5, got %v", got)
	}
}

func TestPointDistanceZeroIffEqual(t *testing.T) {
	a := geom.NewPoint(1, 1)
	b := geom.NewPoint(1, 1)
	c := geom.NewPoint(1, 2)

	if d := a.Distance(b); d != 0 {
		t.Fatalf("expected 0 distance for equal points, got %v", d)
	}
	if d := a.Distance(c); d == 0 {
		t.Fatalf("expected nonzero distance for distinct points")
	}
}

func TestPointExtend(t *testing.T) {
	from := geom.NewPoint(0, 0)
	to := geom.NewPoint(10, 0)

	next := from.Extend(to, 1.0)
	x, y := next.XY()
	if x != 1.0 || y != 0.0 {
		t.Fatalf("expected (1,0), got (%v,%v)", x, y)
	}
}

func TestPointExtendCoincident(t *testing.T) {
	p := geom.NewPoint(5, 5)
	next := p.Extend(p, 1.0)
	if next != p {
		t.Fatalf("extending toward self should return self unchanged")
	}
}

// TestCoordNaNIsComparable verifies the bit-pattern wrapper sidesteps the
// usual "NaN != NaN" footgun: a Coord built from NaN compares equal to
// another Coord built from the identical NaN bit pattern, and Point
// remains usable as a map key even when one coordinate is NaN.
func TestCoordNaNIsComparable(t *testing.T) {
	nan := math.NaN()
	a := geom.NewCoord(nan)
	b := geom.NewCoord(nan)
	if a != b {
		t.Fatalf("expected identical NaN bit patterns to compare equal")
	}

	p := geom.NewPoint(nan, 0)
	m := map[geom.Point]bool{p: true}
	if !m[geom.NewPoint(nan, 0)] {
		t.Fatalf("expected Point with NaN coordinate to be usable as a stable map key")
	}
}
