package geom_test

import (
	"math/rand/v2"
	"testing"

	"github.com/eholum/rustplanning/geom"
)

func TestWorldSampleWithinBounds(t *testing.T) {
	w := geom.NewWorld(10, 20)
	r := rand.New(rand.NewPCG(1, 2))

	for i := 0; i < 100; i++ {
		p := w.Sample(r)
		x, y := p.XY()
		if x < 0 || x > 10 || y < 0 || y > 20 {
			t.Fatalf("sample out of bounds: (%v, %v)", x, y)
		}
	}
}

func TestWorldValid(t *testing.T) {
	w := geom.NewWorld(10, 10, geom.Circle{Center: geom.NewPoint(5, 5), Radius: 2})

	if !w.Valid(geom.NewPoint(0, 0)) {
		t.Fatalf("expected (0,0) to be valid")
	}
	if w.Valid(geom.NewPoint(5, 5)) {
		t.Fatalf("expected obstacle center to be invalid")
	}
	if w.Valid(geom.NewPoint(11, 5)) {
		t.Fatalf("expected out-of-bounds point to be invalid")
	}
}

func TestWorldConnectable(t *testing.T) {
	w := geom.NewWorld(10, 10, geom.Circle{Center: geom.NewPoint(5, 5), Radius: 2})
	connectable := w.Connectable(20.0)

	// Segment passing straight through the obstacle center is rejected.
	if connectable(geom.NewPoint(5, 0), geom.NewPoint(5, 10)) {
		t.Fatalf("expected segment through obstacle to be non-connectable")
	}

	// A short, obstacle-free segment is fine.
	if !connectable(geom.NewPoint(0, 0), geom.NewPoint(1, 1)) {
		t.Fatalf("expected short clear segment to be connectable")
	}

	// Exceeding the step limit is rejected regardless of obstacles.
	shortRange := w.Connectable(1.0)
	if shortRange(geom.NewPoint(0, 0), geom.NewPoint(5, 5)) {
		t.Fatalf("expected over-step-limit segment to be non-connectable")
	}
}
