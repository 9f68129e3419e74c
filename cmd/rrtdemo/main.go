// Command rrtdemo drives planner.Plan against a geom.World, the way
// original_source/examples/world_example.rs drives rrtstar against its
// own Rust World type. It is a demonstration harness, not part of the
// library's contract.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"time"

	"go.uber.org/zap"

	"github.com/eholum/rustplanning/geom"
	"github.com/eholum/rustplanning/planner"
)

func main() {
	var (
		startX   = flag.Float64("start-x", 1.0, "start pose x coordinate")
		startY   = flag.Float64("start-y", 1.0, "start pose y coordinate")
		goalX    = flag.Float64("goal-x", 90.0, "goal pose x coordinate")
		goalY    = flag.Float64("goal-y", 90.0, "goal pose y coordinate")
		worldX   = flag.Float64("world-x", 100.0, "world width")
		worldY   = flag.Float64("world-y", 100.0, "world height")
		step     = flag.Float64("step", 1.0, "extension step size")
		radius   = flag.Float64("rewire-radius", 2.5, "RRT* rewire radius")
		maxIter  = flag.Uint64("max-iterations", 100000, "outer-loop iteration budget")
		useStar  = flag.Bool("rrt-star", true, "enable RRT* rewiring")
		useConn  = flag.Bool("rrt-connect", false, "enable RRT-Connect multi-step extension")
		fast     = flag.Bool("fast-return", false, "stop at first goal contact instead of refining cost")
		goalTol  = flag.Float64("goal-tolerance", 3.0, "max distance from goal considered reachable")
		verbose  = flag.Bool("verbose", false, "enable structured per-iteration logging")
		seed     = flag.Uint64("seed", 1, "RNG seed for reproducible sampling")
		deadline = flag.Float64("max-seconds", 0, "wall-clock budget in seconds, 0 disables")
	)
	flag.Parse()

	start := geom.NewPoint(*startX, *startY)
	goal := geom.NewPoint(*goalX, *goalY)

	fmt.Printf("Start pose: (%v, %v)\n", *startX, *startY)
	fmt.Printf("Goal pose: (%v, %v)\n", *goalX, *goalY)

	// A handful of square-ish obstacles, ported to circles since geom.World
	// models discs rather than arbitrary polygons.
	world := geom.NewWorld(*worldX, *worldY,
		geom.Circle{Center: geom.NewPoint(25, 25), Radius: 6},
		geom.Circle{Center: geom.NewPoint(55, 55), Radius: 6},
		geom.Circle{Center: geom.NewPoint(75, 25), Radius: 6},
	)

	rng := rand.New(rand.NewPCG(*seed, *seed+1))
	sample := func() geom.Point { return world.Sample(rng) }
	extend := func(from, to geom.Point) geom.Point { return from.Extend(to, *step) }

	// Two step limits share one connectable function: the tight per-step
	// limit the tree grows by, and the looser goal-tolerance limit Plan
	// uses for its own success check (connectable(goal, lastInserted)).
	stepConnectable := world.Connectable(*step * 1.01)
	goalConnectable := world.Connectable(*goalTol)
	connectable := func(from, to geom.Point) bool {
		if from == goal || to == goal {
			return goalConnectable(from, to)
		}
		return stepConnectable(from, to)
	}

	opts := []planner.Option{
		planner.WithMaxIterations(*maxIter),
		planner.WithFastReturn(*fast),
	}
	if *radius > 0 {
		opts = append(opts, planner.WithRewireRadius(*radius))
	}
	if *useStar {
		opts = append(opts, planner.WithRRTStar(*radius))
	}
	if *useConn {
		opts = append(opts, planner.WithRRTConnect())
	}
	if *deadline > 0 {
		opts = append(opts, planner.WithMaxDuration(*deadline))
	}
	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			log.Fatalf("building logger: %v", err)
		}
		defer logger.Sync()
		opts = append(opts, planner.WithLogger(logger))
	}

	startedAt := time.Now()
	result, err := planner.Plan[geom.Point](start, goal, sample, extend, connectable, opts...)
	elapsed := time.Since(startedAt)

	if err != nil {
		fmt.Printf("planning failed after %v: %v\n", elapsed, err)
		return
	}

	fmt.Printf("Path found in %v (%d nodes explored):\n", elapsed, result.Tree.Size())
	for _, p := range result.Path {
		x, y := p.XY()
		fmt.Printf("(%v, %v)\n", x, y)
	}

	cost, err := result.Tree.Cost(result.Path[len(result.Path)-1])
	if err == nil {
		fmt.Printf("final cost: %v\n", cost)
	}
}
