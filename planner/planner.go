package planner

import (
	"github.com/google/uuid"
	pkgerrors "github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/eholum/rustplanning/tree"
)

// Result is what a successful Plan call returns: the root-to-goal path
// (start and goal both inclusive) and the final tree, useful for
// visualization or for RRT* callers who want to keep refining it further.
type Result[T tree.Value[T]] struct {
	Path []T
	Tree *tree.Tree[T]
}

// Plan grows a tree.Tree[T] seeded at start by repeatedly sampling,
// extending the tree toward the sample, and checking whether the result
// connects to goal, until the goal is reachable or a budget is
// exhausted. See the package doc for the shared RRT/RRT*/RRT-Connect
// state machine this implements.
//
// Returns Result with a root-first path from start to goal when the
// final tree contains goal; otherwise an error wrapping ErrNoPathFound.
// Returns ErrBadRewireRadius up front if RRT* is enabled with a
// non-positive RewireRadius.
func Plan[T tree.Value[T]](
	start, goal T,
	sample SampleFunc[T],
	extend ExtendFunc[T],
	connectable ConnectableFunc[T],
	opts ...Option,
) (*Result[T], error) {
	// 1) Build Options from defaults + overrides.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate the one option Plan itself is responsible for checking
	//    (WithRRTStar/WithRewireRadius already validate at construction
	//    time, but a caller can build Options by hand).
	if cfg.UseRRTStar && cfg.RewireRadius <= 0 {
		return nil, ErrBadRewireRadius
	}

	runID := uuid.New()
	logger := cfg.logger.With(zap.String("run_id", runID.String()))

	tr := tree.New(start)
	startedAt := cfg.clock.Now()

	var iteration uint64
	for ; iteration < cfg.MaxIterations; iteration++ {
		if cfg.MaxDurationSeconds > 0 {
			elapsed := cfg.clock.Since(startedAt).Seconds()
			if elapsed > cfg.MaxDurationSeconds {
				logger.Info("budget exhausted: wall-clock limit",
					zap.Uint64("iteration", iteration),
					zap.Float64("elapsed_seconds", elapsed),
				)
				break
			}
		}

		s := sample()
		newPoints, nearest := extendTree(tr, s, extend, connectable, cfg.UseRRTConnect)
		if len(newPoints) == 0 {
			continue
		}

		prev := nearest
		var lastInserted T
		insertedAny := false
		rewiredCount := 0

		for _, p := range newPoints {
			if err := tr.AddChild(prev, p); err != nil {
				// Duplicate or otherwise invalid insertion: skip this
				// point, keep chaining the rest off the unchanged prev.
				logger.Debug("insertion skipped", zap.Error(err))
				continue
			}

			prev = p
			lastInserted = p
			insertedAny = true

			if cfg.UseRRTStar {
				rewiredCount += rewire(tr, connectable, p, cfg.RewireRadius)
			}
		}

		if !insertedAny {
			continue
		}

		goalReached := false
		if connectable(goal, lastInserted) {
			_ = tr.AddChild(lastInserted, goal) // ignore: goal may already be in tree
			goalReached = true
		}

		logger.Debug("iteration complete",
			zap.Uint64("iteration", iteration),
			zap.Int("tree_size", tr.Size()),
			zap.Int("rewired_count", rewiredCount),
			zap.Bool("goal_reached", goalReached),
		)

		if goalReached && cfg.FastReturn {
			break
		}
	}

	path, err := tr.Path(goal)
	if err != nil {
		logger.Info("plan failed: budget exhausted without reaching goal",
			zap.Uint64("iterations_used", iteration),
			zap.Float64("elapsed_seconds", cfg.clock.Since(startedAt).Seconds()),
		)
		return nil, pkgerrors.Wrapf(ErrNoPathFound, "after %d iterations", iteration)
	}

	return &Result[T]{Path: path, Tree: tr}, nil
}
