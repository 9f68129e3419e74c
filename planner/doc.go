// Package planner drives a tree.Tree[T] through the sample -> extend ->
// insert -> (rewire) -> goal-check loop shared by RRT, RRT*, and
// RRT-Connect. All three algorithms are one Plan entry point, selected by
// Options flags, because they differ only in how a sample gets extended
// toward the tree (single-step vs. multi-step) and whether a successful
// insertion triggers a local rewire pass.
//
// What:
//
//   - Plan(start, goal, sample, extend, connectable, opts) grows a
//     tree.Tree[T] seeded at start, returns the root-to-goal path once the
//     goal is connectable to some tree node (and, with FastReturn, stops
//     the instant that happens; otherwise it keeps refining the tree until
//     a budget is exhausted, which matters for RRT*'s cost improvement).
//   - Options.UseRRTStar enables a radius-neighborhood rewire after every
//     insertion: the optimization that distinguishes RRT* from plain RRT.
//   - Options.UseRRTConnect enables greedy multi-step extension toward
//     each sample instead of a single step.
//
// Why a single entry point: RRT, RRT*, and RRT-Connect share every piece
// of state (the tree) and almost every step of the loop; forking into
// three near-identical functions would only create three copies to keep
// in sync as the extend/rewire logic evolves.
//
// Budgets: MaxIterations bounds the outer loop; MaxDurationSeconds bounds
// wall-clock time, checked once per iteration via an injectable
// clock.Clock (see WithClock) so budget exhaustion is deterministically
// testable without a real sleep.
//
// Concurrency: single-threaded and synchronous; there is no parallel
// search. Blocking happens only inside the caller's sample/extend/
// connectable callbacks and the wall-clock check.
//
// Errors: Plan returns ErrNoPathFound when the budget runs out, and
// ErrBadRewireRadius only when an Option enabled RRT* with a non-positive
// RewireRadius. Per-iteration failures (duplicate insertion, failed
// rewire) are recovered locally, never surfaced, because the randomized
// nature of sampling makes them benign; skipped insertions are logged at
// debug level.
package planner
