package planner

import "github.com/eholum/rustplanning/tree"

// extendTree finds the tree's nearest point to a fresh sample and attempts
// to extend toward it, either in one step (plain RRT) or greedily in a
// chain of steps (RRT-Connect) until progress stalls or an edge becomes
// invalid.
//
// Returns the ordered sequence of new points to insert (possibly empty,
// meaning the sample produced nothing usable) and the tree anchor they
// should be chained from.
func extendTree[T tree.Value[T]](
	tr *tree.Tree[T],
	sample T,
	extend ExtendFunc[T],
	connectable ConnectableFunc[T],
	useRRTConnect bool,
) ([]T, T) {
	nearest := tr.NearestNeighbor(sample)

	if connectable(nearest, sample) {
		return []T{sample}, nearest
	}

	if !useRRTConnect {
		p := extend(nearest, sample)
		if connectable(nearest, p) {
			return []T{p}, nearest
		}
		return nil, nearest
	}

	// RRT-Connect: keep stepping from current toward sample as long as
	// each step makes progress (strictly reduces distance to sample) and
	// the edge from current to the new point is connectable.
	var path []T
	current := nearest
	d := current.Distance(sample)

	for {
		next := extend(current, sample)
		dNext := next.Distance(sample)

		if dNext >= d || !connectable(current, next) {
			break
		}

		path = append(path, next)
		d = dNext
		current = next

		if connectable(current, sample) {
			path = append(path, sample)
			break
		}
	}

	return path, nearest
}

// rewire reparents any tree node within radius of a just-inserted pivot
// onto pivot whenever doing so lowers that node's cost and the edge is
// connectable.
//
// The radius neighborhood itself comes from tree.NearestNeighbors, but
// its keys are visited in the tree's deterministic depth-first order
// rather than by ranging over the map directly, since Go map iteration
// order is unspecified: ranging over it would make two rewire passes over
// an identical tree touch nodes in different sequences, and a reparent
// mid-pass could perturb which nodes the rest of that same pass sees.
func rewire[T tree.Value[T]](tr *tree.Tree[T], connectable ConnectableFunc[T], pivot T, radius float64) int {
	pivotCost, err := tr.Cost(pivot)
	if err != nil {
		return 0
	}

	neighbors := tr.NearestNeighbors(pivot, radius)

	rewired := 0
	for _, candidate := range tr.IterDepthFirst().Collect() {
		d, inRadius := neighbors[candidate]
		if !inRadius || candidate == pivot {
			continue
		}

		candidateCost, err := tr.Cost(candidate)
		if err != nil {
			continue
		}

		if pivotCost+d < candidateCost && connectable(pivot, candidate) {
			if err := tr.SetParent(pivot, candidate); err == nil {
				rewired++
			}
		}
	}

	return rewired
}
