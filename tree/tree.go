package tree

import (
	pkgerrors "github.com/pkg/errors"
)

// AddChild appends child to the tree as a new node whose parent is the
// node currently holding parent's value.
//
// Preconditions: parent is in the tree; child is not.
// Postconditions: a new node is appended; its cost is
// cost(parent) + parent.Distance(child); it is appended to the end of
// parent's children sequence.
//
// Complexity: O(1) amortized.
func (t *Tree[T]) AddChild(parent T, child T) error {
	if _, exists := t.indexOf[child]; exists {
		return pkgerrors.Wrapf(ErrChildAlreadyPresent, "value %v", child)
	}

	parentIdx, ok := t.indexOf[parent]
	if !ok {
		return pkgerrors.Wrapf(ErrParentNotFound, "value %v", parent)
	}

	childIdx := len(t.nodes)
	t.nodes = append(t.nodes, node[T]{
		value:  child,
		parent: parentIdx,
		cost:   t.nodes[parentIdx].cost + parent.Distance(child),
	})
	t.indexOf[child] = childIdx
	t.nodes[parentIdx].children = append(t.nodes[parentIdx].children, childIdx)

	return nil
}

// SetParent reparents child onto newParent, recomputing child's cost and
// propagating the resulting cost delta through child's entire subtree via
// breadth-first traversal, so the invariant
// cost(n) = cost(parent(n)) + distance(n, parent(n)) holds for every
// descendant afterward, not just the rewired node itself. This is the
// "option (b)" resolution of the tree's rewire-cost-propagation design
// question: more work per call than updating only child, but it keeps the
// invariant unconditionally true regardless of how SetParent is used.
//
// Calling SetParent when newParent is already child's parent is a no-op
// beyond recomputing (an identical) cost: child is not re-appended to
// newParent's children list.
//
// Fails with ErrParentNotFound, ErrChildNotFound, or ErrCannotReparentRoot.
func (t *Tree[T]) SetParent(newParent T, child T) error {
	childIdx, ok := t.indexOf[child]
	if !ok {
		return pkgerrors.Wrapf(ErrChildNotFound, "value %v", child)
	}
	if childIdx == rootIndex {
		return pkgerrors.Wrapf(ErrCannotReparentRoot, "value %v", child)
	}

	newParentIdx, ok := t.indexOf[newParent]
	if !ok {
		return pkgerrors.Wrapf(ErrParentNotFound, "value %v", newParent)
	}

	oldParentIdx := t.nodes[childIdx].parent
	if oldParentIdx != newParentIdx {
		t.removeChildRef(oldParentIdx, childIdx)
		t.nodes[newParentIdx].children = append(t.nodes[newParentIdx].children, childIdx)
		t.nodes[childIdx].parent = newParentIdx
	}

	delta := t.nodes[newParentIdx].cost + newParent.Distance(child) - t.nodes[childIdx].cost
	t.nodes[childIdx].cost += delta
	t.propagateCost(childIdx, delta)

	return nil
}

// removeChildRef deletes childIdx from parentIdx's children slice,
// preserving the relative order of the remaining children.
func (t *Tree[T]) removeChildRef(parentIdx, childIdx int) {
	children := t.nodes[parentIdx].children
	for i, idx := range children {
		if idx == childIdx {
			t.nodes[parentIdx].children = append(children[:i], children[i+1:]...)
			return
		}
	}
}

// propagateCost adds delta to the cost of every descendant of root
// (root's own new cost must already be set by the caller), visiting the
// subtree breadth-first.
func (t *Tree[T]) propagateCost(root int, delta float64) {
	if delta == 0 {
		return
	}

	queue := append([]int(nil), t.nodes[root].children...)
	for len(queue) > 0 {
		idx := queue[0]
		queue = queue[1:]
		t.nodes[idx].cost += delta
		queue = append(queue, t.nodes[idx].children...)
	}
}

// Cost returns the cumulative distance from the root to value along
// parent pointers. The root's cost is always 0.
func (t *Tree[T]) Cost(value T) (float64, error) {
	idx, ok := t.indexOf[value]
	if !ok {
		return 0, pkgerrors.Wrapf(ErrNotFound, "value %v", value)
	}

	return t.nodes[idx].cost, nil
}

// NearestNeighbor returns the in-tree value minimizing Distance(query, v).
// Ties are broken by encounter order: the first minimal value under
// stable node-storage iteration (insertion order) wins, making the result
// deterministic for a fixed sequence of AddChild calls. Defined only when
// the tree is non-empty, which New guarantees.
func (t *Tree[T]) NearestNeighbor(query T) T {
	best := t.nodes[rootIndex].value
	bestDist := query.Distance(best)

	for i := 1; i < len(t.nodes); i++ {
		candidate := t.nodes[i].value
		d := query.Distance(candidate)
		if d < bestDist {
			bestDist = d
			best = candidate
		}
	}

	return best
}

// NearestNeighbors returns every in-tree value within radius of query,
// mapped to its distance from query. If query itself is in the tree it is
// included with distance 0; callers that need to exclude the query (e.g.
// rewiring) must do so explicitly.
func (t *Tree[T]) NearestNeighbors(query T, radius float64) map[T]float64 {
	out := make(map[T]float64)
	for i := range t.nodes {
		candidate := t.nodes[i].value
		d := query.Distance(candidate)
		if d <= radius {
			out[candidate] = d
		}
	}

	return out
}

// Path walks parent pointers from end to the root and returns the values
// root-first, end inclusive.
func (t *Tree[T]) Path(end T) ([]T, error) {
	idx, ok := t.indexOf[end]
	if !ok {
		return nil, pkgerrors.Wrapf(ErrNotFound, "value %v", end)
	}

	var reversed []T
	for {
		n := &t.nodes[idx]
		reversed = append(reversed, n.value)
		if n.isRoot {
			break
		}
		idx = n.parent
	}

	path := make([]T, len(reversed))
	for i, v := range reversed {
		path[len(reversed)-1-i] = v
	}

	return path, nil
}
