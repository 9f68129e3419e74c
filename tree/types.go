package tree

import "errors"

// Sentinel errors returned by Tree operations. Wrapped with
// github.com/pkg/errors where additional context (the offending value's
// formatted representation) is useful to a caller debugging a failed
// planning run.
var (
	// ErrParentNotFound indicates an operation referenced a parent value
	// that is not present in the tree.
	ErrParentNotFound = errors.New("tree: parent not found")

	// ErrChildAlreadyPresent indicates AddChild was called with a child
	// value that already exists somewhere in the tree.
	ErrChildAlreadyPresent = errors.New("tree: child already present")

	// ErrChildNotFound indicates SetParent referenced a child value that
	// is not present in the tree.
	ErrChildNotFound = errors.New("tree: child not found")

	// ErrCannotReparentRoot indicates SetParent targeted the root node,
	// which has no parent by definition.
	ErrCannotReparentRoot = errors.New("tree: cannot reparent root")

	// ErrNotFound indicates Cost or Path referenced a value that is not
	// present in the tree.
	ErrNotFound = errors.New("tree: value not found")
)

// rootIndex is the fixed slot of the root node. It never moves and is
// never reparented.
const rootIndex = 0

// Value is the capability set a node value must satisfy to live in a
// Tree. Implementations must be cheaply copyable (the tree copies freely)
// and must represent floating-point coordinates through a total-ordered,
// NaN-free wrapper so equality and hashing behave sanely (see the geom
// package for a ready-made example).
type Value[T any] interface {
	comparable
	// Distance returns a non-negative, symmetric measure to other that is
	// zero iff the two values are equal. Triangle inequality is not
	// required but is desirable for RRT* optimality.
	Distance(other T) float64
}

// node is the internal storage record for one tree entry. Children are
// referenced by stable index into Tree.nodes, never by pointer, so the
// tree can grow without invalidating existing references.
type node[T Value[T]] struct {
	value    T
	parent   int  // index into nodes; meaningless when isRoot is true
	isRoot   bool
	cost     float64
	children []int // insertion order preserved
}

// Tree is a generic, index-backed search tree. The zero value is not
// usable; construct one with New.
type Tree[T Value[T]] struct {
	nodes   []node[T]
	indexOf map[T]int // value -> index in nodes, O(1) average lookup
}

// New constructs a Tree containing exactly one node: root, at index 0,
// with no parent and cost 0.
func New[T Value[T]](root T) *Tree[T] {
	t := &Tree[T]{
		nodes:   make([]node[T], 0, 1),
		indexOf: make(map[T]int, 1),
	}
	t.nodes = append(t.nodes, node[T]{value: root, isRoot: true, cost: 0})
	t.indexOf[root] = rootIndex

	return t
}

// Size returns the number of nodes currently in the tree.
func (t *Tree[T]) Size() int {
	return len(t.nodes)
}
