// Package tree implements a generic, index-backed search tree used by
// sampling-based motion planners: ordered child enumeration, nearest- and
// radius-neighbor queries, path recovery to the root, cumulative-cost
// tracking, and in-place reparenting with cost propagation.
//
// What:
//
//   - Tree[T] stores uniquely-valued nodes keyed by a user type T that is
//     comparable and knows how to compute its own distance to another T.
//   - AddChild grows the tree; SetParent rewires a node onto a new parent
//     and propagates the resulting cost delta through its subtree.
//   - NearestNeighbor / NearestNeighbors perform a linear scan over node
//     storage; optimal spatial indexing is out of scope here, and callers
//     wanting a k-d tree substitute their own index in front of Tree and
//     still get to reuse AddChild/SetParent/Path/IterDepthFirst.
//   - Path reconstructs the root-to-node sequence by walking parent
//     pointers; IterDepthFirst walks the tree pre-order, children visited
//     in insertion order.
//
// Why:
//
//   - RRT, RRT*, and RRT-Connect all grow exactly this shape of structure:
//     a rooted tree of configurations where the hot operations are
//     "nearest point to a sample" and "all points within a radius."
//   - Index-based node storage avoids owning pointers between nodes: every
//     parent/child reference is a stable slice index, never a Go pointer
//     into another Node, so the tree can be freely copied, inspected, and
//     grown without lifetime headaches.
//
// Complexity:
//
//   - AddChild, Cost, Path: O(1) / O(depth).
//   - NearestNeighbor, NearestNeighbors: O(N) linear scan.
//   - SetParent: O(1) for the reparent itself, O(size of rewired subtree)
//     for cost propagation.
//
// Errors (sentinel, wrapped with github.com/pkg/errors for context):
//
//   - ErrParentNotFound   - AddChild/SetParent referenced a parent value
//     not present in the tree.
//   - ErrChildAlreadyPresent - AddChild's child value already exists.
//   - ErrChildNotFound    - SetParent's child value is absent.
//   - ErrCannotReparentRoot - SetParent targeted the root (index 0).
//   - ErrNotFound         - Cost/Path referenced an absent value.
package tree
