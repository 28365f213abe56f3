// Package bfs provides breadth-first search over a grid.Grid, returning
// unweighted step distances, parent links, and visit order.
//
// What
//
//   - Explore passable cells in non-decreasing step count from a start cell,
//     moving only orthogonally.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: map from cell → steps from start
//   - Parent: map from cell → its predecessor in the BFS tree
//   - Hooks: OnEnqueue (before a cell is enqueued) and OnVisit (when
//     visiting; may abort with an error).
//   - WithFilterStep vetoes individual moves; WithMaxDepth caps the depth;
//     WithTarget stops as soon as a given cell is visited.
//
// Determinism
//
//	Neighbours are enqueued East, South, West, North, so the visit sequence
//	and the parent tree are fully reproducible.
//
// Complexity (N = width × height)
//
//   - Time:   O(N)
//   - Memory: O(N) for the queue, Depth map and Parent map.
//
// Errors
//
//   - ErrGridNil           if the grid pointer is nil.
//   - ErrStartOutOfBounds  if the start cell is outside the grid.
//   - ErrStartBlocked      if the start cell is not passable.
//   - ErrOptionViolation   for an invalid Option or a nil predicate.
//   - ErrUnreachable       from Result.PathTo for a cell never reached.
//   - Context errors and wrapped OnVisit hook errors.
package bfs
