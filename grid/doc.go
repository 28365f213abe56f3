// Package grid provides a dense, row-major 2-D container over any comparable
// cell type, with bounds-checked spatial queries used by the puzzle solvers.
//
// What:
//
//   - Grid[T] owns Width×Height cells stored as one flat slice, index(x,y) = y*Width + x.
//   - Dimensions are fixed at construction; cells are mutable in place.
//   - Peek, Get and Slide report ErrOutOfBounds instead of wrapping around.
//   - Slide swaps two adjacent cells when one of them holds the "empty" value,
//     which models push and move mechanics; otherwise it reports ErrCollision.
//   - Neighbours lists in-bounds orthogonal neighbours tagged with the heading
//     taken to reach them, always in the order East, South, West, North.
//
// Why:
//
//   - Puzzle maps: parse once, query and mutate cheaply.
//   - Graph building: Neighbours feeds corridor compression and grid BFS.
//
// Complexity:
//
//   - At, Set, Get, Peek, Slide, InBounds: O(1).
//   - Neighbours: O(1) (at most four results).
//   - PlaceAt: O(k) for k points. Find, Count, Each, Clone, Render: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: zero width or height.
//   - ErrDimensionMismatch: len(cells) != width*height.
//   - ErrOutOfBounds: a target position lies outside [0,Width)×[0,Height).
//   - ErrCollision: Slide found neither cell empty.
//
// At and Set panic on out-of-range positions: indexing outside the grid is a
// programming error, not a runtime condition.
package grid
