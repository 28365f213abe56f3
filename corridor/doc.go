// Package corridor compresses a walkable grid into a sparse weighted graph
// by collapsing corridors into single edges between junctions.
//
// What:
//
//   - Nodes are the start cell (handle 0), the end cell (handle 1) and every
//     junction: a cell with more than two walkable exits. Further handles are
//     assigned in discovery order and reused when a junction is reached again.
//   - Edges join two node handles. Each end records the heading the corridor
//     leaves that node in, so parallel corridors between the same pair of
//     nodes stay distinct.
//   - Edge weight is the corridor's step count plus the turn penalty for every
//     bend inside the corridor. The step out of the origin node is not part of
//     the weight; a search charges it when it traverses the edge.
//   - Every edge remembers the grid tiles it covers, origin and terminal cells
//     included, so best-path tile coverage can be computed without the grid.
//
// Edge identity:
//
//	EdgeKey{Lo, Hi, LoDir, HiDir} always has Lo ≤ Hi (NormaliseKey), so a
//	corridor discovered from either end maps to the same key.
//
// Algorithm:
//
//	A stack-based walk starts from every exit of the start cell. Each popped
//	cell is either the end (close the corridor at node 1), the start (close at
//	node 0), a junction (close the corridor there, then branch into every
//	unvisited exit with a fresh weight of 0) or a corridor cell (advance into
//	the single forward exit, adding 1 per step and the penalty per turn).
//	A cell with no forward exit is a dead end and emits nothing.
//
// Complexity:
//
//   - Build: O(W×H) cells walked, each at most once per adjacent corridor end.
//   - EdgesWith: O(1) lookup of a precomputed, sorted incidence list.
//
// Errors:
//
//   - ErrNilLayout:  Build was given a nil Layout.
//   - ErrStartIsEnd: start and end share a cell.
//   - ErrBadPenalty: a negative turn penalty was configured.
package corridor
