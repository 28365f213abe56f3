// Package search finds minimum-cost routes through a corridor.Graph where
// the cost of arriving somewhere depends on the direction you arrived in.
//
// What:
//
//	Dijkstra over the expanded state space (node handle, entry direction).
//	Leaving a node along an edge costs
//
//	    StepCost + edge.Weight + Policy(entry, launch)
//
//	where launch is the heading the edge leaves the node in. The default
//	Policy charges the graph's turn penalty whenever launch differs from entry.
//	Launching in the exact reverse of entry is never allowed.
//
// Why:
//
//   - Continuing straight through a junction and turning at it cost
//     differently, so a node-only distance table under-reports.
//   - With WithAllPaths, equal-cost relaxations append a predecessor link
//     instead of being dropped, so every tied route can be recovered.
//
// Result:
//
//   - Distance: the minimal cost from (Start, Heading) to any state at End.
//   - Ends:     every end state reached at exactly Distance.
//   - Paths():  forward-ordered node handles and edge keys of each tied route.
//   - Edges():  the union of edge keys on any tied route, without enumerating.
//
// Complexity:
//
//   - Time:  O((S + T) log S) with S = 4·V states and T = 2·E traversals per
//     direction, using a lazy decrease-key binary heap.
//   - Space: O(S + T) for distances, predecessor lists and heap entries.
//
// Errors (sentinel):
//
//   - ErrNilGraph:        the graph pointer is nil.
//   - ErrNodeNotFound:    Start or End is not a handle in the graph.
//   - ErrNegativeCost:    an edge weight or a policy charge is negative.
//   - ErrOptionViolation: an option received an invalid value.
//   - ErrNoPath:          End cannot be reached within MaxDistance.
package search
