// Package aoc2024 collects solutions to the grid puzzles of Advent of Code
// 2024, built from small reusable packages.
//
// Layout:
//
//	direction/  compass headings, turns and arrow parsing
//	grid/       dense 2D grids with neighbour walks and sliding
//	bitvec/     MSB-first bit reader over a byte slice
//	maze/       reindeer maze parsing (walls, start, end)
//	corridor/   junction graph built by collapsing maze corridors
//	search/     direction-aware Dijkstra over the junction graph,
//	            optionally keeping every optimal predecessor
//	bestpath/   lowest score and best-path tiles of a maze (day 16)
//	bfs/        generic breadth-first search over grids
//	warehouse/  robot box pushing, single and wide (day 15)
//	memspace/   falling bytes and the first blocking byte (day 18)
//	towels/     towel arrangement counting (day 19)
//	racetrack/  wall-clipping cheats on a race course (day 20)
//	solver/     puzzle registry and a concurrent batch runner
//	config/     YAML batch files
//	cmd/aoc/    command line entry point
//
// Quick start:
//
//	go run ./cmd/aoc solve --day 16 --part 1 input.txt
package aoc2024
