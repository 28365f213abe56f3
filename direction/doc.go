// Package direction defines the closed compass enums used by the grid and
// graph packages of github.com/wrightdylan/advent-of-code-2024.
//
// What:
//
//   - Ortho: the four orthogonal headings North, East, South, West.
//   - Cando: cardinals and ordinals, eight headings from N clockwise to NW.
//   - Rotation algebra: Flip (180°), TurnLeft and TurnRight (90°).
//   - Delta: the unit step for a heading, with y growing downward
//     (row 0 is the top of a parsed puzzle map).
//
// Every operation is a pure, total function on a valid value.
//
// Invariants (checked by the tests for every value d):
//
//	d.Flip().Flip()               == d
//	d.TurnLeft().TurnRight()      == d
//	d.TurnLeft() applied 4 times  == d
//
// Errors:
//
//   - ErrUnknownArrow: ParseArrow received a rune other than ^ > v <.
package direction
