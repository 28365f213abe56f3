package direction

import "errors"

// ErrUnknownArrow indicates a move arrow outside of ^ > v <.
var ErrUnknownArrow = errors.New("direction: unknown arrow")

// Ortho is one of the four orthogonal compass headings.
type Ortho uint8

const (
	// North points toward row 0.
	North Ortho = iota
	// East points toward increasing x.
	East
	// South points toward increasing y.
	South
	// West points toward x = 0.
	West
)

// orthoCount is the number of Ortho values.
const orthoCount = 4

// Cando is one of the eight cardinal and ordinal compass headings.
type Cando uint8

const (
	N Cando = iota
	NE
	E
	SE
	S
	SW
	W
	NW
)

// candoCount is the number of Cando values.
const candoCount = 8

// orthoDeltas is indexed by Ortho.
var orthoDeltas = [orthoCount][2]int{
	North: {0, -1},
	East:  {1, 0},
	South: {0, 1},
	West:  {-1, 0},
}

// candoDeltas is indexed by Cando.
var candoDeltas = [candoCount][2]int{
	N:  {0, -1},
	NE: {1, -1},
	E:  {1, 0},
	SE: {1, 1},
	S:  {0, 1},
	SW: {-1, 1},
	W:  {-1, 0},
	NW: {-1, -1},
}

var orthoNames = [orthoCount]string{"North", "East", "South", "West"}

var candoNames = [candoCount]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}
