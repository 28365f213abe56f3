package direction

import "fmt"

// AllOrtho returns the four orthogonal headings in declaration order.
func AllOrtho() []Ortho {
	return []Ortho{North, East, South, West}
}

// Valid reports whether d is one of the four declared headings.
func (d Ortho) Valid() bool { return d < orthoCount }

// Flip returns the opposite heading (180°).
func (d Ortho) Flip() Ortho { return (d + 2) % orthoCount }

// TurnLeft rotates d by 90° counter-clockwise.
func (d Ortho) TurnLeft() Ortho { return (d + orthoCount - 1) % orthoCount }

// TurnRight rotates d by 90° clockwise.
func (d Ortho) TurnRight() Ortho { return (d + 1) % orthoCount }

// Delta returns the unit step (dx, dy) for d.
// Panics if d is not Valid.
func (d Ortho) Delta() (dx, dy int) {
	v := orthoDeltas[d]
	return v[0], v[1]
}

// Cando widens d to the eight-way enum.
func (d Ortho) Cando() Cando { return Cando(d * 2) }

// String implements fmt.Stringer.
func (d Ortho) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Ortho(%d)", uint8(d))
	}
	return orthoNames[d]
}

// ParseArrow maps a move arrow (^ > v <) to its heading.
func ParseArrow(r rune) (Ortho, error) {
	switch r {
	case '^':
		return North, nil
	case '>':
		return East, nil
	case 'v':
		return South, nil
	case '<':
		return West, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownArrow, r)
}

// AllCando returns the eight headings clockwise from N.
func AllCando() []Cando {
	return []Cando{N, NE, E, SE, S, SW, W, NW}
}

// Valid reports whether d is one of the eight declared headings.
func (d Cando) Valid() bool { return d < candoCount }

// Flip returns the opposite heading (180°).
func (d Cando) Flip() Cando { return (d + 4) % candoCount }

// TurnLeft rotates d by 90° counter-clockwise.
func (d Cando) TurnLeft() Cando { return (d + candoCount - 2) % candoCount }

// TurnRight rotates d by 90° clockwise.
func (d Cando) TurnRight() Cando { return (d + 2) % candoCount }

// Delta returns the unit step (dx, dy) for d.
// Panics if d is not Valid.
func (d Cando) Delta() (dx, dy int) {
	v := candoDeltas[d]
	return v[0], v[1]
}

// Ortho narrows d to a four-way heading; ok is false for diagonals.
func (d Cando) Ortho() (o Ortho, ok bool) {
	if d%2 != 0 || !d.Valid() {
		return 0, false
	}
	return Ortho(d / 2), true
}

// String implements fmt.Stringer.
func (d Cando) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Cando(%d)", uint8(d))
	}
	return candoNames[d]
}
