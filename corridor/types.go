package corridor

import (
	"cmp"
	"errors"
	"fmt"

	"github.com/wrightdylan/advent-of-code-2024/direction"
	"github.com/wrightdylan/advent-of-code-2024/grid"
)

// Sentinel errors returned by Build.
var (
	// ErrNilLayout indicates Build received no layout.
	ErrNilLayout = errors.New("corridor: layout is nil")

	// ErrStartIsEnd indicates start and end occupy the same cell.
	ErrStartIsEnd = errors.New("corridor: start and end are the same cell")

	// ErrBadPenalty indicates a negative turn penalty.
	ErrBadPenalty = errors.New("corridor: turn penalty must be non-negative")
)

// Reserved node handles.
const (
	StartNode = 0
	EndNode   = 1
)

// DefaultTurnPenalty is the cost of one 90° turn in the reindeer cost model.
const DefaultTurnPenalty int64 = 1000

// Layout is the walkable surface a Graph is built from.
// Exits must list walkable neighbours in a stable order.
type Layout interface {
	Start() grid.Point
	End() grid.Point
	Exits(p grid.Point) []grid.Neighbour
}

// Node is a start, end or junction cell.
type Node struct {
	ID    int
	Pos   grid.Point
	Exits []grid.Neighbour
}

// EdgeKey identifies an edge independently of discovery order.
// LoDir and HiDir are the headings the corridor leaves Lo and Hi in.
type EdgeKey struct {
	Lo, Hi       int
	LoDir, HiDir direction.Ortho
}

// String formats k as "lo(dir)-hi(dir)".
func (k EdgeKey) String() string {
	return fmt.Sprintf("%d(%s)-%d(%s)", k.Lo, k.LoDir, k.Hi, k.HiDir)
}

// Compare orders keys by Lo, Hi, LoDir, HiDir. It returns -1, 0 or +1.
func (k EdgeKey) Compare(o EdgeKey) int {
	if c := cmp.Compare(k.Lo, o.Lo); c != 0 {
		return c
	}
	if c := cmp.Compare(k.Hi, o.Hi); c != 0 {
		return c
	}
	if c := cmp.Compare(k.LoDir, o.LoDir); c != 0 {
		return c
	}
	return cmp.Compare(k.HiDir, o.HiDir)
}

// NormaliseKey orders the endpoint pair so the lower handle comes first,
// carrying each heading with its node. Self-loops order by heading.
func NormaliseKey(a, b int, da, db direction.Ortho) EdgeKey {
	if a > b || (a == b && da > db) {
		a, b, da, db = b, a, db, da
	}
	return EdgeKey{Lo: a, Hi: b, LoDir: da, HiDir: db}
}

// Edge is a compressed corridor.
type Edge struct {
	Key    EdgeKey
	Weight int64
	// Tiles lists the cells covered, from the discovering node to the far node.
	Tiles []grid.Point
}

// Has reports whether node is an endpoint of e.
func (e *Edge) Has(node int) bool {
	return e.Key.Lo == node || e.Key.Hi == node
}

// Traversal is one way of walking an edge: leave From heading Launch,
// reach To travelling in direction Arrive.
type Traversal struct {
	From   int
	Launch direction.Ortho
	To     int
	Arrive direction.Ortho
}

// Traversals lists the ways to leave node along e: one for an ordinary edge,
// two for a self-loop, none if node is not an endpoint.
func (e *Edge) Traversals(node int) []Traversal {
	k := e.Key
	var out []Traversal
	if k.Lo == node {
		out = append(out, Traversal{From: k.Lo, Launch: k.LoDir, To: k.Hi, Arrive: k.HiDir.Flip()})
	}
	if k.Hi == node {
		out = append(out, Traversal{From: k.Hi, Launch: k.HiDir, To: k.Lo, Arrive: k.LoDir.Flip()})
	}
	return out
}

// Options configures Build.
type Options struct {
	// TurnPenalty is added for each bend inside a corridor. Default 1000.
	TurnPenalty int64

	err error
}

// Option is a functional option for Build.
type Option func(*Options)

// DefaultOptions returns Options with TurnPenalty = DefaultTurnPenalty.
func DefaultOptions() Options {
	return Options{TurnPenalty: DefaultTurnPenalty}
}

// WithTurnPenalty sets the in-corridor bend cost. Negative values surface as
// ErrBadPenalty from Build.
func WithTurnPenalty(p int64) Option {
	return func(o *Options) {
		if p < 0 {
			o.err = fmt.Errorf("%w: %d", ErrBadPenalty, p)
			return
		}
		o.TurnPenalty = p
	}
}
