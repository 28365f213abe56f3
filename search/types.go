package search

import (
	"errors"
	"fmt"
	"math"

	"github.com/wrightdylan/advent-of-code-2024/corridor"
	"github.com/wrightdylan/advent-of-code-2024/direction"
)

// Sentinel errors returned by ShortestPaths.
var (
	// ErrNilGraph indicates that a nil *corridor.Graph was passed.
	ErrNilGraph = errors.New("search: graph is nil")

	// ErrNodeNotFound indicates that Start or End is not a node of the graph.
	ErrNodeNotFound = errors.New("search: node not found in graph")

	// ErrNegativeCost indicates a negative edge weight or policy charge.
	ErrNegativeCost = errors.New("search: negative cost encountered")

	// ErrOptionViolation indicates an invalid option value.
	ErrOptionViolation = errors.New("search: option violation")

	// ErrNoPath indicates that the end node is unreachable. Callers should
	// treat it as a legitimate outcome of the input, not a fault.
	ErrNoPath = errors.New("search: no path to end")
)

// Policy returns the extra cost of launching along launch after entering a
// node travelling in entry. It must not return a negative value.
type Policy func(entry, launch direction.Ortho) int64

// TurnPenalty charges n for any launch that differs from the entry heading.
func TurnPenalty(n int64) Policy {
	return func(entry, launch direction.Ortho) int64 {
		if entry == launch {
			return 0
		}
		return n
	}
}

// Options configures ShortestPaths.
//
// Start, End  – node handles; default corridor.StartNode and corridor.EndNode.
// Heading     – entry direction of the initial state; default East.
// AllPaths    – keep every equal-cost predecessor link; default false.
// StepCost    – charge for stepping out of a node onto an edge; must be ≥ 1.
// Policy      – per-node launch charge; nil means TurnPenalty(g.TurnPenalty()).
// MaxDistance – states farther than this are not explored; default MaxInt64.
type Options struct {
	Start       int
	End         int
	Heading     direction.Ortho
	AllPaths    bool
	StepCost    int64
	Policy      Policy
	MaxDistance int64

	err error
}

// Option represents a functional option for configuring ShortestPaths.
type Option func(*Options)

// DefaultOptions returns the reindeer-maze configuration.
func DefaultOptions() Options {
	return Options{
		Start:       corridor.StartNode,
		End:         corridor.EndNode,
		Heading:     direction.East,
		StepCost:    1,
		MaxDistance: math.MaxInt64,
	}
}

func (o *Options) violate(format string, args ...any) {
	if o.err == nil {
		o.err = fmt.Errorf("%w: "+format, append([]any{ErrOptionViolation}, args...)...)
	}
}

// WithStart sets the start node handle.
func WithStart(id int) Option {
	return func(o *Options) {
		if id < 0 {
			o.violate("start %d", id)
			return
		}
		o.Start = id
	}
}

// WithEnd sets the end node handle.
func WithEnd(id int) Option {
	return func(o *Options) {
		if id < 0 {
			o.violate("end %d", id)
			return
		}
		o.End = id
	}
}

// WithHeading sets the entry direction of the initial state.
func WithHeading(d direction.Ortho) Option {
	return func(o *Options) {
		if !d.Valid() {
			o.violate("heading %d", d)
			return
		}
		o.Heading = d
	}
}

// WithAllPaths records every tied predecessor so all minimal routes survive.
func WithAllPaths() Option {
	return func(o *Options) {
		o.AllPaths = true
	}
}

// WithStepCost sets the charge for entering an edge. Values below 1 are
// rejected: zero-cost transitions would let predecessor links form cycles.
func WithStepCost(c int64) Option {
	return func(o *Options) {
		if c < 1 {
			o.violate("step cost %d", c)
			return
		}
		o.StepCost = c
	}
}

// WithPolicy replaces the turn policy.
func WithPolicy(p Policy) Option {
	return func(o *Options) {
		if p == nil {
			o.violate("nil policy")
			return
		}
		o.Policy = p
	}
}

// WithMaxDistance caps the distance explored.
func WithMaxDistance(m int64) Option {
	return func(o *Options) {
		if m < 0 {
			o.violate("max distance %d", m)
			return
		}
		o.MaxDistance = m
	}
}

// State is a search position: a node and the direction it was entered in.
type State struct {
	Node int
	Dir  direction.Ortho
}

// String formats s as "node/dir".
func (s State) String() string {
	return fmt.Sprintf("%d/%s", s.Node, s.Dir)
}

// link is one predecessor of a state: the state it was relaxed from and the
// exact edge traversed.
type link struct {
	from State
	edge corridor.EdgeKey
}

// Path is one minimal route in forward order. Edges[i] joins Nodes[i] and
// Nodes[i+1].
type Path struct {
	Nodes []int
	Edges []corridor.EdgeKey
	Cost  int64
}
