package grow

import (
	"math/rand"

	"github.com/vovakirdan/tui-grow/internal/config"
	"github.com/vovakirdan/tui-grow/internal/core"
)

// Edge is one side of the rectangular playfield.
type Edge int

const (
	EdgeUpper Edge = iota
	EdgeLower
	EdgeLeft
	EdgeRight
)

// Edges lists every edge in a fixed order.
var Edges = [4]Edge{EdgeUpper, EdgeLower, EdgeLeft, EdgeRight}

// String returns a human-readable name for the edge.
func (e Edge) String() string {
	switch e {
	case EdgeUpper:
		return "Upper"
	case EdgeLower:
		return "Lower"
	case EdgeLeft:
		return "Left"
	case EdgeRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// Horizontal reports whether the edge runs along the x axis.
func (e Edge) Horizontal() bool {
	return e == EdgeUpper || e == EdgeLower
}

// Bounds is the playfield rectangle in world units. The world is y-up,
// so Upper > Lower and Right > Left.
type Bounds struct {
	Upper, Lower, Left, Right float64
}

// NewBounds builds the playfield from the arena config.
func NewBounds(cfg config.ArenaConfig) Bounds {
	return Bounds{
		Upper: cfg.Upper,
		Lower: cfg.Lower,
		Left:  cfg.Left,
		Right: cfg.Right,
	}
}

// Value returns the fixed coordinate of an edge.
func (b Bounds) Value(e Edge) float64 {
	switch e {
	case EdgeUpper:
		return b.Upper
	case EdgeLower:
		return b.Lower
	case EdgeLeft:
		return b.Left
	default:
		return b.Right
	}
}

// Width returns the horizontal extent of the playfield.
func (b Bounds) Width() float64 {
	return b.Right - b.Left
}

// Height returns the vertical extent of the playfield.
func (b Bounds) Height() float64 {
	return b.Upper - b.Lower
}

// Center returns the middle of the playfield.
func (b Bounds) Center() core.Vec2 {
	return core.V((b.Left+b.Right)/2, (b.Lower+b.Upper)/2)
}

// IsOutside reports whether p lies strictly beyond any edge.
// Points exactly on an edge are inside, which keeps freshly spawned
// obstacles (placed on an edge) alive.
func (b Bounds) IsOutside(p core.Vec2) bool {
	return p.X < b.Left ||
		p.X > b.Right ||
		p.Y > b.Upper ||
		p.Y < b.Lower
}

// RandomPointOnEdge returns a point on edge e, uniform over the free axis
// in [min, max), with the edge's fixed axis held constant.
func (b Bounds) RandomPointOnEdge(e Edge, rng *rand.Rand) core.Vec2 {
	if e.Horizontal() {
		return core.V(b.Left+rng.Float64()*b.Width(), b.Value(e))
	}
	return core.V(b.Value(e), b.Lower+rng.Float64()*b.Height())
}

// RandomEdge picks one of the four edges uniformly.
func RandomEdge(rng *rand.Rand) Edge {
	return Edges[rng.Intn(len(Edges))]
}

// RandomOtherEdge picks uniformly among the three edges other than excluding.
func RandomOtherEdge(excluding Edge, rng *rand.Rand) Edge {
	others := make([]Edge, 0, len(Edges)-1)
	for _, e := range Edges {
		if e != excluding {
			others = append(others, e)
		}
	}
	return others[rng.Intn(len(others))]
}
