package grow

import "github.com/vovakirdan/tui-grow/internal/core"

// Gravity holds the global gravity vector and flips it on command.
type Gravity struct {
	initial core.Vec2
	vec     core.Vec2
}

// NewGravity creates a gravity controller pointing down with the given magnitude.
func NewGravity(magnitude float64) *Gravity {
	g := core.V(0, -magnitude)
	return &Gravity{initial: g, vec: g}
}

// Flip negates the gravity vector.
func (g *Gravity) Flip() {
	g.vec = g.vec.Neg()
}

// Vector returns the current gravity vector.
func (g *Gravity) Vector() core.Vec2 {
	return g.vec
}

// Inverted reports whether gravity currently points away from its initial direction.
func (g *Gravity) Inverted() bool {
	return g.vec != g.initial
}

// Reset restores the initial direction.
func (g *Gravity) Reset() {
	g.vec = g.initial
}
