// Package physics is a small deterministic 2D rigid body world.
// It integrates motion, pushes dynamic bodies out of static ones and
// reports which bodies are touching each step. Games react to the
// contact lists; they never resolve overlaps themselves.
package physics

import (
	"math"

	"github.com/vovakirdan/tui-grow/internal/core"
)

// Kind selects how a body moves.
type Kind int

const (
	Static    Kind = iota // Never moves (walls)
	Dynamic               // Affected by gravity and collision response (player)
	Kinematic             // Moved only by its own velocity, no response (obstacles)
)

// String returns a human-readable name for the body kind.
func (k Kind) String() string {
	switch k {
	case Static:
		return "Static"
	case Dynamic:
		return "Dynamic"
	case Kinematic:
		return "Kinematic"
	default:
		return "Unknown"
	}
}

// ShapeKind selects the collider geometry.
type ShapeKind int

const (
	ShapeRect ShapeKind = iota
	ShapeCircle
)

// Shape is a collider centered on the body position.
type Shape struct {
	Kind ShapeKind
	W, H float64 // Rectangle size
	R    float64 // Circle radius
}

// Rectangle returns a w x h rectangle collider.
func Rectangle(w, h float64) Shape {
	return Shape{Kind: ShapeRect, W: w, H: h}
}

// Circle returns a circle collider with radius r.
func Circle(r float64) Shape {
	return Shape{Kind: ShapeCircle, R: r}
}

// HalfExtents returns half the width and height of the shape's bounding box.
func (s Shape) HalfExtents() (hx, hy float64) {
	if s.Kind == ShapeCircle {
		return s.R, s.R
	}
	return s.W / 2, s.H / 2
}

// Body is a rigid body registered with a World.
type Body struct {
	Kind        Kind
	Shape       Shape
	Pos         core.Vec2 // Center
	Vel         core.Vec2 // Units per second
	Restitution float64   // 0 = no bounce, 1 = perfectly elastic
}

// contactSlop is how far apart two shapes may be and still count as touching.
// Resting contacts end up exactly flush after push-out.
const contactSlop = 0.5

// separation computes how far a must move along normal to stop overlapping b.
// ok is false when the shapes are not touching. depth is zero or negative for
// shapes that touch within contactSlop without overlapping.
func separation(a, b *Body) (normal core.Vec2, depth float64, ok bool) {
	switch {
	case a.Shape.Kind == ShapeCircle && b.Shape.Kind == ShapeCircle:
		return circleCircle(a.Pos, a.Shape.R, b.Pos, b.Shape.R)
	case a.Shape.Kind == ShapeCircle:
		return circleRect(a.Pos, a.Shape.R, b)
	case b.Shape.Kind == ShapeCircle:
		n, d, touching := circleRect(b.Pos, b.Shape.R, a)
		return n.Neg(), d, touching
	default:
		return rectRect(a, b)
	}
}

func rectRect(a, b *Body) (core.Vec2, float64, bool) {
	ahx, ahy := a.Shape.HalfExtents()
	bhx, bhy := b.Shape.HalfExtents()
	dx := a.Pos.X - b.Pos.X
	dy := a.Pos.Y - b.Pos.Y
	px := ahx + bhx - math.Abs(dx)
	py := ahy + bhy - math.Abs(dy)
	if px < -contactSlop || py < -contactSlop {
		return core.Vec2{}, 0, false
	}
	// Push out along the axis of least penetration
	if px < py {
		return core.V(sign(dx), 0), px, true
	}
	return core.V(0, sign(dy)), py, true
}

func circleRect(c core.Vec2, r float64, rect *Body) (core.Vec2, float64, bool) {
	hx, hy := rect.Shape.HalfExtents()
	closest := core.V(
		core.ClampF(c.X, rect.Pos.X-hx, rect.Pos.X+hx),
		core.ClampF(c.Y, rect.Pos.Y-hy, rect.Pos.Y+hy),
	)
	diff := c.Sub(closest)
	dist := diff.Len()
	if dist > r+contactSlop {
		return core.Vec2{}, 0, false
	}
	if dist == 0 {
		// Center inside the rectangle: leave through the nearest face
		dx := c.X - rect.Pos.X
		dy := c.Y - rect.Pos.Y
		px := hx - math.Abs(dx)
		py := hy - math.Abs(dy)
		if px < py {
			return core.V(sign(dx), 0), px + r, true
		}
		return core.V(0, sign(dy)), py + r, true
	}
	return diff.Scale(1 / dist), r - dist, true
}

func circleCircle(a core.Vec2, ar float64, b core.Vec2, br float64) (core.Vec2, float64, bool) {
	diff := a.Sub(b)
	dist := diff.Len()
	if dist > ar+br+contactSlop {
		return core.Vec2{}, 0, false
	}
	if dist == 0 {
		return core.V(0, 1), ar + br, true
	}
	return diff.Scale(1 / dist), ar + br - dist, true
}

func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}
