package grow

import "github.com/vovakirdan/tui-grow/internal/core"

// Mover turns queued direction commands into the player's horizontal velocity.
type Mover struct {
	speed float64
}

// NewMover creates a mover with the given speed constant.
func NewMover(speed float64) Mover {
	return Mover{speed: speed}
}

// Apply returns vel with its X component set from the queued directions.
// Each command overwrites the previous one, so the last queued direction
// wins; pressing both ways in one tick resolves to whichever came last.
// With no commands vel is returned unchanged.
func (m Mover) Apply(vel core.Vec2, dirs []int, dt float64) core.Vec2 {
	for _, d := range dirs {
		vel.X = float64(d) * m.speed * dt
	}
	return vel
}
