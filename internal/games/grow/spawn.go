package grow

import (
	"math/rand"

	"github.com/vovakirdan/tui-grow/internal/config"
	"github.com/vovakirdan/tui-grow/internal/core"
)

// ObstacleSpec describes an obstacle to be created by the simulation.
type ObstacleSpec struct {
	Weight int
	Pos    core.Vec2
	Vel    core.Vec2
}

// Spawner emits obstacles on a repeating timer. Each obstacle starts on a
// random edge and heads toward a random point on a different edge, so it
// crosses the field instead of sliding along a wall.
type Spawner struct {
	interval  float64
	elapsed   float64
	minWeight int // inclusive
	maxWeight int // exclusive
	speed     float64
	bounds    Bounds
}

// NewSpawner creates a spawner for the given obstacle config and playfield.
func NewSpawner(cfg config.ObstacleConfig, bounds Bounds) *Spawner {
	return &Spawner{
		interval:  cfg.SpawnInterval,
		minWeight: cfg.MinWeight,
		maxWeight: cfg.MaxWeight,
		speed:     cfg.Speed,
		bounds:    bounds,
	}
}

// Reset restarts the countdown.
func (s *Spawner) Reset() {
	s.elapsed = 0
}

// Tick advances the timer by dt and returns one obstacle per completed interval.
func (s *Spawner) Tick(dt float64, rng *rand.Rand) []ObstacleSpec {
	s.elapsed += dt

	var specs []ObstacleSpec
	for s.elapsed >= s.interval {
		s.elapsed -= s.interval
		specs = append(specs, s.Next(rng))
	}
	return specs
}

// Next draws a single obstacle regardless of the timer.
func (s *Spawner) Next(rng *rand.Rand) ObstacleSpec {
	weight := s.minWeight + rng.Intn(s.maxWeight-s.minWeight)

	from := RandomEdge(rng)
	to := RandomOtherEdge(from, rng)
	start := s.bounds.RandomPointOnEdge(from, rng)

	// Adjacent edges meet at corners; redraw the target on the rare
	// chance both points land on the same corner.
	dir := s.bounds.RandomPointOnEdge(to, rng).Sub(start).Normalize()
	for dir == (core.Vec2{}) {
		dir = s.bounds.RandomPointOnEdge(to, rng).Sub(start).Normalize()
	}

	return ObstacleSpec{
		Weight: weight,
		Pos:    start,
		Vel:    dir.Scale(s.speed),
	}
}
