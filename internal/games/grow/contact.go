package grow

import (
	"github.com/vovakirdan/tui-grow/internal/config"
	"github.com/vovakirdan/tui-grow/internal/core"
)

// Debounce is an elapsed-time counter that rate-limits an event.
type Debounce struct {
	elapsed  float64
	interval float64
}

// NewDebounce creates a debounce that is ready once more than interval seconds passed.
func NewDebounce(interval float64) Debounce {
	return Debounce{interval: interval}
}

// Tick advances the counter.
func (d *Debounce) Tick(dt float64) {
	d.elapsed += dt
}

// Ready reports whether the minimum interval has been exceeded.
func (d *Debounce) Ready() bool {
	return d.elapsed > d.interval
}

// Reset zeroes the counter.
func (d *Debounce) Reset() {
	d.elapsed = 0
}

// GrowthFor returns how much the player grows by absorbing an obstacle of weight w:
// ceil(w / 5).
func GrowthFor(w int) int {
	return (w + 4) / 5
}

// ContactOutcome is what the resolver decided for one tick.
type ContactOutcome struct {
	Died     bool
	Killer   core.EntityID   // The lethal obstacle when Died
	Absorbed []core.EntityID // Obstacles to despawn, in contact order
	Intents  []core.Intent
}

// Resolver decides what the player's contacts mean: growth, death or a wall bounce.
type Resolver struct {
	bounceThreshold float64
	debounce        Debounce
}

// NewResolver creates a resolver from the sound config.
func NewResolver(cfg config.SoundConfig) *Resolver {
	return &Resolver{
		bounceThreshold: cfg.BounceSpeedThreshold,
		debounce:        NewDebounce(cfg.BounceDebounce),
	}
}

// Tick advances the bounce debounce counter.
func (r *Resolver) Tick(dt float64) {
	r.debounce.Tick(dt)
}

// Reset zeroes the bounce debounce counter.
func (r *Resolver) Reset() {
	r.debounce.Reset()
}

// Resolve processes the player's contacts in the order given.
//
// Rules per contacted entity:
//   - Obstacle heavier than the player: death, nothing after it is processed
//   - Any other obstacle: player gains GrowthFor(weight), obstacle is absorbed
//   - Wall: bounce sound if the player is fast enough and the debounce is ready
//   - Anything else (or an ID no longer in the registry): ignored
//
// player.Weight is updated in place. Absorbed obstacles are NOT removed from
// the registry; the caller despawns them together with their bodies.
func (r *Resolver) Resolve(player *Entity, vel core.Vec2, contacts []core.EntityID, reg *Registry) ContactOutcome {
	var out ContactOutcome

	for _, id := range contacts {
		e, ok := reg.Get(id)
		if !ok {
			continue
		}

		switch e.Kind {
		case KindObstacle:
			if e.Weight > player.Weight {
				out.Died = true
				out.Killer = e.ID
				return out
			}

			player.Weight += GrowthFor(e.Weight)
			out.Absorbed = append(out.Absorbed, e.ID)
			out.Intents = append(out.Intents,
				core.ShowWeightIntent{Entity: player.ID, Value: player.Weight},
				core.PlaySoundIntent{Kind: core.SoundAbsorb},
			)

		case KindWall:
			if vel.Len() > r.bounceThreshold && r.debounce.Ready() {
				r.debounce.Reset()
				out.Intents = append(out.Intents, core.PlaySoundIntent{Kind: core.SoundBounce})
			}
		}
	}

	return out
}
