package grow

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-grow/internal/config"
	"github.com/vovakirdan/tui-grow/internal/core"
	"github.com/vovakirdan/tui-grow/internal/physics"
)

// Physics is the motion collaborator. It integrates bodies and reports contacts;
// the simulation only reacts to what it reports.
type Physics interface {
	Add(id core.EntityID, b physics.Body) error
	Remove(id core.EntityID)
	Body(id core.EntityID) (*physics.Body, bool)
	SetGravity(g core.Vec2)
	Step(dt float64)
	Contacts(id core.EntityID) []core.EntityID
}

// Sim is the simulation context: every piece of mutable game state lives here
// and is threaded through the tick phases in a fixed order.
type Sim struct {
	cfg    config.GrowConfig
	rng    *rand.Rand
	logger *log.Logger

	bounds   Bounds
	world    Physics
	entities *Registry
	spawner  *Spawner
	gravity  *Gravity
	mover    Mover
	resolver *Resolver
	score    *ScoreTracker

	state    State
	playerID core.EntityID
	gameOver GameOverView
	round    int
	tick     uint64

	intents []core.Intent // Raised since the last Step returned
}

// Option customizes a Sim.
type Option func(*Sim)

// WithLogger sets the logger used for round and state events.
func WithLogger(l *log.Logger) Option {
	return func(s *Sim) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithPhysics replaces the default physics world.
func WithPhysics(p Physics) Option {
	return func(s *Sim) {
		if p != nil {
			s.world = p
		}
	}
}

// NewSim creates a simulation seeded with seed and enters the first round.
func NewSim(cfg config.GrowConfig, seed int64, opts ...Option) *Sim {
	bounds := NewBounds(cfg.Arena)
	s := &Sim{
		cfg:      cfg,
		rng:      rand.New(rand.NewSource(seed)),
		logger:   log.New(io.Discard),
		bounds:   bounds,
		entities: NewRegistry(),
		spawner:  NewSpawner(cfg.Obstacles, bounds),
		gravity:  NewGravity(cfg.Physics.Gravity),
		mover:    NewMover(cfg.Player.MoveSpeed),
		resolver: NewResolver(cfg.Sound),
		score:    NewScoreTracker(),
		state:    StatePlaying,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.world == nil {
		s.world = physics.NewWorld(s.gravity.Vector())
	}

	s.enterPlaying()
	return s
}

// Step advances the simulation by dt seconds and returns the intents raised
// since the previous call.
//
// Phases while playing, strictly in this order:
//  1. movement and gravity commands
//  2. physics step (integration and contact detection)
//  3. obstacle spawn, then out-of-bounds despawn
//  4. contact resolution
//  5. state transition if the player died
//
// While the game is over only Restart is honored.
func (s *Sim) Step(in core.InputFrame, dt float64) []core.Intent {
	switch s.state {
	case StatePlaying:
		s.stepPlaying(in, dt)
	case StateGameOver:
		if in.Has(core.ActionRestart) {
			s.transition(StatePlaying)
		}
	}
	return s.flush()
}

func (s *Sim) stepPlaying(in core.InputFrame, dt float64) {
	s.tick++
	s.resolver.Tick(dt)

	if dirs := in.Directions(); len(dirs) > 0 {
		body := s.mustBody(s.playerID)
		body.Vel = s.mover.Apply(body.Vel, dirs, dt)
	}
	if in.Has(core.ActionFlipGravity) {
		s.gravity.Flip()
		s.world.SetGravity(s.gravity.Vector())
		s.logger.Debug("gravity flipped", "gravity", s.gravity.Vector())
	}

	s.world.Step(dt)

	for _, spec := range s.spawner.Tick(dt, s.rng) {
		s.spawnObstacle(spec)
	}
	s.despawnOutOfBounds()

	if s.resolveContacts() {
		s.transition(StateGameOver)
	}
}

// spawnObstacle registers a new obstacle and its kinematic body.
func (s *Sim) spawnObstacle(spec ObstacleSpec) core.EntityID {
	id := s.entities.Add(Entity{Kind: KindObstacle, Scope: ScopePlaying, Weight: spec.Weight})
	s.addBody(id, physics.Body{
		Kind:  physics.Kinematic,
		Shape: physics.Circle(s.sizeOf(spec.Weight) / 2),
		Pos:   spec.Pos,
		Vel:   spec.Vel,
	})
	return id
}

// despawnOutOfBounds removes obstacles that left the playfield.
func (s *Sim) despawnOutOfBounds() {
	for _, e := range s.entities.OfKind(KindObstacle) {
		body := s.mustBody(e.ID)
		if s.bounds.IsOutside(body.Pos) {
			s.despawn(e.ID)
		}
	}
}

// resolveContacts applies the resolver's decisions and reports a death.
func (s *Sim) resolveContacts() bool {
	player := s.mustPlayer()
	body := s.mustBody(player.ID)

	out := s.resolver.Resolve(player, body.Vel, s.world.Contacts(player.ID), s.entities)
	for _, id := range out.Absorbed {
		s.despawn(id)
	}
	if len(out.Absorbed) > 0 {
		size := s.sizeOf(player.Weight)
		body.Shape = physics.Rectangle(size, size)
	}
	s.emit(out.Intents...)

	return out.Died
}

// sizeOf returns the visual and collision size for a weight.
func (s *Sim) sizeOf(weight int) float64 {
	return float64(weight) * s.cfg.Player.SizeFactor
}

func (s *Sim) addBody(id core.EntityID, b physics.Body) {
	if err := s.world.Add(id, b); err != nil {
		panic(fmt.Sprintf("grow: %v", err))
	}
}

// despawn removes an entity and, if it has one, its body.
func (s *Sim) despawn(id core.EntityID) {
	e, ok := s.entities.Get(id)
	if !ok {
		return
	}
	if e.Physical() {
		s.world.Remove(id)
	}
	s.entities.Remove(id)
}

// mustPlayer returns the player entity. A missing player while playing
// means the state machine is broken, so it panics.
func (s *Sim) mustPlayer() *Entity {
	e, ok := s.entities.Get(s.playerID)
	if !ok || e.Kind != KindPlayer {
		panic("grow: no player entity while playing")
	}
	return e
}

func (s *Sim) mustBody(id core.EntityID) *physics.Body {
	b, ok := s.world.Body(id)
	if !ok {
		panic(fmt.Sprintf("grow: entity %d has no body", id))
	}
	return b
}

func (s *Sim) emit(intents ...core.Intent) {
	s.intents = append(s.intents, intents...)
}

func (s *Sim) flush() []core.Intent {
	out := s.intents
	s.intents = nil
	return out
}

// State returns the active game state.
func (s *Sim) State() State {
	return s.state
}

// Round returns the 1-based number of the current or last round.
func (s *Sim) Round() int {
	return s.round
}

// Weight returns the player's weight, or 0 when no round is being played.
func (s *Sim) Weight() int {
	if s.state != StatePlaying {
		return 0
	}
	return s.mustPlayer().Weight
}

// Score returns the tracker's current and high scores.
func (s *Sim) Score() (current, high int) {
	return s.score.Current(), s.score.High()
}

// GameOver returns the game over screen data of the last finished round.
func (s *Sim) GameOver() GameOverView {
	return s.gameOver
}

// GravityInverted reports whether gravity currently points up.
func (s *Sim) GravityInverted() bool {
	return s.gravity.Inverted()
}
