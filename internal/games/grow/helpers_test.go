package grow

import (
	"fmt"
	"testing"

	"github.com/vovakirdan/tui-grow/internal/config"
	"github.com/vovakirdan/tui-grow/internal/core"
	"github.com/vovakirdan/tui-grow/internal/physics"
)

const testDT = 1.0 / 60.0

// scriptedPhysics stores bodies without moving them and reports only the
// contacts a test scheduled with touch.
type scriptedPhysics struct {
	bodies   map[core.EntityID]*physics.Body
	gravity  core.Vec2
	next     map[core.EntityID][]core.EntityID
	contacts map[core.EntityID][]core.EntityID
	steps    int
}

func newScriptedPhysics() *scriptedPhysics {
	return &scriptedPhysics{
		bodies:   make(map[core.EntityID]*physics.Body),
		next:     make(map[core.EntityID][]core.EntityID),
		contacts: make(map[core.EntityID][]core.EntityID),
	}
}

func (p *scriptedPhysics) Add(id core.EntityID, b physics.Body) error {
	if _, ok := p.bodies[id]; ok {
		return fmt.Errorf("body %d already exists", id)
	}
	p.bodies[id] = &b
	return nil
}

func (p *scriptedPhysics) Remove(id core.EntityID) {
	delete(p.bodies, id)
}

func (p *scriptedPhysics) Body(id core.EntityID) (*physics.Body, bool) {
	b, ok := p.bodies[id]
	return b, ok
}

func (p *scriptedPhysics) SetGravity(g core.Vec2) {
	p.gravity = g
}

func (p *scriptedPhysics) Step(dt float64) {
	p.steps++
	p.contacts, p.next = p.next, make(map[core.EntityID][]core.EntityID)
}

func (p *scriptedPhysics) Contacts(id core.EntityID) []core.EntityID {
	var out []core.EntityID
	for _, other := range p.contacts[id] {
		if _, ok := p.bodies[other]; ok {
			out = append(out, other)
		}
	}
	return out
}

// touch makes a and b report each other on the next Step.
func (p *scriptedPhysics) touch(a core.EntityID, others ...core.EntityID) {
	p.next[a] = append(p.next[a], others...)
}

// quietConfig is the default config with spawning pushed far out so only
// obstacles a test places exist.
func quietConfig() config.GrowConfig {
	cfg := config.DefaultGrowConfig()
	cfg.Obstacles.SpawnInterval = 1e9
	return cfg
}

func newScriptedSim(t *testing.T) (*Sim, *scriptedPhysics) {
	t.Helper()
	p := newScriptedPhysics()
	s := NewSim(quietConfig(), 1, WithPhysics(p))
	return s, p
}

func frame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

// place adds an obstacle of weight w on top of the player.
func place(s *Sim, w int) core.EntityID {
	return s.spawnObstacle(ObstacleSpec{Weight: w, Pos: core.V(s.cfg.Player.StartX, s.cfg.Player.StartY)})
}

// die ends the round with the player at weight w.
func die(t *testing.T, s *Sim, p *scriptedPhysics, w int) []core.Intent {
	t.Helper()
	s.mustPlayer().Weight = w
	killer := place(s, w+1)
	p.touch(s.playerID, killer)
	intents := s.Step(frame(), testDT)
	if s.State() != StateGameOver {
		t.Fatalf("state = %v after lethal contact, want GameOver", s.State())
	}
	return intents
}

func restart(t *testing.T, s *Sim) []core.Intent {
	t.Helper()
	intents := s.Step(frame(core.ActionRestart), testDT)
	if s.State() != StatePlaying {
		t.Fatalf("state = %v after restart, want Playing", s.State())
	}
	return intents
}

func hasIntent(intents []core.Intent, want core.Intent) bool {
	for _, in := range intents {
		if in == want {
			return true
		}
	}
	return false
}

func labelTexts(s *Sim) []string {
	var out []string
	for _, e := range s.entities.OfKind(KindLabel) {
		out = append(out, e.Text)
	}
	return out
}
