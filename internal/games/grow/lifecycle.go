package grow

import (
	"fmt"

	"github.com/vovakirdan/tui-grow/internal/core"
	"github.com/vovakirdan/tui-grow/internal/physics"
)

// State is the game's top-level mode. Exactly one is active at a time.
type State int

const (
	StatePlaying State = iota
	StateGameOver
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StatePlaying:
		return "Playing"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// GameOverView is the data shown on the game over screen.
type GameOverView struct {
	Score         int
	HighScoreText string
	NewHighScore  bool
}

// transition leaves the current state and enters to. Teardown of the old
// state always finishes before the new state creates anything.
func (s *Sim) transition(to State) {
	if to == s.state {
		return
	}
	from := s.state

	switch from {
	case StatePlaying:
		s.exitPlaying()
	case StateGameOver:
		s.exitGameOver()
	}

	s.state = to

	switch to {
	case StatePlaying:
		s.enterPlaying()
	case StateGameOver:
		s.enterGameOver()
	}

	s.logger.Debug("state changed", "from", from, "to", to)
}

// enterPlaying builds a fresh round: walls, one player, reset timers.
func (s *Sim) enterPlaying() {
	s.round++
	s.spawner.Reset()
	s.resolver.Reset()
	s.gravity.Reset()
	s.world.SetGravity(s.gravity.Vector())
	s.score.BeginRound()
	s.gameOver = GameOverView{}

	s.spawnWalls()
	s.spawnPlayer()

	s.logger.Info("round started", "round", s.round)
}

// exitPlaying captures the score and destroys every entity of the round.
func (s *Sim) exitPlaying() {
	player := s.mustPlayer()
	s.score.Capture(player.Weight)
	s.emit(core.PlaySoundIntent{Kind: core.SoundGameOver})

	s.despawnScope(ScopePlaying)
	s.playerID = 0
}

// enterGameOver settles the high score and builds the game over screen.
func (s *Sim) enterGameOver() {
	text, isNew := s.score.Commit()
	s.gameOver = GameOverView{
		Score:         s.score.Current(),
		HighScoreText: text,
		NewHighScore:  isNew,
	}

	for _, line := range []string{
		"Game over",
		fmt.Sprintf("score - %d", s.gameOver.Score),
		text,
	} {
		s.entities.Add(Entity{Kind: KindLabel, Scope: ScopeGameOver, Text: line})
	}

	s.emit(core.ShowGameOverIntent{
		Score:         s.gameOver.Score,
		HighScoreText: text,
		NewHighScore:  isNew,
	})

	s.logger.Info("round over", "round", s.round, "score", s.gameOver.Score, "high", s.score.High())
	if isNew {
		s.logger.Info("new high score", "score", s.score.High())
	}
}

// exitGameOver removes the game over screen.
func (s *Sim) exitGameOver() {
	s.despawnScope(ScopeGameOver)
}

// spawnWalls creates the four static walls centered on the arena edges.
func (s *Sim) spawnWalls() {
	b := s.bounds
	t := s.cfg.Arena.WallThickness
	c := b.Center()

	walls := []struct {
		edge  Edge
		pos   core.Vec2
		shape physics.Shape
	}{
		{EdgeUpper, core.V(c.X, b.Upper), physics.Rectangle(b.Width(), t)},
		{EdgeLower, core.V(c.X, b.Lower), physics.Rectangle(b.Width(), t)},
		{EdgeLeft, core.V(b.Left, c.Y), physics.Rectangle(t, b.Height()+t)},
		{EdgeRight, core.V(b.Right, c.Y), physics.Rectangle(t, b.Height()+t)},
	}

	for _, w := range walls {
		id := s.entities.Add(Entity{Kind: KindWall, Scope: ScopePlaying, Edge: w.edge})
		s.addBody(id, physics.Body{
			Kind:        physics.Static,
			Shape:       w.shape,
			Pos:         w.pos,
			Restitution: s.cfg.Physics.WallRestitution,
		})
	}
}

// spawnPlayer creates the player at its starting position and weight.
func (s *Sim) spawnPlayer() {
	weight := s.cfg.Player.StartingWeight
	s.playerID = s.entities.Add(Entity{Kind: KindPlayer, Scope: ScopePlaying, Weight: weight})

	size := s.sizeOf(weight)
	s.addBody(s.playerID, physics.Body{
		Kind:        physics.Dynamic,
		Shape:       physics.Rectangle(size, size),
		Pos:         core.V(s.cfg.Player.StartX, s.cfg.Player.StartY),
		Restitution: s.cfg.Player.Restitution,
	})

	s.emit(core.ShowWeightIntent{Entity: s.playerID, Value: weight})
}

// despawnScope destroys every entity owned by scope, bodies included.
func (s *Sim) despawnScope(scope Scope) {
	for _, e := range s.entities.InScope(scope) {
		s.despawn(e.ID)
	}
}
