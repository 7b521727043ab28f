package core

import "fmt"

// EntityID identifies a simulation entity. IDs are never reused within a process.
type EntityID uint64

// SoundKind names a sound effect the presentation layer should play.
type SoundKind int

const (
	SoundAbsorb   SoundKind = iota // Player absorbed an obstacle
	SoundBounce                    // Player bounced off a wall
	SoundGameOver                  // Round ended
)

// String returns a human-readable name for the sound.
func (k SoundKind) String() string {
	switch k {
	case SoundAbsorb:
		return "Absorb"
	case SoundBounce:
		return "Bounce"
	case SoundGameOver:
		return "GameOver"
	default:
		return fmt.Sprintf("SoundKind(%d)", int(k))
	}
}

// Intent is an instruction from the simulation to the presentation layer.
// The simulation never renders or plays audio itself; it only emits intents.
type Intent interface {
	intent()
}

// ShowWeightIntent asks the presentation layer to display a new weight for an entity.
type ShowWeightIntent struct {
	Entity EntityID
	Value  int
}

func (ShowWeightIntent) intent() {}

// PlaySoundIntent asks the presentation layer to play a sound effect.
type PlaySoundIntent struct {
	Kind SoundKind
}

func (PlaySoundIntent) intent() {}

// ShowGameOverIntent asks the presentation layer to show the game over screen.
type ShowGameOverIntent struct {
	Score         int
	HighScoreText string
	NewHighScore  bool
}

func (ShowGameOverIntent) intent() {}

// Sounds extracts the sound kinds from a list of intents, preserving order.
func Sounds(intents []Intent) []SoundKind {
	var kinds []SoundKind
	for _, in := range intents {
		if s, ok := in.(PlaySoundIntent); ok {
			kinds = append(kinds, s.Kind)
		}
	}
	return kinds
}
