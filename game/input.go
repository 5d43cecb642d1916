package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Keyboard translates raw key state into reducer events. Movement keys are
// edge-filtered: a Move event is emitted only when the resolved velocity
// actually changes, so holding a key does not flood the stream.
type Keyboard struct {
	velocity float64
}

// Poll reads the keyboard and returns the events for this frame, in the
// order they should be folded. Restart is only offered once the game is
// over; the reducer would accept it any time, but mid-game restarts from a
// stray keypress are unkind.
func (k *Keyboard) Poll(gameOver bool) []Event {
	var events []Event

	if gameOver && inpututil.IsKeyJustPressed(ebiten.KeyR) {
		events = append(events, Restart{})
		k.velocity = 0
		return events
	}

	left := ebiten.IsKeyPressed(ebiten.KeyLeft) || ebiten.IsKeyPressed(ebiten.KeyA)
	right := ebiten.IsKeyPressed(ebiten.KeyRight) || ebiten.IsKeyPressed(ebiten.KeyD)

	v := 0.0
	switch {
	case left && !right:
		v = -1
	case right && !left:
		v = 1
	}
	if v != k.velocity {
		k.velocity = v
		events = append(events, Move{Velocity: v})
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		events = append(events, Shoot{})
	}

	return events
}
