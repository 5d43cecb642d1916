package game

import (
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Game adapts the pure reducer to ebiten's fixed-rate loop. It owns the
// single current snapshot, the logical tick counter and the random source
// for enemy fire; everything else flows one way, keyboard to events to
// snapshot to screen.
type Game struct {
	config   Config
	state    State
	keyboard *Keyboard
	renderer *Renderer
	rng      *rand.Rand

	// elapsed counts logical ticks, one per Update call
	elapsed int
}

// NewGame creates a new game instance
func NewGame(config Config) *Game {
	return &Game{
		config:   config,
		state:    NewState(),
		keyboard: &Keyboard{},
		renderer: NewRenderer(),
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Update folds this frame's input events and one Tick through the reducer.
// ebiten's fixed 60 TPS supplies the constant logical tick rate the engine
// assumes.
func (g *Game) Update() error {
	for _, ev := range g.keyboard.Poll(g.state.GameOver) {
		g.apply(ev)
	}
	g.apply(Tick{Elapsed: g.elapsed})
	g.elapsed++
	return nil
}

// apply advances the snapshot by one event and fires sound effects off the
// transition. The engine never hears about the sounds; they are derived
// from what changed between snapshots.
func (g *Game) apply(ev Event) {
	prev := g.state
	g.state = Reduce(g.state, ev, g.rng)
	if g.config.Mute {
		return
	}

	if _, ok := ev.(Shoot); ok && !prev.GameOver {
		PlaySound(SoundShoot)
	}
	if g.state.GameOver && !prev.GameOver {
		PlaySound(SoundGameOver)
		return
	}
	if _, ok := ev.(Tick); ok && len(prev.Enemies) == 0 && !prev.GameOver {
		PlaySound(SoundWave)
		return
	}
	enemiesDown, shieldsDown := 0, 0
	for _, e := range g.state.Exited {
		switch e.Kind {
		case KindEnemy:
			enemiesDown++
		case KindShield:
			shieldsDown++
		}
	}
	if enemiesDown > 0 {
		PlaySound(SoundExplosion)
	}
	if shieldsDown > 0 {
		PlaySound(SoundShieldHit)
	}
}

// Draw renders the current snapshot
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Render(screen, g.state)
}

// Layout returns the game's screen size
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.config.ScreenWidth, g.config.ScreenHeight
}
