package game

// Canvas dimensions in world pixels. All entity positions live in this
// coordinate space; the renderer maps it 1:1 onto the screen.
const (
	CanvasWidth  = 600.0
	CanvasHeight = 600.0
)

// Gameplay constants
const (
	PlayerBulletSpeed = 10.0 // pixels per tick, upward
	EnemyBulletSpeed  = 5.0  // pixels per tick, downward

	AlienShootInterval = 80 // ticks between enemy volleys
	AlienMoveInterval  = 7  // ticks between formation steps
	DescentStep        = 20.0
	SpeedUpFactor      = 6.0 // enemy velocity multiplier after a cleared wave

	ScorePerEnemy = 10

	EnemyRows   = 3
	EnemyCols   = 5
	ShieldCount = 40
)

// Collision radii, fixed per kind at creation.
const (
	ShipRadius         = 15.0
	EnemyRadius        = 20.0
	ShieldRadius       = 7.0
	PlayerBulletRadius = 4.0
	EnemyBulletRadius  = 4.0
)

// Config holds window configuration for the ebiten front end.
type Config struct {
	// ScreenWidth is the window width in pixels
	ScreenWidth int

	// ScreenHeight is the window height in pixels
	ScreenHeight int

	// Title is the window title
	Title string

	// Mute disables sound effect playback
	Mute bool
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	return Config{
		ScreenWidth:  int(CanvasWidth),
		ScreenHeight: int(CanvasHeight),
		Title:        "Invaders",
	}
}
