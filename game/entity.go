package game

// Kind identifies the type of entity
type Kind int

const (
	KindShip Kind = iota
	KindEnemy
	KindPlayerBullet
	KindEnemyBullet
	KindShield
)

// String returns a short name for the kind, used in test output.
func (k Kind) String() string {
	switch k {
	case KindShip:
		return "ship"
	case KindEnemy:
		return "enemy"
	case KindPlayerBullet:
		return "player-bullet"
	case KindEnemyBullet:
		return "enemy-bullet"
	case KindShield:
		return "shield"
	default:
		return "unknown"
	}
}

// Entity is an immutable value describing one game object. Entities are
// passed and stored by value; a moved or otherwise changed entity is a new
// value, never an in-place mutation.
type Entity struct {
	// Kind of the entity
	Kind Kind

	// ID is stable for the entity's lifetime and unique within its kind's
	// counter family. The renderer correlates scene elements by (Kind, ID).
	ID int

	// Position in canvas coordinates
	X, Y float64

	// Velocity is a signed horizontal speed. Meaning depends on Kind:
	// ship and enemy move by it each step, the sign flips on a formation
	// turn. Bullets ignore it; their speed is implicit in the motion rule.
	Velocity float64

	// Collision radius in pixels, fixed per kind at creation
	Radius float64
}

// NewEntity constructs an entity of the given kind at a grid position.
// The grid coordinates are kind-specific layout inputs, not pixels:
// enemies and shields map them through the formation arithmetic, the ship
// and bullets take them as raw canvas coordinates.
func NewEntity(kind Kind, gridX, gridY float64, id int) Entity {
	switch kind {
	case KindEnemy:
		return Entity{
			Kind:     KindEnemy,
			ID:       id,
			X:        gridX*100 + 20,
			Y:        100 + gridY,
			Velocity: -1,
			Radius:   EnemyRadius,
		}
	case KindShield:
		return Entity{
			Kind:   KindShield,
			ID:     id,
			X:      gridX*120 + float64(id%5)*15 + 100,
			Y:      480 - gridY,
			Radius: ShieldRadius,
		}
	case KindShip:
		return Entity{
			Kind:   KindShip,
			ID:     id,
			X:      gridX,
			Y:      gridY,
			Radius: ShipRadius,
		}
	case KindEnemyBullet:
		return Entity{
			Kind:   KindEnemyBullet,
			ID:     id,
			X:      gridX,
			Y:      gridY,
			Radius: EnemyBulletRadius,
		}
	default:
		return Entity{
			Kind:   KindPlayerBullet,
			ID:     id,
			X:      gridX,
			Y:      gridY,
			Radius: PlayerBulletRadius,
		}
	}
}

// Move advances the entity by one logical tick and returns the result.
// Player bullets travel straight up, enemy bullets straight down. Everything
// else moves horizontally by its velocity and wraps at the canvas edges:
// past the left edge snaps to CanvasWidth, at or past the right edge snaps
// to 0. The wrap is a snap to the opposite edge, not a modulo.
func (e Entity) Move() Entity {
	switch e.Kind {
	case KindPlayerBullet:
		e.Y -= PlayerBulletSpeed
	case KindEnemyBullet:
		e.Y += EnemyBulletSpeed
	default:
		x := e.X + e.Velocity
		switch {
		case x < 0:
			e.X = CanvasWidth
		case x >= CanvasWidth:
			e.X = 0
		default:
			e.X = x
		}
	}
	return e
}
