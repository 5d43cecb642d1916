package game

// State is one immutable snapshot of the whole game. Every event reduces the
// previous snapshot to a brand-new one; a snapshot is never mutated after it
// is built. Slices are owned by their snapshot and never aliased into the
// next one.
type State struct {
	// Ship is the single player entity
	Ship Entity

	// Live entity sets, in rendering/iteration order
	PlayerBullets []Entity
	Enemies       []Entity
	EnemyBullets  []Entity
	Shields       []Entity

	// Exited holds the entities removed by the transition that produced
	// this snapshot. The renderer detaches their scene elements and the
	// set is discarded on the next transition.
	Exited []Entity

	// ObjCount is the next free entity id
	ObjCount int

	// GameOver is sticky once set; only a Restart clears it
	GameOver bool

	// Score is the accumulated score, never negative
	Score int
}

// NewState returns the fixed initial snapshot: ship centered near the bottom,
// three rows of five enemies, forty shields in two clustered rows, empty
// bullet sets, zero score. The id counter starts past the enemy ids so the
// first spawned bullet gets the next free id.
func NewState() State {
	return State{
		Ship:     NewEntity(KindShip, CanvasWidth/2, CanvasHeight-50, 0),
		Enemies:  enemyFormation(),
		Shields:  shieldWall(),
		ObjCount: EnemyRows * EnemyCols,
	}
}

// enemyFormation lays out the enemy block: EnemyRows rows of EnemyCols,
// rows offset by 50 pixels, ids issued row-major from 0.
func enemyFormation() []Entity {
	enemies := make([]Entity, 0, EnemyRows*EnemyCols)
	for row := 0; row < EnemyRows; row++ {
		for col := 0; col < EnemyCols; col++ {
			enemies = append(enemies, NewEntity(KindEnemy, float64(col), float64(row*50), row*EnemyCols+col))
		}
	}
	return enemies
}

// shieldWall lays out the shield block: ids 0..20 on the upper row, 21..39
// ten pixels lower, grouped into four clusters of five via the factory's
// id arithmetic.
func shieldWall() []Entity {
	shields := make([]Entity, 0, ShieldCount)
	for i := 0; i < ShieldCount; i++ {
		gridY := 0.0
		if i > 20 {
			gridY = 10
		}
		shields = append(shields, NewEntity(KindShield, float64((i/5)%4), gridY, i))
	}
	return shields
}

// live collects every entity currently in play except the ship. Restart and
// wave transitions hand the result to the renderer through Exited.
func (s State) live() []Entity {
	out := make([]Entity, 0, len(s.PlayerBullets)+len(s.Enemies)+len(s.EnemyBullets)+len(s.Shields))
	out = append(out, s.PlayerBullets...)
	out = append(out, s.Enemies...)
	out = append(out, s.EnemyBullets...)
	out = append(out, s.Shields...)
	return out
}

// cloneEntities copies an entity slice so the next snapshot never shares
// backing arrays with the previous one.
func cloneEntities(src []Entity) []Entity {
	if src == nil {
		return nil
	}
	out := make([]Entity, len(src))
	copy(out, src)
	return out
}
