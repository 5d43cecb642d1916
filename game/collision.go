package game

import "math"

// bodiesCollide reports whether two bodies overlap: Euclidean distance on
// (x, y) strictly below the sum of the collision radii. Symmetric in its
// arguments.
func bodiesCollide(a, b Entity) bool {
	return math.Hypot(a.X-b.X, a.Y-b.Y) < a.Radius+b.Radius
}

// resolveCollisions runs the pairwise proximity tests over a snapshot whose
// bodies have already been advanced for this tick:
//
//   - every colliding (player bullet, enemy) pair removes both
//   - every colliding (enemy bullet, shield) pair removes both
//   - an enemy bullet touching the ship sets game over
//   - an enemy at or past the bottom edge sets game over (breach)
//
// Removal is by id with set semantics: a bullet overlapping several enemies
// is removed once but clears every enemy it touches. Removed entities are
// appended to Exited and the score grows by ScorePerEnemy per destroyed
// enemy. The returned snapshot owns fresh slices.
func resolveCollisions(s State) State {
	deadPlayerBullets := make(map[int]bool)
	deadEnemies := make(map[int]bool)
	deadEnemyBullets := make(map[int]bool)
	deadShields := make(map[int]bool)

	for _, b := range s.PlayerBullets {
		for _, e := range s.Enemies {
			if bodiesCollide(b, e) {
				deadPlayerBullets[b.ID] = true
				deadEnemies[e.ID] = true
			}
		}
	}

	for _, b := range s.EnemyBullets {
		for _, sh := range s.Shields {
			if bodiesCollide(b, sh) {
				deadEnemyBullets[b.ID] = true
				deadShields[sh.ID] = true
			}
		}
	}

	shipHit := false
	for _, b := range s.EnemyBullets {
		if bodiesCollide(b, s.Ship) {
			shipHit = true
			break
		}
	}

	breached := false
	for _, e := range s.Enemies {
		if e.Y >= CanvasHeight {
			breached = true
			break
		}
	}

	next := s
	next.PlayerBullets, next.Exited = filterDead(s.PlayerBullets, deadPlayerBullets, s.Exited)
	next.Enemies, next.Exited = filterDead(s.Enemies, deadEnemies, next.Exited)
	next.EnemyBullets, next.Exited = filterDead(s.EnemyBullets, deadEnemyBullets, next.Exited)
	next.Shields, next.Exited = filterDead(s.Shields, deadShields, next.Exited)
	next.Score = s.Score + len(deadEnemies)*ScorePerEnemy
	next.GameOver = s.GameOver || shipHit || breached
	return next
}

// filterDead splits entities into survivors and casualties by id. Survivors
// land in a fresh slice, casualties are appended to exited in input order.
func filterDead(entities []Entity, dead map[int]bool, exited []Entity) ([]Entity, []Entity) {
	alive := make([]Entity, 0, len(entities))
	for _, e := range entities {
		if dead[e.ID] {
			exited = append(exited, e)
		} else {
			alive = append(alive, e)
		}
	}
	return alive, exited
}
