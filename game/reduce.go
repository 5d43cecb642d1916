package game

// IndexSource supplies the random draw that picks which enemy fires.
// *math/rand.Rand satisfies it directly; tests substitute a fixed sequence
// so the whole fold stays deterministic.
type IndexSource interface {
	Intn(n int) int
}

// Reduce folds one event into the current snapshot and returns the next one.
// It is the only producer of snapshots: the front end threads a single State
// through a strictly sequential stream of events. Given the same event
// stream and the same draw sequence, Reduce is a pure function.
//
// Once GameOver is set the game is frozen: every event except Restart
// returns the snapshot unchanged.
func Reduce(s State, ev Event, rng IndexSource) State {
	switch e := ev.(type) {
	case Move:
		if s.GameOver {
			return s
		}
		next := s.fresh()
		next.Ship.Velocity = e.Velocity
		return next

	case Shoot:
		if s.GameOver {
			return s
		}
		next := s.fresh()
		next.PlayerBullets = append(next.PlayerBullets, NewEntity(KindPlayerBullet, s.Ship.X, s.Ship.Y, s.ObjCount))
		next.ObjCount++
		return next

	case Restart:
		next := NewState()
		next.Exited = s.live()
		return next

	case Tick:
		if s.GameOver {
			return s
		}
		if len(s.Enemies) == 0 {
			return s.nextWave()
		}
		return s.tick(e.Elapsed, rng)

	default:
		return s
	}
}

// fresh returns a copy of the snapshot with its own slices and an empty
// Exited set, ready to become the next snapshot.
func (s State) fresh() State {
	s.PlayerBullets = cloneEntities(s.PlayerBullets)
	s.Enemies = cloneEntities(s.Enemies)
	s.EnemyBullets = cloneEntities(s.EnemyBullets)
	s.Shields = cloneEntities(s.Shields)
	s.Exited = nil
	return s
}

// nextWave regenerates the initial formation after the last enemy falls.
// The fresh enemies come in faster by SpeedUpFactor, the score carries over,
// and everything that was still in play exits for renderer cleanup.
func (s State) nextWave() State {
	next := NewState()
	for i := range next.Enemies {
		next.Enemies[i].Velocity *= SpeedUpFactor
	}
	next.Score = s.Score
	next.Exited = s.live()
	return next
}

// tick advances one logical time step:
//
//  1. out-of-bounds bullets expire into Exited
//  2. the ship and the surviving bullets move one step
//  3. collisions are resolved
//  4. on the shoot boundary a randomly chosen enemy fires; otherwise on
//     the move boundary the formation steps, bouncing and descending when
//     any enemy has left the canvas. The shoot check wins when both
//     boundaries land on the same tick.
func (s State) tick(elapsed int, rng IndexSource) State {
	next := s
	next.Exited = nil

	var activePlayer []Entity
	activePlayer, next.Exited = partitionExpired(s.PlayerBullets, playerBulletExpired, next.Exited)
	var activeEnemy []Entity
	activeEnemy, next.Exited = partitionExpired(s.EnemyBullets, enemyBulletExpired, next.Exited)

	next.Ship = s.Ship.Move()
	next.PlayerBullets = moveAll(activePlayer)
	next.EnemyBullets = moveAll(activeEnemy)
	next.Enemies = cloneEntities(s.Enemies)
	next.Shields = cloneEntities(s.Shields)

	next = resolveCollisions(next)

	switch {
	case elapsed%AlienShootInterval == 0 && len(next.Enemies) > 0:
		src := next.Enemies[rng.Intn(len(next.Enemies))]
		next.EnemyBullets = append(next.EnemyBullets, NewEntity(KindEnemyBullet, src.X, src.Y, next.ObjCount))
		next.ObjCount++
	case elapsed%AlienMoveInterval == 0:
		next.Enemies = stepFormation(next.Enemies)
	}

	return next
}

func playerBulletExpired(e Entity) bool { return e.Y <= 0 }

func enemyBulletExpired(e Entity) bool { return e.Y >= CanvasHeight }

// partitionExpired splits bullets into survivors and expired ones, appending
// the expired to exited.
func partitionExpired(bullets []Entity, expired func(Entity) bool, exited []Entity) ([]Entity, []Entity) {
	active := make([]Entity, 0, len(bullets))
	for _, b := range bullets {
		if expired(b) {
			exited = append(exited, b)
		} else {
			active = append(active, b)
		}
	}
	return active, exited
}

// moveAll advances every entity one step into a fresh slice.
func moveAll(entities []Entity) []Entity {
	out := make([]Entity, len(entities))
	for i, e := range entities {
		out[i] = e.Move()
	}
	return out
}

// stepFormation advances the enemy block one discrete step. While every
// enemy is inside [0, CanvasWidth) the block slides sideways; once any
// enemy has crossed an edge the whole block bounces in unison: the sideways
// step is undone, the block drops by DescentStep and the direction flips.
func stepFormation(enemies []Entity) []Entity {
	turning := false
	for _, e := range enemies {
		if e.X < 0 || e.X >= CanvasWidth {
			turning = true
			break
		}
	}

	out := make([]Entity, len(enemies))
	for i, e := range enemies {
		if turning {
			e.X += -e.Velocity
			e.Y += DescentStep
			e.Velocity = -e.Velocity
		} else {
			e.X += e.Velocity
		}
		out[i] = e
	}
	return out
}
