package game

import (
	"reflect"
	"testing"
)

// fixedSource feeds Reduce a scripted draw sequence so enemy fire is
// deterministic under test. Draws cycle when exhausted.
type fixedSource struct {
	draws []int
	next  int
}

func (f *fixedSource) Intn(n int) int {
	d := f.draws[f.next%len(f.draws)]
	f.next++
	return d % n
}

func TestInitialState(t *testing.T) {
	s := NewState()

	if got := len(s.Enemies); got != EnemyRows*EnemyCols {
		t.Fatalf("enemies = %d, want %d", got, EnemyRows*EnemyCols)
	}
	if got := len(s.Shields); got != ShieldCount {
		t.Fatalf("shields = %d, want %d", got, ShieldCount)
	}
	if s.Ship.X != CanvasWidth/2 || s.Ship.Y != CanvasHeight-50 {
		t.Fatalf("ship at (%v,%v), want (%v,%v)", s.Ship.X, s.Ship.Y, CanvasWidth/2, CanvasHeight-50)
	}
	if s.ObjCount != EnemyRows*EnemyCols {
		t.Fatalf("objCount = %d, want %d", s.ObjCount, EnemyRows*EnemyCols)
	}
	if s.Score != 0 || s.GameOver {
		t.Fatalf("initial state must start clean, got score=%d gameOver=%v", s.Score, s.GameOver)
	}
	if len(s.PlayerBullets) != 0 || len(s.EnemyBullets) != 0 {
		t.Fatalf("initial state must have no bullets")
	}
}

func TestMoveIsIdempotent(t *testing.T) {
	rng := &fixedSource{draws: []int{0}}
	s := NewState()

	once := Reduce(s, Move{Velocity: 1}, rng)
	twice := Reduce(once, Move{Velocity: 1}, rng)

	if once.Ship.Velocity != 1 {
		t.Fatalf("velocity = %v, want 1", once.Ship.Velocity)
	}
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("repeated Move changed the state")
	}
	if once.Score != s.Score || len(once.Enemies) != len(s.Enemies) {
		t.Fatalf("Move must only touch the ship velocity")
	}
}

func TestShootSpawnsBulletAtShip(t *testing.T) {
	rng := &fixedSource{draws: []int{0}}
	s := NewState()

	next := Reduce(s, Shoot{}, rng)

	if len(next.PlayerBullets) != 1 {
		t.Fatalf("playerBullets = %d, want 1", len(next.PlayerBullets))
	}
	b := next.PlayerBullets[0]
	if b.X != s.Ship.X || b.Y != s.Ship.Y {
		t.Fatalf("bullet at (%v,%v), want ship position (%v,%v)", b.X, b.Y, s.Ship.X, s.Ship.Y)
	}
	if b.ID != s.ObjCount || next.ObjCount != s.ObjCount+1 {
		t.Fatalf("bullet id=%d objCount=%d, want id=%d objCount=%d", b.ID, next.ObjCount, s.ObjCount, s.ObjCount+1)
	}
}

func TestBulletFliesUpAndExpires(t *testing.T) {
	rng := &fixedSource{draws: []int{0}}

	// A single far-away enemy keeps the wave alive without ever touching
	// the bullet's column.
	s := NewState()
	s.Enemies = []Entity{NewEntity(KindEnemy, 0, 0, 0)}

	s = Reduce(s, Shoot{}, rng)
	bulletID := s.PlayerBullets[0].ID
	y := s.PlayerBullets[0].Y

	elapsed := 1
	for ; len(s.PlayerBullets) > 0; elapsed++ {
		if elapsed > 100 {
			t.Fatalf("bullet never expired")
		}
		prev := s
		s = Reduce(s, Tick{Elapsed: elapsed}, rng)
		if len(s.PlayerBullets) == 1 {
			if got := s.PlayerBullets[0].Y; got != y-PlayerBulletSpeed {
				t.Fatalf("tick %d: bullet y = %v, want %v", elapsed, got, y-PlayerBulletSpeed)
			}
			y = s.PlayerBullets[0].Y
			continue
		}
		// Expiry snapshot: the bullet shows up in Exited exactly once.
		if prev.PlayerBullets[0].Y > 0 {
			t.Fatalf("bullet expired while still on canvas at y=%v", prev.PlayerBullets[0].Y)
		}
		found := 0
		for _, e := range s.Exited {
			if e.Kind == KindPlayerBullet && e.ID == bulletID {
				found++
			}
		}
		if found != 1 {
			t.Fatalf("expired bullet appeared %d times in exited", found)
		}
	}

	// The following snapshot no longer mentions the bullet at all.
	s = Reduce(s, Tick{Elapsed: elapsed}, rng)
	for _, e := range s.Exited {
		if e.Kind == KindPlayerBullet && e.ID == bulletID {
			t.Fatalf("expired bullet leaked into a later exited set")
		}
	}
}

func TestGameOverLatch(t *testing.T) {
	rng := &fixedSource{draws: []int{0}}
	s := NewState()
	s.GameOver = true
	s.Score = 70

	for _, ev := range []Event{Move{Velocity: 1}, Shoot{}, Tick{Elapsed: 80}} {
		next := Reduce(s, ev, rng)
		if !reflect.DeepEqual(next, s) {
			t.Fatalf("%T changed a frozen state", ev)
		}
	}

	restarted := Reduce(s, Restart{}, rng)
	if restarted.GameOver {
		t.Fatalf("Restart did not clear game over")
	}
	if restarted.Score != 0 || restarted.ObjCount != EnemyRows*EnemyCols {
		t.Fatalf("Restart must reset score and id counter, got score=%d objCount=%d", restarted.Score, restarted.ObjCount)
	}
}

func TestRestartMovesLiveEntitiesToExited(t *testing.T) {
	rng := &fixedSource{draws: []int{0}}
	s := NewState()
	s = Reduce(s, Shoot{}, rng)

	live := len(s.PlayerBullets) + len(s.Enemies) + len(s.EnemyBullets) + len(s.Shields)
	next := Reduce(s, Restart{}, rng)

	if len(next.Exited) != live {
		t.Fatalf("exited = %d entities, want all %d live ones", len(next.Exited), live)
	}
	if len(next.PlayerBullets) != 0 || len(next.Enemies) != EnemyRows*EnemyCols {
		t.Fatalf("Restart did not rebuild the initial formation")
	}
}

func TestLevelClearedSpeedsUpNextWave(t *testing.T) {
	rng := &fixedSource{draws: []int{0}}

	// One enemy with a bullet already overlapping it.
	s := NewState()
	enemy := NewEntity(KindEnemy, 0, 0, 0)
	s.Enemies = []Entity{enemy}
	s.PlayerBullets = []Entity{NewEntity(KindPlayerBullet, enemy.X, enemy.Y-5, s.ObjCount)}
	s.ObjCount++

	s = Reduce(s, Tick{Elapsed: 1}, rng)
	if len(s.Enemies) != 0 {
		t.Fatalf("enemy survived an overlapping bullet: %v", s.Enemies)
	}
	if s.Score != ScorePerEnemy {
		t.Fatalf("score = %d, want %d", s.Score, ScorePerEnemy)
	}

	next := Reduce(s, Tick{Elapsed: 2}, rng)
	if len(next.Enemies) != EnemyRows*EnemyCols {
		t.Fatalf("next wave has %d enemies, want %d", len(next.Enemies), EnemyRows*EnemyCols)
	}
	for _, e := range next.Enemies {
		if e.Velocity != -1*SpeedUpFactor {
			t.Fatalf("next wave enemy velocity = %v, want %v", e.Velocity, -1*SpeedUpFactor)
		}
	}
	if next.Score != ScorePerEnemy {
		t.Fatalf("score was not carried over: %d", next.Score)
	}
	if len(next.Exited) != len(s.Shields)+len(s.EnemyBullets)+len(s.PlayerBullets) {
		t.Fatalf("wave reset must hand the leftovers to exited, got %d", len(next.Exited))
	}
}

func TestEnemyFiresOnShootBoundary(t *testing.T) {
	rng := &fixedSource{draws: []int{3}}
	s := NewState()

	// 560 sits on both periodic boundaries; the shoot check must win.
	next := Reduce(s, Tick{Elapsed: 560}, rng)

	if len(next.EnemyBullets) != 1 {
		t.Fatalf("enemyBullets = %d, want 1", len(next.EnemyBullets))
	}
	b := next.EnemyBullets[0]
	src := next.Enemies[3]
	if b.X != src.X || b.Y != src.Y {
		t.Fatalf("enemy bullet at (%v,%v), want source enemy position (%v,%v)", b.X, b.Y, src.X, src.Y)
	}
	if b.ID != s.ObjCount || next.ObjCount != s.ObjCount+1 {
		t.Fatalf("bullet id=%d objCount=%d, want id=%d objCount=%d", b.ID, next.ObjCount, s.ObjCount, s.ObjCount+1)
	}

	// The shoot boundary suppresses the formation step on the same tick.
	if next.Enemies[0].X != s.Enemies[0].X {
		t.Fatalf("formation moved on a shoot tick")
	}
}

func TestFormationStepsOnMoveBoundary(t *testing.T) {
	rng := &fixedSource{draws: []int{0}}
	s := NewState()

	next := Reduce(s, Tick{Elapsed: 7}, rng)

	for i, e := range next.Enemies {
		if e.X != s.Enemies[i].X-1 {
			t.Fatalf("enemy %d at x=%v, want %v", i, e.X, s.Enemies[i].X-1)
		}
		if e.Y != s.Enemies[i].Y {
			t.Fatalf("enemy %d descended without a bounce", i)
		}
	}
}

func TestFormationBouncesAtEdge(t *testing.T) {
	rng := &fixedSource{draws: []int{0}}
	s := NewState()
	s.Enemies = []Entity{
		{Kind: KindEnemy, ID: 0, X: -1, Y: 100, Velocity: -1, Radius: EnemyRadius},
		{Kind: KindEnemy, ID: 1, X: 99, Y: 100, Velocity: -1, Radius: EnemyRadius},
	}

	next := Reduce(s, Tick{Elapsed: 7}, rng)

	want := []Entity{
		{Kind: KindEnemy, ID: 0, X: 0, Y: 120, Velocity: 1, Radius: EnemyRadius},
		{Kind: KindEnemy, ID: 1, X: 100, Y: 120, Velocity: 1, Radius: EnemyRadius},
	}
	if !reflect.DeepEqual(next.Enemies, want) {
		t.Fatalf("bounce produced %v, want %v", next.Enemies, want)
	}
}

func TestReduceIsDeterministic(t *testing.T) {
	events := make([]Event, 0, 420)
	events = append(events, Move{Velocity: 1}, Shoot{})
	for i := 0; i < 200; i++ {
		events = append(events, Tick{Elapsed: i})
		if i%37 == 0 {
			events = append(events, Shoot{})
		}
		if i%53 == 0 {
			events = append(events, Move{Velocity: float64(i%3 - 1)})
		}
	}

	run := func() State {
		rng := &fixedSource{draws: []int{2, 7, 0, 11, 4}}
		s := NewState()
		for _, ev := range events {
			s = Reduce(s, ev, rng)
		}
		return s
	}

	first := run()
	second := run()
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("identical event and draw sequences produced different states")
	}
}
