package game

// Event is the closed set of inputs the reducer accepts. The front end
// produces a strictly ordered stream of these; the reducer folds them into
// successive snapshots. The marker method keeps the union closed so the
// type switch in Reduce stays exhaustive.
type Event interface {
	isEvent()
}

// Tick advances logical time by one step. Elapsed is a monotonically
// increasing counter supplied by the event source; the periodic enemy
// behaviors key off it. Supplying a non-monotonic counter is a contract
// violation by the caller, not a checked error.
type Tick struct {
	Elapsed int
}

// Move sets the ship's horizontal velocity. By convention Velocity is
// -1 (left), 0 (stop) or 1 (right); other values are a caller contract
// violation and are passed through unvalidated.
type Move struct {
	Velocity float64
}

// Shoot spawns a player bullet at the ship's current position.
type Shoot struct{}

// Restart discards the session and returns to the initial snapshot.
type Restart struct{}

func (Tick) isEvent()    {}
func (Move) isEvent()    {}
func (Shoot) isEvent()   {}
func (Restart) isEvent() {}
