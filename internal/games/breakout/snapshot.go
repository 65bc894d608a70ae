package breakout

import "math"

// Snapshot captures the complete simulation state at one tick.
// Primitive fields only, so two runs can be compared cheaply.
type Snapshot struct {
	Tick uint64

	BallX, BallY   float64
	BallVX, BallVY float64
	PaddleX        float64

	Score       int
	Lives       int
	BallWaiting bool

	// IDs of the bricks still alive, in iteration order.
	BrickIDs []int
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	w := g.world
	ids := make([]int, len(w.Bricks))
	for i := range w.Bricks {
		ids[i] = w.Bricks[i].ID
	}

	return Snapshot{
		Tick:        g.tick,
		BallX:       w.Ball.Pos.X,
		BallY:       w.Ball.Pos.Y,
		BallVX:      w.Ball.Vel.X,
		BallVY:      w.Ball.Vel.Y,
		PaddleX:     w.Paddle.Pos.X,
		Score:       w.State.Score,
		Lives:       w.State.Lives,
		BallWaiting: w.State.BallWaiting,
		BrickIDs:    ids,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + math.Float64bits(snap.BallX)
	h = h*31 + math.Float64bits(snap.BallY)
	h = h*31 + math.Float64bits(snap.BallVX)
	h = h*31 + math.Float64bits(snap.BallVY)
	h = h*31 + math.Float64bits(snap.PaddleX)
	h = h*31 + uint64(snap.Score)
	h = h*31 + uint64(snap.Lives)
	if snap.BallWaiting {
		h = h*31 + 1
	}
	for _, id := range snap.BrickIDs {
		h = h*31 + uint64(id)
	}
	return h
}
