package breakout

// Step advances the simulation by one fixed tick. The sub-step order is a
// hard contract: paddle motion must precede ball sticking and collision
// testing within the same tick, otherwise the waiting ball lags the paddle
// by one frame.
func (w *World) Step(it Intent) {
	if !w.ready {
		panic("breakout: world not initialised, use NewWorld")
	}

	w.movePaddle(it)
	w.stickBallToPaddle()
	w.handleLaunch(it)
	w.applyVelocity()
	w.checkCollisions()
}

// movePaddle applies keyboard movement first, then lets an available mouse
// cursor overwrite the result. Both paths clamp to the arena bounds.
func (w *World) movePaddle(it Intent) {
	x := w.Paddle.Pos.X + it.Move*PaddleSpeed*TimeStep
	w.Paddle.Pos.X = ClampF(x, PaddleMinX, PaddleMaxX)

	if it.HasCursor {
		x = it.CursorX - CanvasWidth/2
		w.Paddle.Pos.X = ClampF(x, PaddleMinX, PaddleMaxX)
	}
}

// stickBallToPaddle keeps a waiting ball riding the paddle.
func (w *World) stickBallToPaddle() {
	if !w.State.BallWaiting {
		return
	}
	w.Ball.Pos.X = w.Paddle.Pos.X
	w.Ball.Pos.Y = w.Paddle.Pos.Y + 25
}

// handleLaunch releases a waiting ball. No launches are accepted once
// lives reach zero.
func (w *World) handleLaunch(it Intent) {
	if w.State.Lives == 0 || !w.State.BallWaiting || !it.Launch {
		return
	}

	w.State.BallWaiting = false
	vx := 0.5 * BallSpeed
	if it.AimLeft {
		vx = -vx
	}
	w.Ball.Vel = Vec2{X: vx, Y: 0.5 * BallSpeed}
}

// applyVelocity integrates position for every velocity-bearing entity.
// Only the ball carries velocity in this system.
func (w *World) applyVelocity() {
	w.Ball.Pos = w.Ball.Pos.Add(w.Ball.Vel.Scale(TimeStep))
}

// checkCollisions tests the ball against every collider in a fixed order:
// paddle, walls, bricks. Every overlapping collider is processed, with no
// early exit; when several overlap in one tick, each response sees the
// velocity as already mutated by the previous one. That can double-apply
// reflections at corners and is the established behavior, not a bug to fix.
func (w *World) checkCollisions() {
	if side, ok := Collide(w.Ball.Pos, w.Ball.Size, w.Paddle.Pos, w.Paddle.Size); ok {
		w.reflect(side, true, w.Paddle.Pos.X)
	}

	for i := range w.Walls {
		wall := &w.Walls[i]
		side, ok := Collide(w.Ball.Pos, w.Ball.Size, wall.Pos, wall.Size)
		if !ok {
			continue
		}
		if wall.Bottom {
			w.loseBall()
		}
		w.reflect(side, false, 0)
	}

	// Destroyed bricks are dropped from the slice after the pass,
	// preserving iteration order and ruling out a second hit on a brick
	// that no longer exists.
	kept := w.Bricks[:0]
	for i := range w.Bricks {
		brick := w.Bricks[i]
		side, ok := Collide(w.Ball.Pos, w.Ball.Size, brick.Pos, brick.Size)
		if !ok {
			kept = append(kept, brick)
			continue
		}

		w.State.Score++
		if w.Ball.Vel.Y > 0 {
			w.Ball.Vel.Y += BrickSpeedIncrease
		} else {
			w.Ball.Vel.Y -= BrickSpeedIncrease
		}

		w.reflect(side, false, 0)
	}
	w.Bricks = kept
}

// loseBall handles contact with the bottom wall: the ball stops and waits
// on the paddle, one life is lost. The decrement is guarded so the
// terminal state never underflows.
func (w *World) loseBall() {
	w.Ball.Vel = Vec2{}
	w.State.BallWaiting = true
	if w.State.Lives > 0 {
		w.State.Lives--
	}
}

// reflect applies the collision response for one collider. A side inverts
// the matching velocity component only when the ball is moving into the
// surface. The paddle overrides axis reflection entirely: the ball always
// bounces to the opposite vertical direction and the horizontal velocity
// is recomputed from the contact offset, so edge hits steer the ball.
func (w *World) reflect(side Side, paddle bool, paddleX float64) {
	var reflectX, reflectY bool

	switch side {
	case SideLeft:
		reflectX = w.Ball.Vel.X > 0
	case SideRight:
		reflectX = w.Ball.Vel.X < 0
	case SideTop:
		reflectY = w.Ball.Vel.Y < 0
	case SideBottom:
		reflectY = w.Ball.Vel.Y > 0
	case SideInside:
		// no reflection
	}

	if paddle && (reflectX || reflectY) {
		w.Ball.Vel.Y = -w.Ball.Vel.Y
		offset := (w.Ball.Pos.X - paddleX) / 70
		w.Ball.Vel.X = ClampF(offset, -0.8, 0.8) * BallSpeed
		return
	}

	if reflectX {
		w.Ball.Vel.X = -w.Ball.Vel.X
	}
	if reflectY {
		w.Ball.Vel.Y = -w.Ball.Vel.Y
	}
}
