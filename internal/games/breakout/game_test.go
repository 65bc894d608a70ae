package breakout

import (
	"strings"
	"testing"

	"github.com/vkazmin/brickfall/internal/core"
	"github.com/vkazmin/brickfall/internal/registry"
)

func newTestGame() *Game {
	g := New()
	g.Reset(core.DefaultConfig())
	return g
}

func TestGameRegistered(t *testing.T) {
	if !registry.Exists("breakout") {
		t.Fatal("breakout not registered")
	}

	g, err := registry.Create("breakout")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "breakout" {
		t.Errorf("ID() = %q, expected %q", g.ID(), "breakout")
	}
	if g.Title() != "Brickfall" {
		t.Errorf("Title() = %q, expected %q", g.Title(), "Brickfall")
	}
}

func TestGameInitialState(t *testing.T) {
	g := newTestGame()

	state := g.State()
	if state.Score != 0 {
		t.Errorf("score = %d, expected 0", state.Score)
	}
	if state.Lives != StartingLives {
		t.Errorf("lives = %d, expected %d", state.Lives, StartingLives)
	}
	if state.GameOver {
		t.Error("new game reports game over")
	}

	w := g.World()
	if len(w.Bricks) != BrickColumns*BrickRows {
		t.Errorf("brick count = %d, expected %d", len(w.Bricks), BrickColumns*BrickRows)
	}
	if !w.State.BallWaiting {
		t.Error("new game should be in the serve state")
	}
}

func TestGameLaunchFromInputFrame(t *testing.T) {
	g := newTestGame()

	frame := core.NewInputFrame()
	frame.Set(core.ActionLaunch)
	g.Step(frame)

	w := g.World()
	if w.State.BallWaiting {
		t.Error("ball still waiting after launch action")
	}
	if w.Ball.Vel.X != 0.5*BallSpeed || w.Ball.Vel.Y != 0.5*BallSpeed {
		t.Errorf("velocity = %v, expected (%v, %v)", w.Ball.Vel, 0.5*BallSpeed, 0.5*BallSpeed)
	}
}

func TestGameLaunchAimsLeftWithHeldKey(t *testing.T) {
	g := newTestGame()

	frame := core.NewInputFrame()
	frame.Set(core.ActionLaunch)
	frame.Set(core.ActionLeft)
	g.Step(frame)

	if vx := g.World().Ball.Vel.X; vx != -0.5*BallSpeed {
		t.Errorf("vx = %v, expected %v", vx, -0.5*BallSpeed)
	}
}

func TestGameMouseClickLaunches(t *testing.T) {
	g := newTestGame()

	frame := core.NewInputFrame()
	frame.MouseClicked = true
	g.Step(frame)

	if g.World().State.BallWaiting {
		t.Error("ball still waiting after mouse click")
	}
}

func TestGameCursorMovesPaddle(t *testing.T) {
	g := newTestGame()

	// Cell 40 of 80 maps to window x 506.25, arena x 6.25
	frame := core.NewInputFrame()
	frame.SetCursor(40, 12)
	g.Step(frame)

	expected := (40.0+0.5)*CanvasWidth/80.0 - CanvasWidth/2
	if got := g.World().Paddle.Pos.X; got != expected {
		t.Errorf("paddle x = %v, expected %v", got, expected)
	}
}

func TestGameDeterminism(t *testing.T) {
	script := func(g *Game) {
		for tick := 0; tick < 600; tick++ {
			frame := core.NewInputFrame()
			if tick == 5 {
				frame.Set(core.ActionLaunch)
			}
			if tick >= 10 && tick < 200 {
				frame.Set(core.ActionLeft)
			}
			if tick >= 300 && tick < 450 {
				frame.Set(core.ActionRight)
			}
			g.Step(frame)
		}
	}

	a := newTestGame()
	b := newTestGame()
	script(a)
	script(b)

	snapA, snapB := a.Snapshot(), b.Snapshot()
	if snapA.Hash() != snapB.Hash() {
		t.Errorf("identical runs diverged: %+v vs %+v", snapA, snapB)
	}
}

func TestGameRenderHUD(t *testing.T) {
	g := newTestGame()
	screen := core.NewScreen(80, 24)

	g.Render(screen)

	if !strings.Contains(screen.Row(0), "Score:0 Lives:3") {
		t.Errorf("HUD row = %q, expected score and lives", screen.Row(0))
	}
	out := screen.String()
	if !strings.ContainsRune(out, BallChar) {
		t.Error("ball not rendered")
	}
	if !strings.ContainsRune(out, PaddleChar) {
		t.Error("paddle not rendered")
	}
	if strings.Contains(out, "Game over!") {
		t.Error("game over text rendered on a fresh game")
	}
}

func TestGameRenderGameOver(t *testing.T) {
	g := newTestGame()
	g.World().State.Lives = 0

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if !strings.Contains(screen.String(), "Game over!") {
		t.Error("game over text missing")
	}
}

func TestGameRenderSurvivesTinyScreen(t *testing.T) {
	g := newTestGame()

	for _, dims := range [][2]int{{1, 1}, {2, 2}, {10, 4}} {
		screen := core.NewScreen(dims[0], dims[1])
		g.Render(screen) // must not panic or write out of bounds
	}
}

func TestGameResizeUpdatesCursorMapping(t *testing.T) {
	g := newTestGame()
	g.World().State.Score = 3

	cfg := core.DefaultConfig()
	cfg.ScreenW, cfg.ScreenH = 100, 30
	g.Resize(cfg)

	// The world is untouched by a resize
	if g.World().State.Score != 3 {
		t.Errorf("score = %d after resize, expected 3", g.World().State.Score)
	}
	if len(g.World().Bricks) != BrickColumns*BrickRows {
		t.Errorf("brick count = %d after resize, expected %d",
			len(g.World().Bricks), BrickColumns*BrickRows)
	}

	// Cursor cells now map through the new width: cell 50 of 100
	frame := core.NewInputFrame()
	frame.SetCursor(50, 15)
	g.Step(frame)

	expected := (50.0+0.5)*CanvasWidth/100.0 - CanvasWidth/2
	if got := g.World().Paddle.Pos.X; got != expected {
		t.Errorf("paddle x = %v, expected %v", got, expected)
	}
}

func TestGameResetRestoresWorld(t *testing.T) {
	g := newTestGame()

	frame := core.NewInputFrame()
	frame.Set(core.ActionLaunch)
	for i := 0; i < 120; i++ {
		g.Step(frame)
	}

	g.Reset(core.DefaultConfig())

	snap := g.Snapshot()
	if snap.Tick != 0 {
		t.Errorf("tick = %d after reset, expected 0", snap.Tick)
	}
	if !snap.BallWaiting {
		t.Error("reset game should be in the serve state")
	}
	if len(snap.BrickIDs) != BrickColumns*BrickRows {
		t.Errorf("brick count = %d after reset, expected %d",
			len(snap.BrickIDs), BrickColumns*BrickRows)
	}
}
