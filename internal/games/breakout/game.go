package breakout

import (
	"fmt"

	"github.com/vkazmin/brickfall/internal/core"
	"github.com/vkazmin/brickfall/internal/registry"
)

// Visual characters for rendering.
const (
	PaddleChar = '='
	BallChar   = '●'
	WallChar   = '█'
	BrickChar  = '█'
)

// brickPalette maps a brick's color index to a terminal color. Rows cycle
// pink, red, orange, yellow, green, cyan from the top down.
var brickPalette = [BrickColorCount]core.Color{
	core.ColorBrightMagenta,
	core.ColorBrightRed,
	core.ColorOrange,
	core.ColorBrightYellow,
	core.ColorBrightGreen,
	core.ColorBrightCyan,
}

const hudColor = core.ColorBrightBlue

// Game adapts the simulation world to the platform's Game interface.
// It translates input frames into intents and projects the logical
// 1000x800 arena onto the cell screen.
type Game struct {
	world   *World
	runtime core.RuntimeConfig
	tick    uint64
}

// New creates a new game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "breakout"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Brickfall"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.world = NewWorld()
	g.tick = 0
}

// Resize updates the screen dimensions used for cursor mapping and
// rendering. The simulation is resolution-independent and is left
// untouched; in particular a terminal game-over state survives resizes.
func (g *Game) Resize(runtime core.RuntimeConfig) {
	g.runtime = runtime
}

// World exposes the simulation state. The platform only reads it.
func (g *Game) World() *World {
	return g.world
}

// Step advances the game by one fixed tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	g.world.Step(ReadIntent(frameInput{frame: in, runtime: g.runtime}))
	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.world.State.Score,
		Lives:    g.world.State.Lives,
		GameOver: g.world.State.GameOver(),
	}
}

// frameInput adapts a per-tick input frame to the simulation's input
// interface. The cursor cell position is mapped to logical window
// coordinates so the intent translation works in arena units.
type frameInput struct {
	frame   core.InputFrame
	runtime core.RuntimeConfig
}

func (f frameInput) KeyDown(k Key) bool {
	switch k {
	case KeyLeft:
		return f.frame.Has(core.ActionLeft)
	case KeyRight:
		return f.frame.Has(core.ActionRight)
	case KeySpace:
		return f.frame.Has(core.ActionLaunch)
	}
	return false
}

func (f frameInput) MouseJustPressed(b MouseButton) bool {
	return b == MouseLeft && f.frame.MouseClicked
}

func (f frameInput) Cursor() (x, y float64, ok bool) {
	if !f.frame.HasCursor || f.runtime.ScreenW <= 0 || f.runtime.ScreenH <= 0 {
		return 0, 0, false
	}
	x = (float64(f.frame.CursorX) + 0.5) * CanvasWidth / float64(f.runtime.ScreenW)
	y = (float64(f.frame.CursorY) + 0.5) * CanvasHeight / float64(f.runtime.ScreenH)
	return x, y, true
}

// Render draws the current game state to the screen: walls, bricks,
// paddle, ball, then the HUD text on top.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	for i := range g.world.Walls {
		g.drawEntity(dst, g.world.Walls[i].Pos, g.world.Walls[i].Size, WallChar, core.ColorGray)
	}
	for i := range g.world.Bricks {
		brick := g.world.Bricks[i]
		g.drawEntity(dst, brick.Pos, brick.Size, BrickChar, brickPalette[brick.Color%BrickColorCount])
	}
	g.drawEntity(dst, g.world.Paddle.Pos, g.world.Paddle.Size, PaddleChar, core.ColorBrightWhite)
	g.drawEntity(dst, g.world.Ball.Pos, g.world.Ball.Size, BallChar, core.ColorWhite)

	g.renderHUD(dst)
}

// renderHUD refreshes the scoreboard and game-over text. This is a
// write-only projection of the game state; no logic lives here.
func (g *Game) renderHUD(dst *core.Screen) {
	text := fmt.Sprintf("Score:%d Lives:%d", g.world.State.Score, g.world.State.Lives)
	dst.DrawTextColored(1, 0, text, hudColor)

	if g.world.State.GameOver() {
		dst.DrawTextCenteredColored(dst.Height()/2, "Game over!", hudColor)
	}
}

// drawEntity projects an arena-space AABB onto screen cells and fills it.
// Entities thinner than a cell still occupy one cell so nothing vanishes
// at small terminal sizes.
func (g *Game) drawEntity(dst *core.Screen, pos, size Vec2, r rune, c core.Color) {
	w, h := dst.Width(), dst.Height()
	if w <= 0 || h <= 0 {
		return
	}

	sx := float64(w) / CanvasWidth
	sy := float64(h) / CanvasHeight

	x0 := int((pos.X - size.X/2 + CanvasWidth/2) * sx)
	x1 := int((pos.X + size.X/2 + CanvasWidth/2) * sx)
	y0 := int((CanvasHeight/2 - (pos.Y + size.Y/2)) * sy)
	y1 := int((CanvasHeight/2 - (pos.Y - size.Y/2)) * sy)

	if x1 > x0 {
		x1-- // upper bound is exclusive
	}
	if y1 > y0 {
		y1--
	}

	x0 = core.Clamp(x0, 0, w-1)
	x1 = core.Clamp(x1, 0, w-1)
	y0 = core.Clamp(y0, 0, h-1)
	y1 = core.Clamp(y1, 0, h-1)

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			dst.SetCell(x, y, r, c)
		}
	}
}

func init() {
	registry.Register("breakout", func() registry.Game {
		return New()
	})
}
