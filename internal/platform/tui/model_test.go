package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vkazmin/brickfall/internal/core"
	"github.com/vkazmin/brickfall/internal/games/breakout"
)

func TestResizeKeepsGameOverTerminal(t *testing.T) {
	game := breakout.New()
	cfg := core.DefaultConfig()
	game.Reset(cfg)
	game.World().State.Lives = 0

	m := NewModel(game, nil, cfg, true)

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = updated.(Model)

	if lives := game.World().State.Lives; lives != 0 {
		t.Errorf("lives = %d after resize, expected terminal 0", lives)
	}
	if !game.World().State.BallWaiting {
		t.Error("ball no longer waiting after resize")
	}

	// A launch after the resize must still be refused
	frame := core.NewInputFrame()
	frame.Set(core.ActionLaunch)
	game.Step(frame)
	if !game.World().State.BallWaiting {
		t.Error("launch accepted after game over")
	}
}

func TestResizeKeepsMidGameProgress(t *testing.T) {
	game := breakout.New()
	cfg := core.DefaultConfig()
	game.Reset(cfg)
	game.World().State.Score = 17
	game.World().State.Lives = 1

	m := NewModel(game, nil, cfg, true)

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = updated.(Model)

	if score := game.World().State.Score; score != 17 {
		t.Errorf("score = %d after resize, expected 17", score)
	}
	if lives := game.World().State.Lives; lives != 1 {
		t.Errorf("lives = %d after resize, expected 1", lives)
	}
	if m.screen.Width() != 120 || m.screen.Height() != 40 {
		t.Errorf("screen = %dx%d, expected 120x40", m.screen.Width(), m.screen.Height())
	}
}
