package breakout

import "testing"

// fakeInput is a scriptable Input for tests.
type fakeInput struct {
	keys      map[Key]bool
	mouse     bool
	cursorX   float64
	cursorY   float64
	hasCursor bool
}

func (f fakeInput) KeyDown(k Key) bool                  { return f.keys[k] }
func (f fakeInput) MouseJustPressed(b MouseButton) bool { return b == MouseLeft && f.mouse }
func (f fakeInput) Cursor() (x, y float64, ok bool) {
	return f.cursorX, f.cursorY, f.hasCursor
}

func TestReadIntentMovement(t *testing.T) {
	tests := []struct {
		name         string
		keys         map[Key]bool
		expectedMove float64
		expectedAim  bool
	}{
		{"no keys", nil, 0, false},
		{"left only", map[Key]bool{KeyLeft: true}, -1, true},
		{"right only", map[Key]bool{KeyRight: true}, 1, false},
		{"both cancel out", map[Key]bool{KeyLeft: true, KeyRight: true}, 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			it := ReadIntent(fakeInput{keys: tc.keys})
			if it.Move != tc.expectedMove {
				t.Errorf("Move = %v, expected %v", it.Move, tc.expectedMove)
			}
			if it.AimLeft != tc.expectedAim {
				t.Errorf("AimLeft = %v, expected %v", it.AimLeft, tc.expectedAim)
			}
		})
	}
}

func TestReadIntentLaunch(t *testing.T) {
	tests := []struct {
		name     string
		in       fakeInput
		expected bool
	}{
		{"no launch input", fakeInput{}, false},
		{"space pressed", fakeInput{keys: map[Key]bool{KeySpace: true}}, true},
		{"mouse clicked", fakeInput{mouse: true}, true},
		{"both pressed", fakeInput{keys: map[Key]bool{KeySpace: true}, mouse: true}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if it := ReadIntent(tc.in); it.Launch != tc.expected {
				t.Errorf("Launch = %v, expected %v", it.Launch, tc.expected)
			}
		})
	}
}

func TestReadIntentCursor(t *testing.T) {
	// No cursor known
	it := ReadIntent(fakeInput{})
	if it.HasCursor {
		t.Error("HasCursor = true without a cursor position")
	}

	// Cursor position passes through
	it = ReadIntent(fakeInput{cursorX: 640, cursorY: 200, hasCursor: true})
	if !it.HasCursor {
		t.Fatal("HasCursor = false with a cursor position")
	}
	if it.CursorX != 640 {
		t.Errorf("CursorX = %v, expected 640", it.CursorX)
	}
}
