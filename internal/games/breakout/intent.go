package breakout

// Key identifies the keys the simulation cares about.
type Key int

const (
	KeyLeft Key = iota
	KeyRight
	KeySpace
)

// MouseButton identifies mouse buttons the simulation cares about.
type MouseButton int

// MouseLeft is the primary mouse button.
const MouseLeft MouseButton = 0

// Input is the narrow interface to the input collaborator. Cursor reports
// the pointer position in window coordinates (origin top-left, canvas
// units), ok=false when no position is known.
type Input interface {
	KeyDown(k Key) bool
	MouseJustPressed(b MouseButton) bool
	Cursor() (x, y float64, ok bool)
}

// Intent is the engine-agnostic instruction set derived from raw input
// for one tick.
type Intent struct {
	// Move is the keyboard paddle direction: -1, 0 or +1.
	Move float64

	// CursorX is the pointer x in window coordinates; valid when HasCursor.
	// When present, mouse control overwrites the keyboard result.
	CursorX   float64
	HasCursor bool

	// Launch requests releasing a waiting ball.
	Launch bool

	// AimLeft steers the launch velocity to the left when held together
	// with the launch input.
	AimLeft bool
}

// ReadIntent translates the raw input state into this tick's intents.
// Opposing direction keys cancel out; a held left key doubles as the
// launch aim.
func ReadIntent(in Input) Intent {
	var it Intent

	if in.KeyDown(KeyLeft) {
		it.Move--
		it.AimLeft = true
	}
	if in.KeyDown(KeyRight) {
		it.Move++
	}

	it.Launch = in.KeyDown(KeySpace) || in.MouseJustPressed(MouseLeft)

	if x, _, ok := in.Cursor(); ok {
		it.CursorX = x
		it.HasCursor = true
	}

	return it
}
