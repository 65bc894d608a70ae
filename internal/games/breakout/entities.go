// Package breakout implements the brickfall simulation core: a paddle
// deflects a ball into a grid of bricks inside a walled arena. The package
// is pure game logic with no platform dependencies; the tui platform feeds
// it intents and projects its state onto the terminal.
package breakout

// Fixed simulation timestep in seconds. The platform may render at any
// rate; it invokes Step a whole number of times per frame to preserve
// this timestep.
const TimeStep = 1.0 / 60.0

// Arena constants. These are part of the game's identity and are not
// configurable at runtime.
const (
	CanvasWidth  = 1000.0
	CanvasHeight = 800.0

	WallThickness = 20.0

	PaddleWidth   = 120.0
	PaddleHeight  = 20.0
	PaddleSpeed   = 800.0
	PaddlePadding = 20.0

	BallSize  = 30.0
	BallSpeed = 500.0

	// Added to |vy| every time a brick is destroyed.
	BrickSpeedIncrease = 10.0

	BrickColumns = 12
	BrickRows    = 6
	BrickWidth   = 70.0
	BrickHeight  = 25.0
	BrickStepX   = 75.0
	BrickStepY   = 30.0

	StartingLives = 3

	// Number of cycling brick row colors.
	BrickColorCount = 6
)

// Wall edge coordinates (arena-centered, y up).
const (
	LeftWall   = -CanvasWidth / 2
	RightWall  = CanvasWidth / 2
	BottomWall = -CanvasHeight / 2
	TopWall    = CanvasHeight / 2
)

// Paddle horizontal travel bounds.
const (
	PaddleMinX = LeftWall + WallThickness/2 + PaddleWidth/2 + PaddlePadding
	PaddleMaxX = RightWall - WallThickness/2 - PaddleWidth/2 - PaddlePadding
)

// ballStart is where the ball sits before the first serve snaps it to
// the paddle.
var ballStart = Vec2{X: 0, Y: -50}

// Ball is the single moving entity. Its velocity is mutated every tick by
// the collision response; its size never changes.
type Ball struct {
	Pos  Vec2
	Size Vec2
	Vel  Vec2
}

// Paddle is the player entity. Only X moves; Y is fixed just above the
// bottom wall.
type Paddle struct {
	Pos  Vec2
	Size Vec2
}

// Wall is a static arena boundary. Bottom marks the wall whose contact
// costs a life.
type Wall struct {
	Pos    Vec2
	Size   Vec2
	Bottom bool
}

// Brick is a destructible collider. ID is the stable arena index
// (row*columns + column); Color is the row's palette index.
type Brick struct {
	ID    int
	Pos   Vec2
	Size  Vec2
	Color int
}

// State holds the score, lives and serve flag.
// BallWaiting is true only while the ball has zero velocity and is
// positioned relative to the paddle. Lives never increase; reaching 0
// is terminal.
type State struct {
	Score       int
	Lives       int
	BallWaiting bool
}

// GameOver reports whether the terminal state has been reached.
func (s State) GameOver() bool {
	return s.Lives == 0
}

// World owns every entity and the game state. Entities have single owners:
// one ball slot, one paddle slot, four wall slots, one ordered brick slice.
// All mutation happens inside Step on one logical thread of control.
type World struct {
	Ball   Ball
	Paddle Paddle
	Walls  [4]Wall
	Bricks []Brick
	State  State

	ready bool
}

// NewWorld builds the arena: walls, paddle, ball on its starting position,
// and the full 12x6 brick grid. The returned world is in the serve state
// with the full complement of lives.
func NewWorld() *World {
	w := &World{
		Ball: Ball{
			Pos:  ballStart,
			Size: Vec2{X: BallSize, Y: BallSize},
		},
		Paddle: Paddle{
			Pos:  Vec2{X: 0, Y: BottomWall + 30},
			Size: Vec2{X: PaddleWidth, Y: PaddleHeight},
		},
		Walls: [4]Wall{
			{Pos: Vec2{X: LeftWall, Y: 0}, Size: Vec2{X: WallThickness, Y: CanvasHeight + WallThickness}},
			{Pos: Vec2{X: RightWall, Y: 0}, Size: Vec2{X: WallThickness, Y: CanvasHeight + WallThickness}},
			{Pos: Vec2{X: 0, Y: BottomWall}, Size: Vec2{X: CanvasWidth + WallThickness, Y: WallThickness}, Bottom: true},
			{Pos: Vec2{X: 0, Y: TopWall}, Size: Vec2{X: CanvasWidth + WallThickness, Y: WallThickness}},
		},
		State: State{
			Score:       0,
			Lives:       StartingLives,
			BallWaiting: true,
		},
		ready: true,
	}

	w.Bricks = make([]Brick, 0, BrickColumns*BrickRows)
	for col := 0; col < BrickColumns; col++ {
		for row := 0; row < BrickRows; row++ {
			w.Bricks = append(w.Bricks, Brick{
				ID: row*BrickColumns + col,
				Pos: Vec2{
					X: LeftWall + 80 + float64(col)*BrickStepX,
					Y: TopWall - (80 + float64(row)*BrickStepY),
				},
				Size:  Vec2{X: BrickWidth, Y: BrickHeight},
				Color: row % BrickColorCount,
			})
		}
	}

	return w
}
