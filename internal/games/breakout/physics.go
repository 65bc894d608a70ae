package breakout

import "math"

// Vec2 is a 2D vector in arena units. The simulation uses arena-centered
// coordinates with y pointing up; the renderer flips y when projecting to
// screen cells.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Scale returns v scaled by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Side classifies an AABB collision: the side of the collider (B) that the
// ball (A) struck. SideInside covers containment and the ambiguous case
// where A spans B on both axes.
type Side int

const (
	SideLeft Side = iota
	SideRight
	SideTop
	SideBottom
	SideInside
)

// String returns a human-readable name for the side.
func (s Side) String() string {
	switch s {
	case SideLeft:
		return "Left"
	case SideRight:
		return "Right"
	case SideTop:
		return "Top"
	case SideBottom:
		return "Bottom"
	case SideInside:
		return "Inside"
	default:
		return "Unknown"
	}
}

// Collide performs an AABB overlap test between two boxes given by center
// position and full size, and classifies the hit by the side of B that A
// struck. It returns ok=false when the boxes do not overlap on both axes.
//
// A side is reported on an axis only when A sticks out past B's
// corresponding edge on exactly that axis; when both axes qualify, the
// deeper penetration wins (x wins ties). When neither qualifies the result
// is SideInside. Pure function: it is called once per ball-collider pair
// per tick and must be deterministic.
func Collide(aPos, aSize, bPos, bSize Vec2) (Side, bool) {
	aMinX, aMaxX := aPos.X-aSize.X/2, aPos.X+aSize.X/2
	aMinY, aMaxY := aPos.Y-aSize.Y/2, aPos.Y+aSize.Y/2
	bMinX, bMaxX := bPos.X-bSize.X/2, bPos.X+bSize.X/2
	bMinY, bMaxY := bPos.Y-bSize.Y/2, bPos.Y+bSize.Y/2

	if aMinX >= bMaxX || aMaxX <= bMinX || aMinY >= bMaxY || aMaxY <= bMinY {
		return SideInside, false
	}

	var (
		xSide, ySide       Side
		xDepth, yDepth     float64
		hasXSide, hasYSide bool
	)

	switch {
	case aMinX < bMinX && aMaxX > bMinX && aMaxX < bMaxX:
		xSide, xDepth, hasXSide = SideLeft, bMinX-aMaxX, true
	case aMinX > bMinX && aMinX < bMaxX && aMaxX > bMaxX:
		xSide, xDepth, hasXSide = SideRight, aMinX-bMaxX, true
	}

	switch {
	case aMinY < bMinY && aMaxY > bMinY && aMaxY < bMaxY:
		ySide, yDepth, hasYSide = SideBottom, bMinY-aMaxY, true
	case aMinY > bMinY && aMinY < bMaxY && aMaxY > bMaxY:
		ySide, yDepth, hasYSide = SideTop, aMinY-bMaxY, true
	}

	switch {
	case hasXSide && hasYSide:
		if math.Abs(yDepth) < math.Abs(xDepth) {
			return ySide, true
		}
		return xSide, true
	case hasXSide:
		return xSide, true
	case hasYSide:
		return ySide, true
	default:
		return SideInside, true
	}
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
