package breakout

import "testing"

func TestCollideNoOverlap(t *testing.T) {
	ball := Vec2{X: 30, Y: 30}

	tests := []struct {
		name        string
		aPos        Vec2
		bPos, bSize Vec2
	}{
		{
			name:  "far apart horizontally",
			aPos:  Vec2{X: 0, Y: 0},
			bPos:  Vec2{X: 100, Y: 0},
			bSize: Vec2{X: 30, Y: 30},
		},
		{
			name:  "far apart vertically",
			aPos:  Vec2{X: 0, Y: 0},
			bPos:  Vec2{X: 0, Y: 100},
			bSize: Vec2{X: 30, Y: 30},
		},
		{
			name:  "touching edges (strict)",
			aPos:  Vec2{X: 0, Y: 0},
			bPos:  Vec2{X: 30, Y: 0},
			bSize: Vec2{X: 30, Y: 30},
		},
		{
			name:  "touching corners (strict)",
			aPos:  Vec2{X: 0, Y: 0},
			bPos:  Vec2{X: 30, Y: 30},
			bSize: Vec2{X: 30, Y: 30},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, ok := Collide(tc.aPos, ball, tc.bPos, tc.bSize); ok {
				t.Errorf("Collide() reported a hit, expected none")
			}
		})
	}
}

func TestCollideSides(t *testing.T) {
	ball := Vec2{X: 30, Y: 30}
	box := Vec2{X: 40, Y: 40}

	tests := []struct {
		name     string
		aPos     Vec2
		expected Side
	}{
		{"sticking out left", Vec2{X: -20, Y: 0}, SideLeft},
		{"sticking out right", Vec2{X: 20, Y: 0}, SideRight},
		{"sticking out above", Vec2{X: 0, Y: 20}, SideTop},
		{"sticking out below", Vec2{X: 0, Y: -20}, SideBottom},
		{"fully contained", Vec2{X: 0, Y: 0}, SideInside},
		// Both axes qualify: deeper penetration decides
		{"corner, shallower on y", Vec2{X: -22, Y: -24}, SideBottom},
		{"corner, shallower on x", Vec2{X: -24, Y: -22}, SideLeft},
		// Equal depths: x wins the tie
		{"corner, equal depths", Vec2{X: -22, Y: -22}, SideLeft},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			side, ok := Collide(tc.aPos, ball, Vec2{}, box)
			if !ok {
				t.Fatalf("Collide() reported no hit, expected %v", tc.expected)
			}
			if side != tc.expected {
				t.Errorf("Collide() = %v, expected %v", side, tc.expected)
			}
		})
	}
}

func TestCollideContainment(t *testing.T) {
	// A small box fully inside a big one reports Inside, not a side.
	small := Vec2{X: 10, Y: 10}
	big := Vec2{X: 100, Y: 100}

	side, ok := Collide(Vec2{X: 5, Y: -5}, small, Vec2{}, big)
	if !ok {
		t.Fatal("Collide() reported no hit for contained box")
	}
	if side != SideInside {
		t.Errorf("Collide() = %v, expected Inside", side)
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		name          string
		val, min, max float64
		expected      float64
	}{
		{"below range", -5, 0, 10, 0},
		{"in range", 5, 0, 10, 5},
		{"above range", 15, 0, 10, 10},
		{"at min", 0, 0, 10, 0},
		{"at max", 10, 0, 10, 10},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ClampF(tc.val, tc.min, tc.max); got != tc.expected {
				t.Errorf("ClampF(%v, %v, %v) = %v, expected %v",
					tc.val, tc.min, tc.max, got, tc.expected)
			}
		})
	}
}

func TestSideString(t *testing.T) {
	tests := []struct {
		side     Side
		expected string
	}{
		{SideLeft, "Left"},
		{SideRight, "Right"},
		{SideTop, "Top"},
		{SideBottom, "Bottom"},
		{SideInside, "Inside"},
	}

	for _, tc := range tests {
		if got := tc.side.String(); got != tc.expected {
			t.Errorf("Side(%d).String() = %q, expected %q", tc.side, got, tc.expected)
		}
	}
}
