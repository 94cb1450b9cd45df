package entity

import "circlegame/internal/input"

// Bounds is the region the circle's center may move in. Height is the
// play area, not the window.
type Bounds struct {
	Width, Height int
}

type Circle struct {
	X, Y   int
	Radius int
	Speed  int // Pixels per frame
}

// NewCircle places a circle at the center of b.
func NewCircle(b Bounds, radius, speed int) *Circle {
	return &Circle{
		X:      b.Width / 2,
		Y:      b.Height / 2,
		Radius: radius,
		Speed:  speed,
	}
}

// Move applies each held direction independently. A step that would leave
// the strict margin is dropped, not clamped. Returns the number of dropped
// steps.
//
// Left/up test the position minus speed against the radius, right/down test
// the position plus speed against the far edge minus the radius. Both are
// strict, so the circle halts one step short of touching either edge.
func (c *Circle) Move(d input.Directions, b Bounds) (blocked int) {
	if d.Left {
		if c.X-c.Speed > c.Radius {
			c.X -= c.Speed
		} else {
			blocked++
		}
	}
	if d.Right {
		if c.X+c.Speed < b.Width-c.Radius {
			c.X += c.Speed
		} else {
			blocked++
		}
	}
	if d.Up {
		if c.Y-c.Speed > c.Radius {
			c.Y -= c.Speed
		} else {
			blocked++
		}
	}
	if d.Down {
		if c.Y+c.Speed < b.Height-c.Radius {
			c.Y += c.Speed
		} else {
			blocked++
		}
	}
	return blocked
}

// Within reports whether the whole disc lies inside b.
func (c *Circle) Within(b Bounds) bool {
	return c.X >= c.Radius && c.X <= b.Width-c.Radius &&
		c.Y >= c.Radius && c.Y <= b.Height-c.Radius
}

// Contains reports whether the point (px, py) lies on the filled disc.
func (c *Circle) Contains(px, py float64) bool {
	dx := px - float64(c.X)
	dy := py - float64(c.Y)
	r := float64(c.Radius)
	return dx*dx+dy*dy <= r*r
}
