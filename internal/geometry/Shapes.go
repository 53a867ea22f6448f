package geometry

import "math"

type Point struct {
	X, Y float64
}

// Circle is a positioned circle, centre at (X, Y).
type Circle struct {
	X      float64
	Y      float64
	Radius float64
}

// Rectangle is axis aligned, (X, Y) is the top left corner.
type Rectangle struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// CircleIntersectsRectangle clamps the circle centre to the closest point of
// the rectangle and checks that point against the radius.
func CircleIntersectsRectangle(c Circle, r Rectangle) bool {
	testX := Clamp(c.X, r.X, r.X+r.Width)
	testY := Clamp(c.Y, r.Y, r.Y+r.Height)

	return math.Hypot(c.X-testX, c.Y-testY) <= c.Radius
}

func CircleIntersectsCircle(a, b Circle) bool {
	return math.Hypot(a.X-b.X, a.Y-b.Y) <= a.Radius+b.Radius
}

// Clamp saturates value into [lo, hi].
func Clamp(value, lo, hi float64) float64 {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}

// Contains reports whether p lies inside or on the circle.
func (c Circle) Contains(p Point) bool {
	return CircleIntersectsCircle(c, Circle{X: p.X, Y: p.Y})
}

// Contains reports whether p lies inside or on the rectangle.
func (r Rectangle) Contains(p Point) bool {
	return CircleIntersectsRectangle(Circle{X: p.X, Y: p.Y}, r)
}

func (p Point) Add(dx, dy float64) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}
