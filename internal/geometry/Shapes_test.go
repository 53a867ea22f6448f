package geometry

import "testing"

func TestCircleIntersectsRectangle(t *testing.T) {
	rect := Rectangle{X: 500, Y: 600, Width: 45, Height: 120}

	tests := []struct {
		name   string
		circle Circle
		want   bool
	}{
		{"centre inside", Circle{X: 520, Y: 650, Radius: 1}, true},
		{"centre inside zero radius", Circle{X: 501, Y: 601, Radius: 0}, true},
		{"far left", Circle{X: 300, Y: 650, Radius: 50}, false},
		{"touching left edge", Circle{X: 450, Y: 650, Radius: 50}, true},
		{"just short of left edge", Circle{X: 449.9, Y: 650, Radius: 50}, false},
		{"corner touching", Circle{X: 497, Y: 596, Radius: 5}, true},
		{"corner miss", Circle{X: 496, Y: 596, Radius: 5}, false},
		{"below", Circle{X: 520, Y: 800, Radius: 50}, false},
		{"circle swallows rectangle", Circle{X: 520, Y: 660, Radius: 500}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CircleIntersectsRectangle(tt.circle, rect); got != tt.want {
				t.Fatalf("CircleIntersectsRectangle(%+v) = %v, want %v", tt.circle, got, tt.want)
			}
		})
	}
}

func TestCircleInsideRectangleAlwaysCollides(t *testing.T) {
	rect := Rectangle{X: -10, Y: 20, Width: 30, Height: 15}
	for _, radius := range []float64{0, 0.001, 1, 7.5, 1000} {
		for x := -9.0; x < 20; x += 3.5 {
			for y := 21.0; y < 35; y += 2.5 {
				c := Circle{X: x, Y: y, Radius: radius}
				if !CircleIntersectsRectangle(c, rect) {
					t.Fatalf("centre %v,%v inside rectangle but no collision (radius %v)", x, y, radius)
				}
			}
		}
	}
}

func TestCircleIntersectsCircleSymmetric(t *testing.T) {
	circles := []Circle{
		{X: 0, Y: 0, Radius: 10},
		{X: 15, Y: 0, Radius: 5},
		{X: 15, Y: 0.5, Radius: 5},
		{X: 522.5, Y: 545, Radius: 60},
		{X: 470, Y: 500, Radius: 50},
		{X: -30, Y: -40, Radius: 0},
		{X: 100, Y: 100, Radius: 1},
	}

	for i, a := range circles {
		for j, b := range circles {
			if CircleIntersectsCircle(a, b) != CircleIntersectsCircle(b, a) {
				t.Fatalf("asymmetric result for %d/%d: %+v %+v", i, j, a, b)
			}
		}
	}
}

func TestCircleIntersectsCircle(t *testing.T) {
	a := Circle{X: 0, Y: 0, Radius: 10}
	if !CircleIntersectsCircle(a, Circle{X: 15, Y: 0, Radius: 5}) {
		t.Errorf("tangent circles should collide")
	}
	if CircleIntersectsCircle(a, Circle{X: 15.01, Y: 0, Radius: 5}) {
		t.Errorf("separated circles should not collide")
	}
	if !CircleIntersectsCircle(a, Circle{X: 1, Y: 1, Radius: 1}) {
		t.Errorf("nested circles should collide")
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(-5, 50, 1450); got != 50 {
		t.Errorf("Clamp below = %v", got)
	}
	if got := Clamp(2000, 50, 1450); got != 1450 {
		t.Errorf("Clamp above = %v", got)
	}
	if got := Clamp(700, 50, 1450); got != 700 {
		t.Errorf("Clamp inside = %v", got)
	}
}

func TestContains(t *testing.T) {
	c := Circle{X: 10, Y: 10, Radius: 5}
	if !c.Contains(Point{X: 13, Y: 14}) {
		t.Errorf("point on circle edge should be contained")
	}
	if c.Contains(Point{X: 14, Y: 14}) {
		t.Errorf("point outside circle should not be contained")
	}

	r := Rectangle{X: 0, Y: 0, Width: 4, Height: 2}
	if !r.Contains(Point{X: 4, Y: 2}) {
		t.Errorf("corner should be contained")
	}
	if r.Contains(Point{X: 4.5, Y: 1}) {
		t.Errorf("point right of rectangle should not be contained")
	}
}
