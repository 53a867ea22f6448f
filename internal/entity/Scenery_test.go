package entity

import (
	"errors"
	"testing"

	"github.com/Mshel/junction/internal/geometry"
)

func startTree() Scenery {
	return Scenery{Type: Tree(45, 120, 60), Location: geometry.Point{X: 500, Y: 600}}
}

func circlePlayer(x, y float64) Player {
	return Player{
		Shape:    Circle(50),
		Size:     Size{W: 50, H: 50},
		Location: geometry.Point{X: x, Y: y},
		Color:    Red,
	}
}

func TestTreeShapes(t *testing.T) {
	tree := startTree()

	canopy := tree.Canopy()
	if canopy.X != 522.5 || canopy.Y != 545 || canopy.Radius != 60 {
		t.Fatalf("unexpected canopy %+v", canopy)
	}

	trunk := tree.Trunk()
	if trunk != (geometry.Rectangle{X: 500, Y: 600, Width: 45, Height: 120}) {
		t.Fatalf("unexpected trunk %+v", trunk)
	}
}

func TestTreeCollidesCircle(t *testing.T) {
	tree := startTree()

	tests := []struct {
		name string
		at   geometry.Point
		want bool
	}{
		{"inside trunk", geometry.Point{X: 520, Y: 650}, true},
		{"touching trunk from left", geometry.Point{X: 450, Y: 700}, true},
		{"left of trunk", geometry.Point{X: 440, Y: 700}, false},
		{"inside canopy", geometry.Point{X: 522.5, Y: 500}, true},
		{"above canopy", geometry.Point{X: 522.5, Y: 380}, false},
		{"start position", geometry.Point{X: 50, Y: 50}, false},
		{"below trunk", geometry.Point{X: 520, Y: 771}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tree.Collides(circlePlayer(tt.at.X, tt.at.Y))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("Collides at %+v = %v, want %v", tt.at, got, tt.want)
			}
		})
	}
}

func TestTreeRectanglePlayerUnsupported(t *testing.T) {
	p := Player{Shape: Rectangle(40, 40), Size: Size{W: 10, H: 10}, Location: geometry.Point{X: 520, Y: 650}}

	got, err := startTree().Collides(p)
	if got {
		t.Fatalf("rectangle player must never report a collision")
	}
	if !errors.Is(err, ErrUnsupported) {
		t.Fatalf("expected ErrUnsupported, got %v", err)
	}
}

func TestUnknownPairUnsupported(t *testing.T) {
	s := Scenery{Type: SceneryType{Kind: SceneryKind(42)}}

	_, err := s.Collides(circlePlayer(0, 0))
	if !errors.Is(err, ErrUnsupported) {
		t.Fatalf("expected ErrUnsupported for unregistered scenery kind, got %v", err)
	}
}

func TestSupported(t *testing.T) {
	if !Supported(SceneryTree, ShapeCircle) {
		t.Errorf("tree against circle should be supported")
	}
	if Supported(SceneryTree, ShapeRectangle) {
		t.Errorf("tree against rectangle should not be supported")
	}
}
