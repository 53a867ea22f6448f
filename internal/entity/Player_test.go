package entity

import (
	"errors"
	"testing"

	"github.com/Mshel/junction/internal/geometry"
)

func TestNewPlayerRejectsNonPositiveSize(t *testing.T) {
	for _, size := range []Size{{W: 0, H: 1}, {W: 1, H: 0}, {W: -5, H: 5}} {
		if _, err := NewPlayer(Circle(10), size, geometry.Point{}, Red); err == nil {
			t.Errorf("expected error for size %+v", size)
		}
	}

	p, err := NewPlayer(Circle(10), Size{W: 5, H: 5}, geometry.Point{X: 1, Y: 2}, Blue)
	if err != nil {
		t.Fatalf("NewPlayer: %v", err)
	}
	if p.Location != (geometry.Point{X: 1, Y: 2}) || p.Color != Blue {
		t.Fatalf("unexpected player %+v", p)
	}
}

func TestPlayerAtDoesNotMutate(t *testing.T) {
	p := circlePlayer(50, 50)
	moved := p.At(geometry.Point{X: 100, Y: 50})

	if p.Location.X != 50 {
		t.Fatalf("source player moved to %+v", p.Location)
	}
	if moved.Location.X != 100 || moved.Shape != p.Shape {
		t.Fatalf("unexpected copy %+v", moved)
	}
}

func TestBoundingCircle(t *testing.T) {
	c, err := circlePlayer(3, 4).BoundingCircle()
	if err != nil {
		t.Fatalf("BoundingCircle: %v", err)
	}
	if c != (geometry.Circle{X: 3, Y: 4, Radius: 50}) {
		t.Fatalf("unexpected circle %+v", c)
	}

	_, err = Player{Shape: Rectangle(1, 1)}.BoundingCircle()
	if !errors.Is(err, ErrUnsupported) {
		t.Fatalf("expected ErrUnsupported, got %v", err)
	}
}

func TestColorByName(t *testing.T) {
	if c, ok := ColorByName("red"); !ok || c != Red {
		t.Errorf("red lookup = %v %v", c, ok)
	}
	if _, ok := ColorByName("mauve"); ok {
		t.Errorf("unknown color should not resolve")
	}
}
