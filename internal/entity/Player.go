package entity

import (
	"errors"
	"image/color"

	"github.com/Mshel/junction/internal/geometry"
)

// Size scales a unit movement delta into canvas units, per axis.
type Size struct {
	W, H float64
}

type Player struct {
	Shape    Shape
	Size     Size
	Location geometry.Point
	Color    color.RGBA
}

func NewPlayer(shape Shape, size Size, location geometry.Point, c color.RGBA) (Player, error) {
	if size.W <= 0 || size.H <= 0 {
		return Player{}, errors.New("player step size must be positive")
	}
	return Player{
		Shape:    shape,
		Size:     size,
		Location: location,
		Color:    c,
	}, nil
}

// At returns a copy of the player standing at location.
func (p Player) At(location geometry.Point) Player {
	p.Location = location
	return p
}

// BoundingCircle is the circle a circular player occupies at its location.
func (p Player) BoundingCircle() (geometry.Circle, error) {
	if p.Shape.Kind != ShapeCircle {
		return geometry.Circle{}, ErrUnsupported
	}
	return geometry.Circle{X: p.Location.X, Y: p.Location.Y, Radius: p.Shape.Radius}, nil
}
