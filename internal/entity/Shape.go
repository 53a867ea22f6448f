package entity

import (
	"errors"
	"fmt"
)

// ErrUnsupported marks shape and scenery combinations the core does not model yet.
var ErrUnsupported = errors.New("not implemented")

type ShapeKind int

const (
	ShapeCircle ShapeKind = iota
	ShapeRectangle
)

func (k ShapeKind) String() string {
	switch k {
	case ShapeCircle:
		return "circle"
	case ShapeRectangle:
		return "rectangle"
	default:
		return fmt.Sprintf("shape(%d)", int(k))
	}
}

// Shape is either a circle (Radius) or a rectangle (Width, Height), picked by Kind.
type Shape struct {
	Kind   ShapeKind
	Radius float64
	Width  float64
	Height float64
}

func Circle(radius float64) Shape {
	return Shape{Kind: ShapeCircle, Radius: radius}
}

func Rectangle(width, height float64) Shape {
	return Shape{Kind: ShapeRectangle, Width: width, Height: height}
}
