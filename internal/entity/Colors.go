package entity

import "image/color"

var (
	Red   = color.RGBA{R: 255, A: 255}
	Green = color.RGBA{G: 255, A: 255}
	Blue  = color.RGBA{B: 255, A: 255}
	White = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black = color.RGBA{A: 255}
)

var namedColors = map[string]color.RGBA{
	"red":   Red,
	"green": Green,
	"blue":  Blue,
	"white": White,
	"black": Black,
}

// ColorByName looks up one of the palette colors by its lower case name.
func ColorByName(name string) (color.RGBA, bool) {
	c, ok := namedColors[name]
	return c, ok
}
