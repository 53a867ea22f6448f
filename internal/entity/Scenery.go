package entity

import (
	"fmt"

	"github.com/Mshel/junction/internal/geometry"
)

type SceneryKind int

const (
	SceneryTree SceneryKind = iota
)

func (k SceneryKind) String() string {
	switch k {
	case SceneryTree:
		return "tree"
	default:
		return fmt.Sprintf("scenery(%d)", int(k))
	}
}

// canopyOverlap is how far the canopy reaches down into the trunk.
const canopyOverlap = 5.0

// SceneryType carries the kind specific dimensions. Only trees exist for now.
type SceneryType struct {
	Kind       SceneryKind
	BaseWidth  float64
	BaseHeight float64
	TopRadius  float64
}

func Tree(baseWidth, baseHeight, topRadius float64) SceneryType {
	return SceneryType{
		Kind:       SceneryTree,
		BaseWidth:  baseWidth,
		BaseHeight: baseHeight,
		TopRadius:  topRadius,
	}
}

type Scenery struct {
	Type     SceneryType
	Location geometry.Point
}

// Trunk is the rectangular base of a tree, anchored at the scenery location.
func (s Scenery) Trunk() geometry.Rectangle {
	return geometry.Rectangle{
		X:      s.Location.X,
		Y:      s.Location.Y,
		Width:  s.Type.BaseWidth,
		Height: s.Type.BaseHeight,
	}
}

// Canopy sits centred above the trunk.
func (s Scenery) Canopy() geometry.Circle {
	return geometry.Circle{
		X:      s.Location.X + s.Type.BaseWidth/2,
		Y:      s.Location.Y - s.Type.TopRadius + canopyOverlap,
		Radius: s.Type.TopRadius,
	}
}

// Collides tests the player at its current Location, which callers set to
// the candidate position before asking.
func (s Scenery) Collides(p Player) (bool, error) {
	fn, ok := collisionTable[collisionKey{s.Type.Kind, p.Shape.Kind}]
	if !ok {
		return false, fmt.Errorf("%s against %s player: %w", s.Type.Kind, p.Shape.Kind, ErrUnsupported)
	}
	return fn(s, p)
}
