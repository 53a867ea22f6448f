package entity

import (
	"fmt"

	"github.com/Mshel/junction/internal/geometry"
)

// CollisionFunc decides whether one scenery kind overlaps one player shape.
type CollisionFunc func(s Scenery, p Player) (bool, error)

type collisionKey struct {
	scenery SceneryKind
	shape   ShapeKind
}

var collisionTable = map[collisionKey]CollisionFunc{}

func registerCollision(scenery SceneryKind, shape ShapeKind, fn CollisionFunc) {
	collisionTable[collisionKey{scenery, shape}] = fn
}

func init() {
	registerCollision(SceneryTree, ShapeCircle, treeCollidesCircle)
	registerCollision(SceneryTree, ShapeRectangle, unsupportedCollision)
}

// Supported reports whether a collision routine exists for the pair.
func Supported(scenery SceneryKind, shape ShapeKind) bool {
	fn, ok := collisionTable[collisionKey{scenery, shape}]
	if !ok {
		return false
	}
	_, err := fn(Scenery{Type: SceneryType{Kind: scenery}}, Player{Shape: Shape{Kind: shape}})
	return err == nil
}

func treeCollidesCircle(s Scenery, p Player) (bool, error) {
	playerCircle, err := p.BoundingCircle()
	if err != nil {
		return false, err
	}

	return geometry.CircleIntersectsRectangle(playerCircle, s.Trunk()) ||
		geometry.CircleIntersectsCircle(playerCircle, s.Canopy()), nil
}

// rectangle players have no collision model, the answer stays false
func unsupportedCollision(s Scenery, p Player) (bool, error) {
	return false, fmt.Errorf("%s against %s player: %w", s.Type.Kind, p.Shape.Kind, ErrUnsupported)
}
