package game

import "github.com/Mshel/junction/internal/entity"

type IntentKind int

const (
	IntentNone IntentKind = iota
	IntentMove
	IntentSpawnScenery
)

// Intent is a decoded user action, independent of the device it came from.
type Intent struct {
	Kind    IntentKind
	Delta   Delta
	Scenery entity.SceneryType
}

// PlantKey plants a tree at a random spot.
const PlantKey = "t"

// DefaultTree is the tree planted by PlantKey.
var DefaultTree = entity.Tree(45, 120, 60)

var moveKeys = map[string]Delta{
	"right": {Dx: 1, Dy: 0},
	"left":  {Dx: -1, Dy: 0},
	"up":    {Dx: 0, Dy: -1},
	"down":  {Dx: 0, Dy: 1},
}

func MoveIntent(d Delta) Intent {
	return Intent{Kind: IntentMove, Delta: d}
}

func SpawnIntent(kind entity.SceneryType) Intent {
	return Intent{Kind: IntentSpawnScenery, Scenery: kind}
}

// MapKeyToIntent translates a key identifier, as produced by
// tea.KeyMsg.String(), into an intent. Unknown keys map to IntentNone.
func MapKeyToIntent(key string) Intent {
	if d, ok := moveKeys[key]; ok {
		return MoveIntent(d)
	}

	switch key {
	case PlantKey, "T":
		return SpawnIntent(DefaultTree)
	default:
		return Intent{Kind: IntentNone}
	}
}
