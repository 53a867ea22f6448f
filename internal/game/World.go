package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/Mshel/junction/internal/entity"
	"github.com/Mshel/junction/internal/geometry"
	"github.com/charmbracelet/log"
)

type Bounds struct {
	Width, Height float64
}

// Delta is a unit movement request, scaled by the player's step size.
type Delta struct {
	Dx, Dy float64
}

type Outcome int

const (
	OutcomeIdle Outcome = iota
	OutcomeMoved
	OutcomeClamped // accepted, but saturated against the world edge
	OutcomeBlocked
	OutcomePlanted
)

func (o Outcome) String() string {
	switch o {
	case OutcomeIdle:
		return "idle"
	case OutcomeMoved:
		return "moved"
	case OutcomeClamped:
		return "clamped"
	case OutcomeBlocked:
		return "blocked"
	case OutcomePlanted:
		return "planted"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

type Result struct {
	Outcome  Outcome
	Location geometry.Point
}

// Stats counts what happened during one walk.
type Stats struct {
	Accepted int
	Blocked  int
	Planted  int
}

// World owns the controlled player and the scenery. It is driven from a
// single event loop and does no locking.
type World struct {
	bounds      Bounds
	spawnMargin float64
	player      entity.Player
	scenery     []entity.Scenery
	rng         *rand.Rand
	stats       Stats
}

func NewWorld(cfg *Config, rng *rand.Rand) (*World, error) {
	player, err := cfg.PlayerEntity()
	if err != nil {
		return nil, err
	}
	scenery, err := cfg.InitialScenery()
	if err != nil {
		return nil, err
	}
	if rng == nil {
		seed := cfg.World.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		rng = rand.New(rand.NewSource(seed))
	}

	return &World{
		bounds:      Bounds{Width: cfg.World.Width, Height: cfg.World.Height},
		spawnMargin: cfg.World.SpawnMargin,
		player:      player,
		scenery:     scenery,
		rng:         rng,
	}, nil
}

func (w *World) Player() entity.Player { return w.player }

func (w *World) Bounds() Bounds { return w.bounds }

func (w *World) Stats() Stats { return w.stats }

// clampRange returns the allowed centre range for shape.
func (w *World) clampRange(shape entity.Shape) (minX, maxX, minY, maxY float64, err error) {
	switch shape.Kind {
	case entity.ShapeCircle:
		r := shape.Radius
		return r, w.bounds.Width - r, r, w.bounds.Height - r, nil
	default:
		return 0, 0, 0, 0, fmt.Errorf("clamp %s player: %w", shape.Kind, entity.ErrUnsupported)
	}
}

// TryMove computes where p would end up after d and checks that spot
// against every scenery entry. It never mutates the world; ok is false when
// the move is blocked.
func (w *World) TryMove(p entity.Player, d Delta) (geometry.Point, bool, error) {
	minX, maxX, minY, maxY, err := w.clampRange(p.Shape)
	if err != nil {
		return geometry.Point{}, false, err
	}

	candidate := geometry.Point{
		X: geometry.Clamp(p.Location.X+d.Dx*p.Size.W, minX, maxX),
		Y: geometry.Clamp(p.Location.Y+d.Dy*p.Size.H, minY, maxY),
	}

	future := p.At(candidate)
	for _, scenery := range w.scenery {
		collides, err := scenery.Collides(future)
		if err != nil {
			return geometry.Point{}, false, err
		}
		if collides {
			return geometry.Point{}, false, nil
		}
	}

	return candidate, true, nil
}

// Commit stores an accepted location on the controlled player.
func (w *World) Commit(location geometry.Point) {
	w.player.Location = location
}

// Move validates d for the controlled player and commits it when accepted.
func (w *World) Move(d Delta) (Result, error) {
	from := w.player.Location

	to, ok, err := w.TryMove(w.player, d)
	if err != nil {
		return Result{Outcome: OutcomeIdle, Location: from}, err
	}
	if !ok {
		w.stats.Blocked++
		log.Debug("Move blocked by scenery", "x", from.X, "y", from.Y, "dx", d.Dx, "dy", d.Dy)
		return Result{Outcome: OutcomeBlocked, Location: from}, nil
	}

	w.Commit(to)
	w.stats.Accepted++

	unclamped := from.Add(d.Dx*w.player.Size.W, d.Dy*w.player.Size.H)
	if to != unclamped {
		return Result{Outcome: OutcomeClamped, Location: to}, nil
	}
	return Result{Outcome: OutcomeMoved, Location: to}, nil
}

// SpawnScenery plants kind at a uniformly random spot inside the spawn
// margin. Overlap with existing scenery is allowed.
func (w *World) SpawnScenery(kind entity.SceneryType) entity.Scenery {
	x := w.randomBetween(w.spawnMargin, w.bounds.Width-w.spawnMargin)
	y := w.randomBetween(w.spawnMargin, w.bounds.Height-w.spawnMargin)

	return w.AddScenery(geometry.Point{X: x, Y: y}, kind)
}

func (w *World) AddScenery(location geometry.Point, kind entity.SceneryType) entity.Scenery {
	scenery := entity.Scenery{Type: kind, Location: location}
	w.scenery = append(w.scenery, scenery)
	w.stats.Planted++
	log.Debug("Scenery planted", "kind", kind.Kind, "x", location.X, "y", location.Y, "total", len(w.scenery))
	return scenery
}

func (w *World) randomBetween(min, max float64) float64 {
	return min + w.rng.Float64()*(max-min)
}

// Apply carries out a decoded intent.
func (w *World) Apply(intent Intent) (Result, error) {
	switch intent.Kind {
	case IntentMove:
		return w.Move(intent.Delta)
	case IntentSpawnScenery:
		planted := w.SpawnScenery(intent.Scenery)
		return Result{Outcome: OutcomePlanted, Location: planted.Location}, nil
	default:
		return Result{Outcome: OutcomeIdle, Location: w.player.Location}, nil
	}
}

// Snapshot is a read only copy of the world for rendering.
type Snapshot struct {
	Bounds  Bounds
	Player  entity.Player
	Scenery []entity.Scenery
	Stats   Stats
}

func (w *World) Snapshot() Snapshot {
	scenery := make([]entity.Scenery, len(w.scenery))
	copy(scenery, w.scenery)

	return Snapshot{
		Bounds:  w.bounds,
		Player:  w.player,
		Scenery: scenery,
		Stats:   w.stats,
	}
}
