package game

import (
	"errors"
	"fmt"
	"os"

	lua "github.com/yuin/gopher-lua"
)

const autopilotFunction = "nextMove"

// Autopilot lets a Lua script steer the player. The script defines
//
//	function nextMove(player, world) ... end
//
// returning {Dx=..., Dy=...} to move, {plant=true} to plant a tree, or nil.
type Autopilot struct {
	state      *lua.LState
	everyTicks int
	ticks      int
}

func LoadAutopilot(path string, everyTicks int) (*Autopilot, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read autopilot script %s: %w", path, err)
	}
	return NewAutopilot(string(source), everyTicks)
}

func NewAutopilot(source string, everyTicks int) (*Autopilot, error) {
	if everyTicks <= 0 {
		everyTicks = 1
	}

	state := lua.NewState()
	if err := state.DoString(source); err != nil {
		state.Close()
		return nil, fmt.Errorf("could not parse autopilot script: %w", err)
	}
	if state.GetGlobal(autopilotFunction).Type() != lua.LTFunction {
		state.Close()
		return nil, errors.New("autopilot script does not define " + autopilotFunction)
	}

	return &Autopilot{state: state, everyTicks: everyTicks}, nil
}

func (a *Autopilot) Close() {
	a.state.Close()
}

// Tick advances the autopilot clock and asks the script for an intent every
// everyTicks ticks. Other ticks return IntentNone.
func (a *Autopilot) Tick(snap Snapshot) (Intent, error) {
	a.ticks++
	if a.ticks%a.everyTicks != 0 {
		return Intent{Kind: IntentNone}, nil
	}
	return a.NextIntent(snap)
}

func (a *Autopilot) NextIntent(snap Snapshot) (Intent, error) {
	a.state.Push(a.state.GetGlobal(autopilotFunction))
	a.state.Push(a.playerTable(snap))
	a.state.Push(a.worldTable(snap))
	if err := a.state.PCall(2, 1, nil); err != nil {
		return Intent{Kind: IntentNone}, fmt.Errorf("could not execute autopilot script: %w", err)
	}

	ret := a.state.Get(-1)
	a.state.Pop(1)

	switch value := ret.(type) {
	case *lua.LNilType:
		return Intent{Kind: IntentNone}, nil
	case *lua.LTable:
		return convertLuaIntentTable(value), nil
	default:
		return Intent{Kind: IntentNone}, errors.New("autopilot returned " + ret.Type().String() + ", expected table")
	}
}

func (a *Autopilot) playerTable(snap Snapshot) *lua.LTable {
	p := snap.Player
	tbl := a.state.NewTable()
	tbl.RawSetString("x", lua.LNumber(p.Location.X))
	tbl.RawSetString("y", lua.LNumber(p.Location.Y))
	tbl.RawSetString("radius", lua.LNumber(p.Shape.Radius))
	tbl.RawSetString("step_width", lua.LNumber(p.Size.W))
	tbl.RawSetString("step_height", lua.LNumber(p.Size.H))
	return tbl
}

func (a *Autopilot) worldTable(snap Snapshot) *lua.LTable {
	tbl := a.state.NewTable()
	tbl.RawSetString("width", lua.LNumber(snap.Bounds.Width))
	tbl.RawSetString("height", lua.LNumber(snap.Bounds.Height))
	tbl.RawSetString("accepted", lua.LNumber(snap.Stats.Accepted))
	tbl.RawSetString("blocked", lua.LNumber(snap.Stats.Blocked))
	tbl.RawSetString("planted", lua.LNumber(snap.Stats.Planted))

	trees := a.state.NewTable()
	for _, s := range snap.Scenery {
		tree := a.state.NewTable()
		tree.RawSetString("x", lua.LNumber(s.Location.X))
		tree.RawSetString("y", lua.LNumber(s.Location.Y))
		trees.Append(tree)
	}
	tbl.RawSetString("scenery", trees)
	return tbl
}

// convertLuaIntentTable keeps only the sign of Dx and Dy and drops Dy when
// both are set, so scripts move one axis at a time like the keyboard does.
func convertLuaIntentTable(luaTbl *lua.LTable) Intent {
	if lua.LVAsBool(luaTbl.RawGetString("plant")) {
		return SpawnIntent(DefaultTree)
	}

	d := Delta{
		Dx: sign(float64(lua.LVAsNumber(luaTbl.RawGetString("Dx")))),
		Dy: sign(float64(lua.LVAsNumber(luaTbl.RawGetString("Dy")))),
	}
	if d.Dx != 0 {
		d.Dy = 0
	}
	if d == (Delta{}) {
		return Intent{Kind: IntentNone}
	}
	return MoveIntent(d)
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
