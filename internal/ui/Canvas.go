package ui

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/Mshel/junction/internal/entity"
	"github.com/Mshel/junction/internal/game"
	"github.com/Mshel/junction/internal/geometry"
	"github.com/charmbracelet/lipgloss"
)

type cellKind int

const (
	cellGround cellKind = iota
	cellTrunk
	cellCanopy
	cellPlayer
)

var (
	groundColor = entity.Green
	trunkColor  = entity.Black
	canopyColor = entity.Blue
)

func hexColor(c color.RGBA) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}

// rasterize samples the world at the centre of every terminal cell. Later
// layers win: ground, trunk, canopy, player.
func rasterize(snap game.Snapshot, cols, rows int) [][]cellKind {
	grid := make([][]cellKind, rows)
	if cols <= 0 || rows <= 0 {
		return grid
	}

	cellW := snap.Bounds.Width / float64(cols)
	cellH := snap.Bounds.Height / float64(rows)
	playerCircle, playerErr := snap.Player.BoundingCircle()
	playerRect := geometry.Rectangle{
		X:      snap.Player.Location.X,
		Y:      snap.Player.Location.Y,
		Width:  snap.Player.Shape.Width,
		Height: snap.Player.Shape.Height,
	}

	for row := 0; row < rows; row++ {
		grid[row] = make([]cellKind, cols)
		for col := 0; col < cols; col++ {
			p := geometry.Point{X: (float64(col) + 0.5) * cellW, Y: (float64(row) + 0.5) * cellH}

			kind := cellGround
			for _, s := range snap.Scenery {
				if s.Canopy().Contains(p) {
					kind = max(kind, cellCanopy)
				} else if s.Trunk().Contains(p) {
					kind = max(kind, cellTrunk)
				}
			}

			if playerErr == nil && playerCircle.Contains(p) {
				kind = cellPlayer
			} else if playerErr != nil && playerRect.Contains(p) {
				kind = cellPlayer
			}
			grid[row][col] = kind
		}
	}
	return grid
}

func renderCanvas(snap game.Snapshot, cols, rows int) string {
	cells := map[cellKind]string{
		cellGround: lipgloss.NewStyle().Background(hexColor(groundColor)).Render(" "),
		cellTrunk:  lipgloss.NewStyle().Background(hexColor(trunkColor)).Render(" "),
		cellCanopy: lipgloss.NewStyle().Background(hexColor(canopyColor)).Render(" "),
		cellPlayer: lipgloss.NewStyle().Background(hexColor(snap.Player.Color)).Render(" "),
	}

	var sb strings.Builder
	for i, row := range rasterize(snap, cols, rows) {
		if i > 0 {
			sb.WriteString("\n")
		}
		for _, kind := range row {
			sb.WriteString(cells[kind])
		}
	}
	return sb.String()
}
