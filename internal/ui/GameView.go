package ui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Mshel/junction/internal/entity"
	"github.com/Mshel/junction/internal/game"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

var (
	mapViewStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 0)

	statusPanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("8")).
				Padding(1, 2)

	sectionStyle = lipgloss.NewStyle().Bold(true)
	faintStyle   = lipgloss.NewStyle().Faint(true)
)

const (
	mapViewPercentage  = 0.70
	statusPanelPadding = 4
	borderSize         = 2
)

// TickMsg is the render tick. It carries no payload.
type TickMsg struct{}

type keyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Plant key.Binding
	Quit  key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Plant, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Left, k.Right, k.Plant, k.Quit}}
}

var gameKeys = keyMap{
	Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "move up")),
	Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "move down")),
	Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "move left")),
	Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "move right")),
	Plant: key.NewBinding(key.WithKeys(game.PlantKey), key.WithHelp(game.PlantKey, "plant a tree")),
	Quit:  key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// GameViewModel renders one world and feeds it keyboard and autopilot intents.
type GameViewModel struct {
	TickCount    int
	ScreenWidth  int
	ScreenHeight int
	WalkerName   string

	world     *game.World
	autopilot *game.Autopilot
	tickRate  time.Duration
	help      help.Model
	status    string
}

func NewGameModel(world *game.World, autopilot *game.Autopilot, walkerName string, tickRate time.Duration, screenWidth, screenHeight int) GameViewModel {
	h := help.New()
	h.ShowAll = true

	return GameViewModel{
		ScreenWidth:  screenWidth,
		ScreenHeight: screenHeight,
		WalkerName:   walkerName,
		world:        world,
		autopilot:    autopilot,
		tickRate:     tickRate,
		help:         h,
		status:       "Ready",
	}
}

func (m GameViewModel) Init() tea.Cmd {
	return m.tick()
}

func (m GameViewModel) tick() tea.Cmd {
	return tea.Tick(m.tickRate, func(time.Time) tea.Msg { return TickMsg{} })
}

func (m GameViewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ScreenWidth = msg.Width
		m.ScreenHeight = msg.Height
		return m, nil

	case tea.KeyMsg:
		m.apply(game.MapKeyToIntent(msg.String()))
		return m, nil

	case TickMsg:
		m.TickCount++
		if m.autopilot != nil {
			intent, err := m.autopilot.Tick(m.world.Snapshot())
			if err != nil {
				log.Warn("Autopilot failed, handing control back", "walker", m.WalkerName, "error", err)
				m.autopilot.Close()
				m.autopilot = nil
				m.status = "Autopilot off"
			} else {
				m.apply(intent)
			}
		}
		return m, m.tick()
	}

	return m, nil
}

func (m *GameViewModel) apply(intent game.Intent) {
	if intent.Kind == game.IntentNone {
		return
	}

	result, err := m.world.Apply(intent)
	if err != nil {
		if errors.Is(err, entity.ErrUnsupported) {
			log.Warn("Move not supported for player shape", "walker", m.WalkerName, "error", err)
			m.status = "Shape not supported"
			return
		}
		log.Error("Could not apply intent", "walker", m.WalkerName, "error", err)
		m.status = "Error"
		return
	}

	switch result.Outcome {
	case game.OutcomeBlocked:
		m.status = "Blocked by a tree"
	case game.OutcomeClamped:
		m.status = "At the edge"
	case game.OutcomePlanted:
		m.status = fmt.Sprintf("Planted a tree at %.0f,%.0f", result.Location.X, result.Location.Y)
	default:
		m.status = "Walking"
	}
}

// Finish closes the autopilot and returns the walk statistics.
func (m GameViewModel) Finish() game.Stats {
	if m.autopilot != nil {
		m.autopilot.Close()
	}
	return m.world.Stats()
}

func (m GameViewModel) View() string {
	if m.ScreenWidth == 0 || m.ScreenHeight == 0 {
		return "Loading..."
	}

	mapWidth := int(float64(m.ScreenWidth) * mapViewPercentage)
	statusPanelWidth := max(1, m.ScreenWidth-mapWidth-statusPanelPadding)
	canvasRows := max(1, m.ScreenHeight-borderSize)

	snap := m.world.Snapshot()
	canvas := renderCanvas(snap, max(1, mapWidth-borderSize), canvasRows)

	return lipgloss.JoinHorizontal(lipgloss.Top,
		mapViewStyle.Render(canvas),
		statusPanelStyle.Width(statusPanelWidth).Height(canvasRows).Render(m.renderStatusPanel(snap)),
	)
}

// renderStatusPanel draws the walk stats and the controls.
func (m GameViewModel) renderStatusPanel(snap game.Snapshot) string {
	var sb strings.Builder

	playerStyle := lipgloss.NewStyle().Foreground(hexColor(snap.Player.Color))
	sb.WriteString(sectionStyle.Render("--- Walker ---") + "\n")
	sb.WriteString(fmt.Sprintf("%s%s\n", playerStyle.Render("● "), m.WalkerName))
	sb.WriteString(fmt.Sprintf("Position: %.0f, %.0f\n", snap.Player.Location.X, snap.Player.Location.Y))
	sb.WriteString(fmt.Sprintf("Status: %s\n", m.status))
	if m.autopilot != nil {
		sb.WriteString(faintStyle.Render("autopilot engaged") + "\n")
	}

	sb.WriteString("\n" + sectionStyle.Render("--- World ---") + "\n")
	sb.WriteString(fmt.Sprintf("Canvas: %.0f x %.0f\n", snap.Bounds.Width, snap.Bounds.Height))
	sb.WriteString(fmt.Sprintf("Trees: %d\n", len(snap.Scenery)))
	sb.WriteString(fmt.Sprintf("Steps: %d\n", snap.Stats.Accepted))
	sb.WriteString(fmt.Sprintf("Blocked: %d\n", snap.Stats.Blocked))
	sb.WriteString(fmt.Sprintf("Planted: %d\n", snap.Stats.Planted))

	sb.WriteString("\n" + sectionStyle.Render("--- Controls ---") + "\n")
	sb.WriteString(m.help.View(gameKeys))

	return sb.String()
}
