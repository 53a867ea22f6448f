package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Mshel/junction/internal/game"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const historyPageSize = 15

var (
	historyHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("15")).
				Background(lipgloss.Color("236")).
				Padding(0, 1).
				Align(lipgloss.Center)

	historyRowStyle = lipgloss.NewStyle().
			Padding(0, 1)

	historyBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.NormalBorder(), false, false, true, false).
				BorderForeground(lipgloss.Color("8"))
)

// BackToIntroMsg asks the controller to show the intro screen again.
type BackToIntroMsg struct{}

// HistoryModel lists the most recent walks from the journal.
type HistoryModel struct {
	walks        []game.Walk
	total        int
	err          error
	ScreenWidth  int
	ScreenHeight int
}

// NewHistoryModel loads the first page from journal, which may be nil when
// the journal is disabled.
func NewHistoryModel(journal *game.JournalService, w, h int) HistoryModel {
	m := HistoryModel{ScreenWidth: w, ScreenHeight: h}
	if journal == nil {
		return m
	}

	m.walks, m.err = journal.RecentWalks(historyPageSize, 0)
	if m.err == nil {
		m.total, m.err = journal.CountWalks()
	}
	if m.err != nil {
		log.Error("Could not load walk history", "error", m.err)
	}
	return m
}

func (m HistoryModel) Init() tea.Cmd { return nil }

func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ScreenWidth = msg.Width
		m.ScreenHeight = msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "enter":
			return m, func() tea.Msg { return BackToIntroMsg{} }
		}
	}
	return m, nil
}

func (m HistoryModel) View() string {
	var tableContent strings.Builder

	nameWidth := 16
	numberWidth := 9

	header := lipgloss.JoinHorizontal(lipgloss.Top,
		historyHeaderStyle.Width(4).Render("#"),
		historyHeaderStyle.Width(nameWidth).Render("Walker"),
		historyHeaderStyle.Width(numberWidth).Render("Steps"),
		historyHeaderStyle.Width(numberWidth).Render("Blocked"),
		historyHeaderStyle.Width(numberWidth).Render("Trees"),
		historyHeaderStyle.Width(18).Render("When"),
	)
	tableContent.WriteString(header + "\n")

	for _, walk := range m.walks {
		row := lipgloss.JoinHorizontal(lipgloss.Top,
			historyRowStyle.Width(4).Render(strconv.Itoa(walk.ID)),
			historyRowStyle.Width(nameWidth).Render(walk.WalkerName),
			historyRowStyle.Width(numberWidth).Render(strconv.Itoa(walk.Accepted)),
			historyRowStyle.Width(numberWidth).Render(strconv.Itoa(walk.Blocked)),
			historyRowStyle.Width(numberWidth).Render(strconv.Itoa(walk.Planted)),
			historyRowStyle.Width(18).Render(walk.CreatedAt.Format("2006-01-02 15:04")),
		)
		tableContent.WriteString(historyBorderStyle.Render(row) + "\n")
	}

	var note string
	switch {
	case m.err != nil:
		note = "Walk history is unavailable."
	case m.total == 0:
		note = "No walks yet."
	default:
		note = fmt.Sprintf("Showing %d of %d walks.", len(m.walks), m.total)
	}

	title := lipgloss.NewStyle().Bold(true).Padding(1, 0).Render("🌳 WALK HISTORY 🌳")
	instruction := lipgloss.NewStyle().Faint(true).Margin(1, 0).Render(note + " Press ESC or ENTER to return.")

	finalContent := lipgloss.JoinVertical(lipgloss.Center,
		title,
		tableContent.String(),
		instruction,
	)

	return lipgloss.Place(m.ScreenWidth, m.ScreenHeight,
		lipgloss.Center, lipgloss.Center,
		lipgloss.NewStyle().Border(lipgloss.ThickBorder()).Render(finalContent),
	)
}
