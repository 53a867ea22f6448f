package ui

import (
	"strings"

	"github.com/Mshel/junction/internal/entity"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	focusedColor = lipgloss.Color("34")
	blurredColor = lipgloss.Color("240")
	focusedStyle = lipgloss.NewStyle().Foreground(focusedColor)
	blurredStyle = lipgloss.NewStyle().Foreground(blurredColor)
	helpStyle    = blurredStyle

	buttonStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder())

	submitButtonStyle = buttonStyle.
				BorderForeground(focusedColor).
				Padding(0, 1)

	blurredButtonStyle = buttonStyle.
				BorderForeground(blurredColor).
				Padding(0, 1)
)

// playerColors are the palette names a walker can pick from.
var playerColors = []string{"red", "blue", "white", "black"}

const defaultWalkerName = "walker"

type SetupModel struct {
	nameInput  textinput.Model
	colorIndex int
	focusIndex int // 0: Name, 1: Color, 2: Submit
	width      int
	height     int
}

func NewInitialSetupModel(w, h int) SetupModel {
	ti := textinput.New()
	ti.Placeholder = "Your walker name"
	ti.Focus()
	ti.CharLimit = 20
	ti.PromptStyle = focusedStyle
	ti.TextStyle = focusedStyle

	return SetupModel{
		nameInput: ti,
		width:     w,
		height:    h,
	}
}

// Init sends a command to start the cursor blinking
func (m SetupModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m SetupModel) submit() tea.Cmd {
	name := strings.TrimSpace(m.nameInput.Value())
	if name == "" {
		name = defaultWalkerName
	}
	color := playerColors[m.colorIndex]
	return func() tea.Msg {
		return SetupSubmitMsg{Name: name, Color: color}
	}
}

func (m SetupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		s := msg.String()

		if s == "enter" || s == "tab" || s == "shift+tab" {
			switch {
			case s == "enter" && m.focusIndex == 2:
				return m, m.submit()
			case s == "shift+tab":
				m.focusIndex = (m.focusIndex + 2) % 3
			default:
				m.focusIndex = (m.focusIndex + 1) % 3
			}

			if m.focusIndex == 0 {
				m.nameInput.Focus()
			} else {
				m.nameInput.Blur()
			}
			return m, nil
		}

		if m.focusIndex == 1 {
			switch s {
			case "left", "up":
				m.colorIndex = (m.colorIndex - 1 + len(playerColors)) % len(playerColors)
			case "right", "down":
				m.colorIndex = (m.colorIndex + 1) % len(playerColors)
			}
			return m, nil
		}

		if m.focusIndex == 0 {
			var cmd tea.Cmd
			m.nameInput, cmd = m.nameInput.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

func (m SetupModel) View() string {
	center := func(s string) string {
		return lipgloss.NewStyle().Width(m.width).Align(lipgloss.Center).Render(s)
	}

	var b strings.Builder

	b.WriteString(center(m.nameInput.View()))
	b.WriteString("\n\n")

	colorPrompt := "Pick your walker color (use arrows)"
	if m.focusIndex == 1 {
		colorPrompt = focusedStyle.Render(colorPrompt)
	} else {
		colorPrompt = blurredStyle.Render(colorPrompt)
	}
	b.WriteString(center(colorPrompt))
	b.WriteString("\n")

	var swatches []string
	for i, name := range playerColors {
		label := " " + name + " "
		if i == m.colorIndex {
			label = "[" + name + "]"
		}
		c, _ := entity.ColorByName(name)
		swatches = append(swatches, lipgloss.NewStyle().Foreground(hexColor(c)).Render(label))
	}
	b.WriteString(center(strings.Join(swatches, " ")))
	b.WriteString("\n\n")

	submitText := "Start"
	var submitButton string
	if m.focusIndex == 2 {
		submitButton = submitButtonStyle.Render(submitText)
	} else {
		submitButton = blurredButtonStyle.Render(submitText)
	}
	b.WriteString(center(submitButton))
	b.WriteString("\n\n")

	b.WriteString(center(helpStyle.Render("(tab/shift+tab to navigate, arrows to pick a color, enter to confirm, ctrl+c to quit)")))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, b.String())
}
