package ui

import (
	"github.com/Mshel/junction/internal/game"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

type Screen int

const (
	IntroScreen Screen = iota
	SetupScreen
	GameScreen
	HistoryScreen
)

// Messages for state transitions
type IntroSubmitMsg int // 0 for Start Walk, 1 for Walk History
type SetupSubmitMsg struct {
	Name  string
	Color string
}

type ControllerModel struct {
	CurrentScreen Screen
	Config        *game.Config
	Journal       *game.JournalService // nil when the journal is disabled

	IntroModel   tea.Model
	SetupModel   tea.Model
	GameModel    tea.Model
	HistoryModel tea.Model

	ScreenWidth  int
	ScreenHeight int
}

func NewControllerModel(cfg *game.Config, journal *game.JournalService, screenWidth int, screenHeight int) ControllerModel {
	return ControllerModel{
		Config:        cfg,
		Journal:       journal,
		CurrentScreen: IntroScreen,

		IntroModel: NewIntroModel(screenWidth, screenHeight),
		SetupModel: NewInitialSetupModel(screenWidth, screenHeight),

		ScreenWidth:  screenWidth,
		ScreenHeight: screenHeight,
	}
}

func (m ControllerModel) Init() tea.Cmd {
	return m.IntroModel.Init()
}

func (m ControllerModel) View() string {
	switch m.CurrentScreen {
	case IntroScreen:
		return m.IntroModel.View()
	case SetupScreen:
		return m.SetupModel.View()
	case GameScreen:
		if m.GameModel != nil {
			return m.GameModel.View()
		}
		return "World Loading..."
	case HistoryScreen:
		if m.HistoryModel != nil {
			return m.HistoryModel.View()
		}
		return "History Loading..."
	default:
		return "Unknown Screen"
	}
}

// newWorld builds a fresh world for one walk, painted in the chosen color.
func (m ControllerModel) newWorld(color string) (*game.World, error) {
	cfg := *m.Config
	cfg.Player.Color = color
	return game.NewWorld(&cfg, nil)
}

func (m ControllerModel) newAutopilot() *game.Autopilot {
	if !m.Config.Autopilot.Enabled {
		return nil
	}
	pilot, err := game.LoadAutopilot(m.Config.Autopilot.Script, m.Config.Autopilot.EveryTicks)
	if err != nil {
		log.Warn("Autopilot disabled", "script", m.Config.Autopilot.Script, "error", err)
		return nil
	}
	return pilot
}

// finishWalk stores the walk in the journal, if there is one.
func (m ControllerModel) finishWalk() {
	gameModel, ok := m.GameModel.(GameViewModel)
	if !ok {
		return
	}

	stats := gameModel.Finish()
	log.Info("Walk finished", "walker", gameModel.WalkerName, "accepted", stats.Accepted, "blocked", stats.Blocked, "planted", stats.Planted)
	if m.Journal == nil {
		return
	}
	if err := m.Journal.SaveWalk(gameModel.WalkerName, stats); err != nil {
		log.Error("Walk journal persist err", "error", err)
	}
}

func (m ControllerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok {
		s := msg.String()
		if s == "ctrl+c" || (s == "q" && m.CurrentScreen != SetupScreen) {
			if m.CurrentScreen == GameScreen {
				m.finishWalk()
			}
			return m, tea.Quit
		}
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ScreenWidth = msg.Width
		m.ScreenHeight = msg.Height

	case IntroSubmitMsg:
		if msg == 0 {
			m.CurrentScreen = SetupScreen
			return m, m.SetupModel.Init()
		}
		m.CurrentScreen = HistoryScreen
		m.HistoryModel = NewHistoryModel(m.Journal, m.ScreenWidth, m.ScreenHeight)
		return m, m.HistoryModel.Init()

	case SetupSubmitMsg:
		world, err := m.newWorld(msg.Color)
		if err != nil {
			log.Error("Could not build world", "error", err)
			return m, tea.Quit
		}

		m.CurrentScreen = GameScreen
		m.GameModel = NewGameModel(world, m.newAutopilot(), msg.Name, m.Config.World.TickRate, m.ScreenWidth, m.ScreenHeight)
		log.Info("Walk started", "walker", msg.Name, "color", msg.Color)
		return m, m.GameModel.Init()

	case BackToIntroMsg:
		m.CurrentScreen = IntroScreen
		return m, m.IntroModel.Init()
	}

	// size changes go to every screen so a later switch renders at the right size
	if _, ok := msg.(tea.WindowSizeMsg); ok {
		var cmds []tea.Cmd
		m.IntroModel, cmd = m.IntroModel.Update(msg)
		cmds = append(cmds, cmd)
		m.SetupModel, cmd = m.SetupModel.Update(msg)
		cmds = append(cmds, cmd)
		if m.GameModel != nil {
			m.GameModel, cmd = m.GameModel.Update(msg)
			cmds = append(cmds, cmd)
		}
		if m.HistoryModel != nil {
			m.HistoryModel, cmd = m.HistoryModel.Update(msg)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)
	}

	switch m.CurrentScreen {
	case IntroScreen:
		m.IntroModel, cmd = m.IntroModel.Update(msg)
	case SetupScreen:
		m.SetupModel, cmd = m.SetupModel.Update(msg)
	case GameScreen:
		if m.GameModel != nil {
			m.GameModel, cmd = m.GameModel.Update(msg)
		}
	case HistoryScreen:
		if m.HistoryModel != nil {
			m.HistoryModel, cmd = m.HistoryModel.Update(msg)
		}
	}

	return m, cmd
}
