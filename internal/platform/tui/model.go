package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/neon-runner/internal/core"
	"github.com/vovakirdan/neon-runner/internal/registry"
)

// helpStyle dims the key help line under the playfield.
var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).PaddingLeft(1)

// Model is the Bubble Tea model for running a game.
type Model struct {
	game          registry.Game
	screen        *core.Screen
	config        core.RuntimeConfig
	keys          *KeyMapper
	help          help.Model
	inputFrame    core.InputFrame
	gameState     core.GameState
	screenshotDir string
	lastShot      string
	started       bool
	quitting      bool
}

// NewModel creates a new Bubble Tea model for the given game. One row of the
// terminal is kept for the key help line.
func NewModel(game registry.Game, cfg core.RuntimeConfig) Model {
	return Model{
		game:          game,
		screen:        core.NewScreen(cfg.ScreenW, playfieldHeight(cfg.ScreenH)),
		config:        cfg,
		keys:          NewKeyMapper(),
		help:          help.New(),
		inputFrame:    core.NewInputFrame(),
		screenshotDir: defaultScreenshotDir(),
	}
}

func playfieldHeight(h int) int {
	return core.Max(h-1, 1)
}

func defaultScreenshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".neonrun", "screenshots")
	}
	return filepath.Join(home, ".neonrun", "screenshots")
}

// Init starts the tick loop. The game itself is reset on the first tick so
// that the reset happens on the model Bubble Tea keeps.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if action := m.keys.MapMouse(msg); action != core.ActionNone {
			m.inputFrame.Set(action)
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input. Actions are buffered and applied on
// the next tick, in the same goroutine that steps the game.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Keys.Screenshot) {
		m.lastShot = m.saveScreenshot()
		return m, nil
	}

	action := m.keys.MapKey(msg)
	if action == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}
	if action != core.ActionNone {
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleResize adapts the screen buffer. The runner scales the world to any
// size, so the game keeps running.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playfieldHeight(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if !m.started {
		m.game.Reset(m.config)
		m.started = true
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// State returns the game state after the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// saveScreenshot writes the current screen to a text file, one line per row
// without trailing blanks, and returns its path, or "" if it could not be written.
func (m *Model) saveScreenshot() string {
	m.game.Render(m.screen)

	if err := os.MkdirAll(m.screenshotDir, 0o755); err != nil {
		return ""
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.screenshotDir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	var sb strings.Builder
	for y, n := 0, m.screen.Height(); y < n; y++ {
		sb.WriteString(strings.TrimRight(m.screen.Row(y), " "))
		sb.WriteByte('\n')
	}

	if err := os.WriteFile(path, []byte(sb.String()), 0o600); err != nil {
		return ""
	}
	return path
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	footer := m.help.View(m.keys.Keys)
	if m.lastShot != "" {
		footer = "saved " + m.lastShot
	}
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(footer)
}

// Run starts the Bubble Tea program for the game and returns the final state.
func Run(game registry.Game, cfg core.RuntimeConfig) (core.GameState, error) {
	p := tea.NewProgram(
		NewModel(game, cfg),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	final, err := p.Run()
	if m, ok := final.(Model); ok {
		return m.State(), err
	}
	return core.GameState{}, err
}
