// Package tui runs the SimpleLines engine inside Bubble Tea. It turns mouse
// and keyboard messages into engine calls, plays the panel animations the
// engine asks for, and renders the screen buffer with lipgloss.
package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/simplelines/internal/config"
	"github.com/vovakirdan/simplelines/internal/core"
	"github.com/vovakirdan/simplelines/internal/games/lines"
	lcore "github.com/vovakirdan/simplelines/internal/games/lines/core"
)

// panelSeconds is the length of a panel transition.
const panelSeconds = 0.4

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd schedules the next tick at tickRate per second.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(time.Second/time.Duration(max(tickRate, 1)), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// Model is the Bubble Tea model for a SimpleLines session.
type Model struct {
	game     *lines.Game
	director *director
	screen   *core.Screen
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	palette  *Palette
	log      *log.Logger
	cursor   lcore.Point
	pressed  bool // left button held since a press the engine saw
	quitting bool
}

// NewModel creates a model running a fresh engine for cfg. A nil logger
// discards engine logs.
func NewModel(cfg config.LinesConfig, rt core.RuntimeConfig, logger *log.Logger) (Model, error) {
	// Use time-based seed if not specified
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	if rt.TickRate <= 0 {
		rt.TickRate = 60
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	dir := newDirector(rt.Seconds(panelSeconds))
	game, err := lines.New(cfg,
		lines.WithLogger(logger),
		lines.WithListener(lines.Listeners{dir, lines.LogListener{Logger: logger}}),
	)
	if err != nil {
		return Model{}, fmt.Errorf("create game: %w", err)
	}

	size := cfg.Grid.Size
	h := help.New()
	h.Width = rt.ScreenW
	return Model{
		game:     game,
		director: dir,
		screen:   core.NewScreen(rt.ScreenW, boardHeight(rt.ScreenH)),
		config:   rt,
		keys:     DefaultKeyMap(),
		help:     h,
		palette:  DefaultPalette(),
		log:      logger,
		cursor:   lcore.Pt(size/2, size/2),
	}, nil
}

// boardHeight leaves the last terminal row to the help line.
func boardHeight(screenH int) int {
	return max(screenH-1, 1)
}

// WithPalette returns the model rendering with p.
func (m Model) WithPalette(p *Palette) Model {
	m.palette = p
	return m
}

// Game exposes the engine driven by the model.
func (m Model) Game() *lines.Game {
	return m.game
}

// Init starts the session and the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(core.RuntimeConfig{
		ScreenW:  m.config.ScreenW,
		ScreenH:  boardHeight(m.config.ScreenH),
		TickRate: m.config.TickRate,
		Seed:     m.config.Seed,
	})
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	switch m.keys.Action(msg) {
	case core.ActionUp:
		m.moveCursor(0, 1)
	case core.ActionDown:
		m.moveCursor(0, -1)
	case core.ActionLeft:
		m.moveCursor(-1, 0)
	case core.ActionRight:
		m.moveCursor(1, 0)
	case core.ActionDrop:
		if !m.dismissPanel() {
			m.game.PointerRelease(m.cursor)
		}
	case core.ActionRotate:
		m.game.RotateRequested()
	case core.ActionCrank:
		if m.game.FlowState() == lines.StateWait {
			m.game.TimerExpired()
		}
	case core.ActionPause:
		switch m.game.FlowState() {
		case lines.StateWait:
			m.game.PauseRequested()
		case lines.StatePause:
			m.game.ResumeRequested()
		}
	case core.ActionReplay:
		m.game.ReplayRequested()
	case core.ActionQuit:
		if m.game.FlowState() == lines.StatePause {
			m.game.QuitRequested()
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// moveCursor steps the keyboard cursor inside the grid and aims the piece there.
func (m *Model) moveCursor(dc, dr int) {
	size := m.game.Grid().Size()
	m.cursor = lcore.Pt(
		core.Clamp(m.cursor.Col+dc, 0, size-1),
		core.Clamp(m.cursor.Row+dr, 0, size-1),
	)
	m.game.PointerSelect(m.cursor)
}

// dismissPanel handles a confirm on a resting panel: the intro slides away,
// the game-over panel asks for a replay. It reports whether the input was used.
func (m *Model) dismissPanel() bool {
	switch m.game.FlowState() {
	case lines.StateBegin:
		if m.director.Shown(lines.AnimIntro) {
			m.director.Dismiss(lines.AnimIntro)
			return true
		}
	case lines.StateOver:
		if m.director.Shown(lines.AnimGameOver) {
			m.game.ReplayRequested()
			return true
		}
	}
	return false
}

// handleMouse maps button presses, drags and releases to pointer calls.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	cell, inGrid := m.game.CellAt(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			if m.dismissPanel() {
				return m, nil
			}
			m.pressed = true
			if inGrid {
				m.cursor = cell
				m.game.PointerSelect(cell)
			}
		case tea.MouseButtonRight, tea.MouseButtonWheelUp, tea.MouseButtonWheelDown:
			m.game.RotateRequested()
		}

	case tea.MouseActionMotion:
		if inGrid {
			m.cursor = cell
			m.game.PointerEnter(cell)
		}

	case tea.MouseActionRelease:
		if m.pressed {
			m.pressed = false
			m.game.PointerRelease(cell)
		}
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, boardHeight(msg.Height))
	m.game.Resize(msg.Width, boardHeight(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one simulation step and advances the panel transitions.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.game.Step()
	m.director.Advance(m.game)
	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.log.Warn("screenshot", "err", err)
		return
	}
	dir := filepath.Join(home, ".simplelines", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.log.Warn("screenshot", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.log.Warn("screenshot", "err", err)
		return
	}
	m.log.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return m.palette.Render(m.screen) + "\n" + m.palette.Help(m.help.View(m.keys))
}

// Run starts the Bubble Tea program for a local session.
func Run(cfg config.LinesConfig, rt core.RuntimeConfig, logger *log.Logger) error {
	model, err := NewModel(cfg, rt, logger)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err = p.Run()
	return err
}
