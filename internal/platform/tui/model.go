package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pico/internal/engine"
)

// Options configures the terminal host.
type Options struct {
	FrameRate int           // display refreshes per second
	KeyHold   time.Duration // release window for HoldTracker
	Logger    *log.Logger
}

// Model is the Bubble Tea model hosting one engine.
type Model struct {
	engine   *engine.Engine
	keys     KeyMap
	hold     *HoldTracker
	logger   *log.Logger
	interval time.Duration
	start    time.Time
	width    int
	height   int
	quitting bool
}

// NewModel creates a Bubble Tea model driving eng.
func NewModel(eng *engine.Engine, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return Model{
		engine:   eng,
		keys:     DefaultKeyMap(),
		hold:     NewHoldTracker(opts.KeyHold),
		logger:   logger,
		interval: frameInterval(opts.FrameRate),
		start:    time.Now(),
	}
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return nextFrame(m.interval)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.BlurMsg:
		m.engine.FocusLost()
		m.hold.Reset()
		return m, nil

	case FrameMsg:
		return m.handleFrame(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	now := m.since(time.Now())

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Menu):
		m.engine.Latch().PressMenu(m.hold.Menu(now))
		return m, nil
	}

	if b, ok := m.keys.Button(msg); ok {
		m.engine.Latch().Press(b, m.hold.Button(b, now))
	}
	return m, nil
}

// handleFrame releases quiet keys and runs one engine frame.
func (m Model) handleFrame(t time.Time) (tea.Model, tea.Cmd) {
	now := m.since(t)
	for _, b := range m.hold.Expire(now) {
		m.engine.Latch().Release(b)
	}

	resets := m.engine.Resets()
	stats := m.engine.Frame(now)
	if m.engine.Resets() != resets {
		// Reset cleared the latch, so keys still held must press again
		m.hold.Reset()
	}
	if stats.Dropped > 0 {
		m.logger.Debug("terminal frame ran late", "delta", stats.Delta, "dropped", stats.Dropped)
	}
	return m, nextFrame(m.interval)
}

func (m Model) since(t time.Time) time.Duration {
	return t.Sub(m.start)
}

// saveScreenshot writes the framebuffer as hex digits to
// ~/.pico/screenshots.
func (m Model) saveScreenshot() {
	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}
	dir := filepath.Join(home, ".pico", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.engine.Cartridge().ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.engine.Screen().String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the last frame, centred when the terminal is larger.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	screen := m.engine.Screen()
	needW, needH := screen.Width(), (screen.Height()+1)/2
	if m.width > 0 && (m.width < needW || m.height < needH) {
		return fmt.Sprintf("Terminal too small: need %dx%d, have %dx%d", needW, needH, m.width, m.height)
	}

	out := RenderScreen(screen)
	if m.width == 0 {
		return out
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, out)
}

// Engine returns the hosted engine.
func (m Model) Engine() *engine.Engine {
	return m.engine
}

// Run starts the Bubble Tea program for eng and blocks until the user quits.
func Run(eng *engine.Engine, opts Options) error {
	model := NewModel(eng, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),   // Use alternate screen buffer
		tea.WithReportFocus(), // BlurMsg releases held keys
	)

	_, err := p.Run()
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

var _ tea.Model = Model{}
