package engine

import (
	"strings"

	"github.com/vovakirdan/tui-pico/internal/core"
)

// MaxVolume is the top of the volume range; the bottom is 0.
const MaxVolume = 8

// MenuScreen is the pause menu's current page.
type MenuScreen int

const (
	MenuDisabled MenuScreen = iota
	MenuMain
	MenuOptions
)

// String returns a human-readable name for the screen.
func (s MenuScreen) String() string {
	switch s {
	case MenuDisabled:
		return "disabled"
	case MenuMain:
		return "main"
	case MenuOptions:
		return "options"
	default:
		return "unknown"
	}
}

// MenuAction tells the engine what a confirm did to the game.
type MenuAction int

const (
	MenuActionNone   MenuAction = iota
	MenuActionPause             // menu opened, stop the game
	MenuActionResume            // "continue" selected
	MenuActionReset             // "reset game" selected
)

// Main page entries, by cursor index.
const (
	mainContinue = iota
	mainOptions
	mainReset
)

// Options page entries, by cursor index.
const (
	optionsSound = iota
	optionsVolume
	optionsBack
)

// Overlay geometry on the native screen.
const (
	menuBoxX     = 23
	menuBoxY     = 43
	menuBoxW     = 80
	menuBoxH     = 36
	menuArrowX   = 27
	menuItemX    = 32
	menuItemY    = 50
	menuItemStep = 8
)

// Menu is the pause menu state machine. It also owns the session's sound
// settings, which only it may change.
type Menu struct {
	screen  MenuScreen
	cursor  int
	items   []string
	soundOn bool
	volume  int
}

// NewMenu creates a disabled menu with the given settings.
func NewMenu(soundOn bool, volume int) *Menu {
	return &Menu{
		soundOn: soundOn,
		volume:  core.Clamp(volume, 0, MaxVolume),
	}
}

// Screen returns the current page.
func (m *Menu) Screen() MenuScreen {
	return m.screen
}

// Cursor returns the selected item index.
func (m *Menu) Cursor() int {
	return m.cursor
}

// Items returns a copy of the visible item labels.
func (m *Menu) Items() []string {
	return append([]string(nil), m.items...)
}

// SoundOn reports the sound setting.
func (m *Menu) SoundOn() bool {
	return m.soundOn
}

// Volume returns the volume level in [0, MaxVolume].
func (m *Menu) Volume() int {
	return m.volume
}

// Open shows the main page. Opening an already open menu does nothing.
func (m *Menu) Open() MenuAction {
	if m.screen != MenuDisabled {
		return MenuActionNone
	}
	m.showMain()
	return MenuActionPause
}

// Confirm acts on the selected item. Pairs of page and index without an
// action are ignored.
func (m *Menu) Confirm() MenuAction {
	switch m.screen {
	case MenuDisabled:
		return m.Open()

	case MenuMain:
		switch m.cursor {
		case mainContinue:
			m.close()
			return MenuActionResume
		case mainOptions:
			m.showOptions()
		case mainReset:
			m.close()
			return MenuActionReset
		}

	case MenuOptions:
		switch m.cursor {
		case optionsSound:
			m.soundOn = !m.soundOn
			m.items[optionsSound] = m.soundLabel()
		case optionsBack:
			m.showMain()
		}
	}
	return MenuActionNone
}

// Update applies one tick of navigation: Up/Down move the cursor with
// wraparound, Left/Right change the volume while it is selected.
func (m *Menu) Update(in core.Input) {
	if m.screen == MenuDisabled || len(m.items) == 0 {
		return
	}

	if in.Btnp(core.ButtonUp) {
		m.cursor--
		if m.cursor < 0 {
			m.cursor = len(m.items) - 1
		}
	}
	if in.Btnp(core.ButtonDown) {
		m.cursor++
		if m.cursor >= len(m.items) {
			m.cursor = 0
		}
	}

	if m.screen == MenuOptions && m.cursor == optionsVolume {
		if in.Btnp(core.ButtonLeft) {
			m.volume = max(0, m.volume-1)
		}
		if in.Btnp(core.ButtonRight) {
			m.volume = min(MaxVolume, m.volume+1)
		}
		m.items[optionsVolume] = m.volumeLabel()
	}
}

// Draw renders the overlay box, the arrow and the items.
func (m *Menu) Draw(dst *core.Screen) {
	if m.screen == MenuDisabled {
		return
	}
	dst.RectFill(menuBoxX, menuBoxY, menuBoxW, menuBoxH, core.ColorBlack)
	dst.Rect(menuBoxX, menuBoxY, menuBoxW, menuBoxH, core.ColorWhite)

	dst.Print("~", menuArrowX, menuItemY+m.cursor*menuItemStep, core.ColorWhite)
	for i, item := range m.items {
		x := menuItemX
		if i == m.cursor {
			x++ // selected item sits one pixel right
		}
		dst.Print(item, x, menuItemY+i*menuItemStep, core.ColorWhite)
	}
}

func (m *Menu) showMain() {
	m.screen = MenuMain
	m.cursor = 0
	m.items = []string{"continue", "options", "reset game"}
}

func (m *Menu) showOptions() {
	m.screen = MenuOptions
	m.cursor = 0
	m.items = []string{m.soundLabel(), m.volumeLabel(), "back"}
}

func (m *Menu) close() {
	m.screen = MenuDisabled
	m.cursor = 0
	m.items = nil
}

func (m *Menu) soundLabel() string {
	if m.soundOn {
		return "sound: on"
	}
	return "sound: off"
}

func (m *Menu) volumeLabel() string {
	return "volume: " + strings.Repeat("0", m.volume) + strings.Repeat("-", MaxVolume-m.volume)
}
