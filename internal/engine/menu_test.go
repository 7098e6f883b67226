package engine

import (
	"testing"

	"github.com/vovakirdan/tui-pico/internal/core"
)

// tap feeds one button edge through a latch into a menu update.
func tap(m *Menu, b core.Button) {
	l := NewLatch(0)
	l.Press(b, false)
	m.Update(l)
}

func TestMenuOpen(t *testing.T) {
	m := NewMenu(true, 4)
	if m.Screen() != MenuDisabled {
		t.Fatalf("new menu screen = %s, expected disabled", m.Screen())
	}

	if action := m.Confirm(); action != MenuActionPause {
		t.Errorf("Confirm() on disabled menu = %d, expected pause", action)
	}
	if m.Screen() != MenuMain || m.Cursor() != 0 {
		t.Errorf("opened menu at %s/%d, expected main/0", m.Screen(), m.Cursor())
	}

	items := m.Items()
	expected := []string{"continue", "options", "reset game"}
	if len(items) != len(expected) {
		t.Fatalf("Items() = %v, expected %v", items, expected)
	}
	for i := range expected {
		if items[i] != expected[i] {
			t.Errorf("Items()[%d] = %q, expected %q", i, items[i], expected[i])
		}
	}

	if action := m.Open(); action != MenuActionNone {
		t.Error("Open() on an open menu should do nothing")
	}
}

func TestMenuTransitions(t *testing.T) {
	tests := []struct {
		name       string
		moves      []core.Button
		wantAction MenuAction
		wantScreen MenuScreen
		wantCursor int
	}{
		{"continue resumes", nil, MenuActionResume, MenuDisabled, 0},
		{"options opens page", []core.Button{core.ButtonDown}, MenuActionNone, MenuOptions, 0},
		{"reset game", []core.Button{core.ButtonDown, core.ButtonDown}, MenuActionReset, MenuDisabled, 0},
		{"wrap to reset", []core.Button{core.ButtonUp}, MenuActionReset, MenuDisabled, 0},
		{"wrap to continue", []core.Button{core.ButtonDown, core.ButtonDown, core.ButtonDown}, MenuActionResume, MenuDisabled, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMenu(true, 4)
			m.Open()
			for _, b := range tt.moves {
				tap(m, b)
			}

			action := m.Confirm()
			if action != tt.wantAction {
				t.Errorf("Confirm() = %d, expected %d", action, tt.wantAction)
			}
			if m.Screen() != tt.wantScreen {
				t.Errorf("screen = %s, expected %s", m.Screen(), tt.wantScreen)
			}
			if m.Cursor() != tt.wantCursor {
				t.Errorf("cursor = %d, expected %d", m.Cursor(), tt.wantCursor)
			}
		})
	}
}

func openOptions(soundOn bool, volume int) *Menu {
	m := NewMenu(soundOn, volume)
	m.Open()
	tap(m, core.ButtonDown)
	m.Confirm()
	return m
}

func TestMenuOptionsPage(t *testing.T) {
	m := openOptions(true, 4)

	items := m.Items()
	if items[0] != "sound: on" || items[1] != "volume: 0000----" || items[2] != "back" {
		t.Errorf("options items = %v", items)
	}

	// Toggle sound
	m.Confirm()
	if m.SoundOn() {
		t.Error("sound should be off after toggle")
	}
	if m.Items()[0] != "sound: off" {
		t.Errorf("sound label = %q", m.Items()[0])
	}
	m.Confirm()
	if !m.SoundOn() || m.Items()[0] != "sound: on" {
		t.Error("second toggle should turn sound back on")
	}

	// Confirm on volume does nothing
	tap(m, core.ButtonDown)
	if action := m.Confirm(); action != MenuActionNone {
		t.Errorf("Confirm() on volume = %d", action)
	}
	if m.Screen() != MenuOptions || m.Cursor() != 1 {
		t.Error("confirm on volume should leave the page untouched")
	}

	// Back returns to main with the cursor reset
	tap(m, core.ButtonDown)
	m.Confirm()
	if m.Screen() != MenuMain || m.Cursor() != 0 {
		t.Errorf("back led to %s/%d, expected main/0", m.Screen(), m.Cursor())
	}
}

func TestMenuVolume(t *testing.T) {
	tests := []struct {
		name     string
		start    int
		presses  []core.Button
		expected int
		label    string
	}{
		{"raise", 4, []core.Button{core.ButtonRight}, 5, "volume: 00000---"},
		{"lower", 4, []core.Button{core.ButtonLeft, core.ButtonLeft}, 2, "volume: 00------"},
		{"clamp top", 7, []core.Button{core.ButtonRight, core.ButtonRight, core.ButtonRight}, 8, "volume: 00000000"},
		{"clamp bottom", 1, []core.Button{core.ButtonLeft, core.ButtonLeft}, 0, "volume: --------"},
		{"start clamped", 20, nil, 8, "volume: 00000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := openOptions(true, tt.start)
			tap(m, core.ButtonDown)
			for _, b := range tt.presses {
				tap(m, b)
			}

			if m.Volume() != tt.expected {
				t.Errorf("Volume() = %d, expected %d", m.Volume(), tt.expected)
			}
			if m.Items()[1] != tt.label {
				t.Errorf("label = %q, expected %q", m.Items()[1], tt.label)
			}
		})
	}
}

func TestMenuVolumeOnlyOnVolumeItem(t *testing.T) {
	m := openOptions(true, 4)
	tap(m, core.ButtonRight)
	if m.Volume() != 4 {
		t.Error("left/right should only change volume with the volume item selected")
	}

	m = NewMenu(true, 4)
	m.Open()
	tap(m, core.ButtonDown)
	tap(m, core.ButtonRight)
	if m.Volume() != 4 {
		t.Error("main page index 1 must not change volume")
	}
}

func TestMenuUpdateWhileDisabled(t *testing.T) {
	m := NewMenu(true, 4)
	tap(m, core.ButtonDown)
	if m.Cursor() != 0 || m.Screen() != MenuDisabled {
		t.Error("disabled menu should ignore navigation")
	}
}

func TestMenuItemsIsCopy(t *testing.T) {
	m := NewMenu(true, 4)
	m.Open()
	items := m.Items()
	items[0] = "changed"
	if m.Items()[0] != "continue" {
		t.Error("Items() must not expose internal state")
	}
}

func TestMenuDraw(t *testing.T) {
	s := core.NewScreen(core.NativeWidth, core.NativeHeight)
	s.Cls(core.ColorBlue)

	m := NewMenu(true, 4)
	m.Draw(s)
	if s.Pget(menuBoxX, menuBoxY) != core.ColorBlue {
		t.Fatal("disabled menu should draw nothing")
	}

	m.Open()
	m.Draw(s)

	if s.Pget(menuBoxX, menuBoxY) != core.ColorWhite {
		t.Error("box corner should be white")
	}
	if s.Pget(menuBoxX+menuBoxW-1, menuBoxY+menuBoxH-1) != core.ColorWhite {
		t.Error("bottom right corner should be white")
	}
	if s.Pget(menuBoxX+1, menuBoxY+1) != core.ColorBlack {
		t.Error("box interior should be black")
	}
	if s.Pget(menuBoxX-1, menuBoxY) != core.ColorBlue {
		t.Error("overlay should not touch pixels outside the box")
	}

	// Arrow and the selected item are drawn in white on row 50
	found := false
	for x := menuArrowX; x < menuArrowX+4; x++ {
		for y := menuItemY; y < menuItemY+core.GlyphHeight; y++ {
			if s.Pget(x, y) == core.ColorWhite {
				found = true
			}
		}
	}
	if !found {
		t.Error("menu arrow not drawn next to the first item")
	}
}
