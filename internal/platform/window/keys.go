package window

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tui-pico/internal/core"
)

// keyButtons maps physical keys to console buttons.
var keyButtons = map[ebiten.Key]core.Button{
	ebiten.KeyArrowLeft:  core.ButtonLeft,
	ebiten.KeyA:          core.ButtonLeft,
	ebiten.KeyArrowRight: core.ButtonRight,
	ebiten.KeyD:          core.ButtonRight,
	ebiten.KeyArrowUp:    core.ButtonUp,
	ebiten.KeyW:          core.ButtonUp,
	ebiten.KeyArrowDown:  core.ButtonDown,
	ebiten.KeyS:          core.ButtonDown,
	ebiten.KeyZ:          core.ButtonPrimary,
	ebiten.KeyC:          core.ButtonPrimary,
	ebiten.KeySpace:      core.ButtonPrimary,
	ebiten.KeyX:          core.ButtonSecondary,
	ebiten.KeyV:          core.ButtonSecondary,
}

// ButtonForKey returns the console button bound to k.
func ButtonForKey(k ebiten.Key) (core.Button, bool) {
	b, ok := keyButtons[k]
	return b, ok
}

// IsMenuKey reports whether k opens or confirms the pause menu.
func IsMenuKey(k ebiten.Key) bool {
	return k == ebiten.KeyEnter || k == ebiten.KeyP || k == ebiten.KeyNumpadEnter
}

// IsQuitKey reports whether k closes the window.
func IsQuitKey(k ebiten.Key) bool {
	return k == ebiten.KeyEscape || k == ebiten.KeyQ
}
