package window

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tui-pico/internal/core"
)

func TestButtonForKey(t *testing.T) {
	tests := []struct {
		key      ebiten.Key
		expected core.Button
	}{
		{ebiten.KeyArrowLeft, core.ButtonLeft},
		{ebiten.KeyA, core.ButtonLeft},
		{ebiten.KeyArrowRight, core.ButtonRight},
		{ebiten.KeyW, core.ButtonUp},
		{ebiten.KeyArrowDown, core.ButtonDown},
		{ebiten.KeyZ, core.ButtonPrimary},
		{ebiten.KeySpace, core.ButtonPrimary},
		{ebiten.KeyX, core.ButtonSecondary},
	}

	for _, tt := range tests {
		t.Run(tt.key.String(), func(t *testing.T) {
			b, ok := ButtonForKey(tt.key)
			if !ok {
				t.Fatalf("ButtonForKey(%v) not bound", tt.key)
			}
			if b != tt.expected {
				t.Errorf("ButtonForKey(%v) = %v, expected %v", tt.key, b, tt.expected)
			}
		})
	}
}

func TestButtonForKeyUnbound(t *testing.T) {
	for _, k := range []ebiten.Key{ebiten.KeyEnter, ebiten.KeyEscape, ebiten.KeyF1} {
		if _, ok := ButtonForKey(k); ok {
			t.Errorf("ButtonForKey(%v) should be unbound", k)
		}
	}
}

func TestMenuAndQuitKeys(t *testing.T) {
	if !IsMenuKey(ebiten.KeyEnter) || !IsMenuKey(ebiten.KeyP) {
		t.Error("Enter and P should open the menu")
	}
	if IsMenuKey(ebiten.KeyZ) {
		t.Error("Z should not open the menu")
	}
	if !IsQuitKey(ebiten.KeyEscape) {
		t.Error("Escape should quit")
	}
	for k := range keyButtons {
		if IsMenuKey(k) || IsQuitKey(k) {
			t.Errorf("key %v is bound twice", k)
		}
	}
}
