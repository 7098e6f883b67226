//go:build js && wasm

// pico-web runs one cartridge in the browser.
//
// Build with:
//
//	GOOS=js GOARCH=wasm go build -o pico.wasm ./cmd/pico-web
//
// The page can call getScore() to read the running cartridge's score.
package main

import (
	"syscall/js"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pico/internal/config"
	"github.com/vovakirdan/tui-pico/internal/engine"
	_ "github.com/vovakirdan/tui-pico/internal/games/flappy"
	_ "github.com/vovakirdan/tui-pico/internal/games/shapes"
	"github.com/vovakirdan/tui-pico/internal/platform/window"
	"github.com/vovakirdan/tui-pico/internal/registry"
)

func main() {
	id := "flappy"
	if q := js.Global().Get("location").Get("search").String(); len(q) > 1 && registry.Exists(q[1:]) {
		id = q[1:]
	}

	cart, err := registry.Create(id)
	if err != nil {
		log.Fatal("create cartridge", "err", err)
	}

	console := config.DefaultConsoleConfig()
	eng, err := engine.New(cart, engine.Options{
		TickRate:         console.TickRate,
		MaxTicksPerFrame: console.MaxCatchupTicks,
		ButtonRepeat:     console.ButtonRepeat,
		ShowFPS:          console.ShowFPS,
		SoundOn:          console.SoundOn,
		Volume:           console.Volume,
		Seed:             time.Now().UnixNano(),
	})
	if err != nil {
		log.Fatal("start engine", "err", err)
	}

	js.Global().Set("getScore", js.FuncOf(func(this js.Value, args []js.Value) any {
		return js.ValueOf(eng.Cartridge().State().Score)
	}))

	if err := window.Run(eng, window.Options{Title: "pico", Scale: 4}); err != nil {
		log.Fatal("run", "err", err)
	}
}
