package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pico/internal/config"
	"github.com/vovakirdan/tui-pico/internal/engine"
	"github.com/vovakirdan/tui-pico/internal/games/flappy"
	"github.com/vovakirdan/tui-pico/internal/platform/tui"
	"github.com/vovakirdan/tui-pico/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
)

var runCmd = &cobra.Command{
	Use:   "run <cart>",
	Short: "Run a cartridge in the terminal",
	Long: `Start the specified cartridge in the terminal.

Controls:
  Arrows/WASD  - D-pad
  Z/C/Space    - Primary button
  X/V          - Secondary button
  Enter/P      - Pause menu
  Ctrl+S       - Screenshot
  Q/Ctrl+C     - Quit

Difficulty options (flappy):
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  pico run flappy
  pico run flappy --difficulty hard
  pico run flappy --config ./my-flappy.yaml
  pico run shapes --seed 42`,
	Args: cobra.ExactArgs(1),
	RunE: runRun,
}

func init() {
	for _, c := range []*cobra.Command{runCmd, windowCmd} {
		c.Flags().StringVar(&flagConfig, "config", "", "Path to custom cartridge config YAML")
		c.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	}
}

func runRun(_ *cobra.Command, args []string) error {
	eng, console, err := newEngine(args[0])
	if err != nil {
		return err
	}
	return runTerminal(eng, console)
}

func runTerminal(eng *engine.Engine, console config.ConsoleConfig) error {
	return tui.Run(eng, tui.Options{
		FrameRate: console.TickRate,
		KeyHold:   time.Duration(console.KeyHoldMs) * time.Millisecond,
		Logger:    logger,
	})
}

// newEngine loads the console config, prepares cartridge settings and builds
// an engine around a fresh instance of id.
func newEngine(id string) (*engine.Engine, config.ConsoleConfig, error) {
	if !registry.Exists(id) {
		return nil, config.ConsoleConfig{}, fmt.Errorf("unknown cartridge %q, run 'pico list' to see available cartridges", id)
	}
	if _, err := config.ParsePreset(flagDifficulty); err != nil {
		return nil, config.ConsoleConfig{}, err
	}

	console, err := config.Loader{Dir: flagConfigDir}.Console("")
	if err != nil {
		return nil, console, err
	}
	if flagFPS > 0 {
		console.TickRate = flagFPS
	}

	// Cartridge settings are read on Reset, so they go in before Create
	switch id {
	case "flappy":
		flappy.SetConfigPath(flagConfig)
		flappy.SetConfigDir(flagConfigDir)
		flappy.SetDifficultyPreset(flagDifficulty)
	}

	cart, err := registry.Create(id)
	if err != nil {
		return nil, console, err
	}

	eng, err := engine.New(cart, engineOptions(console))
	if err != nil {
		return nil, console, err
	}
	logger.Info("cartridge loaded", "cart", id, "tick_rate", console.TickRate)
	return eng, console, nil
}

func engineOptions(console config.ConsoleConfig) engine.Options {
	return engine.Options{
		TickRate:         console.TickRate,
		MaxTicksPerFrame: console.MaxCatchupTicks,
		ButtonRepeat:     console.ButtonRepeat,
		ShowFPS:          console.ShowFPS,
		SoundOn:          console.SoundOn,
		Volume:           console.Volume,
		Seed:             seed(),
		Logger:           logger,
	}
}
