// pico is a fantasy console that runs small cartridges in the terminal or
// in a desktop window.
//
// Usage:
//
//	pico list              - List available cartridges
//	pico run <cart>        - Run a cartridge in the terminal
//	pico window <cart>     - Run a cartridge in a desktop window
//	pico menu              - Pick a cartridge interactively
//
// Global flags:
//
//	--fps <rate>          - Override the tick rate from console.yaml
//	--seed <value>        - RNG seed for reproducible runs (0 = time based)
//	--config-dir <path>   - Config directory (default: ~/.pico/configs)
//	--log <path>          - Write a debug log to this file
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import cartridges to register them
	_ "github.com/vovakirdan/tui-pico/internal/games/flappy"
	_ "github.com/vovakirdan/tui-pico/internal/games/shapes"
)

var (
	// Global flags
	flagFPS       int
	flagSeed      int64
	flagConfigDir string
	flagLogPath   string
	flagDebug     bool

	// logger discards until --log names a file
	logger = log.New(io.Discard)

	logFile *os.File
)

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pico",
	Short: "pico - a tiny fantasy console",
	Long: `pico runs 128x128 cartridges at a fixed tick rate, in the terminal
or in a desktop window. Every cartridge gets the same pause menu:
press Enter or P to open it.

Available commands:
  list     - Show all available cartridges
  run      - Run a cartridge in the terminal
  window   - Run a cartridge in a desktop window
  menu     - Interactive cartridge picker

Examples:
  pico list
  pico run flappy
  pico run flappy --difficulty hard
  pico window shapes
  pico menu --fps 30`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupLogger,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = use console.yaml)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "Config directory (default ~/.pico/configs)")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(menuCmd)
}

// setupLogger opens the log file. The terminal host owns stdout, so logs
// never go there.
func setupLogger(_ *cobra.Command, _ []string) error {
	if flagLogPath == "" {
		return nil
	}

	f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	logFile = f

	level := log.InfoLevel
	if flagDebug {
		level = log.DebugLevel
	}
	logger = log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Prefix:          "pico",
		Level:           level,
	})
	return nil
}

// seed returns the --seed value, or a time-based seed when it is zero.
func seed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}
