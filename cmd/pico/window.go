package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pico/internal/platform/window"
)

var flagScale int

var windowCmd = &cobra.Command{
	Use:   "window <cart>",
	Short: "Run a cartridge in a desktop window",
	Long: `Start the specified cartridge in a scaled desktop window.

Controls are the same as 'pico run'; Escape closes the window.

Examples:
  pico window flappy
  pico window shapes --scale 6`,
	Args: cobra.ExactArgs(1),
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().IntVar(&flagScale, "scale", 4, "Window scale factor")
}

func runWindow(_ *cobra.Command, args []string) error {
	eng, _, err := newEngine(args[0])
	if err != nil {
		return err
	}
	return window.Run(eng, window.Options{
		Title:  "pico - " + eng.Cartridge().Title(),
		Scale:  flagScale,
		Logger: logger,
	})
}
