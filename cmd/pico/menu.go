package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pico/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the console with a cartridge picker",
	Long: `Start the console in interactive menu mode.

Use arrow keys or w/s to navigate, Enter to start a cartridge.
Quitting a cartridge returns to the picker.

Examples:
  pico menu
  pico menu --fps 30`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	for {
		width, height := 80, 24
		if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			width, height = w, h
		}

		id, err := tui.RunPicker(width, height)
		if err != nil {
			return err
		}
		if id == "" {
			return nil
		}

		eng, console, err := newEngine(id)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			continue
		}
		if err := runTerminal(eng, console); err != nil {
			fmt.Fprintf(os.Stderr, "Error running cartridge: %v\n", err)
		}
	}
}
