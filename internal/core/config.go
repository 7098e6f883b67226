package core

// Native console resolution in pixels.
const (
	TileSize     = 8
	NativeWidth  = TileSize * 16
	NativeHeight = TileSize * 16
)

// RuntimeConfig contains configuration passed to cartridges at reset.
// Cartridges use this for screen bounds and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in pixels
	ScreenH  int   // Screen height in pixels
	TickRate int   // Logical ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig for the native 128x128 screen.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  NativeWidth,
		ScreenH:  NativeHeight,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState is reported by a cartridge after each tick.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the round has ended
}
