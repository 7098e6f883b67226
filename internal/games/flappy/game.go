// Package flappy implements a Flappy Bird-style cartridge.
// The player flaps a bird through gaps between scrolling pipes.
package flappy

import (
	"fmt"

	"github.com/vovakirdan/tui-pico/internal/config"
	"github.com/vovakirdan/tui-pico/internal/core"
	"github.com/vovakirdan/tui-pico/internal/registry"
)

const (
	birdSize   = core.SpriteSize
	birdStartY = 20
	skyColor   = core.ColorBlue
)

// Game implements the Flappy cartridge.
type Game struct {
	birdY      float64 // top of the bird sprite
	velocity   float64 // pixels per tick, negative = up
	pipes      *PipeManager
	score      int
	gameOver   bool
	runtime    core.RuntimeConfig
	cfg        config.FlappyConfig
	difficulty *config.Difficulty
	tickCount  int
	restarts   int64
}

// Settings applied by the CLI before the cartridge is created.
var (
	configPath       string
	configDir        string
	difficultyPreset config.DifficultyPreset
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetConfigDir overrides the per-user config directory.
func SetConfigDir(dir string) {
	configDir = dir
}

// SetDifficultyPreset sets the difficulty preset. Unknown names keep the
// config default.
func SetDifficultyPreset(name string) {
	preset, err := config.ParsePreset(name)
	if err != nil {
		preset = ""
	}
	difficultyPreset = preset
}

// New creates a new Flappy instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "flappy"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Flappy Bird"
}

// Sprites returns the bird and pipe sprites.
func (g *Game) Sprites() core.SpriteTable {
	return sprites
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.restarts = 0

	cfg, err := config.Loader{Dir: configDir}.Flappy(configPath)
	if err != nil {
		cfg = config.DefaultFlappyConfig()
	}
	cfg.Difficulty.ApplyPreset(difficultyPreset)
	g.configure(cfg)
	g.restart(runtime.Seed)
}

// configure installs cfg and rebuilds the difficulty manager.
func (g *Game) configure(cfg config.FlappyConfig) {
	g.cfg = cfg
	g.difficulty = config.NewDifficulty(cfg.Difficulty)
	if g.pipes == nil {
		g.pipes = NewPipeManager(g.runtime.Seed, &g.cfg, g.difficulty)
	} else {
		g.pipes.UpdateConfig(&g.cfg, g.difficulty)
	}
}

// restart clears the round state and reseeds the pipes.
func (g *Game) restart(seed int64) {
	g.birdY = birdStartY
	g.velocity = 0
	g.score = 0
	g.gameOver = false
	g.tickCount = 0
	g.pipes.Reset(seed)
}

// Update advances the game by one tick.
func (g *Game) Update(in core.Input) {
	if g.gameOver {
		if in.Btnp(core.ButtonPrimary) {
			g.restarts++
			g.restart(g.runtime.Seed + g.restarts)
		}
		return
	}

	g.tickCount++
	g.fall()
	g.flap(in)

	g.score += g.pipes.Update(g.cfg.Player.X, g.score, g.tickCount)

	if g.pipes.CheckCollision(g.birdRect()) {
		g.gameOver = true
	}
}

// fall applies gravity and lands the bird on the floor.
func (g *Game) fall() {
	g.velocity += g.cfg.Physics.Gravity
	g.birdY += g.velocity

	if g.birdY >= g.cfg.Physics.Floor {
		g.birdY = g.cfg.Physics.Floor
		g.velocity = 0
	}
}

// flap clamps the bird at the ceiling and applies the flap impulse.
func (g *Game) flap(in core.Input) {
	if g.birdY <= 0 {
		g.birdY = 0
		g.velocity = 0
	}

	if in.Btnp(core.ButtonUp) || in.Btnp(core.ButtonPrimary) {
		g.velocity = g.cfg.Physics.FlapImpulse
	}
}

// birdRect returns the bird's collision rectangle.
func (g *Game) birdRect() core.Rect {
	return core.NewRect(g.cfg.Player.X, int(g.birdY), birdSize, birdSize)
}

// Draw renders the current game state to the screen.
func (g *Game) Draw(dst *core.Screen) {
	dst.Cls(skyColor)

	for _, p := range g.pipes.Pipes() {
		if !p.Free {
			drawPipe(dst, p)
		}
	}

	frame := (g.tickCount / g.cfg.Player.AnimEvery) % birdFrames
	dst.Spr(spriteBird+frame, g.cfg.Player.X, int(g.birdY), 1, 1)

	score := fmt.Sprintf("%d", g.score)
	dst.Print(score, core.NativeWidth-core.TextWidth(score)-1, 1, core.ColorWhite)

	if g.gameOver {
		dst.RectFill(g.cfg.Player.X, int(g.birdY), birdSize, birdSize, core.ColorBlack)
		drawCentered(dst, "game over", 56, core.ColorRed)
		drawCentered(dst, "press z", 66, core.ColorWhite)
	}
}

// drawPipe tiles the pipe body around the opening, then the two caps.
func drawPipe(dst *core.Screen, p Pipe) {
	x := int(p.X)
	for y := 0; y < core.NativeHeight; y += core.SpriteSize {
		if y < p.Y && y > p.Y-p.Gap {
			continue
		}
		dst.Spr(spritePipe, x, y, 2, 1)
	}

	dst.Spr(spritePipeCap, x, p.Y-pipeCapHeight, 2, 1)
	dst.Spr(spritePipeCap, x, p.Y-p.Gap+core.SpriteSize, 2, 1)
}

func drawCentered(dst *core.Screen, text string, y int, c core.Color) {
	dst.Print(text, (dst.Width()-core.TextWidth(text))/2, y, c)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
	}
}

// Register the game with the registry
func init() {
	registry.Register("flappy", func() registry.Cartridge {
		return New()
	})
}
