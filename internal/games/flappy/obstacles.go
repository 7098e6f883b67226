package flappy

import (
	"math/rand"

	"github.com/vovakirdan/tui-pico/internal/config"
	"github.com/vovakirdan/tui-pico/internal/core"
)

// Pipe geometry in pixels. A pipe is two sprites wide; its collision box is
// inset by two pixels on each side.
const (
	PipeWidth      = 16
	pipeHitInset   = 2
	pipeHitWidth   = 12
	pipeCapHeight  = 7
	pipeMinY       = 48
	pipeYSteps     = 8
	pipeOffscreenX = -16
)

// Pipe is one pipe pair. Y is the top of the lower pipe's cap region; the
// opening spans (Y-Gap, Y).
type Pipe struct {
	X      float64 // left edge
	Y      int     // bottom of the opening
	Gap    int     // opening height
	Free   bool    // slot unused
	Passed bool    // counted for score
}

// TopRect returns the collision rectangle of the upper pipe.
func (p Pipe) TopRect() core.Rect {
	return core.NewRect(int(p.X)+pipeHitInset, 0, pipeHitWidth, p.Y-p.Gap+core.SpriteSize+pipeCapHeight)
}

// BottomRect returns the collision rectangle of the lower pipe.
func (p Pipe) BottomRect() core.Rect {
	return core.NewRect(int(p.X)+pipeHitInset, p.Y-pipeCapHeight, pipeHitWidth, core.NativeHeight)
}

// PipeManager handles spawning, movement and recycling of a fixed number of
// pipe slots.
type PipeManager struct {
	pipes      []Pipe
	rng        *rand.Rand
	sinceSpawn int
	cfg        *config.FlappyConfig
	difficulty *config.Difficulty
}

// NewPipeManager creates a pipe manager with the given RNG seed.
func NewPipeManager(seed int64, cfg *config.FlappyConfig, diff *config.Difficulty) *PipeManager {
	pm := &PipeManager{
		cfg:        cfg,
		difficulty: diff,
	}
	pm.Reset(seed)
	return pm
}

// UpdateConfig swaps the configuration, used when the game is reset.
func (pm *PipeManager) UpdateConfig(cfg *config.FlappyConfig, diff *config.Difficulty) {
	pm.cfg = cfg
	pm.difficulty = diff
}

// Reset frees every slot and reseeds the RNG.
func (pm *PipeManager) Reset(seed int64) {
	pm.pipes = make([]Pipe, pm.cfg.Pipes.Slots)
	for i := range pm.pipes {
		pm.pipes[i] = Pipe{X: core.NativeWidth, Free: true}
	}
	pm.rng = rand.New(rand.NewSource(seed))
	pm.sinceSpawn = 0
}

// Update moves pipes left, recycles pipes that left the screen and spawns a
// new one when the interval elapsed. Returns the number of pipes the bird
// passed this tick.
func (pm *PipeManager) Update(birdX, score, ticks int) int {
	pm.difficulty.Update(score, ticks)
	speed := pm.difficulty.Speed(pm.cfg.Physics.PipeSpeed)
	passed := 0

	for i := range pm.pipes {
		p := &pm.pipes[i]
		if p.Free {
			continue
		}
		p.X -= speed
		if p.X < pipeOffscreenX {
			*p = Pipe{X: core.NativeWidth, Free: true}
			continue
		}
		if !p.Passed && int(p.X)+PipeWidth < birdX {
			p.Passed = true
			passed++
		}
	}

	pm.sinceSpawn++
	if pm.sinceSpawn >= pm.difficulty.Spacing(pm.cfg.Pipes.SpawnEvery) {
		pm.sinceSpawn = 0
		pm.spawn()
	}
	return passed
}

// spawn fills the first free slot at the right edge. When every slot is
// taken the spawn is skipped.
func (pm *PipeManager) spawn() {
	for i := range pm.pipes {
		if !pm.pipes[i].Free {
			continue
		}
		pm.pipes[i] = Pipe{
			X:   core.NativeWidth,
			Y:   pm.rng.Intn(pipeYSteps)*core.SpriteSize + pipeMinY,
			Gap: pm.difficulty.GapSize(pm.cfg.Pipes.Gap),
		}
		return
	}
}

// Pipes returns the pipe slots, free ones included.
func (pm *PipeManager) Pipes() []Pipe {
	return pm.pipes
}

// CheckCollision tests if the given rectangle hits any live pipe.
func (pm *PipeManager) CheckCollision(r core.Rect) bool {
	for _, p := range pm.pipes {
		if p.Free {
			continue
		}
		if r.Intersects(p.TopRect()) || r.Intersects(p.BottomRect()) {
			return true
		}
	}
	return false
}
