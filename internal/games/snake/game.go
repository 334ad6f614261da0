// Package snake implements the toroidal-grid snake game: the board has no
// walls, coordinates wrap at the edges, and the only way to die is to run
// into yourself.
package snake

import (
	"fmt"

	"github.com/DonaM86/Classic-games/internal/config"
	"github.com/DonaM86/Classic-games/internal/core"
	"github.com/DonaM86/Classic-games/internal/registry"
)

// Package-level configuration hook, set by the CLI before game creation.
var configPath string

// SetConfigPath sets the config file path for subsequently created games.
func SetConfigPath(path string) {
	configPath = path
}

// Game implements the snake game.
type Game struct {
	cfg  config.SnakeConfig
	rng  core.Rand
	tick uint64

	gridSize   int
	moveTicker int

	// Snake state
	segments  []core.Position // Head at index 0
	direction core.Direction
	nextDir   core.Direction // Buffered direction, applied on next move
	food      core.Position
	score     int

	gameOver bool
	paused   bool

	screenW int
	screenH int
}

// New creates a new snake game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("snake", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "snake"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snake"
}

// Reset initializes/restarts the game: a single-segment snake at the grid
// center heading right, zero score, fresh food.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	loaded, err := config.LoadSnake(configPath)
	if err != nil {
		loaded = config.DefaultSnakeConfig()
	}
	g.cfg = loaded
	g.gridSize = loaded.GridSize

	g.rng = core.NewRand(cfg.Seed)
	g.tick = 0
	g.moveTicker = 0
	g.score = 0
	g.gameOver = false
	g.paused = false
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	center := core.Position{X: g.gridSize / 2, Y: g.gridSize / 2}
	g.segments = []core.Position{center}
	g.direction = core.DirRight
	g.nextDir = core.DirRight

	g.spawnFood()
}

// SetDirection buffers a direction change for the next move. A request for
// the exact opposite of the current direction is ignored, since it would
// mean instant self-collision.
func (g *Game) SetDirection(d core.Direction) {
	if d == g.direction.Opposite() {
		return
	}
	g.nextDir = d
}

// spawnFood places food at a uniform-random grid cell. The cell is not
// checked against the snake body; food landing under the snake is a quirk
// of the original rules and is kept intentionally.
func (g *Game) spawnFood() {
	g.food = core.Position{
		X: g.rng.Intn(g.gridSize),
		Y: g.rng.Intn(g.gridSize),
	}
}

// Step advances the game by one platform tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	if input.Has(core.ActionRestart) && g.gameOver {
		g.Reset(core.RuntimeConfig{
			Seed:    g.rng.Int63(),
			ScreenW: g.screenW,
			ScreenH: g.screenH,
		})
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.gameOver || g.paused {
		return core.StepResult{State: g.State()}
	}

	g.processInput(input)

	g.moveTicker++
	if g.moveTicker >= g.cfg.MoveEveryTicks {
		g.moveTicker = 0
		g.advance()
	}

	return core.StepResult{State: g.State()}
}

// processInput translates directional actions into a buffered direction.
func (g *Game) processInput(input core.InputFrame) {
	switch {
	case input.Has(core.ActionUp):
		g.SetDirection(core.DirUp)
	case input.Has(core.ActionDown):
		g.SetDirection(core.DirDown)
	case input.Has(core.ActionLeft):
		g.SetDirection(core.DirLeft)
	case input.Has(core.ActionRight):
		g.SetDirection(core.DirRight)
	}
}

// advance moves the snake one cell: this is the per-move-tick transition.
func (g *Game) advance() {
	if g.gameOver || len(g.segments) == 0 {
		return
	}

	g.direction = g.nextDir

	newHead := g.segments[0].Add(g.direction).Wrap(g.gridSize)

	// Self collision ends the game; the rest of the state stays as it was.
	for _, seg := range g.segments {
		if seg == newHead {
			g.gameOver = true
			return
		}
	}

	g.segments = append([]core.Position{newHead}, g.segments...)

	if newHead == g.food {
		g.score += g.cfg.PointsPerFood
		g.spawnFood()
	} else {
		g.segments = g.segments[:len(g.segments)-1]
	}
}

// isSnakeAt checks if the snake occupies the given cell.
func (g *Game) isSnakeAt(p core.Position) bool {
	for _, seg := range g.segments {
		if seg == p {
			return true
		}
	}
	return false
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	hud := fmt.Sprintf(" Snake — Score: %d  Length: %d", g.score, len(g.segments))
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')

	offX := (dst.Width() - g.gridSize - 2) / 2
	offY := 2
	if offX < 0 {
		offX = 0
	}

	// Frame marks the wrap boundary; it is not a wall.
	dst.DrawBox(offX, offY, g.gridSize+2, g.gridSize+2)

	for i, seg := range g.segments {
		r := 'o'
		c := core.ColorGreen
		if i == 0 {
			r = 'O'
			c = core.ColorBrightGreen
		}
		dst.SetColored(offX+1+seg.X, offY+1+seg.Y, r, c)
	}

	dst.SetColored(offX+1+g.food.X, offY+1+g.food.Y, '*', core.ColorBrightRed)

	switch {
	case g.gameOver:
		dst.DrawTextCentered(offY+g.gridSize/2, " Game Over — press R to restart ")
	case g.paused:
		dst.DrawTextCentered(offY+g.gridSize/2, " Paused — press P to continue ")
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}
