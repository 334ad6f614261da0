// Package chase implements the maze chase game: collect every pickup in the
// maze while random-walking adversaries roam. Walking into an adversary (or
// being walked into) loses; clearing the maze wins.
//
// The adversaries are deliberately memoryless: each tick every one of them
// picks uniformly among its non-wall neighbor cells, with no pathfinding
// toward the player.
package chase

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

// Status represents the current game status.
type Status string

const (
	StatusPlaying Status = "playing"
	StatusWon     Status = "won"
	StatusLost    Status = "lost"
)

// Game implements the maze chase game.
type Game struct {
	cfg  config.ChaseConfig
	rng  core.Rand
	tick uint64

	maze       *Maze
	moveTicker int

	playerPos   core.Position
	direction   core.Direction
	adversaries []core.Position // Fixed count, stable order per adversary
	pickups     map[core.Position]bool
	score       int
	status      Status
	paused      bool

	screenW int
	screenH int
}

// New creates a new maze chase game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("chase", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "chase"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Maze Chase"
}

// Reset initializes/restarts the game: player and adversaries at their
// start cells, a pickup on every floor cell, zero score.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	loaded, err := config.LoadChase(configPath)
	if err != nil {
		loaded = config.DefaultChaseConfig()
	}
	g.cfg = loaded

	g.rng = core.NewRand(cfg.Seed)
	g.tick = 0
	g.moveTicker = 0
	g.score = 0
	g.status = StatusPlaying
	g.paused = false
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	g.maze = DefaultMaze()
	g.playerPos = g.maze.PlayerStart
	g.direction = core.DirLeft
	g.adversaries = make([]core.Position, len(g.maze.AdversaryStarts))
	copy(g.adversaries, g.maze.AdversaryStarts)

	g.pickups = make(map[core.Position]bool)
	for _, p := range g.maze.FloorCells() {
		g.pickups[p] = true
	}
}

// SetDirection changes the player's movement direction. Unlike snake there
// is no reversal guard: turning around in a corridor is legal.
func (g *Game) SetDirection(d core.Direction) {
	g.direction = d
}

// Step advances the game by one platform tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	if input.Has(core.ActionRestart) && g.status != StatusPlaying {
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

	if g.status != StatusPlaying || g.paused {
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

// processInput translates directional actions into the player direction.
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

// advance runs one movement tick: player step, adversary walks, pickup
// collection, then the collision check. Pickup collection comes first so
// the point is scored even on the tick the player is caught.
func (g *Game) advance() {
	if g.status != StatusPlaying {
		return
	}

	// Player moves one step, blocked by walls.
	dest := g.playerPos.Add(g.direction)
	if !g.maze.IsWall(dest) {
		g.playerPos = dest
	}

	// Each adversary takes an independent uniform step.
	for i, pos := range g.adversaries {
		var candidates []core.Position
		for _, d := range core.Directions {
			n := pos.Add(d)
			if !g.maze.IsWall(n) {
				candidates = append(candidates, n)
			}
		}
		if len(candidates) > 0 {
			g.adversaries[i] = candidates[g.rng.Intn(len(candidates))]
		}
	}

	if g.pickups[g.playerPos] {
		delete(g.pickups, g.playerPos)
		g.score += g.cfg.PointsPerPickup
		if len(g.pickups) == 0 {
			g.status = StatusWon
			return
		}
	}

	for _, pos := range g.adversaries {
		if pos == g.playerPos {
			g.status = StatusLost
			return
		}
	}
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	hud := fmt.Sprintf(" Maze Chase — Score: %d  Pickups left: %d", g.score, len(g.pickups))
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')

	offX := (dst.Width() - g.maze.Width) / 2
	offY := 2
	if offX < 0 {
		offX = 0
	}

	for wall := range g.maze.Walls {
		dst.SetColored(offX+wall.X, offY+wall.Y, '#', core.ColorBlue)
	}
	for p := range g.pickups {
		dst.SetColored(offX+p.X, offY+p.Y, '·', core.ColorGray)
	}
	for _, pos := range g.adversaries {
		dst.SetColored(offX+pos.X, offY+pos.Y, 'M', core.ColorBrightRed)
	}
	dst.SetColored(offX+g.playerPos.X, offY+g.playerPos.Y, '@', core.ColorBrightYellow)

	switch {
	case g.status == StatusWon:
		dst.DrawTextCentered(offY+g.maze.Height/2, " You cleared the maze! Press R to restart ")
	case g.status == StatusLost:
		dst.DrawTextCentered(offY+g.maze.Height/2, " Caught! Press R to restart ")
	case g.paused:
		dst.DrawTextCentered(offY+g.maze.Height/2, " Paused — press P to continue ")
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.status != StatusPlaying,
		Paused:   g.paused,
	}
}
