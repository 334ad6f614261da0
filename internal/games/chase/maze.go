package chase

import "github.com/DonaM86/Classic-games/internal/core"

// Maze holds the static level geometry: walls never change for the session.
type Maze struct {
	Width  int
	Height int
	Walls  map[core.Position]bool

	PlayerStart     core.Position
	AdversaryStarts []core.Position
}

// defaultLayout is the built-in maze. '#' is a wall, 'P' the player start,
// 'G' an adversary start; everything else is floor. Every floor cell holds
// a pickup at the start of a round.
var defaultLayout = []string{
	"###################",
	"#........#........#",
	"#.###.##.#.##.###.#",
	"#.................#",
	"#.###.#.###.#.###.#",
	"#.....#..G..#.....#",
	"#####.#.#G#.#.#####",
	"#.....#.#G#.#.....#",
	"#.###...#G#...###.#",
	"#.#...#.....#...#.#",
	"#.#.#.##.#.##.#.#.#",
	"#...#....#....#...#",
	"#.#.####.#.####.#.#",
	"#.#......P......#.#",
	"#...####.#.####...#",
	"#.#......#......#.#",
	"#.#.####.#.####.#.#",
	"#........#........#",
	"###################",
}

// DefaultMaze parses the built-in layout.
func DefaultMaze() *Maze {
	return parseLayout(defaultLayout)
}

// parseLayout builds a Maze from layout strings.
func parseLayout(layout []string) *Maze {
	m := &Maze{
		Height: len(layout),
		Walls:  make(map[core.Position]bool),
	}

	for y, row := range layout {
		if len(row) > m.Width {
			m.Width = len(row)
		}
		for x, ch := range row {
			p := core.Position{X: x, Y: y}
			switch ch {
			case '#':
				m.Walls[p] = true
			case 'P':
				m.PlayerStart = p
			case 'G':
				m.AdversaryStarts = append(m.AdversaryStarts, p)
			}
		}
	}

	return m
}

// IsWall reports whether p is a wall or outside the maze bounds.
func (m *Maze) IsWall(p core.Position) bool {
	if p.X < 0 || p.X >= m.Width || p.Y < 0 || p.Y >= m.Height {
		return true
	}
	return m.Walls[p]
}

// FloorCells returns every non-wall cell inside the maze.
func (m *Maze) FloorCells() []core.Position {
	var cells []core.Position
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			p := core.Position{X: x, Y: y}
			if !m.Walls[p] {
				cells = append(cells, p)
			}
		}
	}
	return cells
}
