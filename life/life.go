// Package life implements Conway's Game of Life on an unbounded sparse
// grid, as a dotille drawable. Patterns load from run-length encoded
// (RLE) text, the de facto interchange format for life patterns.
package life

import (
	"fmt"
	"os"
	"strings"

	"github.com/dotille/dotille"
)

// cell is a live-cell coordinate, (x, y).
type cell [2]int

// Game holds the set of live cells. Only live cells are stored, so the
// grid is unbounded and memory tracks the population, not the area.
type Game struct {
	cells map[cell]struct{}
}

// New returns an empty game.
func New() *Game {
	return &Game{cells: make(map[cell]struct{})}
}

// SetAlive marks the cell at (x, y) live.
func (g *Game) SetAlive(x, y int) {
	g.cells[cell{x, y}] = struct{}{}
}

// Alive reports whether the cell at (x, y) is live.
func (g *Game) Alive(x, y int) bool {
	_, ok := g.cells[cell{x, y}]
	return ok
}

// Population returns the number of live cells.
func (g *Game) Population() int {
	return len(g.cells)
}

// Step advances the game by one generation under the standard B3/S23
// rules and reports whether the population has died out.
func (g *Game) Step() bool {
	// Only live cells and their neighbors can change state.
	next := make(map[cell]struct{}, len(g.cells))
	candidates := make(map[cell]struct{}, len(g.cells)*4)
	for c := range g.cells {
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				candidates[cell{c[0] + dx, c[1] + dy}] = struct{}{}
			}
		}
	}
	for c := range candidates {
		n := g.neighbors(c[0], c[1])
		if n == 3 || (n == 2 && g.Alive(c[0], c[1])) {
			next[c] = struct{}{}
		}
	}
	g.cells = next
	return len(g.cells) == 0
}

func (g *Game) neighbors(x, y int) int {
	count := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if g.Alive(x+dx, y+dy) {
				count++
			}
		}
	}
	return count
}

// Paint sets one dot per live cell, translated by (x, y). RLE patterns
// grow downward, so the pattern's y axis is flipped to keep it upright on
// the y-up canvas.
func (g *Game) Paint(c *dotille.Canvas, x, y float64) error {
	for cl := range g.cells {
		c.Set(x+float64(cl[0]), y-float64(cl[1]))
	}
	return nil
}

// Parse reads an RLE pattern: '#' comment lines, an optional
// "x = W, y = H" header, then runs of 'b' (dead), 'o' (live) and '$'
// (end of row), terminated by '!'. Rule strings in the header are
// ignored; only B3/S23 is supported.
func Parse(rle string) (*Game, error) {
	g := New()
	body, err := skipHeader(rle)
	if err != nil {
		return nil, err
	}

	x, y := 0, 0
	run := 0
	for _, line := range body {
		for _, r := range line {
			switch {
			case r >= '0' && r <= '9':
				run = run*10 + int(r-'0')
			case r == 'b':
				x += runLen(run)
				run = 0
			case r == 'o':
				for i := 0; i < runLen(run); i++ {
					g.SetAlive(x, y)
					x++
				}
				run = 0
			case r == '$':
				y += runLen(run)
				x = 0
				run = 0
			case r == '!':
				return g, nil
			}
		}
	}
	return g, nil
}

// Load reads an RLE pattern file.
func Load(path string) (*Game, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("life: open pattern: %w", err)
	}
	g, err := Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("life: parse %s: %w", path, err)
	}
	return g, nil
}

// runLen interprets a pending run count; an absent count means one.
func runLen(run int) int {
	if run == 0 {
		return 1
	}
	return run
}

// skipHeader drops comment lines and the size header, returning the
// remaining pattern lines.
func skipHeader(rle string) ([]string, error) {
	lines := strings.Split(rle, "\n")
	for i, line := range lines {
		line = strings.TrimSpace(line)
		switch {
		case line == "" || strings.HasPrefix(line, "#"):
			continue
		case strings.HasPrefix(line, "x"):
			if _, _, err := parseSize(line); err != nil {
				return nil, err
			}
			return lines[i+1:], nil
		default:
			// No header; the pattern starts immediately.
			return lines[i:], nil
		}
	}
	return nil, nil
}

// parseSize reads the "x = W, y = H" header line.
func parseSize(line string) (w, h int, err error) {
	for _, field := range strings.Split(line, ",") {
		k, v, ok := strings.Cut(field, "=")
		if !ok {
			continue
		}
		switch strings.TrimSpace(k) {
		case "x":
			if _, err := fmt.Sscanf(strings.TrimSpace(v), "%d", &w); err != nil {
				return 0, 0, fmt.Errorf("life: bad width in header %q", line)
			}
		case "y":
			if _, err := fmt.Sscanf(strings.TrimSpace(v), "%d", &h); err != nil {
				return 0, 0, fmt.Errorf("life: bad height in header %q", line)
			}
		}
	}
	return w, h, nil
}
