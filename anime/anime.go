// Package anime runs frame-based braille animations in the terminal.
//
// An Animation owns a canvas and a list of drawables, each paired with
// an update function. Every tick the canvas is cleared, each drawable is
// updated and repainted, and the frame is rendered by a Bubble Tea
// program on the alternate screen. The loop stops when every update
// function has reported done, or when the user presses esc or ctrl+c.
package anime

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/dotille/dotille"
)

// DefaultFPS is the frame rate used when none is configured.
const DefaultFPS = 30

var borderStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder())

// drawable pairs a painter with its per-frame update function.
type drawable struct {
	painter dotille.Painter
	update  func() bool
	x, y    float64
	done    bool
}

// Animation drives a set of drawables through a fixed-rate frame loop.
type Animation struct {
	canvas    *dotille.Canvas
	drawables []*drawable
	fps       int
	border    bool
	title     string
}

// Option configures an Animation.
type Option func(*Animation)

// WithFPS sets the frame rate. Values below 1 fall back to DefaultFPS.
func WithFPS(fps int) Option {
	return func(a *Animation) {
		if fps > 0 {
			a.fps = fps
		}
	}
}

// WithBorder draws a rounded border around each frame.
func WithBorder() Option {
	return func(a *Animation) {
		a.border = true
	}
}

// WithTitle places a centered title above each frame. Titles wider than
// the frame are truncated.
func WithTitle(title string) Option {
	return func(a *Animation) {
		a.title = title
	}
}

// WithBound pins the canvas viewport to the given cell rectangle so the
// frame size stays constant across ticks.
func WithBound(minCol, maxCol, minRow, maxRow int) Option {
	return func(a *Animation) {
		a.canvas = dotille.New(dotille.WithBound(minCol, maxCol, minRow, maxRow))
	}
}

// New returns an animation with an empty canvas and the default frame rate.
func New(opts ...Option) *Animation {
	a := &Animation{
		canvas: dotille.New(),
		fps:    DefaultFPS,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Canvas returns the canvas the animation paints on.
func (a *Animation) Canvas() *dotille.Canvas {
	return a.canvas
}

// Push adds a drawable to the animation. Each tick, update is called
// once and then p is painted at cell offset (x, y). When update returns
// true the drawable is finished: it keeps being painted but is no longer
// updated. The animation ends when every drawable has finished.
func (a *Animation) Push(p dotille.Painter, update func() bool, x, y float64) {
	a.drawables = append(a.drawables, &drawable{
		painter: p,
		update:  update,
		x:       x,
		y:       y,
	})
}

// step advances every drawable one frame and repaints the canvas. It
// reports whether all drawables have finished.
func (a *Animation) step() (bool, error) {
	a.canvas.Clear()
	done := true
	for _, d := range a.drawables {
		if !d.done {
			d.done = d.update()
		}
		if !d.done {
			done = false
		}
		if err := a.canvas.Paint(d.painter, d.x, d.y); err != nil {
			return false, fmt.Errorf("anime: paint: %w", err)
		}
	}
	return done, nil
}

// Run starts the frame loop and blocks until the animation ends or the
// user quits with esc or ctrl+c.
func (a *Animation) Run() error {
	dotille.Logger().Debug("anime: run", "fps", a.fps, "drawables", len(a.drawables))
	p := tea.NewProgram(newModel(a), tea.WithAltScreen())
	out, err := p.Run()
	if err != nil {
		return fmt.Errorf("anime: %w", err)
	}
	if m, ok := out.(model); ok && m.err != nil {
		return m.err
	}
	return nil
}

// tickMsg signals the start of the next frame.
type tickMsg time.Time

func doTick(fps int) tea.Cmd {
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// model is the Bubble Tea model wrapping an Animation.
type model struct {
	anim     *Animation
	width    int
	err      error
	quitting bool
}

func newModel(a *Animation) model {
	return model{anim: a}
}

// Init implements tea.Model.
func (m model) Init() tea.Cmd {
	return doTick(m.anim.fps)
}

// Update implements tea.Model.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case tickMsg:
		done, err := m.anim.step()
		if err != nil {
			m.err = err
			m.quitting = true
			return m, tea.Quit
		}
		if done {
			m.quitting = true
			return m, tea.Quit
		}
		return m, doTick(m.anim.fps)
	}
	return m, nil
}

// View implements tea.Model.
func (m model) View() string {
	if m.quitting {
		return ""
	}
	frame := m.anim.canvas.Frame()
	if m.anim.border {
		frame = borderStyle.Render(frame)
	}
	if m.anim.title != "" {
		w := lipgloss.Width(frame)
		title := runewidth.Truncate(m.anim.title, w, "…")
		frame = lipgloss.JoinVertical(lipgloss.Center, title, frame)
	}
	return frame
}
