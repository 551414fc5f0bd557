package turtle

import (
	"strings"
	"testing"

	"github.com/dotille/dotille"
)

func TestStarGrowsBoundMonotonically(t *testing.T) {
	// A closed five-pointed star: five sides of 100 with 144 degree turns.
	tr := New()
	for i := 0; i < 5; i++ {
		tr.Forward(100)
		tr.Right(144)
	}
	tr.Animate()

	c := dotille.New()
	prevW, prevH := 0, 0
	for {
		done := tr.Step()
		c.Clear()
		if err := c.Paint(tr, 0, 0); err != nil {
			t.Fatalf("Paint() error = %v", err)
		}
		w, h := c.Size()
		if w < prevW || h < prevH {
			t.Fatalf("bound shrank during draw: (%d, %d) -> (%d, %d)", prevW, prevH, w, h)
		}
		prevW, prevH = w, h
		if done {
			break
		}
	}
	if prevW <= 1 || prevH <= 1 {
		t.Errorf("final Size() = (%d, %d), want both > 1", prevW, prevH)
	}
}

func TestClosedPathReturnsHome(t *testing.T) {
	// Square: end dot must coincide with the start dot.
	tr := New()
	for i := 0; i < 4; i++ {
		tr.Forward(40)
		tr.Right(90)
	}
	c := dotille.New()
	if err := c.Paint(tr, 0, 0); err != nil {
		t.Fatalf("Paint() error = %v", err)
	}
	if !c.Dot(0, 0) {
		t.Error("start dot not set after closed path")
	}
	cols, rows := c.Bound()
	if w := cols[1] - cols[0] + 1; w != 21 {
		t.Errorf("width = %d cells, want 21 (40 dots + endpoint)", w)
	}
	if h := rows[1] - rows[0] + 1; h != 11 {
		t.Errorf("height = %d cells, want 11", h)
	}
}

func TestPenUpSkipsDrawing(t *testing.T) {
	tr := New()
	tr.PenUp()
	tr.Forward(50)
	c := dotille.New()
	if err := c.Paint(tr, 0, 0); err != nil {
		t.Fatalf("Paint() error = %v", err)
	}
	if w, h := c.Size(); w != 0 || h != 0 {
		t.Errorf("Size() = (%d, %d) after pen-up move, want (0, 0)", w, h)
	}

	tr.PenDown()
	tr.Forward(10)
	c.Reset()
	if err := c.Paint(tr, 0, 0); err != nil {
		t.Fatalf("Paint() error = %v", err)
	}
	if c.Dot(0, 0) {
		t.Error("dot at origin set despite pen up during first move")
	}
	if !c.Dot(60, 0) {
		t.Error("end dot of pen-down move not set")
	}
}

func TestGotoTeleportHome(t *testing.T) {
	tr := New()
	tr.Teleport(10, 10)
	tr.Goto(20, 10)
	tr.Home()
	tr.Forward(5)
	c := dotille.New()
	if err := c.Paint(tr, 0, 0); err != nil {
		t.Fatalf("Paint() error = %v", err)
	}
	if c.Dot(5, 5) {
		t.Error("teleport drew a line")
	}
	if !c.Dot(10, 10) || !c.Dot(20, 10) {
		t.Error("goto line endpoints not set")
	}
	if !c.Dot(0, 0) || !c.Dot(5, 0) {
		t.Error("post-home move not drawn from the origin")
	}
}

func TestBackwardIsNegativeForward(t *testing.T) {
	tr := New()
	tr.Backward(10)
	c := dotille.New()
	if err := c.Paint(tr, 0, 0); err != nil {
		t.Fatalf("Paint() error = %v", err)
	}
	if !c.Dot(-10, 0) {
		t.Error("backward end dot not set at (-10, 0)")
	}
}

func TestCirclePaintsRoundShape(t *testing.T) {
	tr := New()
	tr.Circle(20, 360)
	c := dotille.New()
	if err := c.Paint(tr, 0, 0); err != nil {
		t.Fatalf("Paint() error = %v", err)
	}
	w, h := c.Size()
	if w == 0 || h == 0 {
		t.Fatal("circle painted nothing")
	}
	// A full circle of radius 20 spans about 40 dots both ways.
	if w < 15 || w > 25 {
		t.Errorf("width = %d cells, want about 20", w)
	}
	if h < 8 || h > 13 {
		t.Errorf("height = %d cells, want about 10", h)
	}
}

func TestAnimationStepCount(t *testing.T) {
	tr := New()
	tr.Forward(100)
	tr.Right(90)
	tr.Forward(5)
	tr.SetStep(10)
	tr.Animate()

	steps := 0
	for !tr.Step() {
		steps++
	}
	steps++
	// Forward(100) slices into 10 frames, the short move is 1 more.
	if steps != 11 {
		t.Errorf("animation took %d steps, want 11", steps)
	}
}

func TestStepWithoutAnimateIsDone(t *testing.T) {
	tr := New()
	tr.Forward(10)
	if !tr.Step() {
		t.Error("Step() = false on a turtle that was never animated")
	}
}

func TestSpiralFrameIsStable(t *testing.T) {
	// Same procedure list painted twice yields the same frame.
	tr := New()
	length := 1.0
	for i := 0; i < 60; i++ {
		tr.Forward(length)
		tr.Right(10)
		length += 0.5
	}
	c1 := dotille.New()
	c2 := dotille.New()
	if err := c1.Paint(tr, 50, 50); err != nil {
		t.Fatalf("Paint() error = %v", err)
	}
	if err := c2.Paint(tr, 50, 50); err != nil {
		t.Fatalf("Paint() error = %v", err)
	}
	if c1.Frame() != c2.Frame() {
		t.Error("repeated paint of the same path produced different frames")
	}
	if !strings.ContainsFunc(c1.Frame(), func(r rune) bool { return r >= 0x2801 }) {
		t.Error("spiral frame has no braille glyphs")
	}
}
