package img

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/dotille/dotille"
)

// testImage builds a 2x2 grayscale image with one bright pixel at (0,0).
func testImage() *image.Gray {
	m := image.NewGray(image.Rect(0, 0, 2, 2))
	m.SetGray(0, 0, color.Gray{Y: 255})
	return m
}

func fixedCanvas() *dotille.Canvas {
	return dotille.New(dotille.WithBound(0, 9, 0, 4))
}

func TestPaintThreshold(t *testing.T) {
	im := FromImage(testImage())
	c := fixedCanvas()
	if err := c.Paint(im, 0, 0); err != nil {
		t.Fatalf("Paint() error = %v", err)
	}
	// The bright pixel is the top-left image pixel: dot (0, imageHeight).
	if !c.Dot(0, 2) {
		t.Error("bright pixel dot not set at (0, 2)")
	}
	for _, d := range [][2]float64{{1, 2}, {0, 1}, {1, 1}} {
		if c.Dot(d[0], d[1]) {
			t.Errorf("dark pixel dot set at (%v, %v)", d[0], d[1])
		}
	}
}

func TestPaintInvert(t *testing.T) {
	im := FromImage(testImage())
	im.SetInvert(true)
	c := fixedCanvas()
	if err := c.Paint(im, 0, 0); err != nil {
		t.Fatalf("Paint() error = %v", err)
	}
	if c.Dot(0, 2) {
		t.Error("bright pixel drawn despite invert")
	}
	if !c.Dot(1, 2) || !c.Dot(0, 1) || !c.Dot(1, 1) {
		t.Error("dark pixels not drawn with invert")
	}
}

func TestSetThreshold(t *testing.T) {
	m := image.NewGray(image.Rect(0, 0, 1, 1))
	m.SetGray(0, 0, color.Gray{Y: 100})
	im := FromImage(m)
	c := fixedCanvas()
	if err := c.Paint(im, 0, 0); err != nil {
		t.Fatalf("Paint() error = %v", err)
	}
	if c.Dot(0, 1) {
		t.Error("mid-gray pixel drawn at default threshold")
	}

	im.SetThreshold(50)
	c2 := fixedCanvas()
	if err := c2.Paint(im, 0, 0); err != nil {
		t.Fatalf("Paint() error = %v", err)
	}
	if !c2.Dot(0, 1) {
		t.Error("mid-gray pixel not drawn at lowered threshold")
	}
}

func TestDownscaleToFixedBound(t *testing.T) {
	// 400x400 source onto a 10x5-cell viewport: 20x20 dots.
	m := image.NewGray(image.Rect(0, 0, 400, 400))
	for y := 0; y < 400; y++ {
		for x := 0; x < 400; x++ {
			m.SetGray(x, y, color.Gray{Y: 255})
		}
	}
	im := FromImage(m)
	c := fixedCanvas()
	if err := c.Paint(im, 0, 0); err != nil {
		t.Fatalf("Paint() error = %v", err)
	}
	g := im.scaled(20, 20)
	b := g.Bounds()
	if b.Dx() != 20 || b.Dy() != 20 {
		t.Errorf("scaled size = %dx%d, want 20x20", b.Dx(), b.Dy())
	}
}

func TestScaledCacheHit(t *testing.T) {
	im := FromImage(testImage())
	g1 := im.scaled(20, 20)
	g2 := im.scaled(20, 20)
	if g1 != g2 {
		t.Error("second scale at the same size missed the cache")
	}
	if im.cache.Len() != 1 {
		t.Errorf("cache entries = %d, want 1", im.cache.Len())
	}
}

func TestOpenDecodesPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dot.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, testImage()); err != nil {
		t.Fatal(err)
	}
	f.Close()

	im, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	c := fixedCanvas()
	if err := c.Paint(im, 0, 0); err != nil {
		t.Fatalf("Paint() error = %v", err)
	}
	if !c.Dot(0, 2) {
		t.Error("decoded image did not paint its bright pixel")
	}
}

func TestOpenMissingFile(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Error("Open() of missing file returned nil error")
	}
}
