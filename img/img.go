// Package img renders raster images as braille art.
//
// An Image drawable samples a decoded picture down to the dot grid: the
// source is scaled to fit the available cells (each cell is 2x4 dots),
// converted to grayscale, and thresholded; dots light up where the image
// is bright (or dark, with Invert). Scaled frames are cached per target
// size, so animating or reprinting at a stable size decodes and scales
// only once.
package img

import (
	"fmt"
	"image"
	"os"

	lru "github.com/hashicorp/golang-lru/v2"
	xdraw "golang.org/x/image/draw"

	"github.com/dotille/dotille"
	"github.com/dotille/dotille/term"

	// Stdlib and x/image decoders for the common formats.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// DefaultThreshold is the grayscale cutoff above which a dot is drawn.
const DefaultThreshold = 128

// scaleCacheSize bounds how many distinct target sizes are kept; resizes
// during one session rarely pass through more than a handful.
const scaleCacheSize = 8

// Image is a paintable picture.
type Image struct {
	src       image.Image
	threshold uint8
	invert    bool
	cache     *lru.Cache[[2]int, *image.Gray]
}

// Open decodes the image file at path. Format is detected from the
// content; png, jpeg, gif, webp, bmp and tiff are supported.
func Open(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("img: open %s: %w", path, err)
	}
	defer f.Close()
	m, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("img: decode %s: %w", path, err)
	}
	dotille.Logger().Debug("img: decoded image", "path", path, "format", format,
		"width", m.Bounds().Dx(), "height", m.Bounds().Dy())
	return FromImage(m), nil
}

// FromImage wraps an already-decoded image.
func FromImage(m image.Image) *Image {
	cache, _ := lru.New[[2]int, *image.Gray](scaleCacheSize)
	return &Image{
		src:       m,
		threshold: DefaultThreshold,
		cache:     cache,
	}
}

// SetThreshold sets the grayscale cutoff (0..255) above which a dot is
// drawn.
func (im *Image) SetThreshold(v uint8) {
	im.threshold = v
}

// SetInvert flips the threshold comparison, drawing the dark side of the
// image instead; useful on light-background terminals.
func (im *Image) SetInvert(invert bool) {
	im.invert = invert
}

// Paint rasterizes the image with its lower-left corner at (x, y).
//
// The target size comes from the canvas's pinned bound when there is
// one, otherwise from the terminal size minus the offset -- so by default
// a large picture fits the screen. The image is fit preserving aspect
// ratio: height first, then width if it still overflows.
func (im *Image) Paint(c *dotille.Canvas, x, y float64) error {
	cellW, cellH := im.targetCells(c, x, y)
	if cellW < 1 || cellH < 1 {
		return fmt.Errorf("img: no room to paint at offset (%v, %v)", x, y)
	}
	gray := im.scaled(cellW*2, cellH*4)

	b := gray.Bounds()
	w, h := b.Dx(), b.Dy()
	for ny := 0; ny < h; ny++ {
		for nx := 0; nx < w; nx++ {
			lum := gray.GrayAt(b.Min.X+nx, b.Min.Y+ny).Y
			draw := lum > im.threshold
			if im.invert {
				draw = lum < im.threshold
			}
			if draw {
				// Image rows grow downward; the canvas y axis points up.
				c.Set(x+float64(nx), y+float64(h-ny))
			}
		}
	}
	return nil
}

// targetCells returns the cell budget for painting at the given offset.
func (im *Image) targetCells(c *dotille.Canvas, x, y float64) (w, h int) {
	if c.Fixed() {
		return c.Size()
	}
	w, h = term.Size()
	cols, rows := offsetCells(x, y)
	if cols > 0 {
		w -= cols
	}
	if rows > 0 {
		h -= rows
	}
	return w, h
}

// offsetCells quantizes a paint offset to whole cells.
func offsetCells(x, y float64) (cols, rows int) {
	return int(x) / 2, int(y) / 4
}

// scaled returns the source in grayscale, downscaled to fit within
// maxW x maxH dots (aspect preserved; never upscaled), from cache when
// possible.
func (im *Image) scaled(maxW, maxH int) *image.Gray {
	b := im.src.Bounds()
	srcW, srcH := b.Dx(), b.Dy()

	w, h := srcW, srcH
	if srcW > maxW || srcH > maxH {
		// Fit the height first; fall back to the width if the result is
		// still too wide.
		f := float64(maxH) / float64(srcH)
		w, h = int(float64(srcW)*f), maxH
		if w > maxW {
			f = float64(maxW) / float64(srcW)
			w, h = maxW, int(float64(srcH)*f)
		}
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	key := [2]int{w, h}
	if g, ok := im.cache.Get(key); ok {
		return g
	}
	g := image.NewGray(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(g, g.Bounds(), im.src, b, xdraw.Src, nil)
	im.cache.Add(key, g)
	dotille.Logger().Debug("img: scaled frame", "width", w, "height", h)
	return g
}
