// Package dotille is a terminal rasterization engine built on Unicode
// braille patterns.
//
// # Overview
//
// Each terminal character cell encodes a 2x4 grid of dots, so a Canvas
// gives an ordinary terminal an effective sub-cell resolution of two
// columns and four rows per character. Continuous (x, y) coordinates are
// quantized to dot units, packed into per-cell bitmasks, and serialized
// back out as lines of braille glyphs (U+2800 + mask).
//
// # Quick Start
//
//	import "github.com/dotille/dotille"
//
//	c := dotille.New()
//	for i := 0; i < 1800; i++ {
//		x := float64(i)
//		c.Set(x/10, 15+math.Sin(x*math.Pi/180)*10)
//	}
//	fmt.Println(c.Frame())
//
// # Coordinates
//
// The canvas is unbounded and sparse: cells are allocated on first use and
// negative coordinates are fine. The visible rectangle grows to enclose
// everything drawn, or can be pinned with SetBound for a fixed-size frame.
// The y axis points up; the top line of Frame holds the largest y values.
//
// # Drawables
//
// Anything implementing Painter can render itself onto a Canvas at an
// offset. The subpackages provide ready-made drawables (turtle, life,
// object3d, particle, img) and an animation runtime (anime); the engine
// itself knows nothing about them.
//
// # Concurrency
//
// A Canvas is not safe for concurrent use. Drive all drawing from one
// goroutine, or serialize access externally; anime does this by painting
// every drawable sequentially inside its single event loop.
package dotille
