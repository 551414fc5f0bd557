// Command dotille-demo demonstrates the dotille braille canvas.
package main

import (
	"errors"
	"flag"
	"log"
	"math"
	"math/rand"
	"time"

	"github.com/dotille/dotille"
	"github.com/dotille/dotille/anime"
	"github.com/dotille/dotille/img"
	"github.com/dotille/dotille/life"
	"github.com/dotille/dotille/object3d"
	"github.com/dotille/dotille/particle"
	"github.com/dotille/dotille/turtle"
)

func main() {
	var (
		demo = flag.String("demo", "sine", "demo to run: sine, turtle, cube, life, image, particles")
		path = flag.String("path", "", "input file for the life and image demos")
		fps  = flag.Int("fps", 30, "animation frame rate")
	)
	flag.Parse()

	var err error
	switch *demo {
	case "sine":
		err = runSine()
	case "turtle":
		err = runTurtle(*fps)
	case "cube":
		err = runCube(*fps)
	case "life":
		err = runLife(*path, *fps)
	case "image":
		err = runImage(*path)
	case "particles":
		err = runParticles(*fps)
	default:
		log.Fatalf("unknown demo %q", *demo)
	}
	if err != nil {
		log.Fatalf("%s demo failed: %v", *demo, err)
	}
}

func runSine() error {
	c := dotille.New()
	for i := range 1800 {
		x := float64(i)
		c.Set(x/10, 15+10*math.Sin(x*math.Pi/180))
	}
	return c.Print()
}

func runTurtle(fps int) error {
	t := turtle.New()
	for range 5 {
		t.Forward(100)
		t.Right(144)
	}
	t.Animate()

	a := anime.New(anime.WithFPS(fps), anime.WithTitle("star"))
	a.Push(t, t.Step, 0, 0)
	return a.Run()
}

func runCube(fps int) error {
	cube := object3d.Cube(30)
	a := anime.New(anime.WithFPS(fps), anime.WithBound(0, 30, 0, 15))
	a.Push(cube, func() bool {
		cube.Rotate(1, 2, 3)
		return false
	}, 30, 30)
	return a.Run()
}

func runLife(path string, fps int) error {
	if path == "" {
		return errors.New("life demo needs -path to an RLE pattern file")
	}
	g, err := life.Load(path)
	if err != nil {
		return err
	}
	a := anime.New(anime.WithFPS(fps))
	a.Push(g, g.Step, 0, 40)
	return a.Run()
}

func runImage(path string) error {
	if path == "" {
		return errors.New("image demo needs -path to an image file")
	}
	im, err := img.Open(path)
	if err != nil {
		return err
	}
	c := dotille.New()
	if err := c.Paint(im, 0, 0); err != nil {
		return err
	}
	return c.Print()
}

func runParticles(fps int) error {
	sys := particle.NewSystem().WithForce(particle.NewForce().WithDrag(0.02))
	for range 40 {
		sys.Add(particle.NewParticle().
			WithVel(dotille.V3(rand.Float64()*20-10, rand.Float64()*30+20, 0)).
			WithLife(time.Duration(2+rand.Intn(3)) * time.Second).
			WithTrail(8))
	}

	a := anime.New(anime.WithFPS(fps), anime.WithTitle("fountain"))
	a.Push(sys, sys.Update, 40, 0)
	return a.Run()
}
