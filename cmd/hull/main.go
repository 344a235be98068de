package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/convexhull"
	"github.com/osuushi/convexhull/advanced"
	"github.com/pkg/errors"
	"github.com/pkg/profile"
	gmath "github.com/quasilyte/gmath"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Demo of the hull algorithms. Points are read from a file (or stdin) as
// "x y [z]" lines or as an SVG drawing, or generated at random. The hull is
// written as text, OBJ (3D only) or a PNG.
var (
	algorithm = kingpin.Flag("algorithm", "2D hull algorithm.").Short('a').Default("graham").Enum(convexhull.Algorithms()...)
	in3D      = kingpin.Flag("3d", "Compute a 3D hull by gift wrapping.").Bool()
	format    = kingpin.Flag("format", "Input format.").Default("text").Enum("text", "svg", "obj")
	random    = kingpin.Flag("random", "Generate this many random points instead of reading input.").Int()
	seed      = kingpin.Flag("seed", "Seed for --random.").Default("1").Uint64()
	shape     = kingpin.Flag("shape", "Where random points fall: a box or a ball.").Default("box").Enum("box", "ball")
	size      = kingpin.Flag("size", "Side or diameter of the random point region.").Default("200").Float64()
	output    = kingpin.Flag("output", "Output format.").Short('o').Default("text").Enum("text", "obj", "png")
	outPath   = kingpin.Flag("out", "Output file. Defaults to stdout, except for PNG.").String()
	scale     = kingpin.Flag("scale", "Pixels per unit for PNG output.").Default("2").Float64()
	cat       = kingpin.Flag("imgcat", "Show the PNG in the terminal (iTerm).").Bool()
	trace     = kingpin.Flag("trace", "Print every step of the incremental algorithm.").Bool()
	debug     = kingpin.Flag("debug", "Dump the 3D mesh structure to stderr.").Bool()
	cpuDir    = kingpin.Flag("cpuprofile", "Write a CPU profile to this directory.").String()
	inPath    = kingpin.Arg("file", "Input file. Defaults to stdin.").String()
)

const defaultPNGPath = "/tmp/hull.png"

func main() {
	kingpin.Parse()
	log.SetFlags(0)
	log.SetPrefix("hull: ")

	// log.Fatalf skips deferred calls, so the profile is stopped before it.
	stopProfile := func() {}
	if *cpuDir != "" {
		stopProfile = profile.Start(profile.CPUProfile, profile.ProfilePath(*cpuDir)).Stop
	}
	err := run()
	stopProfile()
	if err != nil {
		log.Fatalf("%v", err)
	}
}

func run() error {
	points, err := loadPoints()
	if err != nil {
		return errors.Wrap(err, "could not load points")
	}
	fmt.Fprintf(os.Stderr, "Read %d points\n", len(points))

	if *in3D {
		return run3D(points)
	}
	return run2D(points)
}

func loadPoints() ([]*convexhull.Vector, error) {
	if *random > 0 {
		return randomPoints()
	}

	in := os.Stdin
	if *inPath != "" {
		file, err := os.Open(*inPath)
		if err != nil {
			return nil, err
		}
		defer file.Close()
		in = file
	}

	switch *format {
	case "svg":
		return advanced.ReadSVGPoints(in)
	case "obj":
		points, _, err := advanced.ReadOBJ(in)
		return points, err
	default:
		return advanced.ReadTextPoints(in)
	}
}

func randomPoints() ([]*convexhull.Vector, error) {
	rng := advanced.RandWithSeed(*seed)
	half := *size / 2
	switch {
	case *in3D && *shape == "ball":
		return advanced.RandomPointsInSphere(rng, convexhull.Vector{}, half, *random, true)
	case *in3D:
		corner := convexhull.Vector{X: half, Y: half, Z: half}
		return advanced.RandomPointsInBox(rng, corner.Scale(-1), corner, *random, true)
	case *shape == "ball":
		return advanced.RandomPointsInCircle(rng, gmath.Vec{}, half, *random, true)
	default:
		clip := gmath.Rect{Min: gmath.Vec{X: -half, Y: -half}, Max: gmath.Vec{X: half, Y: half}}
		return advanced.RandomPointsInRect(rng, clip, *random, true)
	}
}

func run2D(points []*convexhull.Vector) error {
	var hull *convexhull.Polygon
	var err error
	if *trace {
		hull, err = advanced.TraceIncremental(points, printStep)
	} else {
		hull, err = convexhull.ConvexHull2D(*algorithm, points)
	}
	if err != nil {
		return errors.Wrap(err, "hull failed")
	}
	fmt.Fprintf(os.Stderr, "Hull has %d vertices\n", hull.Len())

	switch *output {
	case "png":
		return writePNG(func(w io.Writer) error {
			return advanced.WritePNG(advanced.DrawHull(points, hull, *scale), w)
		})
	case "obj":
		return errors.New("OBJ output needs --3d")
	}
	return writeTo(func(w io.Writer) error {
		return advanced.WriteTextPoints(w, hull.Vertices, false)
	})
}

func printStep(state advanced.IncrementalState, step advanced.IncrementalStep) {
	if step.Inside {
		fmt.Fprintf(os.Stderr, "%3d %v %s\n", step.Index, step.Point, aurora.Yellow("inside"))
		return
	}
	fmt.Fprintf(os.Stderr, "%3d %v %s left %d right %d -> %d vertices\n",
		step.Index, step.Point, aurora.Green("added"), step.Left, step.Right, state.Hull.Len())
}

func run3D(points []*convexhull.Vector) error {
	mesh, err := convexhull.GiftWrapping3D(points)
	if err != nil {
		return errors.Wrap(err, "hull failed")
	}
	fmt.Fprintf(os.Stderr, "Hull has %d vertices and %d faces\n", len(mesh.Vertices), len(mesh.Faces))
	if *debug {
		fmt.Fprintln(os.Stderr, mesh)
	}

	switch *output {
	case "png":
		return writePNG(func(w io.Writer) error {
			return advanced.WritePNG(advanced.DrawMesh(mesh, *scale), w)
		})
	case "obj":
		return writeTo(func(w io.Writer) error {
			return advanced.WriteOBJ(w, mesh)
		})
	}
	vertices := make([]*convexhull.Vector, len(mesh.Vertices))
	for i := range mesh.Vertices {
		vertices[i] = &mesh.Vertices[i].Point
	}
	return writeTo(func(w io.Writer) error {
		return advanced.WriteTextPoints(w, vertices, true)
	})
}

func writeTo(write func(io.Writer) error) error {
	if *outPath == "" {
		return errors.Wrap(write(os.Stdout), "could not write output")
	}

	file, err := os.Create(*outPath)
	if err != nil {
		return errors.Wrapf(err, "could not create %s", *outPath)
	}
	if err := write(file); err != nil {
		file.Close()
		return errors.Wrapf(err, "could not write %s", *outPath)
	}
	return errors.Wrapf(file.Close(), "could not write %s", *outPath)
}

// PNGs never go to stdout, since the terminal can't show them without imgcat.
func writePNG(write func(io.Writer) error) error {
	if *outPath == "" {
		*outPath = defaultPNGPath
	}
	if err := writeTo(write); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Wrote %s\n", *outPath)
	if *cat {
		advanced.CatPNG(*outPath, os.Stdout)
	}
	return nil
}
