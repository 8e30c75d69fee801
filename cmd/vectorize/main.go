// Command vectorize is a demo entry point exercising the core
// vectorization pipeline end to end: it loads a raster image from disk,
// runs it through pipeline.Process, and writes the resulting paths out as
// a plain SVG preview. It is a thin consumer of the pipeline, not a
// G-code emitter or a GUI.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/inkplot/vectorize/internal/geometry"
	"github.com/inkplot/vectorize/internal/raster"
	"github.com/inkplot/vectorize/pipeline"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("vectorize %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		}
	}

	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	var (
		mode         = flag.String("mode", "color-regions", "extraction mode: color-regions, centerline, hatching")
		output       = flag.String("out", "out.svg", "output SVG path")
		numColors    = flag.Int("colors", 8, "number of color/tone levels, 2-32")
		threshold    = flag.Int("threshold", 128, "centerline dark threshold, 0-255")
		proximity    = flag.Float64("proximity", 4, "centerline row-stitch proximity, 0-50")
		hatchSpacing = flag.Float64("hatch-spacing", 4, "hatch line spacing, 1-20")
		hatchAngle   = flag.Float64("hatch-angle", 45, "hatch line angle in degrees, 0-180")
		optimize     = flag.Bool("optimize", true, "enable pen-travel path optimization")
		curves       = flag.Bool("curves", false, "fit cubic Bezier curves instead of emitting raw polylines")
	)
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "usage: vectorize [flags] <image-path>")
		flag.PrintDefaults()
		os.Exit(2)
	}
	path := flag.Arg(0)

	cache := raster.NewCache()
	r, err := cache.Load(path)
	if err != nil {
		log.Fatalf("failed to load %q: %v", path, err)
	}

	m, err := parseMode(*mode)
	if err != nil {
		log.Fatalf("%v", err)
	}

	opts := pipeline.Options{
		NumColors:    *numColors,
		Threshold:    *threshold,
		Proximity:    *proximity,
		HatchSpacing: *hatchSpacing,
		HatchAngle:   *hatchAngle,
	}
	adv := pipeline.DefaultAdvancedOptions()
	adv.EnablePathOptimization = *optimize
	adv.EnableCurveFitting = *curves

	if *curves {
		segments, err := pipeline.ProcessWithCurves(r, m, opts, adv)
		if err != nil {
			log.Fatalf("processing failed: %v", err)
		}
		if err := writeCurveSVG(*output, r.Width, r.Height, segments); err != nil {
			log.Fatalf("writing %q: %v", *output, err)
		}
		fmt.Printf("wrote %d curve segments to %s\n", len(segments), *output)
		return
	}

	paths, err := pipeline.Process(r, m, opts, adv)
	if err != nil {
		log.Fatalf("processing failed: %v", err)
	}
	if err := writePolylineSVG(*output, r.Width, r.Height, paths); err != nil {
		log.Fatalf("writing %q: %v", *output, err)
	}
	fmt.Printf("wrote %d paths to %s\n", len(paths), *output)
}

func parseMode(s string) (pipeline.Mode, error) {
	switch s {
	case "color-regions":
		return pipeline.ColorRegions, nil
	case "centerline":
		return pipeline.Centerline, nil
	case "hatching":
		return pipeline.Hatching, nil
	default:
		return 0, fmt.Errorf("unknown mode %q (want color-regions, centerline, or hatching)", s)
	}
}

func writePolylineSVG(path string, width, height int, paths []geometry.Polyline) error {
	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n", width, height, width, height)
	for _, p := range paths {
		if len(p) < 2 {
			continue
		}
		b.WriteString(`<polyline fill="none" stroke="black" stroke-width="0.5" points="`)
		for i, pt := range p {
			if i > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%g,%g", pt.X, pt.Y)
		}
		b.WriteString(`"/>` + "\n")
	}
	b.WriteString("</svg>\n")
	return os.WriteFile(path, []byte(b.String()), 0o644)
}
