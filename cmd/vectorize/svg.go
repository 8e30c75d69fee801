package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/inkplot/vectorize/internal/curve"
)

// writeCurveSVG renders curve segments as SVG path data: cubic Beziers
// become "C" commands, arcs become "A" commands (both radii from Radius,
// the sweep flag from Clockwise; the large-arc flag is always written as 0).
func writeCurveSVG(path string, width, height int, segments []curve.Segment) error {
	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n", width, height, width, height)

	for _, s := range segments {
		b.WriteString(`<path fill="none" stroke="black" stroke-width="0.5" d="`)
		fmt.Fprintf(&b, "M %g,%g ", s.Start.X, s.Start.Y)
		switch s.Kind {
		case curve.KindArc:
			sweep := 1
			if s.Clockwise {
				sweep = 0
			}
			fmt.Fprintf(&b, "A %g,%g 0 0,%d %g,%g", s.Radius, s.Radius, sweep, s.End.X, s.End.Y)
		default:
			fmt.Fprintf(&b, "C %g,%g %g,%g %g,%g", s.Control1.X, s.Control1.Y, s.Control2.X, s.Control2.Y, s.End.X, s.End.Y)
		}
		b.WriteString(`"/>` + "\n")
	}
	b.WriteString("</svg>\n")
	return os.WriteFile(path, []byte(b.String()), 0o644)
}
