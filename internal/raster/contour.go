package raster

import "github.com/inkplot/vectorize/internal/geometry"

// Components returns the 4-connected connected components of a mask's
// "inside" pixels, each as the set of pixel coordinates it covers.
//
// It uses a stack-based iterative flood fill to avoid recursion-depth
// issues on large regions, walking the mask's boolean grid with
// 4-connectivity rather than 8, matching the color-region extractor's
// external-contour requirements.
func Components(m *Mask) [][]geometry.Point {
	visited := make([]bool, m.Width*m.Height)
	var components [][]geometry.Point

	for sy := 0; sy < m.Height; sy++ {
		for sx := 0; sx < m.Width; sx++ {
			idx := sy*m.Width + sx
			if !m.bits[idx] || visited[idx] {
				continue
			}
			components = append(components, floodCollect(m, visited, sx, sy))
		}
	}
	return components
}

func floodCollect(m *Mask, visited []bool, sx, sy int) []geometry.Point {
	var comp []geometry.Point
	stack := []geometry.Point{{X: float64(sx), Y: float64(sy)}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		x, y := int(p.X), int(p.Y)
		if x < 0 || x >= m.Width || y < 0 || y >= m.Height {
			continue
		}
		i := y*m.Width + x
		if visited[i] || !m.bits[i] {
			continue
		}
		visited[i] = true
		comp = append(comp, p)

		stack = append(stack,
			geometry.Point{X: float64(x + 1), Y: float64(y)},
			geometry.Point{X: float64(x - 1), Y: float64(y)},
			geometry.Point{X: float64(x), Y: float64(y + 1)},
			geometry.Point{X: float64(x), Y: float64(y - 1)},
		)
	}
	return comp
}

// corner is a lattice point at a pixel boundary intersection: (X, Y) in
// pixel-corner coordinates, where pixel (px, py) occupies the unit square
// from (px, py) to (px+1, py+1).
type corner struct{ x, y int }

// boundaryEdges emits one directed unit edge per exposed side of every
// inside pixel in the mask, oriented so the inside pixel is always on the
// right-hand side of the direction of travel (top edges run rightward,
// right edges run downward, bottom edges run leftward, left edges run
// upward). Chaining these edges head-to-tail walks each connected region's
// boundary clockwise in screen space (Y down).
func boundaryEdges(m *Mask) map[corner]corner {
	edges := make(map[corner]corner)
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if !m.At(x, y) {
				continue
			}
			if !m.At(x, y-1) { // top exposed
				edges[corner{x, y}] = corner{x + 1, y}
			}
			if !m.At(x+1, y) { // right exposed
				edges[corner{x + 1, y}] = corner{x + 1, y + 1}
			}
			if !m.At(x, y+1) { // bottom exposed
				edges[corner{x + 1, y + 1}] = corner{x, y + 1}
			}
			if !m.At(x-1, y) { // left exposed
				edges[corner{x, y + 1}] = corner{x, y}
			}
		}
	}
	return edges
}

// TraceExternalContour walks the boundary of the mask region containing
// (startX, startY), returning the boundary as a polyline collapsed to its
// direction-change vertices only — the CHAIN_APPROX_SIMPLE-style corner
// emission the color-region extractor and the contour hatcher both
// require.
//
// (startX, startY) must be an "inside" pixel. The walk starts at that
// pixel's own boundary loop (found by scanning its exposed top edge first,
// falling back to whichever side is exposed) and proceeds clockwise until
// it returns to the starting corner.
func TraceExternalContour(m *Mask, startX, startY int) geometry.Polyline {
	if !m.At(startX, startY) {
		return nil
	}
	edges := boundaryEdges(m)
	return traceFromPixel(edges, startX, startY)
}

func traceFromPixel(edges map[corner]corner, startX, startY int) geometry.Polyline {
	var start corner
	found := false
	for _, c := range []corner{
		{startX, startY}, {startX + 1, startY}, {startX + 1, startY + 1}, {startX, startY + 1},
	} {
		if _, ok := edges[c]; ok {
			start = c
			found = true
			break
		}
	}
	if !found {
		return nil
	}

	raw := []corner{start}
	cur := start
	maxSteps := (len(edges) + 1) * 2
	for i := 0; i < maxSteps; i++ {
		next, ok := edges[cur]
		if !ok {
			break
		}
		cur = next
		if cur == start {
			break
		}
		raw = append(raw, cur)
	}

	if len(raw) < 2 {
		return geometry.Polyline{{X: float64(start.x), Y: float64(start.y)}}
	}

	// Collapse straight runs: keep a vertex only where the incoming edge
	// direction differs from the outgoing edge direction.
	n := len(raw)
	var out geometry.Polyline
	for i := 0; i < n; i++ {
		prev := raw[(i-1+n)%n]
		cur := raw[i]
		next := raw[(i+1)%n]
		inDir := corner{cur.x - prev.x, cur.y - prev.y}
		outDir := corner{next.x - cur.x, next.y - cur.y}
		if inDir != outDir {
			out = append(out, geometry.Point{X: float64(cur.x), Y: float64(cur.y)})
		}
	}
	if len(out) < 2 {
		return geometry.Polyline{{X: float64(raw[0].x), Y: float64(raw[0].y)}, {X: float64(raw[n/2].x), Y: float64(raw[n/2].y)}}
	}
	return out
}

// ExternalContours finds the external contour of every 4-connected
// component in the mask, in the mask's row-major discovery order.
func ExternalContours(m *Mask) []geometry.Polyline {
	edges := boundaryEdges(m)
	visited := make([]bool, m.Width*m.Height)
	var contours []geometry.Polyline

	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			i := y*m.Width + x
			if !m.bits[i] || visited[i] {
				continue
			}
			contours = append(contours, traceFromPixel(edges, x, y))
			floodCollect(m, visited, x, y)
		}
	}
	return contours
}
