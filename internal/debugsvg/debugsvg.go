// Package debugsvg renders a glyph outline as an annotated SVG for
// inspecting fill classification and hole grouping.
//
// The output is a vertical strip of rows sharing the glyph's design
// box: the first row overlays every subpath of the glyph, then each
// grouped part gets a row of its own. Unfilled subpaths draw dashed
// red, every subpath carries its tight bounding box, a caption with its
// first vertex and signed area, and circle markers on end points,
// control points and the interior probe point.
package debugsvg

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/gogpu/iconmotion/fonts"
	"github.com/gogpu/iconmotion/geom"
	"github.com/gogpu/iconmotion/outline"
)

// Render returns an annotated SVG document for one glyph. drawbox is
// the box the glyph was designed in, usually (0,0) to (upem,upem); it
// sizes each row of the strip.
func Render(drawbox geom.Rect, segments []fonts.Segment) string {
	// Fonts put Y up. Flip around the drawbox center so the glyph
	// renders upright; everything downstream sees flipped points.
	cy := drawbox.Center().Y
	flip := geom.Translate(0, -cy)
	flip = geom.Scale(1, -1).Multiply(flip)
	flip = geom.Translate(0, cy).Multiply(flip)

	subpaths := outline.Collect(segments, flip)
	parts, _ := outline.GroupParts(subpaths, outline.Classify(subpaths))

	var b strings.Builder
	fmt.Fprintf(&b, "<svg viewBox=\"%g %g %g %g\" xmlns=\"http://www.w3.org/2000/svg\">\n",
		drawbox.Min.X, drawbox.Min.Y,
		drawbox.Width(), drawbox.Height()*float64(1+len(parts)))

	drawRow(&b, 0, subpaths)
	for i, part := range parts {
		drawRow(&b, drawbox.Min.Y+float64(i+1)*drawbox.Height(), part.Subpaths())
	}

	b.WriteString("</svg>\n")
	return b.String()
}

// drawRow emits one <g> of annotated subpaths shifted down by yOffset.
// Fill is decided against the row alone, so a hole draws dashed both in
// the whole-glyph row and inside its own part.
func drawRow(b *strings.Builder, yOffset float64, subpaths []*outline.Subpath) {
	row := make([]*outline.Subpath, len(subpaths))
	copy(row, subpaths)
	sort.SliceStable(row, func(i, j int) bool {
		return math.Abs(row[i].Area()) < math.Abs(row[j].Area())
	})

	fmt.Fprintf(b, "<g transform=\"translate(0, %g)\">\n", yOffset)
	for _, sp := range row {
		interior, ok := sp.InteriorPoint()
		winding := 0
		if ok {
			for _, other := range row {
				winding += other.WindingAt(interior)
			}
		}

		fmt.Fprintf(b, "  <path opacity=\"33%%\" d=\"%s\"", pathData(sp))
		if winding == 0 {
			b.WriteString(" fill=\"none\" stroke=\"red\" stroke-dasharray=\"4\"")
		}
		b.WriteString(" />\n")

		box := sp.BoundingBox()
		fmt.Fprintf(b, "  <rect x=\"%g\" y=\"%g\" width=\"%g\" height=\"%g\" fill=\"none\" stroke=\"black\" stroke-dasharray=\"16\" />\n",
			box.Min.X, box.Min.Y, box.Width(), box.Height())
		first := sp.Vertices[0]
		fmt.Fprintf(b, "  <text x=\"%g\" y=\"%g\">first (%g, %g) area %.2f</text>\n",
			box.Min.X, box.Min.Y-2, first.X, first.Y, sp.Area())

		markPoints(b, sp)
		if ok {
			mark(b, interior, 100, " fill=\"red\"")
		}
	}
	b.WriteString("</g>\n")
}

// markPoints drops a circle on every on-curve point and on the control
// points of segments that actually bend.
func markPoints(b *strings.Builder, sp *outline.Subpath) {
	mark(b, sp.Vertices[0], 75, "")
	for k := 0; k+1 < len(sp.Vertices); k++ {
		next := sp.Vertices[k+1]
		if curved(sp, k) {
			mark(b, sp.Vertices[k].Add(sp.Out[k]), 50, " fill=\"blue\"")
			mark(b, next.Add(sp.In[k+1]), 50, " fill=\"blue\"")
		}
		mark(b, next, 75, "")
	}
	if sp.Closed {
		mark(b, sp.Vertices[0], 75, "")
	}
}

func mark(b *strings.Builder, p geom.Point, opacity int, attr string) {
	fmt.Fprintf(b, "  <circle opacity=\"%d%%\" r=\"3\" cx=\"%g\" cy=\"%g\"%s/>\n",
		opacity, p.X, p.Y, attr)
}

// curved reports whether segment k carries nonzero control offsets.
func curved(sp *outline.Subpath, k int) bool {
	return sp.Out[k] != (geom.Point{}) || sp.In[k+1] != (geom.Point{})
}

// pathData renders the subpath as an SVG path string. Segments with
// zero control offsets come out as line commands.
func pathData(sp *outline.Subpath) string {
	var d strings.Builder
	first := sp.Vertices[0]
	fmt.Fprintf(&d, "M%g %g", first.X, first.Y)
	for k := 0; k+1 < len(sp.Vertices); k++ {
		next := sp.Vertices[k+1]
		if curved(sp, k) {
			c0 := sp.Vertices[k].Add(sp.Out[k])
			c1 := next.Add(sp.In[k+1])
			fmt.Fprintf(&d, " C%g %g %g %g %g %g", c0.X, c0.Y, c1.X, c1.Y, next.X, next.Y)
		} else {
			fmt.Fprintf(&d, " L%g %g", next.X, next.Y)
		}
	}
	if sp.Closed {
		d.WriteString(" Z")
	}
	return d.String()
}
