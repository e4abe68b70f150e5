// Package outline converts glyph drawing commands into closed subpaths
// in cubic bezier form and derives the geometry the animation pipeline
// needs from them: signed area and winding direction, fill
// classification under the nonzero rule, and grouping of filled shapes
// with the holes they contain.
package outline

import (
	"github.com/gogpu/iconmotion/geom"
)

// Subpath is one contour of a glyph outline with every segment in cubic
// form.
//
// Vertices are absolute on-curve points. In and Out hold control point
// offsets relative to the vertex they attach to: segment k runs from
// Vertices[k] with first control Vertices[k]+Out[k] to Vertices[k+1]
// with second control Vertices[k+1]+In[k+1]. The three slices always
// have equal length. A straight segment has zero offsets on both ends.
type Subpath struct {
	Vertices []geom.Point
	In       []geom.Point
	Out      []geom.Point
	Closed   bool
}

// appendCubic adds a segment from the last vertex to end with absolute
// control points c0 and c1.
func (s *Subpath) appendCubic(c0, c1, end geom.Point) {
	i := len(s.Vertices) - 1
	s.Out[i] = c0.Sub(s.Vertices[i])
	s.Vertices = append(s.Vertices, end)
	s.Out = append(s.Out, geom.Point{})
	s.In = append(s.In, c1.Sub(end))
}

// last returns the current end point of the subpath.
func (s *Subpath) last() geom.Point {
	return s.Vertices[len(s.Vertices)-1]
}

// Segments returns the cubic segments of the subpath. The subpath is
// treated as closed: when the last vertex does not coincide with the
// first, a closing line segment is appended.
func (s *Subpath) Segments() []geom.CubicBez {
	n := len(s.Vertices)
	if n < 2 {
		return nil
	}
	segs := make([]geom.CubicBez, 0, n)
	for k := 0; k < n-1; k++ {
		start, end := s.Vertices[k], s.Vertices[k+1]
		segs = append(segs, geom.CubicBez{
			P0: start,
			P1: start.Add(s.Out[k]),
			P2: end.Add(s.In[k+1]),
			P3: end,
		})
	}
	if first, last := s.Vertices[0], s.Vertices[n-1]; first != last {
		segs = append(segs, geom.Line(last, first))
	}
	return segs
}

// Area returns the signed area enclosed by the subpath.
// In Y-down destination coordinates positive area means clockwise.
func (s *Subpath) Area() float64 {
	var area float64
	for _, seg := range s.Segments() {
		area += seg.SignedArea()
	}
	return area
}

// Direction returns +1 when the signed area is positive (clockwise in
// Y-down coordinates) and -1 otherwise.
func (s *Subpath) Direction() int {
	if s.Area() > 0 {
		return 1
	}
	return -1
}

// WindingAt returns the winding number of the subpath around pt.
func (s *Subpath) WindingAt(pt geom.Point) int {
	w := 0
	for _, seg := range s.Segments() {
		w += seg.Winding(pt)
	}
	return w
}

// Contains reports whether pt lies inside the subpath under the nonzero
// winding rule, considering this subpath alone.
func (s *Subpath) Contains(pt geom.Point) bool {
	return s.WindingAt(pt) != 0
}

// BoundingBox returns the tight bounding box of the subpath.
// A single-vertex subpath yields a zero-size box at that vertex.
func (s *Subpath) BoundingBox() geom.Rect {
	segs := s.Segments()
	if len(segs) == 0 {
		if len(s.Vertices) == 0 {
			return geom.Rect{}
		}
		return geom.NewRect(s.Vertices[0], s.Vertices[0])
	}
	box := segs[0].BoundingBox()
	for _, seg := range segs[1:] {
		box = box.Union(seg.BoundingBox())
	}
	return box
}

// ControlBox returns the bounding box of all vertices and absolute
// control points. Cheaper than BoundingBox and always contains it.
func (s *Subpath) ControlBox() geom.Rect {
	if len(s.Vertices) == 0 {
		return geom.Rect{}
	}
	box := geom.NewRect(s.Vertices[0], s.Vertices[0])
	for k, v := range s.Vertices {
		box = box.Union(geom.NewRect(v, v.Add(s.Out[k]))).
			Union(geom.NewRect(v, v.Add(s.In[k])))
	}
	return box
}
