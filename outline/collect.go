package outline

import (
	"github.com/gogpu/iconmotion/fonts"
	"github.com/gogpu/iconmotion/geom"
)

// Collector accumulates drawing commands into subpaths. Incoming points
// are mapped through a coordinate transform, quadratic curves are
// elevated to cubics, and straight lines become cubics with zero
// control offsets.
type Collector struct {
	transform geom.Matrix
	subpaths  []*Subpath
	current   *Subpath
}

// NewCollector returns a Collector that maps every incoming point
// through m.
func NewCollector(m geom.Matrix) *Collector {
	return &Collector{transform: m}
}

// MoveTo finalizes the active subpath and starts a new one at p.
func (c *Collector) MoveTo(p geom.Point) {
	c.flush()
	c.start(c.transform.TransformPoint(p))
}

// LineTo appends a straight segment to p.
func (c *Collector) LineTo(p geom.Point) {
	p = c.transform.TransformPoint(p)
	if s := c.ensure(p); s != nil {
		s.appendCubic(s.last(), p, p)
	}
}

// QuadTo appends a quadratic segment with control ctrl, elevated to an
// exact cubic.
func (c *Collector) QuadTo(ctrl, p geom.Point) {
	ctrl = c.transform.TransformPoint(ctrl)
	p = c.transform.TransformPoint(p)
	if s := c.ensure(p); s != nil {
		cubic := geom.QuadBez{P0: s.last(), P1: ctrl, P2: p}.Raise()
		s.appendCubic(cubic.P1, cubic.P2, p)
	}
}

// CubeTo appends a cubic segment with controls c0 and c1.
func (c *Collector) CubeTo(c0, c1, p geom.Point) {
	c0 = c.transform.TransformPoint(c0)
	c1 = c.transform.TransformPoint(c1)
	p = c.transform.TransformPoint(p)
	if s := c.ensure(p); s != nil {
		s.appendCubic(c0, c1, p)
	}
}

// Close marks the active subpath closed.
func (c *Collector) Close() {
	if c.current != nil {
		c.current.Closed = true
	}
}

// Subpaths finalizes collection and returns the subpaths in draw order.
func (c *Collector) Subpaths() []*Subpath {
	c.flush()
	return c.subpaths
}

func (c *Collector) start(p geom.Point) {
	c.current = &Subpath{
		Vertices: []geom.Point{p},
		In:       []geom.Point{{}},
		Out:      []geom.Point{{}},
	}
}

// ensure returns the active subpath. A draw command arriving before any
// move starts a subpath at the command's target and reports nil so the
// caller skips the degenerate segment.
func (c *Collector) ensure(p geom.Point) *Subpath {
	if c.current == nil {
		c.start(p)
		return nil
	}
	return c.current
}

// flush finalizes the active subpath. A subpath without an explicit
// close is implicitly closed when its first and last vertex coincide
// exactly.
func (c *Collector) flush() {
	s := c.current
	if s == nil {
		return
	}
	if !s.Closed {
		s.Closed = s.Vertices[0] == s.last()
	}
	c.subpaths = append(c.subpaths, s)
	c.current = nil
}

// Collect runs a glyph segment stream through a Collector and returns
// the resulting subpaths.
func Collect(segments []fonts.Segment, m geom.Matrix) []*Subpath {
	c := NewCollector(m)
	for _, seg := range segments {
		switch seg.Op {
		case fonts.SegmentOpMoveTo:
			c.MoveTo(seg.Args[0])
		case fonts.SegmentOpLineTo:
			c.LineTo(seg.Args[0])
		case fonts.SegmentOpQuadTo:
			c.QuadTo(seg.Args[0], seg.Args[1])
		case fonts.SegmentOpCubeTo:
			c.CubeTo(seg.Args[0], seg.Args[1], seg.Args[2])
		case fonts.SegmentOpClose:
			c.Close()
		}
	}
	return c.Subpaths()
}
