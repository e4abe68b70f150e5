package iconmotion

import (
	"fmt"
	"sort"

	"github.com/gogpu/iconmotion/fonts"
	"github.com/gogpu/iconmotion/geom"
	"github.com/gogpu/iconmotion/lottie"
	"github.com/gogpu/iconmotion/motion"
	"github.com/gogpu/iconmotion/outline"
)

// ReplaceGlyph splices glyph content into every placeholder of doc. drawbox
// is the region of font design space to map, typically (0,0)-(upem,upem).
//
// Placeholders are groups named "placeholder", found at any depth of any
// shape layer. Within such a group, each rectangle item (fixed position and
// size read as opposite corners) and each path item (its control box) marks
// a destination region; the item is replaced in place by the glyph shapes
// scaled to that region and animated per kind, while the rest of the group,
// conventionally its fill and transform, stays. A document yielding no
// replacements at all returns ErrNoPlaceholder unmodified.
//
// Orphan holes are dropped with a warning; Options.StrictOrphans via
// Generate escalates them instead.
func ReplaceGlyph(doc *lottie.Bodymovin, drawbox geom.Rect, glyph *fonts.Glyph, kind motion.Kind) error {
	return replaceGlyph(doc, drawbox, glyph, kind, false)
}

func replaceGlyph(doc *lottie.Bodymovin, drawbox geom.Rect, glyph *fonts.Glyph, kind motion.Kind, strict bool) error {
	s := &splicer{drawbox: drawbox, glyph: glyph, kind: kind, strict: strict}

	replaced := 0
	for _, layer := range doc.Layers {
		if layer.Type != lottie.LayerShape {
			continue
		}
		n, err := s.spliceList(layer.Shapes, layer.InPoint, layer.OutPoint)
		if err != nil {
			return err
		}
		replaced += n
	}
	if replaced == 0 {
		return ErrNoPlaceholder
	}
	Logger().Debug("replaced placeholder content", "items", replaced, "animation", s.kind.String())
	return nil
}

// splicer carries one glyph through every placeholder of a document.
type splicer struct {
	drawbox geom.Rect
	glyph   *fonts.Glyph
	kind    motion.Kind
	strict  bool
}

// spliceList processes placeholder groups in items, descending into other
// groups. start and end are the enclosing layer's frame window.
func (s *splicer) spliceList(items lottie.ShapeList, start, end float64) (int, error) {
	replaced := 0
	for _, item := range items {
		g, ok := item.(*lottie.Group)
		if !ok {
			continue
		}
		var (
			n   int
			err error
		)
		if g.Name == lottie.PlaceholderName {
			n, err = s.splicePlaceholder(g, start, end)
		} else {
			n, err = s.spliceList(g.Items, start, end)
		}
		if err != nil {
			return replaced, err
		}
		replaced += n
	}
	return replaced, nil
}

// splicePlaceholder replaces every region-marking item of a placeholder
// group with generated shapes.
func (s *splicer) splicePlaceholder(g *lottie.Group, start, end float64) (int, error) {
	type target struct {
		index int
		dst   geom.Rect
	}
	var targets []target
	for i, item := range g.Items {
		dst, ok, err := itemBox(item)
		if err != nil {
			return 0, err
		}
		if !ok {
			continue
		}
		targets = append(targets, target{index: i, dst: dst})
	}

	// Replacing one item with many shifts the indices past it, so work
	// backwards to keep the recorded ones valid.
	for k := len(targets) - 1; k >= 0; k-- {
		shapes, err := s.shapes(targets[k].dst, start, end)
		if err != nil {
			return 0, err
		}
		i := targets[k].index
		rest := g.Items[i+1:]
		g.Items = append(g.Items[:i:i], append(shapes, rest...)...)
	}
	return len(targets), nil
}

// itemBox derives the destination region a placeholder item marks: a
// rectangle's fixed position and size values read as opposite corners (the
// template contract, which makes a full-canvas rect at position (0,0) with
// size (w,h) cover the canvas), or a path's control box. Fills, transforms
// and other items mark nothing.
func itemBox(item lottie.AnyShape) (geom.Rect, bool, error) {
	switch v := item.(type) {
	case *lottie.Rect:
		pos, err := fixedPair(v.Position, "rect position")
		if err != nil {
			return geom.Rect{}, false, err
		}
		size, err := fixedPair(v.Size, "rect size")
		if err != nil {
			return geom.Rect{}, false, err
		}
		return geom.NewRect(geom.Pt(pos[0], pos[1]), geom.Pt(size[0], size[1])), true, nil
	case *lottie.Path:
		sv := v.Shape.Value
		if sv == nil {
			return geom.Rect{}, false, fmt.Errorf("iconmotion: placeholder path must hold a fixed shape value")
		}
		box, ok := controlBox(sv)
		return box, ok, nil
	default:
		return geom.Rect{}, false, nil
	}
}

// fixedPair reads a non-animated two component property value.
func fixedPair(p *lottie.Property, what string) ([2]float64, error) {
	if p == nil || p.Animated() || len(p.Value) != 2 {
		return [2]float64{}, fmt.Errorf("iconmotion: placeholder %s must be a fixed pair", what)
	}
	return [2]float64{p.Value[0], p.Value[1]}, nil
}

// controlBox bounds a shape value's vertices together with its absolute
// control points (vertex plus relative offset). Reports false for a value
// with no usable vertices.
func controlBox(sv *lottie.ShapeValue) (geom.Rect, bool) {
	var box geom.Rect
	ok := false
	add := func(x, y float64) {
		r := geom.NewRect(geom.Pt(x, y), geom.Pt(x, y))
		if !ok {
			box, ok = r, true
			return
		}
		box = box.Union(r)
	}
	for i, v := range sv.Vertices {
		if len(v) < 2 {
			continue
		}
		add(v[0], v[1])
		if i < len(sv.Out) && len(sv.Out[i]) >= 2 {
			add(v[0]+sv.Out[i][0], v[1]+sv.Out[i][1])
		}
		if i < len(sv.In) && len(sv.In[i]) >= 2 {
			add(v[0]+sv.In[i][0], v[1]+sv.In[i][1])
		}
	}
	return box, ok
}

// shapes runs the glyph pipeline for one destination region: map, collect,
// order, classify, group, animate.
func (s *splicer) shapes(dst geom.Rect, start, end float64) ([]lottie.AnyShape, error) {
	m, err := MapBox(s.drawbox, dst)
	if err != nil {
		return nil, err
	}
	subpaths := outline.Collect(s.glyph.Segments, m)

	// Deterministic document order: top to bottom, then left to right, on
	// the quantized control box.
	sort.SliceStable(subpaths, func(i, j int) bool {
		bi, bj := subpaths[i].ControlBox(), subpaths[j].ControlBox()
		yi, yj := int64(bi.Min.Y*1000), int64(bj.Min.Y*1000)
		if yi != yj {
			return yi < yj
		}
		return int64(bi.Min.X*1000) < int64(bj.Min.X*1000)
	})

	parts, err := s.iconParts(subpaths)
	if err != nil {
		return nil, err
	}
	Logger().Debug("animating glyph shapes",
		"glyph", s.glyph.ID, "subpaths", len(subpaths), "parts", len(parts))
	return s.kind.Animate(start, end, parts)
}

// iconParts assembles the animation units. Static output keeps every
// subpath in document order; fill classification and hole grouping only
// matter when parts move independently.
func (s *splicer) iconParts(subpaths []*outline.Subpath) ([]motion.Part, error) {
	if s.kind == motion.None {
		parts := make([]motion.Part, len(subpaths))
		for i, sp := range subpaths {
			parts[i] = motion.Part{
				Shapes: []*lottie.Path{subpathShape(sp)},
				Bounds: sp.BoundingBox(),
			}
		}
		return parts, nil
	}

	filled := outline.Classify(subpaths)
	grouped, orphans := outline.GroupParts(subpaths, filled)
	if len(orphans) > 0 {
		if s.strict {
			return nil, &OrphanError{Orphans: len(orphans)}
		}
		Logger().Warn("dropping holes without a containing filled subpath",
			"glyph", s.glyph.ID, "count", len(orphans))
	}

	parts := make([]motion.Part, len(grouped))
	for i, part := range grouped {
		mp := motion.Part{Bounds: part.Bounds()}
		for _, sp := range part.Subpaths() {
			mp.Shapes = append(mp.Shapes, subpathShape(sp))
		}
		parts[i] = mp
	}
	return parts, nil
}

// subpathShape converts a collected subpath to a path shape. Both sides
// store absolute vertices with vertex-aligned relative control offsets, so
// the geometry copies over directly.
func subpathShape(sp *outline.Subpath) *lottie.Path {
	n := len(sp.Vertices)
	sv := &lottie.ShapeValue{
		Vertices: make([][]float64, n),
		In:       make([][]float64, n),
		Out:      make([][]float64, n),
		Closed:   sp.Closed,
	}
	for i := 0; i < n; i++ {
		sv.Vertices[i] = []float64{sp.Vertices[i].X, sp.Vertices[i].Y}
		sv.In[i] = []float64{sp.In[i].X, sp.In[i].Y}
		sv.Out[i] = []float64{sp.Out[i].X, sp.Out[i].Y}
	}

	dir := lottie.DirClockwise
	if sp.Direction() < 0 {
		dir = lottie.DirCounterClockwise
	}
	return lottie.NewPath(sv, dir)
}
