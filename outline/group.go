package outline

import (
	"math"
	"sort"

	"github.com/gogpu/iconmotion/geom"
)

// Part is one perceptual piece of an icon: a filled primary subpath
// plus the holes cut out of it.
type Part struct {
	Primary *Subpath
	Holes   []*Subpath
}

// Subpaths returns the primary followed by the holes.
func (p *Part) Subpaths() []*Subpath {
	out := make([]*Subpath, 0, 1+len(p.Holes))
	out = append(out, p.Primary)
	return append(out, p.Holes...)
}

// Bounds returns the union of the tight bounding boxes of every subpath
// in the part.
func (p *Part) Bounds() geom.Rect {
	box := p.Primary.BoundingBox()
	for _, h := range p.Holes {
		box = box.Union(h.BoundingBox())
	}
	return box
}

// GroupParts pairs every hole with the filled subpath that contains it.
//
// Subpaths are walked filled first, then unfilled, each class by
// decreasing absolute area. A filled subpath opens a new part. An
// unfilled subpath becomes a hole of the smallest already opened part
// whose primary bounding box contains its own. An unfilled subpath
// matching no part is an orphan: returned separately and excluded from
// every part. Parts come back in the order they were opened.
func GroupParts(subpaths []*Subpath, filled []bool) (parts []*Part, orphans []*Subpath) {
	type entry struct {
		sub    *Subpath
		filled bool
		area   float64
	}
	entries := make([]entry, len(subpaths))
	for i, s := range subpaths {
		entries[i] = entry{sub: s, filled: filled[i], area: math.Abs(s.Area())}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].filled != entries[j].filled {
			return entries[i].filled
		}
		return entries[i].area > entries[j].area
	})

	var boxes []geom.Rect
	for _, e := range entries {
		if e.filled {
			parts = append(parts, &Part{Primary: e.sub})
			boxes = append(boxes, e.sub.BoundingBox())
			continue
		}
		holeBox := e.sub.BoundingBox()
		attached := false
		// Parts open largest first, so scanning backwards finds the
		// smallest containing primary.
		for i := len(parts) - 1; i >= 0; i-- {
			if boxes[i].ContainsRect(holeBox) {
				parts[i].Holes = append(parts[i].Holes, e.sub)
				attached = true
				break
			}
		}
		if !attached {
			orphans = append(orphans, e.sub)
		}
	}
	return parts, orphans
}

// GroupByDirection partitions subpaths in draw order using winding
// direction alone: a subpath winding opposite to the active part's
// primary joins it as a hole, one winding the same way opens a new
// part.
//
// This assumes holes immediately follow their container, which font
// outlines usually but not always satisfy. GroupParts is the precise
// policy; this is a cheaper fallback for outlines where containment
// testing is unnecessary.
func GroupByDirection(subpaths []*Subpath) []*Part {
	var parts []*Part
	var dir int
	for _, s := range subpaths {
		d := s.Direction()
		if len(parts) == 0 || d == dir {
			parts = append(parts, &Part{Primary: s})
			dir = d
			continue
		}
		last := parts[len(parts)-1]
		last.Holes = append(last.Holes, s)
	}
	return parts
}
