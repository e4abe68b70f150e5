package outline

import "github.com/gogpu/iconmotion/geom"

// containEps is the perturbation applied to a subpath's first vertex
// when searching for a strictly interior point.
const containEps = 0.001

// containOffsets are the candidate perturbations, the unperturbed point
// first.
var containOffsets = [9]geom.Point{
	{X: 0, Y: 0},
	{X: containEps, Y: 0},
	{X: -containEps, Y: 0},
	{X: 0, Y: containEps},
	{X: 0, Y: -containEps},
	{X: containEps, Y: containEps},
	{X: containEps, Y: -containEps},
	{X: -containEps, Y: containEps},
	{X: -containEps, Y: -containEps},
}

// InteriorPoint finds a point inside the subpath by perturbing its
// first vertex along the candidate offsets. Reports false if no
// candidate lands inside.
func (s *Subpath) InteriorPoint() (geom.Point, bool) {
	if len(s.Vertices) == 0 {
		return geom.Point{}, false
	}
	first := s.Vertices[0]
	for _, off := range containOffsets {
		if pt := first.Add(off); s.Contains(pt) {
			return pt, true
		}
	}
	return geom.Point{}, false
}

// Classify reports, for each subpath, whether it is filled under the
// nonzero winding rule. The winding number is summed over the whole
// outline at a point interior to the subpath, so holes come out
// unfilled even though they are closed contours. A subpath with no
// findable interior point is reported unfilled.
func Classify(subpaths []*Subpath) []bool {
	filled := make([]bool, len(subpaths))
	for i, s := range subpaths {
		pt, ok := s.InteriorPoint()
		if !ok {
			continue
		}
		winding := 0
		for _, other := range subpaths {
			winding += other.WindingAt(pt)
		}
		filled[i] = winding != 0
	}
	return filled
}
