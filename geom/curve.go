package geom

import "sort"

// Bezier curve types for glyph outline geometry.
// Based on kurbo patterns, adapted for Go idioms.

// -------------------------------------------------------------------
// QuadBez - Quadratic Bezier Curve
// -------------------------------------------------------------------

// QuadBez represents a quadratic Bezier curve with control points P0, P1, P2.
// P0 is the start point, P1 the control point, P2 the end point.
// Glyph outlines from TrueType fonts arrive as quadratics; they are elevated
// to cubics with Raise before further processing.
type QuadBez struct {
	P0, P1, P2 Point
}

// Eval evaluates the curve at parameter t (0 to 1).
func (q QuadBez) Eval(t float64) Point {
	mt := 1.0 - t
	return Point{
		X: mt*mt*q.P0.X + 2*mt*t*q.P1.X + t*t*q.P2.X,
		Y: mt*mt*q.P0.Y + 2*mt*t*q.P1.Y + t*t*q.P2.Y,
	}
}

// Raise elevates the quadratic to a cubic Bezier curve.
// Returns an exact cubic representation of this quadratic:
//
//	C0 = P0
//	C1 = P0/3 + 2/3 * P1
//	C2 = 2/3 * P1 + P2/3
//	C3 = P2
func (q QuadBez) Raise() CubicBez {
	return CubicBez{
		P0: q.P0,
		P1: Point{
			X: q.P0.X/3 + (2.0/3.0)*q.P1.X,
			Y: q.P0.Y/3 + (2.0/3.0)*q.P1.Y,
		},
		P2: Point{
			X: (2.0/3.0)*q.P1.X + q.P2.X/3,
			Y: (2.0/3.0)*q.P1.Y + q.P2.Y/3,
		},
		P3: q.P2,
	}
}

// -------------------------------------------------------------------
// CubicBez - Cubic Bezier Curve
// -------------------------------------------------------------------

// CubicBez represents a cubic Bezier curve with control points P0, P1, P2, P3.
// P0 is the start point, P1 and P2 are control points, P3 is the end point.
// A straight line is represented as a cubic with P1 == P0 and P2 == P3.
type CubicBez struct {
	P0, P1, P2, P3 Point
}

// Line returns the cubic representation of the line segment from p0 to p1,
// with both control points degenerate onto the endpoints.
func Line(p0, p1 Point) CubicBez {
	return CubicBez{P0: p0, P1: p0, P2: p1, P3: p1}
}

// Eval evaluates the curve at parameter t (0 to 1).
func (c CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	mt2 := mt * mt
	mt3 := mt2 * mt
	t2 := t * t
	t3 := t2 * t

	// (1-t)^3 * P0 + 3(1-t)^2*t * P1 + 3(1-t)*t^2 * P2 + t^3 * P3
	return Point{
		X: mt3*c.P0.X + 3*mt2*t*c.P1.X + 3*mt*t2*c.P2.X + t3*c.P3.X,
		Y: mt3*c.P0.Y + 3*mt2*t*c.P1.Y + 3*mt*t2*c.P2.Y + t3*c.P3.Y,
	}
}

// Subsegment returns the portion of the curve from t0 to t1.
func (c CubicBez) Subsegment(t0, t1 float64) CubicBez {
	p0 := c.Eval(t0)
	p3 := c.Eval(t1)

	// Control points come from the derivative at the new endpoints.
	// The derivative at t is: 3[(P1-P0)(1-t)^2 + 2(P2-P1)(1-t)t + (P3-P2)t^2]
	d0 := c.P1.Sub(c.P0)
	d1 := c.P2.Sub(c.P1)
	d2 := c.P3.Sub(c.P2)

	scale := (t1 - t0) / 3.0

	mt0 := 1.0 - t0
	deriv0 := Point{
		X: 3 * (d0.X*mt0*mt0 + 2*d1.X*mt0*t0 + d2.X*t0*t0),
		Y: 3 * (d0.Y*mt0*mt0 + 2*d1.Y*mt0*t0 + d2.Y*t0*t0),
	}
	p1 := Point{
		X: p0.X + scale*deriv0.X,
		Y: p0.Y + scale*deriv0.Y,
	}

	mt1 := 1.0 - t1
	deriv1 := Point{
		X: 3 * (d0.X*mt1*mt1 + 2*d1.X*mt1*t1 + d2.X*t1*t1),
		Y: 3 * (d0.Y*mt1*mt1 + 2*d1.Y*mt1*t1 + d2.Y*t1*t1),
	}
	p2 := Point{
		X: p3.X - scale*deriv1.X,
		Y: p3.Y - scale*deriv1.Y,
	}

	return CubicBez{P0: p0, P1: p1, P2: p2, P3: p3}
}

// Extrema returns parameter values in [0, 1] where the x or y derivative is
// zero, sorted ascending. For a cubic there can be up to 4 extrema.
func (c CubicBez) Extrema() []float64 {
	result := make([]float64, 0, 4)

	// The derivative is a quadratic: B'(t) = a*t^2 + b*t + c
	// with coefficients from differentiating the Bernstein form.
	d0 := c.P1.Sub(c.P0)
	d1 := c.P2.Sub(c.P1)
	d2 := c.P3.Sub(c.P2)

	ax := d0.X - 2*d1.X + d2.X
	bx := 2 * (d1.X - d0.X)
	cx := d0.X
	result = append(result, SolveQuadraticInUnitInterval(ax, bx, cx)...)

	ay := d0.Y - 2*d1.Y + d2.Y
	by := 2 * (d1.Y - d0.Y)
	cy := d0.Y
	result = append(result, SolveQuadraticInUnitInterval(ay, by, cy)...)

	sort.Float64s(result)
	return result
}

// BoundingBox returns the tight axis-aligned bounding box of the curve.
func (c CubicBez) BoundingBox() Rect {
	bbox := NewRect(c.P0, c.P3)
	for _, t := range c.Extrema() {
		p := c.Eval(t)
		bbox = bbox.Union(NewRect(p, p))
	}
	return bbox
}

// ControlBox returns the bounding box of the curve's on-curve and control
// points. It is cheap to compute and always contains the tight bounding box.
func (c CubicBez) ControlBox() Rect {
	return NewRect(c.P0, c.P1).Union(NewRect(c.P2, c.P3))
}

// Transform returns the curve with all four points transformed by m.
func (c CubicBez) Transform(m Matrix) CubicBez {
	return CubicBez{
		P0: m.TransformPoint(c.P0),
		P1: m.TransformPoint(c.P1),
		P2: m.TransformPoint(c.P2),
		P3: m.TransformPoint(c.P3),
	}
}

// SignedArea returns the curve's contribution to the signed area of the
// path containing it, computed via Green's theorem. Summing over all
// segments of a closed path yields the enclosed signed area: positive for
// counter-clockwise orientation in a Y-up coordinate system.
func (c CubicBez) SignedArea() float64 {
	return (c.P0.X*(6*c.P1.Y+3*c.P2.Y+c.P3.Y) +
		3*(c.P1.X*(-2*c.P0.Y+c.P2.Y+c.P3.Y)-
			c.P2.X*(c.P0.Y+c.P1.Y-2*c.P3.Y)) -
		c.P3.X*(c.P0.Y+3*c.P1.Y+6*c.P2.Y)) * 0.05
}

// Winding returns the winding number contribution of the curve at pt,
// counting signed crossings of the horizontal ray extending left from pt.
// The curve is split at its extrema so each piece is monotonic.
func (c CubicBez) Winding(pt Point) int {
	w := 0
	t0 := 0.0
	for _, t1 := range c.Extrema() {
		if t1 > t0 {
			w += c.Subsegment(t0, t1).windingMonotonic(pt)
			t0 = t1
		}
	}
	if t0 < 1.0 {
		w += c.Subsegment(t0, 1.0).windingMonotonic(pt)
	}
	return w
}

// windingMonotonic computes the winding contribution of a piece that is
// monotonic in both x and y.
func (c CubicBez) windingMonotonic(pt Point) int {
	start, end := c.P0, c.P3
	var sign int
	switch {
	case end.Y > start.Y:
		if pt.Y < start.Y || pt.Y >= end.Y {
			return 0
		}
		sign = -1
	case end.Y < start.Y:
		if pt.Y < end.Y || pt.Y >= start.Y {
			return 0
		}
		sign = 1
	default:
		return 0
	}

	xmin := min(start.X, end.X, c.P1.X, c.P2.X)
	xmax := max(start.X, end.X, c.P1.X, c.P2.X)
	if pt.X < xmin {
		return 0
	}
	if pt.X >= xmax {
		return sign
	}

	// Solve for the parameter where the curve crosses pt.Y, then compare x.
	a := end.Y - 3*c.P2.Y + 3*c.P1.Y - start.Y
	b := 3 * (c.P2.Y - 2*c.P1.Y + start.Y)
	cc := 3 * (c.P1.Y - start.Y)
	d := start.Y - pt.Y
	for _, t := range SolveCubicInUnitInterval(a, b, cc, d) {
		if pt.X >= c.Eval(t).X {
			return sign
		}
		return 0
	}
	return 0
}
