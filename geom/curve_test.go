package geom

import (
	"math"
	"testing"
)

const epsilon = 1e-10

func pointsEqual(p1, p2 Point, eps float64) bool {
	return math.Abs(p1.X-p2.X) < eps && math.Abs(p1.Y-p2.Y) < eps
}

// -------------------------------------------------------------------
// QuadBez Tests
// -------------------------------------------------------------------

func TestQuadBez_Eval(t *testing.T) {
	q := QuadBez{P0: Pt(0, 0), P1: Pt(1, 2), P2: Pt(2, 0)}

	tests := []struct {
		name   string
		t      float64
		expect Point
	}{
		{"t=0", 0, Pt(0, 0)},
		{"t=1", 1, Pt(2, 0)},
		{"t=0.5", 0.5, Pt(1, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := q.Eval(tt.t)
			if !pointsEqual(got, tt.expect, epsilon) {
				t.Errorf("Eval(%v) = %v, want %v", tt.t, got, tt.expect)
			}
		})
	}
}

func TestQuadBez_Raise(t *testing.T) {
	q := QuadBez{P0: Pt(0, 0), P1: Pt(2, 4), P2: Pt(4, 0)}
	c := q.Raise()

	if !pointsEqual(c.P0, q.P0, epsilon) {
		t.Errorf("P0 = %v, want %v", c.P0, q.P0)
	}
	if !pointsEqual(c.P3, q.P2, epsilon) {
		t.Errorf("P3 = %v, want %v", c.P3, q.P2)
	}

	// Degree elevation is exact: the cubic traces the same curve.
	for _, u := range []float64{0, 0.1, 0.25, 0.5, 0.75, 0.9, 1} {
		want := q.Eval(u)
		got := c.Eval(u)
		if !pointsEqual(got, want, 1e-12) {
			t.Errorf("at t=%v: cubic = %v, quadratic = %v", u, got, want)
		}
	}
}

// -------------------------------------------------------------------
// CubicBez Tests
// -------------------------------------------------------------------

func TestCubicBez_Eval(t *testing.T) {
	c := CubicBez{P0: Pt(0, 0), P1: Pt(0, 1), P2: Pt(1, 1), P3: Pt(1, 0)}

	tests := []struct {
		name   string
		t      float64
		expect Point
	}{
		{"t=0", 0, Pt(0, 0)},
		{"t=1", 1, Pt(1, 0)},
		{"t=0.5", 0.5, Pt(0.5, 0.75)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Eval(tt.t)
			if !pointsEqual(got, tt.expect, epsilon) {
				t.Errorf("Eval(%v) = %v, want %v", tt.t, got, tt.expect)
			}
		})
	}
}

func TestCubicBez_Line(t *testing.T) {
	l := Line(Pt(1, 2), Pt(5, 6))

	if !pointsEqual(l.Eval(0), Pt(1, 2), epsilon) {
		t.Errorf("Eval(0) = %v, want (1, 2)", l.Eval(0))
	}
	if !pointsEqual(l.Eval(1), Pt(5, 6), epsilon) {
		t.Errorf("Eval(1) = %v, want (5, 6)", l.Eval(1))
	}

	// Every point stays on the segment.
	for _, u := range []float64{0.25, 0.5, 0.75} {
		p := l.Eval(u)
		cross := p.Sub(Pt(1, 2)).Cross(Pt(5, 6).Sub(Pt(1, 2)))
		if math.Abs(cross) > epsilon {
			t.Errorf("Eval(%v) = %v is off the line", u, p)
		}
	}
}

func TestCubicBez_Subsegment(t *testing.T) {
	c := CubicBez{P0: Pt(0, 0), P1: Pt(1, 3), P2: Pt(3, 3), P3: Pt(4, 0)}
	sub := c.Subsegment(0.25, 0.75)

	for _, u := range []float64{0, 0.2, 0.5, 0.8, 1} {
		want := c.Eval(0.25 + u*0.5)
		got := sub.Eval(u)
		if !pointsEqual(got, want, 1e-9) {
			t.Errorf("subsegment at u=%v: got %v, want %v", u, got, want)
		}
	}
}

func TestCubicBez_Extrema(t *testing.T) {
	c := CubicBez{P0: Pt(0, 0), P1: Pt(0, 1), P2: Pt(1, 1), P3: Pt(1, 0)}
	extrema := c.Extrema()

	// x'(t) = 0 at t=0 and t=1, y'(t) = 0 at t=0.5.
	want := []float64{0, 0.5, 1}
	if len(extrema) != len(want) {
		t.Fatalf("Extrema() = %v, want %v", extrema, want)
	}
	for i := range want {
		if !almostEqual(extrema[i], want[i], 1e-9) {
			t.Errorf("extrema[%d] = %v, want %v", i, extrema[i], want[i])
		}
	}
}

func TestCubicBez_BoundingBox(t *testing.T) {
	c := CubicBez{P0: Pt(0, 0), P1: Pt(0, 1), P2: Pt(1, 1), P3: Pt(1, 0)}

	bbox := c.BoundingBox()
	want := NewRect(Pt(0, 0), Pt(1, 0.75))
	if !pointsEqual(bbox.Min, want.Min, 1e-9) || !pointsEqual(bbox.Max, want.Max, 1e-9) {
		t.Errorf("BoundingBox() = %v, want %v", bbox, want)
	}

	// The control box is looser: it includes the off-curve points.
	cbox := c.ControlBox()
	wantC := NewRect(Pt(0, 0), Pt(1, 1))
	if !pointsEqual(cbox.Min, wantC.Min, epsilon) || !pointsEqual(cbox.Max, wantC.Max, epsilon) {
		t.Errorf("ControlBox() = %v, want %v", cbox, wantC)
	}
	if !cbox.ContainsRect(bbox) {
		t.Errorf("control box %v does not contain bounding box %v", cbox, bbox)
	}
}

func TestCubicBez_Transform(t *testing.T) {
	c := CubicBez{P0: Pt(0, 0), P1: Pt(1, 0), P2: Pt(1, 1), P3: Pt(0, 1)}
	m := Translate(10, 20).Multiply(Scale(2, 2))

	got := c.Transform(m)
	want := CubicBez{P0: Pt(10, 20), P1: Pt(12, 20), P2: Pt(12, 22), P3: Pt(10, 22)}

	for i, pair := range [][2]Point{
		{got.P0, want.P0}, {got.P1, want.P1}, {got.P2, want.P2}, {got.P3, want.P3},
	} {
		if !pointsEqual(pair[0], pair[1], epsilon) {
			t.Errorf("point %d = %v, want %v", i, pair[0], pair[1])
		}
	}
}

// unitSquareCCW returns the unit square as four degenerate cubics,
// counter-clockwise in a Y-up coordinate system.
func unitSquareCCW() []CubicBez {
	return []CubicBez{
		Line(Pt(0, 0), Pt(1, 0)),
		Line(Pt(1, 0), Pt(1, 1)),
		Line(Pt(1, 1), Pt(0, 1)),
		Line(Pt(0, 1), Pt(0, 0)),
	}
}

func reverseCubics(curves []CubicBez) []CubicBez {
	out := make([]CubicBez, 0, len(curves))
	for i := len(curves) - 1; i >= 0; i-- {
		c := curves[i]
		out = append(out, CubicBez{P0: c.P3, P1: c.P2, P2: c.P1, P3: c.P0})
	}
	return out
}

func TestCubicBez_SignedArea(t *testing.T) {
	sum := 0.0
	for _, c := range unitSquareCCW() {
		sum += c.SignedArea()
	}
	if !almostEqual(sum, 1.0, 1e-9) {
		t.Errorf("CCW unit square area = %v, want 1", sum)
	}

	sum = 0.0
	for _, c := range reverseCubics(unitSquareCCW()) {
		sum += c.SignedArea()
	}
	if !almostEqual(sum, -1.0, 1e-9) {
		t.Errorf("CW unit square area = %v, want -1", sum)
	}
}

func TestCubicBez_SignedArea_Curved(t *testing.T) {
	// A closed path of two mirrored cubics still has positive area when
	// traversed counter-clockwise, and the bowed region adds to it.
	top := CubicBez{P0: Pt(1, 0), P1: Pt(1, 1), P2: Pt(0, 1), P3: Pt(0, 0)}
	bottom := Line(Pt(0, 0), Pt(1, 0))

	sum := top.SignedArea() + bottom.SignedArea()
	if sum <= 0 {
		t.Errorf("CCW curved path area = %v, want > 0", sum)
	}
}

func TestCubicBez_Winding(t *testing.T) {
	square := unitSquareCCW()

	tests := []struct {
		name   string
		curves []CubicBez
		pt     Point
		want   int
	}{
		{"inside CCW square", square, Pt(0.5, 0.5), 1},
		{"left of square", square, Pt(-1, 0.5), 0},
		{"right of square", square, Pt(2, 0.5), 0},
		{"above square", square, Pt(0.5, 2), 0},
		{"below square", square, Pt(0.5, -1), 0},
		{"inside CW square", reverseCubics(square), Pt(0.5, 0.5), -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := 0
			for _, c := range tt.curves {
				w += c.Winding(tt.pt)
			}
			if w != tt.want {
				t.Errorf("winding at %v = %d, want %d", tt.pt, w, tt.want)
			}
		})
	}
}

func TestCubicBez_Winding_Curved(t *testing.T) {
	// Closed path: bowed top from (1,0) back to (0,0), straight return.
	curves := []CubicBez{
		Line(Pt(0, 0), Pt(1, 0)),
		{P0: Pt(1, 0), P1: Pt(1, 1), P2: Pt(0, 1), P3: Pt(0, 0)},
	}

	w := 0
	for _, c := range curves {
		w += c.Winding(Pt(0.5, 0.25))
	}
	if w != 1 {
		t.Errorf("winding inside curved CCW path = %d, want 1", w)
	}

	w = 0
	for _, c := range curves {
		w += c.Winding(Pt(0.5, 2))
	}
	if w != 0 {
		t.Errorf("winding outside curved path = %d, want 0", w)
	}
}
