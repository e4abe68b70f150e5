package iconmotion

import (
	"errors"
	"math"
	"testing"

	"github.com/gogpu/iconmotion/geom"
)

func rect(x0, y0, x1, y1 float64) geom.Rect {
	return geom.NewRect(geom.Pt(x0, y0), geom.Pt(x1, y1))
}

func pointNear(got, want geom.Point) bool {
	return math.Abs(got.X-want.X) <= 1e-9 && math.Abs(got.Y-want.Y) <= 1e-9
}

func TestMapBoxCorners(t *testing.T) {
	tests := []struct {
		name     string
		src, dst geom.Rect
		// src corner -> expected dst point, with the vertical mirror applied
		corners map[geom.Point]geom.Point
	}{
		{
			name: "unit em to canvas",
			src:  rect(0, 0, 1000, 1000),
			dst:  rect(0, 0, 960, 960),
			corners: map[geom.Point]geom.Point{
				geom.Pt(0, 0):       geom.Pt(0, 960),
				geom.Pt(1000, 0):    geom.Pt(960, 960),
				geom.Pt(0, 1000):    geom.Pt(0, 0),
				geom.Pt(1000, 1000): geom.Pt(960, 0),
			},
		},
		{
			name: "offset boxes",
			src:  rect(-100, -200, 300, 600),
			dst:  rect(10, 20, 50, 120),
			corners: map[geom.Point]geom.Point{
				geom.Pt(-100, -200): geom.Pt(10, 120),
				geom.Pt(300, 600):   geom.Pt(50, 20),
			},
		},
		{
			name: "non-uniform scale",
			src:  rect(0, 0, 2, 4),
			dst:  rect(0, 0, 8, 2),
			corners: map[geom.Point]geom.Point{
				geom.Pt(0, 0): geom.Pt(0, 2),
				geom.Pt(2, 4): geom.Pt(8, 0),
				geom.Pt(1, 2): geom.Pt(4, 1),
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := MapBox(tt.src, tt.dst)
			if err != nil {
				t.Fatalf("MapBox: %v", err)
			}
			if det := m.Determinant(); det >= 0 {
				t.Errorf("determinant = %g, want negative", det)
			}
			for src, want := range tt.corners {
				if got := m.TransformPoint(src); !pointNear(got, want) {
					t.Errorf("TransformPoint(%v) = %v, want %v", src, got, want)
				}
			}
		})
	}
}

func TestMapBoxInvalid(t *testing.T) {
	ok := rect(0, 0, 100, 100)
	tests := []struct {
		name     string
		src, dst geom.Rect
	}{
		{"zero-width source", rect(10, 0, 10, 100), ok},
		{"zero-height source", rect(0, 10, 100, 10), ok},
		{"empty source", geom.Rect{}, ok},
		{"zero-width destination", ok, rect(5, 0, 5, 50)},
		{"zero-height destination", ok, rect(0, 5, 50, 5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := MapBox(tt.src, tt.dst)
			var boxErr *InvalidBoxError
			if !errors.As(err, &boxErr) {
				t.Fatalf("MapBox error = %v, want InvalidBoxError", err)
			}
		})
	}
}
