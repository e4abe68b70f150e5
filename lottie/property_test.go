package lottie

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestProperty_MarshalFixed(t *testing.T) {
	tests := []struct {
		name string
		prop *Property
		want string
	}{
		{"scalar", Fixed(100), `{"a":0,"k":100}`},
		{"vector", FixedVec(50, 50), `{"a":0,"k":[50,50]}`},
		{"color", FixedVec(1, 0, 0, 1), `{"a":0,"k":[1,0,0,1]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.prop)
			if err != nil {
				t.Fatalf("Marshal: %v", err)
			}
			if string(data) != tt.want {
				t.Errorf("Marshal = %s, want %s", data, tt.want)
			}
		})
	}
}

func TestProperty_UnmarshalFixed(t *testing.T) {
	tests := []struct {
		name       string
		data       string
		wantValue  []float64
		wantScalar bool
	}{
		{"scalar", `{"a":0,"k":100}`, []float64{100}, true},
		{"vector", `{"a":0,"k":[480,480]}`, []float64{480, 480}, false},
		{"no a field", `{"k":5}`, []float64{5}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p Property
			if err := json.Unmarshal([]byte(tt.data), &p); err != nil {
				t.Fatalf("Unmarshal: %v", err)
			}
			if p.Animated() {
				t.Errorf("Animated() = true, want false")
			}
			if diff := cmp.Diff(tt.wantValue, p.Value); diff != "" {
				t.Errorf("Value mismatch (-want +got):\n%s", diff)
			}
			if p.Scalar != tt.wantScalar {
				t.Errorf("Scalar = %v, want %v", p.Scalar, tt.wantScalar)
			}
		})
	}
}

func TestProperty_AnimatedRoundTrip(t *testing.T) {
	orig := &Property{
		Keyframes: []Keyframe{
			{Time: 0, Start: []float64{100, 100}, InEase: NewEase(0.6, 1), OutEase: NewEase(0.4, 0)},
			{Time: 12, Start: []float64{150, 150}, InEase: NewEase(0.6, 1), OutEase: NewEase(0.4, 0)},
			{Time: 24, Start: []float64{100, 100}, InEase: NewEase(0.6, 1), OutEase: NewEase(0.4, 0)},
		},
	}

	data, err := json.Marshal(orig)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var got Property
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !got.Animated() {
		t.Fatal("Animated() = false after round trip")
	}
	if diff := cmp.Diff(orig.Keyframes, got.Keyframes); diff != "" {
		t.Errorf("keyframes mismatch (-want +got):\n%s", diff)
	}
}

func TestProperty_ScalarEaseForm(t *testing.T) {
	// Older exporters write ease handles as bare numbers.
	data := `{"a":1,"k":[{"t":0,"s":[0],"i":{"x":0.6,"y":1},"o":{"x":0.4,"y":0}},{"t":24,"s":[360]}]}`

	var p Property
	if err := json.Unmarshal([]byte(data), &p); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if len(p.Keyframes) != 2 {
		t.Fatalf("got %d keyframes, want 2", len(p.Keyframes))
	}
	kf := p.Keyframes[0]
	if diff := cmp.Diff(EaseValues{0.6}, kf.InEase.X); diff != "" {
		t.Errorf("InEase.X mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(EaseValues{0}, kf.OutEase.Y); diff != "" {
		t.Errorf("OutEase.Y mismatch (-want +got):\n%s", diff)
	}
}

func TestProperty_UnrecognizedPreserved(t *testing.T) {
	data := `{"a":0,"k":100,"x":"var $bm_rt = value;"}`

	var p Property
	if err := json.Unmarshal([]byte(data), &p); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	// Numeric payload parses even with an expression attached.
	if len(p.Value) != 1 || p.Value[0] != 100 {
		t.Errorf("Value = %v, want [100]", p.Value)
	}

	weird := `{"a":0,"k":{"nested":true}}`
	if err := json.Unmarshal([]byte(weird), &p); err != nil {
		t.Fatalf("Unmarshal weird: %v", err)
	}
	if p.Raw == nil {
		t.Fatal("Raw not captured for unrecognized payload")
	}
	out, err := json.Marshal(&p)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(out) != weird {
		t.Errorf("round trip = %s, want %s", out, weird)
	}
}

func TestShapeProperty_RoundTrip(t *testing.T) {
	sv := &ShapeValue{
		In:       [][]float64{{0, 0}, {0, 0}},
		Out:      [][]float64{{0, 0}, {0, 0}},
		Vertices: [][]float64{{0, 0}, {100, 0}},
		Closed:   true,
	}
	data, err := json.Marshal(ShapeProperty{Value: sv})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var got ShapeProperty
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got.Value == nil {
		t.Fatal("Value lost in round trip")
	}
	if diff := cmp.Diff(sv, got.Value); diff != "" {
		t.Errorf("shape value mismatch (-want +got):\n%s", diff)
	}
}

func TestShapeProperty_AnimatedPreserved(t *testing.T) {
	data := `{"a":1,"k":[{"t":0,"s":[{"i":[[0,0]],"o":[[0,0]],"v":[[5,5]],"c":true}]}]}`

	var sp ShapeProperty
	if err := json.Unmarshal([]byte(data), &sp); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if sp.Value != nil {
		t.Error("animated shape parsed as fixed value")
	}
	out, err := json.Marshal(sp)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(out) != data {
		t.Errorf("round trip = %s, want %s", out, data)
	}
}
