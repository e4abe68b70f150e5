package lottie

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Property is an animatable numeric value: either a fixed scalar/vector or a
// sequence of keyframes. The wire form is {"a": 0|1, "k": ...} where k holds
// the fixed value or the keyframe list.
//
// Payloads that are neither (expressions, exotic exporter output) are kept
// in Raw and written back verbatim.
type Property struct {
	Keyframes []Keyframe
	Value     []float64
	Scalar    bool // fixed value marshals as a bare number
	Raw       json.RawMessage
}

// Fixed returns a fixed scalar property.
func Fixed(v float64) *Property {
	return &Property{Value: []float64{v}, Scalar: true}
}

// FixedVec returns a fixed vector property.
func FixedVec(vs ...float64) *Property {
	return &Property{Value: vs}
}

// Animated reports whether the property is keyframed.
func (p *Property) Animated() bool {
	return len(p.Keyframes) > 0
}

func (p Property) MarshalJSON() ([]byte, error) {
	if p.Raw != nil {
		return p.Raw, nil
	}
	if p.Animated() {
		return json.Marshal(struct {
			A int        `json:"a"`
			K []Keyframe `json:"k"`
		}{1, p.Keyframes})
	}
	var k any = p.Value
	if p.Scalar && len(p.Value) == 1 {
		k = p.Value[0]
	}
	return json.Marshal(struct {
		A int `json:"a"`
		K any `json:"k"`
	}{0, k})
}

func (p *Property) UnmarshalJSON(data []byte) error {
	var wire struct {
		K json.RawMessage `json:"k"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	*p = Property{}
	switch firstToken(wire.K) {
	case '[':
		var elems []json.RawMessage
		if err := json.Unmarshal(wire.K, &elems); err != nil {
			return err
		}
		if len(elems) > 0 && firstToken(elems[0]) == '{' {
			if err := json.Unmarshal(wire.K, &p.Keyframes); err != nil {
				return fmt.Errorf("keyframes: %w", err)
			}
			return nil
		}
		if err := json.Unmarshal(wire.K, &p.Value); err != nil {
			return fmt.Errorf("fixed vector: %w", err)
		}
		return nil
	case '{', 0:
		// Not a numeric payload; keep the whole property as-is.
		p.Raw = append(json.RawMessage(nil), data...)
		return nil
	default:
		var v float64
		if err := json.Unmarshal(wire.K, &v); err != nil {
			p.Raw = append(json.RawMessage(nil), data...)
			return nil
		}
		p.Value = []float64{v}
		p.Scalar = true
		return nil
	}
}

// firstToken returns the first non-whitespace byte of raw, or 0.
func firstToken(raw []byte) byte {
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	if len(trimmed) == 0 {
		return 0
	}
	return trimmed[0]
}

// Keyframe is one step of an animated property. S holds the value at T;
// InEase and OutEase are the interpolation handles toward and away from it.
// End and the spatial tangents only appear in documents produced by older
// exporters; they are carried so templates survive a round trip.
type Keyframe struct {
	Time      float64   `json:"t"`
	Start     []float64 `json:"s,omitempty"`
	End       []float64 `json:"e,omitempty"`
	InEase    *Ease     `json:"i,omitempty"`
	OutEase   *Ease     `json:"o,omitempty"`
	Hold      int       `json:"h,omitempty"`
	TangentIn []float64 `json:"ti,omitempty"`
	TangentTo []float64 `json:"to,omitempty"`
}

// Ease is a pair of cubic bezier handle coordinates attached to a keyframe.
type Ease struct {
	X EaseValues `json:"x"`
	Y EaseValues `json:"y"`
}

// NewEase returns handles with a single coordinate pair, applied to every
// animated dimension.
func NewEase(x, y float64) *Ease {
	return &Ease{X: EaseValues{x}, Y: EaseValues{y}}
}

// EaseValues holds ease handle coordinates. Exporters write either a bare
// number or a per-dimension array; both decode, and encoding always uses the
// array form.
type EaseValues []float64

func (e *EaseValues) UnmarshalJSON(data []byte) error {
	if firstToken(data) == '[' {
		return json.Unmarshal(data, (*[]float64)(e))
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*e = EaseValues{v}
	return nil
}

// ShapeValue is a cubic bezier outline: on-curve vertices with, per vertex,
// a relative incoming and outgoing control offset. Segment k runs from
// Vertices[k] to Vertices[k+1] with absolute controls Vertices[k]+Out[k] and
// Vertices[k+1]+In[k+1]. When closed, the final segment returns to
// Vertices[0] the same way.
type ShapeValue struct {
	In       [][]float64 `json:"i"`
	Out      [][]float64 `json:"o"`
	Vertices [][]float64 `json:"v"`
	Closed   bool        `json:"c"`
}

// ShapeProperty is the "ks" of a path shape: a fixed ShapeValue, or raw JSON
// for animated and unrecognized forms.
type ShapeProperty struct {
	Value *ShapeValue
	Raw   json.RawMessage
}

func (s ShapeProperty) MarshalJSON() ([]byte, error) {
	if s.Raw != nil {
		return s.Raw, nil
	}
	return json.Marshal(struct {
		A int         `json:"a"`
		K *ShapeValue `json:"k"`
	}{0, s.Value})
}

func (s *ShapeProperty) UnmarshalJSON(data []byte) error {
	var wire struct {
		A int             `json:"a"`
		K json.RawMessage `json:"k"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	*s = ShapeProperty{}
	if wire.A == 0 && firstToken(wire.K) == '{' {
		s.Value = &ShapeValue{}
		if err := json.Unmarshal(wire.K, s.Value); err != nil {
			return fmt.Errorf("shape value: %w", err)
		}
		return nil
	}
	s.Raw = append(json.RawMessage(nil), data...)
	return nil
}
