package lottie

import (
	"encoding/json"
	"fmt"
)

// Shape type tags used by the "ty" discriminator field.
const (
	TypeGroup     = "gr"
	TypePath      = "sh"
	TypeRect      = "rc"
	TypeFill      = "fl"
	TypeTransform = "tr"
)

// Path direction values for the "d" field.
const (
	DirClockwise        = 1.0 // positive signed area
	DirCounterClockwise = 3.0 // negative signed area
)

// AnyShape is one item of a shape list. Concrete types are *Group, *Path,
// *Rect, *Fill, *Transform and *RawShape.
type AnyShape interface {
	isShape()
}

func (*Group) isShape()     {}
func (*Path) isShape()      {}
func (*Rect) isShape()      {}
func (*Fill) isShape()      {}
func (*Transform) isShape() {}
func (*RawShape) isShape()  {}

// ShapeList is an ordered list of shape items, decoded by their "ty" tag.
type ShapeList []AnyShape

func (l *ShapeList) UnmarshalJSON(data []byte) error {
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return err
	}
	out := make(ShapeList, 0, len(raws))
	for i, raw := range raws {
		shape, err := decodeShape(raw)
		if err != nil {
			return fmt.Errorf("shape %d: %w", i, err)
		}
		out = append(out, shape)
	}
	*l = out
	return nil
}

func decodeShape(raw json.RawMessage) (AnyShape, error) {
	var tag struct {
		Ty string `json:"ty"`
	}
	if err := json.Unmarshal(raw, &tag); err != nil {
		return nil, err
	}

	var shape AnyShape
	switch tag.Ty {
	case TypeGroup:
		shape = &Group{}
	case TypePath:
		shape = &Path{}
	case TypeRect:
		shape = &Rect{}
	case TypeFill:
		shape = &Fill{}
	case TypeTransform:
		shape = &Transform{}
	default:
		// Foreign item (stroke, trim, repeater, ...): carried verbatim.
		return &RawShape{Ty: tag.Ty, Data: raw}, nil
	}
	if err := json.Unmarshal(raw, shape); err != nil {
		return nil, fmt.Errorf("%q item: %w", tag.Ty, err)
	}
	return shape, nil
}

// Group is a named collection of shape items ("gr").
type Group struct {
	Ty       string    `json:"ty"`
	Name     string    `json:"nm,omitempty"`
	Hidden   bool      `json:"hd,omitempty"`
	NumProps float64   `json:"np,omitempty"`
	Items    ShapeList `json:"it"`
}

// NewGroup returns an empty group.
func NewGroup() *Group {
	return &Group{Ty: TypeGroup}
}

// Path is a cubic bezier shape ("sh"). Direction is DirClockwise or
// DirCounterClockwise; players use it for gradient and trim orientation.
type Path struct {
	Ty        string        `json:"ty"`
	Name      string        `json:"nm,omitempty"`
	Hidden    bool          `json:"hd,omitempty"`
	Shape     ShapeProperty `json:"ks"`
	Direction float64       `json:"d,omitempty"`
}

// NewPath returns a path holding the given fixed shape value.
func NewPath(value *ShapeValue, direction float64) *Path {
	return &Path{Ty: TypePath, Shape: ShapeProperty{Value: value}, Direction: direction}
}

// Rect is a rectangle shape ("rc").
type Rect struct {
	Ty        string    `json:"ty"`
	Name      string    `json:"nm,omitempty"`
	Hidden    bool      `json:"hd,omitempty"`
	Direction float64   `json:"d,omitempty"`
	Position  *Property `json:"p"`
	Size      *Property `json:"s"`
	Roundness *Property `json:"r,omitempty"`
}

// Fill is a solid fill style ("fl"). Opacity is on a 0-100 scale, color is
// RGBA with 0-1 components.
type Fill struct {
	Ty      string    `json:"ty"`
	Name    string    `json:"nm,omitempty"`
	Hidden  bool      `json:"hd,omitempty"`
	Opacity *Property `json:"o"`
	Color   *Property `json:"c"`
	Rule    float64   `json:"r,omitempty"`
}

// NewFill returns a fully opaque fill of the given color.
func NewFill(r, g, b, a float64) *Fill {
	return &Fill{
		Ty:      TypeFill,
		Opacity: Fixed(100),
		Color:   FixedVec(r, g, b, a),
	}
}

// Transform is a group transform ("tr" as a shape item; the same structure
// without the tag serves as a layer transform).
type Transform struct {
	Ty       string    `json:"ty,omitempty"`
	Anchor   *Property `json:"a,omitempty"`
	Position *Property `json:"p,omitempty"`
	Scale    *Property `json:"s,omitempty"`
	Rotation *Property `json:"r,omitempty"`
	Opacity  *Property `json:"o,omitempty"`
	Skew     *Property `json:"sk,omitempty"`
	SkewAxis *Property `json:"sa,omitempty"`
}

// NewTransform returns an identity transform: zero anchor and position,
// 100% scale, no rotation, full opacity.
func NewTransform() *Transform {
	return &Transform{
		Ty:       TypeTransform,
		Anchor:   FixedVec(0, 0),
		Position: FixedVec(0, 0),
		Scale:    FixedVec(100, 100),
		Rotation: Fixed(0),
		Opacity:  Fixed(100),
	}
}

// forLayer strips the shape item tag so the transform can serve as a layer's
// "ks" object.
func (t *Transform) forLayer() *Transform {
	lt := *t
	lt.Ty = ""
	return &lt
}

// RawShape preserves a shape item this package does not model.
type RawShape struct {
	Ty   string
	Data json.RawMessage
}

func (r *RawShape) MarshalJSON() ([]byte, error) {
	return r.Data, nil
}

func (r *RawShape) UnmarshalJSON(data []byte) error {
	var tag struct {
		Ty string `json:"ty"`
	}
	if err := json.Unmarshal(data, &tag); err != nil {
		return err
	}
	r.Ty = tag.Ty
	r.Data = append(r.Data[:0], data...)
	return nil
}
