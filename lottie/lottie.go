// Package lottie models the subset of the Lottie (bodymovin) animation
// document needed to splice generated glyph shapes into a template.
//
// The model is deliberately asymmetric: shape items the pipeline creates or
// inspects (groups, paths, rectangles, fills, transforms) are fully typed,
// while everything else in a loaded document is preserved as raw JSON and
// written back verbatim. Splicing a template must never destroy items it
// does not understand.
package lottie

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"os"
)

// Bodymovin is the root of a Lottie animation document.
type Bodymovin struct {
	Version   string          `json:"v,omitempty"`
	FrameRate float64         `json:"fr"`
	InPoint   float64         `json:"ip"`
	OutPoint  float64         `json:"op"`
	Width     int             `json:"w"`
	Height    int             `json:"h"`
	Name      string          `json:"nm,omitempty"`
	ThreeD    int             `json:"ddd,omitempty"`
	Assets    json.RawMessage `json:"assets,omitempty"`
	Fonts     json.RawMessage `json:"fonts,omitempty"`
	Chars     json.RawMessage `json:"chars,omitempty"`
	Layers    []*Layer        `json:"layers"`
	Markers   json.RawMessage `json:"markers,omitempty"`
	Meta      json.RawMessage `json:"meta,omitempty"`
}

// Layer type codes used by the "ty" field.
const (
	LayerShape = 4
)

// Layer is one document layer. Shape layers expose their shape tree for
// editing; every other field of the original JSON object, and layers of any
// other type, round-trip untouched.
type Layer struct {
	Type     int
	Name     string
	InPoint  float64
	OutPoint float64
	Shapes   ShapeList

	// fields holds the layer object as loaded. Marshal rebuilds from it so
	// unmodeled keys (ks, parent, bm, masks, ...) survive editing.
	fields map[string]json.RawMessage
}

// NewShapeLayer returns a shape layer spanning frames ip to op with a
// default (identity, fully opaque) layer transform.
func NewShapeLayer(ip, op float64, shapes ShapeList) *Layer {
	return &Layer{
		Type:     LayerShape,
		InPoint:  ip,
		OutPoint: op,
		Shapes:   shapes,
	}
}

func (l *Layer) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	l.fields = fields

	if raw, ok := fields["ty"]; ok {
		if err := json.Unmarshal(raw, &l.Type); err != nil {
			return fmt.Errorf("layer ty: %w", err)
		}
	}
	if raw, ok := fields["nm"]; ok {
		if err := json.Unmarshal(raw, &l.Name); err != nil {
			return fmt.Errorf("layer nm: %w", err)
		}
	}
	if raw, ok := fields["ip"]; ok {
		if err := json.Unmarshal(raw, &l.InPoint); err != nil {
			return fmt.Errorf("layer ip: %w", err)
		}
	}
	if raw, ok := fields["op"]; ok {
		if err := json.Unmarshal(raw, &l.OutPoint); err != nil {
			return fmt.Errorf("layer op: %w", err)
		}
	}
	if l.Type == LayerShape {
		if raw, ok := fields["shapes"]; ok {
			if err := json.Unmarshal(raw, &l.Shapes); err != nil {
				return fmt.Errorf("layer shapes: %w", err)
			}
		}
	}
	return nil
}

func (l *Layer) MarshalJSON() ([]byte, error) {
	fields := maps.Clone(l.fields)
	if fields == nil {
		// Hand-built layer: emit the required transform and timing fields.
		fields = make(map[string]json.RawMessage)
		ks, err := json.Marshal(NewTransform().forLayer())
		if err != nil {
			return nil, err
		}
		fields["ks"] = ks
		fields["st"] = json.RawMessage("0")
	}

	set := func(key string, v any) error {
		raw, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("layer %s: %w", key, err)
		}
		fields[key] = raw
		return nil
	}
	if err := set("ty", l.Type); err != nil {
		return nil, err
	}
	if err := set("ip", l.InPoint); err != nil {
		return nil, err
	}
	if err := set("op", l.OutPoint); err != nil {
		return nil, err
	}
	if l.Name != "" {
		if err := set("nm", l.Name); err != nil {
			return nil, err
		}
	}
	if l.Type == LayerShape && l.Shapes != nil {
		if err := set("shapes", l.Shapes); err != nil {
			return nil, err
		}
	}
	return json.Marshal(fields)
}

// Parse reads a Lottie document from r.
func Parse(r io.Reader) (*Bodymovin, error) {
	var doc Bodymovin
	dec := json.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("parse lottie: %w", err)
	}
	return &doc, nil
}

// Load reads a Lottie document from the file at path.
func Load(path string) (*Bodymovin, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	doc, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Encode writes the document to w, pretty-printed.
func (b *Bodymovin) Encode(w io.Writer) error {
	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return fmt.Errorf("encode lottie: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return err
	}
	_, err = w.Write([]byte("\n"))
	return err
}

// Save writes the document to the file at path, pretty-printed.
func (b *Bodymovin) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := b.Encode(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
