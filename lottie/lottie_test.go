package lottie

import (
	"encoding/json"
	"strings"
	"testing"
)

const testDoc = `{
  "v": "5.5.2",
  "fr": 30,
  "ip": 0,
  "op": 90,
  "w": 512,
  "h": 512,
  "nm": "test",
  "assets": [{"id": "image_0"}],
  "layers": [
    {
      "ty": 4,
      "nm": "shapes",
      "ip": 0,
      "op": 90,
      "st": 0,
      "bm": 0,
      "ks": {"o": {"a": 0, "k": 100}, "p": {"a": 0, "k": [256, 256, 0]}},
      "shapes": [{"ty": "gr", "nm": "placeholder", "it": []}]
    },
    {
      "ty": 3,
      "nm": "null parent",
      "ip": 0,
      "op": 90,
      "ks": {"o": {"a": 0, "k": 0}}
    }
  ]
}`

func TestParse(t *testing.T) {
	doc, err := Parse(strings.NewReader(testDoc))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if doc.FrameRate != 30 {
		t.Errorf("FrameRate = %v, want 30", doc.FrameRate)
	}
	if doc.Width != 512 || doc.Height != 512 {
		t.Errorf("size = %dx%d, want 512x512", doc.Width, doc.Height)
	}
	if len(doc.Layers) != 2 {
		t.Fatalf("got %d layers, want 2", len(doc.Layers))
	}

	shapeLayer := doc.Layers[0]
	if shapeLayer.Type != LayerShape {
		t.Errorf("layer 0 type = %d, want %d", shapeLayer.Type, LayerShape)
	}
	if shapeLayer.OutPoint != 90 {
		t.Errorf("layer 0 op = %v, want 90", shapeLayer.OutPoint)
	}
	if len(shapeLayer.Shapes) != 1 {
		t.Fatalf("layer 0 has %d shapes, want 1", len(shapeLayer.Shapes))
	}
	if _, ok := shapeLayer.Shapes[0].(*Group); !ok {
		t.Errorf("layer 0 shape = %T, want *Group", shapeLayer.Shapes[0])
	}

	if doc.Layers[1].Type != 3 {
		t.Errorf("layer 1 type = %d, want 3", doc.Layers[1].Type)
	}
	if doc.Layers[1].Shapes != nil {
		t.Errorf("non-shape layer grew shapes: %v", doc.Layers[1].Shapes)
	}
}

func TestRoundTrip_PreservesUnmodeledFields(t *testing.T) {
	doc, err := Parse(strings.NewReader(testDoc))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	// Mutate the shape tree the way splicing does.
	group := doc.Layers[0].Shapes[0].(*Group)
	group.Items = ShapeList{NewFill(1, 0, 0, 1)}

	out, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var m map[string]json.RawMessage
	if err := json.Unmarshal(out, &m); err != nil {
		t.Fatalf("reparse: %v", err)
	}
	if string(m["v"]) != `"5.5.2"` {
		t.Errorf("v = %s, want \"5.5.2\"", m["v"])
	}
	if _, ok := m["assets"]; !ok {
		t.Error("assets dropped")
	}

	var layers []map[string]json.RawMessage
	if err := json.Unmarshal(m["layers"], &layers); err != nil {
		t.Fatalf("reparse layers: %v", err)
	}
	for _, key := range []string{"ks", "bm", "st"} {
		if _, ok := layers[0][key]; !ok {
			t.Errorf("shape layer lost %q", key)
		}
	}
	if !strings.Contains(string(layers[0]["shapes"]), `"fl"`) {
		t.Errorf("edited shapes not written back: %s", layers[0]["shapes"])
	}
	if _, ok := layers[1]["ks"]; !ok {
		t.Error("non-shape layer lost ks")
	}
	if _, ok := layers[1]["shapes"]; ok {
		t.Error("non-shape layer grew shapes on marshal")
	}
}

func TestEncode_PrettyPrints(t *testing.T) {
	doc := DefaultTemplate(100, 100)

	var sb strings.Builder
	if err := doc.Encode(&sb); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	out := sb.String()

	if !strings.HasPrefix(out, "{\n  ") {
		t.Errorf("output not indented: %q", out[:min(len(out), 20)])
	}
	if !strings.HasSuffix(out, "\n") {
		t.Error("output missing trailing newline")
	}

	// The pretty form must still parse to an equivalent document.
	got, err := Parse(strings.NewReader(out))
	if err != nil {
		t.Fatalf("reparse: %v", err)
	}
	if got.OutPoint != doc.OutPoint || got.Width != doc.Width {
		t.Errorf("reparse drifted: op %v width %d", got.OutPoint, got.Width)
	}
}
