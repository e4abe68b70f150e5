// Package fonts loads font files and extracts glyph outlines.
//
// Outlines are normalized to a single form regardless of backend:
// coordinates are float64 font design units with Y pointing up, quadratic
// and cubic segments keep their native order, and every contour ends with
// an explicit SegmentOpClose. Backends are registered by name; "ximage"
// (golang.org/x/image/font/sfnt) is the default, "gotext"
// (github.com/go-text/typesetting) adds glyph lookup by ligature name.
package fonts

import (
	"fmt"
	"os"

	"github.com/gogpu/iconmotion/geom"
)

// GlyphID identifies a glyph within a font.
type GlyphID uint32

// SegmentOp is the operator of an outline segment.
type SegmentOp int

const (
	// SegmentOpMoveTo starts a new contour at Args[0].
	SegmentOpMoveTo SegmentOp = iota

	// SegmentOpLineTo draws a line to Args[0].
	SegmentOpLineTo

	// SegmentOpQuadTo draws a quadratic curve with control Args[0] to Args[1].
	SegmentOpQuadTo

	// SegmentOpCubeTo draws a cubic curve with controls Args[0], Args[1] to Args[2].
	SegmentOpCubeTo

	// SegmentOpClose closes the current contour. No arguments.
	SegmentOpClose
)

// String returns the operator name.
func (op SegmentOp) String() string {
	switch op {
	case SegmentOpMoveTo:
		return "MoveTo"
	case SegmentOpLineTo:
		return "LineTo"
	case SegmentOpQuadTo:
		return "QuadTo"
	case SegmentOpCubeTo:
		return "CubeTo"
	case SegmentOpClose:
		return "Close"
	default:
		return fmt.Sprintf("SegmentOp(%d)", int(op))
	}
}

// Segment is a single outline drawing command in font units.
type Segment struct {
	Op   SegmentOp
	Args [3]geom.Point
}

// Glyph is a resolved glyph outline ready for conversion.
type Glyph struct {
	ID       GlyphID
	Segments []Segment
}

// Font provides glyph lookup and outline extraction for a parsed font.
// Implementations are not safe for concurrent use.
type Font interface {
	// UnitsPerEm reports the design grid size of the font.
	UnitsPerEm() int

	// GlyphForRune resolves a Unicode code point through the character map.
	// Reports false if the font has no glyph for the rune.
	GlyphForRune(r rune) (GlyphID, bool)

	// GlyphForName resolves a glyph by name, typically the ligature name of
	// an icon font glyph. Backends without name lookup report false.
	GlyphForName(name string) (GlyphID, bool)

	// Outline extracts the glyph outline in font units with Y up.
	// Returns ErrMissingGlyph if the glyph does not exist or has no contours.
	Outline(gid GlyphID) ([]Segment, error)

	// Close releases the parsed font data.
	Close() error
}

// Loader parses raw font data (TTF or OTF) into a Font.
// This abstraction allows swapping the font parsing library.
type Loader func(data []byte) (Font, error)

// backendRegistry holds registered font backends.
// The default backend is "ximage" (golang.org/x/image).
var backendRegistry = map[string]Loader{
	"ximage": parseXImage,
	"gotext": parseGoText,
}

// defaultBackendName is the name of the default backend.
const defaultBackendName = "ximage"

// RegisterBackend registers a custom font backend.
// This allows users to provide their own parsing implementation.
func RegisterBackend(name string, loader Loader) {
	backendRegistry[name] = loader
}

// getLoader returns the backend by name, or the default if not found.
func getLoader(name string) Loader {
	if l, ok := backendRegistry[name]; ok {
		return l
	}
	return backendRegistry[defaultBackendName]
}

// Load parses font data with the default backend.
func Load(data []byte) (Font, error) {
	return LoadBackend(defaultBackendName, data)
}

// LoadBackend parses font data with the named backend.
// Unknown names fall back to the default backend.
func LoadBackend(name string, data []byte) (Font, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	return getLoader(name)(data)
}

// LoadFile reads and parses a font file with the named backend.
func LoadFile(name, path string) (Font, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("fonts: failed to read font file: %w", err)
	}
	return LoadBackend(name, data)
}

// segmentBuilder accumulates normalized segments. It inserts a close
// before each new contour and after the final one, since neither backend
// emits explicit close operators.
type segmentBuilder struct {
	segs []Segment
	open bool
}

func (b *segmentBuilder) moveTo(p geom.Point) {
	if b.open {
		b.closePath()
	}
	b.segs = append(b.segs, Segment{Op: SegmentOpMoveTo, Args: [3]geom.Point{p}})
	b.open = true
}

func (b *segmentBuilder) lineTo(p geom.Point) {
	b.segs = append(b.segs, Segment{Op: SegmentOpLineTo, Args: [3]geom.Point{p}})
}

func (b *segmentBuilder) quadTo(c, p geom.Point) {
	b.segs = append(b.segs, Segment{Op: SegmentOpQuadTo, Args: [3]geom.Point{c, p}})
}

func (b *segmentBuilder) cubeTo(c0, c1, p geom.Point) {
	b.segs = append(b.segs, Segment{Op: SegmentOpCubeTo, Args: [3]geom.Point{c0, c1, p}})
}

func (b *segmentBuilder) closePath() {
	b.segs = append(b.segs, Segment{Op: SegmentOpClose})
	b.open = false
}

func (b *segmentBuilder) finish() []Segment {
	if b.open {
		b.closePath()
	}
	return b.segs
}
