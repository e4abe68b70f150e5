package fonts

import (
	"bytes"
	"fmt"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	ot "github.com/go-text/typesetting/font/opentype"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/iconmotion/geom"
)

// gotextFont implements Font using go-text/typesetting. Unlike the sfnt
// backend it can resolve glyphs by name: the name is run through HarfBuzz
// shaping, which applies the ligature substitutions icon fonts use to map
// names like "arrow_back" to a single glyph.
type gotextFont struct {
	face *font.Face

	// shaper has internal mutable state and is NOT safe for concurrent
	// use, but reusing it across sequential calls is efficient.
	shaper shaping.HarfbuzzShaper
}

// parseGoText is the Loader for the "gotext" backend.
func parseGoText(data []byte) (Font, error) {
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("fonts: failed to parse font: %w", err)
	}
	return &gotextFont{face: face}, nil
}

// UnitsPerEm implements Font.UnitsPerEm.
func (f *gotextFont) UnitsPerEm() int {
	return int(f.face.Upem())
}

// GlyphForRune implements Font.GlyphForRune.
func (f *gotextFont) GlyphForRune(r rune) (GlyphID, bool) {
	gid, ok := f.face.NominalGlyph(r)
	if !ok {
		return 0, false
	}
	return GlyphID(gid), true
}

// GlyphForName implements Font.GlyphForName.
// The name is shaped as a text run; icon fonts substitute the whole run
// with one glyph through their ligature tables. A name that shapes to
// anything other than a single non-notdef glyph is reported as not found.
func (f *gotextFont) GlyphForName(name string) (GlyphID, bool) {
	runes := []rune(name)
	if len(runes) == 0 {
		return 0, false
	}

	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      f.face,
		Size:      fixed.Int26_6(f.UnitsPerEm() * 64),
		Script:    language.LookupScript(runes[0]),
		Language:  language.NewLanguage("en"),
	}
	output := f.shaper.Shape(input)

	if len(output.Glyphs) != 1 {
		return 0, false
	}
	gid := output.Glyphs[0].GlyphID
	if gid == 0 {
		return 0, false
	}
	return GlyphID(gid), true
}

// Outline implements Font.Outline.
func (f *gotextFont) Outline(gid GlyphID) ([]Segment, error) {
	switch data := f.face.GlyphData(font.GID(gid)).(type) {
	case font.GlyphOutline:
		if len(data.Segments) == 0 {
			return nil, ErrMissingGlyph
		}
		return convertGoTextSegments(data.Segments), nil
	case nil:
		return nil, ErrMissingGlyph
	default:
		return nil, &DrawError{GID: gid, Err: fmt.Errorf("glyph data %T is not an outline", data)}
	}
}

// Close implements Font.Close.
func (f *gotextFont) Close() error {
	f.face = nil
	return nil
}

// convertGoTextSegments normalizes typesetting segments.
// Coordinates are already Y-up font units.
func convertGoTextSegments(segs []font.Segment) []Segment {
	var b segmentBuilder
	for _, seg := range segs {
		switch seg.Op {
		case ot.SegmentOpMoveTo:
			b.moveTo(segPoint(seg.Args[0]))
		case ot.SegmentOpLineTo:
			b.lineTo(segPoint(seg.Args[0]))
		case ot.SegmentOpQuadTo:
			b.quadTo(segPoint(seg.Args[0]), segPoint(seg.Args[1]))
		case ot.SegmentOpCubeTo:
			b.cubeTo(segPoint(seg.Args[0]), segPoint(seg.Args[1]), segPoint(seg.Args[2]))
		}
	}
	return b.finish()
}

// segPoint converts a typesetting segment point to a geom.Point.
func segPoint(p font.SegmentPoint) geom.Point {
	return geom.Pt(float64(p.X), float64(p.Y))
}
