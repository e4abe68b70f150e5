package fonts

import (
	"errors"
	"fmt"

	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/iconmotion/geom"
)

// ximageFont implements Font using golang.org/x/image/font/opentype.
type ximageFont struct {
	font *opentype.Font
	upem int

	// buffer is reused across sfnt calls to avoid allocations.
	buffer sfnt.Buffer
}

// parseXImage is the Loader for the "ximage" backend.
func parseXImage(data []byte) (Font, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("fonts: failed to parse font: %w", err)
	}
	return &ximageFont{font: f, upem: int(f.UnitsPerEm())}, nil
}

// UnitsPerEm implements Font.UnitsPerEm.
func (f *ximageFont) UnitsPerEm() int {
	return f.upem
}

// GlyphForRune implements Font.GlyphForRune.
func (f *ximageFont) GlyphForRune(r rune) (GlyphID, bool) {
	idx, err := f.font.GlyphIndex(&f.buffer, r)
	if err != nil || idx == 0 {
		return 0, false
	}
	return GlyphID(idx), true
}

// GlyphForName implements Font.GlyphForName.
// The sfnt backend has no ligature substitution, so name lookup is
// unsupported.
func (f *ximageFont) GlyphForName(string) (GlyphID, bool) {
	return 0, false
}

// Outline implements Font.Outline.
func (f *ximageFont) Outline(gid GlyphID) ([]Segment, error) {
	// Loading at ppem == upem with no hinting yields font design units.
	ppem := fixed.Int26_6(f.upem * 64)
	segments, err := f.font.LoadGlyph(&f.buffer, sfnt.GlyphIndex(gid), ppem, nil)
	if err != nil {
		if errors.Is(err, sfnt.ErrNotFound) {
			return nil, ErrMissingGlyph
		}
		return nil, &DrawError{GID: gid, Err: err}
	}
	if len(segments) == 0 {
		return nil, ErrMissingGlyph
	}

	var b segmentBuilder
	for _, seg := range segments {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			b.moveTo(fixedPoint(seg.Args[0]))
		case sfnt.SegmentOpLineTo:
			b.lineTo(fixedPoint(seg.Args[0]))
		case sfnt.SegmentOpQuadTo:
			b.quadTo(fixedPoint(seg.Args[0]), fixedPoint(seg.Args[1]))
		case sfnt.SegmentOpCubeTo:
			b.cubeTo(fixedPoint(seg.Args[0]), fixedPoint(seg.Args[1]), fixedPoint(seg.Args[2]))
		}
	}
	return b.finish(), nil
}

// Close implements Font.Close.
func (f *ximageFont) Close() error {
	f.font = nil
	return nil
}

// fixedPoint converts a fixed.Point26_6 to a geom.Point in font units.
// sfnt emits Y-down coordinates; the Y axis is flipped back to the
// Y-up design space.
func fixedPoint(p fixed.Point26_6) geom.Point {
	return geom.Pt(float64(p.X)/64.0, -float64(p.Y)/64.0)
}
