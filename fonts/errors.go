package fonts

import (
	"errors"
	"fmt"
)

// Sentinel errors for fonts package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("fonts: empty font data")

	// ErrMissingGlyph is returned when a glyph does not exist or has no
	// outline contours.
	ErrMissingGlyph = errors.New("fonts: missing glyph")
)

// DrawError is returned when a backend fails to extract an outline.
type DrawError struct {
	GID GlyphID
	Err error
}

func (e *DrawError) Error() string {
	return fmt.Sprintf("fonts: draw glyph %d: %v", e.GID, e.Err)
}

func (e *DrawError) Unwrap() error {
	return e.Err
}
