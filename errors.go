package iconmotion

import (
	"errors"
	"fmt"

	"github.com/gogpu/iconmotion/geom"
)

// ErrNoPlaceholder is returned when splicing walks an entire document
// without finding a placeholder to replace.
var ErrNoPlaceholder = errors.New("iconmotion: no placeholder group in template")

// InvalidBoxError reports a degenerate box where a positive area is
// required.
type InvalidBoxError struct {
	// Name identifies the box ("source" or "destination").
	Name string
	// Box is the offending rectangle.
	Box geom.Rect
}

func (e *InvalidBoxError) Error() string {
	return fmt.Sprintf("iconmotion: %s box (%g,%g)-(%g,%g) must have positive width and height",
		e.Name, e.Box.Min.X, e.Box.Min.Y, e.Box.Max.X, e.Box.Max.Y)
}

// OrphanError reports unfilled subpaths that no filled subpath contains.
// Generation drops orphans with a warning by default; Options.StrictOrphans
// escalates them to this error.
type OrphanError struct {
	// Orphans is the number of dropped subpaths.
	Orphans int
}

func (e *OrphanError) Error() string {
	return fmt.Sprintf("iconmotion: %d hole subpath(s) without a containing filled subpath", e.Orphans)
}
