// Package iconmotion turns a font glyph into an animated vector icon in a
// Lottie (bodymovin) JSON document.
//
// # Overview
//
// The pipeline loads a font, extracts one glyph outline, fits it into the
// placeholder region of a Lottie template and attaches a synthesized
// animation:
//
//	doc, err := iconmotion.Generate(fontData, 'A', iconmotion.Options{
//		Animation: motion.PulseWhole,
//	})
//	if err != nil {
//		// ...
//	}
//	doc.Save("output.json")
//
// Templates are ordinary Lottie documents containing one or more groups
// named "placeholder". Splicing replaces the placeholder content with the
// glyph shapes, scaled to fit the region the placeholder covered, and keeps
// everything else in the document untouched.
//
// # Packages
//
// The library is organized into:
//   - geom: points, rectangles, affine transforms and cubic bezier math
//   - fonts: font parsing backends and glyph outline extraction
//   - outline: subpath collection, fill classification and part grouping
//   - lottie: the bodymovin document model
//   - motion: animation synthesis (pulse and twirl, whole icon or per part)
//
// # Coordinate Systems
//
// Fonts draw Y-up in design units; Lottie documents draw Y-down with the
// origin at the top left. MapBox builds the mirror-and-fit transform between
// the two, and all geometry downstream of collection works in destination
// coordinates.
//
// # Logging
//
// The package produces no log output by default. Call SetLogger to observe
// pipeline progress and recoverable drops such as orphan holes.
package iconmotion

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
