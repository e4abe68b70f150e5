package iconmotion

import "github.com/gogpu/iconmotion/geom"

// MapBox returns the affine transform carrying src onto dst with the Y axis
// mirrored: fonts draw Y-up while Lottie documents draw Y-down, so content
// must flip vertically to land upright. Both boxes need positive width and
// height, otherwise an InvalidBoxError is returned.
//
// The mirror makes the determinant negative. Nothing downstream relies on
// that sign; winding direction is derived from signed area in destination
// coordinates after the transform is applied.
func MapBox(src, dst geom.Rect) (geom.Matrix, error) {
	if src.Width() <= 0 || src.Height() <= 0 {
		return geom.Matrix{}, &InvalidBoxError{Name: "source", Box: src}
	}
	if dst.Width() <= 0 || dst.Height() <= 0 {
		return geom.Matrix{}, &InvalidBoxError{Name: "destination", Box: dst}
	}

	sx := dst.Width() / src.Width()
	sy := dst.Height() / src.Height()

	// Move src to touch the origin, flip, scale to dst size. The flipped,
	// scaled box spans (0,-dst.Height())-(dst.Width(),0); the final translate
	// lines its min corner up with dst's.
	m := geom.Translate(-src.Min.X, -src.Min.Y)
	m = geom.Scale(1, -1).Multiply(m)
	m = geom.Scale(sx, sy).Multiply(m)
	m = geom.Translate(dst.Min.X, dst.Min.Y+dst.Height()).Multiply(m)
	return m, nil
}
