package lottie

// PlaceholderName marks template groups that splicing replaces with
// generated glyph content.
const PlaceholderName = "placeholder"

// DefaultTemplate returns a minimal single-layer document: a one second,
// 60 fps animation whose only content is a placeholder group covering the
// w x h canvas. The group follows the de facto player ordering of
// [shape, fill, transform].
func DefaultTemplate(w, h float64) *Bodymovin {
	placeholder := NewGroup()
	placeholder.Name = PlaceholderName
	placeholder.Items = ShapeList{
		&Rect{
			Ty:       TypeRect,
			Position: FixedVec(0, 0),
			Size:     FixedVec(w, h),
		},
		NewFill(0, 0, 0, 1),
		NewTransform(),
	}

	return &Bodymovin{
		Version:   "5.5.2",
		FrameRate: 60,
		InPoint:   0,
		OutPoint:  60,
		Width:     int(w),
		Height:    int(h),
		Layers: []*Layer{
			NewShapeLayer(0, 60, ShapeList{placeholder}),
		},
	}
}
