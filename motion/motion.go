// Package motion synthesizes the animated transforms attached to
// generated icon content: pulse (scale) and twirl (rotation), each in a
// whole-icon variant and a per-part variant where parts animate offset
// in time.
package motion

import (
	"errors"
	"fmt"

	"github.com/gogpu/iconmotion/geom"
	"github.com/gogpu/iconmotion/lottie"
)

// ErrInvalidWindow is returned when an animation window ends at or
// before its start.
var ErrInvalidWindow = errors.New("motion: animation window end must be after start")

// Kind selects an animation.
type Kind int

const (
	// None leaves the shapes static.
	None Kind = iota

	// PulseWhole scales the whole icon up and back once.
	PulseWhole

	// PulseParts pulses each icon part, offset in time by part index.
	PulseParts

	// TwirlWhole spins the whole icon through a full turn.
	TwirlWhole

	// TwirlParts spins each icon part, offset in time by part index.
	TwirlParts
)

var kindNames = map[string]Kind{
	"none":        None,
	"pulse-whole": PulseWhole,
	"pulse-parts": PulseParts,
	"twirl-whole": TwirlWhole,
	"twirl-parts": TwirlParts,
}

// ParseKind resolves an animation name from the command surface.
func ParseKind(name string) (Kind, error) {
	if k, ok := kindNames[name]; ok {
		return k, nil
	}
	return None, fmt.Errorf("motion: unknown animation %q (want none, pulse-whole, pulse-parts, twirl-whole or twirl-parts)", name)
}

// String returns the animation name.
func (k Kind) String() string {
	switch k {
	case None:
		return "none"
	case PulseWhole:
		return "pulse-whole"
	case PulseParts:
		return "pulse-parts"
	case TwirlWhole:
		return "twirl-whole"
	case TwirlParts:
		return "twirl-parts"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Part is one group of shapes animated as a unit. Bounds is the union
// of the shapes' tight bounding boxes and centers the part's transform.
type Part struct {
	Shapes []*lottie.Path
	Bounds geom.Rect
}

// Animate builds the shape items that replace a placeholder: the bare
// paths for None, otherwise one group per animated unit holding its
// paths, a fill and the synthesized transform. start and end are the
// enclosing layer's in and out points in frames.
func (k Kind) Animate(start, end float64, parts []Part) ([]lottie.AnyShape, error) {
	if k == None {
		var out []lottie.AnyShape
		for _, part := range parts {
			for _, p := range part.Shapes {
				out = append(out, p)
			}
		}
		return out, nil
	}
	if end <= start {
		return nil, ErrInvalidWindow
	}

	switch k {
	case PulseWhole:
		return []lottie.AnyShape{pulse(start, end, 0, merge(parts))}, nil
	case PulseParts:
		out := make([]lottie.AnyShape, len(parts))
		for i, part := range parts {
			out[i] = pulse(start, end, i, part)
		}
		return out, nil
	case TwirlWhole:
		return []lottie.AnyShape{twirl(start, end, 0, merge(parts))}, nil
	case TwirlParts:
		out := make([]lottie.AnyShape, len(parts))
		for i, part := range parts {
			out[i] = twirl(start, end, i, part)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("motion: unknown animation kind %d", int(k))
	}
}

// merge flattens parts into a single whole-icon part.
func merge(parts []Part) Part {
	var whole Part
	for i, part := range parts {
		whole.Shapes = append(whole.Shapes, part.Shapes...)
		if i == 0 {
			whole.Bounds = part.Bounds
		} else {
			whole.Bounds = whole.Bounds.Union(part.Bounds)
		}
	}
	return whole
}

// pulse scales the part 100 -> 150 -> 100 percent over two time units,
// offset by one unit per part index so parts ripple.
func pulse(start, end float64, idx int, part Part) *lottie.Group {
	unit := 0.2 * (end - start)
	i := float64(idx)

	tr := centeredTransform(part)
	tr.Scale = &lottie.Property{Keyframes: []lottie.Keyframe{
		keyframe(unit*i, 100, 100),
		keyframe(unit*(i+1), 150, 150),
		keyframe(unit*(i+2), 100, 100),
	}}
	return groupWithTransform(part, tr)
}

// twirl rotates the part through a full turn over two time units,
// offset by one unit per part index.
func twirl(start, end float64, idx int, part Part) *lottie.Group {
	unit := 0.2 * (end - start)
	i := float64(idx)

	tr := centeredTransform(part)
	tr.Rotation = &lottie.Property{Keyframes: []lottie.Keyframe{
		keyframe(unit*i, 0),
		keyframe(unit*(i+2), 360),
	}}
	return groupWithTransform(part, tr)
}

// centeredTransform returns a transform with anchor and position both
// at the part's center. They must match or the animation orbits the
// group origin instead of transforming in place.
func centeredTransform(part Part) *lottie.Transform {
	tr := lottie.NewTransform()
	c := part.Bounds.Center()
	tr.Anchor = lottie.FixedVec(c.X, c.Y)
	tr.Position = lottie.FixedVec(c.X, c.Y)
	return tr
}

// keyframe returns a keyframe at t with fixed ease handles. Players
// render flat interpolation badly, so every keyframe carries them.
func keyframe(t float64, values ...float64) lottie.Keyframe {
	return lottie.Keyframe{
		Time:    t,
		Start:   values,
		InEase:  lottie.NewEase(0.6, 1.0),
		OutEase: lottie.NewEase(0.4, 0.0),
	}
}

// groupWithTransform assembles the conventional [paths, fill,
// transform] group players expect.
func groupWithTransform(part Part, tr *lottie.Transform) *lottie.Group {
	g := lottie.NewGroup()
	for _, p := range part.Shapes {
		g.Items = append(g.Items, p)
	}
	g.Items = append(g.Items, lottie.NewFill(1, 0, 0, 1), tr)
	return g
}
