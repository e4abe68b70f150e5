package iconmotion

import (
	"errors"
	"fmt"

	"github.com/gogpu/iconmotion/fonts"
	"github.com/gogpu/iconmotion/geom"
	"github.com/gogpu/iconmotion/lottie"
	"github.com/gogpu/iconmotion/motion"
)

// Options configures generation.
type Options struct {
	// Animation selects the synthesized motion. The zero value is
	// motion.None: static shapes.
	Animation motion.Kind

	// TemplatePath names a Lottie document whose placeholders receive the
	// glyph. Empty uses the built-in single-placeholder template sized to
	// the font's em square.
	TemplatePath string

	// StrictOrphans turns dropped orphan holes into an OrphanError instead
	// of a warning.
	StrictOrphans bool

	// Backend selects the font backend by registry name ("ximage",
	// "gotext"). Empty uses the default.
	Backend string
}

// Generate renders the glyph a font maps to codepoint as an animated
// Lottie document.
func Generate(fontData []byte, codepoint rune, opts Options) (*lottie.Bodymovin, error) {
	f, err := fonts.LoadBackend(opts.Backend, fontData)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	gid, ok := f.GlyphForRune(codepoint)
	if !ok {
		return nil, fmt.Errorf("iconmotion: codepoint %#U: %w", codepoint, fonts.ErrMissingGlyph)
	}
	return generateGlyph(f, gid, opts)
}

// GenerateNamed renders the glyph an icon font associates with name, such
// as "arrow_back". Name lookup resolves ligatures through shaping, which
// requires a backend with that capability (Options.Backend "gotext").
func GenerateNamed(fontData []byte, name string, opts Options) (*lottie.Bodymovin, error) {
	f, err := fonts.LoadBackend(opts.Backend, fontData)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	gid, ok := f.GlyphForName(name)
	if !ok {
		return nil, fmt.Errorf("iconmotion: icon %q: %w", name, fonts.ErrMissingGlyph)
	}
	return generateGlyph(f, gid, opts)
}

// GenerateAll renders one document per codepoint. A failing codepoint does
// not stop the batch: successes are returned keyed by codepoint and the
// returned error joins every per-codepoint failure.
func GenerateAll(fontData []byte, codepoints []rune, opts Options) (map[rune]*lottie.Bodymovin, error) {
	f, err := fonts.LoadBackend(opts.Backend, fontData)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	docs := make(map[rune]*lottie.Bodymovin, len(codepoints))
	var errs []error
	for _, cp := range codepoints {
		doc, err := generateRune(f, cp, opts)
		if err != nil {
			errs = append(errs, fmt.Errorf("codepoint %#U: %w", cp, err))
			Logger().Warn("skipping codepoint", "codepoint", fmt.Sprintf("%#U", cp), "err", err)
			continue
		}
		docs[cp] = doc
	}
	return docs, errors.Join(errs...)
}

func generateRune(f fonts.Font, codepoint rune, opts Options) (*lottie.Bodymovin, error) {
	gid, ok := f.GlyphForRune(codepoint)
	if !ok {
		return nil, fonts.ErrMissingGlyph
	}
	return generateGlyph(f, gid, opts)
}

// generateGlyph builds the document for one resolved glyph: load or build
// the template, then splice the glyph into its placeholders.
func generateGlyph(f fonts.Font, gid fonts.GlyphID, opts Options) (*lottie.Bodymovin, error) {
	segments, err := f.Outline(gid)
	if err != nil {
		return nil, err
	}
	glyph := &fonts.Glyph{ID: gid, Segments: segments}

	upem := float64(f.UnitsPerEm())
	drawbox := geom.NewRect(geom.Pt(0, 0), geom.Pt(upem, upem))

	doc, err := loadTemplate(opts.TemplatePath, upem)
	if err != nil {
		return nil, err
	}
	if err := replaceGlyph(doc, drawbox, glyph, opts.Animation, opts.StrictOrphans); err != nil {
		return nil, err
	}
	return doc, nil
}

func loadTemplate(path string, upem float64) (*lottie.Bodymovin, error) {
	if path == "" {
		return lottie.DefaultTemplate(upem, upem), nil
	}
	return lottie.Load(path)
}
