// Command iconmotion turns font glyphs into animated Lottie documents.
//
// A single glyph, picked by codepoint, animated with a staggered pulse:
//
//	iconmotion -font MaterialSymbols.ttf -codepoint 0xe88a -animation pulse-parts -out home.json
//
// Batches write one document per codepoint, the codepoint spliced into
// the output name:
//
//	iconmotion -font icons.ttf -codepoint 0xe88a,0xe5ca -animation twirl-whole -out icon.json
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gogpu/iconmotion"
	"github.com/gogpu/iconmotion/fonts"
	"github.com/gogpu/iconmotion/geom"
	"github.com/gogpu/iconmotion/internal/debugsvg"
	"github.com/gogpu/iconmotion/lottie"
	"github.com/gogpu/iconmotion/motion"
)

func main() {
	var (
		fontPath   = flag.String("font", "", "font file to take glyphs from (required)")
		codepoints = flag.String("codepoint", "", "codepoint(s) to animate, 0x-prefixed hex, comma separated")
		icon       = flag.String("icon", "", "icon glyph name to animate (needs the gotext backend)")
		animation  = flag.String("animation", "", "animation to apply: none, pulse-whole, pulse-parts, twirl-whole or twirl-parts (required)")
		template   = flag.String("template", "", "Lottie template with placeholder groups (default built-in)")
		outPath    = flag.String("out", "output.json", "output file; batches insert the codepoint before the extension")
		backend    = flag.String("backend", "", "font backend: ximage or gotext (default ximage)")
		debug      = flag.Bool("debug", false, "also write an annotated SVG next to each output")
		verbose    = flag.Bool("v", false, "log pipeline details to stderr")
	)
	flag.Parse()

	if *verbose {
		iconmotion.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if *fontPath == "" {
		log.Fatal("missing required flag -font")
	}
	if (*codepoints == "") == (*icon == "") {
		log.Fatal("need exactly one of -codepoint or -icon")
	}
	kind, err := motion.ParseKind(*animation)
	if err != nil {
		log.Fatal(err)
	}

	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(*fontPath)
	if err != nil {
		log.Fatalf("read font: %v", err)
	}

	opts := iconmotion.Options{
		Animation:    kind,
		TemplatePath: *template,
		Backend:      *backend,
	}

	// The debug SVG needs the raw outline, so it reparses the font with
	// the same backend the generator uses.
	var face fonts.Font
	if *debug {
		face, err = fonts.LoadBackend(*backend, data)
		if err != nil {
			log.Fatalf("load font: %v", err)
		}
		defer face.Close()
	}

	if *icon != "" {
		doc, err := iconmotion.GenerateNamed(data, *icon, opts)
		if err != nil {
			log.Fatalf("generate %s: %v", *icon, err)
		}
		save(doc, *outPath)
		if face != nil {
			gid, ok := face.GlyphForName(*icon)
			if !ok {
				log.Fatalf("debug svg: no glyph named %q", *icon)
			}
			writeDebugSVG(face, gid, *outPath)
		}
		return
	}

	runes, err := parseCodepoints(*codepoints)
	if err != nil {
		log.Fatal(err)
	}

	if len(runes) == 1 {
		doc, err := iconmotion.Generate(data, runes[0], opts)
		if err != nil {
			log.Fatalf("generate %#U: %v", runes[0], err)
		}
		save(doc, *outPath)
		debugRune(face, runes[0], *outPath)
		return
	}

	docs, err := iconmotion.GenerateAll(data, runes, opts)
	if len(docs) == 0 {
		if err != nil {
			log.Fatalf("generate: %v", err)
		}
		log.Fatal("no documents generated")
	}
	if err != nil {
		log.Printf("warning: %v", err)
	}
	for _, cp := range runes {
		doc, ok := docs[cp]
		if !ok {
			continue
		}
		path := batchPath(*outPath, cp)
		save(doc, path)
		debugRune(face, cp, path)
	}
}

func save(doc *lottie.Bodymovin, path string) {
	if err := doc.Save(path); err != nil {
		log.Fatalf("save %s: %v", path, err)
	}
	log.Printf("wrote %s", path)
}

// parseCodepoints splits a comma separated list of 0x-prefixed hex
// codepoints.
func parseCodepoints(s string) ([]rune, error) {
	var runes []rune
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if !strings.HasPrefix(part, "0x") && !strings.HasPrefix(part, "0X") {
			return nil, fmt.Errorf("codepoint %q must start with 0x", part)
		}
		v, err := strconv.ParseUint(part[2:], 16, 32)
		if err != nil {
			return nil, fmt.Errorf("codepoint %q: %v", part, err)
		}
		runes = append(runes, rune(v))
	}
	return runes, nil
}

// batchPath splices the codepoint into the output name, so icon.json
// becomes icon-e88a.json.
func batchPath(out string, cp rune) string {
	ext := filepath.Ext(out)
	return fmt.Sprintf("%s-%04x%s", strings.TrimSuffix(out, ext), cp, ext)
}

func debugRune(face fonts.Font, cp rune, outPath string) {
	if face == nil {
		return
	}
	gid, ok := face.GlyphForRune(cp)
	if !ok {
		log.Fatalf("debug svg: no glyph for %#U", cp)
	}
	writeDebugSVG(face, gid, outPath)
}

// writeDebugSVG renders the glyph's annotated outline next to the
// Lottie output, with the extension swapped for .svg.
func writeDebugSVG(face fonts.Font, gid fonts.GlyphID, outPath string) {
	segs, err := face.Outline(gid)
	if err != nil {
		log.Fatalf("debug svg: %v", err)
	}
	upem := float64(face.UnitsPerEm())
	svg := debugsvg.Render(geom.NewRect(geom.Pt(0, 0), geom.Pt(upem, upem)), segs)
	path := strings.TrimSuffix(outPath, filepath.Ext(outPath)) + ".svg"
	if err := os.WriteFile(path, []byte(svg), 0o600); err != nil {
		log.Fatalf("write %s: %v", path, err)
	}
	log.Printf("wrote %s", path)
}
