// Command lottiefmt pretty-prints Lottie documents. Each argument is
// decoded and written back as <name>-pretty.<ext>, leaving the
// original untouched. Fields the decoder does not model round-trip
// unchanged, so the output stays loadable by players.
package main

import (
	"flag"
	"log"
	"path/filepath"
	"strings"

	"github.com/gogpu/iconmotion/lottie"
)

func main() {
	flag.Parse()
	if flag.NArg() == 0 {
		log.Fatal("usage: lottiefmt file.json ...")
	}
	for _, path := range flag.Args() {
		doc, err := lottie.Load(path)
		if err != nil {
			log.Fatalf("load %s: %v", path, err)
		}
		ext := filepath.Ext(path)
		out := strings.TrimSuffix(path, ext) + "-pretty" + ext
		if err := doc.Save(out); err != nil {
			log.Fatalf("save %s: %v", out, err)
		}
		log.Printf("wrote %s", out)
	}
}
