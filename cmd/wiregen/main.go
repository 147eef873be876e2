package main

import (
	"bytes"
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/openmq/wirekit/internal/codegen"
	"github.com/openmq/wirekit/internal/schema"
)

func main() {
	schemaPath := flag.String("schema", "schema/wire-v1.toml", "schema file to generate from")
	output := flag.String("output", ".", "repository root to write generated files under")
	check := flag.Bool("check", false, "verify committed files match the schema instead of writing")
	flag.Parse()

	s, err := schema.Load(*schemaPath)
	if err != nil {
		log.Fatal(err)
	}

	gen := codegen.New(s, *schemaPath)

	if *check {
		files, err := gen.Files()
		if err != nil {
			log.Fatal(err)
		}
		stale := 0
		for _, f := range files {
			disk, err := os.ReadFile(filepath.Join(*output, f.Path))
			if err != nil {
				log.Printf("missing: %s", f.Path)
				stale++
				continue
			}
			if !bytes.Equal(disk, f.Data) {
				log.Printf("stale: %s", f.Path)
				stale++
			}
		}
		if stale > 0 {
			log.Fatalf("%d generated file(s) out of date; rerun wiregen", stale)
		}
		log.Printf("Verified %d generated files against %s", len(files), *schemaPath)
		return
	}

	if err := gen.WriteFiles(*output); err != nil {
		log.Fatal(err)
	}
	log.Printf("Generated wire format v%d sources for %d command types", s.Version, len(s.Commands))
}
