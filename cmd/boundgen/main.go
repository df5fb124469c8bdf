// Command boundgen checks bounded literal declarations at build time
// and emits Go source that constructs them without runtime validation.
//
// It reads a TOML manifest of string and byte-slice declarations, each
// with a name, a bound, and (for strings) an encoding. If any
// declaration's logical length exceeds its bound, boundgen exits
// non-zero, which fails the build when run under go:generate:
//
//	//go:generate go run github.com/logicossoftware/go-maxlen/cmd/boundgen -manifest bounds.toml
//
// With -validate, boundgen checks the manifest without writing output.
package main

import (
	"flag"
	"os"

	"github.com/rs/zerolog"
)

func main() {
	manifestPath := flag.String("manifest", "bounds.toml", "path to the TOML declaration manifest")
	output := flag.String("output", "", "output path (overrides the manifest's output field)")
	validate := flag.Bool("validate", false, "validate the manifest without writing output")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	m, err := loadManifest(*manifestPath)
	if err != nil {
		log.Fatal().Err(err).Str("manifest", *manifestPath).Msg("cannot load manifest")
	}
	if *output != "" {
		m.Output = *output
	}

	if err := m.validate(); err != nil {
		log.Fatal().Err(err).Str("manifest", *manifestPath).Msg("declaration rejected")
	}
	if *validate {
		log.Info().
			Str("manifest", *manifestPath).
			Int("strings", len(m.Strings)).
			Int("bytes", len(m.Bytes)).
			Msg("manifest valid")
		return
	}

	src, err := generate(m)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot generate source")
	}
	if err := os.WriteFile(m.Output, src, 0o644); err != nil {
		log.Fatal().Err(err).Str("output", m.Output).Msg("cannot write output")
	}
	log.Info().
		Str("output", m.Output).
		Int("strings", len(m.Strings)).
		Int("bytes", len(m.Bytes)).
		Msg("generated")
}
