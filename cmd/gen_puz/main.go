package main

import (
	"flag"
	"os"
	"path/filepath"

	"puzparse/internal/puz/puztest"

	"github.com/rs/zerolog/log"
)

func main() {
	out := flag.String("out", "internal/app/testdata/sample.puz", "where to write the sample puzzle")
	flag.Parse()

	if err := os.MkdirAll(filepath.Dir(*out), 0o755); err != nil {
		log.Fatal().Err(err).Send()
	}
	if err := os.WriteFile(*out, puztest.Sample().Bytes(), 0o644); err != nil {
		log.Fatal().Err(err).Send()
	}
	log.Info().Str("file", *out).Msg("sample puzzle written")
}
