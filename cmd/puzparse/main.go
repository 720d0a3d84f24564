package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"puzparse/internal/puz"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	indent := flag.Bool("indent", false, "pretty-print the JSON output")
	full := flag.Bool("full", false, "include copyright, notes and header fields")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: puzparse [-indent] [-full] <file.puz>\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	path := flag.Arg(0)

	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatal().Err(err).Str("file", path).Msg("reading puzzle")
	}

	f, err := puz.Decode(data)
	if err != nil {
		log.Fatal().Err(err).Str("file", path).Msg("decoding puzzle")
	}
	p, err := f.Puzzle()
	if err != nil {
		log.Fatal().Err(err).Str("file", path).Msg("assembling puzzle")
	}

	var out any = p
	if *full {
		out = struct {
			*puz.Puzzle
			Copyright string `json:"copyright"`
			Notes     string `json:"notes"`
			Version   string `json:"version"`
			NumClues  uint16 `json:"numClues"`
			Checksum  uint16 `json:"checksum"`
			Scrambled bool   `json:"scrambled"`
		}{
			Puzzle:    p,
			Copyright: f.Copyright,
			Notes:     f.Notes,
			Version:   trimNul(f.Header.Version[:]),
			NumClues:  f.Header.NumClues,
			Checksum:  f.Header.Checksum,
			Scrambled: f.Header.ScrambledTag != 0,
		}
	}

	enc := json.NewEncoder(os.Stdout)
	if *indent {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(out); err != nil {
		log.Fatal().Err(err).Msg("writing output")
	}
}

func trimNul(b []byte) string {
	for i, c := range b {
		if c == 0 {
			return string(b[:i])
		}
	}
	return string(b)
}
