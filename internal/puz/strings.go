package puz

import (
	"bytes"
	"fmt"

	"golang.org/x/text/encoding/charmap"
)

// Charset is the single-byte encoding every string in a .puz file uses.
var Charset = charmap.ISO8859_1

// decodeText is the one place raw file bytes become Unicode text.
func decodeText(raw []byte) (string, error) {
	out, err := Charset.NewDecoder().Bytes(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrEncoding, err)
	}
	return string(out), nil
}

type stringSection struct {
	Title     string
	Author    string
	Copyright string
	Clues     [][]byte
	Notes     string
}

// splitStrings cuts data into count NUL-terminated segments. A final segment
// running to the end of data without a terminator still counts. Bytes left
// after the last segment belong to extra sections and are ignored.
func splitStrings(data []byte, count int) ([][]byte, error) {
	segments := make([][]byte, 0, count)
	rest := data
	for len(segments) < count {
		if len(rest) == 0 {
			return nil, fmt.Errorf("%w: want %d strings, found %d", ErrMalformedStringSection, count, len(segments))
		}
		i := bytes.IndexByte(rest, 0)
		if i < 0 {
			segments = append(segments, rest)
			rest = nil
			continue
		}
		segments = append(segments, rest[:i])
		rest = rest[i+1:]
	}
	return segments, nil
}

func parseStrings(data []byte, numClues int) (stringSection, error) {
	var s stringSection
	segs, err := splitStrings(data, 3+numClues+1)
	if err != nil {
		return s, err
	}

	// title, author and copyright are trimmed; clues and notes are kept as-is.
	meta := make([]string, 3)
	for i := range meta {
		if meta[i], err = decodeText(bytes.TrimSpace(segs[i])); err != nil {
			return s, err
		}
	}
	s.Title, s.Author, s.Copyright = meta[0], meta[1], meta[2]

	s.Clues = segs[3 : 3+numClues]
	if s.Notes, err = decodeText(segs[3+numClues]); err != nil {
		return s, err
	}
	return s, nil
}
