// Package puztest lays out .puz file bytes for tests and fixtures.
package puztest

import (
	"bytes"
	"encoding/binary"
)

// Builder describes a file by its raw fields. Zero values give a well-formed
// header with the standard magic and version.
type Builder struct {
	Width     uint8
	Height    uint8
	Solution  string
	Player    string
	Title     string
	Author    string
	Copyright string
	Clues     []string
	Notes     string

	// NumClues overrides len(Clues) in the header when non-nil.
	NumClues *uint16
	// Checksum and ScrambledTag land in the header unchanged.
	Checksum     uint16
	ScrambledTag uint16
}

// Bytes encodes the builder. Strings are written byte for byte, so callers
// pass Latin-1 text as "\xe9" style escapes.
func (b Builder) Bytes() []byte {
	var buf bytes.Buffer
	le := binary.LittleEndian

	numClues := uint16(len(b.Clues))
	if b.NumClues != nil {
		numClues = *b.NumClues
	}

	player := b.Player
	if player == "" {
		player = blankPlayer(b.Solution)
	}

	binary.Write(&buf, le, b.Checksum)     // 0x00 checksum
	buf.WriteString("ACROSS&DOWN\x00")     // 0x02 magic
	binary.Write(&buf, le, uint16(0))      // 0x0E cib checksum
	buf.Write(make([]byte, 8))             // 0x10 masked checksums
	buf.WriteString("1.3\x00")             // 0x18 version
	buf.Write(make([]byte, 2))             // 0x1C reserved
	binary.Write(&buf, le, uint16(0))      // 0x1E scrambled checksum
	buf.Write(make([]byte, 12))            // 0x20 reserved
	buf.Write([]byte{b.Width, b.Height})   // 0x2C
	binary.Write(&buf, le, numClues)       // 0x2E
	binary.Write(&buf, le, uint16(1))      // 0x30 bitmask
	binary.Write(&buf, le, b.ScrambledTag) // 0x32

	buf.WriteString(b.Solution)
	buf.WriteString(player)

	for _, s := range []string{b.Title, b.Author, b.Copyright} {
		buf.WriteString(s)
		buf.WriteByte(0)
	}
	for _, c := range b.Clues {
		buf.WriteString(c)
		buf.WriteByte(0)
	}
	buf.WriteString(b.Notes)
	buf.WriteByte(0)
	return buf.Bytes()
}

func blankPlayer(solution string) string {
	out := []byte(solution)
	for i, c := range out {
		if c != '.' {
			out[i] = '-'
		}
	}
	return string(out)
}

// Uint16 returns a pointer to v, for Builder.NumClues.
func Uint16(v uint16) *uint16 {
	return &v
}

// Sample is the 5x5 grid shipped as the manual-testing fixture.
func Sample() Builder {
	return Builder{
		Width:     5,
		Height:    5,
		Solution:  "ABCDE" + "F.G.H" + "IJKLM" + "N.O.P" + "QRSTU",
		Title:     "Sample Title",
		Author:    "Sample Author",
		Copyright: "Sample Copyright",
		Clues: []string{
			"First across", "First down", "Second down", "Third down",
			"Middle across", "Last across",
		},
		Notes: "Notes",
	}
}
