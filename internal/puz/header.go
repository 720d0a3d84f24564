package puz

import (
	"encoding/binary"
	"fmt"
)

// HeaderSize is the length of the fixed header. The solution board starts
// right after it.
const HeaderSize = 0x34

// Header holds the scalar fields at the start of a .puz file. Checksums and
// the magic string are surfaced as read and never validated.
type Header struct {
	Checksum            uint16
	Magic               [12]byte
	CIBChecksum         uint16
	MaskedLowChecksums  [4]byte
	MaskedHighChecksums [4]byte
	Version             [4]byte
	Reserved1C          [2]byte
	ScrambledChecksum   uint16
	Reserved20          [12]byte
	Width               uint8
	Height              uint8
	NumClues            uint16
	UnknownBitmask      uint16
	ScrambledTag        uint16
}

// Cells returns width*height.
func (h Header) Cells() int {
	return int(h.Width) * int(h.Height)
}

func readHeader(data []byte) (Header, error) {
	var h Header
	if len(data) < HeaderSize {
		return h, fmt.Errorf("%w: header needs %d bytes, have %d", ErrTruncatedFile, HeaderSize, len(data))
	}

	le := binary.LittleEndian
	h.Checksum = le.Uint16(data[0x00:])
	copy(h.Magic[:], data[0x02:0x0E])
	h.CIBChecksum = le.Uint16(data[0x0E:])
	copy(h.MaskedLowChecksums[:], data[0x10:0x14])
	copy(h.MaskedHighChecksums[:], data[0x14:0x18])
	copy(h.Version[:], data[0x18:0x1C])
	copy(h.Reserved1C[:], data[0x1C:0x1E])
	h.ScrambledChecksum = le.Uint16(data[0x1E:])
	copy(h.Reserved20[:], data[0x20:0x2C])
	h.Width = data[0x2C]
	h.Height = data[0x2D]
	h.NumClues = le.Uint16(data[0x2E:])
	h.UnknownBitmask = le.Uint16(data[0x30:])
	h.ScrambledTag = le.Uint16(data[0x32:])

	if h.Width == 0 || h.Height == 0 {
		return h, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, h.Width, h.Height)
	}
	return h, nil
}
