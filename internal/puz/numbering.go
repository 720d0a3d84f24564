package puz

import (
	"fmt"
	"strconv"
)

type Direction string

const (
	DirectionAcross Direction = "across"
	DirectionDown   Direction = "down"
)

// ClueEntry pairs a clue number with the raw clue bytes consumed for it.
type ClueEntry struct {
	Number    int
	Direction Direction
	Text      []byte
}

// Format renders "{number}. {text}" and transcodes the whole line.
func (c ClueEntry) Format() (string, error) {
	line := strconv.AppendInt(nil, int64(c.Number), 10)
	line = append(line, ". "...)
	line = append(line, c.Text...)
	return decodeText(line)
}

// Numbering is the result of walking a board: one number per cell (0 for
// none) and the across/down clues in the order they were assigned.
type Numbering struct {
	GridNums []int
	Across   []ClueEntry
	Down     []ClueEntry
}

// numberState is threaded through every step of the walk.
type numberState struct {
	next   int
	cursor int
}

func startsAcross(b Board, x, y int) bool {
	return b.IsBlack(x-1, y) && !b.IsBlack(x+1, y)
}

func startsDown(b Board, x, y int) bool {
	return b.IsBlack(x, y-1) && !b.IsBlack(x, y+1)
}

// Number walks b row-major and assigns crossword numbers, consuming clues in
// walk order with across taken before down at each cell. It fails if the walk
// needs a different number of clues than supplied.
func Number(b Board, clues [][]byte) (Numbering, error) {
	n := Numbering{
		GridNums: make([]int, b.Width*b.Height),
		Across:   []ClueEntry{},
		Down:     []ClueEntry{},
	}

	st := numberState{next: 1}
	var err error
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			if st, err = numberCell(st, b, clues, x, y, &n); err != nil {
				return Numbering{}, err
			}
		}
	}

	if st.cursor != len(clues) {
		return Numbering{}, fmt.Errorf("%w: grid uses %d clues, file has %d", ErrMalformedStringSection, st.cursor, len(clues))
	}
	return n, nil
}

func numberCell(st numberState, b Board, clues [][]byte, x, y int, n *Numbering) (numberState, error) {
	if b.IsBlack(x, y) {
		return st, nil
	}

	take := func(dir Direction) (ClueEntry, error) {
		if st.cursor >= len(clues) {
			return ClueEntry{}, fmt.Errorf("%w: ran out of clues at %d %s", ErrMalformedStringSection, st.next, dir)
		}
		c := ClueEntry{Number: st.next, Direction: dir, Text: clues[st.cursor]}
		st.cursor++
		return c, nil
	}

	assigned := false
	if startsAcross(b, x, y) {
		c, err := take(DirectionAcross)
		if err != nil {
			return st, err
		}
		n.Across = append(n.Across, c)
		assigned = true
	}
	if startsDown(b, x, y) {
		c, err := take(DirectionDown)
		if err != nil {
			return st, err
		}
		n.Down = append(n.Down, c)
		assigned = true
	}

	if assigned {
		n.GridNums[b.Index(x, y)] = st.next
		st.next++
	}
	return st, nil
}
