package puz

import (
	"fmt"
	"os"
)

// Puzzle is the decoded, display-ready crossword.
type Puzzle struct {
	Title    string   `json:"title"`
	Author   string   `json:"author"`
	Clues    Clues    `json:"clues"`
	Grid     []string `json:"grid"`
	GridNums []int    `json:"gridNums"`
	GridSize GridSize `json:"gridSize"`
}

type Clues struct {
	Across []string `json:"across"`
	Down   []string `json:"down"`
}

type GridSize struct {
	Columns int `json:"columns"`
	Rows    int `json:"rows"`
}

// File is everything decoded from a .puz file, including the pieces the
// Puzzle output leaves out.
type File struct {
	Header    Header
	Solution  Board
	Player    Board
	Title     string
	Author    string
	Copyright string
	Notes     string
	Numbering Numbering
}

// Decode decodes a whole .puz file held in memory. data is never modified;
// the boards in the result alias it.
func Decode(data []byte) (*File, error) {
	h, err := readHeader(data)
	if err != nil {
		return nil, err
	}

	solution, player, end, err := decodeBoards(data, h)
	if err != nil {
		return nil, err
	}

	strs, err := parseStrings(data[end:], int(h.NumClues))
	if err != nil {
		return nil, err
	}

	numbering, err := Number(solution, strs.Clues)
	if err != nil {
		return nil, err
	}

	return &File{
		Header:    h,
		Solution:  solution,
		Player:    player,
		Title:     strs.Title,
		Author:    strs.Author,
		Copyright: strs.Copyright,
		Notes:     strs.Notes,
		Numbering: numbering,
	}, nil
}

// Parse decodes data and assembles the Puzzle.
func Parse(data []byte) (*Puzzle, error) {
	f, err := Decode(data)
	if err != nil {
		return nil, err
	}
	return f.Puzzle()
}

// ParseFile reads path in one go and parses it.
func ParseFile(path string) (*Puzzle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return Parse(data)
}

// Puzzle assembles the output record.
func (f *File) Puzzle() (*Puzzle, error) {
	across, err := formatClues(f.Numbering.Across)
	if err != nil {
		return nil, err
	}
	down, err := formatClues(f.Numbering.Down)
	if err != nil {
		return nil, err
	}
	grid, err := gridChars(f.Solution.Cells)
	if err != nil {
		return nil, err
	}

	return &Puzzle{
		Title:    f.Title,
		Author:   f.Author,
		Clues:    Clues{Across: across, Down: down},
		Grid:     grid,
		GridNums: f.Numbering.GridNums,
		GridSize: GridSize{Columns: f.Solution.Width, Rows: f.Solution.Height},
	}, nil
}

func formatClues(entries []ClueEntry) ([]string, error) {
	out := make([]string, 0, len(entries))
	for _, c := range entries {
		s, err := c.Format()
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// gridChars returns one string per board byte, skipping ASCII whitespace.
func gridChars(cells []byte) ([]string, error) {
	out := make([]string, 0, len(cells))
	for _, c := range cells {
		switch c {
		case ' ', '\t', '\n', '\v', '\f', '\r':
			continue
		}
		s, err := decodeText([]byte{c})
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}
