package puz

import "fmt"

// BlackCell marks a non-playable square.
const BlackCell = '.'

// Board is a row-major grid of single-byte cell codes.
type Board struct {
	Width  int
	Height int
	Cells  []byte
}

func (b Board) Index(x, y int) int {
	return y*b.Width + x
}

// Location is the inverse of Index.
func (b Board) Location(idx int) (x, y int) {
	return idx % b.Width, idx / b.Width
}

// IsBlack reports whether (x, y) is a black cell. Anything outside the grid
// counts as black.
func (b Board) IsBlack(x, y int) bool {
	if x < 0 || x >= b.Width || y < 0 || y >= b.Height {
		return true
	}
	return b.Cells[b.Index(x, y)] == BlackCell
}

// decodeBoards slices the solution and player boards that follow the header
// and returns the offset of the string section.
func decodeBoards(data []byte, h Header) (solution, player Board, end int, err error) {
	n := h.Cells()
	end = HeaderSize + 2*n
	if len(data) < end {
		return solution, player, 0, fmt.Errorf("%w: boards need %d bytes, have %d", ErrTruncatedFile, 2*n, len(data)-HeaderSize)
	}

	w, ht := int(h.Width), int(h.Height)
	solution = Board{Width: w, Height: ht, Cells: data[HeaderSize : HeaderSize+n]}
	player = Board{Width: w, Height: ht, Cells: data[HeaderSize+n : end]}
	return solution, player, end, nil
}
