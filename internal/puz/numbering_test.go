package puz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clueList(texts ...string) [][]byte {
	out := make([][]byte, len(texts))
	for i, t := range texts {
		out[i] = []byte(t)
	}
	return out
}

func TestNumber_SharedNumberAtOneCell(t *testing.T) {
	b := Board{Width: 2, Height: 2, Cells: []byte("ABCD")}

	n, err := Number(b, clueList("a", "b", "c", "d"))
	require.NoError(t, err)

	require.Len(t, n.Across, 2)
	require.Len(t, n.Down, 2)
	assert.Equal(t, 1, n.Across[0].Number)
	assert.Equal(t, 1, n.Down[0].Number)
	assert.Equal(t, "a", string(n.Across[0].Text))
	assert.Equal(t, "b", string(n.Down[0].Text))
	assert.Equal(t, DirectionDown, n.Down[1].Direction)
}

func TestNumber_InterleavedConsumption(t *testing.T) {
	// ...
	// .AB
	// .C.
	b := Board{Width: 3, Height: 3, Cells: []byte("....AB.C.")}

	n, err := Number(b, clueList("x", "y"))
	require.NoError(t, err)

	assert.Equal(t, []int{0, 0, 0, 0, 1, 0, 0, 0, 0}, n.GridNums)
	assert.Equal(t, "x", string(n.Across[0].Text))
	assert.Equal(t, "y", string(n.Down[0].Text))
}

func TestNumber_AllBlack(t *testing.T) {
	b := Board{Width: 2, Height: 2, Cells: []byte("....")}

	n, err := Number(b, nil)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 0, 0}, n.GridNums)
	assert.Empty(t, n.Across)
	assert.Empty(t, n.Down)
}

func TestNumber_SingleRow(t *testing.T) {
	b := Board{Width: 5, Height: 1, Cells: []byte("AB.CD")}

	n, err := Number(b, clueList("one", "two"))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0, 0, 2, 0}, n.GridNums)
	assert.Empty(t, n.Down)
}

func TestNumber_ClueShortfall(t *testing.T) {
	b := Board{Width: 2, Height: 2, Cells: []byte("ABCD")}

	_, err := Number(b, clueList("a", "b"))
	assert.ErrorIs(t, err, ErrMalformedStringSection)
}

func TestClueEntry_Format(t *testing.T) {
	s, err := ClueEntry{Number: 12, Text: []byte("Caf\xe9")}.Format()
	require.NoError(t, err)
	assert.Equal(t, "12. Café", s)
}
