package app

import (
	"context"
	"os"
	"testing"
	"time"

	"puzparse/internal/puz"
	"puzparse/internal/puz/puztest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodePuzzleFile(t *testing.T) {
	data := puztest.Sample().Bytes()

	tests := []struct {
		name     string
		filename string
		data     []byte
		wantErr  error
	}{
		{"puz extension", "daily.puz", data, nil},
		{"upper case extension", "DAILY.PUZ", data, nil},
		{"magic without extension", "upload", data, nil},
		{"unknown", "notes.txt", []byte("hello, world, not a puzzle"), ErrUnsupportedFormat},
		{"puz extension but truncated", "daily.puz", data[:10], puz.ErrTruncatedFile},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodePuzzleFile(tt.filename, tt.data)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestImportPuzzle(t *testing.T) {
	svc, queries, _ := SetupTestService(t)
	ctx := context.Background()

	p, err := svc.CreatePuzzleFromFile(ctx, "sample.puz", puztest.Sample().Bytes())
	require.NoError(t, err)
	assert.Equal(t, "sample.puz", p.Filename)
	assert.Equal(t, "Sample Title", p.Puzzle.Title)

	t.Run("Import replaces contents", func(t *testing.T) {
		events, err := svc.WatchPuzzle(ctx, p.ID)
		require.NoError(t, err)

		data := puztest.Builder{
			Width:    2,
			Height:   2,
			Solution: "ABCD",
			Title:    "Tiny",
			Clues:    []string{"A", "B", "C", "D"},
		}.Bytes()

		err = svc.ImportPuzzle(ctx, p.ID, data, "tiny.puz")
		require.NoError(t, err)

		updated, _ := queries.GetPuzzle(ctx, p.ID)
		assert.Equal(t, int64(2), updated.Width)
		assert.Equal(t, int64(2), updated.Height)
		assert.Equal(t, "tiny.puz", updated.Filename)

		got, err := svc.GetPuzzle(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2, 3, 0}, got.Puzzle.GridNums)
		assert.Equal(t, []string{"1. B", "2. C"}, got.Puzzle.Clues.Down)

		select {
		case ev := <-events:
			assert.Equal(t, EventUpdated, ev)
		case <-time.After(2 * time.Second):
			t.Fatal("no update broadcast")
		}
	})

	t.Run("Malformed file leaves puzzle untouched", func(t *testing.T) {
		before, _ := queries.GetPuzzle(ctx, p.ID)

		bad := puztest.Builder{Width: 2, Height: 2, Solution: "ABCD", Clues: []string{"A"}}.Bytes()
		err := svc.ImportPuzzle(ctx, p.ID, bad, "bad.puz")
		assert.ErrorIs(t, err, puz.ErrMalformedStringSection)

		after, _ := queries.GetPuzzle(ctx, p.ID)
		assert.Equal(t, before.Body, after.Body)
	})

	t.Run("Unknown puzzle", func(t *testing.T) {
		err := svc.ImportPuzzle(ctx, "missing", puztest.Sample().Bytes(), "sample.puz")
		assert.ErrorIs(t, err, ErrPuzzleNotFound)
	})
}

func TestImportSampleFixture(t *testing.T) {
	svc, _, _ := SetupTestService(t)
	ctx := context.Background()

	data, err := os.ReadFile("testdata/sample.puz")
	require.NoError(t, err)
	assert.Equal(t, puztest.Sample().Bytes(), data, "fixture drifted, regenerate with cmd/gen_puz")

	p, err := svc.CreatePuzzleFromFile(ctx, "sample.puz", data)
	require.NoError(t, err)
	assert.Equal(t, 5, p.Puzzle.GridSize.Columns)
	assert.Equal(t, "A", p.Puzzle.Grid[0])
	assert.Equal(t, ".", p.Puzzle.Grid[6])
	assert.Equal(t, 1, p.Puzzle.GridNums[0])
}
