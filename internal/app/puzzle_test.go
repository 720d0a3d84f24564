package app

import (
	"context"
	"fmt"
	"testing"

	"puzparse/internal/puz/puztest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPuzzle(t *testing.T) {
	svc, _, _ := SetupTestService(t)
	ctx := context.Background()

	created, err := svc.CreatePuzzleFromFile(ctx, "sample.puz", puztest.Sample().Bytes())
	require.NoError(t, err)

	got, err := svc.GetPuzzle(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Puzzle, got.Puzzle)
	assert.Equal(t, "Sample Copyright", got.Copyright)
	assert.Equal(t, "Notes", got.Notes)
	assert.Equal(t, 6, got.NumClues)

	_, err = svc.GetPuzzle(ctx, "missing")
	assert.ErrorIs(t, err, ErrPuzzleNotFound)
}

func TestListPuzzles(t *testing.T) {
	svc, _, _ := SetupTestService(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		b := puztest.Sample()
		b.Title = fmt.Sprintf("Puzzle %d", i)
		_, err := svc.CreatePuzzleFromFile(ctx, "p.puz", b.Bytes())
		require.NoError(t, err)
	}

	all, err := svc.ListPuzzles(ctx, 0, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	page, err := svc.ListPuzzles(ctx, 2, 2)
	require.NoError(t, err)
	assert.Len(t, page, 1)
}

func TestDeletePuzzle(t *testing.T) {
	svc, _, _ := SetupTestService(t)
	ctx := context.Background()

	created, err := svc.CreatePuzzleFromFile(ctx, "sample.puz", puztest.Sample().Bytes())
	require.NoError(t, err)

	require.NoError(t, svc.DeletePuzzle(ctx, created.ID))
	_, err = svc.GetPuzzle(ctx, created.ID)
	assert.ErrorIs(t, err, ErrPuzzleNotFound)

	assert.ErrorIs(t, svc.DeletePuzzle(ctx, created.ID), ErrPuzzleNotFound)
}
