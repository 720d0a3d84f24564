package app

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"puzparse/internal/db"
	"puzparse/internal/puz"
)

var ErrPuzzleNotFound = errors.New("puzzle not found")

const maxPageSize = 100

// StoredPuzzle is an imported puzzle together with the file metadata the
// Puzzle record leaves out.
type StoredPuzzle struct {
	ID        string      `json:"id"`
	Filename  string      `json:"filename"`
	Copyright string      `json:"copyright"`
	Notes     string      `json:"notes"`
	NumClues  int         `json:"numClues"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
	Puzzle    *puz.Puzzle `json:"puzzle"`
}

func storedFromRow(row db.Puzzle, p *puz.Puzzle) *StoredPuzzle {
	return &StoredPuzzle{
		ID:        row.ID,
		Filename:  row.Filename,
		Copyright: row.Copyright,
		Notes:     row.Notes,
		NumClues:  int(row.NumClues),
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
		Puzzle:    p,
	}
}

func decodeRow(row db.Puzzle) (*StoredPuzzle, error) {
	var p puz.Puzzle
	if err := json.Unmarshal([]byte(row.Body), &p); err != nil {
		return nil, fmt.Errorf("decoding stored puzzle %s: %w", row.ID, err)
	}
	return storedFromRow(row, &p), nil
}

func (s *Service) GetPuzzle(ctx context.Context, puzzleID string) (*StoredPuzzle, error) {
	row, err := s.Queries.GetPuzzle(ctx, puzzleID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPuzzleNotFound
	}
	if err != nil {
		return nil, err
	}
	return decodeRow(row)
}

func (s *Service) ListPuzzles(ctx context.Context, limit, offset int) ([]*StoredPuzzle, error) {
	if limit <= 0 || limit > maxPageSize {
		limit = maxPageSize
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := s.Queries.ListPuzzles(ctx, db.ListPuzzlesParams{
		Limit:  int64(limit),
		Offset: int64(offset),
	})
	if err != nil {
		return nil, err
	}

	out := make([]*StoredPuzzle, 0, len(rows))
	for _, row := range rows {
		p, err := decodeRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func (s *Service) DeletePuzzle(ctx context.Context, puzzleID string) error {
	n, err := s.Queries.DeletePuzzle(ctx, puzzleID)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrPuzzleNotFound
	}

	s.BroadcastUpdate(puzzleID, EventDeleted)
	return nil
}
