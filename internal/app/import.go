package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"puzparse/internal/db"
	"puzparse/internal/puz"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var ErrUnsupportedFormat = errors.New("unsupported file format")

const puzMagic = "ACROSS&DOWN"

// DecodePuzzleFile picks the decoder by extension, falling back to the magic
// bytes when the extension says nothing.
func DecodePuzzleFile(filename string, data []byte) (*puz.File, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == ".puz" {
		return puz.Decode(data)
	}

	if len(data) > 0x10 && string(data[2:13]) == puzMagic {
		return puz.Decode(data)
	}

	return nil, ErrUnsupportedFormat
}

func baseName(filename string) string {
	if filename == "" {
		return ""
	}
	return filepath.Base(filename)
}

// CreatePuzzleFromFile decodes data and stores it under a new ID.
func (s *Service) CreatePuzzleFromFile(ctx context.Context, filename string, data []byte) (*StoredPuzzle, error) {
	f, err := DecodePuzzleFile(filename, data)
	if err != nil {
		return nil, err
	}
	p, err := f.Puzzle()
	if err != nil {
		return nil, err
	}
	body, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("encoding puzzle: %w", err)
	}

	now := time.Now().UTC().Round(0)
	row, err := s.Queries.CreatePuzzle(ctx, db.CreatePuzzleParams{
		ID:        uuid.NewString(),
		Filename:  baseName(filename),
		Title:     p.Title,
		Author:    p.Author,
		Copyright: f.Copyright,
		Notes:     f.Notes,
		Width:     int64(f.Header.Width),
		Height:    int64(f.Header.Height),
		NumClues:  int64(f.Header.NumClues),
		Body:      string(body),
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, fmt.Errorf("creating puzzle: %w", err)
	}

	log.Info().Str("puzzle", row.ID).Str("title", row.Title).Msg("puzzle imported")
	return storedFromRow(row, p), nil
}

// ImportPuzzle replaces an existing puzzle with the contents of data and
// notifies watchers.
func (s *Service) ImportPuzzle(ctx context.Context, puzzleID string, data []byte, filename string) error {
	f, err := DecodePuzzleFile(filename, data)
	if err != nil {
		return err
	}
	p, err := f.Puzzle()
	if err != nil {
		return err
	}
	body, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encoding puzzle: %w", err)
	}

	n, err := s.Queries.ReplacePuzzle(ctx, db.ReplacePuzzleParams{
		ID:        puzzleID,
		Filename:  baseName(filename),
		Title:     p.Title,
		Author:    p.Author,
		Copyright: f.Copyright,
		Notes:     f.Notes,
		Width:     int64(f.Header.Width),
		Height:    int64(f.Header.Height),
		NumClues:  int64(f.Header.NumClues),
		Body:      string(body),
		UpdatedAt: time.Now().UTC().Round(0),
	})
	if err != nil {
		return fmt.Errorf("replacing puzzle %s: %w", puzzleID, err)
	}
	if n == 0 {
		return ErrPuzzleNotFound
	}

	s.BroadcastUpdate(puzzleID, EventUpdated)
	return nil
}
