package db

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *Queries {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })
	db.SetMaxOpenConns(1)

	goose.SetDialect("sqlite3")
	if err := goose.Up(db, "../../sql/schema"); err != nil {
		t.Fatal(err)
	}
	return New(db)
}

func TestCreatePuzzle(t *testing.T) {
	q := setupDB(t)
	ctx := context.Background()

	now := time.Now().UTC().Round(0)

	p, err := q.CreatePuzzle(ctx, CreatePuzzleParams{
		ID:        "puzzle-1",
		Filename:  "sample.puz",
		Title:     "Sample Title",
		Author:    "Sample Author",
		Width:     5,
		Height:    5,
		NumClues:  6,
		Body:      `{"title":"Sample Title"}`,
		CreatedAt: now,
		UpdatedAt: now,
	})

	if err != nil {
		t.Errorf("Expected no error, got: %v", err)
	}
	if p.ID != "puzzle-1" {
		t.Errorf("expected id puzzle-1, got: %v", p.ID)
	}
	if p.Title != "Sample Title" {
		t.Errorf("expected title Sample Title, got: %v", p.Title)
	}
	if p.Width != 5 || p.Height != 5 {
		t.Errorf("expected 5x5, got: %dx%d", p.Width, p.Height)
	}
	if !p.CreatedAt.Equal(now) {
		t.Errorf("expected timestamp of createdAt to match %v, got: %v", now, p.CreatedAt)
	}

	got, err := q.GetPuzzle(ctx, "puzzle-1")
	if err != nil {
		t.Fatal(err)
	}
	if got.Body != p.Body {
		t.Errorf("expected body %q, got: %q", p.Body, got.Body)
	}
}

func TestReplaceAndDeletePuzzle(t *testing.T) {
	q := setupDB(t)
	ctx := context.Background()
	now := time.Now().UTC().Round(0)

	_, err := q.CreatePuzzle(ctx, CreatePuzzleParams{ID: "p", Filename: "a.puz", Body: "{}", CreatedAt: now, UpdatedAt: now})
	if err != nil {
		t.Fatal(err)
	}

	n, err := q.ReplacePuzzle(ctx, ReplacePuzzleParams{ID: "p", Filename: "b.puz", Title: "New", Body: "{}", UpdatedAt: now})
	if err != nil || n != 1 {
		t.Fatalf("expected 1 row replaced, got %d (%v)", n, err)
	}
	got, _ := q.GetPuzzle(ctx, "p")
	if got.Filename != "b.puz" || got.Title != "New" {
		t.Errorf("replace did not stick: %+v", got)
	}

	n, err = q.ReplacePuzzle(ctx, ReplacePuzzleParams{ID: "missing", Body: "{}", UpdatedAt: now})
	if err != nil || n != 0 {
		t.Errorf("expected 0 rows for missing puzzle, got %d (%v)", n, err)
	}

	n, err = q.DeletePuzzle(ctx, "p")
	if err != nil || n != 1 {
		t.Fatalf("expected 1 row deleted, got %d (%v)", n, err)
	}
	if _, err := q.GetPuzzle(ctx, "p"); !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("expected sql.ErrNoRows, got: %v", err)
	}
}

func TestListPuzzles(t *testing.T) {
	q := setupDB(t)
	ctx := context.Background()
	base := time.Now().UTC().Round(0)

	for i, id := range []string{"old", "mid", "new"} {
		at := base.Add(time.Duration(i) * time.Minute)
		if _, err := q.CreatePuzzle(ctx, CreatePuzzleParams{ID: id, Body: "{}", CreatedAt: at, UpdatedAt: at}); err != nil {
			t.Fatal(err)
		}
	}

	page, err := q.ListPuzzles(ctx, ListPuzzlesParams{Limit: 2, Offset: 0})
	if err != nil {
		t.Fatal(err)
	}
	if len(page) != 2 || page[0].ID != "new" || page[1].ID != "mid" {
		t.Errorf("unexpected first page: %+v", page)
	}

	count, err := q.CountPuzzles(ctx)
	if err != nil || count != 3 {
		t.Errorf("expected 3 puzzles, got %d (%v)", count, err)
	}
}
