package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"puzparse/internal/app"
	"puzparse/internal/db"
	"puzparse/sql/schema"

	"github.com/pressly/goose/v3"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	dbPath := flag.String("db", "puzparse.db", "SQLite database to seed")
	dir := flag.String("dir", "internal/app/testdata", "directory holding .puz files")
	flag.Parse()

	dbConn, err := sql.Open("sqlite", *dbPath+"?_pragma=journal_mode(WAL)&_pragma=foreign_keys(ON)")
	if err != nil {
		log.Fatal().Err(err).Msg("opening database")
	}
	defer dbConn.Close()

	goose.SetBaseFS(schema.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		log.Fatal().Err(err).Send()
	}
	if err := goose.Up(dbConn, "."); err != nil {
		log.Fatal().Err(err).Msg("running migrations")
	}

	queries := db.New(dbConn)
	service := app.NewService(queries, dbConn)
	defer service.Shutdown()
	ctx := context.Background()

	paths, err := filepath.Glob(filepath.Join(*dir, "*.puz"))
	if err != nil {
		log.Fatal().Err(err).Send()
	}

	fmt.Printf("Seeding %d puzzles from %s...\n", len(paths), *dir)
	imported := 0
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			log.Warn().Err(err).Str("file", path).Msg("skipping")
			continue
		}

		p, err := service.CreatePuzzleFromFile(ctx, path, data)
		if err != nil {
			log.Warn().Err(err).Str("file", path).Msg("skipping")
			continue
		}
		fmt.Printf("Imported %s: %q by %s (ID: %s)\n", filepath.Base(path), p.Puzzle.Title, p.Puzzle.Author, p.ID)
		imported++
	}

	fmt.Printf("\nSeeding complete! %d of %d imported.\n", imported, len(paths))
	fmt.Println("Browse them once the server is running: http://localhost:8080/puzzles")
}
