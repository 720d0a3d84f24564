package main

import (
	"database/sql"
	"net/http"
	"os"
	"strconv"
	"time"

	"puzparse/internal/app"
	"puzparse/internal/db"
	"puzparse/internal/transport"
	"puzparse/sql/schema"

	"github.com/pressly/goose/v3"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"
)

func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "puzparse.db"
	}

	env := os.Getenv("ENV")
	isProd := env == "production"

	level, err := zerolog.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	if !isProd {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	dbConn, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=foreign_keys(ON)")
	if err != nil {
		log.Fatal().Err(err).Msg("opening database")
	}
	if err := goose.SetDialect("sqlite3"); err != nil {
		log.Fatal().Err(err).Msg("setting goose dialect")
	}

	// Run migrations from embedded FS
	goose.SetBaseFS(schema.Migrations)
	if err := goose.Up(dbConn, "."); err != nil {
		log.Fatal().Err(err).Msg("running migrations")
	}

	queries := db.New(dbConn)
	service := app.NewService(queries, dbConn)
	defer service.Shutdown()
	server := transport.NewServer(service, dbConn, isProd)

	if v := os.Getenv("MAX_UPLOAD_BYTES"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n <= 0 {
			log.Fatal().Str("value", v).Msg("MAX_UPLOAD_BYTES must be a positive integer")
		}
		server.MaxUploadBytes = n
	}

	log.Info().Str("env", env).Str("addr", "http://localhost:"+port).Msg("server starting")
	if err := http.ListenAndServe(":"+port, server.Router); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
