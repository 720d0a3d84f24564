package transport

import (
	"database/sql"
	"net/http"
	"time"

	"puzparse/internal/app"

	"github.com/alexedwards/scs/sqlite3store"
	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const defaultMaxUploadBytes = 1024 * 1024

type Server struct {
	Service        *app.Service
	Router         *chi.Mux
	SessionManager *scs.SessionManager
	MaxUploadBytes int64
}

func NewServer(svc *app.Service, db *sql.DB, isProd bool) *Server {
	sessionManager := scs.New()
	sessionManager.Store = sqlite3store.New(db)
	sessionManager.Lifetime = time.Hour * 24 * 7 * 6
	sessionManager.Cookie.Secure = isProd

	s := &Server{
		Service:        svc,
		Router:         chi.NewRouter(),
		SessionManager: sessionManager,
		MaxUploadBytes: defaultMaxUploadBytes,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.Router.Use(middleware.Logger)
	s.Router.Use(middleware.Recoverer)
	s.Router.Use(s.SessionManager.LoadAndSave)
	s.Router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, s.MaxUploadBytes)
			next.ServeHTTP(w, r)
		})
	})

	s.Router.Get("/", s.handleHome)

	// Stateless decode
	s.Router.Post("/parse", s.handleParse)

	// Puzzles
	s.Router.Post("/puzzles", s.handleCreatePuzzle)
	s.Router.Get("/puzzles", s.handleListPuzzles)
	s.Router.Get("/puzzles/latest", s.handleLatestPuzzle)
	s.Router.Get("/puzzles/{id}", s.handleViewPuzzle)
	s.Router.Put("/puzzles/{id}", s.handleReplacePuzzle)
	s.Router.Delete("/puzzles/{id}", s.handleDeletePuzzle)
	s.Router.Get("/puzzles/{id}/events", s.handlePuzzleEvents)
}
