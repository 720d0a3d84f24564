package transport

import (
	"fmt"
	"net/http"
	"strconv"

	"puzparse/internal/app"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
	"github.com/starfederation/datastar-go/datastar"
)

const lastPuzzleKey = "lastPuzzleID"

func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	filename, data, err := readUpload(r)
	if err != nil {
		writeError(w, err)
		return
	}

	f, err := app.DecodePuzzleFile(filename, data)
	if err != nil {
		writeError(w, err)
		return
	}
	p, err := f.Puzzle()
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleCreatePuzzle(w http.ResponseWriter, r *http.Request) {
	filename, data, err := readUpload(r)
	if err != nil {
		writeError(w, err)
		return
	}

	p, err := s.Service.CreatePuzzleFromFile(r.Context(), filename, data)
	if err != nil {
		writeError(w, err)
		return
	}

	s.SessionManager.Put(r.Context(), lastPuzzleKey, p.ID)

	if r.Header.Get("Datastar-Request") == "true" {
		datastar.NewSSE(w, r).Redirect(fmt.Sprintf("/puzzles/%s", p.ID))
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/puzzles/%s", p.ID))
	writeJSON(w, http.StatusCreated, p)
}

func (s *Server) handleListPuzzles(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	puzzles, err := s.Service.ListPuzzles(r.Context(), limit, offset)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, puzzles)
}

func (s *Server) handleLatestPuzzle(w http.ResponseWriter, r *http.Request) {
	puzzleID := s.SessionManager.GetString(r.Context(), lastPuzzleKey)
	if puzzleID == "" {
		writeError(w, app.ErrPuzzleNotFound)
		return
	}

	p, err := s.Service.GetPuzzle(r.Context(), puzzleID)
	if err != nil {
		s.SessionManager.Remove(r.Context(), lastPuzzleKey)
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleViewPuzzle(w http.ResponseWriter, r *http.Request) {
	p, err := s.Service.GetPuzzle(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleReplacePuzzle(w http.ResponseWriter, r *http.Request) {
	puzzleID := chi.URLParam(r, "id")

	filename, data, err := readUpload(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.Service.ImportPuzzle(r.Context(), puzzleID, data, filename); err != nil {
		writeError(w, err)
		return
	}

	p, err := s.Service.GetPuzzle(r.Context(), puzzleID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleDeletePuzzle(w http.ResponseWriter, r *http.Request) {
	if err := s.Service.DeletePuzzle(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// handlePuzzleEvents streams the puzzle as datastar signals, once on connect
// and again after every re-import.
func (s *Server) handlePuzzleEvents(w http.ResponseWriter, r *http.Request) {
	puzzleID := chi.URLParam(r, "id")

	p, err := s.Service.GetPuzzle(r.Context(), puzzleID)
	if err != nil {
		writeError(w, err)
		return
	}

	events, err := s.Service.WatchPuzzle(r.Context(), puzzleID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}

	sse := datastar.NewSSE(w, r)
	if err := sse.MarshalAndPatchSignals(map[string]any{"puzzle": p}); err != nil {
		return
	}

	for ev := range events {
		if ev == app.EventDeleted {
			_ = sse.MarshalAndPatchSignals(map[string]any{"puzzle": nil, "deleted": true})
			return
		}

		p, err = s.Service.GetPuzzle(r.Context(), puzzleID)
		if err != nil {
			log.Error().Err(err).Str("puzzle", puzzleID).Msg("reloading watched puzzle")
			return
		}
		if err := sse.MarshalAndPatchSignals(map[string]any{"puzzle": p}); err != nil {
			return
		}
	}
}
