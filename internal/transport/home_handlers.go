package transport

import (
	"net/http"
	"time"
)

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	status := "ok"
	code := http.StatusOK
	if err := s.Service.Ping(r.Context()); err != nil {
		status = "degraded"
		code = http.StatusServiceUnavailable
	}

	count, _ := s.Service.Queries.CountPuzzles(r.Context())

	writeJSON(w, code, map[string]any{
		"status":   status,
		"puzzles":  count,
		"uptimeMs": time.Now().UnixMilli() - s.Service.StartTime,
		"broker":   s.Service.NC != nil && s.Service.NC.IsConnected(),
	})
}
