package transport

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"puzparse/internal/app"
	"puzparse/internal/puz"

	"github.com/rs/zerolog/log"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("writing response")
	}
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	var tooLarge *http.MaxBytesError

	switch {
	case errors.Is(err, app.ErrPuzzleNotFound):
		status = http.StatusNotFound
	case errors.Is(err, app.ErrUnsupportedFormat):
		status = http.StatusUnsupportedMediaType
	case errors.As(err, &tooLarge):
		status = http.StatusRequestEntityTooLarge
	case errors.Is(err, puz.ErrTruncatedFile),
		errors.Is(err, puz.ErrInvalidDimensions),
		errors.Is(err, puz.ErrMalformedStringSection),
		errors.Is(err, puz.ErrEncoding):
		status = http.StatusUnprocessableEntity
	default:
		log.Error().Err(err).Msg("request failed")
	}

	writeJSON(w, status, map[string]string{"error": err.Error()})
}

// readUpload returns the uploaded file name and bytes. Multipart requests
// carry the file in the "file" field; anything else is the raw body with the
// name in ?filename=.
func readUpload(r *http.Request) (string, []byte, error) {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		file, header, err := r.FormFile("file")
		if err != nil {
			return "", nil, err
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		return header.Filename, data, err
	}

	data, err := io.ReadAll(r.Body)
	return r.URL.Query().Get("filename"), data, err
}
