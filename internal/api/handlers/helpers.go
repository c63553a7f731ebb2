package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"radio-garden-client/radiogarden"
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Str("method", r.Method).Str("path", r.URL.Path).Msg("encode failed")
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]string{"error": msg})
}

// writeDirectoryError maps a directory failure onto a response status.
// Upstream 4xx answers are passed through; everything else the service got
// wrong is a bad gateway.
func writeDirectoryError(w http.ResponseWriter, r *http.Request, err error) {
	var se *radiogarden.StatusError
	var te *radiogarden.TransportError

	switch {
	case errors.Is(err, radiogarden.ErrInvalidArgument):
		writeError(w, r, http.StatusBadRequest, err.Error())
	case errors.As(err, &se):
		if se.Code >= 400 && se.Code < 500 {
			msg := strings.ToLower(http.StatusText(se.Code))
			if msg == "" {
				msg = "upstream rejected request"
			}
			writeError(w, r, se.Code, msg)
			return
		}
		writeError(w, r, http.StatusBadGateway, "upstream unavailable")
	case errors.Is(err, radiogarden.ErrUnsuccessful):
		writeError(w, r, http.StatusNotFound, "not found")
	case errors.Is(err, radiogarden.ErrDecode):
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("upstream response could not be decoded")
		writeError(w, r, http.StatusBadGateway, "invalid upstream response")
	case errors.As(err, &te):
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("upstream request failed")
		writeError(w, r, http.StatusBadGateway, "upstream unavailable")
	default:
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("request failed")
		writeError(w, r, http.StatusInternalServerError, "internal server error")
	}
}
