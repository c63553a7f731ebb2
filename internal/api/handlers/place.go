package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"radio-garden-client/internal/ports"
	"radio-garden-client/internal/services"
)

// PlaceHandler serves single places, preferring the local store.
type PlaceHandler struct {
	Dir  ports.Directory
	Repo ports.PlaceRepository
}

func (h *PlaceHandler) Place(w http.ResponseWriter, r *http.Request) {
	p, err := services.LookupPlace(r.Context(), chi.URLParam(r, "placeID"), h.Dir, h.Repo)
	if err != nil {
		writeDirectoryError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, p)
}
