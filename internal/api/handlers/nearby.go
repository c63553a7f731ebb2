package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"

	"radio-garden-client/internal/api/dto"
	"radio-garden-client/internal/ports"
	"radio-garden-client/internal/services"
	"radio-garden-client/radiogarden"
)

var validate = validator.New()

type NearbyHandler struct {
	Dir          ports.Directory
	Repo         ports.PlaceRepository
	DefaultLimit int
}

type nearbyQuery struct {
	Limit int      `validate:"gte=1,lte=50"`
	Lon   *float64 `validate:"omitempty,gte=-180,lte=180"`
	Lat   *float64 `validate:"omitempty,gte=-90,lte=90"`
}

// Nearby lists the stations of the places closest to ?lon=&lat=. Without
// them the origin is the directory's geolocation of this server's address,
// which is only the caller's location when both share a network.
func (h *NearbyHandler) Nearby(w http.ResponseWriter, r *http.Request) {
	q, ok := h.parseQuery(w, r)
	if !ok {
		return
	}

	req := services.LocalStationsRequest{Limit: q.Limit}
	if q.Lon != nil && q.Lat != nil {
		req.Origin = &radiogarden.Coordinates{Lon: *q.Lon, Lat: *q.Lat}
	}

	res, err := services.FindLocalStations(r.Context(), req, h.Dir, h.Repo)
	if err != nil {
		writeDirectoryError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.NewNearbyResponse(res))
}

func (h *NearbyHandler) parseQuery(w http.ResponseWriter, r *http.Request) (nearbyQuery, bool) {
	values := r.URL.Query()
	q := nearbyQuery{Limit: h.DefaultLimit}

	if s := values.Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, "limit must be an integer")
			return q, false
		}
		q.Limit = n
	}

	for _, f := range []struct {
		name string
		dst  **float64
	}{{"lon", &q.Lon}, {"lat", &q.Lat}} {
		s := values.Get(f.name)
		if s == "" {
			continue
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, f.name+" must be a number")
			return q, false
		}
		*f.dst = &v
	}

	if (q.Lon == nil) != (q.Lat == nil) {
		writeError(w, r, http.StatusBadRequest, "lon and lat must be given together")
		return q, false
	}

	if err := validate.Struct(q); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid query: "+err.Error())
		return q, false
	}

	return q, true
}
