package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"radio-garden-client/internal/api/handlers"
	"radio-garden-client/internal/ports"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
// repo may be nil, in which case places are always read from the directory.
func NewRouter(
	dir ports.Directory,
	repo ports.PlaceRepository,
	logger zerolog.Logger,
	nearbyLimit int,
) http.Handler {
	r := chi.NewRouter()

	r.Use(requestContext(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(accessLog)

	dirHandler := &handlers.DirectoryHandler{Dir: dir}
	placeHandler := &handlers.PlaceHandler{Dir: dir, Repo: repo}
	nearbyHandler := &handlers.NearbyHandler{
		Dir:          dir,
		Repo:         repo,
		DefaultLimit: nearbyLimit,
	}

	r.Get("/health", handlers.Health)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Get("/places", dirHandler.Places)
	r.Get("/places/{placeID}", placeHandler.Place)
	r.Get("/places/{placeID}/channels", dirHandler.PlaceChannels)
	r.Get("/channels/{channelID}", dirHandler.ChannelDetails)
	r.Get("/channels/{channelID}/stream", dirHandler.ChannelStream)
	r.Get("/search", dirHandler.Search)
	r.Get("/geo", dirHandler.GeoLocation)
	r.Get("/nearby", nearbyHandler.Nearby)

	return r
}
