package ports

import (
	"context"

	"radio-garden-client/radiogarden"
)

// Port: a boundary for reading and storing the places directory locally.
type PlaceRepository interface {
	// Return all stored places.
	ListPlaces(ctx context.Context) ([]radiogarden.Place, error)
	// Return stored places for the given ids. Unknown ids are missing from the map.
	GetMany(ctx context.Context, ids []string) (map[string]radiogarden.Place, error)
	// Insert or replace the given places.
	PutMany(ctx context.Context, places []radiogarden.Place) error
}
