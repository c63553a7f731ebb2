package services

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"radio-garden-client/internal/platform/obs"
	"radio-garden-client/internal/ports"
	"radio-garden-client/radiogarden"
)

// LookupPlace returns one place by id.
//
// The store is consulted first. On a miss the full directory is fetched,
// written back to repo and searched. An id the directory does not list
// either yields a 404 *radiogarden.StatusError.
func LookupPlace(
	ctx context.Context,
	id string,
	dir ports.Directory,
	repo ports.PlaceRepository,
) (_ *radiogarden.Place, err error) {
	defer obs.Time(ctx, "services.LookupPlace")(&err)

	id = strings.TrimSpace(id)
	if id == "" {
		return nil, fmt.Errorf("lookup place: placeID: %w", radiogarden.ErrInvalidArgument)
	}

	if repo != nil {
		stored, err := repo.GetMany(ctx, []string{id})
		if err != nil {
			return nil, fmt.Errorf("lookup place: %w", err)
		}
		if p, ok := stored[id]; ok {
			return &p, nil
		}
	}

	res, err := dir.Places(ctx)
	if err != nil {
		return nil, fmt.Errorf("lookup place: fetch places: %w", err)
	}

	if repo != nil && len(res.Data.List) > 0 {
		if err := repo.PutMany(ctx, res.Data.List); err != nil {
			zerolog.Ctx(ctx).Warn().Err(err).Msg("place store write failed")
		}
	}

	for i := range res.Data.List {
		if res.Data.List[i].ID == id {
			p := res.Data.List[i]
			return &p, nil
		}
	}

	return nil, &radiogarden.StatusError{Op: "lookup place", Code: http.StatusNotFound}
}
