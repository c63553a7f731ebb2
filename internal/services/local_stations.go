package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"radio-garden-client/internal/platform/obs"
	"radio-garden-client/internal/ports"
	"radio-garden-client/radiogarden"
)

type LocalStationsRequest struct {
	// Origin overrides the directory's geolocation, which locates the
	// address the directory request came from.
	Origin *radiogarden.Coordinates
	Limit  int
}

type NearbyPlace struct {
	RankedPlace
	Channels []radiogarden.ChannelPage
}

type LocalStations struct {
	Origin radiogarden.Coordinates
	// Location is set when Origin came from the service's geolocation.
	Location *radiogarden.GeoLocation
	Places   []NearbyPlace
}

// FindLocalStations lists the channels of the places closest to the caller.
//
// Places are read from repo when it holds any; otherwise they are fetched
// from the directory and written back to repo. A place the directory has no
// channel page for is returned with no channels.
func FindLocalStations(
	ctx context.Context,
	req LocalStationsRequest,
	dir ports.Directory,
	repo ports.PlaceRepository,
) (_ *LocalStations, err error) {
	defer obs.Time(ctx, "services.FindLocalStations")(&err)

	if dir == nil {
		return nil, errors.New("find local stations: directory is nil")
	}

	if req.Limit < 1 {
		return nil, fmt.Errorf("find local stations: limit must be positive, got %d", req.Limit)
	}

	out := &LocalStations{}
	if req.Origin != nil {
		out.Origin = *req.Origin
	} else {
		loc, err := dir.ClientGeoLocation(ctx)
		if err != nil {
			return nil, fmt.Errorf("find local stations: geolocate: %w", err)
		}
		out.Location = loc
		out.Origin = loc.Coordinates()
	}

	places, err := loadPlaces(ctx, dir, repo)
	if err != nil {
		return nil, fmt.Errorf("find local stations: %w", err)
	}

	nearest := NearestPlaces(out.Origin, places, req.Limit)
	out.Places = make([]NearbyPlace, 0, len(nearest))
	for _, rp := range nearest {
		np := NearbyPlace{RankedPlace: rp, Channels: []radiogarden.ChannelPage{}}

		res, err := dir.PlaceChannels(ctx, rp.Place.ID)
		switch {
		case radiogarden.IsAbsent(err):
			// no channel page for this place
		case err != nil:
			return nil, fmt.Errorf("find local stations: channels of %q: %w", rp.Place.ID, err)
		default:
			np.Channels = res.Channels()
		}

		out.Places = append(out.Places, np)
	}

	return out, nil
}

func loadPlaces(ctx context.Context, dir ports.Directory, repo ports.PlaceRepository) ([]radiogarden.Place, error) {
	if repo != nil {
		stored, err := repo.ListPlaces(ctx)
		if err != nil {
			return nil, fmt.Errorf("list stored places: %w", err)
		}
		if len(stored) > 0 {
			return stored, nil
		}
	}

	res, err := dir.Places(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch places: %w", err)
	}

	if repo != nil && len(res.Data.List) > 0 {
		if err := repo.PutMany(ctx, res.Data.List); err != nil {
			zerolog.Ctx(ctx).Warn().Err(err).Msg("place store write failed")
		}
	}

	return res.Data.List, nil
}

// SyncPlaces copies the full places directory into repo and returns the
// number of places written.
func SyncPlaces(ctx context.Context, dir ports.Directory, repo ports.PlaceRepository) (_ int, err error) {
	defer obs.Time(ctx, "services.SyncPlaces")(&err)

	res, err := dir.Places(ctx)
	if err != nil {
		return 0, fmt.Errorf("sync places: %w", err)
	}

	if err := repo.PutMany(ctx, res.Data.List); err != nil {
		return 0, fmt.Errorf("sync places: %w", err)
	}

	return len(res.Data.List), nil
}
