package services

import (
	"math"
	"sort"

	"radio-garden-client/radiogarden"
)

const earthRadiusMeters = 6371008.8

// Great-circle distance between two coordinates in meters (haversine).
func HaversineMeters(a, b radiogarden.Coordinates) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLon := (b.Lon - a.Lon) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)

	return 2 * earthRadiusMeters * math.Asin(math.Min(1, math.Sqrt(h)))
}

// A place together with its distance from the search origin.
type RankedPlace struct {
	Place          radiogarden.Place
	DistanceMeters int
}

// Order places by distance from origin and keep the closest n.
//
// Ties are broken by place id so the result is deterministic. n <= 0 returns
// every place.
func NearestPlaces(origin radiogarden.Coordinates, places []radiogarden.Place, n int) []RankedPlace {
	ranked := make([]RankedPlace, 0, len(places))
	for _, p := range places {
		ranked = append(ranked, RankedPlace{
			Place:          p,
			DistanceMeters: int(math.Round(HaversineMeters(origin, p.Geo))),
		})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].DistanceMeters != ranked[j].DistanceMeters {
			return ranked[i].DistanceMeters < ranked[j].DistanceMeters
		}
		return ranked[i].Place.ID < ranked[j].Place.ID
	})

	if n > 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
