package ports

import (
	"context"

	"radio-garden-client/radiogarden"
)

// Contract for reading the remote station directory.
// *radiogarden.Client satisfies it.
type Directory interface {
	Places(ctx context.Context) (*radiogarden.PlacesResponse, error)
	PlaceChannels(ctx context.Context, placeID string) (*radiogarden.PlaceChannelsResponse, error)
	ChannelDetails(ctx context.Context, channelID string) (*radiogarden.ChannelDetailsResponse, error)
	ChannelStreamURL(ctx context.Context, channelID string) (string, error)
	Search(ctx context.Context, query string) (*radiogarden.QueryResponse, error)
	ClientGeoLocation(ctx context.Context) (*radiogarden.GeoLocation, error)
}
