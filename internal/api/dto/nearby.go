package dto

import (
	"radio-garden-client/internal/services"
	"radio-garden-client/radiogarden"
)

type ChannelResponse struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	URL    string `json:"url"`
	Stream string `json:"stream,omitempty"`
}

func NewChannelResponse(c radiogarden.ChannelPage) ChannelResponse {
	return ChannelResponse{ID: c.ID(), Title: c.Title, URL: c.URL, Stream: c.Stream}
}

type PlaceChannelsResponse struct {
	Title    string            `json:"title"`
	Subtitle string            `json:"subtitle"`
	Channels []ChannelResponse `json:"channels"`
}

type StreamResponse struct {
	ChannelID string `json:"channel_id"`
	StreamURL string `json:"stream_url"`
}

type NearbyPlaceResponse struct {
	ID             string                  `json:"id"`
	Title          string                  `json:"title"`
	Country        string                  `json:"country"`
	Geo            radiogarden.Coordinates `json:"geo"`
	DistanceMeters int                     `json:"distance_meters"`
	Channels       []ChannelResponse       `json:"channels"`
}

type NearbyResponse struct {
	Origin   radiogarden.Coordinates  `json:"origin"`
	Location *radiogarden.GeoLocation `json:"location,omitempty"`
	Places   []NearbyPlaceResponse    `json:"places"`
}

func NewNearbyResponse(res *services.LocalStations) NearbyResponse {
	out := NearbyResponse{
		Origin:   res.Origin,
		Location: res.Location,
		Places:   make([]NearbyPlaceResponse, 0, len(res.Places)),
	}
	for _, p := range res.Places {
		chans := make([]ChannelResponse, 0, len(p.Channels))
		for _, c := range p.Channels {
			chans = append(chans, NewChannelResponse(c))
		}
		out.Places = append(out.Places, NearbyPlaceResponse{
			ID:             p.Place.ID,
			Title:          p.Place.Title,
			Country:        p.Place.Country,
			Geo:            p.Place.Geo,
			DistanceMeters: p.DistanceMeters,
			Channels:       chans,
		})
	}
	return out
}
