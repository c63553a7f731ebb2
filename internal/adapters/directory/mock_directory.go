package directory

import (
	"context"
	"strings"

	"radio-garden-client/radiogarden"
)

// MockDirectory is an in-memory ports.Directory used for tests and offline runs.
// Missing entries behave like the service answering 404.
type MockDirectory struct {
	PlaceList []radiogarden.Place
	Channels  map[string][]radiogarden.ChannelPage
	Details   map[string]radiogarden.ChannelDetail
	Streams   map[string]string
	Location  *radiogarden.GeoLocation
}

func notFound(op string) error {
	return &radiogarden.StatusError{Op: op, Code: 404}
}

func (m *MockDirectory) Places(ctx context.Context) (*radiogarden.PlacesResponse, error) {
	return &radiogarden.PlacesResponse{
		APIVersion: 1,
		Data:       radiogarden.PlacesData{List: m.PlaceList},
	}, nil
}

func (m *MockDirectory) PlaceChannels(ctx context.Context, placeID string) (*radiogarden.PlaceChannelsResponse, error) {
	if placeID == "" {
		return nil, radiogarden.ErrInvalidArgument
	}

	pages, ok := m.Channels[placeID]
	if !ok {
		return nil, notFound("mock.PlaceChannels")
	}

	items := make([]radiogarden.Item, 0, len(pages))
	for i := range pages {
		p := pages[i]
		items = append(items, radiogarden.Item{Page: &p})
	}

	return &radiogarden.PlaceChannelsResponse{
		APIVersion: 1,
		Data: radiogarden.PlaceChannelsData{
			Count:   len(pages),
			Content: []radiogarden.Content{{ItemsType: "channel", Type: "list", Items: items}},
		},
	}, nil
}

func (m *MockDirectory) ChannelDetails(ctx context.Context, channelID string) (*radiogarden.ChannelDetailsResponse, error) {
	if channelID == "" {
		return nil, radiogarden.ErrInvalidArgument
	}

	d, ok := m.Details[channelID]
	if !ok {
		return nil, notFound("mock.ChannelDetails")
	}
	return &radiogarden.ChannelDetailsResponse{APIVersion: 1, Data: d}, nil
}

func (m *MockDirectory) ChannelStreamURL(ctx context.Context, channelID string) (string, error) {
	if channelID == "" {
		return "", radiogarden.ErrInvalidArgument
	}

	u, ok := m.Streams[channelID]
	if !ok {
		return "", notFound("mock.ChannelStreamURL")
	}
	return u, nil
}

// Search matches place and channel titles case-insensitively.
func (m *MockDirectory) Search(ctx context.Context, query string) (*radiogarden.QueryResponse, error) {
	if strings.TrimSpace(query) == "" {
		return nil, radiogarden.ErrInvalidArgument
	}

	q := strings.ToLower(query)
	res := &radiogarden.QueryResponse{Query: query, APIVersion: 1}
	for _, p := range m.PlaceList {
		if strings.Contains(strings.ToLower(p.Title), q) {
			res.Hits.Hits = append(res.Hits.Hits, radiogarden.Hit{
				ID:     p.ID,
				Score:  1,
				Source: radiogarden.HitSource{Type: "place", Title: p.Title, Subtitle: p.Country, URL: p.URL},
			})
		}
	}
	for _, d := range m.Details {
		if strings.Contains(strings.ToLower(d.Title), q) {
			res.Hits.Hits = append(res.Hits.Hits, radiogarden.Hit{
				ID:     d.ID,
				Score:  1,
				Source: radiogarden.HitSource{Type: "channel", Title: d.Title, Subtitle: d.Place.Title, URL: d.URL, Secure: d.Secure},
			})
		}
	}
	return res, nil
}

func (m *MockDirectory) ClientGeoLocation(ctx context.Context) (*radiogarden.GeoLocation, error) {
	if m.Location == nil {
		return nil, notFound("mock.ClientGeoLocation")
	}
	loc := *m.Location
	return &loc, nil
}
