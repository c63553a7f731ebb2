package radiogarden

import "strings"

// Place is a location in the directory with one or more registered stations.
type Place struct {
	Size    int         `json:"size"`
	ID      string      `json:"id"`
	Geo     Coordinates `json:"geo"`
	URL     string      `json:"url"`
	Boost   bool        `json:"boost"`
	Title   string      `json:"title"`
	Country string      `json:"country"`
}

// PlacesResponse is the envelope returned for the full places list.
type PlacesResponse struct {
	APIVersion int        `json:"apiVersion"`
	Version    string     `json:"version"`
	Data       PlacesData `json:"data"`
}

type PlacesData struct {
	List    []Place `json:"list"`
	Version string  `json:"version"`
}

// ChannelPage is the short channel entry listed under a place.
type ChannelPage struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	URL    string `json:"url"`
	Stream string `json:"stream"`
}

// ID derives the channel id from the last path segment of URL.
// It is empty when URL is empty or contains no '/'.
func (p ChannelPage) ID() string {
	i := strings.LastIndex(p.URL, "/")
	if i < 0 {
		return ""
	}
	return p.URL[i+1:]
}

type PlaceChannelsResponse struct {
	APIVersion int               `json:"apiVersion"`
	Version    string            `json:"version"`
	Data       PlaceChannelsData `json:"data"`
}

type PlaceChannelsData struct {
	Map      string `json:"map"`
	URL      string `json:"url"`
	Type     string `json:"type"`
	Count    int    `json:"count"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	// The service spells this key "utfcOffset".
	UTCOffset int       `json:"utfcOffset"`
	Content   []Content `json:"content"`
}

type Content struct {
	ItemsType string `json:"itemsType"`
	Type      string `json:"type"`
	Items     []Item `json:"items"`
}

type Item struct {
	Page *ChannelPage `json:"page,omitempty"`
}

// Channels flattens data.content[].items[].page, skipping items without a page.
func (r *PlaceChannelsResponse) Channels() []ChannelPage {
	out := make([]ChannelPage, 0, r.Data.Count)
	for _, c := range r.Data.Content {
		for _, it := range c.Items {
			if it.Page == nil {
				continue
			}
			out = append(out, *it.Page)
		}
	}
	return out
}

type ChannelDetailsResponse struct {
	APIVersion int           `json:"apiVersion"`
	Version    string        `json:"version"`
	Data       ChannelDetail `json:"data"`
}

// ChannelDetail describes a single station.
type ChannelDetail struct {
	Type    string         `json:"type"`
	Title   string         `json:"title"`
	ID      string         `json:"id"`
	URL     string         `json:"url"`
	Stream  string         `json:"stream"`
	Website string         `json:"website"`
	Secure  bool           `json:"secure"`
	Place   ChannelPlace   `json:"place"`
	Country ChannelCountry `json:"country"`
}

type ChannelPlace struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type ChannelCountry struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// QueryResponse is the search result envelope. Hits are nested one level
// deeper on the wire ("hits": {"hits": [...]}).
type QueryResponse struct {
	Took       int    `json:"took"`
	Hits       Hits   `json:"hits"`
	Query      string `json:"query"`
	Version    string `json:"version"`
	APIVersion int    `json:"apiVersion"`
}

type Hits struct {
	Hits []Hit `json:"hits"`
}

type Hit struct {
	ID     string    `json:"_id"`
	Score  float64   `json:"_score"`
	Source HitSource `json:"_source"`
}

type HitSource struct {
	Code     string `json:"code"`
	Stream   string `json:"stream"`
	Subtitle string `json:"subtitle"`
	Type     string `json:"type"`
	Title    string `json:"title"`
	Secure   bool   `json:"secure"`
	URL      string `json:"url"`
}

// GeoLocation is the service's guess of the caller's location. Unlike Place
// it uses plain latitude/longitude fields.
type GeoLocation struct {
	EU          bool    `json:"eu"`
	CountryCode string  `json:"country_code"`
	RegionCode  string  `json:"region_code"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	City        string  `json:"city"`
}

// Coordinates returns the location as a coordinate pair.
func (g GeoLocation) Coordinates() Coordinates {
	return Coordinates{Lon: g.Longitude, Lat: g.Latitude}
}
