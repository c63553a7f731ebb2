// Package radiogarden is a typed client for the Radio Garden directory API.
//
// Every method issues a single request and returns either the decoded record
// or an error that can be told apart with errors.Is / errors.As:
//
//   - ErrInvalidArgument: a required argument was blank, nothing was sent.
//   - ErrUnsuccessful (*StatusError): the service answered with a non-2xx
//     status; the result is absent.
//   - ErrDecode (*DecodeError): a 2xx body did not match the expected shape.
//   - *TransportError: the request never produced a response.
//
// A Client holds no mutable state and is safe for concurrent use.
package radiogarden

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultBaseURL is the public API root of the service.
const DefaultBaseURL = "https://radio.garden/api"

type Client struct {
	session   *http.Client
	baseURL   string
	userAgent string
	timeout   time.Duration
}

type Option func(*Client)

// WithBaseURL points the client at another API root (tests, mirrors).
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(u, "/") }
}

// WithHTTPClient replaces the underlying transport client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.session = hc
		}
	}
}

// WithTimeout sets a whole-request timeout. It applies to a copy of the
// http.Client, so a client passed to WithHTTPClient is left untouched.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

func New(opts ...Option) *Client {
	c := &Client{
		session: &http.Client{},
		baseURL: DefaultBaseURL,
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.timeout > 0 {
		hc := *c.session
		hc.Timeout = c.timeout
		c.session = &hc
	}
	return c
}

// Places returns every place with registered stations.
func (c *Client) Places(ctx context.Context) (*PlacesResponse, error) {
	return getJSON[PlacesResponse](ctx, c, "radiogarden.Places", "/ara/content/places", nil)
}

// PlaceChannels returns the channels registered for placeID.
func (c *Client) PlaceChannels(ctx context.Context, placeID string) (*PlaceChannelsResponse, error) {
	const op = "radiogarden.PlaceChannels"

	placeID = strings.TrimSpace(placeID)
	if placeID == "" {
		return nil, invalidArgument(op, "placeID")
	}

	path := "/ara/content/page/" + url.PathEscape(placeID) + "/channels"
	return getJSON[PlaceChannelsResponse](ctx, c, op, path, nil)
}

// ChannelDetails returns the details of channelID.
func (c *Client) ChannelDetails(ctx context.Context, channelID string) (*ChannelDetailsResponse, error) {
	const op = "radiogarden.ChannelDetails"

	channelID = strings.TrimSpace(channelID)
	if channelID == "" {
		return nil, invalidArgument(op, "channelID")
	}

	path := "/ara/content/channel/" + url.PathEscape(channelID)
	return getJSON[ChannelDetailsResponse](ctx, c, op, path, nil)
}

// ChannelStreamURL resolves the broadcast URL of channelID. The listen
// endpoint redirects to the station's CDN; the URL reached after following
// redirects is returned.
func (c *Client) ChannelStreamURL(ctx context.Context, channelID string) (string, error) {
	const op = "radiogarden.ChannelStreamURL"

	channelID = strings.TrimSpace(channelID)
	if channelID == "" {
		return "", invalidArgument(op, "channelID")
	}

	path := "/ara/content/listen/" + url.PathEscape(channelID) + "/channel.mp3"
	return head(ctx, c, op, path)
}

// Search looks up countries, places and stations matching query.
func (c *Client) Search(ctx context.Context, query string) (*QueryResponse, error) {
	const op = "radiogarden.Search"

	if strings.TrimSpace(query) == "" {
		return nil, invalidArgument(op, "query")
	}

	q := url.Values{}
	q.Set("q", query)
	return getJSON[QueryResponse](ctx, c, op, "/search", q)
}

// ClientGeoLocation returns the service's geolocation of the caller.
func (c *Client) ClientGeoLocation(ctx context.Context) (*GeoLocation, error) {
	return getJSON[GeoLocation](ctx, c, "radiogarden.ClientGeoLocation", "/geo", nil)
}
