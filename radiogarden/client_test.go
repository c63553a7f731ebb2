package radiogarden

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

// countingTransport records round trips without touching the network.
type countingTransport struct {
	calls atomic.Int32
}

func (t *countingTransport) RoundTrip(*http.Request) (*http.Response, error) {
	t.calls.Add(1)
	return nil, errors.New("unexpected round trip")
}

func newTestClient(t *testing.T, h http.Handler) *Client {
	t.Helper()

	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	return New(WithBaseURL(srv.URL+"/api"), WithTimeout(5*time.Second))
}

func TestClientPlaces(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/ara/content/places", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("method = %s, want GET", r.Method)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"apiVersion": 1,
			"version": "9bd5454",
			"data": {
				"list": [
					{"size": 12, "id": "Aq7xeIiB", "geo": [-0.1276, 51.5072], "url": "/visit/london/Aq7xeIiB", "boost": true, "title": "London", "country": "United Kingdom"},
					{"size": 4, "id": "Fv5MqYh7", "geo": [4.8897, 52.374], "url": "/visit/amsterdam/Fv5MqYh7", "boost": false, "title": "Amsterdam", "country": "Netherlands"}
				],
				"version": "1707297480"
			}
		}`))
	})

	c := newTestClient(t, mux)

	res, err := c.Places(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.APIVersion != 1 {
		t.Errorf("APIVersion = %d, want 1", res.APIVersion)
	}
	if len(res.Data.List) != 2 {
		t.Fatalf("expected 2 places, got %d", len(res.Data.List))
	}
	if res.Data.Version != "1707297480" {
		t.Errorf("list version = %q", res.Data.Version)
	}

	ams := res.Data.List[1]
	if ams.Geo.Lon != 4.8897 || ams.Geo.Lat != 52.374 {
		t.Errorf("amsterdam geo = %+v", ams.Geo)
	}
}

func TestClientNotFoundIsAbsent(t *testing.T) {
	c := newTestClient(t, http.NotFoundHandler())

	res, err := c.ChannelDetails(context.Background(), "missing")
	if res != nil {
		t.Fatalf("expected nil result, got %+v", res)
	}
	if !IsAbsent(err) {
		t.Fatalf("expected absent result, got %v", err)
	}
	if errors.Is(err, ErrDecode) {
		t.Fatalf("404 must not be a decode error: %v", err)
	}

	var se *StatusError
	if !errors.As(err, &se) || se.Code != http.StatusNotFound {
		t.Fatalf("expected StatusError with 404, got %v", err)
	}
}

func TestClientInvalidJSONIsDecodeError(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"apiVersion": 1, "data": {`))
	}))

	_, err := c.Places(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, ErrDecode) {
		t.Fatalf("expected decode error, got %v", err)
	}
	if IsAbsent(err) {
		t.Fatalf("decode error must not be absent: %v", err)
	}

	var de *DecodeError
	if !errors.As(err, &de) {
		t.Fatalf("expected *DecodeError, got %T", err)
	}
}

func TestClientBadGeoShapeIsDecodeError(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"apiVersion": 1, "data": {"list": [{"id": "x", "geo": [1, 2, 3]}]}}`))
	}))

	if _, err := c.Places(context.Background()); !errors.Is(err, ErrDecode) {
		t.Fatalf("expected decode error, got %v", err)
	}
}

func TestClientEmptyArgumentsSendNothing(t *testing.T) {
	spy := &countingTransport{}
	c := New(WithHTTPClient(&http.Client{Transport: spy}))
	ctx := context.Background()

	calls := map[string]func() error{
		"PlaceChannels": func() error {
			_, err := c.PlaceChannels(ctx, "")
			return err
		},
		"ChannelDetails": func() error {
			_, err := c.ChannelDetails(ctx, "")
			return err
		},
		"ChannelStreamURL": func() error {
			_, err := c.ChannelStreamURL(ctx, "")
			return err
		},
		"Search": func() error {
			_, err := c.Search(ctx, "")
			return err
		},
		"SearchBlank": func() error {
			_, err := c.Search(ctx, "   ")
			return err
		},
	}

	for name, call := range calls {
		if err := call(); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("%s: expected ErrInvalidArgument, got %v", name, err)
		}
	}

	if n := spy.calls.Load(); n != 0 {
		t.Fatalf("expected no round trips, got %d", n)
	}
}

func TestClientTransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close()

	c := New(WithBaseURL(base))

	_, err := c.ClientGeoLocation(context.Background())
	var te *TransportError
	if !errors.As(err, &te) {
		t.Fatalf("expected *TransportError, got %v", err)
	}
	if IsAbsent(err) || errors.Is(err, ErrDecode) {
		t.Fatalf("transport error misclassified: %v", err)
	}
}

func TestClientCancelledContext(t *testing.T) {
	c := newTestClient(t, http.NotFoundHandler())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Places(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestClientPathsAndQuery(t *testing.T) {
	var gotPath, gotQuery string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		gotQuery = r.URL.Query().Get("q")
		w.Write([]byte(`{}`))
	}))
	ctx := context.Background()

	if _, err := c.PlaceChannels(ctx, "Aq7xeIiB"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPath != "/api/ara/content/page/Aq7xeIiB/channels" {
		t.Errorf("place channels path = %q", gotPath)
	}

	if _, err := c.ChannelDetails(ctx, "a/b"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPath != "/api/ara/content/channel/a%2Fb" {
		t.Errorf("channel details path = %q", gotPath)
	}

	if _, err := c.Search(ctx, "rock & roll?"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPath != "/api/search" {
		t.Errorf("search path = %q", gotPath)
	}
	if gotQuery != "rock & roll?" {
		t.Errorf("search q = %q", gotQuery)
	}

	if _, err := c.ClientGeoLocation(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPath != "/api/geo" {
		t.Errorf("geo path = %q", gotPath)
	}
}

func TestClientGeoLocation(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"eu":true,"country_code":"NL","region_code":"NH","latitude":52.374,"longitude":4.8897,"city":"Amsterdam"}`))
	}))

	geo, err := c.ClientGeoLocation(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !geo.EU || geo.CountryCode != "NL" || geo.City != "Amsterdam" {
		t.Errorf("unexpected geolocation: %+v", geo)
	}
	if got := geo.Coordinates(); got.Lon != 4.8897 || got.Lat != 52.374 {
		t.Errorf("coordinates = %+v", got)
	}
}

func TestClientChannelStreamURLFollowsRedirect(t *testing.T) {
	var srvURL string
	mux := http.NewServeMux()
	mux.HandleFunc("/api/ara/content/listen/abcd1234/channel.mp3", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodHead {
			t.Errorf("method = %s, want HEAD", r.Method)
		}
		http.Redirect(w, r, srvURL+"/cdn/live.mp3", http.StatusFound)
	})
	mux.HandleFunc("/cdn/live.mp3", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "audio/mpeg")
		w.WriteHeader(http.StatusOK)
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()
	srvURL = srv.URL

	c := New(WithBaseURL(srv.URL + "/api"))

	got, err := c.ChannelStreamURL(context.Background(), "abcd1234")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != srv.URL+"/cdn/live.mp3" {
		t.Fatalf("stream url = %q, want %q", got, srv.URL+"/cdn/live.mp3")
	}
}

func TestClientChannelStreamURLUnsuccessful(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))

	got, err := c.ChannelStreamURL(context.Background(), "abcd1234")
	if got != "" {
		t.Fatalf("expected empty url, got %q", got)
	}
	if !IsAbsent(err) {
		t.Fatalf("expected absent result, got %v", err)
	}
}

func TestClientUserAgent(t *testing.T) {
	var ua string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ua = r.Header.Get("User-Agent")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := New(WithBaseURL(srv.URL), WithUserAgent("radio-garden-client/test"))
	if _, err := c.ClientGeoLocation(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ua != "radio-garden-client/test" {
		t.Fatalf("user agent = %q", ua)
	}
}

func TestClientTimeoutLeavesSharedClientAlone(t *testing.T) {
	shared := &http.Client{}

	for _, opts := range [][]Option{
		{WithHTTPClient(shared), WithTimeout(3 * time.Second)},
		{WithTimeout(3 * time.Second), WithHTTPClient(shared)},
	} {
		c := New(opts...)
		if shared.Timeout != 0 {
			t.Fatalf("shared client timeout = %v, want 0", shared.Timeout)
		}
		if c.session == shared {
			t.Fatal("client kept the shared http.Client instead of a copy")
		}
		if c.session.Timeout != 3*time.Second {
			t.Fatalf("client timeout = %v, want 3s", c.session.Timeout)
		}
	}
}
