package radiogarden

import (
	"bytes"
	"fmt"

	"github.com/goccy/go-json"
)

// Immutable geographic coordinates (longitude, latitude).
//
// The directory encodes them as a two element array [lon, lat] rather than an
// object, so Coordinates carries its own JSON codec.
type Coordinates struct {
	Lon float64
	Lat float64
}

// Return coordinates as [lon, lat] for external API compatibility.
func (c Coordinates) CoordsToList() []float64 { return []float64{c.Lon, c.Lat} }

func (c Coordinates) String() string {
	return fmt.Sprintf("Longitude: %g\nLatitude: %g", c.Lon, c.Lat)
}

func (c Coordinates) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.CoordsToList())
}

func (c *Coordinates) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}

	// Pointers keep a null element apart from a zero.
	var pair []*float64
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("decode coordinates: %w", err)
	}

	if len(pair) != 2 {
		return fmt.Errorf("decode coordinates: want [lon, lat], got %d elements", len(pair))
	}
	if pair[0] == nil || pair[1] == nil {
		return fmt.Errorf("decode coordinates: want two numbers, got %s", bytes.TrimSpace(data))
	}

	c.Lon = *pair[0]
	c.Lat = *pair[1]
	return nil
}
