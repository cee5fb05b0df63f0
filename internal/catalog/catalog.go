package catalog

import (
	"errors"
	"slices"
	"strings"
)

var (
	// ErrNotFound marks a catalog path that does not exist.
	ErrNotFound = errors.New("catalog not found")
	// ErrFormat marks a catalog file that cannot be parsed at all.
	ErrFormat = errors.New("catalog format error")
)

// Station is one radio channel and its stream endpoint.
type Station struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	StreamURL string `json:"stream"`
	ImageURL  string `json:"image"`
}

// Playable reports whether the station has a stream to play.
func (s Station) Playable() bool {
	return strings.TrimSpace(s.StreamURL) != ""
}

// Catalog is an immutable, ordered set of stations. It is safe for
// concurrent reads.
type Catalog struct {
	stations []Station
	byID     map[string]int
	source   string
}

// New builds a catalog from stations in the given order. A repeated ID
// replaces the earlier station's values but keeps its position.
func New(source string, stations []Station) *Catalog {
	c := &Catalog{
		stations: make([]Station, 0, len(stations)),
		byID:     make(map[string]int, len(stations)),
		source:   source,
	}
	for _, st := range stations {
		if idx, ok := c.byID[st.ID]; ok && st.ID != "" {
			c.stations[idx] = st
			continue
		}
		if st.ID != "" {
			c.byID[st.ID] = len(c.stations)
		}
		c.stations = append(c.stations, st)
	}
	return c
}

// Source describes where the catalog was loaded from.
func (c *Catalog) Source() string {
	return c.source
}

// Len returns the number of stations, playable or not.
func (c *Catalog) Len() int {
	return len(c.stations)
}

// Stations returns a copy of every station in catalog order.
func (c *Catalog) Stations() []Station {
	return slices.Clone(c.stations)
}

// Playable returns the stations with a stream URL, in catalog order.
func (c *Catalog) Playable() []Station {
	out := make([]Station, 0, len(c.stations))
	for _, st := range c.stations {
		if st.Playable() {
			out = append(out, st)
		}
	}
	return out
}

// Lookup returns the station with the given ID.
func (c *Catalog) Lookup(id string) (Station, bool) {
	idx, ok := c.byID[strings.TrimSpace(id)]
	if !ok {
		return Station{}, false
	}
	return c.stations[idx], true
}

// Names returns every station name in catalog order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.stations))
	for _, st := range c.stations {
		names = append(names, st.Name)
	}
	return names
}
