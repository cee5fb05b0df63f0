package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

//go:embed stations_es.json
var defaultCatalog string

// DefaultSource names the embedded catalog.
const DefaultSource = "embedded:stations_es.json"

type record struct {
	Name   string `json:"name"`
	Stream string `json:"stream"`
	Image  string `json:"image"`
}

// Default returns the embedded sample catalog.
func Default() (*Catalog, error) {
	stations, _, err := decodeJSON(strings.NewReader(defaultCatalog))
	if err != nil {
		return nil, fmt.Errorf("embedded catalog: %w", err)
	}
	return New(DefaultSource, stations), nil
}

// decodeJSON reads a keyed station mapping, keeping key order. Values that are
// not station objects, or that lack a name, are skipped and counted.
func decodeJSON(r io.Reader) ([]Station, int, error) {
	dec := json.NewDecoder(r)
	tok, err := dec.Token()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, 0, fmt.Errorf("%w: expected an object keyed by station id", ErrFormat)
	}

	var (
		stations []Station
		skipped  int
	)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, 0, fmt.Errorf("%w: %v", ErrFormat, err)
		}
		id, _ := keyTok.(string)

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, 0, fmt.Errorf("%w: station %q: %v", ErrFormat, id, err)
		}
		var rec record
		if err := json.Unmarshal(raw, &rec); err != nil {
			skipped++
			continue
		}
		name := strings.TrimSpace(rec.Name)
		if name == "" {
			skipped++
			continue
		}
		stations = append(stations, Station{
			ID:        id,
			Name:      name,
			StreamURL: strings.TrimSpace(rec.Stream),
			ImageURL:  strings.TrimSpace(rec.Image),
		})
	}
	if _, err := dec.Token(); err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	return stations, skipped, nil
}

// encodeJSON writes stations back in the keyed layout, preserving order.
func encodeJSON(w io.Writer, stations []Station) error {
	if _, err := io.WriteString(w, "{\n"); err != nil {
		return err
	}
	for i, st := range stations {
		key, err := json.Marshal(st.ID)
		if err != nil {
			return err
		}
		value, err := json.MarshalIndent(record{Name: st.Name, Stream: st.StreamURL, Image: st.ImageURL}, "  ", "  ")
		if err != nil {
			return err
		}
		sep := ",\n"
		if i == len(stations)-1 {
			sep = "\n"
		}
		if _, err := fmt.Fprintf(w, "  %s: %s%s", key, value, sep); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "}\n")
	return err
}
