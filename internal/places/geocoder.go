// Package places resolves birth places to coordinates and UTC offsets
// without calling out to the network.
package places

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/sahilm/fuzzy"
)

// City is one row of the offline cities file.
type City struct {
	Name    string  `json:"name"`
	State   string  `json:"state,omitempty"`
	Country string  `json:"country,omitempty"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
}

// Place is a ranked lookup result.
type Place struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

// DisplayName joins the non-empty name, state and country.
func (c City) DisplayName() string {
	parts := []string{c.Name}
	if c.State != "" {
		parts = append(parts, c.State)
	}
	if c.Country != "" {
		parts = append(parts, c.Country)
	}
	return strings.Join(parts, ", ")
}

// LoadCities reads a JSON array of cities.
func LoadCities(path string) ([]City, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read cities file: %w", err)
	}
	var cities []City
	if err := json.Unmarshal(data, &cities); err != nil {
		return nil, fmt.Errorf("parse cities file %s: %w", path, err)
	}
	return cities, nil
}

// Geocoder ranks cities against a free-text query.
type Geocoder struct {
	cities  []City
	names   []string // lower-cased city names
	display []string // lower-cased display names, fuzzy search corpus
}

// NewGeocoder creates a new geocoder over cities
func NewGeocoder(cities []City) *Geocoder {
	g := &Geocoder{
		cities:  cities,
		names:   make([]string, len(cities)),
		display: make([]string, len(cities)),
	}
	for i, c := range cities {
		g.names[i] = strings.ToLower(c.Name)
		g.display[i] = strings.ToLower(c.DisplayName())
	}
	return g
}

// Len returns the number of loaded cities.
func (g *Geocoder) Len() int {
	return len(g.cities)
}

// Search returns up to limit places: exact name matches first, then name
// prefixes, then substrings of the display name, then fuzzy matches.
func (g *Geocoder) Search(query string, limit int) []Place {
	q := strings.ToLower(strings.TrimSpace(query))
	if len(q) < MinQueryLength || limit <= 0 {
		return []Place{}
	}

	var exact, prefix, contains []int
	for i, name := range g.names {
		switch {
		case name == q:
			exact = append(exact, i)
		case strings.HasPrefix(name, q):
			prefix = append(prefix, i)
		case strings.Contains(g.display[i], q):
			contains = append(contains, i)
		}
	}
	ranked := append(append(exact, prefix...), contains...)

	if len(ranked) < limit {
		seen := make(map[int]bool, len(ranked))
		for _, i := range ranked {
			seen[i] = true
		}
		for _, m := range fuzzy.Find(q, g.display) {
			if len(ranked) >= limit {
				break
			}
			if !seen[m.Index] {
				seen[m.Index] = true
				ranked = append(ranked, m.Index)
			}
		}
	}

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	out := make([]Place, 0, len(ranked))
	for _, i := range ranked {
		c := g.cities[i]
		out = append(out, Place{Name: c.DisplayName(), Lat: c.Lat, Lon: c.Lng})
	}
	return out
}
