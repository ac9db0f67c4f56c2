package domain

import (
	"fmt"
	"strings"
)

// Place is a named point of interest handed to the route engine.
// Names are unique within a single solve.
type Place struct {
	Name string
	Lat  float64
	Lon  float64
}

func (p Place) Coords() Coordinates { return Coordinates{Lat: p.Lat, Lon: p.Lon} }

// CatalogPlace is a catalogue entry as stored by the place repositories.
// Only Name/Lat/Lon reach the route engine.
type CatalogPlace struct {
	ID          int
	Name        string
	City        string
	Category    string
	Description string
	Rating      float64
	Price       int
	Lat         float64
	Lon         float64
	OpeningHour int
	ClosingHour int
}

func (c CatalogPlace) Place() Place {
	return Place{Name: c.Name, Lat: c.Lat, Lon: c.Lon}
}

func (c CatalogPlace) PriceCategory() PriceCategory {
	return PriceCategoryFor(c.Price)
}

// ValidatePlaces checks places at the service boundary so the engine can
// assume numeric, in-range coordinates and unique names.
func ValidatePlaces(places []Place) error {
	seen := make(map[string]struct{}, len(places))
	for i, p := range places {
		name := strings.TrimSpace(p.Name)
		if name == "" {
			return fmt.Errorf("%w: place #%d: name must not be empty", ErrInvalidPlace, i+1)
		}
		if _, ok := seen[name]; ok {
			return fmt.Errorf("%w: place #%d: duplicate name %q", ErrInvalidPlace, i+1, name)
		}
		seen[name] = struct{}{}

		if err := p.Coords().Validate(); err != nil {
			return fmt.Errorf("%w: place %q: %v", ErrInvalidPlace, name, err)
		}
	}
	return nil
}
