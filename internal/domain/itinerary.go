package domain

import (
	"fmt"
	"time"
)

// Slot is a time-of-day bucket used to pick candidate places.
type Slot string

const (
	SlotMorning   Slot = "morning"
	SlotAfternoon Slot = "afternoon"
	SlotEvening   Slot = "evening"
)

// Slots lists slots in visiting order.
var Slots = []Slot{SlotMorning, SlotAfternoon, SlotEvening}

// Hour is the representative hour used to match opening times.
func (s Slot) Hour() int {
	switch s {
	case SlotMorning:
		return 10
	case SlotAfternoon:
		return 15
	case SlotEvening:
		return 21
	default:
		return 0
	}
}

// DayPlan holds the places selected for one day, keyed by slot.
type DayPlan struct {
	Day    string
	Places map[Slot]CatalogPlace
}

// DayLabel returns the human label for a zero-based day index.
func DayLabel(i int) string { return fmt.Sprintf("Day %d", i+1) }

// RoutePlaces returns the day's places in slot order, ready for routing.
// The first slot with a place becomes the depot.
func (d DayPlan) RoutePlaces() []Place {
	out := make([]Place, 0, len(d.Places))
	for _, s := range Slots {
		if p, ok := d.Places[s]; ok {
			out = append(out, p.Place())
		}
	}
	return out
}

// Itinerary is a generated multi-day trip with its optimized daily routes.
type Itinerary struct {
	ID            string
	City          string
	PriceCategory PriceCategory
	StartDate     time.Time
	EndDate       time.Time
	Days          []DayPlan
	Routes        []DayRoute
	CreatedAt     time.Time
}
