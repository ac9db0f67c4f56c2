package services

import (
	"itinerary-route-service/internal/domain"
)

// SelectDailyPlaces distributes ranked candidates across days.
//
// For every day, each slot (morning, afternoon, evening) takes the
// highest-ranked candidate of that slot not yet used anywhere in the
// itinerary. A slot whose list runs dry is left empty; a day may end up with
// no places at all, which the route planner skips.
func SelectDailyPlaces(numDays int, candidates map[domain.Slot][]domain.CatalogPlace) []domain.DayPlan {
	if numDays <= 0 {
		return []domain.DayPlan{}
	}

	used := make(map[string]struct{})
	cursor := make(map[domain.Slot]int, len(domain.Slots))

	days := make([]domain.DayPlan, 0, numDays)
	for d := 0; d < numDays; d++ {
		day := domain.DayPlan{
			Day:    domain.DayLabel(d),
			Places: make(map[domain.Slot]domain.CatalogPlace),
		}

		for _, slot := range domain.Slots {
			list := candidates[slot]
			i := cursor[slot]

			// Skip places already scheduled in another slot or day.
			for i < len(list) {
				if _, ok := used[list[i].Name]; !ok {
					break
				}
				i++
			}

			if i < len(list) {
				day.Places[slot] = list[i]
				used[list[i].Name] = struct{}{}
				i++
			}
			cursor[slot] = i
		}

		days = append(days, day)
	}

	return days
}

// DayPlacesFrom converts selected day plans into route engine input.
func DayPlacesFrom(plans []domain.DayPlan) []DayPlaces {
	out := make([]DayPlaces, 0, len(plans))
	for _, p := range plans {
		out = append(out, DayPlaces{Day: p.Day, Places: p.RoutePlaces()})
	}
	return out
}
