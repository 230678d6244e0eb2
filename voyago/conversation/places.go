package conversation

import (
	"regexp"
	"strings"

	"voyago/voyago/types"
)

// maxPlaces caps image lookups per itinerary.
const maxPlaces = 5

var (
	// "Visit the Louvre", "Explore Montmartre, then...": the noun
	// phrase after the verb up to a comma, period, or end of line.
	visitRe = regexp.MustCompile(`(?i)(?:visit|explore|see|tour)\s+([A-Z][a-zA-Z\s]+?)(?:[,.]|$)`)
	// "lunch in Trastevere", "dinner at Nishiki Market"
	locationRe = regexp.MustCompile(`(?i)(?:in|at)\s+([A-Z][a-zA-Z\s]+?)(?:[,.]|$)`)
)

// ExtractPlaces pulls candidate place names from an itinerary: each
// day's city plus capitalized phrases inside activity text. The regex
// heuristics are a best effort, not a contract.
func ExtractPlaces(days []types.ItineraryDay) []string {
	var places []string

	add := func(place string) {
		place = strings.TrimSpace(place)
		if place == "" {
			return
		}
		for _, p := range places {
			if p == place {
				return
			}
		}
		places = append(places, place)
	}

	for _, day := range days {
		if day.City != "" {
			add(day.City)
		}
		for _, activity := range day.Activities {
			for _, re := range []*regexp.Regexp{visitRe, locationRe} {
				for _, m := range re.FindAllStringSubmatch(activity, -1) {
					if place := strings.TrimSpace(m[1]); len(place) > 3 {
						add(place)
					}
				}
			}
		}
	}

	if len(places) > maxPlaces {
		places = places[:maxPlaces]
	}
	return places
}
