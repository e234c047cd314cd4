package retrieval

import (
	"strings"
	"time"

	"akwaaba/internal/fixtures"
	"akwaaba/pkg/utils"
)

// Retriever answers "what do we have for this trip" questions over the
// fixture store. Every method is a pure function of the store and its
// arguments; results keep source order.
//
// Common policy: a record matches when its region tag intersects the target
// regions AND the secondary criterion (style, date range, interests) matches.
// If that strict pass comes up empty and a secondary criterion was supplied,
// the filter is re-run on the secondary criterion alone - showing something
// plausible beats showing nothing. The empty check is on the filtered set,
// never on the inputs.
type Retriever struct {
	store *fixtures.Store
}

func NewRetriever(store *fixtures.Store) *Retriever {
	return &Retriever{store: store}
}

// Style synonym tables. Matching is case-insensitive and tolerates a
// missing "-star" suffix on accommodation ratings.
var accommodationStyles = map[string][]string{
	"budget":    {"1-star", "2-star"},
	"mid-range": {"3-star"},
	"luxury":    {"4-star", "5-star"},
}

var restaurantStyles = map[string][]string{
	"budget":    {"fast food", "local dining", "home-style dining"},
	"mid-range": {"casual dining", "local dining"},
	"luxury":    {"fine dining", "hotel restaurant"},
}

func (r *Retriever) Accommodations(regions []string, style string) []fixtures.Accommodation {
	synonyms := accommodationStyles[strings.ToLower(style)]

	match := func(a fixtures.Accommodation, withRegion bool) bool {
		if withRegion && !regionsIntersect(a.Regions, regions) {
			return false
		}
		if len(synonyms) == 0 {
			return true
		}
		return matchesAnySynonym(a.Rating+" "+a.Description, synonyms)
	}

	out := filterSlice(r.store.Accommodations, func(a fixtures.Accommodation) bool { return match(a, true) })
	if len(out) == 0 && len(synonyms) > 0 {
		out = filterSlice(r.store.Accommodations, func(a fixtures.Accommodation) bool { return match(a, false) })
	}
	return out
}

func (r *Retriever) Restaurants(regions []string, style string) []fixtures.Restaurant {
	synonyms := restaurantStyles[strings.ToLower(style)]

	match := func(rec fixtures.Restaurant, withRegion bool) bool {
		if withRegion && !regionsIntersect(rec.Regions, regions) {
			return false
		}
		if len(synonyms) == 0 {
			return true
		}
		return matchesAnySynonym(rec.Category+" "+rec.Description, synonyms)
	}

	out := filterSlice(r.store.Restaurants, func(rec fixtures.Restaurant) bool { return match(rec, true) })
	if len(out) == 0 && len(synonyms) > 0 {
		out = filterSlice(r.store.Restaurants, func(rec fixtures.Restaurant) bool { return match(rec, false) })
	}
	return out
}

// Events returns recurring entertainment whose weekday set intersects the
// weekdays covered by [start, end].
func (r *Retriever) Events(regions []string, start, end time.Time) []fixtures.EntertainmentEvent {
	tripDays := weekdaysCovered(start, end)

	match := func(e fixtures.EntertainmentEvent, withRegion bool) bool {
		if withRegion && !regionsIntersect(e.Regions, regions) {
			return false
		}
		if len(tripDays) == 0 {
			return true
		}
		for _, d := range e.Days {
			if tripDays[strings.ToLower(d)] {
				return true
			}
		}
		return false
	}

	out := filterSlice(r.store.Events, func(e fixtures.EntertainmentEvent) bool { return match(e, true) })
	if len(out) == 0 && len(tripDays) > 0 {
		out = filterSlice(r.store.Events, func(e fixtures.EntertainmentEvent) bool { return match(e, false) })
	}
	return out
}

// Festivals returns dated festivals whose interval overlaps [start, end]:
// recordStart <= userEnd AND recordEnd >= userStart.
func (r *Retriever) Festivals(regions []string, start, end time.Time) []fixtures.FestivalEvent {
	hasRange := !start.IsZero() && !end.IsZero()

	match := func(f fixtures.FestivalEvent, withRegion bool) bool {
		if withRegion && !regionsIntersect(f.Regions, regions) {
			return false
		}
		if !hasRange {
			return true
		}
		fs, err1 := utils.ParseTripDate(f.StartDate)
		fe, err2 := utils.ParseTripDate(f.EndDate)
		if err1 != nil || err2 != nil {
			return false
		}
		return !fs.After(end) && !fe.Before(start)
	}

	out := filterSlice(r.store.Festivals, func(f fixtures.FestivalEvent) bool { return match(f, true) })
	if len(out) == 0 && hasRange {
		out = filterSlice(r.store.Festivals, func(f fixtures.FestivalEvent) bool { return match(f, false) })
	}
	return out
}

// SampleItineraries matches on regions plus interest tags, and when duration
// is positive keeps plans within two days of the requested length.
func (r *Retriever) SampleItineraries(regions, interests []string, duration int) []fixtures.SampleItinerary {
	hasSecondary := len(interests) > 0 || duration > 0

	match := func(s fixtures.SampleItinerary, withRegion bool) bool {
		if withRegion && !regionsIntersect(s.Regions, regions) {
			return false
		}
		if len(interests) > 0 && !regionsIntersect(s.Interests, interests) {
			return false
		}
		if duration > 0 {
			diff := s.DurationDays - duration
			if diff < -2 || diff > 2 {
				return false
			}
		}
		return true
	}

	out := filterSlice(r.store.SampleItineraries, func(s fixtures.SampleItinerary) bool { return match(s, true) })
	if len(out) == 0 && hasSecondary {
		out = filterSlice(r.store.SampleItineraries, func(s fixtures.SampleItinerary) bool { return match(s, false) })
	}
	return out
}

func filterSlice[T any](in []T, keep func(T) bool) []T {
	var out []T
	for _, rec := range in {
		if keep(rec) {
			out = append(out, rec)
		}
	}
	return out
}

func regionsIntersect(have, want []string) bool {
	if len(want) == 0 {
		return true
	}
	for _, h := range have {
		for _, w := range want {
			if strings.EqualFold(strings.TrimSpace(h), strings.TrimSpace(w)) {
				return true
			}
		}
	}
	return false
}

// matchesAnySynonym does a case-insensitive containment check, stripping
// "-star" suffixes so "2-star" matches a description saying "2 star" or "2-star".
func matchesAnySynonym(text string, synonyms []string) bool {
	haystack := strings.ToLower(text)
	stripped := strings.ReplaceAll(haystack, "-star", " star")
	for _, syn := range synonyms {
		s := strings.ToLower(syn)
		if strings.Contains(haystack, s) {
			return true
		}
		if strings.Contains(stripped, strings.ReplaceAll(s, "-star", " star")) {
			return true
		}
	}
	return false
}

// weekdaysCovered lists the weekday names spanned by the range, lowercased.
// A range of seven or more days covers everything.
func weekdaysCovered(start, end time.Time) map[string]bool {
	if start.IsZero() || end.IsZero() || end.Before(start) {
		return nil
	}
	days := make(map[string]bool)
	for d := start; !d.After(end) && len(days) < 7; d = d.AddDate(0, 0, 1) {
		days[strings.ToLower(d.Weekday().String())] = true
	}
	return days
}
