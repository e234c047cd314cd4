package response_models

import (
	"fmt"
	"strings"

	"akwaaba/pkg/utils"
)

// ItineraryDay is produced only by the generative backend; flows validate
// and re-stamp it but never hand-construct one.
type ItineraryDay struct {
	Day         int    `json:"day"`
	Date        string `json:"date"`
	Weekday     string `json:"weekday"`
	OvernightIn string `json:"overnight_in"`
	Title       string `json:"title"`
	Details     string `json:"details"`
	DriveTime   string `json:"drive_time,omitempty"`
	BudgetNote  string `json:"budget_note,omitempty"`
}

type Itinerary struct {
	Days []ItineraryDay `json:"days"`
}

// Validate enforces the itinerary contract: exactly duration days, indices
// contiguous from 1, title and details populated for every day.
func (i *Itinerary) Validate(duration int) error {
	if len(i.Days) != duration {
		return fmt.Errorf("expected %d days, got %d", duration, len(i.Days))
	}
	for idx, day := range i.Days {
		if day.Day != idx+1 {
			return fmt.Errorf("day %d has index %d, want %d", idx+1, day.Day, idx+1)
		}
		if strings.TrimSpace(day.Title) == "" {
			return fmt.Errorf("day %d has no title", day.Day)
		}
		if strings.TrimSpace(day.Details) == "" {
			return fmt.Errorf("day %d has no details", day.Day)
		}
	}
	return nil
}

// StampDates overwrites dates and weekday labels with locally expanded
// values. Day labels are grounded here, never trusted from the model.
func (i *Itinerary) StampDates(dates []utils.TripDate) {
	for idx := range i.Days {
		if idx < len(dates) {
			i.Days[idx].Day = dates[idx].Day
			i.Days[idx].Date = dates[idx].Date
			i.Days[idx].Weekday = dates[idx].Weekday
		}
	}
}
