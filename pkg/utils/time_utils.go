package utils

import "time"

// Ghana time location (GMT, +00:00)
var ghLoc = func() *time.Location {
	if loc, err := time.LoadLocation("Africa/Accra"); err == nil {
		return loc
	}
	return time.FixedZone("GMT", 0)
}()

const DateLayout = "2006-01-02"

// TripDate is one calendar day of a trip, grounded locally so the generative
// backend never has to do date arithmetic.
type TripDate struct {
	Day     int    `json:"day"`
	Date    string `json:"date"`
	Weekday string `json:"weekday"`
}

// ExpandTripDates returns exactly duration contiguous dates starting at
// start, inclusive of both endpoints. duration < 1 yields nil.
func ExpandTripDates(start time.Time, duration int) []TripDate {
	if duration < 1 {
		return nil
	}
	dates := make([]TripDate, 0, duration)
	for i := 0; i < duration; i++ {
		d := start.AddDate(0, 0, i)
		dates = append(dates, TripDate{
			Day:     i + 1,
			Date:    d.Format(DateLayout),
			Weekday: d.Weekday().String(),
		})
	}
	return dates
}

// ParseTripDate parses a YYYY-MM-DD string in Ghana time.
func ParseTripDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, ghLoc)
}

// TripEndDate returns the last calendar day of a trip, inclusive.
func TripEndDate(start time.Time, duration int) time.Time {
	if duration < 1 {
		return start
	}
	return start.AddDate(0, 0, duration-1)
}

func NowGhana() time.Time { return time.Now().In(ghLoc) }
