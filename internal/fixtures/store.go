package fixtures

import (
	"embed"
	"encoding/json"
	"fmt"
)

//go:embed data/*.json
var dataFS embed.FS

// Accommodation is a bundled lodging record. Region names follow the Ghana
// administrative regions used across the planner.
type Accommodation struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Regions       []string `json:"regions"`
	Rating        string   `json:"rating"` // "1-star".."5-star"
	PricePerNight float64  `json:"price_per_night"`
	Location      string   `json:"location"`
	Description   string   `json:"description"`
}

type Restaurant struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Regions     []string `json:"regions"`
	Category    string   `json:"category"`
	PriceRange  string   `json:"price_range"`
	Location    string   `json:"location"`
	Description string   `json:"description"`
}

// EntertainmentEvent recurs weekly on a fixed set of weekdays.
type EntertainmentEvent struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Regions     []string `json:"regions"`
	Venue       string   `json:"venue"`
	Days        []string `json:"days"` // weekday names
	Category    string   `json:"category"`
	Description string   `json:"description"`
}

// FestivalEvent runs over a fixed calendar interval, inclusive.
type FestivalEvent struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Regions     []string `json:"regions"`
	StartDate   string   `json:"start_date"` // YYYY-MM-DD
	EndDate     string   `json:"end_date"`
	Location    string   `json:"location"`
	Description string   `json:"description"`
}

type SampleItinerary struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Regions      []string `json:"regions"`
	Interests    []string `json:"interests"`
	DurationDays int      `json:"duration_days"`
	Summary      string   `json:"summary"`
}

type ArticleLink struct {
	Keyword string `json:"keyword"`
	URL     string `json:"url"`
}

type articleIndex struct {
	Articles   []ArticleLink `json:"articles"`
	DefaultURL string        `json:"default_url"`
}

// Store holds every fixture array. Loaded once at startup and read-only
// thereafter, so it is safe for unlimited concurrent readers.
type Store struct {
	Accommodations    []Accommodation
	Restaurants       []Restaurant
	Events            []EntertainmentEvent
	Festivals         []FestivalEvent
	SampleItineraries []SampleItinerary
	Articles          []ArticleLink
	DefaultArticleURL string
}

func Load() (*Store, error) {
	s := &Store{}

	if err := loadJSON("data/accommodations.json", &s.Accommodations); err != nil {
		return nil, err
	}
	if err := loadJSON("data/restaurants.json", &s.Restaurants); err != nil {
		return nil, err
	}
	if err := loadJSON("data/events.json", &s.Events); err != nil {
		return nil, err
	}
	if err := loadJSON("data/festivals.json", &s.Festivals); err != nil {
		return nil, err
	}
	if err := loadJSON("data/itineraries.json", &s.SampleItineraries); err != nil {
		return nil, err
	}

	var idx articleIndex
	if err := loadJSON("data/articles.json", &idx); err != nil {
		return nil, err
	}
	s.Articles = idx.Articles
	s.DefaultArticleURL = idx.DefaultURL

	return s, nil
}

func loadJSON(path string, out interface{}) error {
	raw, err := dataFS.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read fixture %s: %w", path, err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("parse fixture %s: %w", path, err)
	}
	return nil
}
