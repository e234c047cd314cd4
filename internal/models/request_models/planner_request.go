package request_models

import (
	"time"

	"akwaaba/internal/models/response_models"
	"akwaaba/pkg/utils"
)

// GhanaRegions is the closed set of region names the planner understands.
var GhanaRegions = []string{
	"Greater Accra", "Ashanti", "Central", "Western", "Eastern", "Volta", "Northern",
}

// TripCriteria is the immutable trip description every planner flow starts
// from. It is owned by the caller for the duration of one request.
type TripCriteria struct {
	Duration     int      `json:"duration"`
	Regions      []string `json:"regions"`
	TravelStyle  string   `json:"travel_style"` // Budget | Mid-range | Luxury
	NumTravelers int      `json:"num_travelers"`
	StartDate    string   `json:"start_date"` // YYYY-MM-DD
}

// Validate rejects criteria the flows cannot work with; it returns
// utils.ErrInvalidInput wrapped errors only.
func (c TripCriteria) Validate() error {
	if c.Duration < 1 || c.Duration > 30 {
		return utils.ErrInvalidInput
	}
	if len(c.Regions) == 0 {
		return utils.ErrInvalidInput
	}
	switch c.TravelStyle {
	case "Budget", "Mid-range", "Luxury":
	default:
		return utils.ErrInvalidInput
	}
	if c.NumTravelers < 1 {
		return utils.ErrInvalidInput
	}
	if _, err := utils.ParseTripDate(c.StartDate); err != nil {
		return utils.ErrInvalidInput
	}
	return nil
}

func (c TripCriteria) Start() time.Time {
	t, _ := utils.ParseTripDate(c.StartDate)
	return t
}

type BudgetPlanRequest struct {
	Criteria    TripCriteria `json:"criteria"`
	TotalBudget float64      `json:"total_budget"` // USD for the whole party
}

type RegenerateRequest struct {
	Criteria TripCriteria `json:"criteria"`
	Notes    string       `json:"notes"`
}

type ChatRequest struct {
	Criteria  TripCriteria               `json:"criteria"`
	Itinerary response_models.Itinerary  `json:"itinerary"`
	History   []response_models.ChatTurn `json:"history"`
	Message   string                     `json:"message"`
}

type PackingListRequest struct {
	Criteria TripCriteria `json:"criteria"`
}

type LanguageGuideRequest struct {
	Regions []string `json:"regions"`
}

type SpeechRequest struct {
	Text string `json:"text"`
}
