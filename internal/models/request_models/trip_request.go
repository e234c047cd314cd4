package request_models

import "akwaaba/internal/models/response_models"

type SaveTripRequest struct {
	Title     string                    `json:"title"`
	Criteria  TripCriteria              `json:"criteria"`
	Itinerary response_models.Itinerary `json:"itinerary"`
}

type FeedbackRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}
