package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"akwaaba/internal/models/db_models"
	"akwaaba/internal/models/request_models"
	"akwaaba/internal/models/response_models"
	"akwaaba/internal/repositories"
	"akwaaba/pkg/utils"
)

type SavedTripView struct {
	ID        uuid.UUID                  `json:"id"`
	Title     string                     `json:"title"`
	Criteria  request_models.TripCriteria `json:"criteria"`
	Itinerary response_models.Itinerary  `json:"itinerary"`
	CreatedAt int64                      `json:"created_at"`
}

type TripServiceInterface interface {
	SaveTrip(ctx context.Context, sessionID uuid.UUID, req request_models.SaveTripRequest) (*SavedTripView, error)
	ListTrips(ctx context.Context, sessionID uuid.UUID) ([]SavedTripView, error)
	GetTrip(ctx context.Context, sessionID, tripID uuid.UUID) (*SavedTripView, error)
	DeleteTrip(ctx context.Context, sessionID, tripID uuid.UUID) error
	AddFeedback(ctx context.Context, sessionID, tripID uuid.UUID, rating int, comment string) error
	ListFeedback(ctx context.Context, sessionID, tripID uuid.UUID, page, pageSize int) ([]db_models.TripFeedback, error)
}

type TripService struct {
	tripRepo     repositories.TripRepositoryInterface
	feedbackRepo repositories.FeedbackRepositoryInterface
}

func NewTripService(
	tripRepo repositories.TripRepositoryInterface,
	feedbackRepo repositories.FeedbackRepositoryInterface,
) TripServiceInterface {
	return &TripService{tripRepo: tripRepo, feedbackRepo: feedbackRepo}
}

func (s *TripService) SaveTrip(ctx context.Context, sessionID uuid.UUID, req request_models.SaveTripRequest) (*SavedTripView, error) {
	if err := req.Criteria.Validate(); err != nil {
		return nil, err
	}
	if err := req.Itinerary.Validate(req.Criteria.Duration); err != nil {
		return nil, utils.ErrInvalidInput
	}
	title := req.Title
	if title == "" {
		title = fmt.Sprintf("%d days in Ghana", req.Criteria.Duration)
	}

	criteriaJSON, err := json.Marshal(req.Criteria)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}
	itineraryJSON, err := json.Marshal(req.Itinerary)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	trip := &db_models.SavedTrip{
		SessionID: sessionID,
		Title:     title,
		Criteria:  string(criteriaJSON),
		Itinerary: string(itineraryJSON),
	}
	if err := s.tripRepo.CreateTrip(ctx, trip); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return tripView(trip)
}

func (s *TripService) ListTrips(ctx context.Context, sessionID uuid.UUID) ([]SavedTripView, error) {
	trips, err := s.tripRepo.ListTripsBySession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	views := make([]SavedTripView, 0, len(trips))
	for i := range trips {
		view, err := tripView(&trips[i])
		if err != nil {
			return nil, err
		}
		views = append(views, *view)
	}
	return views, nil
}

func (s *TripService) GetTrip(ctx context.Context, sessionID, tripID uuid.UUID) (*SavedTripView, error) {
	trip, err := s.tripRepo.GetTrip(ctx, sessionID, tripID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}
	return tripView(trip)
}

func (s *TripService) DeleteTrip(ctx context.Context, sessionID, tripID uuid.UUID) error {
	trip, err := s.tripRepo.GetTrip(ctx, sessionID, tripID)
	if err != nil {
		return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if trip == nil {
		return utils.ErrTripNotFound
	}
	if err := s.tripRepo.DeleteTrip(ctx, sessionID, tripID); err != nil {
		return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return nil
}

func (s *TripService) AddFeedback(ctx context.Context, sessionID, tripID uuid.UUID, rating int, comment string) error {
	if rating < 1 || rating > 5 {
		return utils.ErrFeedbackInvalid
	}
	trip, err := s.tripRepo.GetTrip(ctx, sessionID, tripID)
	if err != nil {
		return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if trip == nil {
		return utils.ErrTripNotFound
	}

	feedback := &db_models.TripFeedback{
		TripID:    tripID,
		SessionID: sessionID,
		Comment:   comment,
		Rating:    rating,
	}
	if err := s.feedbackRepo.CreateFeedback(ctx, feedback); err != nil {
		return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return nil
}

func (s *TripService) ListFeedback(ctx context.Context, sessionID, tripID uuid.UUID, page, pageSize int) ([]db_models.TripFeedback, error) {
	trip, err := s.tripRepo.GetTrip(ctx, sessionID, tripID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	feedbacks, err := s.feedbackRepo.ListFeedbackByTrip(ctx, tripID, page, pageSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return feedbacks, nil
}

func tripView(trip *db_models.SavedTrip) (*SavedTripView, error) {
	view := &SavedTripView{
		ID:        trip.ID,
		Title:     trip.Title,
		CreatedAt: trip.CreatedAt,
	}
	if err := json.Unmarshal([]byte(trip.Criteria), &view.Criteria); err != nil {
		return nil, fmt.Errorf("%w: stored criteria: %v", utils.ErrDatabaseError, err)
	}
	if err := json.Unmarshal([]byte(trip.Itinerary), &view.Itinerary); err != nil {
		return nil, fmt.Errorf("%w: stored itinerary: %v", utils.ErrDatabaseError, err)
	}
	return view, nil
}
