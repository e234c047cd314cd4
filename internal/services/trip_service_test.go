package services_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"akwaaba/internal/models/db_models"
	"akwaaba/internal/models/request_models"
	"akwaaba/internal/models/response_models"
	"akwaaba/internal/services"
	"akwaaba/pkg/utils"
)

// ---- mock repositories ----

type mockTripRepo struct {
	createFn func(ctx context.Context, trip *db_models.SavedTrip) error
	listFn   func(ctx context.Context, sessionID uuid.UUID) ([]db_models.SavedTrip, error)
	getFn    func(ctx context.Context, sessionID, tripID uuid.UUID) (*db_models.SavedTrip, error)
	deleteFn func(ctx context.Context, sessionID, tripID uuid.UUID) error
}

func (m *mockTripRepo) CreateTrip(ctx context.Context, trip *db_models.SavedTrip) error {
	return m.createFn(ctx, trip)
}
func (m *mockTripRepo) ListTripsBySession(ctx context.Context, sessionID uuid.UUID) ([]db_models.SavedTrip, error) {
	return m.listFn(ctx, sessionID)
}
func (m *mockTripRepo) GetTrip(ctx context.Context, sessionID, tripID uuid.UUID) (*db_models.SavedTrip, error) {
	return m.getFn(ctx, sessionID, tripID)
}
func (m *mockTripRepo) DeleteTrip(ctx context.Context, sessionID, tripID uuid.UUID) error {
	return m.deleteFn(ctx, sessionID, tripID)
}

type mockFeedbackRepo struct {
	createFn func(ctx context.Context, feedback *db_models.TripFeedback) error
	listFn   func(ctx context.Context, tripID uuid.UUID, page, pageSize int) ([]db_models.TripFeedback, error)
}

func (m *mockFeedbackRepo) CreateFeedback(ctx context.Context, feedback *db_models.TripFeedback) error {
	return m.createFn(ctx, feedback)
}
func (m *mockFeedbackRepo) ListFeedbackByTrip(ctx context.Context, tripID uuid.UUID, page, pageSize int) ([]db_models.TripFeedback, error) {
	return m.listFn(ctx, tripID, page, pageSize)
}

func saveTripRequest(t *testing.T) request_models.SaveTripRequest {
	t.Helper()
	var itinerary response_models.Itinerary
	require.NoError(t, json.Unmarshal([]byte(threeDayItineraryJSON), &itinerary))
	return request_models.SaveTripRequest{
		Title:     "Long weekend in Accra",
		Criteria:  testCriteria(),
		Itinerary: itinerary,
	}
}

func storedTrip(t *testing.T, sessionID uuid.UUID) *db_models.SavedTrip {
	t.Helper()
	req := saveTripRequest(t)
	criteria, err := json.Marshal(req.Criteria)
	require.NoError(t, err)
	itinerary, err := json.Marshal(req.Itinerary)
	require.NoError(t, err)
	return &db_models.SavedTrip{
		BaseModel: db_models.BaseModel{ID: uuid.New()},
		SessionID: sessionID,
		Title:     req.Title,
		Criteria:  string(criteria),
		Itinerary: string(itinerary),
	}
}

func TestSaveTrip(t *testing.T) {
	sessionID := uuid.New()
	tripRepo := &mockTripRepo{
		createFn: func(_ context.Context, trip *db_models.SavedTrip) error {
			assert.Equal(t, sessionID, trip.SessionID)
			assert.Equal(t, "Long weekend in Accra", trip.Title)
			assert.JSONEq(t, threeDayItineraryJSON, trip.Itinerary)
			trip.ID = uuid.New()
			return nil
		},
	}
	svc := services.NewTripService(tripRepo, &mockFeedbackRepo{})

	view, err := svc.SaveTrip(context.Background(), sessionID, saveTripRequest(t))
	require.NoError(t, err)
	assert.Equal(t, "Long weekend in Accra", view.Title)
	assert.Len(t, view.Itinerary.Days, 3)
	assert.Equal(t, 3, view.Criteria.Duration)
}

func TestSaveTrip_DefaultTitle(t *testing.T) {
	tripRepo := &mockTripRepo{
		createFn: func(_ context.Context, trip *db_models.SavedTrip) error {
			assert.Equal(t, "3 days in Ghana", trip.Title)
			return nil
		},
	}
	svc := services.NewTripService(tripRepo, &mockFeedbackRepo{})

	req := saveTripRequest(t)
	req.Title = ""
	_, err := svc.SaveTrip(context.Background(), uuid.New(), req)
	require.NoError(t, err)
}

func TestSaveTrip_MismatchedItineraryRejected(t *testing.T) {
	svc := services.NewTripService(&mockTripRepo{}, &mockFeedbackRepo{})

	req := saveTripRequest(t)
	req.Itinerary.Days = req.Itinerary.Days[:2]
	_, err := svc.SaveTrip(context.Background(), uuid.New(), req)
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestSaveTrip_RepoFailure(t *testing.T) {
	tripRepo := &mockTripRepo{
		createFn: func(_ context.Context, _ *db_models.SavedTrip) error {
			return errors.New("connection refused")
		},
	}
	svc := services.NewTripService(tripRepo, &mockFeedbackRepo{})

	_, err := svc.SaveTrip(context.Background(), uuid.New(), saveTripRequest(t))
	assert.ErrorIs(t, err, utils.ErrDatabaseError)
}

func TestGetTrip_NotFound(t *testing.T) {
	tripRepo := &mockTripRepo{
		getFn: func(_ context.Context, _, _ uuid.UUID) (*db_models.SavedTrip, error) {
			return nil, nil
		},
	}
	svc := services.NewTripService(tripRepo, &mockFeedbackRepo{})

	_, err := svc.GetTrip(context.Background(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, utils.ErrTripNotFound)
}

func TestGetTrip(t *testing.T) {
	sessionID := uuid.New()
	stored := storedTrip(t, sessionID)
	tripRepo := &mockTripRepo{
		getFn: func(_ context.Context, gotSession, gotTrip uuid.UUID) (*db_models.SavedTrip, error) {
			assert.Equal(t, sessionID, gotSession)
			assert.Equal(t, stored.ID, gotTrip)
			return stored, nil
		},
	}
	svc := services.NewTripService(tripRepo, &mockFeedbackRepo{})

	view, err := svc.GetTrip(context.Background(), sessionID, stored.ID)
	require.NoError(t, err)
	assert.Equal(t, stored.ID, view.ID)
	assert.Len(t, view.Itinerary.Days, 3)
}

func TestListTrips(t *testing.T) {
	sessionID := uuid.New()
	tripRepo := &mockTripRepo{
		listFn: func(_ context.Context, _ uuid.UUID) ([]db_models.SavedTrip, error) {
			return []db_models.SavedTrip{*storedTrip(t, sessionID), *storedTrip(t, sessionID)}, nil
		},
	}
	svc := services.NewTripService(tripRepo, &mockFeedbackRepo{})

	views, err := svc.ListTrips(context.Background(), sessionID)
	require.NoError(t, err)
	assert.Len(t, views, 2)
}

func TestDeleteTrip_NotFound(t *testing.T) {
	tripRepo := &mockTripRepo{
		getFn: func(_ context.Context, _, _ uuid.UUID) (*db_models.SavedTrip, error) {
			return nil, nil
		},
		deleteFn: func(_ context.Context, _, _ uuid.UUID) error {
			t.Fatal("delete must not run for a missing trip")
			return nil
		},
	}
	svc := services.NewTripService(tripRepo, &mockFeedbackRepo{})

	err := svc.DeleteTrip(context.Background(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, utils.ErrTripNotFound)
}

func TestAddFeedback(t *testing.T) {
	sessionID := uuid.New()
	stored := storedTrip(t, sessionID)
	tripRepo := &mockTripRepo{
		getFn: func(_ context.Context, _, _ uuid.UUID) (*db_models.SavedTrip, error) {
			return stored, nil
		},
	}
	feedbackRepo := &mockFeedbackRepo{
		createFn: func(_ context.Context, feedback *db_models.TripFeedback) error {
			assert.Equal(t, stored.ID, feedback.TripID)
			assert.Equal(t, 5, feedback.Rating)
			return nil
		},
	}
	svc := services.NewTripService(tripRepo, feedbackRepo)

	err := svc.AddFeedback(context.Background(), sessionID, stored.ID, 5, "Perfect week")
	require.NoError(t, err)
}

func TestAddFeedback_RatingBounds(t *testing.T) {
	svc := services.NewTripService(&mockTripRepo{}, &mockFeedbackRepo{})

	for _, rating := range []int{0, -1, 6} {
		err := svc.AddFeedback(context.Background(), uuid.New(), uuid.New(), rating, "")
		assert.ErrorIs(t, err, utils.ErrFeedbackInvalid, "rating %d", rating)
	}
}

func TestListFeedback_ClampsPagination(t *testing.T) {
	sessionID := uuid.New()
	stored := storedTrip(t, sessionID)
	tripRepo := &mockTripRepo{
		getFn: func(_ context.Context, _, _ uuid.UUID) (*db_models.SavedTrip, error) {
			return stored, nil
		},
	}
	feedbackRepo := &mockFeedbackRepo{
		listFn: func(_ context.Context, _ uuid.UUID, page, pageSize int) ([]db_models.TripFeedback, error) {
			assert.Equal(t, 1, page)
			assert.Equal(t, 20, pageSize)
			return nil, nil
		},
	}
	svc := services.NewTripService(tripRepo, feedbackRepo)

	_, err := svc.ListFeedback(context.Background(), sessionID, stored.ID, 0, 500)
	require.NoError(t, err)
}
