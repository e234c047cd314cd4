package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"akwaaba/internal/models/db_models"
)

type TripRepositoryInterface interface {
	CreateTrip(ctx context.Context, trip *db_models.SavedTrip) error
	ListTripsBySession(ctx context.Context, sessionID uuid.UUID) ([]db_models.SavedTrip, error)
	GetTrip(ctx context.Context, sessionID, tripID uuid.UUID) (*db_models.SavedTrip, error)
	DeleteTrip(ctx context.Context, sessionID, tripID uuid.UUID) error
}

type TripRepository struct {
	db *gorm.DB
}

func NewTripRepository(db *gorm.DB) TripRepositoryInterface {
	return &TripRepository{db: db}
}

func (r *TripRepository) CreateTrip(ctx context.Context, trip *db_models.SavedTrip) error {
	return r.db.WithContext(ctx).Create(trip).Error
}

func (r *TripRepository) ListTripsBySession(ctx context.Context, sessionID uuid.UUID) ([]db_models.SavedTrip, error) {
	var trips []db_models.SavedTrip
	err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("created_at DESC").
		Find(&trips).Error
	return trips, err
}

func (r *TripRepository) GetTrip(ctx context.Context, sessionID, tripID uuid.UUID) (*db_models.SavedTrip, error) {
	var trip db_models.SavedTrip
	err := r.db.WithContext(ctx).
		Where("id = ? AND session_id = ?", tripID, sessionID).
		First(&trip).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &trip, nil
}

func (r *TripRepository) DeleteTrip(ctx context.Context, sessionID, tripID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND session_id = ?", tripID, sessionID).
		Delete(&db_models.SavedTrip{}).Error
}
