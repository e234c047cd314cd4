package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"akwaaba/internal/models/db_models"
)

type FeedbackRepositoryInterface interface {
	CreateFeedback(ctx context.Context, feedback *db_models.TripFeedback) error
	ListFeedbackByTrip(ctx context.Context, tripID uuid.UUID, page, pageSize int) ([]db_models.TripFeedback, error)
}

type FeedbackRepository struct {
	db *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) FeedbackRepositoryInterface {
	return &FeedbackRepository{db: db}
}

func (r *FeedbackRepository) CreateFeedback(ctx context.Context, feedback *db_models.TripFeedback) error {
	return r.db.WithContext(ctx).Create(feedback).Error
}

func (r *FeedbackRepository) ListFeedbackByTrip(ctx context.Context, tripID uuid.UUID, page, pageSize int) ([]db_models.TripFeedback, error) {
	var feedbacks []db_models.TripFeedback
	err := r.db.WithContext(ctx).
		Where("trip_id = ?", tripID).
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Order("created_at DESC").
		Find(&feedbacks).Error
	return feedbacks, err
}
