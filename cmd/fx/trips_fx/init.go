package trips_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"akwaaba/internal/repositories"
	"akwaaba/internal/services"
)

var Module = fx.Provide(
	provideTripRepo, provideFeedbackRepo, provideTripService,
)

func provideTripRepo(db *gorm.DB) repositories.TripRepositoryInterface {
	return repositories.NewTripRepository(db)
}

func provideFeedbackRepo(db *gorm.DB) repositories.FeedbackRepositoryInterface {
	return repositories.NewFeedbackRepository(db)
}

func provideTripService(
	tripRepo repositories.TripRepositoryInterface,
	feedbackRepo repositories.FeedbackRepositoryInterface,
) services.TripServiceInterface {
	return services.NewTripService(tripRepo, feedbackRepo)
}
