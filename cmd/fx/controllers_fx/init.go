package controllers_fx

import (
	"go.uber.org/fx"

	"akwaaba/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewPlannerController),
	fx.Provide(controllers.NewBrowseController),
	fx.Provide(controllers.NewTripsController))
