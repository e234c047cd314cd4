package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"akwaaba/cmd/fx/controllers_fx"
	"akwaaba/cmd/fx/db_fx"
	"akwaaba/cmd/fx/fixtures_fx"
	"akwaaba/cmd/fx/gateway_fx"
	"akwaaba/cmd/fx/planner_fx"
	"akwaaba/cmd/fx/trips_fx"
	"akwaaba/internal/api/controllers"
	"akwaaba/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	app := fx.New(
		fixtures_fx.Module,
		gateway_fx.Module,
		db_fx.Module,
		trips_fx.Module,
		planner_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server on :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	plannerController *controllers.PlannerController,
	browseController *controllers.BrowseController,
	tripsController *controllers.TripsController) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, plannerController, browseController, tripsController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	plannerController *controllers.PlannerController,
	browseController *controllers.BrowseController,
	tripsController *controllers.TripsController) {

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.POST("/session", tripsController.CreateSession)

	browseGroup := r.Group("/browse")
	browseGroup.GET("/accommodations", browseController.ListAccommodations)
	browseGroup.GET("/restaurants", browseController.ListRestaurants)
	browseGroup.GET("/events", browseController.ListEvents)
	browseGroup.GET("/festivals", browseController.ListFestivals)
	browseGroup.GET("/itineraries", browseController.ListSampleItineraries)
	browseGroup.GET("/articles/lookup", browseController.LookupArticle)

	plannerGroup := r.Group("/planner")
	plannerGroup.POST("/itinerary", plannerController.GenerateItinerary)
	plannerGroup.POST("/itinerary/regenerate", plannerController.RegenerateItinerary)
	plannerGroup.POST("/itinerary/chat", plannerController.ChatWithItinerary)
	plannerGroup.POST("/budget", plannerController.EstimateBudget)
	plannerGroup.POST("/budget-plan", plannerController.PlanFromBudget)
	plannerGroup.POST("/packing-list", plannerController.GeneratePackingList)
	plannerGroup.POST("/language-guide", plannerController.GenerateLanguageGuide)
	plannerGroup.POST("/speech", plannerController.SynthesizeSpeech)

	tripsGroup := r.Group("/trips")
	tripsGroup.Use(middleware.SessionAuthMiddleware())
	tripsGroup.POST("", tripsController.SaveTrip)
	tripsGroup.GET("", tripsController.ListTrips)
	tripsGroup.GET("/:id", tripsController.GetTrip)
	tripsGroup.DELETE("/:id", tripsController.DeleteTrip)
	tripsGroup.POST("/:id/feedback", tripsController.AddFeedback)
	tripsGroup.GET("/:id/feedback", tripsController.ListFeedback)
}
