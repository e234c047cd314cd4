package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"akwaaba/internal/models/request_models"
	"akwaaba/internal/services"
	"akwaaba/pkg/utils"
)

type TripsController struct {
	tripService services.TripServiceInterface
}

func NewTripsController(tripService services.TripServiceInterface) *TripsController {
	return &TripsController{tripService: tripService}
}

// CreateSession godoc
// @Summary Issue an anonymous session token
// @Description Saved trips are scoped to the session that created them
// @Tags Session
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /session [post]
func (t *TripsController) CreateSession(c *gin.Context) {
	sessionID := uuid.New()
	token, err := utils.CreateSessionToken(sessionID)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Could not create session")
		return
	}

	utils.RespondSuccess(c, gin.H{"session_id": sessionID.String(), "token": token}, "Session created successfully")
}

func sessionID(c *gin.Context) (uuid.UUID, bool) {
	raw, ok := c.Get("session_id")
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Missing session")
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw.(string))
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid session")
		return uuid.Nil, false
	}
	return id, true
}

func tripIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid trip ID")
		return uuid.Nil, false
	}
	return id, true
}

// SaveTrip godoc
// @Summary Save an itinerary for later
// @Tags Trips
// @Accept json
// @Produce json
// @Param request body request_models.SaveTripRequest true "Trip payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /trips [post]
func (t *TripsController) SaveTrip(c *gin.Context) {
	session, ok := sessionID(c)
	if !ok {
		return
	}

	var req request_models.SaveTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	trip, err := t.tripService.SaveTrip(c.Request.Context(), session, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trip, "Trip saved successfully")
}

// ListTrips godoc
// @Summary List trips saved by this session
// @Tags Trips
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /trips [get]
func (t *TripsController) ListTrips(c *gin.Context) {
	session, ok := sessionID(c)
	if !ok {
		return
	}

	trips, err := t.tripService.ListTrips(c.Request.Context(), session)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trips, "Trips fetched successfully")
}

// GetTrip godoc
// @Summary Fetch one saved trip
// @Tags Trips
// @Produce json
// @Param id path string true "Trip ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /trips/{id} [get]
func (t *TripsController) GetTrip(c *gin.Context) {
	session, ok := sessionID(c)
	if !ok {
		return
	}
	tripID, ok := tripIDParam(c)
	if !ok {
		return
	}

	trip, err := t.tripService.GetTrip(c.Request.Context(), session, tripID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trip, "Trip fetched successfully")
}

// DeleteTrip godoc
// @Summary Delete a saved trip
// @Tags Trips
// @Produce json
// @Param id path string true "Trip ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /trips/{id} [delete]
func (t *TripsController) DeleteTrip(c *gin.Context) {
	session, ok := sessionID(c)
	if !ok {
		return
	}
	tripID, ok := tripIDParam(c)
	if !ok {
		return
	}

	if err := t.tripService.DeleteTrip(c.Request.Context(), session, tripID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Trip deleted successfully")
}

// AddFeedback godoc
// @Summary Rate a saved trip
// @Tags Trips
// @Accept json
// @Produce json
// @Param id path string true "Trip ID"
// @Param request body request_models.FeedbackRequest true "Rating and comment"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /trips/{id}/feedback [post]
func (t *TripsController) AddFeedback(c *gin.Context) {
	session, ok := sessionID(c)
	if !ok {
		return
	}
	tripID, ok := tripIDParam(c)
	if !ok {
		return
	}

	var req request_models.FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := t.tripService.AddFeedback(c.Request.Context(), session, tripID, req.Rating, req.Comment); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Feedback added successfully")
}

// ListFeedback godoc
// @Summary List feedback for a saved trip
// @Tags Trips
// @Param id path string true "Trip ID"
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(20) minimum(1) maximum(100)
// @Success 200 {object} utils.APIResponse
// @Router /trips/{id}/feedback [get]
func (t *TripsController) ListFeedback(c *gin.Context) {
	session, ok := sessionID(c)
	if !ok {
		return
	}
	tripID, ok := tripIDParam(c)
	if !ok {
		return
	}

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page number")
		return
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("pageSize", "20"))
	if err != nil || pageSize < 1 || pageSize > 100 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page size")
		return
	}

	feedbacks, err := t.tripService.ListFeedback(c.Request.Context(), session, tripID, page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, feedbacks, "Feedback fetched successfully")
}
