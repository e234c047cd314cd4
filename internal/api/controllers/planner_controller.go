package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"akwaaba/internal/models/request_models"
	"akwaaba/internal/services"
	"akwaaba/pkg/utils"
)

type PlannerController struct {
	itineraryService services.ItineraryServiceInterface
	chatService      services.ChatServiceInterface
	budgetService    services.BudgetServiceInterface
	packingService   services.PackingServiceInterface
	languageService  services.LanguageServiceInterface
}

func NewPlannerController(
	itineraryService services.ItineraryServiceInterface,
	chatService services.ChatServiceInterface,
	budgetService services.BudgetServiceInterface,
	packingService services.PackingServiceInterface,
	languageService services.LanguageServiceInterface,
) *PlannerController {
	return &PlannerController{
		itineraryService: itineraryService,
		chatService:      chatService,
		budgetService:    budgetService,
		packingService:   packingService,
		languageService:  languageService,
	}
}

// GenerateItinerary godoc
// @Summary Generate a day-by-day itinerary
// @Tags Planner
// @Accept json
// @Produce json
// @Param request body request_models.TripCriteria true "Trip criteria"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /planner/itinerary [post]
func (p *PlannerController) GenerateItinerary(c *gin.Context) {
	var criteria request_models.TripCriteria
	if err := c.ShouldBindJSON(&criteria); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	itinerary, err := p.itineraryService.GenerateItinerary(c.Request.Context(), criteria)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itinerary, "Itinerary generated successfully")
}

// RegenerateItinerary godoc
// @Summary Regenerate an itinerary from traveler notes
// @Tags Planner
// @Accept json
// @Produce json
// @Param request body request_models.RegenerateRequest true "Criteria and notes"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /planner/itinerary/regenerate [post]
func (p *PlannerController) RegenerateItinerary(c *gin.Context) {
	var req request_models.RegenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	itinerary, err := p.itineraryService.RegenerateFromNotes(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itinerary, "Itinerary regenerated successfully")
}

// ChatWithItinerary godoc
// @Summary Discuss or modify an itinerary in conversation
// @Tags Planner
// @Accept json
// @Produce json
// @Param request body request_models.ChatRequest true "Criteria, itinerary, history and message"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /planner/itinerary/chat [post]
func (p *PlannerController) ChatWithItinerary(c *gin.Context) {
	var req request_models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	reply, err := p.chatService.ChatWithItinerary(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, reply, "Chat reply generated successfully")
}

// EstimateBudget godoc
// @Summary Estimate a trip budget
// @Tags Planner
// @Accept json
// @Produce json
// @Param request body request_models.TripCriteria true "Trip criteria"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /planner/budget [post]
func (p *PlannerController) EstimateBudget(c *gin.Context) {
	var criteria request_models.TripCriteria
	if err := c.ShouldBindJSON(&criteria); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	breakdown, err := p.budgetService.EstimateBudget(c.Request.Context(), criteria)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, breakdown, "Budget estimated successfully")
}

// PlanFromBudget godoc
// @Summary Allocate a fixed budget across spending categories
// @Tags Planner
// @Accept json
// @Produce json
// @Param request body request_models.BudgetPlanRequest true "Criteria and total budget"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /planner/budget-plan [post]
func (p *PlannerController) PlanFromBudget(c *gin.Context) {
	var req request_models.BudgetPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	plan, err := p.budgetService.PlanFromBudget(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plan, "Budget plan generated successfully")
}

// GeneratePackingList godoc
// @Summary Generate a packing list for the trip
// @Tags Planner
// @Accept json
// @Produce json
// @Param request body request_models.PackingListRequest true "Trip criteria"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /planner/packing-list [post]
func (p *PlannerController) GeneratePackingList(c *gin.Context) {
	var req request_models.PackingListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	list, err := p.packingService.GeneratePackingList(c.Request.Context(), req.Criteria)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, list, "Packing list generated successfully")
}

// GenerateLanguageGuide godoc
// @Summary Generate a phrasebook for the visited regions
// @Tags Planner
// @Accept json
// @Produce json
// @Param request body request_models.LanguageGuideRequest true "Regions"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /planner/language-guide [post]
func (p *PlannerController) GenerateLanguageGuide(c *gin.Context) {
	var req request_models.LanguageGuideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	guide, err := p.languageService.GenerateLanguageGuide(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, guide, "Language guide generated successfully")
}

// SynthesizeSpeech godoc
// @Summary Convert a phrase into spoken audio
// @Tags Planner
// @Accept json
// @Produce json
// @Param request body request_models.SpeechRequest true "Text to speak"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /planner/speech [post]
func (p *PlannerController) SynthesizeSpeech(c *gin.Context) {
	var req request_models.SpeechRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	audio, err := p.languageService.SynthesizeSpeech(c.Request.Context(), req.Text)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, audio, "Speech synthesized successfully")
}
