package controllers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"akwaaba/internal/retrieval"
	"akwaaba/pkg/utils"
)

type BrowseController struct {
	retriever *retrieval.Retriever
}

func NewBrowseController(retriever *retrieval.Retriever) *BrowseController {
	return &BrowseController{retriever: retriever}
}

// regionsParam splits the comma-separated "regions" query into names.
func regionsParam(c *gin.Context) []string {
	raw := c.Query("regions")
	if raw == "" {
		return nil
	}
	var regions []string
	for _, r := range strings.Split(raw, ",") {
		if r = strings.TrimSpace(r); r != "" {
			regions = append(regions, r)
		}
	}
	return regions
}

// ListAccommodations godoc
// @Summary List accommodations matching regions and travel style
// @Tags Browse
// @Param regions query string false "Comma-separated region names"
// @Param style query string false "Budget, Mid-range or Luxury"
// @Success 200 {object} utils.APIResponse
// @Router /browse/accommodations [get]
func (b *BrowseController) ListAccommodations(c *gin.Context) {
	out := b.retriever.Accommodations(regionsParam(c), c.Query("style"))
	utils.RespondSuccess(c, out, "Accommodations fetched successfully")
}

// ListRestaurants godoc
// @Summary List restaurants matching regions and travel style
// @Tags Browse
// @Param regions query string false "Comma-separated region names"
// @Param style query string false "Budget, Mid-range or Luxury"
// @Success 200 {object} utils.APIResponse
// @Router /browse/restaurants [get]
func (b *BrowseController) ListRestaurants(c *gin.Context) {
	out := b.retriever.Restaurants(regionsParam(c), c.Query("style"))
	utils.RespondSuccess(c, out, "Restaurants fetched successfully")
}

// ListEvents godoc
// @Summary List recurring events running during the trip window
// @Tags Browse
// @Param regions query string false "Comma-separated region names"
// @Param start query string false "Trip start, YYYY-MM-DD"
// @Param end query string false "Trip end, YYYY-MM-DD"
// @Success 200 {object} utils.APIResponse
// @Router /browse/events [get]
func (b *BrowseController) ListEvents(c *gin.Context) {
	start, end, ok := dateRangeParams(c)
	if !ok {
		return
	}
	out := b.retriever.Events(regionsParam(c), start, end)
	utils.RespondSuccess(c, out, "Events fetched successfully")
}

// ListFestivals godoc
// @Summary List festivals overlapping the trip window
// @Tags Browse
// @Param regions query string false "Comma-separated region names"
// @Param start query string false "Trip start, YYYY-MM-DD"
// @Param end query string false "Trip end, YYYY-MM-DD"
// @Success 200 {object} utils.APIResponse
// @Router /browse/festivals [get]
func (b *BrowseController) ListFestivals(c *gin.Context) {
	start, end, ok := dateRangeParams(c)
	if !ok {
		return
	}
	out := b.retriever.Festivals(regionsParam(c), start, end)
	utils.RespondSuccess(c, out, "Festivals fetched successfully")
}

// ListSampleItineraries godoc
// @Summary List curated sample itineraries
// @Tags Browse
// @Param regions query string false "Comma-separated region names"
// @Param interests query string false "Comma-separated interest tags"
// @Param duration query int false "Desired trip length in days"
// @Success 200 {object} utils.APIResponse
// @Router /browse/itineraries [get]
func (b *BrowseController) ListSampleItineraries(c *gin.Context) {
	var interests []string
	if raw := c.Query("interests"); raw != "" {
		for _, i := range strings.Split(raw, ",") {
			if i = strings.TrimSpace(i); i != "" {
				interests = append(interests, i)
			}
		}
	}

	duration := 0
	if raw := c.Query("duration"); raw != "" {
		d, err := strconv.Atoi(raw)
		if err != nil || d < 0 {
			utils.RespondError(c, http.StatusBadRequest, "Invalid duration")
			return
		}
		duration = d
	}

	out := b.retriever.SampleItineraries(regionsParam(c), interests, duration)
	utils.RespondSuccess(c, out, "Sample itineraries fetched successfully")
}

// LookupArticle godoc
// @Summary Resolve an attraction name to an article link
// @Tags Browse
// @Param attraction query string true "Attraction name"
// @Success 200 {object} utils.APIResponse
// @Router /browse/articles/lookup [get]
func (b *BrowseController) LookupArticle(c *gin.Context) {
	url := b.retriever.ArticleURL(c.Query("attraction"))
	utils.RespondSuccess(c, gin.H{"url": url}, "Article link resolved successfully")
}

func dateRangeParams(c *gin.Context) (start, end time.Time, ok bool) {
	var err error
	if raw := c.Query("start"); raw != "" {
		if start, err = utils.ParseTripDate(raw); err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Invalid start date, expected YYYY-MM-DD")
			return start, end, false
		}
	}
	if raw := c.Query("end"); raw != "" {
		if end, err = utils.ParseTripDate(raw); err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Invalid end date, expected YYYY-MM-DD")
			return start, end, false
		}
	}
	return start, end, true
}
