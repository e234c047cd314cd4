package controllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"akwaaba/internal/api/controllers"
	"akwaaba/internal/fixtures"
	"akwaaba/internal/retrieval"
	"akwaaba/pkg/utils"
)

func browseRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	store := &fixtures.Store{
		Accommodations: []fixtures.Accommodation{
			{ID: "a1", Name: "Accra Budget Lodge", Regions: []string{"Greater Accra"}, Rating: "2-star", Description: "Simple rooms"},
			{ID: "a2", Name: "Kumasi Grand", Regions: []string{"Ashanti"}, Rating: "5-star", Description: "Pool and spa"},
		},
		Festivals: []fixtures.FestivalEvent{
			{ID: "f1", Name: "Akwasidae", Regions: []string{"Ashanti"}, StartDate: "2025-03-02", EndDate: "2025-03-02"},
		},
		Articles: []fixtures.ArticleLink{
			{Keyword: "kakum", URL: "https://example.org/kakum"},
		},
		DefaultArticleURL: "https://example.org/ghana",
	}
	ctrl := controllers.NewBrowseController(retrieval.NewRetriever(store))

	r := gin.New()
	g := r.Group("/browse")
	g.GET("/accommodations", ctrl.ListAccommodations)
	g.GET("/restaurants", ctrl.ListRestaurants)
	g.GET("/events", ctrl.ListEvents)
	g.GET("/festivals", ctrl.ListFestivals)
	g.GET("/itineraries", ctrl.ListSampleItineraries)
	g.GET("/articles/lookup", ctrl.LookupArticle)
	return r
}

func doGet(t *testing.T, r http.Handler, path string) (*httptest.ResponseRecorder, utils.APIResponse) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var envelope utils.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return w, envelope
}

func TestListAccommodations_FiltersByRegionAndStyle(t *testing.T) {
	r := browseRouter()

	w, envelope := doGet(t, r, "/browse/accommodations?regions=Greater%20Accra&style=Budget")
	assert.Equal(t, http.StatusOK, w.Code)

	items, ok := envelope.Data.([]interface{})
	require.True(t, ok)
	require.Len(t, items, 1)
	first := items[0].(map[string]interface{})
	assert.Equal(t, "a1", first["id"])
}

func TestListFestivals_DateWindow(t *testing.T) {
	r := browseRouter()

	w, envelope := doGet(t, r, "/browse/festivals?regions=Ashanti&start=2025-03-01&end=2025-03-03")
	assert.Equal(t, http.StatusOK, w.Code)

	items, ok := envelope.Data.([]interface{})
	require.True(t, ok)
	assert.Len(t, items, 1)
}

func TestListFestivals_BadDateRejected(t *testing.T) {
	r := browseRouter()

	w, envelope := doGet(t, r, "/browse/festivals?start=03/01/2025")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "error", envelope.Status)
}

func TestListSampleItineraries_BadDurationRejected(t *testing.T) {
	r := browseRouter()

	w, _ := doGet(t, r, "/browse/itineraries?duration=abc")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLookupArticle(t *testing.T) {
	r := browseRouter()

	w, envelope := doGet(t, r, "/browse/articles/lookup?attraction=Kakum%20canopy%20walk")
	assert.Equal(t, http.StatusOK, w.Code)

	data, ok := envelope.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "https://example.org/kakum", data["url"])
}

func TestLookupArticle_DefaultURL(t *testing.T) {
	r := browseRouter()

	_, envelope := doGet(t, r, "/browse/articles/lookup?attraction=Unknown%20Place")
	data, ok := envelope.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "https://example.org/ghana", data["url"])
}
