package services_test

import (
	"context"

	"akwaaba/internal/fixtures"
	"akwaaba/internal/gateway"
	"akwaaba/internal/models/request_models"
	"akwaaba/internal/retrieval"
)

// ---- mock generation client ----

type mockAIClient struct {
	generateJSONFn func(ctx context.Context, req gateway.Request, tools []gateway.Tool) (string, error)
	generateTextFn func(ctx context.Context, req gateway.Request) (string, error)
}

func (m *mockAIClient) GenerateJSON(ctx context.Context, req gateway.Request, tools []gateway.Tool) (string, error) {
	return m.generateJSONFn(ctx, req, tools)
}

func (m *mockAIClient) GenerateText(ctx context.Context, req gateway.Request) (string, error) {
	return m.generateTextFn(ctx, req)
}

func (m *mockAIClient) Close() error { return nil }

type mockSpeech struct {
	synthesizeFn func(ctx context.Context, text string) ([]byte, error)
}

func (m *mockSpeech) SynthesizePCM(ctx context.Context, text string) ([]byte, error) {
	return m.synthesizeFn(ctx, text)
}

// ---- helpers ----

func testRetriever() *retrieval.Retriever {
	return retrieval.NewRetriever(&fixtures.Store{
		Accommodations: []fixtures.Accommodation{
			{ID: "a1", Name: "Accra Budget Lodge", Regions: []string{"Greater Accra"}, Rating: "2-star", Location: "Accra", Description: "Simple rooms"},
		},
		Festivals: []fixtures.FestivalEvent{
			{ID: "f1", Name: "Akwasidae", Regions: []string{"Ashanti"}, StartDate: "2025-03-02", EndDate: "2025-03-02"},
		},
		DefaultArticleURL: "https://example.org/ghana",
	})
}

func testCriteria() request_models.TripCriteria {
	return request_models.TripCriteria{
		Duration:     3,
		Regions:      []string{"Greater Accra"},
		TravelStyle:  "Budget",
		NumTravelers: 2,
		StartDate:    "2025-03-01",
	}
}

const threeDayItineraryJSON = `{"days":[
  {"day":1,"date":"1999-01-01","weekday":"Funday","overnight_in":"Accra","title":"Arrival","details":"Land at Kotoka, settle in Osu."},
  {"day":2,"date":"1999-01-02","weekday":"Funday","overnight_in":"Accra","title":"City tour","details":"Makola Market and Jamestown."},
  {"day":3,"date":"1999-01-03","weekday":"Funday","overnight_in":"Accra","title":"Departure","details":"Labadi Beach, then the airport."}
]}`
