package services_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"akwaaba/internal/gateway"
	"akwaaba/internal/models/request_models"
	"akwaaba/internal/services"
	"akwaaba/pkg/utils"
)

func TestGenerateItinerary_StampsLocalDates(t *testing.T) {
	ai := &mockAIClient{
		generateJSONFn: func(_ context.Context, req gateway.Request, tools []gateway.Tool) (string, error) {
			assert.Empty(t, tools, "plain generation carries no tools")
			assert.Contains(t, req.Instruction, "2025-03-01")
			assert.Contains(t, req.Instruction, "Accra Budget Lodge")
			return threeDayItineraryJSON, nil
		},
	}
	svc := services.NewItineraryService(ai, testRetriever())

	itinerary, err := svc.GenerateItinerary(context.Background(), testCriteria())
	require.NoError(t, err)
	require.Len(t, itinerary.Days, 3)

	// Model dates are never trusted; labels come from local expansion.
	assert.Equal(t, "2025-03-01", itinerary.Days[0].Date)
	assert.Equal(t, "Saturday", itinerary.Days[0].Weekday)
	assert.Equal(t, "2025-03-03", itinerary.Days[2].Date)
	assert.Equal(t, "Monday", itinerary.Days[2].Weekday)
}

func TestGenerateItinerary_InvalidCriteria(t *testing.T) {
	svc := services.NewItineraryService(&mockAIClient{}, testRetriever())

	bad := testCriteria()
	bad.Duration = 0
	_, err := svc.GenerateItinerary(context.Background(), bad)
	assert.ErrorIs(t, err, utils.ErrInvalidInput)

	bad = testCriteria()
	bad.TravelStyle = "Backpacker"
	_, err = svc.GenerateItinerary(context.Background(), bad)
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestGenerateItinerary_WrongDayCount(t *testing.T) {
	ai := &mockAIClient{
		generateJSONFn: func(_ context.Context, _ gateway.Request, _ []gateway.Tool) (string, error) {
			return `{"days":[{"day":1,"date":"x","weekday":"x","overnight_in":"Accra","title":"Only day","details":"Too short."}]}`, nil
		},
	}
	svc := services.NewItineraryService(ai, testRetriever())

	_, err := svc.GenerateItinerary(context.Background(), testCriteria())
	assert.ErrorIs(t, err, utils.ErrInvalidAIOutput)
}

func TestGenerateItinerary_MalformedJSON(t *testing.T) {
	ai := &mockAIClient{
		generateJSONFn: func(_ context.Context, _ gateway.Request, _ []gateway.Tool) (string, error) {
			return "not json at all", nil
		},
	}
	svc := services.NewItineraryService(ai, testRetriever())

	_, err := svc.GenerateItinerary(context.Background(), testCriteria())
	assert.ErrorIs(t, err, utils.ErrInvalidAIOutput)
}

func TestGenerateItinerary_BackendFailure(t *testing.T) {
	ai := &mockAIClient{
		generateJSONFn: func(_ context.Context, _ gateway.Request, _ []gateway.Tool) (string, error) {
			return "", context.DeadlineExceeded
		},
	}
	svc := services.NewItineraryService(ai, testRetriever())

	_, err := svc.GenerateItinerary(context.Background(), testCriteria())
	assert.ErrorIs(t, err, utils.ErrGenerationFailed)
}

func TestRegenerateFromNotes_PassesToolsAndIgnoresNoteDates(t *testing.T) {
	var gotTools []gateway.Tool
	ai := &mockAIClient{
		generateJSONFn: func(_ context.Context, req gateway.Request, tools []gateway.Tool) (string, error) {
			gotTools = tools
			assert.Contains(t, req.Instruction, "more beach time")
			return threeDayItineraryJSON, nil
		},
	}
	svc := services.NewItineraryService(ai, testRetriever())

	itinerary, err := svc.RegenerateFromNotes(context.Background(), request_models.RegenerateRequest{
		Criteria: testCriteria(),
		Notes:    "more beach time, and shift everything to 2030-06-15 please",
	})
	require.NoError(t, err)

	var names []string
	for _, tool := range gotTools {
		names = append(names, tool.Name)
	}
	assert.Contains(t, names, "find_festivals")
	assert.Contains(t, names, "lookup_article")

	// Dates in the notes never leak into the plan.
	for _, day := range itinerary.Days {
		assert.True(t, strings.HasPrefix(day.Date, "2025-03-"), "day %d has date %s", day.Day, day.Date)
	}
}

func TestRegenerateFromNotes_EmptyNotes(t *testing.T) {
	svc := services.NewItineraryService(&mockAIClient{}, testRetriever())

	_, err := svc.RegenerateFromNotes(context.Background(), request_models.RegenerateRequest{
		Criteria: testCriteria(),
		Notes:    "   ",
	})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}
