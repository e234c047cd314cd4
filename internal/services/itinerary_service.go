package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"akwaaba/internal/gateway"
	"akwaaba/internal/models/request_models"
	"akwaaba/internal/models/response_models"
	"akwaaba/internal/retrieval"
	"akwaaba/pkg/utils"
)

type ItineraryServiceInterface interface {
	GenerateItinerary(ctx context.Context, criteria request_models.TripCriteria) (*response_models.Itinerary, error)
	RegenerateFromNotes(ctx context.Context, req request_models.RegenerateRequest) (*response_models.Itinerary, error)
}

type ItineraryService struct {
	ai        gateway.Client
	retriever *retrieval.Retriever
}

func NewItineraryService(ai gateway.Client, retriever *retrieval.Retriever) ItineraryServiceInterface {
	return &ItineraryService{ai: ai, retriever: retriever}
}

// Known routing constraint passed to the model as an instruction: there is
// no direct Kumasi-Cape Coast leg worth planning, traffic routes via Accra.
const routingRule = "Travel between Kumasi and Cape Coast must route via Accra; plan the intermediate day or drive accordingly."

func (s *ItineraryService) GenerateItinerary(ctx context.Context, criteria request_models.TripCriteria) (*response_models.Itinerary, error) {
	if err := criteria.Validate(); err != nil {
		return nil, err
	}

	dates := utils.ExpandTripDates(criteria.Start(), criteria.Duration)
	prompt := s.buildItineraryPrompt(criteria, dates, "")

	raw, err := s.ai.GenerateJSON(ctx, gateway.Request{
		Task:        "generate-itinerary",
		Instruction: prompt,
		MaxTokens:   6000,
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrGenerationFailed, err)
	}

	return s.parseItinerary(raw, criteria.Duration, dates)
}

// RegenerateFromNotes rebuilds the plan around free-text notes. Dates and
// weekday labels come from local expansion, never from dates inside the
// notes; retrieval filters ride along as tools.
func (s *ItineraryService) RegenerateFromNotes(ctx context.Context, req request_models.RegenerateRequest) (*response_models.Itinerary, error) {
	if err := req.Criteria.Validate(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Notes) == "" {
		return nil, utils.ErrInvalidInput
	}

	dates := utils.ExpandTripDates(req.Criteria.Start(), req.Criteria.Duration)
	prompt := s.buildItineraryPrompt(req.Criteria, dates, req.Notes)

	raw, err := s.ai.GenerateJSON(ctx, gateway.Request{
		Task:        "regenerate-itinerary",
		Instruction: prompt,
		MaxTokens:   6000,
	}, plannerTools(s.retriever))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrGenerationFailed, err)
	}

	return s.parseItinerary(raw, req.Criteria.Duration, dates)
}

func (s *ItineraryService) parseItinerary(raw string, duration int, dates []utils.TripDate) (*response_models.Itinerary, error) {
	var itinerary response_models.Itinerary
	if err := json.Unmarshal([]byte(raw), &itinerary); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrInvalidAIOutput, err)
	}
	if err := itinerary.Validate(duration); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrInvalidAIOutput, err)
	}
	itinerary.StampDates(dates)
	return &itinerary, nil
}

func (s *ItineraryService) buildItineraryPrompt(criteria request_models.TripCriteria, dates []utils.TripDate, notes string) string {
	var prompt strings.Builder

	fmt.Fprintf(&prompt, "Plan a %d-day trip to Ghana for %d traveler(s), %s style, visiting: %s.\n\n",
		criteria.Duration, criteria.NumTravelers, criteria.TravelStyle, strings.Join(criteria.Regions, ", "))

	prompt.WriteString("The trip covers exactly these days (use them verbatim, do not invent dates):\n")
	for _, d := range dates {
		fmt.Fprintf(&prompt, "- day %d: %s (%s)\n", d.Day, d.Date, d.Weekday)
	}

	if notes != "" {
		fmt.Fprintf(&prompt, "\nTraveler notes to honor (ignore any dates mentioned in them, the day list above is authoritative):\n%s\n", notes)
		prompt.WriteString("\nUse the available tools to look up festivals, events, restaurants and article links before planning.\n")
	}

	stays := s.retriever.Accommodations(criteria.Regions, criteria.TravelStyle)
	if len(stays) > 0 {
		prompt.WriteString("\nAccommodation options to draw overnight stops from:\n")
		for _, a := range stays {
			fmt.Fprintf(&prompt, "- %s (%s, %s): %s\n", a.Name, a.Location, a.Rating, a.Description)
		}
	}

	fmt.Fprintf(&prompt, `
Hard constraints:
- Exactly %d entries in "days", day numbered 1..%d with no gaps.
- Every day needs a non-empty title and details; details may use simple markdown.
- Name the overnight town for every day. Include drive_time when a day involves a transfer.
- %s

Return JSON only, matching exactly:
{"days":[{"day":1,"date":"%s","weekday":"%s","overnight_in":"town","title":"...","details":"...","drive_time":"2h30m","budget_note":"optional"}]}
No comments, no markdown fences.`, criteria.Duration, criteria.Duration, routingRule, dates[0].Date, dates[0].Weekday)

	return prompt.String()
}
