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

type ChatServiceInterface interface {
	ChatWithItinerary(ctx context.Context, req request_models.ChatRequest) (*response_models.ChatReply, error)
}

type ChatService struct {
	ai        gateway.Client
	retriever *retrieval.Retriever
}

func NewChatService(ai gateway.Client, retriever *retrieval.Retriever) ChatServiceInterface {
	return &ChatService{ai: ai, retriever: retriever}
}

// ChatWithItinerary runs the two-phase flow: summarize the current plan to
// bound prompt size, then answer with retrieval tools attached. Phase 2
// never starts before phase 1 completes, and a missing summary is fatal -
// there is no silent fallback to the unsummarized itinerary.
func (s *ChatService) ChatWithItinerary(ctx context.Context, req request_models.ChatRequest) (*response_models.ChatReply, error) {
	if err := req.Criteria.Validate(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Message) == "" {
		return nil, utils.ErrInvalidInput
	}
	if err := req.Itinerary.Validate(req.Criteria.Duration); err != nil {
		return nil, utils.ErrInvalidInput
	}

	summary, err := s.summarizeItinerary(ctx, req.Itinerary)
	if err != nil {
		return nil, err
	}

	dates := utils.ExpandTripDates(req.Criteria.Start(), req.Criteria.Duration)
	prompt := s.buildChatPrompt(req, summary, dates)

	raw, err := s.ai.GenerateJSON(ctx, gateway.Request{
		Task:        "itinerary-chat",
		Instruction: prompt,
		MaxTokens:   6000,
	}, plannerTools(s.retriever))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrGenerationFailed, err)
	}

	var reply response_models.ChatReply
	if err := json.Unmarshal([]byte(raw), &reply); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrInvalidAIOutput, err)
	}
	if err := reply.Validate(req.Criteria.Duration); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrInvalidAIOutput, err)
	}
	if reply.Itinerary != nil {
		reply.Itinerary.StampDates(dates)
	}
	return &reply, nil
}

func (s *ChatService) summarizeItinerary(ctx context.Context, itinerary response_models.Itinerary) (string, error) {
	var sb strings.Builder
	sb.WriteString("Summarize this Ghana trip itinerary in at most 150 words of plain prose. Keep day numbers, overnight towns and the main activity of each day.\n\n")
	for _, day := range itinerary.Days {
		fmt.Fprintf(&sb, "Day %d (%s, overnight %s): %s - %s\n", day.Day, day.Date, day.OvernightIn, day.Title, day.Details)
	}

	summary, err := s.ai.GenerateText(ctx, gateway.Request{
		Task:        "itinerary-summary",
		Instruction: sb.String(),
		MaxTokens:   400,
	})
	if err != nil {
		return "", fmt.Errorf("%w: summary: %v", utils.ErrGenerationFailed, err)
	}
	if strings.TrimSpace(summary) == "" {
		return "", fmt.Errorf("%w: empty summary", utils.ErrGenerationFailed)
	}
	return summary, nil
}

func (s *ChatService) buildChatPrompt(req request_models.ChatRequest, summary string, dates []utils.TripDate) string {
	var prompt strings.Builder

	fmt.Fprintf(&prompt, `You are a Ghana travel assistant discussing a %d-day trip (%s style, regions: %s).

Current itinerary, summarized:
%s

`, req.Criteria.Duration, req.Criteria.TravelStyle, strings.Join(req.Criteria.Regions, ", "), summary)

	if len(req.History) > 0 {
		prompt.WriteString("Conversation so far:\n")
		for _, turn := range req.History {
			fmt.Fprintf(&prompt, "%s: %s\n", turn.Role, turn.Content)
		}
		prompt.WriteString("\n")
	}

	fmt.Fprintf(&prompt, "Traveler's message: %s\n\n", req.Message)

	prompt.WriteString("The trip covers exactly these days:\n")
	for _, d := range dates {
		fmt.Fprintf(&prompt, "- day %d: %s (%s)\n", d.Day, d.Date, d.Weekday)
	}

	fmt.Fprintf(&prompt, `
Classify the message first:
- A pure question about the trip -> intent "question". Answer it in "reply" and OMIT the "itinerary" field entirely.
- Any requested modification, however small -> intent "change_request". Explain the change in "reply" AND return the complete updated plan in "itinerary" with exactly %d days, every day titled and detailed. %s

Use the available tools to check festivals, events, restaurants and article links when relevant.

Return JSON only:
{"reply":"...","intent":"question"}
or
{"reply":"...","intent":"change_request","itinerary":{"days":[{"day":1,"date":"%s","weekday":"%s","overnight_in":"town","title":"...","details":"..."}]}}`,
		req.Criteria.Duration, routingRule, dates[0].Date, dates[0].Weekday)

	return prompt.String()
}
