package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"akwaaba/internal/gateway"
	"akwaaba/internal/models/request_models"
	"akwaaba/internal/models/response_models"
	"akwaaba/pkg/utils"
)

type PackingServiceInterface interface {
	GeneratePackingList(ctx context.Context, criteria request_models.TripCriteria) (*response_models.PackingList, error)
}

type PackingService struct {
	ai gateway.Client
}

func NewPackingService(ai gateway.Client) PackingServiceInterface {
	return &PackingService{ai: ai}
}

func (s *PackingService) GeneratePackingList(ctx context.Context, criteria request_models.TripCriteria) (*response_models.PackingList, error) {
	if err := criteria.Validate(); err != nil {
		return nil, err
	}

	end := utils.TripEndDate(criteria.Start(), criteria.Duration)
	prompt := fmt.Sprintf(`Write a packing list for a trip to Ghana: %d days (%s to %s), %s style, regions: %s.

Account for Ghana's climate in that season (heat, humidity, harmattan dust or
rains depending on the months), malaria precautions, and modest dress for
villages and places of worship.

Every category key must be present, even if its list is empty.
Each entry has an "item" and a short practical "note".

Return JSON only, matching exactly:
{"clothing":[{"item":"...","note":"..."}],"toiletries":[],"electronics":[],"health":[],"documents":[],"miscellaneous":[]}`,
		criteria.Duration, criteria.StartDate, end.Format(utils.DateLayout),
		criteria.TravelStyle, strings.Join(criteria.Regions, ", "))

	raw, err := s.ai.GenerateJSON(ctx, gateway.Request{
		Task:        "packing-list",
		Instruction: prompt,
		MaxTokens:   2500,
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrGenerationFailed, err)
	}

	var list response_models.PackingList
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrInvalidAIOutput, err)
	}
	if err := list.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrInvalidAIOutput, err)
	}
	list.Normalize()
	return &list, nil
}
