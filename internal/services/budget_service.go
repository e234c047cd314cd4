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

type BudgetServiceInterface interface {
	EstimateBudget(ctx context.Context, criteria request_models.TripCriteria) (*response_models.BudgetBreakdown, error)
	PlanFromBudget(ctx context.Context, req request_models.BudgetPlanRequest) (*response_models.BudgetPlan, error)
}

type BudgetService struct {
	ai gateway.Client
}

func NewBudgetService(ai gateway.Client) BudgetServiceInterface {
	return &BudgetService{ai: ai}
}

func (s *BudgetService) EstimateBudget(ctx context.Context, criteria request_models.TripCriteria) (*response_models.BudgetBreakdown, error) {
	if err := criteria.Validate(); err != nil {
		return nil, err
	}

	end := utils.TripEndDate(criteria.Start(), criteria.Duration)
	prompt := fmt.Sprintf(`Estimate a realistic travel budget in USD for a trip to Ghana.

Trip facts:
- %d days, %s to %s
- %d traveler(s)
- Travel style: %s
- Regions: %s

Amounts cover the whole party for the whole trip. Use whole numbers.
The "total" must equal accommodation + food + transportation + activities exactly.

Return JSON only, matching exactly:
{"accommodation":0,"food":0,"transportation":0,"activities":0,"total":0}`,
		criteria.Duration, criteria.StartDate, end.Format(utils.DateLayout),
		criteria.NumTravelers, criteria.TravelStyle, strings.Join(criteria.Regions, ", "))

	raw, err := s.ai.GenerateJSON(ctx, gateway.Request{
		Task:        "estimate-budget",
		Instruction: prompt,
		MaxTokens:   500,
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrGenerationFailed, err)
	}

	var breakdown response_models.BudgetBreakdown
	if err := json.Unmarshal([]byte(raw), &breakdown); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrInvalidAIOutput, err)
	}
	if err := breakdown.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrInvalidAIOutput, err)
	}
	return &breakdown, nil
}

// PlanFromBudget works backwards from a total: the model infers a travel
// style from per-person-per-day spend and allocates the full amount.
func (s *BudgetService) PlanFromBudget(ctx context.Context, req request_models.BudgetPlanRequest) (*response_models.BudgetPlan, error) {
	if err := req.Criteria.Validate(); err != nil {
		return nil, err
	}
	if req.TotalBudget <= 0 {
		return nil, utils.ErrInvalidInput
	}

	prompt := fmt.Sprintf(`A traveler has exactly %.0f USD for a %d-day trip to Ghana for %d person(s), regions: %s.

Infer the travel style from the per-person-per-day spend:
under 50 USD -> "Budget", 50-150 USD -> "Mid-range", above 150 USD -> "Luxury".

Allocate the full budget across categories (accommodation, food,
transportation, activities, and optionally contingency). Category amounts
must sum to exactly %.0f and "total" must be %.0f. Whole numbers only.
Give each category a one-sentence description of what that money buys in Ghana.

Return JSON only, matching exactly:
{"suggested_style":"Budget","breakdown":[{"category":"accommodation","amount":0,"description":"..."}],"total":%.0f,"summary":"one paragraph"}`,
		req.TotalBudget, req.Criteria.Duration, req.Criteria.NumTravelers,
		strings.Join(req.Criteria.Regions, ", "), req.TotalBudget, req.TotalBudget, req.TotalBudget)

	raw, err := s.ai.GenerateJSON(ctx, gateway.Request{
		Task:        "plan-from-budget",
		Instruction: prompt,
		MaxTokens:   1200,
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrGenerationFailed, err)
	}

	var plan response_models.BudgetPlan
	if err := json.Unmarshal([]byte(raw), &plan); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrInvalidAIOutput, err)
	}
	if err := plan.Validate(req.TotalBudget); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrInvalidAIOutput, err)
	}
	return &plan, nil
}
