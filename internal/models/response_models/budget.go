package response_models

import (
	"fmt"
	"math"
)

// BudgetBreakdown has four non-negative components whose sum must equal the
// total. Amounts are USD for the whole party.
type BudgetBreakdown struct {
	Accommodation  float64 `json:"accommodation"`
	Food           float64 `json:"food"`
	Transportation float64 `json:"transportation"`
	Activities     float64 `json:"activities"`
	Total          float64 `json:"total"`
}

func (b *BudgetBreakdown) Validate() error {
	for name, v := range map[string]float64{
		"accommodation":  b.Accommodation,
		"food":           b.Food,
		"transportation": b.Transportation,
		"activities":     b.Activities,
		"total":          b.Total,
	} {
		if v < 0 {
			return fmt.Errorf("%s is negative", name)
		}
	}
	sum := b.Accommodation + b.Food + b.Transportation + b.Activities
	if math.Abs(sum-b.Total) > 0.01 {
		return fmt.Errorf("total %.2f does not equal component sum %.2f", b.Total, sum)
	}
	return nil
}

// BudgetPlan is the trip-from-budget answer: a style inferred from
// per-person-per-day spend plus a described breakdown summing to the user's
// budget exactly.
type BudgetPlan struct {
	SuggestedStyle string           `json:"suggested_style"`
	Breakdown      []BudgetPlanItem `json:"breakdown"`
	Total          float64          `json:"total"`
	Summary        string           `json:"summary"`
}

type BudgetPlanItem struct {
	Category    string  `json:"category"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
}

func (p *BudgetPlan) Validate(requestedTotal float64) error {
	switch p.SuggestedStyle {
	case "Budget", "Mid-range", "Luxury":
	default:
		return fmt.Errorf("unknown suggested style %q", p.SuggestedStyle)
	}
	if len(p.Breakdown) == 0 {
		return fmt.Errorf("breakdown is empty")
	}
	var sum float64
	for _, item := range p.Breakdown {
		if item.Amount < 0 {
			return fmt.Errorf("category %s is negative", item.Category)
		}
		sum += item.Amount
	}
	if math.Abs(sum-requestedTotal) > 0.01 {
		return fmt.Errorf("breakdown sums to %.2f, want %.2f", sum, requestedTotal)
	}
	if math.Abs(p.Total-requestedTotal) > 0.01 {
		return fmt.Errorf("total %.2f does not match requested budget %.2f", p.Total, requestedTotal)
	}
	return nil
}
