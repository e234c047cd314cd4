package services

import (
	"context"

	"akwaaba/internal/gateway"
	"akwaaba/internal/retrieval"
	"akwaaba/pkg/utils"
)

// plannerTools exposes the retrieval filters to the generative model as
// callable tools. Handlers stay pure; all date parsing is defensive since
// arguments come from the model.
func plannerTools(r *retrieval.Retriever) []gateway.Tool {
	regionsParam := map[string]any{
		"type":        "array",
		"description": "Ghana regions to search, e.g. Greater Accra, Ashanti, Central",
		"items":       map[string]any{"type": "string"},
	}

	return []gateway.Tool{
		{
			Name:        "find_festivals",
			Description: "Find festivals and dated events overlapping a date range in the given regions.",
			Parameters: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"regions":    regionsParam,
					"start_date": map[string]any{"type": "string", "description": "YYYY-MM-DD"},
					"end_date":   map[string]any{"type": "string", "description": "YYYY-MM-DD"},
				},
				"required": []string{"regions", "start_date", "end_date"},
			},
			Run: func(ctx context.Context, args map[string]any) (any, error) {
				start, _ := utils.ParseTripDate(argString(args, "start_date"))
				end, _ := utils.ParseTripDate(argString(args, "end_date"))
				return r.Festivals(argStrings(args, "regions"), start, end), nil
			},
		},
		{
			Name:        "find_events",
			Description: "Find recurring nightlife, music and culture events happening on the trip's weekdays.",
			Parameters: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"regions":    regionsParam,
					"start_date": map[string]any{"type": "string", "description": "YYYY-MM-DD"},
					"end_date":   map[string]any{"type": "string", "description": "YYYY-MM-DD"},
				},
				"required": []string{"regions", "start_date", "end_date"},
			},
			Run: func(ctx context.Context, args map[string]any) (any, error) {
				start, _ := utils.ParseTripDate(argString(args, "start_date"))
				end, _ := utils.ParseTripDate(argString(args, "end_date"))
				return r.Events(argStrings(args, "regions"), start, end), nil
			},
		},
		{
			Name:        "find_restaurants",
			Description: "Find restaurants in the given regions matching a travel style (Budget, Mid-range, Luxury).",
			Parameters: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"regions": regionsParam,
					"style":   map[string]any{"type": "string", "description": "Budget, Mid-range or Luxury"},
				},
				"required": []string{"regions"},
			},
			Run: func(ctx context.Context, args map[string]any) (any, error) {
				return r.Restaurants(argStrings(args, "regions"), argString(args, "style")), nil
			},
		},
		{
			Name:        "lookup_article",
			Description: "Get a background article URL for a named attraction. Always returns a URL.",
			Parameters: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"attraction": map[string]any{"type": "string", "description": "attraction name"},
				},
				"required": []string{"attraction"},
			},
			Run: func(ctx context.Context, args map[string]any) (any, error) {
				return map[string]string{"url": r.ArticleURL(argString(args, "attraction"))}, nil
			},
		},
	}
}

func argString(args map[string]any, key string) string {
	if v, ok := args[key].(string); ok {
		return v
	}
	return ""
}

func argStrings(args map[string]any, key string) []string {
	var out []string
	switch v := args[key].(type) {
	case []string:
		out = v
	case []any:
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
	case string:
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
