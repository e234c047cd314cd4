package services_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"akwaaba/internal/gateway"
	"akwaaba/internal/services"
	"akwaaba/pkg/utils"
)

func TestGeneratePackingList_NormalizesMissingCategories(t *testing.T) {
	ai := &mockAIClient{
		generateJSONFn: func(_ context.Context, req gateway.Request, _ []gateway.Tool) (string, error) {
			assert.Contains(t, req.Instruction, "malaria")
			return `{"clothing":[{"item":"Light cotton shirts","note":"It is humid year round"}],
				"health":[{"item":"Antimalarials","note":"Start before departure"}]}`, nil
		},
	}
	svc := services.NewPackingService(ai)

	list, err := svc.GeneratePackingList(context.Background(), testCriteria())
	require.NoError(t, err)

	// Every category key serializes as an array, never null.
	raw, err := json.Marshal(list)
	require.NoError(t, err)
	for _, key := range []string{"clothing", "toiletries", "electronics", "health", "documents", "miscellaneous"} {
		assert.Contains(t, string(raw), `"`+key+`":[`)
	}
	assert.NotNil(t, list.Toiletries)
	assert.Empty(t, list.Toiletries)
	assert.Len(t, list.Clothing, 1)
}

func TestGeneratePackingList_EmptyListRejected(t *testing.T) {
	ai := &mockAIClient{
		generateJSONFn: func(_ context.Context, _ gateway.Request, _ []gateway.Tool) (string, error) {
			return `{"clothing":[],"toiletries":[],"electronics":[],"health":[],"documents":[],"miscellaneous":[]}`, nil
		},
	}
	svc := services.NewPackingService(ai)

	_, err := svc.GeneratePackingList(context.Background(), testCriteria())
	assert.ErrorIs(t, err, utils.ErrInvalidAIOutput)
}

func TestGeneratePackingList_InvalidCriteria(t *testing.T) {
	svc := services.NewPackingService(&mockAIClient{})

	bad := testCriteria()
	bad.StartDate = "not-a-date"
	_, err := svc.GeneratePackingList(context.Background(), bad)
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}
