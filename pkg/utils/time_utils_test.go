package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"akwaaba/pkg/utils"
)

func TestExpandTripDates(t *testing.T) {
	start, err := utils.ParseTripDate("2025-03-01")
	require.NoError(t, err)

	dates := utils.ExpandTripDates(start, 3)
	require.Len(t, dates, 3)

	assert.Equal(t, utils.TripDate{Day: 1, Date: "2025-03-01", Weekday: "Saturday"}, dates[0])
	assert.Equal(t, utils.TripDate{Day: 2, Date: "2025-03-02", Weekday: "Sunday"}, dates[1])
	assert.Equal(t, utils.TripDate{Day: 3, Date: "2025-03-03", Weekday: "Monday"}, dates[2])
}

func TestExpandTripDates_CrossesMonthBoundary(t *testing.T) {
	start, err := utils.ParseTripDate("2025-01-30")
	require.NoError(t, err)

	dates := utils.ExpandTripDates(start, 4)
	require.Len(t, dates, 4)
	assert.Equal(t, "2025-01-31", dates[1].Date)
	assert.Equal(t, "2025-02-01", dates[2].Date)
	assert.Equal(t, "2025-02-02", dates[3].Date)
}

func TestExpandTripDates_InvalidDuration(t *testing.T) {
	start, err := utils.ParseTripDate("2025-03-01")
	require.NoError(t, err)

	assert.Nil(t, utils.ExpandTripDates(start, 0))
	assert.Nil(t, utils.ExpandTripDates(start, -2))
}

func TestParseTripDate_RejectsOtherLayouts(t *testing.T) {
	for _, bad := range []string{"03/01/2025", "2025-3-1", "March 1 2025", ""} {
		_, err := utils.ParseTripDate(bad)
		assert.Error(t, err, "expected %q to be rejected", bad)
	}
}

func TestTripEndDate(t *testing.T) {
	start, err := utils.ParseTripDate("2025-03-01")
	require.NoError(t, err)

	assert.Equal(t, "2025-03-01", utils.TripEndDate(start, 1).Format(utils.DateLayout))
	assert.Equal(t, "2025-03-07", utils.TripEndDate(start, 7).Format(utils.DateLayout))
	assert.Equal(t, "2025-03-01", utils.TripEndDate(start, 0).Format(utils.DateLayout))
}
