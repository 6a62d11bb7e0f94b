package fare

import (
	"testing"

	"github.com/piresc/pullup/internal/pkg/models"
	"github.com/piresc/pullup/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimate_BreakdownAddsUp(t *testing.T) {
	c, err := DefaultCatalog()
	require.NoError(t, err)

	for _, vc := range c.VehicleClasses {
		f, err := c.Estimate(vc.ID, timesSquare, centralPark)
		require.NoError(t, err)

		assert.Equal(t, "USD", f.Currency)
		assert.Greater(t, f.DistanceKm, 0.0)
		assert.Greater(t, f.DurationMin, 0)
		assert.InDelta(t, f.BaseFare+f.DistanceFare+f.TimeFare+f.ServiceFee, f.Total, 0.011)
		assert.GreaterOrEqual(t, f.Total, vc.MinimumFare)
		assert.True(t, utils.HasAtMostTwoDecimals(f.Total))
	}
}

func TestEstimate_RoadFactor(t *testing.T) {
	c, err := DefaultCatalog()
	require.NoError(t, err)

	straight := utils.CalculateDistance(utils.GeoPointFromPlace(timesSquare), utils.GeoPointFromPlace(centralPark))
	km, minutes := c.Route(timesSquare, centralPark)
	assert.InDelta(t, straight*1.3, km, 0.01)
	assert.Equal(t, utils.EstimateMinutes(km, 24), minutes)
}

func TestEstimate_MinimumFare(t *testing.T) {
	c, err := ParseCatalog([]byte(`
vehicle_classes:
  - id: short
    base_fare: 2
    per_km: 1
    service_fee: 1
    minimum_fare: 10
`))
	require.NoError(t, err)

	f, err := c.Estimate("short", timesSquare, timesSquare)
	require.NoError(t, err)
	assert.Equal(t, 10.0, f.Total)
	assert.Equal(t, 9.0, f.BaseFare)
	assert.Equal(t, 0.0, f.DistanceKm)
	assert.Equal(t, 0, f.DurationMin)
}

func TestEstimate_UnknownClass(t *testing.T) {
	c, err := DefaultCatalog()
	require.NoError(t, err)

	_, err = c.Estimate("limo", timesSquare, centralPark)
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestQuotes_FollowCatalogOrder(t *testing.T) {
	c, err := DefaultCatalog()
	require.NoError(t, err)

	quotes := c.Quotes(timesSquare, centralPark)
	require.Len(t, quotes, 3)
	assert.Equal(t, "economy", quotes[0].ID)
	assert.Less(t, quotes[0].Fare.Total, quotes[1].Fare.Total)
	assert.Less(t, quotes[1].Fare.Total, quotes[2].Fare.Total)
}

func TestDriverEarnings(t *testing.T) {
	assert.Equal(t, 10.0, DriverEarnings(12.50, 0.20))
	assert.Equal(t, 15.0, DriverEarnings(18.75, 0.20))
	assert.Equal(t, 24.0, DriverEarnings(24.00, 0))
	assert.Equal(t, 24.0, DriverEarnings(24.00, 1.5))
}
