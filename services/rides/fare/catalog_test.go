package fare

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/piresc/pullup/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	timesSquare = models.Place{Address: "Times Square, New York, NY", Latitude: 40.7580, Longitude: -73.9855}
	centralPark = models.Place{Address: "Central Park, New York, NY", Latitude: 40.7829, Longitude: -73.9654}
)

func TestDefaultCatalog(t *testing.T) {
	c, err := DefaultCatalog()
	require.NoError(t, err)

	assert.Equal(t, "USD", c.Currency)
	require.Len(t, c.VehicleClasses, 3)
	assert.Equal(t, []string{"economy", "premium", "xl"},
		[]string{c.VehicleClasses[0].ID, c.VehicleClasses[1].ID, c.VehicleClasses[2].ID})

	economy, ok := c.Class("economy")
	require.True(t, ok)
	assert.Equal(t, 12.50, economy.BaseFare)
	premium, _ := c.Class("premium")
	assert.Equal(t, 18.75, premium.BaseFare)
	xl, _ := c.Class("xl")
	assert.Equal(t, 24.00, xl.BaseFare)
	assert.Equal(t, 6, xl.Capacity)

	assert.Len(t, c.DemoDrivers, 3)
	assert.Contains(t, c.QuickMessages, "I'm here")
	assert.NotEmpty(t, c.AutoResponses)
}

func TestDemoDriver_Card(t *testing.T) {
	c, err := DefaultCatalog()
	require.NoError(t, err)

	d, ok := c.DemoDriver(c.DemoDrivers[0].ID)
	require.True(t, ok)
	card := d.Card()
	assert.Equal(t, "Michael Rodriguez", card.Name)
	assert.Equal(t, "Toyota", card.Vehicle.Make)
	assert.Equal(t, "ABC-1234", card.Vehicle.LicensePlate)
	assert.True(t, card.IsOnline)
	require.NotNil(t, card.Location)
	assert.Equal(t, 40.7138, card.Location.Latitude)

	_, ok = c.DemoDriver(uuid.New())
	assert.False(t, ok)
}

func TestLoadCatalog_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "classes.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
vehicle_classes:
  - id: bike
    name: PullUp Bike
    base_fare: 3
    per_km: 0.5
`), 0o600))

	c, err := LoadCatalog(path)
	require.NoError(t, err)
	assert.Equal(t, "USD", c.Currency)
	assert.Equal(t, 1.0, c.RoadFactor)
	_, ok := c.Class("bike")
	assert.True(t, ok)
	_, ok = c.Class("economy")
	assert.False(t, ok)
}

func TestLoadCatalog_EmptyPathUsesDefault(t *testing.T) {
	c, err := LoadCatalog("")
	require.NoError(t, err)
	assert.Len(t, c.VehicleClasses, 3)
}

func TestParseCatalog_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{name: "not yaml", yaml: "vehicle_classes: [oops"},
		{name: "no classes", yaml: "currency: USD"},
		{name: "duplicate", yaml: "vehicle_classes:\n  - id: a\n  - id: a\n"},
		{name: "negative price", yaml: "vehicle_classes:\n  - id: a\n    base_fare: -1\n"},
		{name: "missing id", yaml: "vehicle_classes:\n  - name: nameless\n"},
		{name: "demo driver without id", yaml: "vehicle_classes:\n  - id: a\ndemo_drivers:\n  - name: x\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCatalog([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}

	_, err := LoadCatalog(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
