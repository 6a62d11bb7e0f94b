package fare

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/piresc/pullup/internal/pkg/models"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// DemoVehicle is the car of a roster driver
type DemoVehicle struct {
	Make         string `yaml:"make"`
	Model        string `yaml:"model"`
	Year         int    `yaml:"year"`
	Color        string `yaml:"color"`
	LicensePlate string `yaml:"license_plate"`
}

// DemoDriver is a roster entry the dispatch simulator falls back to
type DemoDriver struct {
	ID         uuid.UUID   `yaml:"id"`
	Name       string      `yaml:"name"`
	Phone      string      `yaml:"phone"`
	Rating     float64     `yaml:"rating"`
	TotalTrips int         `yaml:"total_trips"`
	Vehicle    DemoVehicle `yaml:"vehicle"`
	Latitude   float64     `yaml:"latitude"`
	Longitude  float64     `yaml:"longitude"`
}

// Card converts the roster entry into the card shown to riders
func (d DemoDriver) Card() *models.DriverCard {
	return &models.DriverCard{
		ID:         d.ID,
		Name:       d.Name,
		Phone:      d.Phone,
		Rating:     d.Rating,
		TotalTrips: d.TotalTrips,
		IsOnline:   true,
		Vehicle: models.Vehicle{
			DriverID:     d.ID,
			Make:         d.Vehicle.Make,
			Model:        d.Vehicle.Model,
			Year:         d.Vehicle.Year,
			Color:        d.Vehicle.Color,
			LicensePlate: d.Vehicle.LicensePlate,
			IsActive:     true,
		},
		Location: &models.Place{Latitude: d.Latitude, Longitude: d.Longitude},
	}
}

// Catalog is the bookable vehicle classes plus the demo content of the tracking screens
type Catalog struct {
	Currency        string                `yaml:"currency"`
	RoadFactor      float64               `yaml:"road_factor"`
	AverageSpeedKmh float64               `yaml:"average_speed_kmh"`
	VehicleClasses  []models.VehicleClass `yaml:"vehicle_classes"`
	DemoDrivers     []DemoDriver          `yaml:"demo_drivers"`
	QuickMessages   []string              `yaml:"quick_messages"`
	AutoResponses   []string              `yaml:"auto_responses"`
}

// DefaultCatalog returns the catalog compiled into the binary
func DefaultCatalog() (*Catalog, error) {
	return ParseCatalog(defaultCatalog)
}

// LoadCatalog reads the catalog at path, or the default one when path is empty
func LoadCatalog(path string) (*Catalog, error) {
	if path == "" {
		return DefaultCatalog()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", path, err)
	}
	return ParseCatalog(data)
}

// ParseCatalog decodes and validates a YAML catalog
func ParseCatalog(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if c.Currency == "" {
		c.Currency = "USD"
	}
	if c.RoadFactor <= 0 {
		c.RoadFactor = 1
	}
	if c.AverageSpeedKmh <= 0 {
		c.AverageSpeedKmh = 24
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Catalog) validate() error {
	if len(c.VehicleClasses) == 0 {
		return fmt.Errorf("catalog has no vehicle classes")
	}
	seen := make(map[string]bool, len(c.VehicleClasses))
	for _, vc := range c.VehicleClasses {
		if vc.ID == "" {
			return fmt.Errorf("catalog has a vehicle class without id")
		}
		if seen[vc.ID] {
			return fmt.Errorf("duplicate vehicle class %q", vc.ID)
		}
		seen[vc.ID] = true
		if vc.BaseFare < 0 || vc.PerKm < 0 || vc.PerMinute < 0 || vc.ServiceFee < 0 || vc.MinimumFare < 0 {
			return fmt.Errorf("vehicle class %q has a negative price", vc.ID)
		}
	}
	for _, d := range c.DemoDrivers {
		if d.ID == uuid.Nil {
			return fmt.Errorf("demo driver %q has no id", d.Name)
		}
	}
	return nil
}

// Class returns the vehicle class with id
func (c *Catalog) Class(id string) (models.VehicleClass, bool) {
	for _, vc := range c.VehicleClasses {
		if vc.ID == id {
			return vc, true
		}
	}
	return models.VehicleClass{}, false
}

// DemoDriver returns the roster entry with id
func (c *Catalog) DemoDriver(id uuid.UUID) (DemoDriver, bool) {
	for _, d := range c.DemoDrivers {
		if d.ID == id {
			return d, true
		}
	}
	return DemoDriver{}, false
}
