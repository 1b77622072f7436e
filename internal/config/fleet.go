package config

import (
	"strconv"
	"strings"
	"time"
)

// FleetDriver is one roster seed entry. The roster itself is immutable
// once loaded; see models.Roster.
type FleetDriver struct {
	Name    string  `yaml:"name"`
	Vehicle string  `yaml:"vehicle"`
	Gender  string  `yaml:"gender"`
	Rating  float64 `yaml:"rating"`
}

type FleetConfig struct {
	Drivers       []FleetDriver `yaml:"drivers"`
	MinRating     float64       `yaml:"min_rating"`
	ArrivalOffset time.Duration `yaml:"arrival_offset"`
	EtaMinMinutes int           `yaml:"eta_min_minutes"`
	EtaMaxMinutes int           `yaml:"eta_max_minutes"`
	RecordTTL     time.Duration `yaml:"record_ttl"`
}

func loadFleetConfig() *FleetConfig {
	return &FleetConfig{
		Drivers:       loadFleetDrivers(),
		MinRating:     getEnvAsFloat64("FLEET_MIN_RATING", 4.5),
		ArrivalOffset: getEnvAsDuration("FLEET_ARRIVAL_OFFSET", 3*time.Minute),
		EtaMinMinutes: getEnvAsInt("FLEET_ETA_MIN_MINUTES", 3),
		EtaMaxMinutes: getEnvAsInt("FLEET_ETA_MAX_MINUTES", 7),
		RecordTTL:     getEnvAsDuration("RIDE_RECORD_TTL", 90*24*time.Hour),
	}
}

// loadFleetDrivers parses FLEET_DRIVERS as a comma-separated list of
// "Name|Vehicle|Gender|Rating" entries. Malformed entries are skipped;
// an empty or fully malformed list falls back to the default fleet.
func loadFleetDrivers() []FleetDriver {
	raw := getEnv("FLEET_DRIVERS", "")
	if raw == "" {
		return defaultFleet()
	}

	var drivers []FleetDriver
	for _, entry := range strings.Split(raw, ",") {
		parts := strings.Split(entry, "|")
		if len(parts) != 4 {
			continue
		}
		rating, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil {
			continue
		}
		drivers = append(drivers, FleetDriver{
			Name:    strings.TrimSpace(parts[0]),
			Vehicle: strings.TrimSpace(parts[1]),
			Gender:  strings.TrimSpace(parts[2]),
			Rating:  rating,
		})
	}

	if len(drivers) == 0 {
		return defaultFleet()
	}
	return drivers
}

func defaultFleet() []FleetDriver {
	return []FleetDriver{
		{Name: "John Mendez", Vehicle: "Toyota Prius", Gender: "Male", Rating: 4.8},
		{Name: "Sarah Lee", Vehicle: "Honda Civic", Gender: "Female", Rating: 4.9},
		{Name: "Dave Kim", Vehicle: "Tesla Model 3", Gender: "Male", Rating: 4.7},
	}
}
