package models

import (
	"strings"
	"time"
)

// Driver is a single entry in the static fleet roster.
type Driver struct {
	Name    string  `json:"name"`
	Vehicle string  `json:"vehicle"`
	Gender  string  `json:"gender"`
	Rating  float64 `json:"rating"`
}

// DriverID derives a stable identifier from the driver name,
// e.g. "John Mendez" -> "driver-john-mendez".
func (d Driver) DriverID() string {
	return "driver-" + strings.ToLower(strings.Join(strings.Fields(d.Name), "-"))
}

// DriverAssignment is a value snapshot of a roster driver at assignment
// time. The lowercase keys mirror the roster entry; DriverId and
// EstimatedArrival are added at assignment.
type DriverAssignment struct {
	Name             string    `json:"name" dynamodbav:"name"`
	Vehicle          string    `json:"vehicle" dynamodbav:"vehicle"`
	Gender           string    `json:"gender" dynamodbav:"gender"`
	Rating           float64   `json:"rating" dynamodbav:"rating"`
	DriverID         string    `json:"DriverId" dynamodbav:"DriverId"`
	EstimatedArrival time.Time `json:"EstimatedArrival" dynamodbav:"EstimatedArrival"`
}

// Assign snapshots the driver into an assignment with an estimated
// arrival time.
func (d Driver) Assign(estimatedArrival time.Time) DriverAssignment {
	return DriverAssignment{
		Name:             d.Name,
		Vehicle:          d.Vehicle,
		Gender:           d.Gender,
		Rating:           d.Rating,
		DriverID:         d.DriverID(),
		EstimatedArrival: estimatedArrival,
	}
}

// Roster is the immutable in-memory driver fleet. It is seeded once at
// startup and shared read-only across requests.
type Roster struct {
	drivers   []Driver
	minRating float64
}

func NewRoster(drivers []Driver, minRating float64) *Roster {
	copied := make([]Driver, len(drivers))
	copy(copied, drivers)
	return &Roster{drivers: copied, minRating: minRating}
}

// Eligible returns the drivers meeting the minimum rating threshold.
func (r *Roster) Eligible() []Driver {
	eligible := make([]Driver, 0, len(r.drivers))
	for _, d := range r.drivers {
		if d.Rating >= r.minRating {
			eligible = append(eligible, d)
		}
	}
	return eligible
}

func (r *Roster) Size() int {
	return len(r.drivers)
}
