package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRideStatus(t *testing.T) {
	for _, status := range ValidRideStatuses {
		parsed, ok := ParseRideStatus(string(status))
		assert.True(t, ok)
		assert.Equal(t, status, parsed)
	}

	for _, invalid := range []string{"", "requested", "DELAYED", "Completed"} {
		_, ok := ParseRideStatus(invalid)
		assert.False(t, ok, "expected %q to be rejected", invalid)
	}
}

func TestRideStatusIsActive(t *testing.T) {
	assert.True(t, RideStatusRequested.IsActive())
	assert.True(t, RideStatusAssigned.IsActive())
	assert.True(t, RideStatusPickedUp.IsActive())
	assert.False(t, RideStatusCompleted.IsActive())
	assert.False(t, RideStatusCancelled.IsActive())
}

func newRecord() *RideRecord {
	created := time.Date(2025, time.March, 14, 9, 0, 0, 0, time.UTC)
	return &RideRecord{
		RideID:    "ride-1",
		Rider:     "alice",
		Status:    RideStatusRequested,
		Version:   1,
		CreatedAt: created,
		UpdatedAt: created,
	}
}

func TestApplyStatusChange_Assigned(t *testing.T) {
	record := newRecord()
	at := record.CreatedAt.Add(2 * time.Minute)

	record.ApplyStatusChange(StatusChange{Status: RideStatusAssigned, At: at, DriverID: "driver-sarah-lee"})

	assert.Equal(t, RideStatusAssigned, record.Status)
	assert.Equal(t, int64(2), record.Version)
	assert.Equal(t, at, record.UpdatedAt)
	require.NotNil(t, record.AssignedTime)
	assert.Equal(t, at, *record.AssignedTime)
	assert.Equal(t, "driver-sarah-lee", record.AssignedDriverID)
	assert.Nil(t, record.PickedUpTime)
	assert.Nil(t, record.CompletedTime)
	assert.Nil(t, record.CancelledTime)
}

func TestApplyStatusChange_AssignedAtOverride(t *testing.T) {
	record := newRecord()
	at := record.CreatedAt.Add(2 * time.Minute)
	reported := record.CreatedAt.Add(1 * time.Minute)

	record.ApplyStatusChange(StatusChange{Status: RideStatusAssigned, At: at, AssignedAt: &reported})

	require.NotNil(t, record.AssignedTime)
	assert.Equal(t, reported, *record.AssignedTime)
	assert.Equal(t, at, record.UpdatedAt)
}

func TestApplyStatusChange_Cancelled(t *testing.T) {
	record := newRecord()
	at := record.CreatedAt.Add(5 * time.Minute)

	record.ApplyStatusChange(StatusChange{Status: RideStatusCancelled, At: at, Reason: "rider cancelled"})

	assert.Equal(t, RideStatusCancelled, record.Status)
	require.NotNil(t, record.CancelledTime)
	assert.Equal(t, at, *record.CancelledTime)
	assert.Equal(t, "rider cancelled", record.CancellationReason)
}

func TestApplyStatusChange_VersionAlwaysIncrements(t *testing.T) {
	record := newRecord()
	at := record.CreatedAt.Add(time.Minute)

	record.ApplyStatusChange(StatusChange{Status: RideStatusPickedUp, At: at})
	record.ApplyStatusChange(StatusChange{Status: RideStatusPickedUp, At: at.Add(time.Minute)})

	assert.Equal(t, int64(3), record.Version)
	require.NotNil(t, record.PickedUpTime)
	assert.Equal(t, at.Add(time.Minute), *record.PickedUpTime)
}

func TestConfirmation(t *testing.T) {
	requestTime := time.Date(2025, time.March, 14, 9, 0, 0, 0, time.UTC)
	record := &RideRecord{
		RideID:         "ride-1",
		Rider:          "alice",
		Status:         RideStatusRequested,
		RequestTime:    requestTime,
		PickupLocation: GeoPoint{Latitude: 47.6, Longitude: -122.3, Address: "downtown"},
		Driver:         Driver{Name: "John Mendez", Vehicle: "Toyota Prius", Rating: 4.8}.Assign(requestTime.Add(3 * time.Minute)),
	}

	conf := record.Confirmation("5 mins")

	assert.Equal(t, "ride-1", conf.RideID)
	assert.Equal(t, "alice", conf.Rider)
	assert.Equal(t, "5 mins", conf.Eta)
	assert.Equal(t, RideStatusRequested, conf.Status)
	assert.Equal(t, requestTime, conf.RequestedAt)
	assert.Equal(t, record.Driver, conf.Driver)
	assert.Equal(t, record.PickupLocation, conf.PickupLocation)
}

func TestDriverID(t *testing.T) {
	assert.Equal(t, "driver-john-mendez", Driver{Name: "John Mendez"}.DriverID())
	assert.Equal(t, "driver-dave-kim", Driver{Name: "  Dave   Kim "}.DriverID())
}

func TestDriverAssign(t *testing.T) {
	arrival := time.Date(2025, time.March, 14, 9, 3, 0, 0, time.UTC)
	driver := Driver{Name: "Sarah Lee", Vehicle: "Honda Civic", Gender: "Female", Rating: 4.9}

	assignment := driver.Assign(arrival)

	assert.Equal(t, "Sarah Lee", assignment.Name)
	assert.Equal(t, "Honda Civic", assignment.Vehicle)
	assert.Equal(t, 4.9, assignment.Rating)
	assert.Equal(t, "driver-sarah-lee", assignment.DriverID)
	assert.Equal(t, arrival, assignment.EstimatedArrival)
}

func TestRosterEligible(t *testing.T) {
	drivers := []Driver{
		{Name: "John Mendez", Rating: 4.8},
		{Name: "Low Rated", Rating: 4.0},
		{Name: "Sarah Lee", Rating: 4.9},
	}
	roster := NewRoster(drivers, 4.5)

	eligible := roster.Eligible()
	require.Len(t, eligible, 2)
	assert.Equal(t, "John Mendez", eligible[0].Name)
	assert.Equal(t, "Sarah Lee", eligible[1].Name)
	assert.Equal(t, 3, roster.Size())

	// The roster copies its seed slice
	drivers[0].Rating = 1.0
	assert.Equal(t, 4.8, roster.Eligible()[0].Rating)
}

func TestGeoPointFormattedAddress(t *testing.T) {
	assert.Equal(t, "47.6062, -122.3321", GeoPoint{Latitude: 47.6062, Longitude: -122.3321}.FormattedAddress())
	assert.Equal(t, "0, 0", GeoPoint{}.FormattedAddress())
	assert.Equal(t, "downtown", GeoPoint{Latitude: 1, Longitude: 2, Address: "downtown"}.FormattedAddress())
}

func TestGeoPointInRange(t *testing.T) {
	assert.True(t, GeoPoint{Latitude: 90, Longitude: 180}.InRange())
	assert.True(t, GeoPoint{Latitude: -90, Longitude: -180}.InRange())
	assert.False(t, GeoPoint{Latitude: 90.1, Longitude: 0}.InRange())
	assert.False(t, GeoPoint{Latitude: 0, Longitude: -180.1}.InRange())
}
