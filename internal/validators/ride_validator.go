package validators

import (
	"errors"
	"time"

	"wildrydes/internal/models"
	"wildrydes/internal/utils"
)

// RideRequestRequest is the inbound ride-request command. Coordinates
// are pointers so an absent field is distinguishable from zero.
type RideRequestRequest struct {
	PickupLocation *PickupLocationRequest `json:"PickupLocation" validate:"required"`
}

type PickupLocationRequest struct {
	Latitude  *float64 `json:"Latitude" validate:"required,min=-90,max=90"`
	Longitude *float64 `json:"Longitude" validate:"required,min=-180,max=180"`
	Address   string   `json:"Address" validate:"omitempty,max=255"`
}

// RideStatusUpdateRequest carries a lifecycle transition for an
// existing ride. AssignedAt and DriverId apply to ASSIGNED, Reason to
// CANCELLED; the service ignores them otherwise.
type RideStatusUpdateRequest struct {
	Status     string     `json:"Status" validate:"required"`
	Reason     string     `json:"Reason" validate:"omitempty,max=255"`
	AssignedAt *time.Time `json:"AssignedAt" validate:"omitempty"`
	DriverID   string     `json:"DriverId" validate:"omitempty,max=100"`
}

// ValidateRideRequest checks the pickup location and returns the
// validated point with its address defaulted to "lat, lng" when absent.
// The error message is caller-facing and mirrors the failing check.
func ValidateRideRequest(req *RideRequestRequest) (*models.GeoPoint, error) {
	if req == nil || req.PickupLocation == nil {
		return nil, errors.New(utils.ErrPickupRequired)
	}

	loc := req.PickupLocation
	if loc.Latitude == nil || loc.Longitude == nil {
		return nil, errors.New(utils.ErrCoordinateTypes)
	}

	if errs := ValidateStruct(req); len(errs) > 0 {
		return nil, errors.New(errs[0].Message)
	}

	point := &models.GeoPoint{
		Latitude:  *loc.Latitude,
		Longitude: *loc.Longitude,
		Address:   loc.Address,
	}
	point.Address = point.FormattedAddress()

	return point, nil
}

// ValidateStatusUpdate checks the transition request shape. Status
// membership in the recognized set is the service's concern.
func ValidateStatusUpdate(req *RideStatusUpdateRequest) error {
	if req == nil {
		return errors.New(utils.ErrBodyRequired)
	}
	if errs := ValidateStruct(req); len(errs) > 0 {
		return errors.New(errs[0].Message)
	}
	return nil
}
