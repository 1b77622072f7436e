package models

import "time"

type RideStatus string

const (
	RideStatusRequested RideStatus = "REQUESTED"
	RideStatusAssigned  RideStatus = "ASSIGNED"
	RideStatusPickedUp  RideStatus = "PICKED_UP"
	RideStatusCompleted RideStatus = "COMPLETED"
	RideStatusCancelled RideStatus = "CANCELLED"
)

// ValidRideStatuses lists every recognized status, in lifecycle order.
var ValidRideStatuses = []RideStatus{
	RideStatusRequested,
	RideStatusAssigned,
	RideStatusPickedUp,
	RideStatusCompleted,
	RideStatusCancelled,
}

func ParseRideStatus(s string) (RideStatus, bool) {
	for _, status := range ValidRideStatuses {
		if string(status) == s {
			return status, true
		}
	}
	return "", false
}

// IsActive reports whether a ride in this status is still in flight.
// Active rides are worth caching; terminal ones are not.
func (s RideStatus) IsActive() bool {
	switch s {
	case RideStatusRequested, RideStatusAssigned, RideStatusPickedUp:
		return true
	}
	return false
}

// RideRecord is the persisted ride entity. Attribute names follow the
// durable table schema: RideId is the partition key, ExpiresAt is the
// table's TTL attribute (epoch seconds), and the per-transition
// timestamps are written exactly once when the transition occurs.
type RideRecord struct {
	RideID             string           `json:"ride_id" dynamodbav:"RideId"`
	Rider              string           `json:"rider" dynamodbav:"User"`
	Driver             DriverAssignment `json:"driver" dynamodbav:"Driver"`
	PickupLocation     GeoPoint         `json:"pickup_location" dynamodbav:"PickupLocation"`
	Status             RideStatus       `json:"status" dynamodbav:"Status"`
	Version            int64            `json:"version" dynamodbav:"Version"`
	RequestTime        time.Time        `json:"request_time" dynamodbav:"RequestTime"`
	ProcessedTime      time.Time        `json:"processed_time" dynamodbav:"ProcessedTime"`
	CreatedAt          time.Time        `json:"created_at" dynamodbav:"CreatedAt"`
	UpdatedAt          time.Time        `json:"updated_at" dynamodbav:"UpdatedAt"`
	AssignedTime       *time.Time       `json:"assigned_time,omitempty" dynamodbav:"AssignedTime,omitempty"`
	AssignedDriverID   string           `json:"assigned_driver_id,omitempty" dynamodbav:"AssignedDriverId,omitempty"`
	PickedUpTime       *time.Time       `json:"picked_up_time,omitempty" dynamodbav:"PickedUpTime,omitempty"`
	CompletedTime      *time.Time       `json:"completed_time,omitempty" dynamodbav:"CompletedTime,omitempty"`
	CancelledTime      *time.Time       `json:"cancelled_time,omitempty" dynamodbav:"CancelledTime,omitempty"`
	CancellationReason string           `json:"cancellation_reason,omitempty" dynamodbav:"CancellationReason,omitempty"`
	ExpiresAt          int64            `json:"expires_at" dynamodbav:"ExpiresAt"`
	RequestID          string           `json:"request_id,omitempty" dynamodbav:"RequestId,omitempty"`
	Region             string           `json:"region,omitempty" dynamodbav:"Region,omitempty"`
}

// StatusChange carries one lifecycle transition. At is the transition
// time; AssignedAt, DriverID and Reason only apply to the statuses that
// use them.
type StatusChange struct {
	Status     RideStatus
	At         time.Time
	AssignedAt *time.Time
	DriverID   string
	Reason     string
}

// ApplyStatusChange mutates the record the way the storage layer's
// update expression does: Status, UpdatedAt and Version always change,
// plus the timestamp field owned by the target status.
func (r *RideRecord) ApplyStatusChange(change StatusChange) {
	r.Status = change.Status
	r.UpdatedAt = change.At
	r.Version++

	switch change.Status {
	case RideStatusAssigned:
		at := change.At
		if change.AssignedAt != nil {
			at = *change.AssignedAt
		}
		r.AssignedTime = &at
		if change.DriverID != "" {
			r.AssignedDriverID = change.DriverID
		}
	case RideStatusPickedUp:
		at := change.At
		r.PickedUpTime = &at
	case RideStatusCompleted:
		at := change.At
		r.CompletedTime = &at
	case RideStatusCancelled:
		at := change.At
		r.CancelledTime = &at
		if change.Reason != "" {
			r.CancellationReason = change.Reason
		}
	}
}

// RideConfirmation is the public view returned to the rider after a
// successful request. Key casing matches the wire contract.
type RideConfirmation struct {
	RideID         string           `json:"RideId"`
	Driver         DriverAssignment `json:"Driver"`
	Eta            string           `json:"Eta"`
	Rider          string           `json:"Rider"`
	RequestedAt    time.Time        `json:"RequestedAt"`
	Status         RideStatus       `json:"Status"`
	PickupLocation GeoPoint         `json:"PickupLocation"`
}

// Confirmation builds the public view of a freshly created record.
func (r *RideRecord) Confirmation(eta string) *RideConfirmation {
	return &RideConfirmation{
		RideID:         r.RideID,
		Driver:         r.Driver,
		Eta:            eta,
		Rider:          r.Rider,
		RequestedAt:    r.RequestTime,
		Status:         r.Status,
		PickupLocation: r.PickupLocation,
	}
}
