package interfaces

import (
	"context"

	"wildrydes/internal/models"
)

// RideRepository is the storage-engine contract for ride records.
// Uniqueness on create and existence on update are the storage
// engine's atomic conditional-write guarantees, not the caller's.
type RideRepository interface {
	// CreateRide persists a new record if and only if no record with
	// the same ride id exists. A collision fails with
	// apperrors.KindDuplicateRequest and leaves the original untouched.
	CreateRide(ctx context.Context, ride *models.RideRecord) error

	// GetByRideID fetches a record, failing with
	// apperrors.KindRideNotFound when absent.
	GetByRideID(ctx context.Context, rideID string) (*models.RideRecord, error)

	// UpdateStatus applies one status change to an existing record and
	// returns the full post-update record. A missing record fails with
	// apperrors.KindRideNotFound; no record is created as a side effect.
	UpdateStatus(ctx context.Context, rideID string, change models.StatusChange) (*models.RideRecord, error)
}
