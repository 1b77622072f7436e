package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"wildrydes/internal/apperrors"
	"wildrydes/internal/config"
	"wildrydes/internal/models"
	"wildrydes/internal/repositories/interfaces"
	"wildrydes/internal/utils"
	"wildrydes/internal/validators"
	"wildrydes/pkg/logger"
	"wildrydes/pkg/notify"
)

type RideService interface {
	// RequestRide validates the command, assigns a driver and persists
	// a new REQUESTED ride. riderID may be empty; a guest identity is
	// synthesized so requests never fail for missing auth.
	RequestRide(ctx context.Context, riderID string, req *validators.RideRequestRequest) (*models.RideConfirmation, error)

	// UpdateRideStatus applies one lifecycle transition to an existing
	// ride and returns the post-update record. Updates are
	// last-write-wins by ride id: no expected-Version precondition is
	// applied, so concurrent updates may overwrite each other's
	// non-timestamp fields.
	UpdateRideStatus(ctx context.Context, rideID string, req *validators.RideStatusUpdateRequest) (*models.RideRecord, error)

	// GetRide fetches a ride record by id.
	GetRide(ctx context.Context, rideID string) (*models.RideRecord, error)
}

// RandomSource supplies the randomness for ride ids and driver
// selection. Injectable so tests run deterministic.
type RandomSource interface {
	RideID() string
	Intn(n int) int
}

type cryptoRandom struct{}

func (cryptoRandom) RideID() string { return utils.GenerateRideID() }
func (cryptoRandom) Intn(n int) int { return utils.SecureRandomInt(n) }

// EventPublisher emits ride lifecycle events. A nil publisher disables
// publishing.
type EventPublisher interface {
	PublishRideEvent(ctx context.Context, event *notify.RideEvent) error
}

type rideService struct {
	rideRepo      interfaces.RideRepository
	roster        *models.Roster
	publisher     EventPublisher
	log           *logger.Logger
	random        RandomSource
	now           func() time.Time
	arrivalOffset time.Duration
	etaMinMinutes int
	etaMaxMinutes int
	recordTTL     time.Duration
	region        string
}

func NewRideService(
	rideRepo interfaces.RideRepository,
	fleetConfig *config.FleetConfig,
	region string,
	publisher EventPublisher,
	log *logger.Logger,
) RideService {
	drivers := make([]models.Driver, 0, len(fleetConfig.Drivers))
	for _, d := range fleetConfig.Drivers {
		drivers = append(drivers, models.Driver{
			Name:    d.Name,
			Vehicle: d.Vehicle,
			Gender:  d.Gender,
			Rating:  d.Rating,
		})
	}

	return &rideService{
		rideRepo:      rideRepo,
		roster:        models.NewRoster(drivers, fleetConfig.MinRating),
		publisher:     publisher,
		log:           log,
		random:        cryptoRandom{},
		now:           time.Now,
		arrivalOffset: fleetConfig.ArrivalOffset,
		etaMinMinutes: fleetConfig.EtaMinMinutes,
		etaMaxMinutes: fleetConfig.EtaMaxMinutes,
		recordTTL:     fleetConfig.RecordTTL,
		region:        region,
	}
}

func (s *rideService) RequestRide(ctx context.Context, riderID string, req *validators.RideRequestRequest) (*models.RideConfirmation, error) {
	now := s.now().UTC()

	rider := riderID
	if rider == "" {
		rider = fmt.Sprintf("%s%d", utils.GuestRiderPrefix, now.UnixMilli())
	}

	pickup, err := validators.ValidateRideRequest(req)
	if err != nil {
		return nil, apperrors.New(apperrors.KindInvalidRequest, err.Error())
	}

	driver, err := s.assignDriver(now)
	if err != nil {
		return nil, err
	}

	record := &models.RideRecord{
		RideID:         s.random.RideID(),
		Rider:          rider,
		Driver:         driver,
		PickupLocation: *pickup,
		Status:         models.RideStatusRequested,
		Version:        1,
		RequestTime:    now,
		ProcessedTime:  now,
		CreatedAt:      now,
		UpdatedAt:      now,
		ExpiresAt:      now.Add(s.recordTTL).Unix(),
		RequestID:      utils.RequestIDFromContext(ctx),
		Region:         s.region,
	}

	if err := s.rideRepo.CreateRide(ctx, record); err != nil {
		return nil, err
	}

	s.log.WithContext(ctx).LogRideEvent(record.RideID, notify.EventRideRequested, map[string]interface{}{
		"rider":  rider,
		"driver": driver.DriverID,
	})
	s.publishEvent(ctx, notify.EventRideRequested, record)

	return record.Confirmation(s.estimateEta()), nil
}

func (s *rideService) UpdateRideStatus(ctx context.Context, rideID string, req *validators.RideStatusUpdateRequest) (*models.RideRecord, error) {
	if rideID == "" {
		return nil, apperrors.New(apperrors.KindInvalidRequest, "RideId is required")
	}
	if err := validators.ValidateStatusUpdate(req); err != nil {
		return nil, apperrors.New(apperrors.KindInvalidRequest, err.Error())
	}

	status, ok := models.ParseRideStatus(req.Status)
	if !ok {
		return nil, apperrors.Newf(apperrors.KindInvalidStatus,
			"Invalid status: %s. Valid statuses: %s", req.Status, validStatusList())
	}

	change := models.StatusChange{
		Status:     status,
		At:         s.now().UTC(),
		AssignedAt: req.AssignedAt,
		DriverID:   req.DriverID,
		Reason:     req.Reason,
	}

	record, err := s.rideRepo.UpdateStatus(ctx, rideID, change)
	if err != nil {
		return nil, err
	}

	s.log.WithContext(ctx).LogRideEvent(rideID, notify.EventRideStatusChanged, map[string]interface{}{
		"status":  string(status),
		"version": record.Version,
	})
	s.publishEvent(ctx, notify.EventRideStatusChanged, record)

	return record, nil
}

func (s *rideService) GetRide(ctx context.Context, rideID string) (*models.RideRecord, error) {
	if rideID == "" {
		return nil, apperrors.New(apperrors.KindInvalidRequest, "RideId is required")
	}
	return s.rideRepo.GetByRideID(ctx, rideID)
}

// assignDriver picks uniformly at random among roster drivers meeting
// the minimum rating.
func (s *rideService) assignDriver(now time.Time) (models.DriverAssignment, error) {
	eligible := s.roster.Eligible()
	if len(eligible) == 0 {
		return models.DriverAssignment{}, apperrors.New(apperrors.KindInternal, "No drivers available")
	}

	picked := eligible[s.random.Intn(len(eligible))]
	return picked.Assign(now.Add(s.arrivalOffset)), nil
}

// estimateEta produces the synthetic textual ETA, e.g. "5 mins".
func (s *rideService) estimateEta() string {
	spread := s.etaMaxMinutes - s.etaMinMinutes + 1
	if spread < 1 {
		spread = 1
	}
	return fmt.Sprintf("%d mins", s.etaMinMinutes+s.random.Intn(spread))
}

func (s *rideService) publishEvent(ctx context.Context, eventType string, record *models.RideRecord) {
	if s.publisher == nil {
		return
	}

	event := &notify.RideEvent{
		Type:       eventType,
		RideID:     record.RideID,
		Status:     string(record.Status),
		Rider:      record.Rider,
		OccurredAt: utils.FormatTimeISO(s.now().UTC()),
	}

	if err := s.publisher.PublishRideEvent(ctx, event); err != nil {
		s.log.WithError(err).WithRideID(record.RideID).Warn("Failed to publish ride event")
	}
}

func validStatusList() string {
	names := make([]string, 0, len(models.ValidRideStatuses))
	for _, status := range models.ValidRideStatuses {
		names = append(names, string(status))
	}
	return strings.Join(names, ", ")
}
