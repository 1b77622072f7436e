package dynamodb

import (
	"context"
	"errors"
	"time"

	"wildrydes/internal/apperrors"
	"wildrydes/internal/models"
	"wildrydes/internal/repositories/interfaces"
	"wildrydes/internal/utils"
	"wildrydes/pkg/cache"
	"wildrydes/pkg/database"
	"wildrydes/pkg/logger"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/smithy-go"
)

type rideRepository struct {
	client   *dynamodb.Client
	table    string
	cache    *cache.RedisCache
	cacheTTL time.Duration
	log      *logger.Logger
}

// NewRideRepository builds the DynamoDB-backed ride store. cacheClient
// may be nil; caching of active rides is then disabled.
func NewRideRepository(db *database.DynamoDB, cacheClient *cache.RedisCache, cacheTTL time.Duration, log *logger.Logger) interfaces.RideRepository {
	return &rideRepository{
		client:   db.Client,
		table:    db.Config.TableName,
		cache:    cacheClient,
		cacheTTL: cacheTTL,
		log:      log,
	}
}

func (r *rideRepository) CreateRide(ctx context.Context, ride *models.RideRecord) error {
	item, err := attributevalue.MarshalMap(ride)
	if err != nil {
		return apperrors.Wrap(apperrors.KindInternal, utils.ErrRideProcessing, err)
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.table),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(RideId)"),
	})
	if err != nil {
		var conditionFailed *types.ConditionalCheckFailedException
		if errors.As(err, &conditionFailed) {
			return apperrors.Wrap(apperrors.KindDuplicateRequest, utils.ErrDuplicateRide, err)
		}
		return r.classifyStorageError(err)
	}

	// Cache active rides for quick lookup
	if ride.Status.IsActive() {
		r.cacheRide(ctx, ride)
	}

	return nil
}

func (r *rideRepository) GetByRideID(ctx context.Context, rideID string) (*models.RideRecord, error) {
	if ride := r.getRideFromCache(ctx, rideID); ride != nil {
		return ride, nil
	}

	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.table),
		Key:       rideKey(rideID),
	})
	if err != nil {
		return nil, r.classifyStorageError(err)
	}
	if len(out.Item) == 0 {
		return nil, apperrors.Newf(apperrors.KindRideNotFound, "Ride %s not found", rideID)
	}

	var ride models.RideRecord
	if err := attributevalue.UnmarshalMap(out.Item, &ride); err != nil {
		return nil, apperrors.Wrap(apperrors.KindInternal, "Failed to decode ride record", err)
	}

	if ride.Status.IsActive() {
		r.cacheRide(ctx, &ride)
	}

	return &ride, nil
}

func (r *rideRepository) UpdateStatus(ctx context.Context, rideID string, change models.StatusChange) (*models.RideRecord, error) {
	expr := "SET #status = :status, UpdatedAt = :updatedAt, Version = Version + :inc"
	names := map[string]string{"#status": "Status"}
	values := map[string]interface{}{
		":status":    string(change.Status),
		":updatedAt": change.At,
		":inc":       1,
	}

	switch change.Status {
	case models.RideStatusAssigned:
		assignedAt := change.At
		if change.AssignedAt != nil {
			assignedAt = *change.AssignedAt
		}
		expr += ", AssignedTime = :assignedTime"
		values[":assignedTime"] = assignedAt
		if change.DriverID != "" {
			expr += ", AssignedDriverId = :driverId"
			values[":driverId"] = change.DriverID
		}
	case models.RideStatusPickedUp:
		expr += ", PickedUpTime = :pickedUpTime"
		values[":pickedUpTime"] = change.At
	case models.RideStatusCompleted:
		expr += ", CompletedTime = :completedTime"
		values[":completedTime"] = change.At
	case models.RideStatusCancelled:
		expr += ", CancelledTime = :cancelledTime"
		values[":cancelledTime"] = change.At
		if change.Reason != "" {
			expr += ", CancellationReason = :reason"
			values[":reason"] = change.Reason
		}
	}

	exprValues, err := attributevalue.MarshalMap(values)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindInternal, "Failed to encode status update", err)
	}

	out, err := r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.table),
		Key:                       rideKey(rideID),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: exprValues,
		ConditionExpression:       aws.String("attribute_exists(RideId)"),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var conditionFailed *types.ConditionalCheckFailedException
		if errors.As(err, &conditionFailed) {
			return nil, apperrors.Newf(apperrors.KindRideNotFound, "Ride %s not found", rideID)
		}
		return nil, r.classifyStorageError(err)
	}

	var ride models.RideRecord
	if err := attributevalue.UnmarshalMap(out.Attributes, &ride); err != nil {
		return nil, apperrors.Wrap(apperrors.KindInternal, "Failed to decode ride record", err)
	}

	// The cached copy is stale either way
	r.invalidateRideCache(ctx, rideID)
	if ride.Status.IsActive() {
		r.cacheRide(ctx, &ride)
	}

	return &ride, nil
}

// classifyStorageError maps storage-engine failures onto the error
// taxonomy. Throttling is retryable; a missing table is not.
func (r *rideRepository) classifyStorageError(err error) error {
	var throughput *types.ProvisionedThroughputExceededException
	if errors.As(err, &throughput) {
		return apperrors.Wrap(apperrors.KindStorageUnavailable, utils.ErrStorageThrottled, err)
	}

	var limit *types.RequestLimitExceeded
	if errors.As(err, &limit) {
		return apperrors.Wrap(apperrors.KindStorageUnavailable, utils.ErrStorageThrottled, err)
	}

	var notFound *types.ResourceNotFoundException
	if errors.As(err, &notFound) {
		return apperrors.Wrap(apperrors.KindStorageMisconfigured, utils.ErrStorageConfig, err)
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) && apiErr.ErrorCode() == "ThrottlingException" {
		return apperrors.Wrap(apperrors.KindStorageUnavailable, utils.ErrStorageThrottled, err)
	}

	return apperrors.Wrap(apperrors.KindInternal, utils.ErrRideProcessing, err)
}

func rideKey(rideID string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"RideId": &types.AttributeValueMemberS{Value: rideID},
	}
}

// Cache helpers. Failures are logged and swallowed; the table is the
// source of truth.

func cacheKey(rideID string) string {
	return "ride:" + rideID
}

func (r *rideRepository) cacheRide(ctx context.Context, ride *models.RideRecord) {
	if r.cache == nil {
		return
	}
	if err := r.cache.Set(ctx, cacheKey(ride.RideID), ride, r.cacheTTL); err != nil {
		r.log.WithError(err).WithRideID(ride.RideID).Debug("Failed to cache ride")
	}
}

func (r *rideRepository) getRideFromCache(ctx context.Context, rideID string) *models.RideRecord {
	if r.cache == nil {
		return nil
	}

	var ride models.RideRecord
	err := r.cache.Get(ctx, cacheKey(rideID), &ride)
	if err != nil {
		if !cache.IsMiss(err) {
			r.log.WithError(err).WithRideID(rideID).Debug("Failed to read ride from cache")
		}
		return nil
	}

	return &ride
}

func (r *rideRepository) invalidateRideCache(ctx context.Context, rideID string) {
	if r.cache == nil {
		return
	}
	if err := r.cache.Delete(ctx, cacheKey(rideID)); err != nil {
		r.log.WithError(err).WithRideID(rideID).Debug("Failed to invalidate ride cache")
	}
}
