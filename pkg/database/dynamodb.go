package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type DynamoDB struct {
	Client *dynamodb.Client
	Config *DynamoConfig
}

type DynamoConfig struct {
	TableName      string
	Region         string
	Endpoint       string // non-empty for local DynamoDB
	MaxAttempts    int
	ConnectTimeout time.Duration
}

func NewDynamoDB(cfg *DynamoConfig) (*DynamoDB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	defer cancel()

	awsCfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(cfg.Region),
		config.WithRetryMaxAttempts(cfg.MaxAttempts),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})

	return &DynamoDB{
		Client: client,
		Config: cfg,
	}, nil
}

// Ping verifies the rides table is reachable. A missing table is an
// operator problem, not a transient one.
func (d *DynamoDB) Ping(ctx context.Context) error {
	_, err := d.Client.DescribeTable(ctx, &dynamodb.DescribeTableInput{
		TableName: aws.String(d.Config.TableName),
	})
	if err != nil {
		var notFound *types.ResourceNotFoundException
		if errors.As(err, &notFound) {
			return fmt.Errorf("rides table %q does not exist: %w", d.Config.TableName, err)
		}
		return fmt.Errorf("failed to describe rides table: %w", err)
	}
	return nil
}
