package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	snsTypes "github.com/aws/aws-sdk-go-v2/service/sns/types"
)

// Event types published on the ride lifecycle topic.
const (
	EventRideRequested     = "ride_requested"
	EventRideStatusChanged = "ride_status_changed"
)

// RideEvent is the message body published for each lifecycle change.
type RideEvent struct {
	Type       string `json:"type"`
	RideID     string `json:"ride_id"`
	Status     string `json:"status"`
	Rider      string `json:"rider,omitempty"`
	OccurredAt string `json:"occurred_at"`
}

type SNSPublisher struct {
	client   *sns.Client
	topicARN string
}

func NewSNSPublisher(region, topicARN string) (*SNSPublisher, error) {
	cfg, err := config.LoadDefaultConfig(context.Background(), config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &SNSPublisher{
		client:   sns.NewFromConfig(cfg),
		topicARN: topicARN,
	}, nil
}

func (p *SNSPublisher) PublishRideEvent(ctx context.Context, event *RideEvent) error {
	if event.OccurredAt == "" {
		event.OccurredAt = time.Now().UTC().Format(time.RFC3339)
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal ride event: %w", err)
	}

	input := &sns.PublishInput{
		TopicArn: aws.String(p.topicARN),
		Message:  aws.String(string(body)),
		MessageAttributes: map[string]snsTypes.MessageAttributeValue{
			"event_type": {
				DataType:    aws.String("String"),
				StringValue: aws.String(event.Type),
			},
		},
	}

	if _, err := p.client.Publish(ctx, input); err != nil {
		return fmt.Errorf("failed to publish ride event: %w", err)
	}

	return nil
}
