package config

type NotifyConfig struct {
	TopicARN string `yaml:"topic_arn"`
	Region   string `yaml:"region"`
}

func loadNotifyConfig() *NotifyConfig {
	return &NotifyConfig{
		TopicARN: getEnv("RIDE_EVENTS_TOPIC_ARN", ""),
		Region:   getEnv("AWS_REGION", "us-east-1"),
	}
}

func (n *NotifyConfig) Enabled() bool {
	return n.TopicARN != ""
}
