package config

import (
	"time"
)

type StorageConfig struct {
	TableName      string        `yaml:"table_name"`
	Region         string        `yaml:"region"`
	Endpoint       string        `yaml:"endpoint"`
	MaxAttempts    int           `yaml:"max_attempts"`
	ConnectTimeout time.Duration `yaml:"connect_timeout"`
	RequestTimeout time.Duration `yaml:"request_timeout"`
}

func loadStorageConfig() *StorageConfig {
	return &StorageConfig{
		TableName:      getEnv("RIDES_TABLE", "Rides"),
		Region:         getEnv("AWS_REGION", "us-east-1"),
		Endpoint:       getEnv("DYNAMODB_ENDPOINT", ""),
		MaxAttempts:    getEnvAsInt("STORAGE_MAX_ATTEMPTS", 3),
		ConnectTimeout: getEnvAsDuration("STORAGE_CONNECT_TIMEOUT", 10*time.Second),
		RequestTimeout: getEnvAsDuration("STORAGE_REQUEST_TIMEOUT", 10*time.Second),
	}
}
