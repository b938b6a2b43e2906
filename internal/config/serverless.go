package config

import (
	"os"
	"sync"
)

// ServerlessConfig holds serverless-specific configuration.
type ServerlessConfig struct {
	IsLambda     bool
	FunctionName string
	Region       string
}

var (
	serverlessConfig *ServerlessConfig
	serverlessOnce   sync.Once
)

// GetServerlessConfig returns the serverless configuration, detected once
// per process.
func GetServerlessConfig() *ServerlessConfig {
	serverlessOnce.Do(func() {
		serverlessConfig = &ServerlessConfig{
			IsLambda:     os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "",
			FunctionName: os.Getenv("AWS_LAMBDA_FUNCTION_NAME"),
			Region:       os.Getenv("AWS_REGION"),
		}
	})
	return serverlessConfig
}

// IsServerlessMode returns true when running inside AWS Lambda.
func IsServerlessMode() bool {
	return GetServerlessConfig().IsLambda
}
