package config

import "os"

// Config holds the application configuration
// Note: This is a stateless configuration - AWS credentials are resolved by
// the SDK's default chain (environment, shared config, instance role)
type Config struct {
	// Environment
	Environment string
	Port        string

	// AWS / Bedrock
	AWSRegion      string // Region for the Bedrock runtime client
	BedrockModelID string // Model invoked for blog generation

	// Artifact storage
	S3Bucket string // Bucket holding generated blog artifacts
	S3Prefix string // Key prefix (logical namespace) for artifacts

	// Observability
	SentryDSN         string // Sentry DSN for error tracking
	LangfusePublicKey string // Langfuse public key
	LangfuseSecretKey string // Langfuse secret key
	LangfuseHost      string // Langfuse host URL (cloud or self-hosted)
	LangfuseEnabled   bool   // Feature flag for Langfuse

	// Auth mode
	// - "none": No auth (self-hosted, local dev)
	// - "gateway": Trust X-User-* headers from an upstream gateway
	AuthMode string
}

func Load() *Config {
	return &Config{
		Environment:       getEnv("ENVIRONMENT", "development"),
		Port:              getEnv("PORT", "8080"),
		AWSRegion:         getEnv("AWS_REGION", "ap-south-1"),
		BedrockModelID:    getEnv("BEDROCK_MODEL_ID", "meta.llama3-8b-instruct-v1:0"),
		S3Bucket:          getEnv("S3_BUCKET", "aws-bedrock-stuffs"),
		S3Prefix:          getEnv("S3_PREFIX", "blog_output"),
		SentryDSN:         getEnv("SENTRY_DSN", ""),
		LangfusePublicKey: getEnv("LANGFUSE_PUBLIC_KEY", ""),
		LangfuseSecretKey: getEnv("LANGFUSE_SECRET_KEY", ""),
		LangfuseHost:      getEnv("LANGFUSE_HOST", "https://cloud.langfuse.com"),
		LangfuseEnabled:   getEnv("LANGFUSE_ENABLED", "false") == "true",
		AuthMode:          getEnv("AUTH_MODE", "none"), // Default to no auth for self-hosted
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return defaultValue
}

// IsGatewayMode returns true if running behind an auth gateway
func (c *Config) IsGatewayMode() bool {
	return c.AuthMode == "gateway"
}
