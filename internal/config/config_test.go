package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ENVIRONMENT", "")
	t.Setenv("PORT", "")
	t.Setenv("AWS_REGION", "")
	t.Setenv("BEDROCK_MODEL_ID", "")
	t.Setenv("S3_BUCKET", "")
	t.Setenv("S3_PREFIX", "")
	t.Setenv("AUTH_MODE", "")
	t.Setenv("LANGFUSE_ENABLED", "")

	cfg := Load()

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "ap-south-1", cfg.AWSRegion)
	assert.Equal(t, "meta.llama3-8b-instruct-v1:0", cfg.BedrockModelID)
	assert.Equal(t, "aws-bedrock-stuffs", cfg.S3Bucket)
	assert.Equal(t, "blog_output", cfg.S3Prefix)
	assert.Equal(t, "none", cfg.AuthMode)
	assert.False(t, cfg.LangfuseEnabled)
	assert.False(t, cfg.IsGatewayMode())
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("PORT", "9090")
	t.Setenv("AWS_REGION", "us-east-1")
	t.Setenv("BEDROCK_MODEL_ID", "meta.llama3-70b-instruct-v1:0")
	t.Setenv("S3_BUCKET", "my-artifacts")
	t.Setenv("S3_PREFIX", "published")
	t.Setenv("AUTH_MODE", "gateway")
	t.Setenv("LANGFUSE_ENABLED", "true")

	cfg := Load()

	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "us-east-1", cfg.AWSRegion)
	assert.Equal(t, "meta.llama3-70b-instruct-v1:0", cfg.BedrockModelID)
	assert.Equal(t, "my-artifacts", cfg.S3Bucket)
	assert.Equal(t, "published", cfg.S3Prefix)
	assert.True(t, cfg.LangfuseEnabled)
	assert.True(t, cfg.IsGatewayMode())
}
