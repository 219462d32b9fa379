package metrics

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/getsentry/sentry-go"
)

const (
	// HTTP status code threshold for considering a request successful
	successStatusCodeThreshold = http.StatusBadRequest
)

// SentryMetrics handles custom metrics for Sentry
type SentryMetrics struct {
	enabled bool
}

// NewSentryMetrics creates a new Sentry metrics client
func NewSentryMetrics() *SentryMetrics {
	return &SentryMetrics{
		enabled: true, // Always enabled if Sentry is configured
	}
}

// RecordAPIRequest records API request metrics
func (m *SentryMetrics) RecordAPIRequest(ctx context.Context, endpoint string, statusCode int, duration time.Duration) {
	if !m.enabled {
		return
	}

	// Create a span for API request tracking using the request context
	span := sentry.StartSpan(ctx, "api.request")
	defer span.Finish()

	// Set span tags
	span.SetTag("endpoint", endpoint)
	span.SetTag("status_code", fmt.Sprintf("%d", statusCode))
	span.SetTag("success", fmt.Sprintf("%t", statusCode < successStatusCodeThreshold))

	// Set span data
	span.SetData("duration_ms", duration.Milliseconds())
	span.SetData("endpoint", endpoint)
	span.SetData("status_code", statusCode)

	// Set span status based on response
	if statusCode < successStatusCodeThreshold {
		span.Status = sentry.SpanStatusOK
	} else {
		span.Status = sentry.SpanStatusInternalError
	}

	// Set span description
	span.Description = fmt.Sprintf("API Request: %s", endpoint)
}

// RecordTokenUsage records Bedrock token usage metrics
func (m *SentryMetrics) RecordTokenUsage(ctx context.Context, model string, promptTokens, generationTokens int) {
	if !m.enabled {
		return
	}

	// Attach token counts to the active transaction when there is one
	if transaction := sentry.TransactionFromContext(ctx); transaction != nil {
		transaction.SetTag("bedrock.model", model)
		transaction.SetTag("bedrock.prompt_tokens", fmt.Sprintf("%d", promptTokens))
		transaction.SetTag("bedrock.generation_tokens", fmt.Sprintf("%d", generationTokens))
		transaction.SetData("bedrock.prompt_tokens", promptTokens)
		transaction.SetData("bedrock.generation_tokens", generationTokens)
	}

	// Also create a child span for detailed tracking
	span := sentry.StartSpan(ctx, "bedrock.token_usage")
	defer span.Finish()

	// Set span tags and data
	span.SetTag("model", model)
	span.SetTag("prompt_tokens", fmt.Sprintf("%d", promptTokens))
	span.SetTag("generation_tokens", fmt.Sprintf("%d", generationTokens))

	span.SetData("prompt_tokens", promptTokens)
	span.SetData("generation_tokens", generationTokens)
	span.SetData("total_tokens", promptTokens+generationTokens)

	span.Status = sentry.SpanStatusOK
	span.Description = fmt.Sprintf("Token Usage: %s", model)
}

// RecordGenerationDuration records generation request duration
func (m *SentryMetrics) RecordGenerationDuration(ctx context.Context, duration time.Duration, success bool) {
	if !m.enabled {
		return
	}

	// Create a span for generation tracking using the request context
	span := sentry.StartSpan(ctx, "generation.request")
	defer span.Finish()

	// Set span tags
	span.SetTag("success", fmt.Sprintf("%t", success))

	// Set span data
	span.SetData("duration_ms", duration.Milliseconds())
	span.SetData("success", success)

	// Set span status
	if success {
		span.Status = sentry.SpanStatusOK
	} else {
		span.Status = sentry.SpanStatusInternalError
	}

	span.Description = fmt.Sprintf("Generation Request: %t", success)
}

// RecordArtifactWrite records an artifact persistence outcome
func (m *SentryMetrics) RecordArtifactWrite(ctx context.Context, location string, success bool) {
	if !m.enabled {
		return
	}

	span := sentry.StartSpan(ctx, "artifact.write")
	defer span.Finish()

	span.SetTag("success", fmt.Sprintf("%t", success))
	if location != "" {
		span.SetData("location", location)
	}

	if success {
		span.Status = sentry.SpanStatusOK
	} else {
		span.Status = sentry.SpanStatusInternalError
	}

	span.Description = "Artifact Write"
}

// RecordCustomMetric sends a custom metric with arbitrary data
func (m *SentryMetrics) RecordCustomMetric(metricName string, data map[string]interface{}) {
	if !m.enabled {
		return
	}

	sentry.WithScope(func(scope *sentry.Scope) {
		scope.SetTag("metric_type", "custom")
		scope.SetTag("metric_name", metricName)

		scope.SetContext("custom_metric", data)

		sentry.CaptureMessage("Custom Metric: " + metricName)
	})
}
