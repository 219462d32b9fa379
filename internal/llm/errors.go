package llm

import "errors"

// Common errors returned by providers
var (
	// ErrGenerationFailed is returned when the generation call fails after retries
	ErrGenerationFailed = errors.New("failed to generate blog text")

	// ErrInvalidResponse is returned when the service response cannot be decoded
	ErrInvalidResponse = errors.New("invalid response from generation service")

	// ErrTransientFailure marks temporary errors that might resolve on retry
	ErrTransientFailure = errors.New("transient error during generation")

	// ErrInvalidConfig is returned when the provider configuration is invalid
	ErrInvalidConfig = errors.New("invalid provider configuration")
)
