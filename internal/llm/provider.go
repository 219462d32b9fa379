package llm

import "context"

// Provider defines the interface for text-generation backends.
// Implementations return typed errors and never panic past this boundary;
// an absent generation field in the service response is an empty string,
// not an error - emptiness is judged by the caller.
type Provider interface {
	// Generate produces blog text for the given request
	Generate(ctx context.Context, request *GenerationRequest) (*GenerationResponse, error)

	// Name returns the provider name (e.g., "bedrock")
	Name() string
}

// GenerationRequest contains all parameters needed for a generation call.
// Immutable once built; created fresh per request by the prompt builder.
type GenerationRequest struct {
	Topic       string  // Caller-supplied topic, embedded verbatim in Prompt
	Prompt      string  // Instruction-wrapped prompt text
	Temperature float64 // Sampling temperature in [0,1]
	TopP        float64 // Nucleus sampling in [0,1]
	MaxGenLen   int     // Maximum tokens to generate
}

// GenerationResponse contains the raw result from the model
type GenerationResponse struct {
	Text             string // Raw generated text, may still carry protocol markers
	PromptTokens     int    // Tokens consumed by the prompt
	GenerationTokens int    // Tokens produced by the model
	StopReason       string // Why generation stopped (e.g., "stop", "length")
}
