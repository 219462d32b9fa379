package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/aws/retry"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime/types"
	"github.com/aws/smithy-go"
	"github.com/getsentry/sentry-go"
)

const (
	// Provider name
	providerNameBedrock = "bedrock"

	// Transport limits for model invocation. The read timeout is generous
	// because llama generations can take minutes under load.
	bedrockReadTimeout = 300 * time.Second
	bedrockMaxAttempts = 3

	contentTypeJSON = "application/json"
)

// InvokeModelAPI is the subset of the Bedrock runtime client used by the provider
type InvokeModelAPI interface {
	InvokeModel(
		ctx context.Context,
		params *bedrockruntime.InvokeModelInput,
		optFns ...func(*bedrockruntime.Options),
	) (*bedrockruntime.InvokeModelOutput, error)
}

// BedrockProvider implements the Provider interface using the Bedrock runtime
// InvokeModel API with the llama raw-JSON body format
type BedrockProvider struct {
	client  InvokeModelAPI
	modelID string
}

// invokeModelPayload is the llama instruct request body
type invokeModelPayload struct {
	Prompt      string  `json:"prompt"`
	Temperature float64 `json:"temperature"`
	TopP        float64 `json:"top_p"`
	MaxGenLen   int     `json:"max_gen_len"`
}

// invokeModelOutput is the llama instruct response body
type invokeModelOutput struct {
	Generation           string `json:"generation"`
	PromptTokenCount     int    `json:"prompt_token_count"`
	GenerationTokenCount int    `json:"generation_token_count"`
	StopReason           string `json:"stop_reason"`
}

// NewBedrockProvider creates a provider backed by a real Bedrock runtime client.
// Transient service errors are retried by the SDK up to bedrockMaxAttempts;
// non-transient failures (e.g. a malformed request) fail immediately.
func NewBedrockProvider(ctx context.Context, region, modelID string) (*BedrockProvider, error) {
	if modelID == "" {
		return nil, fmt.Errorf("%w: model ID must not be empty", ErrInvalidConfig)
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(region),
		awsconfig.WithRetryer(func() aws.Retryer {
			return retry.AddWithMaxAttempts(retry.NewStandard(), bedrockMaxAttempts)
		}),
		awsconfig.WithHTTPClient(&http.Client{Timeout: bedrockReadTimeout}),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: load AWS config: %v", ErrInvalidConfig, err)
	}

	log.Printf("🤖 Bedrock provider initialized (model: %s, region: %s)", modelID, region)

	return &BedrockProvider{
		client:  bedrockruntime.NewFromConfig(cfg),
		modelID: modelID,
	}, nil
}

// NewBedrockProviderWithClient creates a provider with an injected client.
// Used by tests to substitute the Bedrock runtime with a double.
func NewBedrockProviderWithClient(client InvokeModelAPI, modelID string) *BedrockProvider {
	return &BedrockProvider{
		client:  client,
		modelID: modelID,
	}
}

// Name returns the provider name
func (p *BedrockProvider) Name() string {
	return providerNameBedrock
}

// Generate invokes the model and decodes the llama response body.
// A response without a generation field yields an empty Text, not an error.
func (p *BedrockProvider) Generate(ctx context.Context, request *GenerationRequest) (*GenerationResponse, error) {
	startTime := time.Now()
	log.Printf("✍️  BEDROCK GENERATION REQUEST STARTED (Model: %s)", p.modelID)

	// Start Sentry transaction
	transaction := sentry.StartTransaction(ctx, "bedrock.generate")
	defer transaction.Finish()

	transaction.SetTag("model", p.modelID)
	transaction.SetTag("provider", providerNameBedrock)

	payload, err := json.Marshal(invokeModelPayload{
		Prompt:      request.Prompt,
		Temperature: request.Temperature,
		TopP:        request.TopP,
		MaxGenLen:   request.MaxGenLen,
	})
	if err != nil {
		transaction.SetTag("success", "false")
		return nil, fmt.Errorf("%w: marshal request payload: %v", ErrInvalidConfig, err)
	}

	// Call Bedrock with a Sentry span; retries happen inside the SDK
	span := transaction.StartChild("bedrock.invoke_model")
	resp, err := p.client.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     aws.String(p.modelID),
		ContentType: aws.String(contentTypeJSON),
		Accept:      aws.String(contentTypeJSON),
		Body:        payload,
	})
	apiDuration := time.Since(startTime)
	span.Finish()

	if err != nil {
		log.Printf("❌ BEDROCK REQUEST FAILED after %v: %v", apiDuration, err)
		transaction.SetTag("success", "false")
		sentry.CaptureException(err)
		if isTransient(err) {
			return nil, fmt.Errorf("%w: %v", ErrTransientFailure, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	log.Printf("⏱️  BEDROCK API CALL COMPLETED in %v", apiDuration)

	var out invokeModelOutput
	if err := json.Unmarshal(resp.Body, &out); err != nil {
		transaction.SetTag("success", "false")
		sentry.CaptureException(err)
		return nil, fmt.Errorf("%w: decode response body: %v", ErrInvalidResponse, err)
	}

	transaction.SetTag("success", "true")
	transaction.SetData("prompt_tokens", out.PromptTokenCount)
	transaction.SetData("generation_tokens", out.GenerationTokenCount)

	return &GenerationResponse{
		Text:             out.Generation,
		PromptTokens:     out.PromptTokenCount,
		GenerationTokens: out.GenerationTokenCount,
		StopReason:       out.StopReason,
	}, nil
}

// isTransient reports whether err is a temporary service-side failure.
// Throttling, model timeouts and 5xx faults may succeed on a later attempt;
// validation errors never will.
func isTransient(err error) bool {
	var throttled *types.ThrottlingException
	if errors.As(err, &throttled) {
		return true
	}
	var unavailable *types.ServiceUnavailableException
	if errors.As(err, &unavailable) {
		return true
	}
	var timeout *types.ModelTimeoutException
	if errors.As(err, &timeout) {
		return true
	}
	var internal *types.InternalServerException
	if errors.As(err, &internal) {
		return true
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return apiErr.ErrorFault() == smithy.FaultServer
	}
	return false
}
