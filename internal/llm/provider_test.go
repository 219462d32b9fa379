package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockProvider is a test implementation of the Provider interface
type MockProvider struct {
	name         string
	generateFunc func(ctx context.Context, request *GenerationRequest) (*GenerationResponse, error)
}

func (m *MockProvider) Name() string {
	return m.name
}

func (m *MockProvider) Generate(ctx context.Context, request *GenerationRequest) (*GenerationResponse, error) {
	if m.generateFunc != nil {
		return m.generateFunc(ctx, request)
	}
	return &GenerationResponse{}, nil
}

func TestProviderInterface(t *testing.T) {
	mock := &MockProvider{
		name: "mock",
	}

	assert.Equal(t, "mock", mock.Name())
}

func TestGenerationRequest(t *testing.T) {
	req := &GenerationRequest{
		Topic:       "benefits of remote work",
		Prompt:      "<s>[INST]write about remote work[/INST]",
		Temperature: 0.7,
		TopP:        0.9,
		MaxGenLen:   384,
	}

	assert.Equal(t, "benefits of remote work", req.Topic)
	assert.InDelta(t, 0.7, req.Temperature, 0.0001)
	assert.InDelta(t, 0.9, req.TopP, 0.0001)
	assert.Equal(t, 384, req.MaxGenLen)
}

func TestMockProviderGenerate(t *testing.T) {
	callCount := 0
	mock := &MockProvider{
		name: "test",
		generateFunc: func(_ context.Context, request *GenerationRequest) (*GenerationResponse, error) {
			callCount++
			require.Equal(t, "test topic", request.Topic)
			return &GenerationResponse{
				Text:             "generated blog text",
				PromptTokens:     42,
				GenerationTokens: 128,
				StopReason:       "stop",
			}, nil
		},
	}

	resp, err := mock.Generate(context.Background(), &GenerationRequest{Topic: "test topic"})
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, 1, callCount)
	assert.Equal(t, "generated blog text", resp.Text)
	assert.Equal(t, 42, resp.PromptTokens)
	assert.Equal(t, 128, resp.GenerationTokens)
}
