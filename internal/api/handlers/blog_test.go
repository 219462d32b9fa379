package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/scribeworks/blogsmith-api/internal/artifact"
	apimiddleware "github.com/scribeworks/blogsmith-api/internal/api/middleware"
	"github.com/scribeworks/blogsmith-api/internal/config"
	"github.com/scribeworks/blogsmith-api/internal/llm"
	"github.com/scribeworks/blogsmith-api/internal/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockProvider is a test implementation of the llm.Provider interface
type mockProvider struct {
	generateFunc func(ctx context.Context, request *llm.GenerationRequest) (*llm.GenerationResponse, error)
	requests     []*llm.GenerationRequest
}

func (m *mockProvider) Name() string { return "mock" }

func (m *mockProvider) Generate(ctx context.Context, request *llm.GenerationRequest) (*llm.GenerationResponse, error) {
	m.requests = append(m.requests, request)
	if m.generateFunc != nil {
		return m.generateFunc(ctx, request)
	}
	return &llm.GenerationResponse{}, nil
}

// mockStore is a test implementation of the artifact.Store interface
type mockStore struct {
	saveFunc func(ctx context.Context, content string) (string, error)
	saved    []string
}

func (m *mockStore) Save(ctx context.Context, content string) (string, error) {
	m.saved = append(m.saved, content)
	if m.saveFunc != nil {
		return m.saveFunc(ctx, content)
	}
	return "s3://test-bucket/blog_output/2025_01_02_150405.txt", nil
}

var _ llm.Provider = (*mockProvider)(nil)
var _ artifact.Store = (*mockStore)(nil)

// longBlog is a valid generation comfortably above the minimum length
const longBlog = "# The Benefits of Remote Work\n\n" +
	"Remote work has reshaped how teams collaborate across time zones. " +
	"It reduces commute overhead, widens hiring pools, and often improves focus.\n\n" +
	"## Key Advantages\n" +
	"- Flexible schedules\n" +
	"- Lower operating costs\n" +
	"- Access to global talent"

func setupBlogTestRouter(provider llm.Provider, store artifact.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)

	cfg := config.Load()
	cfg.Environment = "test"
	cw, _ := metrics.NewClient(context.Background(), cfg.Environment)

	router := gin.New()
	router.Use(apimiddleware.CORS())

	blogHandler := NewBlogHandler(cfg, provider, store, cw)
	router.POST("/api/v1/blogs", blogHandler.Generate)

	return router
}

func postBlog(router *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/blogs", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func errorBody(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp["error"]
}

func TestBlogHandler_Success(t *testing.T) {
	provider := &mockProvider{
		generateFunc: func(_ context.Context, _ *llm.GenerationRequest) (*llm.GenerationResponse, error) {
			return &llm.GenerationResponse{
				Text:             "<s>" + longBlog + "</s>",
				PromptTokens:     40,
				GenerationTokens: 120,
				StopReason:       "stop",
			}, nil
		},
	}
	store := &mockStore{}
	router := setupBlogTestRouter(provider, store)

	w := postBlog(router, `{"topic":"benefits of remote work"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, longBlog, w.Body.String())
	assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "Content-Type", w.Header().Get("Access-Control-Allow-Headers"))

	// The persisted artifact content equals the response body
	require.Len(t, store.saved, 1)
	assert.Equal(t, longBlog, store.saved[0])

	// The prompt embeds the topic verbatim
	require.Len(t, provider.requests, 1)
	assert.Equal(t, 1, strings.Count(provider.requests[0].Prompt, "benefits of remote work"))
}

func TestBlogHandler_MissingTopic(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"absent_field", `{}`},
		{"empty_topic", `{"topic":""}`},
		{"other_fields_only", `{"subject":"not a topic"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &mockProvider{}
			store := &mockStore{}
			router := setupBlogTestRouter(provider, store)

			w := postBlog(router, tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, "Missing 'topic' in request body", errorBody(t, w))
			assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
			assert.Empty(t, provider.requests, "generation must not be invoked")
			assert.Empty(t, store.saved, "nothing may be persisted")
		})
	}
}

func TestBlogHandler_MalformedBody(t *testing.T) {
	provider := &mockProvider{}
	store := &mockStore{}
	router := setupBlogTestRouter(provider, store)

	w := postBlog(router, `{"topic": not valid json`)

	// Parse failures keep the historical generic 500 contract
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Internal server error.", errorBody(t, w))
	assert.Empty(t, provider.requests)
	assert.Empty(t, store.saved)
}

func TestBlogHandler_ShortOutput(t *testing.T) {
	provider := &mockProvider{
		generateFunc: func(_ context.Context, _ *llm.GenerationRequest) (*llm.GenerationResponse, error) {
			return &llm.GenerationResponse{Text: "Too short to publish."}, nil
		},
	}
	store := &mockStore{}
	router := setupBlogTestRouter(provider, store)

	w := postBlog(router, `{"topic":"anything"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Blog generation failed or returned empty content.", errorBody(t, w))
	assert.Empty(t, store.saved, "short output must not be persisted")
}

func TestBlogHandler_GenerationFailureAbsorbedAsEmptyOutput(t *testing.T) {
	provider := &mockProvider{
		generateFunc: func(_ context.Context, _ *llm.GenerationRequest) (*llm.GenerationResponse, error) {
			return nil, llm.ErrGenerationFailed
		},
	}
	store := &mockStore{}
	router := setupBlogTestRouter(provider, store)

	w := postBlog(router, `{"topic":"anything"}`)

	// A failed generation surfaces exactly like a short result
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Blog generation failed or returned empty content.", errorBody(t, w))
	assert.Empty(t, store.saved)
}

func TestBlogHandler_OutputExactlyAtThreshold(t *testing.T) {
	atThreshold := strings.Repeat("a", 100)
	provider := &mockProvider{
		generateFunc: func(_ context.Context, _ *llm.GenerationRequest) (*llm.GenerationResponse, error) {
			return &llm.GenerationResponse{Text: atThreshold}, nil
		},
	}
	store := &mockStore{}
	router := setupBlogTestRouter(provider, store)

	w := postBlog(router, `{"topic":"threshold"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, atThreshold, w.Body.String())
	require.Len(t, store.saved, 1)
}

func TestBlogHandler_PersistenceFailure(t *testing.T) {
	provider := &mockProvider{
		generateFunc: func(_ context.Context, _ *llm.GenerationRequest) (*llm.GenerationResponse, error) {
			return &llm.GenerationResponse{Text: longBlog}, nil
		},
	}
	store := &mockStore{
		saveFunc: func(_ context.Context, _ string) (string, error) {
			return "", errors.New("store unreachable")
		},
	}
	router := setupBlogTestRouter(provider, store)

	w := postBlog(router, `{"topic":"benefits of remote work"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Internal server error.", errorBody(t, w))

	// The write is attempted once and the result discarded, never retried
	assert.Len(t, store.saved, 1)
	assert.Len(t, provider.requests, 1)
}

func TestBlogHandler_SanitizesBeforePersisting(t *testing.T) {
	raw := "<s>[INST]\n\n\n" + longBlog + "\n\n\n\n[/INST]</s>"
	provider := &mockProvider{
		generateFunc: func(_ context.Context, _ *llm.GenerationRequest) (*llm.GenerationResponse, error) {
			return &llm.GenerationResponse{Text: raw}, nil
		},
	}
	store := &mockStore{}
	router := setupBlogTestRouter(provider, store)

	w := postBlog(router, `{"topic":"benefits of remote work"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	require.Len(t, store.saved, 1)
	assert.NotContains(t, store.saved[0], "<s>")
	assert.NotContains(t, store.saved[0], "[INST]")
	assert.NotContains(t, store.saved[0], "\n\n\n")
	assert.Equal(t, store.saved[0], w.Body.String())
}
