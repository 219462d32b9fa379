package handlers

import (
	"net/http"
	"time"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"github.com/scribeworks/blogsmith-api/internal/artifact"
	"github.com/scribeworks/blogsmith-api/internal/config"
	"github.com/scribeworks/blogsmith-api/internal/llm"
	"github.com/scribeworks/blogsmith-api/internal/logger"
	"github.com/scribeworks/blogsmith-api/internal/metrics"
	"github.com/scribeworks/blogsmith-api/internal/observability"
	"github.com/scribeworks/blogsmith-api/internal/prompt"
	"github.com/scribeworks/blogsmith-api/internal/sanitize"
)

// BlogHandler orchestrates the blog generation pipeline:
// validate -> build prompt -> generate -> sanitize -> persist -> respond
type BlogHandler struct {
	provider llm.Provider
	store    artifact.Store
	builder  *prompt.Builder
	cw       *metrics.Client
	cfg      *config.Config
}

// NewBlogHandler creates a handler with injected collaborators so tests can
// substitute the provider and store with doubles
func NewBlogHandler(cfg *config.Config, provider llm.Provider, store artifact.Store, cw *metrics.Client) *BlogHandler {
	return &BlogHandler{
		provider: provider,
		store:    store,
		builder:  prompt.NewBuilder(),
		cw:       cw,
		cfg:      cfg,
	}
}

type BlogRequest struct {
	Topic string `json:"topic"`
}

// Sentry span metrics, recorded alongside CloudWatch
var sentryMetrics = metrics.NewSentryMetrics()

// Generate handles POST /api/v1/blogs.
//
// Failure contract: a malformed body and any unrecovered internal fault both
// return the generic internal error; a missing topic is the only client
// error; generation failures are absorbed into the empty-output path so the
// caller cannot distinguish "service errored" from "service returned short
// text" (the cause is still logged and traced internally).
func (h *BlogHandler) Generate(c *gin.Context) {
	var req BlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// Parse failures are treated as internal errors, matching the
		// historical response contract
		logger.Error("Failed to decode request body", err, logger.WithContext(c))
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	if req.Topic == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": errMissingTopic})
		return
	}

	fields := logger.WithContext(c)
	fields["topic"] = req.Topic
	logger.Info("Received blog topic", fields)

	genReq := h.builder.Build(req.Topic)

	trace := observability.GetClient().StartTrace(c.Request.Context(), "blog.generate", map[string]interface{}{
		"topic":      req.Topic,
		"request_id": c.GetString("request_id"),
	})
	defer trace.Finish()
	lfGen := trace.Generation("bedrock.invoke", nil)

	startTime := time.Now()
	result, genErr := h.provider.Generate(c.Request.Context(), genReq)
	duration := time.Since(startTime)

	// Generation failures are swallowed into an empty result; emptiness is
	// judged by the length check below
	raw := ""
	if genErr != nil {
		logger.Error("Blog generation failed", genErr, fields)
		lfGen.SetLevel("ERROR")
	} else {
		raw = result.Text
		logger.LogGenerationRequest(c.Request.Context(), h.provider.Name(), duration,
			result.PromptTokens, result.GenerationTokens, fields)
		h.cw.RecordTokenUsage(h.cfg.BedrockModelID, result.PromptTokens, result.GenerationTokens)
		sentryMetrics.RecordTokenUsage(c.Request.Context(), h.cfg.BedrockModelID, result.PromptTokens, result.GenerationTokens)
	}
	h.cw.RecordGenerationDuration(duration, genErr == nil)
	sentryMetrics.RecordGenerationDuration(c.Request.Context(), duration, genErr == nil)

	cleaned := sanitize.Clean(raw)

	if genErr == nil {
		lfGen.LogBedrockGeneration(h.cfg.BedrockModelID, genReq.Prompt, cleaned,
			result.PromptTokens, result.GenerationTokens, map[string]interface{}{
				"stop_reason": result.StopReason,
			})
	}
	lfGen.Finish()

	if utf8.RuneCountInString(cleaned) < minBlogChars {
		warnFields := logger.WithContext(c)
		warnFields["chars"] = utf8.RuneCountInString(cleaned)
		if genErr != nil {
			warnFields["cause"] = genErr.Error()
		}
		logger.Warn("Generated blog is too short or empty", warnFields)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errEmptyBlog})
		return
	}

	location, err := h.store.Save(c.Request.Context(), cleaned)
	h.cw.RecordArtifactWrite(err == nil)
	sentryMetrics.RecordArtifactWrite(c.Request.Context(), location, err == nil)
	if err != nil {
		// Fatal for the request; the generation result is discarded
		logger.Error("Failed to persist blog artifact", err, fields)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	fields["artifact"] = location
	logger.Info("Blog generated and persisted", fields)

	c.String(http.StatusOK, cleaned)
}
