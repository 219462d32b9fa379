package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/scribeworks/blogsmith-api/internal/config"
)

type HealthHandler struct {
	cfg *config.Config
}

func NewHealthHandler(cfg *config.Config) *HealthHandler {
	return &HealthHandler{cfg: cfg}
}

// HealthCheck returns the health status of the API
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"generation": gin.H{
			"model":  h.cfg.BedrockModelID,
			"region": h.cfg.AWSRegion,
		},
		"artifacts": gin.H{
			"bucket": h.cfg.S3Bucket,
			"prefix": h.cfg.S3Prefix,
		},
	})
}
