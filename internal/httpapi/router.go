package httpapi

import (
	"github.com/gin-gonic/gin"
)

// NewRouter wires the API routes and middleware.
func NewRouter(h *Handler) *gin.Engine {
	zl := h.logger.Zap()

	r := gin.New()
	r.Use(RequestID(), AccessLog(zl), Recovery(zl))
	if h.maxUploadBytes > 0 {
		r.MaxMultipartMemory = h.maxUploadBytes
	}

	r.GET("/healthz", h.Health)

	v1 := r.Group("/api/v1")
	v1.GET("/languages", h.Languages)
	v1.POST("/extract", h.Extract)
	v1.POST("/summaries", h.Summarize)
	v1.POST("/bias", h.DetectBias)
	v1.POST("/documents", h.Document)
	v1.POST("/speech", h.Speech)

	return r
}
