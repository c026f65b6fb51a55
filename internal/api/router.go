// internal/api/router.go
package api

import "github.com/gin-gonic/gin"

// NewRouter configures the HTTP routes.
func NewRouter(handler *Handler, debug bool) *gin.Engine {
	if !debug {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestIDMiddleware())
	r.Use(corsMiddleware())

	apiGroup := r.Group("/api")
	{
		apiGroup.POST("/analyze", handler.AnalyzeText)
		apiGroup.GET("/history", handler.GetHistory)
		apiGroup.DELETE("/history", handler.ClearHistory)
		apiGroup.GET("/export/:format", handler.ExportResult)
		apiGroup.GET("/health", handler.Health)
	}

	r.GET("/ws/analyze", handler.AnalyzeSocket)

	return r
}
