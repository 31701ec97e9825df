package http

import (
	"github.com/gin-gonic/gin"

	"moderation-srv/internal/middleware"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1/moderation")
	api.Use(mw.Auth())
	{
		api.POST("/scan", h.ScanContent)
		api.POST("/flags", h.FlagContent)
		api.GET("/flags", h.GetFlaggedContent)
		api.POST("/flags/:flag_id/review", h.ReviewFlag)
		api.GET("/flags/:flag_id/evidence", h.GetFlagEvidence)
		api.GET("/queue", h.GetQueue)
		api.GET("/stats", h.GetStats)
	}
}
