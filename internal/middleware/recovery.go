package middleware

import (
	"github.com/gin-gonic/gin"

	"moderation-srv/pkg/discord"
	"moderation-srv/pkg/log"
	"moderation-srv/pkg/response"
)

// Recovery recovers from panics on the moderation routes and alerts Discord.
// Unmapped usecase errors deliberately end up here via the delivery layer.
func Recovery(logger log.Logger, discordClient discord.IDiscord) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				ctx := c.Request.Context()
				logger.Errorf(ctx, "Panic recovered: %v | Method: %s | Path: %s | Route: %s",
					err, c.Request.Method, c.Request.URL.Path, c.FullPath())

				response.PanicError(c, err, discordClient)
				c.Abort()
			}
		}()
		c.Next()
	}
}
