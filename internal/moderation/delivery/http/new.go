package http

import (
	"github.com/gin-gonic/gin"

	"moderation-srv/internal/middleware"
	"moderation-srv/internal/moderation"
	"moderation-srv/pkg/discord"
	"moderation-srv/pkg/log"
)

type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l       log.Logger
	uc      moderation.UseCase
	discord discord.IDiscord
}

func New(l log.Logger, uc moderation.UseCase, discord discord.IDiscord) Handler {
	return &handler{
		l:       l,
		uc:      uc,
		discord: discord,
	}
}
