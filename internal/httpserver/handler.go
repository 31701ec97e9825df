package httpserver

import (
	"context"
	"time"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"moderation-srv/internal/enforcement"
	"moderation-srv/internal/events"
	"moderation-srv/internal/middleware"
	moderationHTTP "moderation-srv/internal/moderation/delivery/http"
	moderationPostgre "moderation-srv/internal/moderation/repository/postgre"
	moderationRedis "moderation-srv/internal/moderation/repository/redis"
	moderationUC "moderation-srv/internal/moderation/usecase"
)

func (srv HTTPServer) mapHandlers() error {
	ctx := context.Background()

	mw := middleware.New(srv.l, srv.jwtManager)

	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	// Initialize repositories
	flagRepo := moderationPostgre.NewFlagRepository(srv.l, srv.postgresDB)
	signalRepo := moderationPostgre.NewSignalRepository(srv.l, srv.postgresDB)
	cacheRepo := moderationRedis.NewCacheRepository(srv.l, srv.redisClient)

	// Initialize outbound adapters
	dispatcher, err := enforcement.NewDispatcher(srv.l, srv.rabbitMQ, srv.config.RabbitMQ.Exchange)
	if err != nil {
		return err
	}

	var publisher events.Publisher = events.NopPublisher{}
	if srv.producer != nil {
		publisher = events.NewPublisher(srv.l, srv.producer)
	}

	// Initialize usecase
	uc := moderationUC.New(srv.l, moderationUC.Config{
		CacheTTL:           time.Duration(srv.config.Moderation.CacheTTLMinutes) * time.Minute,
		SignalTimeout:      time.Duration(srv.config.Moderation.SignalTimeoutSecs) * time.Second,
		RecentWindow:       time.Duration(srv.config.Moderation.RecentWindowDays) * 24 * time.Hour,
		RecentMessageLimit: srv.config.Moderation.RecentMessageLimit,
		RecentAuditLimit:   srv.config.Moderation.RecentAuditLimit,
		EvidenceBucket:     srv.config.MinIO.EvidenceBucket,
	}, flagRepo, signalRepo, cacheRepo, dispatcher, publisher, srv.minioClient)

	// Initialize HTTP handler and map routes
	handler := moderationHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(&srv.gin.RouterGroup, mw)

	srv.l.Infof(ctx, "Moderation domain registered")
	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(middleware.Recovery(srv.l, srv.discord))
	srv.gin.Use(middleware.CORS())
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	// Swagger UI and docs
	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}
