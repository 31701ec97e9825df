package httpserver

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"

	"moderation-srv/config"
	"moderation-srv/pkg/discord"
	pkgJWT "moderation-srv/pkg/jwt"
	"moderation-srv/pkg/kafka"
	"moderation-srv/pkg/log"
	"moderation-srv/pkg/minio"
	pkgRabb "moderation-srv/pkg/rabbitmq"
	pkgRedis "moderation-srv/pkg/redis"
)

type HTTPServer struct {
	// Server Configuration
	gin         *gin.Engine
	l           log.Logger
	host        string
	port        int
	mode        string
	environment string

	// Database Configuration
	postgresDB  *sql.DB
	redisClient pkgRedis.IRedis

	// Messaging Configuration
	producer kafka.IProducer
	rabbitMQ pkgRabb.IRabbitMQ

	// Storage Configuration
	minioClient minio.MinIO

	// Authentication & Security Configuration
	config     *config.Config
	jwtManager *pkgJWT.Manager

	// Monitoring & Notification Configuration
	discord discord.IDiscord
}

type Config struct {
	// Server Configuration
	Host        string
	Port        int
	Mode        string
	Environment string

	// Database Configuration
	PostgresDB  *sql.DB
	RedisClient pkgRedis.IRedis

	// Messaging Configuration
	Producer kafka.IProducer
	RabbitMQ pkgRabb.IRabbitMQ

	// Storage Configuration
	MinIO minio.MinIO

	// Authentication & Security Configuration
	Config     *config.Config
	JWTManager *pkgJWT.Manager

	// Monitoring & Notification Configuration
	Discord discord.IDiscord
}

// New creates a new HTTPServer instance with the provided configuration.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		// Server Configuration
		l:           logger,
		gin:         gin.New(),
		host:        cfg.Host,
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,

		// Database Configuration
		postgresDB:  cfg.PostgresDB,
		redisClient: cfg.RedisClient,

		// Messaging Configuration
		producer: cfg.Producer,
		rabbitMQ: cfg.RabbitMQ,

		// Storage Configuration
		minioClient: cfg.MinIO,

		// Authentication & Security Configuration
		config:     cfg.Config,
		jwtManager: cfg.JWTManager,

		// Monitoring & Notification Configuration
		discord: cfg.Discord,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate validates that all required dependencies are provided.
func (srv HTTPServer) validate() error {
	// Server Configuration
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	// host can be empty (listen on all interfaces)
	if srv.port == 0 {
		return errors.New("port is required")
	}

	// Database Configuration
	if srv.postgresDB == nil {
		return errors.New("postgresDB is required")
	}
	if srv.redisClient == nil {
		return errors.New("redisClient is required")
	}

	// Messaging Configuration
	if srv.rabbitMQ == nil {
		return errors.New("rabbitMQ is required")
	}

	// Storage Configuration
	if srv.minioClient == nil {
		return errors.New("minio is required")
	}

	// Authentication & Security Configuration
	if srv.config == nil {
		return errors.New("config is required")
	}
	if srv.jwtManager == nil {
		return errors.New("jwtManager is required")
	}

	return nil
}
