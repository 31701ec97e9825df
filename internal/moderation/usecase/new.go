package usecase

import (
	"time"

	"moderation-srv/internal/enforcement"
	"moderation-srv/internal/events"
	"moderation-srv/internal/moderation"
	"moderation-srv/internal/moderation/repository"
	"moderation-srv/pkg/log"
	"moderation-srv/pkg/minio"
)

// Cache keys and the TTL shared by the queue and stats aggregates.
const (
	cacheKeyQueue      = "moderation:queue"
	cacheKeyStatsFast  = "moderation:stats:fast"
	cacheKeyStatsExact = "moderation:stats:exact"
)

// Config tunes the scanner and the aggregators. Zero values fall back to
// the defaults below.
type Config struct {
	// Dictionaries maps each score dimension to its keyword list.
	Dictionaries Dictionaries

	CacheTTL      time.Duration
	SignalTimeout time.Duration

	RecentWindow       time.Duration
	RecentMessageLimit int
	RecentAuditLimit   int
	LowRatedLimit      int
	OpenFlagLimit      int

	EvidenceBucket string
	EvidenceExpiry time.Duration
}

const (
	defaultCacheTTL           = 30 * time.Minute
	defaultSignalTimeout      = 5 * time.Second
	defaultRecentWindow       = 7 * 24 * time.Hour
	defaultRecentMessageLimit = 10
	defaultRecentAuditLimit   = 5
	defaultLowRatedLimit      = 20
	defaultOpenFlagLimit      = 50
)

func (c *Config) applyDefaults() {
	if len(c.Dictionaries.Toxicity) == 0 && len(c.Dictionaries.Spam) == 0 &&
		len(c.Dictionaries.Harassment) == 0 && len(c.Dictionaries.Inappropriate) == 0 {
		c.Dictionaries = DefaultDictionaries()
	}
	if c.CacheTTL <= 0 {
		c.CacheTTL = defaultCacheTTL
	}
	if c.SignalTimeout <= 0 {
		c.SignalTimeout = defaultSignalTimeout
	}
	if c.RecentWindow <= 0 {
		c.RecentWindow = defaultRecentWindow
	}
	if c.RecentMessageLimit <= 0 {
		c.RecentMessageLimit = defaultRecentMessageLimit
	}
	if c.RecentAuditLimit <= 0 {
		c.RecentAuditLimit = defaultRecentAuditLimit
	}
	if c.LowRatedLimit <= 0 {
		c.LowRatedLimit = defaultLowRatedLimit
	}
	if c.OpenFlagLimit <= 0 {
		c.OpenFlagLimit = defaultOpenFlagLimit
	}
	if c.EvidenceExpiry <= 0 {
		c.EvidenceExpiry = minio.DefaultPresignedExpiry
	}
}

type implUseCase struct {
	l          log.Logger
	cfg        Config
	flagRepo   repository.FlagRepository
	signalRepo repository.SignalRepository
	cacheRepo  repository.CacheRepository
	dispatcher enforcement.Dispatcher
	events     events.Publisher
	minio      minio.MinIO
	clock      func() time.Time
}

// New - Factory
func New(
	l log.Logger,
	cfg Config,
	flagRepo repository.FlagRepository,
	signalRepo repository.SignalRepository,
	cacheRepo repository.CacheRepository,
	dispatcher enforcement.Dispatcher,
	publisher events.Publisher,
	minioClient minio.MinIO,
) moderation.UseCase {
	cfg.applyDefaults()
	return &implUseCase{
		l:          l,
		cfg:        cfg,
		flagRepo:   flagRepo,
		signalRepo: signalRepo,
		cacheRepo:  cacheRepo,
		dispatcher: dispatcher,
		events:     publisher,
		minio:      minioClient,
		clock:      time.Now,
	}
}
