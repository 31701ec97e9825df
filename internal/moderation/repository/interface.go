package repository

import (
	"context"
	"time"

	"moderation-srv/internal/model"
)

//go:generate mockery --name FlagRepository
type FlagRepository interface {
	CreateFlag(ctx context.Context, opts CreateFlagOptions) (*model.ContentFlag, error)
	GetFlagByID(ctx context.Context, id string) (*model.ContentFlag, error)
	ListFlags(ctx context.Context, opts ListFlagsOptions) ([]*model.ContentFlag, int64, error)
	ListOpenFlags(ctx context.Context, limit int) ([]*model.ContentFlag, error)
	// UpdateReview applies the review transition as a compare-and-set on the
	// expected current status. Zero rows updated means a concurrent reviewer won.
	UpdateReview(ctx context.Context, opts UpdateReviewOptions) (*model.ContentFlag, error)
	AppendAction(ctx context.Context, opts AppendActionOptions) error
	// ExactCounts scans the flag population for the exact statistics mode.
	ExactCounts(ctx context.Context, weekStart time.Time) (ExactCounts, error)
}

//go:generate mockery --name SignalRepository
type SignalRepository interface {
	GetLowRatedReviews(ctx context.Context, limit int) ([]model.LowRatedReview, error)
	GetRecentMessages(ctx context.Context, opts RecentWindowOptions) ([]model.RecentMessage, error)
	GetSecurityAuditActions(ctx context.Context, opts RecentWindowOptions) ([]model.SecurityAuditAction, error)

	CountReviews(ctx context.Context) (total int, lowRated int, err error)
	CountMessages(ctx context.Context, since time.Time) (total int, recent int, err error)
	CountAuditActions(ctx context.Context, since time.Time) (AuditCounts, error)
	CountSuspendedCompanies(ctx context.Context) (int, error)
}

//go:generate mockery --name CacheRepository
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}
