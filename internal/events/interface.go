package events

import (
	"context"

	"moderation-srv/internal/model"
)

// Event types emitted on the moderation lifecycle topic.
const (
	EventFlagCreated  = "moderation.flag.created"
	EventFlagReviewed = "moderation.flag.reviewed"
)

//go:generate mockery --name Publisher
type Publisher interface {
	// FlagCreated announces a new flag. Best effort.
	FlagCreated(ctx context.Context, flag *model.ContentFlag)
	// FlagReviewed announces a review decision. Best effort.
	FlagReviewed(ctx context.Context, flag *model.ContentFlag, decision string)
}
