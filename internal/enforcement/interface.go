package enforcement

import (
	"context"

	"moderation-srv/internal/model"
)

// Command is one enforcement instruction handed to downstream services.
type Command struct {
	FlagID      string `json:"flag_id"`
	ContentID   string `json:"content_id"`
	ContentType string `json:"content_type"`
	ActionType  string `json:"action_type"`
	ExecutedBy  string `json:"executed_by"`
	Parameters  any    `json:"parameters,omitempty"`
	Reversible  bool   `json:"reversible"`
}

//go:generate mockery --name Dispatcher
type Dispatcher interface {
	// Dispatch publishes one enforcement command per action. Delivery is
	// best effort; the review result must not be rolled back on failure.
	Dispatch(ctx context.Context, flag *model.ContentFlag, actions []model.ContentAction) error
}
