package moderation

import (
	"context"

	"moderation-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// ScanContent scores content and, when risky, creates a flag as a side effect.
	ScanContent(ctx context.Context, sc model.Scope, input ScanContentInput) (ScanOutput, error)

	// FlagContent creates a new flag. Critical severity auto-escalates.
	FlagContent(ctx context.Context, sc model.Scope, input FlagContentInput) (FlagOutput, error)

	// ReviewContentFlag applies an approve/reject/escalate decision to a flag.
	ReviewContentFlag(ctx context.Context, sc model.Scope, input ReviewFlagInput) (FlagOutput, error)

	// GetFlaggedContent lists flags with AND-combined filters and pagination.
	GetFlaggedContent(ctx context.Context, sc model.Scope, input GetFlaggedContentInput) (FlaggedContentOutput, error)

	// GetModerationQueue returns the cached partitioned queue, falling back to a
	// marked synthetic queue when signal sources are unavailable.
	GetModerationQueue(ctx context.Context, sc model.Scope) (QueueOutput, error)

	// GetModerationStats returns the cached statistics aggregate, in fast
	// approximate or exact mode.
	GetModerationStats(ctx context.Context, sc model.Scope, input GetStatsInput) (StatsOutput, error)

	// GetFlagEvidence returns presigned download URLs for a flag's evidence attachments.
	GetFlagEvidence(ctx context.Context, sc model.Scope, input GetEvidenceInput) (EvidenceOutput, error)
}
