package usecase

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"moderation-srv/internal/model"
	"moderation-srv/internal/moderation"
	"moderation-srv/internal/moderation/repository"
)

// avgProcessingEstimateHours is a fixed operational estimate shown on the
// queue. Measured resolution times live in the exact statistics mode.
const avgProcessingEstimateHours = 4.5

// GetModerationQueue returns the cached partitioned queue. On a cache miss
// the three signal sources and the flag store are queried concurrently, each
// under its own timeout; any failure degrades to a marked fallback queue.
func (uc *implUseCase) GetModerationQueue(ctx context.Context, sc model.Scope) (moderation.QueueOutput, error) {
	queue, _ := getOrCompute(ctx, uc.l, uc.cacheRepo, cacheKeyQueue, uc.cfg.CacheTTL,
		uc.buildQueue, uc.fallbackQueue)
	return moderation.QueueOutput{Queue: queue}, nil
}

func (uc *implUseCase) buildQueue(ctx context.Context) (model.ModerationQueue, error) {
	window := repository.RecentWindowOptions{
		Since: uc.clock().Add(-uc.cfg.RecentWindow),
		Limit: uc.cfg.RecentMessageLimit,
	}
	auditWindow := repository.RecentWindowOptions{
		Since: window.Since,
		Limit: uc.cfg.RecentAuditLimit,
	}

	var (
		reviews  []model.LowRatedReview
		messages []model.RecentMessage
		audits   []model.SecurityAuditAction
		stored   []*model.ContentFlag
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(uc.withTimeout(gctx, func(ctx context.Context) error {
		var err error
		reviews, err = uc.signalRepo.GetLowRatedReviews(ctx, uc.cfg.LowRatedLimit)
		return err
	}))
	g.Go(uc.withTimeout(gctx, func(ctx context.Context) error {
		var err error
		messages, err = uc.signalRepo.GetRecentMessages(ctx, window)
		return err
	}))
	g.Go(uc.withTimeout(gctx, func(ctx context.Context) error {
		var err error
		audits, err = uc.signalRepo.GetSecurityAuditActions(ctx, auditWindow)
		return err
	}))
	g.Go(uc.withTimeout(gctx, func(ctx context.Context) error {
		var err error
		stored, err = uc.flagRepo.ListOpenFlags(ctx, uc.cfg.OpenFlagLimit)
		return err
	}))
	if err := g.Wait(); err != nil {
		return model.ModerationQueue{}, err
	}

	queue := model.ModerationQueue{
		Pending:                []model.ContentFlag{},
		UnderReview:            []model.ContentFlag{},
		Escalated:              []model.ContentFlag{},
		AvgProcessingTimeHours: avgProcessingEstimateHours,
		GeneratedAt:            uc.clock(),
	}

	for _, flag := range stored {
		queue.Add(*flag)
	}
	for _, rv := range reviews {
		queue.Add(flagFromReview(rv))
	}
	for _, msg := range messages {
		queue.Add(flagFromMessage(msg))
	}
	for _, audit := range audits {
		queue.Add(flagFromAudit(audit))
	}

	return queue, nil
}

// withTimeout wraps one signal query with its own deadline so a single slow
// source cannot stall the whole aggregation.
func (uc *implUseCase) withTimeout(ctx context.Context, fn func(context.Context) error) func() error {
	return func() error {
		tctx, cancel := context.WithTimeout(ctx, uc.cfg.SignalTimeout)
		defer cancel()
		return fn(tctx)
	}
}

func (uc *implUseCase) fallbackQueue() model.ModerationQueue {
	placeholder := model.ContentFlag{
		ID:          "fallback-1",
		ContentID:   "unavailable",
		ContentType: model.ContentTypeReview,
		FlagType:    model.FlagTypeOther,
		Severity:    model.SeverityLow,
		Status:      model.FlagStatusPending,
		FlaggedBy:   "system:fallback",
		FlaggedAt:   uc.clock(),
		Reason:      "Signal sources unavailable",
		Description: "Queue data could not be aggregated; showing a degraded placeholder",
	}

	queue := model.ModerationQueue{
		Pending:                []model.ContentFlag{placeholder},
		UnderReview:            []model.ContentFlag{},
		Escalated:              []model.ContentFlag{},
		Total:                  1,
		AvgProcessingTimeHours: avgProcessingEstimateHours,
		GeneratedAt:            uc.clock(),
		IsFallback:             true,
	}
	return queue
}

func flagFromReview(rv model.LowRatedReview) model.ContentFlag {
	ref := model.SignalRef{SourceType: model.SignalSourceReview, SourceID: rv.ID}
	severity := model.SeverityMedium
	if rv.Rating <= 1 {
		severity = model.SeverityHigh
	}
	return model.ContentFlag{
		ID:          ref.FlagID(),
		ContentID:   rv.ID,
		ContentType: model.ContentTypeReview,
		FlagType:    model.FlagTypeInappropriate,
		Severity:    severity,
		Status:      model.FlagStatusPending,
		FlaggedBy:   "system:rating-monitor",
		FlaggedAt:   rv.CreatedAt,
		Reason:      fmt.Sprintf("Review rated %d/5", rv.Rating),
		Description: rv.Comment,
		Source:      &ref,
	}
}

func flagFromMessage(msg model.RecentMessage) model.ContentFlag {
	ref := model.SignalRef{SourceType: model.SignalSourceMsg, SourceID: msg.ID}
	return model.ContentFlag{
		ID:          ref.FlagID(),
		ContentID:   msg.ID,
		ContentType: model.ContentTypeMessage,
		FlagType:    model.FlagTypeSpam,
		Severity:    model.SeverityLow,
		Status:      model.FlagStatusPending,
		FlaggedBy:   "system:message-monitor",
		FlaggedAt:   msg.SentAt,
		Reason:      "Recent message pending screen",
		Source:      &ref,
	}
}

func flagFromAudit(audit model.SecurityAuditAction) model.ContentFlag {
	ref := model.SignalRef{SourceType: model.SignalSourceAudit, SourceID: audit.ID}
	severity := audit.Severity
	if !model.ValidSeverity(severity) {
		severity = model.SeverityHigh
	}
	status := model.FlagStatusUnderReview
	if severity == model.SeverityCritical {
		status = model.FlagStatusEscalated
	}
	return model.ContentFlag{
		ID:          ref.FlagID(),
		ContentID:   audit.TargetID,
		ContentType: model.ContentTypeProfile,
		FlagType:    model.FlagTypeFraud,
		Severity:    severity,
		Status:      status,
		FlaggedBy:   "system:security-audit",
		FlaggedAt:   audit.CreatedAt,
		Reason:      fmt.Sprintf("Security audit action %s on %s", audit.Action, audit.TargetType),
		Source:      &ref,
	}
}
