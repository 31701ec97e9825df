package usecase

import (
	"context"
	"math"
	"time"

	"golang.org/x/sync/errgroup"

	"moderation-srv/internal/model"
	"moderation-srv/internal/moderation"
)

// Calibration constants for the fast approximate mode. The weights and
// proportions come from observed moderation volume and need re-deriving
// when the flag mix shifts.
const (
	// messageFlagWeight is the fraction of recent messages assumed to need
	// moderation attention.
	messageFlagWeight = 0.1

	// Fast-mode outcome split over the estimated total.
	fastPendingShare  = 0.3
	fastResolvedShare = 0.25
	fastApprovalRate  = 0.6
	fastRejectionRate = 0.3
	fastEscalateRate  = 0.1

	// Fast-mode distribution over flag types.
	fastInappropriateShare = 0.4
	fastSpamShare          = 0.3
	fastHarassmentShare    = 0.2
	fastOtherShare         = 0.1

	// Fast-mode distribution over severities.
	fastLowShare      = 0.4
	fastMediumShare   = 0.35
	fastHighShare     = 0.2
	fastCriticalShare = 0.05

	fastAvgResolutionHours = 6.0
)

// GetModerationStats returns the cached statistics aggregate. Fast mode
// estimates the totals from signal counts; exact mode counts the flag store.
func (uc *implUseCase) GetModerationStats(ctx context.Context, sc model.Scope, input moderation.GetStatsInput) (moderation.StatsOutput, error) {
	key, compute := cacheKeyStatsFast, uc.buildFastStats
	if input.Exact {
		key, compute = cacheKeyStatsExact, uc.buildExactStats
	}

	stats, _ := getOrCompute(ctx, uc.l, uc.cacheRepo, key, uc.cfg.CacheTTL,
		compute, uc.fallbackStats)
	return moderation.StatsOutput{Stats: stats}, nil
}

// buildFastStats estimates the flag population from cheap signal counts
// instead of scanning the flag store. The total is a weighted sum of
// low-rated reviews, a fraction of recent message volume, and open security
// alerts; the breakdowns apply fixed calibrated proportions to it.
func (uc *implUseCase) buildFastStats(ctx context.Context) (model.ModerationStats, error) {
	since := uc.clock().Add(-uc.cfg.RecentWindow)

	var signals model.SignalCounts

	g, gctx := errgroup.WithContext(ctx)
	g.Go(uc.withTimeout(gctx, func(ctx context.Context) error {
		var err error
		signals.TotalReviews, signals.LowRatedReviews, err = uc.signalRepo.CountReviews(ctx)
		return err
	}))
	g.Go(uc.withTimeout(gctx, func(ctx context.Context) error {
		var err error
		signals.TotalMessages, signals.RecentMessages, err = uc.signalRepo.CountMessages(ctx, since)
		return err
	}))
	g.Go(uc.withTimeout(gctx, func(ctx context.Context) error {
		audits, err := uc.signalRepo.CountAuditActions(ctx, since)
		if err != nil {
			return err
		}
		signals.TotalAuditActions = audits.Total
		signals.OpenSecurityAlerts = audits.Open
		signals.AuditBySeverity = audits.BySeverity
		return nil
	}))
	g.Go(uc.withTimeout(gctx, func(ctx context.Context) error {
		var err error
		signals.SuspendedCompanies, err = uc.signalRepo.CountSuspendedCompanies(ctx)
		return err
	}))
	if err := g.Wait(); err != nil {
		return model.ModerationStats{}, err
	}

	total := signals.LowRatedReviews +
		int(math.Floor(float64(signals.RecentMessages)*messageFlagWeight)) +
		signals.OpenSecurityAlerts

	return model.ModerationStats{
		TotalFlags:       total,
		PendingFlags:     share(total, fastPendingShare),
		ResolvedThisWeek: share(total, fastResolvedShare),

		ApprovalRate:   fastApprovalRate,
		RejectionRate:  fastRejectionRate,
		EscalationRate: fastEscalateRate,

		AvgResolutionTimeHours: fastAvgResolutionHours,

		ByType: map[string]int{
			model.FlagTypeInappropriate: share(total, fastInappropriateShare),
			model.FlagTypeSpam:          share(total, fastSpamShare),
			model.FlagTypeHarassment:    share(total, fastHarassmentShare),
			model.FlagTypeOther:         share(total, fastOtherShare),
		},
		BySeverity: map[string]int{
			model.SeverityLow:      share(total, fastLowShare),
			model.SeverityMedium:   share(total, fastMediumShare),
			model.SeverityHigh:     share(total, fastHighShare),
			model.SeverityCritical: share(total, fastCriticalShare),
		},
		ByAction: map[string]int{},

		Mode:        model.StatsModeFast,
		GeneratedAt: uc.clock(),
		Signals:     &signals,
	}, nil
}

// buildExactStats counts the flag population directly.
func (uc *implUseCase) buildExactStats(ctx context.Context) (model.ModerationStats, error) {
	weekStart := uc.clock().Add(-7 * 24 * time.Hour)

	counts, err := uc.flagRepo.ExactCounts(ctx, weekStart)
	if err != nil {
		return model.ModerationStats{}, err
	}

	resolved := counts.ByStatus[model.FlagStatusApproved] + counts.ByStatus[model.FlagStatusRejected]
	decided := resolved + counts.ByStatus[model.FlagStatusEscalated]

	stats := model.ModerationStats{
		TotalFlags:       counts.Total,
		PendingFlags:     counts.ByStatus[model.FlagStatusPending],
		ResolvedThisWeek: counts.ResolvedThisWeek,

		AvgResolutionTimeHours: counts.AvgResolutionHours,

		ByType:     counts.ByType,
		BySeverity: counts.BySeverity,
		ByAction:   counts.ByAction,

		Mode:        model.StatsModeExact,
		GeneratedAt: uc.clock(),
	}

	if decided > 0 {
		stats.ApprovalRate = rate(counts.ByStatus[model.FlagStatusApproved], decided)
		stats.RejectionRate = rate(counts.ByStatus[model.FlagStatusRejected], decided)
		stats.EscalationRate = rate(counts.ByStatus[model.FlagStatusEscalated], decided)
	}

	return stats, nil
}

func (uc *implUseCase) fallbackStats() model.ModerationStats {
	return model.ModerationStats{
		ApprovalRate:   fastApprovalRate,
		RejectionRate:  fastRejectionRate,
		EscalationRate: fastEscalateRate,

		AvgResolutionTimeHours: fastAvgResolutionHours,

		ByType:     map[string]int{},
		BySeverity: map[string]int{},
		ByAction:   map[string]int{},

		Mode:        model.StatsModeFast,
		GeneratedAt: uc.clock(),
		IsFallback:  true,
	}
}

func share(total int, proportion float64) int {
	return int(math.Floor(float64(total) * proportion))
}

func rate(part, whole int) float64 {
	return math.Round(float64(part)/float64(whole)*100) / 100
}
