package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"moderation-srv/internal/model"
)

func TestGetModerationQueue(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "admin-1"}
	now := time.Now()

	t.Run("aggregates signal sources and stored flags", func(t *testing.T) {
		env := newTestEnv(Config{})
		env.signalRepo.reviews = []model.LowRatedReview{
			{ID: "rev-1", Rating: 1, CreatedAt: now},
			{ID: "rev-2", Rating: 2, CreatedAt: now},
		}
		env.signalRepo.messages = []model.RecentMessage{
			{ID: "msg-1", SentAt: now},
		}
		env.signalRepo.audits = []model.SecurityAuditAction{
			{ID: "aud-1", Severity: model.SeverityHigh, CreatedAt: now},
		}
		seedFlag(env, "flag-1", model.FlagStatusEscalated, model.SeverityCritical)

		o, err := env.uc.GetModerationQueue(ctx, sc)
		if err != nil {
			t.Fatalf("GetModerationQueue failed: %v", err)
		}
		q := o.Queue

		if q.IsFallback {
			t.Error("Live queue should not be marked fallback")
		}
		// 2 reviews + 1 message pending, 1 audit under review, 1 stored escalated.
		if len(q.Pending) != 3 {
			t.Errorf("Pending mismatch: got %d, want 3", len(q.Pending))
		}
		if len(q.UnderReview) != 1 {
			t.Errorf("UnderReview mismatch: got %d, want 1", len(q.UnderReview))
		}
		if len(q.Escalated) != 1 {
			t.Errorf("Escalated mismatch: got %d, want 1", len(q.Escalated))
		}
		if q.Total != len(q.Pending)+len(q.UnderReview)+len(q.Escalated) {
			t.Errorf("Total must equal the partition sum: got %d", q.Total)
		}
		// rev-1 (rating 1 -> HIGH), aud-1 (HIGH), flag-1 (CRITICAL).
		if q.HighPriority != 3 {
			t.Errorf("HighPriority mismatch: got %d, want 3", q.HighPriority)
		}
	})

	t.Run("synthetic ids are deterministic", func(t *testing.T) {
		env := newTestEnv(Config{})
		env.signalRepo.reviews = []model.LowRatedReview{{ID: "rev-7", Rating: 2, CreatedAt: now}}

		first, err := env.uc.GetModerationQueue(ctx, sc)
		if err != nil {
			t.Fatalf("GetModerationQueue failed: %v", err)
		}
		env.cacheRepo.entries = map[string][]byte{}

		second, err := env.uc.GetModerationQueue(ctx, sc)
		if err != nil {
			t.Fatalf("GetModerationQueue failed: %v", err)
		}

		if first.Queue.Pending[0].ID != second.Queue.Pending[0].ID {
			t.Errorf("Synthetic flag id changed between runs: %s vs %s",
				first.Queue.Pending[0].ID, second.Queue.Pending[0].ID)
		}
		if first.Queue.Pending[0].Source == nil {
			t.Error("Synthetic flag should carry its signal source")
		}
	})

	t.Run("second call is served from cache", func(t *testing.T) {
		env := newTestEnv(Config{})
		env.signalRepo.reviews = []model.LowRatedReview{{ID: "rev-1", Rating: 1, CreatedAt: now}}

		if _, err := env.uc.GetModerationQueue(ctx, sc); err != nil {
			t.Fatalf("GetModerationQueue failed: %v", err)
		}

		// A signal failure now must not matter: the cache serves the queue.
		env.signalRepo.reviewsErr = errors.New("db down")

		o, err := env.uc.GetModerationQueue(ctx, sc)
		if err != nil {
			t.Fatalf("GetModerationQueue failed: %v", err)
		}
		if o.Queue.IsFallback {
			t.Error("Cached queue should not be fallback")
		}
		if len(o.Queue.Pending) != 1 {
			t.Errorf("Pending mismatch: got %d, want 1", len(o.Queue.Pending))
		}
	})

	t.Run("signal failure degrades to marked fallback", func(t *testing.T) {
		env := newTestEnv(Config{})
		env.signalRepo.messagesErr = errors.New("message store down")

		o, err := env.uc.GetModerationQueue(ctx, sc)
		if err != nil {
			t.Fatalf("Fallback path should not error: %v", err)
		}
		if !o.Queue.IsFallback {
			t.Fatal("Degraded queue must be marked fallback")
		}
		if o.Queue.Total != 1 || len(o.Queue.Pending) != 1 {
			t.Errorf("Fallback queue shape mismatch: total=%d pending=%d", o.Queue.Total, len(o.Queue.Pending))
		}
		if o.Queue.Pending[0].Severity != model.SeverityLow {
			t.Errorf("Fallback placeholder severity mismatch: got %s", o.Queue.Pending[0].Severity)
		}
	})

	t.Run("fallback is not cached", func(t *testing.T) {
		env := newTestEnv(Config{})
		env.signalRepo.auditsErr = errors.New("audit store down")

		if _, err := env.uc.GetModerationQueue(ctx, sc); err != nil {
			t.Fatalf("GetModerationQueue failed: %v", err)
		}
		if len(env.cacheRepo.saved) != 0 {
			t.Errorf("Fallback queue should not be cached, saved keys: %v", env.cacheRepo.saved)
		}

		// Once the source recovers, live data is served again.
		env.signalRepo.auditsErr = nil
		o, err := env.uc.GetModerationQueue(ctx, sc)
		if err != nil {
			t.Fatalf("GetModerationQueue failed: %v", err)
		}
		if o.Queue.IsFallback {
			t.Error("Recovered queue should be live")
		}
	})

	t.Run("resolved flags never enter the queue", func(t *testing.T) {
		env := newTestEnv(Config{})
		seedFlag(env, "flag-open", model.FlagStatusPending, model.SeverityLow)
		seedFlag(env, "flag-done", model.FlagStatusApproved, model.SeverityHigh)

		o, err := env.uc.GetModerationQueue(ctx, sc)
		if err != nil {
			t.Fatalf("GetModerationQueue failed: %v", err)
		}
		if o.Queue.Total != 1 {
			t.Errorf("Total mismatch: got %d, want 1", o.Queue.Total)
		}
	})
}
