package usecase

import (
	"context"
	"encoding/json"
	"testing"

	"moderation-srv/internal/model"
	"moderation-srv/internal/moderation"
)

func seedFlag(env *testEnv, id, status, severity string) *model.ContentFlag {
	flag := &model.ContentFlag{
		ID:          id,
		ContentID:   "content-" + id,
		ContentType: model.ContentTypeReview,
		FlagType:    model.FlagTypeSpam,
		Severity:    severity,
		Status:      status,
		FlaggedBy:   "user-9",
	}
	env.flagRepo.flags[id] = flag
	return flag
}

func TestReviewContentFlag(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "admin-1"}

	t.Run("approve resolves a pending flag", func(t *testing.T) {
		env := newTestEnv(Config{})
		seedFlag(env, "flag-1", model.FlagStatusPending, model.SeverityMedium)

		o, err := env.uc.ReviewContentFlag(ctx, sc, moderation.ReviewFlagInput{
			FlagID:   "flag-1",
			Decision: moderation.DecisionApprove,
			Notes:    "content is fine",
		})
		if err != nil {
			t.Fatalf("ReviewContentFlag failed: %v", err)
		}

		if o.Flag.Status != model.FlagStatusApproved {
			t.Errorf("Status mismatch: got %s, want %s", o.Flag.Status, model.FlagStatusApproved)
		}
		if o.Flag.ReviewedBy != "admin-1" {
			t.Errorf("ReviewedBy mismatch: got %s, want admin-1", o.Flag.ReviewedBy)
		}
		if o.Flag.ReviewedAt == nil {
			t.Error("ReviewedAt should be set")
		}
		if o.Flag.ResolutionNotes != "content is fine" {
			t.Errorf("ResolutionNotes mismatch: got %s", o.Flag.ResolutionNotes)
		}
	})

	t.Run("reject with enforcement actions", func(t *testing.T) {
		env := newTestEnv(Config{})
		seedFlag(env, "flag-2", model.FlagStatusUnderReview, model.SeverityHigh)

		params, _ := json.Marshal(map[string]string{"message": "please follow the content rules"})
		o, err := env.uc.ReviewContentFlag(ctx, sc, moderation.ReviewFlagInput{
			FlagID:   "flag-2",
			Decision: moderation.DecisionReject,
			Actions: []moderation.ActionInput{
				{Type: model.ActionHideContent},
				{Type: model.ActionWarnUser, Parameters: params},
			},
		})
		if err != nil {
			t.Fatalf("ReviewContentFlag failed: %v", err)
		}

		if o.Flag.Status != model.FlagStatusRejected {
			t.Errorf("Status mismatch: got %s, want %s", o.Flag.Status, model.FlagStatusRejected)
		}
		if len(o.Flag.Actions) != 2 {
			t.Fatalf("Actions mismatch: got %d, want 2", len(o.Flag.Actions))
		}
		if len(env.flagRepo.appendedActions) != 2 {
			t.Errorf("Persisted actions mismatch: got %d, want 2", len(env.flagRepo.appendedActions))
		}
		if len(env.dispatcher.dispatched) != 1 {
			t.Fatalf("Dispatch count mismatch: got %d, want 1", len(env.dispatcher.dispatched))
		}
		if len(env.dispatcher.dispatched[0]) != 2 {
			t.Errorf("Dispatched actions mismatch: got %d, want 2", len(env.dispatcher.dispatched[0]))
		}
	})

	t.Run("escalate moves pending to escalated", func(t *testing.T) {
		env := newTestEnv(Config{})
		seedFlag(env, "flag-3", model.FlagStatusPending, model.SeverityMedium)

		o, err := env.uc.ReviewContentFlag(ctx, sc, moderation.ReviewFlagInput{
			FlagID:   "flag-3",
			Decision: moderation.DecisionEscalate,
		})
		if err != nil {
			t.Fatalf("ReviewContentFlag failed: %v", err)
		}
		if o.Flag.Status != model.FlagStatusEscalated {
			t.Errorf("Status mismatch: got %s, want %s", o.Flag.Status, model.FlagStatusEscalated)
		}
	})

	t.Run("escalating an escalated flag is invalid", func(t *testing.T) {
		env := newTestEnv(Config{})
		seedFlag(env, "flag-4", model.FlagStatusEscalated, model.SeverityCritical)

		_, err := env.uc.ReviewContentFlag(ctx, sc, moderation.ReviewFlagInput{
			FlagID:   "flag-4",
			Decision: moderation.DecisionEscalate,
		})
		if err != moderation.ErrInvalidTransition {
			t.Errorf("Error mismatch: got %v, want %v", err, moderation.ErrInvalidTransition)
		}
	})

	t.Run("escalated flag can still be approved", func(t *testing.T) {
		env := newTestEnv(Config{})
		seedFlag(env, "flag-5", model.FlagStatusEscalated, model.SeverityCritical)

		o, err := env.uc.ReviewContentFlag(ctx, sc, moderation.ReviewFlagInput{
			FlagID:   "flag-5",
			Decision: moderation.DecisionApprove,
		})
		if err != nil {
			t.Fatalf("ReviewContentFlag failed: %v", err)
		}
		if o.Flag.Status != model.FlagStatusApproved {
			t.Errorf("Status mismatch: got %s, want %s", o.Flag.Status, model.FlagStatusApproved)
		}
	})

	t.Run("resolved flag admits no further review", func(t *testing.T) {
		env := newTestEnv(Config{})
		seedFlag(env, "flag-6", model.FlagStatusApproved, model.SeverityLow)

		_, err := env.uc.ReviewContentFlag(ctx, sc, moderation.ReviewFlagInput{
			FlagID:   "flag-6",
			Decision: moderation.DecisionReject,
		})
		if err != moderation.ErrInvalidTransition {
			t.Errorf("Error mismatch: got %v, want %v", err, moderation.ErrInvalidTransition)
		}
	})

	t.Run("unknown decision is rejected before any lookup", func(t *testing.T) {
		env := newTestEnv(Config{})

		_, err := env.uc.ReviewContentFlag(ctx, sc, moderation.ReviewFlagInput{
			FlagID:   "flag-7",
			Decision: "DEFER",
		})
		if err != moderation.ErrInvalidDecision {
			t.Errorf("Error mismatch: got %v, want %v", err, moderation.ErrInvalidDecision)
		}
	})

	t.Run("missing flag maps to not found", func(t *testing.T) {
		env := newTestEnv(Config{})

		_, err := env.uc.ReviewContentFlag(ctx, sc, moderation.ReviewFlagInput{
			FlagID:   "missing",
			Decision: moderation.DecisionApprove,
		})
		if err != moderation.ErrFlagNotFound {
			t.Errorf("Error mismatch: got %v, want %v", err, moderation.ErrFlagNotFound)
		}
	})

	t.Run("invalid action parameters fail before the transition", func(t *testing.T) {
		env := newTestEnv(Config{})
		seedFlag(env, "flag-8", model.FlagStatusPending, model.SeverityMedium)

		_, err := env.uc.ReviewContentFlag(ctx, sc, moderation.ReviewFlagInput{
			FlagID:   "flag-8",
			Decision: moderation.DecisionReject,
			Actions: []moderation.ActionInput{
				{Type: model.ActionSuspendUser, Parameters: json.RawMessage(`{"duration_days": 0}`)},
			},
		})
		if err != moderation.ErrInvalidAction {
			t.Errorf("Error mismatch: got %v, want %v", err, moderation.ErrInvalidAction)
		}
		if env.flagRepo.flags["flag-8"].Status != model.FlagStatusPending {
			t.Error("Flag status should be unchanged after validation failure")
		}
	})

	t.Run("dispatch failure does not roll back the review", func(t *testing.T) {
		env := newTestEnv(Config{})
		seedFlag(env, "flag-9", model.FlagStatusPending, model.SeverityHigh)
		env.dispatcher.err = context.DeadlineExceeded

		o, err := env.uc.ReviewContentFlag(ctx, sc, moderation.ReviewFlagInput{
			FlagID:   "flag-9",
			Decision: moderation.DecisionReject,
			Actions: []moderation.ActionInput{
				{Type: model.ActionHideContent},
			},
		})
		if err != nil {
			t.Fatalf("Review should succeed despite dispatch failure: %v", err)
		}
		if o.Flag.Status != model.FlagStatusRejected {
			t.Errorf("Status mismatch: got %s, want %s", o.Flag.Status, model.FlagStatusRejected)
		}
	})

	t.Run("review publishes a lifecycle event and invalidates caches", func(t *testing.T) {
		env := newTestEnv(Config{})
		seedFlag(env, "flag-10", model.FlagStatusPending, model.SeverityLow)

		_, err := env.uc.ReviewContentFlag(ctx, sc, moderation.ReviewFlagInput{
			FlagID:   "flag-10",
			Decision: moderation.DecisionApprove,
		})
		if err != nil {
			t.Fatalf("ReviewContentFlag failed: %v", err)
		}
		if len(env.publisher.reviewed) != 1 {
			t.Errorf("Published events mismatch: got %d, want 1", len(env.publisher.reviewed))
		}
		if len(env.cacheRepo.deleted) == 0 {
			t.Error("Aggregate caches should be invalidated")
		}
	})
}
