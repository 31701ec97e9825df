package usecase

import (
	"context"
	"errors"
	"testing"

	"moderation-srv/internal/model"
	"moderation-srv/internal/moderation"
)

func TestFlagContent(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "admin-1"}

	t.Run("creates a pending flag", func(t *testing.T) {
		env := newTestEnv(Config{})

		o, err := env.uc.FlagContent(ctx, sc, moderation.FlagContentInput{
			ContentID:   "content-1",
			ContentType: model.ContentTypeReview,
			FlagType:    model.FlagTypeSpam,
			Severity:    model.SeverityMedium,
			Reason:      "reported by user",
		})
		if err != nil {
			t.Fatalf("FlagContent failed: %v", err)
		}

		if o.Flag.ID == "" {
			t.Error("Flag ID should be generated")
		}
		if o.Flag.Status != model.FlagStatusPending {
			t.Errorf("Status mismatch: got %s, want %s", o.Flag.Status, model.FlagStatusPending)
		}
		if o.Flag.FlaggedBy != "admin-1" {
			t.Errorf("FlaggedBy mismatch: got %s, want admin-1", o.Flag.FlaggedBy)
		}
		if len(env.publisher.created) != 1 {
			t.Errorf("Created events mismatch: got %d, want 1", len(env.publisher.created))
		}
	})

	t.Run("critical severity escalates immediately", func(t *testing.T) {
		env := newTestEnv(Config{})

		o, err := env.uc.FlagContent(ctx, sc, moderation.FlagContentInput{
			ContentID:   "content-2",
			ContentType: model.ContentTypeProfile,
			FlagType:    model.FlagTypeFraud,
			Severity:    model.SeverityCritical,
		})
		if err != nil {
			t.Fatalf("FlagContent failed: %v", err)
		}
		if o.Flag.Status != model.FlagStatusEscalated {
			t.Errorf("Status mismatch: got %s, want %s", o.Flag.Status, model.FlagStatusEscalated)
		}
	})

	t.Run("same content can be flagged repeatedly", func(t *testing.T) {
		env := newTestEnv(Config{})

		input := moderation.FlagContentInput{
			ContentID:   "content-3",
			ContentType: model.ContentTypeMessage,
			FlagType:    model.FlagTypeHarassment,
			Severity:    model.SeverityLow,
		}

		first, err := env.uc.FlagContent(ctx, sc, input)
		if err != nil {
			t.Fatalf("First FlagContent failed: %v", err)
		}
		second, err := env.uc.FlagContent(ctx, sc, input)
		if err != nil {
			t.Fatalf("Second FlagContent failed: %v", err)
		}

		if first.Flag.ID == second.Flag.ID {
			t.Error("Each report should be an independent record")
		}
		if len(env.flagRepo.flags) != 2 {
			t.Errorf("Flag count mismatch: got %d, want 2", len(env.flagRepo.flags))
		}
	})

	t.Run("validation failures", func(t *testing.T) {
		env := newTestEnv(Config{})

		cases := []struct {
			name  string
			input moderation.FlagContentInput
			want  error
		}{
			{
				"missing content id",
				moderation.FlagContentInput{ContentType: model.ContentTypeReview, FlagType: model.FlagTypeSpam, Severity: model.SeverityLow},
				moderation.ErrContentIDRequired,
			},
			{
				"invalid content type",
				moderation.FlagContentInput{ContentID: "x", ContentType: "PODCAST", FlagType: model.FlagTypeSpam, Severity: model.SeverityLow},
				moderation.ErrInvalidContentType,
			},
			{
				"invalid flag type",
				moderation.FlagContentInput{ContentID: "x", ContentType: model.ContentTypeReview, FlagType: "BORING", Severity: model.SeverityLow},
				moderation.ErrInvalidFlagType,
			},
			{
				"invalid severity",
				moderation.FlagContentInput{ContentID: "x", ContentType: model.ContentTypeReview, FlagType: model.FlagTypeSpam, Severity: "EXTREME"},
				moderation.ErrInvalidSeverity,
			},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				if _, err := env.uc.FlagContent(ctx, sc, tc.input); err != tc.want {
					t.Errorf("Error mismatch: got %v, want %v", err, tc.want)
				}
			})
		}
	})
}

func TestGetFlaggedContent(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "admin-1"}

	t.Run("filters combine with AND", func(t *testing.T) {
		env := newTestEnv(Config{})
		seedFlag(env, "flag-a", model.FlagStatusPending, model.SeverityHigh)
		seedFlag(env, "flag-b", model.FlagStatusApproved, model.SeverityHigh)
		seedFlag(env, "flag-c", model.FlagStatusPending, model.SeverityLow)

		o, err := env.uc.GetFlaggedContent(ctx, sc, moderation.GetFlaggedContentInput{
			Status:   model.FlagStatusPending,
			Severity: model.SeverityHigh,
		})
		if err != nil {
			t.Fatalf("GetFlaggedContent failed: %v", err)
		}
		if len(o.Flags) != 1 {
			t.Fatalf("Flags mismatch: got %d, want 1", len(o.Flags))
		}
		if o.Flags[0].ID != "flag-a" {
			t.Errorf("Flag mismatch: got %s, want flag-a", o.Flags[0].ID)
		}
	})

	t.Run("invalid filter values are rejected", func(t *testing.T) {
		env := newTestEnv(Config{})

		if _, err := env.uc.GetFlaggedContent(ctx, sc, moderation.GetFlaggedContentInput{Status: "OPEN"}); err != moderation.ErrInvalidStatus {
			t.Errorf("Error mismatch: got %v, want %v", err, moderation.ErrInvalidStatus)
		}
		if _, err := env.uc.GetFlaggedContent(ctx, sc, moderation.GetFlaggedContentInput{Severity: "EXTREME"}); err != moderation.ErrInvalidSeverity {
			t.Errorf("Error mismatch: got %v, want %v", err, moderation.ErrInvalidSeverity)
		}
	})
}

func TestGetFlagEvidence(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "admin-1"}

	t.Run("returns presigned urls for screenshots", func(t *testing.T) {
		env := newTestEnv(Config{EvidenceBucket: "moderation-evidence"})
		flag := seedFlag(env, "flag-ev", model.FlagStatusPending, model.SeverityHigh)
		flag.Evidence = &model.Evidence{Screenshots: []string{"shots/a.png", "shots/b.png"}}

		o, err := env.uc.GetFlagEvidence(ctx, sc, moderation.GetEvidenceInput{FlagID: "flag-ev"})
		if err != nil {
			t.Fatalf("GetFlagEvidence failed: %v", err)
		}
		if len(o.Attachments) != 2 {
			t.Fatalf("Attachments mismatch: got %d, want 2", len(o.Attachments))
		}
		if o.Attachments[0].URL == "" {
			t.Error("Attachment URL should be set")
		}
	})

	t.Run("flag without evidence", func(t *testing.T) {
		env := newTestEnv(Config{})
		seedFlag(env, "flag-none", model.FlagStatusPending, model.SeverityLow)

		if _, err := env.uc.GetFlagEvidence(ctx, sc, moderation.GetEvidenceInput{FlagID: "flag-none"}); err != moderation.ErrNoEvidence {
			t.Errorf("Error mismatch: got %v, want %v", err, moderation.ErrNoEvidence)
		}
	})

	t.Run("missing flag", func(t *testing.T) {
		env := newTestEnv(Config{})

		if _, err := env.uc.GetFlagEvidence(ctx, sc, moderation.GetEvidenceInput{FlagID: "nope"}); err != moderation.ErrFlagNotFound {
			t.Errorf("Error mismatch: got %v, want %v", err, moderation.ErrFlagNotFound)
		}
	})

	t.Run("presign failure maps to a sentinel", func(t *testing.T) {
		env := newTestEnv(Config{})
		flag := seedFlag(env, "flag-broken", model.FlagStatusPending, model.SeverityHigh)
		flag.Evidence = &model.Evidence{Screenshots: []string{"shots/a.png"}}
		env.minio.presignErr = errors.New("bucket unreachable")

		if _, err := env.uc.GetFlagEvidence(ctx, sc, moderation.GetEvidenceInput{FlagID: "flag-broken"}); err != moderation.ErrEvidenceFailed {
			t.Errorf("Error mismatch: got %v, want %v", err, moderation.ErrEvidenceFailed)
		}
	})
}
