package usecase

import (
	"context"
	"testing"

	"moderation-srv/internal/model"
	"moderation-srv/internal/moderation"
)

func TestScanContent(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "admin-1"}

	t.Run("clean content is approved with zero scores", func(t *testing.T) {
		env := newTestEnv(Config{})

		o, err := env.uc.ScanContent(ctx, sc, moderation.ScanContentInput{
			ContentID:   "content-1",
			Content:     "great trip, friendly driver, clean bus",
			ContentType: model.ContentTypeReview,
		})
		if err != nil {
			t.Fatalf("ScanContent failed: %v", err)
		}

		if o.Result.Scores.OverallRisk != 0 {
			t.Errorf("OverallRisk mismatch: got %.2f, want 0", o.Result.Scores.OverallRisk)
		}
		if o.Result.RecommendedAction != model.RecommendationApprove {
			t.Errorf("RecommendedAction mismatch: got %s, want %s", o.Result.RecommendedAction, model.RecommendationApprove)
		}
		if o.FlagID != "" {
			t.Errorf("No flag should be created for clean content, got flag %s", o.FlagID)
		}
		if len(env.flagRepo.flags) != 0 {
			t.Errorf("Flag store should be empty, has %d entries", len(env.flagRepo.flags))
		}
	})

	t.Run("empty content is approved", func(t *testing.T) {
		env := newTestEnv(Config{})

		o, err := env.uc.ScanContent(ctx, sc, moderation.ScanContentInput{
			ContentID:   "content-2",
			Content:     "",
			ContentType: model.ContentTypeMessage,
		})
		if err != nil {
			t.Fatalf("ScanContent failed: %v", err)
		}
		if o.Result.Scores.OverallRisk != 0 {
			t.Errorf("OverallRisk mismatch: got %.2f, want 0", o.Result.Scores.OverallRisk)
		}
		if o.Result.RecommendedAction != model.RecommendationApprove {
			t.Errorf("RecommendedAction mismatch: got %s, want %s", o.Result.RecommendedAction, model.RecommendationApprove)
		}
	})

	t.Run("missing content id is rejected", func(t *testing.T) {
		env := newTestEnv(Config{})

		_, err := env.uc.ScanContent(ctx, sc, moderation.ScanContentInput{
			ContentType: model.ContentTypeReview,
		})
		if err != moderation.ErrContentIDRequired {
			t.Errorf("Error mismatch: got %v, want %v", err, moderation.ErrContentIDRequired)
		}
	})

	t.Run("invalid content type is rejected", func(t *testing.T) {
		env := newTestEnv(Config{})

		_, err := env.uc.ScanContent(ctx, sc, moderation.ScanContentInput{
			ContentID:   "content-3",
			ContentType: "BLOG_POST",
		})
		if err != moderation.ErrInvalidContentType {
			t.Errorf("Error mismatch: got %v, want %v", err, moderation.ErrInvalidContentType)
		}
	})

	t.Run("score is the matched keyword ratio", func(t *testing.T) {
		env := newTestEnv(Config{
			Dictionaries: Dictionaries{
				Spam: []string{"free money", "click here", "winner", "lottery"},
			},
		})

		// 3 of 4 spam keywords present: 0.75 falls in the review band.
		o, err := env.uc.ScanContent(ctx, sc, moderation.ScanContentInput{
			ContentID:   "content-4",
			Content:     "You are a WINNER! Click here for free money",
			ContentType: model.ContentTypeMessage,
		})
		if err != nil {
			t.Fatalf("ScanContent failed: %v", err)
		}

		if o.Result.Scores.Spam != 0.75 {
			t.Errorf("Spam score mismatch: got %.2f, want 0.75", o.Result.Scores.Spam)
		}
		if o.Result.Scores.OverallRisk != 0.75 {
			t.Errorf("OverallRisk mismatch: got %.2f, want 0.75", o.Result.Scores.OverallRisk)
		}
		if o.Result.RecommendedAction != model.RecommendationFlagForReview {
			t.Errorf("RecommendedAction mismatch: got %s, want %s", o.Result.RecommendedAction, model.RecommendationFlagForReview)
		}
		if len(o.Result.Flags) != 3 {
			t.Errorf("Matched keywords mismatch: got %d, want 3", len(o.Result.Flags))
		}
	})

	t.Run("overall risk is the worst dimension", func(t *testing.T) {
		env := newTestEnv(Config{
			Dictionaries: Dictionaries{
				Toxicity: []string{"hate", "idiot"},
				Spam:     []string{"lottery", "promo", "crypto", "winner"},
			},
		})

		o, err := env.uc.ScanContent(ctx, sc, moderation.ScanContentInput{
			ContentID:   "content-5",
			Content:     "I hate this idiot driver, also lottery",
			ContentType: model.ContentTypeReview,
		})
		if err != nil {
			t.Fatalf("ScanContent failed: %v", err)
		}

		if o.Result.Scores.Toxicity != 1.0 {
			t.Errorf("Toxicity mismatch: got %.2f, want 1.0", o.Result.Scores.Toxicity)
		}
		if o.Result.Scores.Spam != 0.25 {
			t.Errorf("Spam mismatch: got %.2f, want 0.25", o.Result.Scores.Spam)
		}
		if o.Result.Scores.OverallRisk != 1.0 {
			t.Errorf("OverallRisk should be the max dimension: got %.2f, want 1.0", o.Result.Scores.OverallRisk)
		}
		if o.Result.RecommendedAction != model.RecommendationAutoReject {
			t.Errorf("RecommendedAction mismatch: got %s, want %s", o.Result.RecommendedAction, model.RecommendationAutoReject)
		}
	})

	t.Run("risky scan creates a flag as side effect", func(t *testing.T) {
		env := newTestEnv(Config{
			Dictionaries: Dictionaries{
				Harassment: []string{"loser", "pathetic", "worthless", "shut up"},
			},
		})

		o, err := env.uc.ScanContent(ctx, sc, moderation.ScanContentInput{
			ContentID:   "content-6",
			Content:     "you are a pathetic worthless loser, shut up",
			ContentType: model.ContentTypeMessage,
		})
		if err != nil {
			t.Fatalf("ScanContent failed: %v", err)
		}

		if o.FlagID == "" {
			t.Fatal("Risky scan should create a flag")
		}
		flag, ok := env.flagRepo.flags[o.FlagID]
		if !ok {
			t.Fatal("Flag not stored")
		}
		if flag.FlagType != model.FlagTypeHarassment {
			t.Errorf("FlagType mismatch: got %s, want %s", flag.FlagType, model.FlagTypeHarassment)
		}
		// Risk 1.0 is above the high severity cutoff.
		if flag.Severity != model.SeverityHigh {
			t.Errorf("Severity mismatch: got %s, want %s", flag.Severity, model.SeverityHigh)
		}
		if flag.FlaggedBy != "system:scanner" {
			t.Errorf("FlaggedBy mismatch: got %s, want system:scanner", flag.FlaggedBy)
		}
	})

	t.Run("moderate risk yields medium severity flag", func(t *testing.T) {
		env := newTestEnv(Config{
			Dictionaries: Dictionaries{
				Spam: []string{"free money", "click here", "winner", "lottery"},
			},
		})

		o, err := env.uc.ScanContent(ctx, sc, moderation.ScanContentInput{
			ContentID:   "content-7",
			Content:     "winner lottery click here",
			ContentType: model.ContentTypeMessage,
		})
		if err != nil {
			t.Fatalf("ScanContent failed: %v", err)
		}
		if o.FlagID == "" {
			t.Fatal("Flag should be created at risk 0.75")
		}
		flag := env.flagRepo.flags[o.FlagID]
		if flag.Severity != model.SeverityMedium {
			t.Errorf("Severity mismatch: got %s, want %s", flag.Severity, model.SeverityMedium)
		}
	})

	t.Run("scan survives flag store failure", func(t *testing.T) {
		env := newTestEnv(Config{
			Dictionaries: Dictionaries{
				Toxicity: []string{"hate"},
			},
		})
		env.flagRepo.createErr = moderation.ErrFlagCreateFailed

		o, err := env.uc.ScanContent(ctx, sc, moderation.ScanContentInput{
			ContentID:   "content-8",
			Content:     "hate hate hate",
			ContentType: model.ContentTypeReview,
		})
		if err != nil {
			t.Fatalf("Scan should not fail when flag creation fails: %v", err)
		}
		if o.Result.Scores.OverallRisk != 1.0 {
			t.Errorf("Scores should still be returned: got %.2f", o.Result.Scores.OverallRisk)
		}
		if o.FlagID != "" {
			t.Errorf("FlagID should be empty on flag store failure, got %s", o.FlagID)
		}
	})

	t.Run("confidence is fixed", func(t *testing.T) {
		env := newTestEnv(Config{})

		o, err := env.uc.ScanContent(ctx, sc, moderation.ScanContentInput{
			ContentID:   "content-9",
			Content:     "anything",
			ContentType: model.ContentTypeProfile,
		})
		if err != nil {
			t.Fatalf("ScanContent failed: %v", err)
		}
		if o.Result.Confidence != 0.85 {
			t.Errorf("Confidence mismatch: got %.2f, want 0.85", o.Result.Confidence)
		}
	})
}

func TestRecommend(t *testing.T) {
	cases := []struct {
		name string
		risk float64
		want string
	}{
		{"zero risk approves", 0, model.RecommendationApprove},
		{"at review threshold approves", 0.7, model.RecommendationApprove},
		{"above review threshold flags", 0.71, model.RecommendationFlagForReview},
		{"at reject threshold flags", 0.9, model.RecommendationFlagForReview},
		{"above reject threshold rejects", 0.91, model.RecommendationAutoReject},
		{"max risk rejects", 1.0, model.RecommendationAutoReject},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := recommend(tc.risk); got != tc.want {
				t.Errorf("recommend(%.2f) = %s, want %s", tc.risk, got, tc.want)
			}
		})
	}
}
