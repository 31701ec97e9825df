package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"moderation-srv/internal/model"
	"moderation-srv/internal/moderation"
)

// Risk thresholds on the overall score. Strictly greater-than on both.
const (
	autoRejectThreshold = 0.9
	flagReviewThreshold = 0.7
	highSeverityCutoff  = 0.8
)

// scanConfidence is the fixed confidence reported by the keyword scanner.
// It becomes meaningful once a trained classifier replaces the dictionaries.
const scanConfidence = 0.85

// Dictionaries holds the keyword list per score dimension.
type Dictionaries struct {
	Toxicity      []string
	Spam          []string
	Harassment    []string
	Inappropriate []string
}

// DefaultDictionaries returns the built-in keyword lists.
func DefaultDictionaries() Dictionaries {
	return Dictionaries{
		Toxicity:      []string{"hate", "stupid", "idiot", "kill", "racist", "disgusting"},
		Spam:          []string{"free money", "click here", "limited offer", "winner", "lottery", "crypto", "promo code", "guaranteed"},
		Harassment:    []string{"loser", "pathetic", "worthless", "shut up"},
		Inappropriate: []string{"nsfw", "explicit", "obscene", "nude"},
	}
}

// ScanContent scores the content on four dimensions, recommends an action
// from the overall risk, and creates a flag as a side effect when the risk
// crosses the review threshold.
func (uc *implUseCase) ScanContent(ctx context.Context, sc model.Scope, input moderation.ScanContentInput) (moderation.ScanOutput, error) {
	if input.ContentID == "" {
		return moderation.ScanOutput{}, moderation.ErrContentIDRequired
	}
	if !model.ValidContentType(input.ContentType) {
		return moderation.ScanOutput{}, moderation.ErrInvalidContentType
	}

	result := uc.scan(input.ContentID, input.Content)

	output := moderation.ScanOutput{Result: result}
	if result.RecommendedAction == model.RecommendationApprove {
		return output, nil
	}

	severity := model.SeverityMedium
	if result.Scores.OverallRisk > highSeverityCutoff {
		severity = model.SeverityHigh
	}

	evidence, _ := json.Marshal(model.Evidence{Scores: &result.Scores})

	flagOut, err := uc.createFlag(ctx, createFlagParams{
		ContentID:   input.ContentID,
		ContentType: input.ContentType,
		FlagType:    dominantFlagType(result.Scores),
		Severity:    severity,
		Reason:      "Automated scan detected risky content",
		Description: fmt.Sprintf("Overall risk %.2f, recommended %s", result.Scores.OverallRisk, result.RecommendedAction),
		FlaggedBy:   "system:scanner",
		Evidence:    evidence,
	})
	if err != nil {
		// The scan itself succeeded. Surface the scores and let callers retry
		// the flag separately.
		uc.l.Errorf(ctx, "moderation.usecase.ScanContent: Failed to create flag for content %s: %v", input.ContentID, err)
		return output, nil
	}

	output.FlagID = flagOut.ID
	return output, nil
}

func (uc *implUseCase) scan(contentID, content string) model.ScanResult {
	scores := model.ScanScores{}
	var matched []string

	if content != "" {
		lowered := strings.ToLower(content)
		scores.Toxicity, matched = scoreDimension(lowered, uc.cfg.Dictionaries.Toxicity, matched)
		scores.Spam, matched = scoreDimension(lowered, uc.cfg.Dictionaries.Spam, matched)
		scores.Harassment, matched = scoreDimension(lowered, uc.cfg.Dictionaries.Harassment, matched)
		scores.Inappropriate, matched = scoreDimension(lowered, uc.cfg.Dictionaries.Inappropriate, matched)
	}
	scores.ComputeOverall()

	return model.ScanResult{
		ContentID:         contentID,
		Scores:            scores,
		Flags:             matched,
		Confidence:        scanConfidence,
		RecommendedAction: recommend(scores.OverallRisk),
		ScanTimestamp:     uc.clock(),
	}
}

// scoreDimension scores one dimension as the matched-keyword ratio, capped
// at 1.0, and appends the matched keywords.
func scoreDimension(lowered string, keywords []string, matched []string) (float64, []string) {
	if len(keywords) == 0 {
		return 0, matched
	}

	hits := 0
	for _, kw := range keywords {
		if strings.Contains(lowered, kw) {
			hits++
			matched = append(matched, kw)
		}
	}

	score := float64(hits) / float64(len(keywords))
	if score > 1.0 {
		score = 1.0
	}
	return score, matched
}

func recommend(overallRisk float64) string {
	switch {
	case overallRisk > autoRejectThreshold:
		return model.RecommendationAutoReject
	case overallRisk > flagReviewThreshold:
		return model.RecommendationFlagForReview
	default:
		return model.RecommendationApprove
	}
}

// dominantFlagType maps the worst scoring dimension to a flag type.
// Ties break in the order toxicity, spam, harassment, inappropriate.
func dominantFlagType(scores model.ScanScores) string {
	flagType := model.FlagTypeHateSpeech
	max := scores.Toxicity
	if scores.Spam > max {
		flagType, max = model.FlagTypeSpam, scores.Spam
	}
	if scores.Harassment > max {
		flagType, max = model.FlagTypeHarassment, scores.Harassment
	}
	if scores.Inappropriate > max {
		flagType = model.FlagTypeInappropriate
	}
	return flagType
}
