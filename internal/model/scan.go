package model

import "time"

// Scan recommendations, monotonic in overall risk.
const (
	RecommendationApprove       = "APPROVE"
	RecommendationFlagForReview = "FLAG_FOR_REVIEW"
	RecommendationAutoReject    = "AUTO_REJECT"
)

// ScanScores are the four independent dimension scores, each in [0,1].
// OverallRisk is the maximum of the four: a single severe dimension must not
// be diluted by averaging.
type ScanScores struct {
	Toxicity      float64 `json:"toxicity"`
	Spam          float64 `json:"spam"`
	Harassment    float64 `json:"harassment"`
	Inappropriate float64 `json:"inappropriate_content"`
	OverallRisk   float64 `json:"overall_risk"`
}

// ScanResult is the outcome of one automated content scan.
type ScanResult struct {
	ContentID         string
	Scores            ScanScores
	Flags             []string
	Confidence        float64
	RecommendedAction string
	ScanTimestamp     time.Time
}

// ComputeOverall sets OverallRisk to the worst dimension score.
func (s *ScanScores) ComputeOverall() {
	max := s.Toxicity
	if s.Spam > max {
		max = s.Spam
	}
	if s.Harassment > max {
		max = s.Harassment
	}
	if s.Inappropriate > max {
		max = s.Inappropriate
	}
	s.OverallRisk = max
}
