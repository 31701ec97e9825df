package model

import "time"

// ModerationQueue is the cached, partitioned view of non-terminal flags.
// Resolved flags are excluded; Total is always the sum of the three partitions.
type ModerationQueue struct {
	Pending     []ContentFlag `json:"pending"`
	UnderReview []ContentFlag `json:"under_review"`
	Escalated   []ContentFlag `json:"escalated"`

	Total        int `json:"total"`
	HighPriority int `json:"high_priority"`

	// AvgProcessingTimeHours is a fixed operational estimate, not measured.
	AvgProcessingTimeHours float64 `json:"avg_processing_time_hours"`

	GeneratedAt time.Time `json:"generated_at"`

	// IsFallback marks a synthetic degraded-mode queue. Never silently
	// indistinguishable from live data.
	IsFallback bool `json:"is_fallback,omitempty"`
}

// Add places a flag into the partition matching its status and keeps Total
// and HighPriority consistent. Terminal flags are dropped.
func (q *ModerationQueue) Add(flag ContentFlag) {
	switch flag.Status {
	case FlagStatusPending:
		q.Pending = append(q.Pending, flag)
	case FlagStatusUnderReview:
		q.UnderReview = append(q.UnderReview, flag)
	case FlagStatusEscalated:
		q.Escalated = append(q.Escalated, flag)
	default:
		return
	}

	q.Total++
	if IsHighPriority(flag.Severity) {
		q.HighPriority++
	}
}
