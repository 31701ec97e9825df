package model

import "time"

// Statistics computation modes.
const (
	StatsModeFast  = "FAST"  // approximate, derived from signal counts
	StatsModeExact = "EXACT" // counted directly from the flag store
)

// ModerationStats is the cached point-in-time and rolling aggregate.
type ModerationStats struct {
	TotalFlags       int `json:"total_flags"`
	PendingFlags     int `json:"pending_flags"`
	ResolvedThisWeek int `json:"resolved_this_week"`

	ApprovalRate   float64 `json:"approval_rate"`
	RejectionRate  float64 `json:"rejection_rate"`
	EscalationRate float64 `json:"escalation_rate"`

	AvgResolutionTimeHours float64 `json:"avg_resolution_time_hours"`

	ByType     map[string]int `json:"by_type"`
	BySeverity map[string]int `json:"by_severity"`
	ByAction   map[string]int `json:"by_action"`

	Mode        string    `json:"mode"`
	GeneratedAt time.Time `json:"generated_at"`

	// Signals carries the raw counts the fast estimate was derived from.
	// Nil in exact mode.
	Signals *SignalCounts `json:"signals,omitempty"`

	// IsFallback marks a synthetic degraded-mode snapshot.
	IsFallback bool `json:"is_fallback,omitempty"`
}
