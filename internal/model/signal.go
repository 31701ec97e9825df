package model

import (
	"crypto/sha256"
	"fmt"
	"time"
)

// Signal source types feeding the moderation pipeline.
const (
	SignalSourceReview = "review"
	SignalSourceMsg    = "message"
	SignalSourceAudit  = "audit"
)

// SignalRef is the structured composite key of a signal-source record.
// It replaces ad hoc string-concatenated ids so the mapping from raw record
// to synthetic flag stays stable and collision-free.
type SignalRef struct {
	SourceType string `json:"source_type"`
	SourceID   string `json:"source_id"`
}

// FlagID derives the deterministic synthetic flag id for this signal.
// The same record always maps to the same id across aggregation runs.
func (r SignalRef) FlagID() string {
	sum := sha256.Sum256([]byte(r.SourceType + "\x00" + r.SourceID))
	return fmt.Sprintf("flag-%x", sum[:8])
}

// LowRatedReview is a review signal surfaced by the rating store.
type LowRatedReview struct {
	ID        string
	BookingID string
	AuthorID  string
	CompanyID string
	Rating    int
	Comment   string
	CreatedAt time.Time
}

// RecentMessage is a message signal surfaced by the message store.
type RecentMessage struct {
	ID          string
	SenderID    string
	RecipientID string
	Body        string
	SentAt      time.Time
}

// SecurityAuditAction is a security-relevant administrative action from the audit log.
type SecurityAuditAction struct {
	ID         string
	AdminID    string
	Action     string
	Severity   string
	TargetType string
	TargetID   string
	CreatedAt  time.Time
}

// SignalCounts are the raw population counts behind the fast statistics mode.
// They ride along on the fast aggregate so callers can see the inputs the
// estimate was derived from.
type SignalCounts struct {
	TotalReviews       int            `json:"total_reviews"`
	LowRatedReviews    int            `json:"low_rated_reviews"`
	TotalMessages      int            `json:"total_messages"`
	RecentMessages     int            `json:"recent_messages"`
	TotalAuditActions  int            `json:"total_audit_actions"`
	OpenSecurityAlerts int            `json:"open_security_alerts"`
	AuditBySeverity    map[string]int `json:"audit_by_severity"`
	SuspendedCompanies int            `json:"suspended_companies"`
}
