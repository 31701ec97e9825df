package moderation

import (
	"encoding/json"
	"time"

	"moderation-srv/internal/model"
	"moderation-srv/pkg/paginator"
)

// Review decisions.
const (
	DecisionApprove  = "APPROVE"
	DecisionReject   = "REJECT"
	DecisionEscalate = "ESCALATE"
)

type ScanContentInput struct {
	ContentID   string
	Content     string
	ContentType string
}

type ScanOutput struct {
	Result model.ScanResult
	// FlagID is set when the scan created a flag as a side effect.
	FlagID string
}

type FlagContentInput struct {
	ContentID   string
	ContentType string
	FlagType    string
	Severity    string
	Reason      string
	Description string
	Evidence    *model.Evidence
	// FlaggedBy overrides the scope identity; used for system-originated flags.
	FlaggedBy string
}

type ActionInput struct {
	Type       string
	Parameters json.RawMessage
}

type ReviewFlagInput struct {
	FlagID   string
	Decision string
	Notes    string
	Actions  []ActionInput
}

type FlagOutput struct {
	Flag *model.ContentFlag
}

type GetFlaggedContentInput struct {
	Status      string
	FlagType    string
	Severity    string
	ContentType string
	Paginate    paginator.PaginateQuery
}

type FlaggedContentOutput struct {
	Flags     []*model.ContentFlag
	Paginator paginator.Paginator
}

type QueueOutput struct {
	Queue model.ModerationQueue
}

type GetStatsInput struct {
	// Exact selects the slower counted aggregate instead of the fast
	// signal-derived approximation.
	Exact bool
}

type StatsOutput struct {
	Stats model.ModerationStats
}

type GetEvidenceInput struct {
	FlagID string
}

type EvidenceAttachment struct {
	ObjectName string    `json:"object_name"`
	URL        string    `json:"url"`
	ExpiresAt  time.Time `json:"expires_at"`
}

type EvidenceOutput struct {
	FlagID      string
	Attachments []EvidenceAttachment
}

// ValidDecision reports whether d is a known review decision.
func ValidDecision(d string) bool {
	switch d {
	case DecisionApprove, DecisionReject, DecisionEscalate:
		return true
	}
	return false
}
