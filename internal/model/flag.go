package model

import (
	"encoding/json"
	"time"
)

// Flag lifecycle statuses.
const (
	FlagStatusPending     = "PENDING"
	FlagStatusUnderReview = "UNDER_REVIEW"
	FlagStatusApproved    = "APPROVED"
	FlagStatusRejected    = "REJECTED"
	FlagStatusEscalated   = "ESCALATED"
)

// Flag severities.
const (
	SeverityLow      = "LOW"
	SeverityMedium   = "MEDIUM"
	SeverityHigh     = "HIGH"
	SeverityCritical = "CRITICAL"
)

// Flag types.
const (
	FlagTypeInappropriate = "INAPPROPRIATE_CONTENT"
	FlagTypeSpam          = "SPAM"
	FlagTypeHarassment    = "HARASSMENT"
	FlagTypeFraud         = "FRAUD"
	FlagTypeViolence      = "VIOLENCE"
	FlagTypeHateSpeech    = "HATE_SPEECH"
	FlagTypeCopyright     = "COPYRIGHT"
	FlagTypeOther         = "OTHER"
)

// Content types subject to moderation.
const (
	ContentTypeProfile            = "PROFILE"
	ContentTypeBookingDescription = "BOOKING_DESCRIPTION"
	ContentTypeReview             = "REVIEW"
	ContentTypeMessage            = "MESSAGE"
	ContentTypeCompanyInfo        = "COMPANY_INFO"
	ContentTypeDriverProfile      = "DRIVER_PROFILE"
)

// ContentFlag represents one piece of content under moderation review.
// ContentID and ContentType are immutable after creation; Actions is append-only.
type ContentFlag struct {
	ID          string
	ContentID   string
	ContentType string

	FlagType string
	Severity string
	Status   string

	FlaggedBy string
	FlaggedAt time.Time

	ReviewedBy      string
	ReviewedAt      *time.Time
	Reason          string
	Description     string
	ResolutionNotes string

	Evidence *Evidence

	// Source is set for queue entries synthesized from signal sources.
	Source *SignalRef

	Actions []ContentAction
}

// Evidence is the optional structured evidence bag attached to a flag.
type Evidence struct {
	Screenshots []string        `json:"screenshots,omitempty"` // object names in the evidence bucket
	Metadata    json.RawMessage `json:"metadata,omitempty"`
	Scores      *ScanScores     `json:"scores,omitempty"`
}

// IsTerminal reports whether a status admits no further transitions.
func IsTerminal(status string) bool {
	return status == FlagStatusApproved || status == FlagStatusRejected
}

// IsHighPriority reports whether a severity counts toward the queue's high-priority total.
func IsHighPriority(severity string) bool {
	return severity == SeverityHigh || severity == SeverityCritical
}

// ValidFlagStatus reports whether s is a known lifecycle status.
func ValidFlagStatus(s string) bool {
	switch s {
	case FlagStatusPending, FlagStatusUnderReview, FlagStatusApproved, FlagStatusRejected, FlagStatusEscalated:
		return true
	}
	return false
}

// ValidSeverity reports whether s is a known severity.
func ValidSeverity(s string) bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical:
		return true
	}
	return false
}

// ValidFlagType reports whether s is a known flag type.
func ValidFlagType(s string) bool {
	switch s {
	case FlagTypeInappropriate, FlagTypeSpam, FlagTypeHarassment, FlagTypeFraud,
		FlagTypeViolence, FlagTypeHateSpeech, FlagTypeCopyright, FlagTypeOther:
		return true
	}
	return false
}

// ValidContentType reports whether s is a known content type.
func ValidContentType(s string) bool {
	switch s {
	case ContentTypeProfile, ContentTypeBookingDescription, ContentTypeReview,
		ContentTypeMessage, ContentTypeCompanyInfo, ContentTypeDriverProfile:
		return true
	}
	return false
}
