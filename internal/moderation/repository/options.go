package repository

import "time"

type CreateFlagOptions struct {
	ID          string
	ContentID   string
	ContentType string
	FlagType    string
	Severity    string
	Status      string
	FlaggedBy   string
	Reason      string
	Description string
	Evidence    []byte // JSON
}

type ListFlagsOptions struct {
	Status      string
	FlagType    string
	Severity    string
	ContentType string
	Limit       int64
	Offset      int64
}

type UpdateReviewOptions struct {
	FlagID          string
	ExpectedStatus  string
	NewStatus       string
	ReviewedBy      string
	ReviewedAt      time.Time
	ResolutionNotes string
}

type AppendActionOptions struct {
	FlagID     string
	Type       string
	ExecutedBy string
	ExecutedAt time.Time
	Parameters []byte // JSON
	Reversible bool
}

type RecentWindowOptions struct {
	Since time.Time
	Limit int
}

// ExactCounts is the precise flag-population aggregate behind exact stats mode.
type ExactCounts struct {
	Total              int
	ByStatus           map[string]int
	ByType             map[string]int
	BySeverity         map[string]int
	ByAction           map[string]int
	ResolvedThisWeek   int
	AvgResolutionHours float64
}

// AuditCounts are the audit-log counts behind the fast statistics mode.
type AuditCounts struct {
	Total      int
	Recent     int
	Open       int
	BySeverity map[string]int
}
