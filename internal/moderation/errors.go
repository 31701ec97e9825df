package moderation

import "errors"

var (
	ErrFlagNotFound       = errors.New("content flag not found")
	ErrInvalidTransition  = errors.New("flag is already resolved")
	ErrInvalidDecision    = errors.New("invalid review decision")
	ErrInvalidContentType = errors.New("invalid content type")
	ErrInvalidStatus      = errors.New("invalid flag status")
	ErrInvalidFlagType    = errors.New("invalid flag type")
	ErrInvalidSeverity    = errors.New("invalid severity")
	ErrInvalidAction      = errors.New("invalid enforcement action")
	ErrContentIDRequired  = errors.New("content_id is required")
	ErrFlagCreateFailed   = errors.New("failed to create content flag")
	ErrReviewFailed       = errors.New("failed to review content flag")
	ErrListFailed         = errors.New("failed to list flagged content")
	ErrNoEvidence         = errors.New("flag has no evidence attachments")
	ErrEvidenceFailed     = errors.New("failed to resolve flag evidence")
)
