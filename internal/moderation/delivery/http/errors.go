package http

import (
	"errors"

	"moderation-srv/internal/moderation"
	pkgErrors "moderation-srv/pkg/errors"
)

var (
	errFlagNotFound       = pkgErrors.NewHTTPError(404, "Content flag not found")
	errInvalidTransition  = pkgErrors.NewHTTPError(409, "Flag is already resolved")
	errInvalidDecision    = pkgErrors.NewHTTPError(400, "Invalid review decision")
	errInvalidContentType = pkgErrors.NewHTTPError(400, "Invalid content type")
	errInvalidStatus      = pkgErrors.NewHTTPError(400, "Invalid flag status")
	errInvalidFlagType    = pkgErrors.NewHTTPError(400, "Invalid flag type")
	errInvalidSeverity    = pkgErrors.NewHTTPError(400, "Invalid severity")
	errInvalidAction      = pkgErrors.NewHTTPError(400, "Invalid enforcement action")
	errContentIDRequired  = pkgErrors.NewHTTPError(400, "Content ID is required")
	errFlagCreateFailed   = pkgErrors.NewHTTPError(500, "Failed to create content flag")
	errReviewFailed       = pkgErrors.NewHTTPError(500, "Failed to review content flag")
	errListFailed         = pkgErrors.NewHTTPError(500, "Failed to list flagged content")
	errNoEvidence         = pkgErrors.NewHTTPError(404, "Flag has no evidence attachments")
	errEvidenceFailed     = pkgErrors.NewHTTPError(500, "Failed to resolve flag evidence")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, moderation.ErrFlagNotFound):
		return errFlagNotFound
	case errors.Is(err, moderation.ErrInvalidTransition):
		return errInvalidTransition
	case errors.Is(err, moderation.ErrInvalidDecision):
		return errInvalidDecision
	case errors.Is(err, moderation.ErrInvalidContentType):
		return errInvalidContentType
	case errors.Is(err, moderation.ErrInvalidStatus):
		return errInvalidStatus
	case errors.Is(err, moderation.ErrInvalidFlagType):
		return errInvalidFlagType
	case errors.Is(err, moderation.ErrInvalidSeverity):
		return errInvalidSeverity
	case errors.Is(err, moderation.ErrInvalidAction):
		return errInvalidAction
	case errors.Is(err, moderation.ErrContentIDRequired):
		return errContentIDRequired
	case errors.Is(err, moderation.ErrFlagCreateFailed):
		return errFlagCreateFailed
	case errors.Is(err, moderation.ErrReviewFailed):
		return errReviewFailed
	case errors.Is(err, moderation.ErrListFailed):
		return errListFailed
	case errors.Is(err, moderation.ErrNoEvidence):
		return errNoEvidence
	case errors.Is(err, moderation.ErrEvidenceFailed):
		return errEvidenceFailed
	default:
		panic(err)
	}
}
