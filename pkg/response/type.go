package response

import (
	"moderation-srv/pkg/errors"
)

// Resp is the standard JSON response body.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
}

// ErrorMapping maps domain errors to HTTPError for ErrorWithMap.
type ErrorMapping map[error]*errors.HTTPError
