package scope

import (
	"context"

	"moderation-srv/internal/model"
)

// Payload is the verified token payload used to build a request scope.
type Payload struct {
	Subject  string
	UserID   string
	Username string
	Role     string
}

type contextKey string

const (
	scopeKey   contextKey = "scope"
	payloadKey contextKey = "payload"
)

// NewScope creates a request scope from a verified payload.
func NewScope(payload Payload) model.Scope {
	userID := payload.UserID
	if userID == "" {
		userID = payload.Subject
	}

	return model.Scope{
		UserID:   userID,
		Username: payload.Username,
		Role:     payload.Role,
	}
}

// SetScopeToContext stores the scope in the context.
func SetScopeToContext(ctx context.Context, sc model.Scope) context.Context {
	return context.WithValue(ctx, scopeKey, sc)
}

// GetScopeFromContext returns the scope stored in the context, or a zero scope.
func GetScopeFromContext(ctx context.Context) model.Scope {
	if sc, ok := ctx.Value(scopeKey).(model.Scope); ok {
		return sc
	}
	return model.Scope{}
}

// SetPayloadToContext stores the token payload in the context.
func SetPayloadToContext(ctx context.Context, payload Payload) context.Context {
	return context.WithValue(ctx, payloadKey, payload)
}

// GetPayloadFromContext returns the payload stored in the context, or a zero payload.
func GetPayloadFromContext(ctx context.Context) Payload {
	if p, ok := ctx.Value(payloadKey).(Payload); ok {
		return p
	}
	return Payload{}
}
