// Package auth resolves a shared password into a role once per request. The
// resolved role travels in the request context; nothing downstream reads
// ambient session state.
package auth

import (
	"context"
	"crypto/subtle"
)

// Role is the resolved access level of a request.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleViewer Role = "viewer"
	RoleNone   Role = ""
)

// Resolver maps passwords to roles.
type Resolver struct {
	adminPassword   string
	viewerPasswords []string
}

// NewResolver creates a Resolver from the configured passwords.
func NewResolver(adminPassword string, viewerPasswords []string) *Resolver {
	return &Resolver{
		adminPassword:   adminPassword,
		viewerPasswords: viewerPasswords,
	}
}

// Resolve returns the role for a supplied password, or RoleNone when it
// matches nothing. Comparisons are constant-time.
func (r *Resolver) Resolve(password string) Role {
	if password == "" {
		return RoleNone
	}
	if r.adminPassword != "" && subtle.ConstantTimeCompare([]byte(password), []byte(r.adminPassword)) == 1 {
		return RoleAdmin
	}
	for _, pw := range r.viewerPasswords {
		if subtle.ConstantTimeCompare([]byte(password), []byte(pw)) == 1 {
			return RoleViewer
		}
	}
	return RoleNone
}

// contextKey is a custom type to avoid key collisions in context.
type contextKey string

const roleKey contextKey = "role"

// WithRole returns a context carrying the resolved role.
func WithRole(ctx context.Context, role Role) context.Context {
	return context.WithValue(ctx, roleKey, role)
}

// RoleFromContext retrieves the resolved role, defaulting to RoleNone.
func RoleFromContext(ctx context.Context) Role {
	role, ok := ctx.Value(roleKey).(Role)
	if !ok {
		return RoleNone
	}
	return role
}

// CanRead reports whether the role may query reports and listings.
func (role Role) CanRead() bool {
	return role == RoleAdmin || role == RoleViewer
}

// CanWrite reports whether the role may mutate the roster.
func (role Role) CanWrite() bool {
	return role == RoleAdmin
}
