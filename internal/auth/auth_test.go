package auth_test

import (
	"context"
	"testing"

	"github.com/Dmorales2498/Entes-Stats/internal/auth"
	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	resolver := auth.NewResolver("admin-secret", []string{"viewer-a", "viewer-b"})

	tests := []struct {
		name     string
		password string
		want     auth.Role
	}{
		{"admin password", "admin-secret", auth.RoleAdmin},
		{"first viewer password", "viewer-a", auth.RoleViewer},
		{"second viewer password", "viewer-b", auth.RoleViewer},
		{"unknown password", "nope", auth.RoleNone},
		{"empty password", "", auth.RoleNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resolver.Resolve(tt.password))
		})
	}
}

func TestEmptyAdminPasswordNeverMatches(t *testing.T) {
	resolver := auth.NewResolver("", nil)
	assert.Equal(t, auth.RoleNone, resolver.Resolve(""))
}

func TestRolePermissions(t *testing.T) {
	assert.True(t, auth.RoleAdmin.CanRead())
	assert.True(t, auth.RoleAdmin.CanWrite())
	assert.True(t, auth.RoleViewer.CanRead())
	assert.False(t, auth.RoleViewer.CanWrite())
	assert.False(t, auth.RoleNone.CanRead())
	assert.False(t, auth.RoleNone.CanWrite())
}

func TestRoleContextRoundTrip(t *testing.T) {
	ctx := auth.WithRole(context.Background(), auth.RoleViewer)
	assert.Equal(t, auth.RoleViewer, auth.RoleFromContext(ctx))
	assert.Equal(t, auth.RoleNone, auth.RoleFromContext(context.Background()))
}
