package test

import (
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/ledgerline/backend/internal/auth"
	"github.com/ledgerline/backend/internal/models"
)

// Secret is the token signing secret used by the test router.
const Secret = "test-secret"

// TmpFile returns the path to a unique file to be used in tests
func TmpFile(t *testing.T) string {
	dir := t.TempDir()
	return filepath.Join(dir, uuid.New().String())
}

// Token issues a bearer token for the user, signed with the test secret.
func Token(t *testing.T, user models.User) string {
	token, err := auth.NewTokens(Secret).Issue(user)
	require.NoError(t, err, "token could not be issued")

	return token
}

// BearerHeaders returns the request headers for an authenticated request.
func BearerHeaders(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}
