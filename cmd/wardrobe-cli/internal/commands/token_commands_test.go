//go:build unit
// +build unit

package commands

import (
	"encoding/json"
	"testing"

	"github.com/CharlieZimmermann/wardrobe-app/internal/domain/accounts"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenCommands_IssueThenVerify(t *testing.T) {
	logs := captureLogs(t)
	configPath, _ := writeTestConfig(t)

	handler, err := NewTokenCommandHandler()
	require.NoError(t, err)

	root := newTestRoot(configPath)
	registerTokenCommands(root, handler)
	out, err := execute(t, root, "issue-token", "--user-id", "user-42", "--email", " Ada@Example.com ")
	require.NoError(t, err)

	var token accounts.Token
	require.NoError(t, json.Unmarshal([]byte(out), &token), "stdout holds only the token")
	assert.Equal(t, "bearer", token.TokenType)
	assert.NotEmpty(t, token.AccessToken)
	assert.Contains(t, logs.String(), "token issued")
	assert.NotContains(t, out, "token issued")

	root = newTestRoot(configPath)
	registerTokenCommands(root, handler)
	out, err = execute(t, root, "verify-token", token.AccessToken)
	require.NoError(t, err)

	var principal accounts.Principal
	require.NoError(t, json.Unmarshal([]byte(out), &principal))
	assert.Equal(t, "user-42", principal.UserID)
	assert.Equal(t, "ada@example.com", principal.Email)
	assert.Equal(t, accounts.RoleAuthenticated, principal.Role)
}

func TestTokenCommands_VerifyRejectsGarbage(t *testing.T) {
	captureLogs(t)
	configPath, _ := writeTestConfig(t)

	handler, err := NewTokenCommandHandler()
	require.NoError(t, err)

	root := newTestRoot(configPath)
	registerTokenCommands(root, handler)
	_, err = execute(t, root, "verify-token", "not-a-token")
	assert.ErrorIs(t, err, accounts.ErrInvalidToken)
}
