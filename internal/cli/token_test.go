package cli

import (
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/carddavsync/internal/crypto"
	"github.com/iudanet/carddavsync/internal/server/handlers"
)

func TestCli_Token(t *testing.T) {
	c, out, _ := newTestCli(nil, nil)

	require.NoError(t, c.Token("jwt-secret", time.Hour, []string{handlers.ScopeScheduler}))
	require.NotEmpty(t, out.lines)

	claims, err := handlers.ValidateAccessToken(handlers.JWTConfig{Secret: []byte("jwt-secret")}, out.lines[0])
	require.NoError(t, err)
	assert.Equal(t, testUser, claims.UserID)
	assert.True(t, claims.HasScope(handlers.ScopeScheduler))
	assert.True(t, strings.HasPrefix(out.lines[1], "# expires "))
}

func TestCli_Token_Errors(t *testing.T) {
	c, _, _ := newTestCli(nil, nil)
	assert.Error(t, c.Token("", time.Hour, nil))

	out := &output{}
	anon := New(newTestIO(out), nil, nil, "")
	assert.Error(t, anon.Token("jwt-secret", time.Hour, nil))
	assert.Empty(t, out.lines)
}

func TestCli_Keygen(t *testing.T) {
	c, out, _ := newTestCli(nil, nil)

	require.NoError(t, c.Keygen())
	require.Len(t, out.lines, 2)

	salt, ok := strings.CutPrefix(out.lines[1], "salt: ")
	require.True(t, ok)
	salt = strings.TrimSpace(salt)

	raw, err := base64.StdEncoding.DecodeString(salt)
	require.NoError(t, err)
	assert.NotEmpty(t, raw)

	// соль пригодна для вывода ключа
	_, err = crypto.NewSecretBoxFromPassphrase("passphrase", salt)
	assert.NoError(t, err)
}
