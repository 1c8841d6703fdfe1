package feedauth_test

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-contactbook/internal/config"
	"github.com/tartampluch/go-contactbook/internal/feedauth"
	"github.com/zalando/go-keyring"
)

// TestToken_GeneratesAndPersists verifies that the first call mints a token,
// stores it in the keyring, and subsequent calls return the same value.
func TestToken_GeneratesAndPersists(t *testing.T) {
	keyring.MockInit()

	tok, err := feedauth.Token()
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	// Tokens are hex-encoded random bytes of a fixed length.
	raw, err := hex.DecodeString(tok)
	require.NoError(t, err, "Token must be valid hex")
	assert.Len(t, raw, config.FeedTokenBytes)

	// Second call must return the stored token, not a fresh one.
	again, err := feedauth.Token()
	require.NoError(t, err)
	assert.Equal(t, tok, again, "Token must be stable across calls")

	// The keyring must hold the same value under the configured service.
	stored, err := keyring.Get(config.KeyringService, config.KeyringTokenUser)
	require.NoError(t, err)
	assert.Equal(t, tok, stored)
}

// TestToken_ResetMintsFresh verifies that Reset invalidates the stored token.
func TestToken_ResetMintsFresh(t *testing.T) {
	keyring.MockInit()

	first, err := feedauth.Token()
	require.NoError(t, err)

	require.NoError(t, feedauth.Reset())

	second, err := feedauth.Token()
	require.NoError(t, err)
	assert.NotEqual(t, first, second, "Reset must force a new token")
}

// TestToken_SurvivesMissingBackend verifies the in-process fallback when the
// keyring rejects writes.
func TestToken_SurvivesMissingBackend(t *testing.T) {
	keyring.MockInitWithError(keyring.ErrUnsupportedPlatform)

	tok, err := feedauth.Token()
	require.NoError(t, err, "A broken keyring must not block the feed")
	assert.NotEmpty(t, tok)
}
