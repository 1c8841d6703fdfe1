// Package feedauth manages the shared-secret token that guards the birthday
// feed. The token persists in the system keyring so calendar clients keep a
// stable subscription URL across restarts.
package feedauth

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"

	"github.com/tartampluch/go-contactbook/internal/config"
	"github.com/zalando/go-keyring"
)

// Token returns the persistent feed token, generating and storing a new one
// on first use. When no keyring backend is available the token is still
// returned but only lives for the current process.
func Token() (string, error) {
	if tok, err := keyring.Get(config.KeyringService, config.KeyringTokenUser); err == nil && tok != "" {
		return tok, nil
	}

	tok, err := generate()
	if err != nil {
		return "", fmt.Errorf("%s: %w", config.ErrTokenGenerate, err)
	}

	if err := keyring.Set(config.KeyringService, config.KeyringTokenUser, tok); err != nil {
		slog.Warn(config.MsgTokenFallback,
			config.LogKeyComponent, config.CompFeedAuth,
			config.LogKeyError, err,
		)
		return tok, nil
	}

	slog.Info(config.MsgTokenCreated, config.LogKeyComponent, config.CompFeedAuth)
	return tok, nil
}

// Reset removes the stored token so the next Token call mints a fresh one.
func Reset() error {
	return keyring.Delete(config.KeyringService, config.KeyringTokenUser)
}

func generate() (string, error) {
	buf := make([]byte, config.FeedTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
