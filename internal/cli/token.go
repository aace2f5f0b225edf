package cli

import (
	"fmt"
	"time"

	"github.com/iudanet/carddavsync/internal/crypto"
	"github.com/iudanet/carddavsync/internal/server/handlers"
)

// Token выпускает bearer токен HTTP API для текущего пользователя
func (c *Cli) Token(secret string, ttl time.Duration, scopes []string) error {
	if err := c.requireUser(); err != nil {
		return err
	}
	if secret == "" {
		return fmt.Errorf("server.jwt_secret is not configured")
	}

	token, expiresAt, err := handlers.GenerateAccessToken(handlers.JWTConfig{
		Secret:         []byte(secret),
		AccessTokenTTL: ttl,
	}, c.userID, scopes...)
	if err != nil {
		return fmt.Errorf("failed to generate token: %w", err)
	}

	c.io.Println(token)
	c.io.Printf("# expires %s\n", time.Unix(expiresAt, 0).UTC().Format(time.RFC3339))
	return nil
}

// Keygen печатает новую соль для secret.salt
func (c *Cli) Keygen() error {
	salt, err := crypto.GenerateSaltBase64()
	if err != nil {
		return fmt.Errorf("failed to generate salt: %w", err)
	}
	c.io.Println("# add to the config file or export as CARDDAVSYNC_SECRET_SALT")
	c.io.Printf("salt: %s\n", salt)
	return nil
}
