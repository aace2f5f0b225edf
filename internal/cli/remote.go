package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/iudanet/carddavsync/internal/server/handlers"
	"github.com/iudanet/carddavsync/pkg/api"
)

// TokenEnv переменная окружения с bearer токеном для --server
const TokenEnv = "CARDDAVSYNC_TOKEN"

// remoteTokenTTL токен, выпущенный для одного запроса к серверу
const remoteTokenTTL = 10 * time.Minute

// RemoteSync запускает синхронизацию на работающем carddavsync serve.
// Блокировки коллекций живут в процессе сервера, поэтому планировщик
// при запущенном сервере должен ходить через него.
func (c *Cli) RemoteSync(ctx context.Context, call func(context.Context) (*api.SyncResponse, error)) error {
	c.io.Println("=== Synchronization (server) ===")
	c.io.Println()

	resp, err := call(ctx)
	if err != nil {
		return fmt.Errorf("synchronization failed: %w", err)
	}

	if len(resp.Results) == 0 {
		c.io.Println("No collections to synchronize.")
		return nil
	}

	failed := 0
	for _, r := range resp.Results {
		if r.Message == api.MessageSynced {
			c.io.Printf("✓ %s: +%d ~%d -%d =%d\n", r.CollectionID, r.Added, r.Updated, r.Deleted, r.Unchanged)
			continue
		}
		failed++
		c.io.Printf("✗ %s: %s error", r.CollectionID, r.Kind)
		if len(r.Failed) > 0 {
			c.io.Printf(", %d contact(s) not fetched", len(r.Failed))
		}
		c.io.Println()
	}
	c.io.Println()

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d collection(s)", ErrIncomplete, failed, len(resp.Results))
	}
	c.io.Printf("All %d collection(s) are synchronized.\n", len(resp.Results))
	return nil
}

// issueToken выпускает короткий токен из server.jwt_secret, если
// токен не передан явно. Для прохода по всем коллекциям нужен scope scheduler.
func issueToken(secret, userID string, sweep bool) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("--token, %s or server.jwt_secret is required with --server", TokenEnv)
	}

	cfg := handlers.JWTConfig{Secret: []byte(secret), AccessTokenTTL: remoteTokenTTL}
	if sweep {
		token, _, err := handlers.GenerateAccessToken(cfg, handlers.ScopeScheduler, handlers.ScopeScheduler)
		return token, err
	}
	if userID == "" {
		return "", fmt.Errorf("user id is not set. Use --user-id or CARDDAVSYNC_USER_ID")
	}
	token, _, err := handlers.GenerateAccessToken(cfg, userID)
	return token, err
}
