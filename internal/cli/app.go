package cli

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/time/rate"

	"github.com/iudanet/carddavsync/internal/carddav"
	"github.com/iudanet/carddavsync/internal/config"
	"github.com/iudanet/carddavsync/internal/contacts"
	"github.com/iudanet/carddavsync/internal/crypto"
	"github.com/iudanet/carddavsync/internal/logging"
	"github.com/iudanet/carddavsync/internal/storage"
	"github.com/iudanet/carddavsync/internal/storage/boltdb"
	"github.com/iudanet/carddavsync/internal/storage/sqlite"
	csync "github.com/iudanet/carddavsync/internal/sync"
)

var _ csync.SecretBox = (*crypto.SecretBox)(nil)

// app собранные зависимости одной команды
type app struct {
	cfg      *config.Config
	log      *logging.Logger
	store    storage.Storage
	manager  *csync.Manager
	contacts contacts.Service
}

// openApp собирает хранилище, ключ секретов и менеджер синхронизации
func openApp(ctx context.Context, cfg *config.Config) (*app, error) {
	if cfg.Secret.Passphrase == "" || cfg.Secret.Salt == "" {
		return nil, fmt.Errorf("secret.passphrase and secret.salt must be set. Run 'carddavsync keygen' to create a salt")
	}

	log, err := logging.New(cfg.Log)
	if err != nil {
		return nil, err
	}
	logger := log.Logger

	secrets, err := crypto.NewSecretBoxFromPassphrase(cfg.Secret.Passphrase, cfg.Secret.Salt)
	if err != nil {
		_ = log.Close()
		return nil, fmt.Errorf("failed to derive secret key: %w", err)
	}

	store, err := openStorage(ctx, cfg.Storage)
	if err != nil {
		_ = log.Close()
		return nil, err
	}
	logger.Debug("Storage opened", "driver", cfg.Storage.Driver, "path", cfg.Storage.Path, "key", secrets.Fingerprint())

	manager := csync.NewManager(store, store, secrets, remoteFactory(cfg, logger),
		csync.WithWorkers(cfg.Sync.Workers),
		csync.WithManagerLogger(logger),
	)

	return &app{
		cfg:      cfg,
		log:      log,
		store:    store,
		manager:  manager,
		contacts: contacts.NewService(store, store),
	}, nil
}

func (a *app) Close() error {
	err := a.store.Close()
	if cerr := a.log.Close(); err == nil {
		err = cerr
	}
	return err
}

func openStorage(ctx context.Context, cfg config.StorageConfig) (storage.Storage, error) {
	switch cfg.Driver {
	case config.DriverBolt:
		s, err := boltdb.New(ctx, cfg.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to open bolt storage: %w", err)
		}
		return s, nil
	default:
		s, err := sqlite.New(ctx, cfg.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite storage: %w", err)
		}
		return s, nil
	}
}

// remoteFactory клиенты CardDAV с общими HTTP настройками
func remoteFactory(cfg *config.Config, logger *slog.Logger) csync.RemoteFactory {
	opts := []carddav.Option{
		carddav.WithHTTPClient(carddav.NewHTTPClient(cfg.HTTP.Timeout, cfg.HTTP.InsecureSkipVerify)),
		carddav.WithUserAgent(cfg.HTTP.UserAgent),
		carddav.WithMaxIDAttempts(cfg.Sync.MaxIDAttempts),
		carddav.WithListMode(cfg.ListMode()),
		carddav.WithLogger(logger),
	}
	if cfg.HTTP.RateLimit > 0 {
		opts = append(opts, carddav.WithRateLimit(rate.Limit(cfg.HTTP.RateLimit), cfg.HTTP.RateBurst))
	}
	return csync.CardDAVFactory(opts...)
}
