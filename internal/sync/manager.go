package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/iudanet/carddavsync/internal/models"
	"github.com/iudanet/carddavsync/internal/storage"
	"github.com/iudanet/carddavsync/internal/validation"
)

// DefaultWorkers число коллекций, синхронизируемых одновременно
const DefaultWorkers = 4

//go:generate moq -out secretbox_mock.go . SecretBox

// SecretBox шифрует пароли коллекций. Для синхронизации он непрозрачен.
type SecretBox interface {
	Seal(plaintext []byte) ([]byte, error)
	Open(ciphertext []byte) ([]byte, error)
}

// NewCollection данные для регистрации коллекции
type NewCollection struct {
	UserID   string `json:"user_id" validate:"required,user_id"`
	Label    string `json:"label" validate:"required,max=200"`
	URL      string `json:"url" validate:"required,carddav_url"`
	Username string `json:"username" validate:"max=256"`
	Password string `json:"-" validate:"max=1024"`
	ReadOnly bool   `json:"read_only"`
}

// CollectionResult итог прохода одной коллекции в пакетной синхронизации
type CollectionResult struct {
	Err        error
	Result     *Result
	Collection *models.Collection
}

// Manager точка входа хоста: регистрация коллекций, проходы синхронизации
// и запись изменений. Проходы и записи одной коллекции сериализуются,
// разные коллекции обрабатываются параллельно.
type Manager struct {
	collections storage.CollectionStorage
	contacts    storage.ContactStorage
	secrets     SecretBox
	newRemote   RemoteFactory
	validator   *validation.Validator
	logger      *slog.Logger
	now         func() time.Time
	locks       map[string]*collectionLock
	workers     int
	mu          sync.Mutex
}

// ManagerOption настраивает Manager
type ManagerOption func(*Manager)

// WithWorkers задаёт размер пула для пакетной синхронизации
func WithWorkers(n int) ManagerOption {
	return func(m *Manager) {
		if n > 0 {
			m.workers = n
		}
	}
}

// WithManagerLogger задаёт логгер
func WithManagerLogger(logger *slog.Logger) ManagerOption {
	return func(m *Manager) { m.logger = logger }
}

// WithClock подменяет источник времени
func WithClock(now func() time.Time) ManagerOption {
	return func(m *Manager) { m.now = now }
}

// NewManager creates a new sync manager
func NewManager(collections storage.CollectionStorage, contacts storage.ContactStorage, secrets SecretBox, factory RemoteFactory, opts ...ManagerOption) *Manager {
	m := &Manager{
		collections: collections,
		contacts:    contacts,
		secrets:     secrets,
		newRemote:   factory,
		validator:   validation.New(),
		logger:      slog.Default(),
		now:         time.Now,
		locks:       make(map[string]*collectionLock),
		workers:     DefaultWorkers,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// collectionLock мьютекс коллекции со счётчиком владельцев и ожидающих.
// Запись удаляется из карты, когда счётчик падает до нуля.
type collectionLock struct {
	mu   sync.Mutex
	refs int
}

// lock захватывает мьютекс коллекции и возвращает функцию освобождения
func (m *Manager) lock(collectionID string) func() {
	m.mu.Lock()
	l, ok := m.locks[collectionID]
	if !ok {
		l = &collectionLock{}
		m.locks[collectionID] = l
	}
	l.refs++
	m.mu.Unlock()

	l.mu.Lock()
	return func() {
		l.mu.Unlock()

		m.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(m.locks, collectionID)
		}
		m.mu.Unlock()
	}
}

// SynchronizeCollection выполняет один проход для коллекции
func (m *Manager) SynchronizeCollection(ctx context.Context, collectionID string) (*Result, error) {
	unlock := m.lock(collectionID)
	defer unlock()

	col, err := m.collections.GetCollection(ctx, collectionID)
	if err != nil {
		return nil, err
	}
	return m.synchronize(ctx, col)
}

// synchronize вызывается под блокировкой коллекции
func (m *Manager) synchronize(ctx context.Context, col *models.Collection) (*Result, error) {
	logger := m.logger.With("collection_id", col.ID, "user_id", col.UserID)

	var result *Result
	err := m.withRemote(col, func(remote Remote) error {
		var err error
		result, err = NewReconciler(col, remote, m.contacts, logger).Synchronize(ctx)
		return err
	})
	if result == nil {
		result = &Result{}
	}

	status := models.SyncStatus{
		At:    m.now(),
		Clean: err == nil && result.Clean,
		Error: ErrorKind(err),
	}
	if err == nil && !result.Clean {
		status.Error = KindConnection
	}
	// статус пишется и для отменённого прохода
	if serr := m.collections.UpdateSyncStatus(context.WithoutCancel(ctx), col.ID, status); serr != nil {
		logger.Warn("Failed to record sync status", "error", serr)
	}

	if err != nil {
		logger.Warn("Synchronization failed", "kind", ErrorKind(err), "error", err)
		return result, err
	}
	return result, nil
}

// withRemote расшифровывает пароль, создаёт клиент на время fn и закрывает его
func (m *Manager) withRemote(col *models.Collection, fn func(Remote) error) error {
	password, err := m.openSecret(col)
	if err != nil {
		return err
	}

	remote, err := m.newRemote(col, password)
	if err != nil {
		return fmt.Errorf("failed to create carddav client: %w", err)
	}
	defer func() {
		if cerr := remote.Close(); cerr != nil {
			m.logger.Debug("Failed to close carddav client", "error", cerr)
		}
	}()

	return fn(remote)
}

func (m *Manager) openSecret(col *models.Collection) (string, error) {
	if len(col.Secret) == 0 {
		return "", nil
	}
	plain, err := m.secrets.Open(col.Secret)
	if err != nil {
		return "", fmt.Errorf("failed to decrypt collection secret: %w", err)
	}
	return string(plain), nil
}

// SynchronizeAllCollectionsForUser синхронизирует все коллекции пользователя
func (m *Manager) SynchronizeAllCollectionsForUser(ctx context.Context, userID string) ([]CollectionResult, error) {
	cols, err := m.collections.ListCollections(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list collections: %w", err)
	}
	return m.synchronizeMany(ctx, cols)
}

// SynchronizeAll проход по всем коллекциям всех пользователей,
// вызывается внешним планировщиком
func (m *Manager) SynchronizeAll(ctx context.Context) ([]CollectionResult, error) {
	cols, err := m.collections.ListAllCollections(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list collections: %w", err)
	}

	m.logger.Info("Starting sweep", "collections", len(cols))
	results, err := m.synchronizeMany(ctx, cols)

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	m.logger.Info("Sweep completed", "collections", len(results), "failed", failed)
	return results, err
}

// synchronizeMany запускает проходы в пуле. Ошибки отдельных коллекций
// возвращаются в CollectionResult, общая ошибка только при отмене ctx.
func (m *Manager) synchronizeMany(ctx context.Context, cols []*models.Collection) ([]CollectionResult, error) {
	results := make([]CollectionResult, len(cols))

	var g errgroup.Group
	g.SetLimit(m.workers)

	for i, col := range cols {
		results[i].Collection = col
		if ctx.Err() != nil {
			results[i].Err = ctx.Err()
			continue
		}
		g.Go(func() error {
			unlock := m.lock(col.ID)
			defer unlock()

			res, err := m.synchronize(ctx, col)
			results[i].Result = res
			results[i].Err = err
			return nil
		})
	}
	_ = g.Wait()

	return results, ctx.Err()
}

// RegisterCollection проверяет ввод и доступность сервера, сохраняет
// коллекцию с зашифрованным паролем и выполняет первый проход.
// Ошибка первого прохода не отменяет регистрацию, она видна в статусе.
func (m *Manager) RegisterCollection(ctx context.Context, in NewCollection) (*models.Collection, error) {
	if err := m.validator.Validate(in); err != nil {
		return nil, err
	}

	col := &models.Collection{
		ID:       uuid.New().String(),
		UserID:   in.UserID,
		Label:    in.Label,
		URL:      in.URL,
		Username: in.Username,
		ReadOnly: in.ReadOnly,
	}

	remote, err := m.newRemote(col, in.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to create carddav client: %w", err)
	}
	perr := remote.Probe(ctx)
	_ = remote.Close()
	if perr != nil {
		return nil, fmt.Errorf("%w: %w", ErrConnectionFailure, perr)
	}

	if in.Password != "" {
		sealed, err := m.secrets.Seal([]byte(in.Password))
		if err != nil {
			return nil, fmt.Errorf("failed to encrypt collection secret: %w", err)
		}
		col.Secret = sealed
	}

	if err := m.collections.CreateCollection(ctx, col); err != nil {
		return nil, fmt.Errorf("failed to save collection: %w", err)
	}
	m.logger.Info("Collection registered", "collection_id", col.ID, "user_id", col.UserID)

	if _, err := m.SynchronizeCollection(ctx, col.ID); err != nil {
		m.logger.Warn("Initial synchronization failed", "collection_id", col.ID, "error", err)
	}

	return m.collections.GetCollection(ctx, col.ID)
}

// Collection возвращает коллекцию, принадлежащую пользователю.
// Чужая коллекция неотличима от отсутствующей.
func (m *Manager) Collection(ctx context.Context, userID, collectionID string) (*models.Collection, error) {
	col, err := m.collections.GetCollection(ctx, collectionID)
	if err != nil {
		return nil, err
	}
	if col.UserID != userID {
		return nil, storage.ErrCollectionNotFound
	}
	return col, nil
}

// ListCollections возвращает коллекции пользователя
func (m *Manager) ListCollections(ctx context.Context, userID string) ([]*models.Collection, error) {
	return m.collections.ListCollections(ctx, userID)
}

// RemoveCollection удаляет коллекцию пользователя вместе с кэшем контактов
func (m *Manager) RemoveCollection(ctx context.Context, userID, collectionID string) error {
	unlock := m.lock(collectionID)
	defer unlock()

	if _, err := m.Collection(ctx, userID, collectionID); err != nil {
		return err
	}

	n, err := m.contacts.DeleteAllForCollection(ctx, collectionID)
	if err != nil {
		return fmt.Errorf("failed to delete cached contacts: %w", err)
	}
	if err := m.collections.DeleteCollection(ctx, collectionID); err != nil {
		return fmt.Errorf("failed to delete collection: %w", err)
	}

	m.logger.Info("Collection removed", "collection_id", collectionID, "contacts", n)
	return nil
}

// DiscoverAddressBooks перечисляет адресные книги под URL без регистрации
func (m *Manager) DiscoverAddressBooks(ctx context.Context, rawURL, username, password string) ([]models.AddressBook, error) {
	if err := validation.ValidateCollectionURL(rawURL); err != nil {
		return nil, err
	}

	remote, err := m.newRemote(&models.Collection{URL: rawURL, Username: username}, password)
	if err != nil {
		return nil, fmt.Errorf("failed to create carddav client: %w", err)
	}
	defer func() {
		_ = remote.Close()
	}()

	return remote.DiscoverAddressBooks(ctx)
}

// PushCreate создаёт контакт в коллекции, сервер первым
func (m *Manager) PushCreate(ctx context.Context, collectionID, document string) (int64, error) {
	var localID int64
	err := m.withReconciler(ctx, collectionID, func(r *Reconciler) error {
		var err error
		localID, err = r.PushCreate(ctx, document)
		return err
	})
	return localID, err
}

// PushUpdate перезаписывает контакт коллекции, сервер первым
func (m *Manager) PushUpdate(ctx context.Context, collectionID string, localID int64, document string) error {
	return m.withReconciler(ctx, collectionID, func(r *Reconciler) error {
		return r.PushUpdate(ctx, localID, document)
	})
}

// PushDelete удаляет контакты коллекции, сервер первым
func (m *Manager) PushDelete(ctx context.Context, collectionID string, localIDs []int64) (int, error) {
	var n int
	err := m.withReconciler(ctx, collectionID, func(r *Reconciler) error {
		var err error
		n, err = r.PushDelete(ctx, localIDs)
		return err
	})
	return n, err
}

func (m *Manager) withReconciler(ctx context.Context, collectionID string, fn func(*Reconciler) error) error {
	unlock := m.lock(collectionID)
	defer unlock()

	col, err := m.collections.GetCollection(ctx, collectionID)
	if err != nil {
		return err
	}
	if col.ReadOnly {
		return ErrReadOnly
	}

	err = m.withRemote(col, func(remote Remote) error {
		return fn(NewReconciler(col, remote, m.contacts, m.logger.With("user_id", col.UserID)))
	})
	if err != nil && !errors.Is(err, ErrReadOnly) {
		m.logger.Warn("Push failed", "collection_id", collectionID, "kind", ErrorKind(err), "error", err)
	}
	return err
}
