// Package cli команды оператора: регистрация коллекций, синхронизация,
// просмотр и правка контактов.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/iudanet/carddavsync/internal/contacts"
	"github.com/iudanet/carddavsync/internal/iocli"
	"github.com/iudanet/carddavsync/internal/models"
	csync "github.com/iudanet/carddavsync/internal/sync"
)

// PasswordEnv переменная окружения с паролем CardDAV коллекции
const PasswordEnv = "CARDDAVSYNC_COLLECTION_PASSWORD"

// ErrIncomplete проход завершился, но часть работы не выполнена
var ErrIncomplete = errors.New("synchronization incomplete")

//go:generate moq -out manager_mock.go . Manager

// Manager операции менеджера синхронизации, которые использует CLI
type Manager interface {
	RegisterCollection(ctx context.Context, in csync.NewCollection) (*models.Collection, error)
	Collection(ctx context.Context, userID, collectionID string) (*models.Collection, error)
	ListCollections(ctx context.Context, userID string) ([]*models.Collection, error)
	RemoveCollection(ctx context.Context, userID, collectionID string) error
	DiscoverAddressBooks(ctx context.Context, rawURL, username, password string) ([]models.AddressBook, error)
	SynchronizeCollection(ctx context.Context, collectionID string) (*csync.Result, error)
	SynchronizeAllCollectionsForUser(ctx context.Context, userID string) ([]csync.CollectionResult, error)
	SynchronizeAll(ctx context.Context) ([]csync.CollectionResult, error)
	PushCreate(ctx context.Context, collectionID, document string) (int64, error)
	PushUpdate(ctx context.Context, collectionID string, localID int64, document string) error
	PushDelete(ctx context.Context, collectionID string, localIDs []int64) (int, error)
}

var _ Manager = (*csync.Manager)(nil)

// Passwords источники пароля коллекции
type Passwords struct {
	FromFile string
	FromArgs string
}

type Cli struct {
	io       iocli.IO
	manager  Manager
	contacts contacts.Service
	userID   string
}

func New(io iocli.IO, manager Manager, reader contacts.Service, userID string) *Cli {
	return &Cli{
		io:       io,
		manager:  manager,
		contacts: reader,
		userID:   userID,
	}
}

// readPassword возвращает пароль коллекции из источников в порядке приоритета:
// 1. Переменная окружения CARDDAVSYNC_COLLECTION_PASSWORD
// 2. Файл --password-file
// 3. Параметр --password
// 4. Интерактивный ввод, только если задан username
func (c *Cli) readPassword(username string, passwords Passwords) (string, error) {
	if env := os.Getenv(PasswordEnv); env != "" {
		return env, nil
	}

	if passwords.FromFile != "" {
		content, err := os.ReadFile(passwords.FromFile)
		if err != nil {
			return "", fmt.Errorf("failed to read password file: %w", err)
		}
		password := strings.TrimSpace(string(content))
		if password == "" {
			return "", fmt.Errorf("password file is empty")
		}
		return password, nil
	}

	if passwords.FromArgs != "" {
		return passwords.FromArgs, nil
	}

	// без логина сервер открыт, спрашивать нечего
	if username == "" {
		return "", nil
	}

	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return "", fmt.Errorf("failed to read password from stdin: %w", err)
	}
	return password, nil
}

// requireUser команды над коллекциями работают от имени пользователя хоста
func (c *Cli) requireUser() error {
	if c.userID == "" {
		return fmt.Errorf("user id is not set. Use --user-id or CARDDAVSYNC_USER_ID")
	}
	return nil
}

// ownedCollection проверяет, что коллекция принадлежит текущему пользователю
func (c *Cli) ownedCollection(ctx context.Context, collectionID string) (*models.Collection, error) {
	if err := c.requireUser(); err != nil {
		return nil, err
	}
	col, err := c.manager.Collection(ctx, c.userID, collectionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get collection: %w", err)
	}
	return col, nil
}
