// Package sync приводит локальный кэш коллекции к состоянию CardDAV сервера
// и проводит локальные изменения на сервер до записи в кэш.
package sync

import (
	"context"

	"github.com/iudanet/carddavsync/internal/carddav"
	"github.com/iudanet/carddavsync/internal/models"
)

//go:generate moq -out remote_mock.go . Remote

// Remote операции протокольного клиента, нужные синхронизации
type Remote interface {
	// Probe проверяет доступность сервера и возвращает причину отказа
	Probe(ctx context.Context) error
	// CheckConnection проверка доступности перед проходом
	CheckConnection(ctx context.Context) bool
	// List возвращает ресурсы коллекции с change-токенами
	List(ctx context.Context, includeBodies bool) ([]models.RemoteElement, error)
	// MultiGet возвращает указанные ресурсы вместе с телами
	MultiGet(ctx context.Context, ids []string) ([]models.RemoteElement, error)
	Read(ctx context.Context, id string) (string, error)
	Create(ctx context.Context, document string) (string, error)
	Update(ctx context.Context, id, document string) error
	Delete(ctx context.Context, id string) error
	DiscoverAddressBooks(ctx context.Context) ([]models.AddressBook, error)
	// Close освобождает соединения по окончании прохода
	Close() error
}

var _ Remote = (*carddav.Client)(nil)

// RemoteFactory создаёт клиент для коллекции с расшифрованным паролем
type RemoteFactory func(c *models.Collection, password string) (Remote, error)

// CardDAVFactory фабрика клиентов carddav с общими опциями
func CardDAVFactory(opts ...carddav.Option) RemoteFactory {
	return func(c *models.Collection, password string) (Remote, error) {
		clientOpts := append([]carddav.Option{}, opts...)
		if c.Username != "" || password != "" {
			clientOpts = append(clientOpts, carddav.WithCredentials(c.Username, password))
		}
		return carddav.NewClient(c.URL, clientOpts...)
	}
}
