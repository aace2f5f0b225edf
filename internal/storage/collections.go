package storage

import (
	"context"

	"github.com/iudanet/carddavsync/internal/models"
)

//go:generate moq -out collections_mock.go . CollectionStorage

// CollectionStorage хранит зарегистрированные коллекции
type CollectionStorage interface {
	// CreateCollection stores a new collection
	// Returns ErrCollectionExists if the ID is taken
	CreateCollection(ctx context.Context, collection *models.Collection) error

	// GetCollection returns ErrCollectionNotFound for unknown ids
	GetCollection(ctx context.Context, id string) (*models.Collection, error)

	// ListCollections returns collections of one user ordered by label
	ListCollections(ctx context.Context, userID string) ([]*models.Collection, error)

	// ListAllCollections returns collections of all users, used by the sweep
	ListAllCollections(ctx context.Context) ([]*models.Collection, error)

	// UpdateSyncStatus records the outcome of the last pass
	UpdateSyncStatus(ctx context.Context, id string, status models.SyncStatus) error

	// DeleteCollection removes the collection together with its contacts
	DeleteCollection(ctx context.Context, id string) error
}

// Storage полный адаптер локального хранилища
type Storage interface {
	ContactStorage
	CollectionStorage

	Ping(ctx context.Context) error
	Close() error
}
