package storage

import (
	"context"

	"github.com/iudanet/carddavsync/internal/models"
)

//go:generate moq -out contacts_mock.go . ContactStorage

// ContactStorage локальный кэш контактов, разбитый по коллекциям.
// Каждая операция над строкой выполняется в отдельной транзакции,
// поэтому разные коллекции можно синхронизировать параллельно.
type ContactStorage interface {
	// ListMetadata returns resourceID -> change tokens for one collection
	ListMetadata(ctx context.Context, collectionID string) (map[string]models.SyncMeta, error)

	// GetDocument returns raw vCard of a cached resource
	// Returns ErrContactNotFound if the resource is not cached
	GetDocument(ctx context.Context, collectionID, resourceID string) (string, error)

	// GetContact returns a cached record by remote resource id
	GetContact(ctx context.Context, collectionID, resourceID string) (*models.Contact, error)

	// GetContactByLocalID returns a cached record by local id
	GetContactByLocalID(ctx context.Context, collectionID string, localID int64) (*models.Contact, error)

	// Upsert inserts or overwrites the record keyed by (CollectionID, ResourceID).
	// Sets contact.LocalID; an existing record keeps its LocalID.
	Upsert(ctx context.Context, contact *models.Contact) error

	// Delete removes one record. Deleting a missing record is not an error.
	Delete(ctx context.Context, collectionID, resourceID string) error

	// DeleteAllForCollection removes every record of a collection and returns their count
	DeleteAllForCollection(ctx context.Context, collectionID string) (int, error)

	// Search returns records matching the query ordered by name
	Search(ctx context.Context, q Query) ([]*models.Contact, error)

	// Count returns the number of records matching the query (paging ignored)
	Count(ctx context.Context, q Query) (int, error)
}
