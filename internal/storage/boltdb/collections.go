package boltdb

import (
	"cmp"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"go.etcd.io/bbolt"

	"github.com/iudanet/carddavsync/internal/models"
	"github.com/iudanet/carddavsync/internal/storage"
)

// collectionRecord хранимое представление коллекции.
// Secret в models.Collection скрыт от JSON, здесь он сохраняется.
type collectionRecord struct {
	models.Collection
	Secret []byte `json:"secret"`
}

// CreateCollection stores a new collection
func (s *Storage) CreateCollection(ctx context.Context, c *models.Collection) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	now := time.Now()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	if c.UpdatedAt.IsZero() {
		c.UpdatedAt = now
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketCollections)
		if bucket.Get([]byte(c.ID)) != nil {
			return storage.ErrCollectionExists
		}
		return putCollection(bucket, c)
	})
}

// GetCollection returns a collection by id
func (s *Storage) GetCollection(ctx context.Context, id string) (*models.Collection, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var c *models.Collection
	err := s.db.View(func(tx *bbolt.Tx) error {
		var err error
		c, err = getCollection(tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

// ListCollections returns collections of one user
func (s *Storage) ListCollections(ctx context.Context, userID string) ([]*models.Collection, error) {
	return s.listCollections(func(c *models.Collection) bool { return c.UserID == userID })
}

// ListAllCollections returns every registered collection
func (s *Storage) ListAllCollections(ctx context.Context) ([]*models.Collection, error) {
	return s.listCollections(func(*models.Collection) bool { return true })
}

// UpdateSyncStatus records the outcome of the last pass
func (s *Storage) UpdateSyncStatus(ctx context.Context, id string, status models.SyncStatus) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		c, err := getCollection(tx, id)
		if err != nil {
			return err
		}

		at := status.At
		c.LastSyncAt = &at
		c.LastSyncClean = status.Clean
		c.LastSyncError = status.Error

		return putCollection(tx.Bucket(bucketCollections), c)
	})
}

// DeleteCollection removes the collection together with its contacts
func (s *Storage) DeleteCollection(ctx context.Context, id string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketCollections)
		if bucket.Get([]byte(id)) == nil {
			return storage.ErrCollectionNotFound
		}
		if err := bucket.Delete([]byte(id)); err != nil {
			return fmt.Errorf("failed to delete collection: %w", err)
		}
		return deleteContactBuckets(tx, id)
	})
}

func (s *Storage) listCollections(keep func(*models.Collection) bool) ([]*models.Collection, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	collections := make([]*models.Collection, 0)
	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketCollections).ForEach(func(k, v []byte) error {
			c, err := decodeCollection(v)
			if err != nil {
				return err
			}
			if keep(c) {
				collections = append(collections, c)
			}
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list collections: %w", err)
	}

	slices.SortFunc(collections, func(a, b *models.Collection) int {
		return cmp.Or(
			strings.Compare(a.UserID, b.UserID),
			strings.Compare(strings.ToLower(a.Label), strings.ToLower(b.Label)),
			strings.Compare(a.ID, b.ID),
		)
	})
	return collections, nil
}

func getCollection(tx *bbolt.Tx, id string) (*models.Collection, error) {
	data := tx.Bucket(bucketCollections).Get([]byte(id))
	if data == nil {
		return nil, storage.ErrCollectionNotFound
	}
	return decodeCollection(data)
}

func putCollection(bucket *bbolt.Bucket, c *models.Collection) error {
	data, err := json.Marshal(collectionRecord{Collection: *c, Secret: c.Secret})
	if err != nil {
		return fmt.Errorf("failed to marshal collection: %w", err)
	}
	if err := bucket.Put([]byte(c.ID), data); err != nil {
		return fmt.Errorf("failed to save collection: %w", err)
	}
	return nil
}

func decodeCollection(data []byte) (*models.Collection, error) {
	var rec collectionRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("failed to unmarshal collection: %w", err)
	}
	c := rec.Collection
	c.Secret = rec.Secret
	return &c, nil
}

func deleteContactBuckets(tx *bbolt.Tx, collectionID string) error {
	for _, name := range [][]byte{bucketContacts, bucketLocalIDs} {
		err := tx.Bucket(name).DeleteBucket([]byte(collectionID))
		if err != nil && !errors.Is(err, bbolt.ErrBucketNotFound) {
			return fmt.Errorf("failed to delete %s bucket: %w", name, err)
		}
	}
	return nil
}
