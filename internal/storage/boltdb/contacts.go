package boltdb

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"github.com/iudanet/carddavsync/internal/models"
	"github.com/iudanet/carddavsync/internal/storage"
)

// ListMetadata returns resourceID -> change tokens for one collection
func (s *Storage) ListMetadata(ctx context.Context, collectionID string) (map[string]models.SyncMeta, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	meta := make(map[string]models.SyncMeta)
	err := s.db.View(func(tx *bbolt.Tx) error {
		return forEachContact(tx, collectionID, func(c *models.Contact) error {
			meta[c.ResourceID] = c.Meta()
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list metadata: %w", err)
	}
	return meta, nil
}

// GetDocument returns raw vCard of a cached resource
func (s *Storage) GetDocument(ctx context.Context, collectionID, resourceID string) (string, error) {
	c, err := s.GetContact(ctx, collectionID, resourceID)
	if err != nil {
		return "", err
	}
	return c.VCard, nil
}

// GetContact returns a cached record by remote resource id
func (s *Storage) GetContact(ctx context.Context, collectionID, resourceID string) (*models.Contact, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var c *models.Contact
	err := s.db.View(func(tx *bbolt.Tx) error {
		var err error
		c, err = getContact(tx, collectionID, resourceID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

// GetContactByLocalID returns a cached record by local id
func (s *Storage) GetContactByLocalID(ctx context.Context, collectionID string, localID int64) (*models.Contact, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var c *models.Contact
	err := s.db.View(func(tx *bbolt.Tx) error {
		ids := tx.Bucket(bucketLocalIDs).Bucket([]byte(collectionID))
		if ids == nil {
			return storage.ErrContactNotFound
		}
		resourceID := ids.Get(itob(localID))
		if resourceID == nil {
			return storage.ErrContactNotFound
		}

		var err error
		c, err = getContact(tx, collectionID, string(resourceID))
		return err
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Upsert inserts or overwrites the record keyed by (collection, resource).
// LocalID существующей записи сохраняется.
func (s *Storage) Upsert(ctx context.Context, c *models.Contact) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		if tx.Bucket(bucketCollections).Get([]byte(c.CollectionID)) == nil {
			return storage.ErrCollectionNotFound
		}

		root := tx.Bucket(bucketContacts)
		contacts, err := root.CreateBucketIfNotExists([]byte(c.CollectionID))
		if err != nil {
			return fmt.Errorf("failed to create contacts bucket: %w", err)
		}
		ids, err := tx.Bucket(bucketLocalIDs).CreateBucketIfNotExists([]byte(c.CollectionID))
		if err != nil {
			return fmt.Errorf("failed to create local ids bucket: %w", err)
		}

		if data := contacts.Get([]byte(c.ResourceID)); data != nil {
			existing, err := decodeContact(data)
			if err != nil {
				return err
			}
			c.LocalID = existing.LocalID
		} else {
			seq, err := root.NextSequence()
			if err != nil {
				return fmt.Errorf("failed to allocate local id: %w", err)
			}
			c.LocalID = int64(seq)
			if err := ids.Put(itob(c.LocalID), []byte(c.ResourceID)); err != nil {
				return fmt.Errorf("failed to save local id: %w", err)
			}
		}

		c.UpdatedAt = time.Now()
		data, err := json.Marshal(c)
		if err != nil {
			return fmt.Errorf("failed to marshal contact: %w", err)
		}
		if err := contacts.Put([]byte(c.ResourceID), data); err != nil {
			return fmt.Errorf("failed to save contact: %w", err)
		}
		return nil
	})
}

// Delete removes one record, missing record is not an error
func (s *Storage) Delete(ctx context.Context, collectionID, resourceID string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		contacts := tx.Bucket(bucketContacts).Bucket([]byte(collectionID))
		if contacts == nil {
			return nil
		}
		data := contacts.Get([]byte(resourceID))
		if data == nil {
			return nil
		}
		existing, err := decodeContact(data)
		if err != nil {
			return err
		}

		if ids := tx.Bucket(bucketLocalIDs).Bucket([]byte(collectionID)); ids != nil {
			if err := ids.Delete(itob(existing.LocalID)); err != nil {
				return fmt.Errorf("failed to delete local id: %w", err)
			}
		}
		if err := contacts.Delete([]byte(resourceID)); err != nil {
			return fmt.Errorf("failed to delete contact: %w", err)
		}
		return nil
	})
}

// DeleteAllForCollection removes every record of a collection
func (s *Storage) DeleteAllForCollection(ctx context.Context, collectionID string) (int, error) {
	if s.db == nil {
		return 0, storage.ErrStorageClosed
	}

	var n int
	err := s.db.Update(func(tx *bbolt.Tx) error {
		if contacts := tx.Bucket(bucketContacts).Bucket([]byte(collectionID)); contacts != nil {
			n = contacts.Stats().KeyN
		}
		return deleteContactBuckets(tx, collectionID)
	})
	if err != nil {
		return 0, err
	}
	return n, nil
}

// Search returns records matching the query ordered by name
func (s *Storage) Search(ctx context.Context, q storage.Query) ([]*models.Contact, error) {
	matched, err := s.match(q)
	if err != nil {
		return nil, err
	}
	storage.SortContacts(matched)
	return q.Page(matched), nil
}

// Count returns the number of records matching the query
func (s *Storage) Count(ctx context.Context, q storage.Query) (int, error) {
	matched, err := s.match(q)
	if err != nil {
		return 0, err
	}
	return len(matched), nil
}

// match полный проход по выбранным коллекциям с фильтром в памяти
func (s *Storage) match(q storage.Query) ([]*models.Contact, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	matched := make([]*models.Contact, 0)
	err := s.db.View(func(tx *bbolt.Tx) error {
		collect := func(c *models.Contact) error {
			if q.Matches(c) {
				matched = append(matched, c)
			}
			return nil
		}

		if len(q.CollectionIDs) > 0 {
			for _, id := range q.CollectionIDs {
				if err := forEachContact(tx, id, collect); err != nil {
					return err
				}
			}
			return nil
		}

		return tx.Bucket(bucketContacts).ForEachBucket(func(k []byte) error {
			return forEachContact(tx, string(k), collect)
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to search contacts: %w", err)
	}
	return matched, nil
}

func forEachContact(tx *bbolt.Tx, collectionID string, fn func(*models.Contact) error) error {
	contacts := tx.Bucket(bucketContacts).Bucket([]byte(collectionID))
	if contacts == nil {
		return nil
	}
	return contacts.ForEach(func(k, v []byte) error {
		c, err := decodeContact(v)
		if err != nil {
			return err
		}
		return fn(c)
	})
}

func getContact(tx *bbolt.Tx, collectionID, resourceID string) (*models.Contact, error) {
	contacts := tx.Bucket(bucketContacts).Bucket([]byte(collectionID))
	if contacts == nil {
		return nil, storage.ErrContactNotFound
	}
	data := contacts.Get([]byte(resourceID))
	if data == nil {
		return nil, storage.ErrContactNotFound
	}
	return decodeContact(data)
}

func decodeContact(data []byte) (*models.Contact, error) {
	c := &models.Contact{}
	if err := json.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal contact: %w", err)
	}
	return c, nil
}
