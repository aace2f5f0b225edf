package sync

import (
	"context"
	"fmt"
	"sync"

	"github.com/iudanet/carddavsync/internal/carddav"
	"github.com/iudanet/carddavsync/internal/models"
	"github.com/iudanet/carddavsync/internal/storage"
)

type contactKey struct {
	collectionID string
	resourceID   string
}

// memoryStore кэш контактов в памяти поверх ContactStorageMock
type memoryStore struct {
	*storage.ContactStorageMock
	rows   map[contactKey]*models.Contact
	nextID int64
	mu     sync.Mutex
}

func newMemoryStore() *memoryStore {
	s := &memoryStore{rows: make(map[contactKey]*models.Contact)}
	s.ContactStorageMock = &storage.ContactStorageMock{
		ListMetadataFunc: func(ctx context.Context, collectionID string) (map[string]models.SyncMeta, error) {
			s.mu.Lock()
			defer s.mu.Unlock()
			meta := make(map[string]models.SyncMeta)
			for k, c := range s.rows {
				if k.collectionID == collectionID {
					meta[k.resourceID] = c.Meta()
				}
			}
			return meta, nil
		},
		GetDocumentFunc: func(ctx context.Context, collectionID, resourceID string) (string, error) {
			c, err := s.get(collectionID, resourceID)
			if err != nil {
				return "", err
			}
			return c.VCard, nil
		},
		GetContactFunc: func(ctx context.Context, collectionID, resourceID string) (*models.Contact, error) {
			return s.get(collectionID, resourceID)
		},
		GetContactByLocalIDFunc: func(ctx context.Context, collectionID string, localID int64) (*models.Contact, error) {
			s.mu.Lock()
			defer s.mu.Unlock()
			for k, c := range s.rows {
				if k.collectionID == collectionID && c.LocalID == localID {
					cp := *c
					return &cp, nil
				}
			}
			return nil, storage.ErrContactNotFound
		},
		UpsertFunc: func(ctx context.Context, c *models.Contact) error {
			s.mu.Lock()
			defer s.mu.Unlock()
			k := contactKey{c.CollectionID, c.ResourceID}
			if existing, ok := s.rows[k]; ok {
				c.LocalID = existing.LocalID
			} else {
				s.nextID++
				c.LocalID = s.nextID
			}
			cp := *c
			s.rows[k] = &cp
			return nil
		},
		DeleteFunc: func(ctx context.Context, collectionID, resourceID string) error {
			s.mu.Lock()
			defer s.mu.Unlock()
			delete(s.rows, contactKey{collectionID, resourceID})
			return nil
		},
		DeleteAllForCollectionFunc: func(ctx context.Context, collectionID string) (int, error) {
			s.mu.Lock()
			defer s.mu.Unlock()
			n := 0
			for k := range s.rows {
				if k.collectionID == collectionID {
					delete(s.rows, k)
					n++
				}
			}
			return n, nil
		},
	}
	return s
}

func (s *memoryStore) get(collectionID, resourceID string) (*models.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.rows[contactKey{collectionID, resourceID}]
	if !ok {
		return nil, storage.ErrContactNotFound
	}
	cp := *c
	return &cp, nil
}

// seed кладёт запись в кэш в обход вызовов мока
func (s *memoryStore) seed(collectionID, resourceID, etag, lastModified string) *models.Contact {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	c := &models.Contact{
		LocalID:      s.nextID,
		CollectionID: collectionID,
		ResourceID:   resourceID,
		ETag:         etag,
		LastModified: lastModified,
		VCard:        card(resourceID),
		Index:        models.IndexFields{Name: resourceID},
	}
	s.rows[contactKey{collectionID, resourceID}] = c
	cp := *c
	return &cp
}

// snapshot копия кэша коллекции для сравнения до и после прохода
func (s *memoryStore) snapshot(collectionID string) map[string]models.Contact {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]models.Contact)
	for k, c := range s.rows {
		if k.collectionID == collectionID {
			out[k.resourceID] = *c
		}
	}
	return out
}

func (s *memoryStore) meta(collectionID string) map[string]models.SyncMeta {
	m, _ := s.ListMetadataFunc(context.Background(), collectionID)
	return m
}

func card(name string) string {
	return fmt.Sprintf("BEGIN:VCARD\r\nVERSION:3.0\r\nFN:%s\r\nEMAIL:%s@example.com\r\nEND:VCARD\r\n", name, name)
}

// fakeRemote удалённая коллекция в памяти поверх RemoteMock
type fakeRemote struct {
	*RemoteMock
	elements map[string]models.RemoteElement
	mu       sync.Mutex
}

func newFakeRemote(elements ...models.RemoteElement) *fakeRemote {
	f := &fakeRemote{elements: make(map[string]models.RemoteElement)}
	for _, e := range elements {
		f.elements[e.ID] = e
	}
	f.RemoteMock = &RemoteMock{
		ProbeFunc:           func(ctx context.Context) error { return nil },
		CheckConnectionFunc: func(ctx context.Context) bool { return true },
		ListFunc: func(ctx context.Context, includeBodies bool) ([]models.RemoteElement, error) {
			f.mu.Lock()
			defer f.mu.Unlock()
			out := make([]models.RemoteElement, 0, len(f.elements))
			for _, e := range f.elements {
				if !includeBodies {
					e.VCard = ""
				}
				out = append(out, e)
			}
			return out, nil
		},
		MultiGetFunc: func(ctx context.Context, ids []string) ([]models.RemoteElement, error) {
			f.mu.Lock()
			defer f.mu.Unlock()
			var out []models.RemoteElement
			for _, id := range ids {
				if e, ok := f.elements[id]; ok {
					out = append(out, e)
				}
			}
			return out, nil
		},
		ReadFunc: func(ctx context.Context, id string) (string, error) {
			f.mu.Lock()
			defer f.mu.Unlock()
			e, ok := f.elements[id]
			if !ok {
				return "", notFound(id)
			}
			return e.VCard, nil
		},
		CreateFunc: func(ctx context.Context, document string) (string, error) {
			f.mu.Lock()
			defer f.mu.Unlock()
			id := fmt.Sprintf("NEW%d", len(f.elements))
			f.elements[id] = models.RemoteElement{ID: id, ETag: "created", LastModified: "now", VCard: document}
			return id, nil
		},
		UpdateFunc: func(ctx context.Context, id, document string) error {
			f.mu.Lock()
			defer f.mu.Unlock()
			e, ok := f.elements[id]
			if !ok {
				return notFound(id)
			}
			e.ETag += "+"
			e.VCard = document
			f.elements[id] = e
			return nil
		},
		DeleteFunc: func(ctx context.Context, id string) error {
			f.mu.Lock()
			defer f.mu.Unlock()
			if _, ok := f.elements[id]; !ok {
				return notFound(id)
			}
			delete(f.elements, id)
			return nil
		},
		DiscoverAddressBooksFunc: func(ctx context.Context) ([]models.AddressBook, error) {
			return nil, nil
		},
		CloseFunc: func() error { return nil },
	}
	return f
}

func notFound(id string) error {
	return &carddav.StatusError{Method: "GET", Path: id, StatusCode: 404}
}

func element(id, etag string) models.RemoteElement {
	return models.RemoteElement{ID: id, ETag: etag, LastModified: "Mon, 01 Jan 2024 10:00:00 GMT", VCard: card(id)}
}

func readIDs(m *RemoteMock) []string {
	var ids []string
	for _, c := range m.ReadCalls() {
		ids = append(ids, c.ID)
	}
	return ids
}
