// Package contacts чтение локального кэша контактов с проверкой владельца коллекции.
package contacts

import (
	"context"
	"fmt"

	"github.com/iudanet/carddavsync/internal/models"
	"github.com/iudanet/carddavsync/internal/storage"
)

const (
	// DefaultLimit размер страницы по умолчанию
	DefaultLimit = 50
	// MaxLimit максимальный размер страницы
	MaxLimit = 500
)

//go:generate moq -out service_mock.go . Service

// Service определяет интерфейс чтения кэша контактов
type Service interface {
	// Search ищет по коллекциям пользователя, пустой список коллекций означает все
	Search(ctx context.Context, userID string, params SearchParams) (*Page, error)
	// Get возвращает контакт по локальному идентификатору
	Get(ctx context.Context, userID, collectionID string, localID int64) (*models.Contact, error)
}

// SearchParams параметры поиска
type SearchParams struct {
	Value         string
	CollectionIDs []string
	Fields        []string
	Limit         int
	Offset        int
}

// Page страница результатов
type Page struct {
	Contacts []*models.Contact
	Total    int
	Limit    int
	Offset   int
}

type service struct {
	collections storage.CollectionStorage
	contacts    storage.ContactStorage
}

// NewService creates a new contacts read service
func NewService(collections storage.CollectionStorage, contacts storage.ContactStorage) Service {
	return &service{
		collections: collections,
		contacts:    contacts,
	}
}

// Search выполняет поиск с пагинацией
func (s *service) Search(ctx context.Context, userID string, params SearchParams) (*Page, error) {
	q, err := s.buildQuery(ctx, userID, params)
	if err != nil {
		return nil, err
	}

	page := &Page{Contacts: []*models.Contact{}, Limit: q.Limit, Offset: q.Offset}
	if len(q.CollectionIDs) == 0 {
		// у пользователя нет коллекций
		return page, nil
	}

	found, err := s.contacts.Search(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to search contacts: %w", err)
	}
	total, err := s.contacts.Count(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to count contacts: %w", err)
	}

	page.Contacts = found
	page.Total = total
	return page, nil
}

// Get возвращает контакт из коллекции пользователя
func (s *service) Get(ctx context.Context, userID, collectionID string, localID int64) (*models.Contact, error) {
	if err := s.checkOwner(ctx, userID, collectionID); err != nil {
		return nil, err
	}
	return s.contacts.GetContactByLocalID(ctx, collectionID, localID)
}

func (s *service) buildQuery(ctx context.Context, userID string, params SearchParams) (storage.Query, error) {
	q := storage.Query{
		Value:  params.Value,
		Limit:  params.Limit,
		Offset: params.Offset,
	}

	switch {
	case q.Limit <= 0:
		q.Limit = DefaultLimit
	case q.Limit > MaxLimit:
		q.Limit = MaxLimit
	}
	if q.Offset < 0 {
		return q, fmt.Errorf("%w: negative offset", storage.ErrInvalidQuery)
	}

	for _, f := range params.Fields {
		field, err := storage.ParseField(f)
		if err != nil {
			return q, err
		}
		q.Fields = append(q.Fields, field)
	}

	owned, err := s.collections.ListCollections(ctx, userID)
	if err != nil {
		return q, fmt.Errorf("failed to list collections: %w", err)
	}
	ownedIDs := make(map[string]struct{}, len(owned))
	for _, c := range owned {
		ownedIDs[c.ID] = struct{}{}
	}

	if len(params.CollectionIDs) == 0 {
		for _, c := range owned {
			q.CollectionIDs = append(q.CollectionIDs, c.ID)
		}
		return q, nil
	}

	for _, id := range params.CollectionIDs {
		if _, ok := ownedIDs[id]; !ok {
			return q, fmt.Errorf("collection %s: %w", id, storage.ErrCollectionNotFound)
		}
		q.CollectionIDs = append(q.CollectionIDs, id)
	}
	return q, nil
}

func (s *service) checkOwner(ctx context.Context, userID, collectionID string) error {
	col, err := s.collections.GetCollection(ctx, collectionID)
	if err != nil {
		return err
	}
	if col.UserID != userID {
		return storage.ErrCollectionNotFound
	}
	return nil
}
