package storage

import "errors"

// Common storage errors
var (
	// ErrContactNotFound запись контакта отсутствует в локальном кэше
	ErrContactNotFound = errors.New("contact not found")

	// ErrCollectionNotFound коллекция не зарегистрирована
	ErrCollectionNotFound = errors.New("collection not found")

	// ErrCollectionExists коллекция с таким ID уже существует
	ErrCollectionExists = errors.New("collection already exists")

	// ErrInvalidQuery некорректный поисковый запрос
	ErrInvalidQuery = errors.New("invalid search query")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")
)
