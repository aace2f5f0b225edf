package sync

import (
	"context"
	"errors"

	"github.com/iudanet/carddavsync/internal/carddav"
	"github.com/iudanet/carddavsync/internal/storage"
	"github.com/iudanet/carddavsync/internal/validation"
)

var (
	// ErrConnectionFailure сервер не ответил на проверку доступности, кэш не тронут
	ErrConnectionFailure = errors.New("carddav server unreachable")
	// ErrReadOnly запись в коллекцию только для чтения
	ErrReadOnly = errors.New("collection is read-only")
)

// Виды ошибок для диагностики на границе интерфейса
const (
	KindConnection   = "connection"
	KindParse        = "parse"
	KindIDExhaustion = "id_exhaustion"
	KindNotFound     = "not_found"
	KindReadOnly     = "read_only"
	KindInvalid      = "invalid"
	KindCancelled    = "cancelled"
	KindInternal     = "internal"
)

// ErrorKind возвращает вид ошибки, пустую строку для nil
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrReadOnly):
		return KindReadOnly
	case errors.Is(err, carddav.ErrIDExhausted):
		return KindIDExhaustion
	case errors.Is(err, carddav.ErrParse):
		return KindParse
	case errors.Is(err, storage.ErrContactNotFound), errors.Is(err, storage.ErrCollectionNotFound):
		return KindNotFound
	case errors.Is(err, validation.ErrInvalid), errors.Is(err, storage.ErrInvalidQuery):
		return KindInvalid
	case errors.Is(err, context.Canceled):
		return KindCancelled
	case errors.Is(err, ErrConnectionFailure),
		errors.Is(err, carddav.ErrConnection),
		errors.Is(err, context.DeadlineExceeded):
		return KindConnection
	default:
		return KindInternal
	}
}
