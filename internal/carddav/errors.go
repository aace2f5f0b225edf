package carddav

import (
	"errors"
	"fmt"
	"net/http"
)

// Виды ошибок протокольного клиента. Проверяются через errors.Is.
var (
	// ErrConnection сетевая ошибка, таймаут или неуспешный HTTP статус
	ErrConnection = errors.New("carddav: connection error")

	// ErrParse ответ сервера не является корректным multistatus XML
	ErrParse = errors.New("carddav: malformed server response")

	// ErrIDExhausted исчерпан лимит попыток генерации идентификатора ресурса
	ErrIDExhausted = errors.New("carddav: resource id attempts exhausted")
)

// StatusError неуспешный HTTP статус ответа. Разворачивается в ErrConnection.
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("carddav: %s %s failed with status %d %s",
		e.Method, e.Path, e.StatusCode, http.StatusText(e.StatusCode))
}

func (e *StatusError) Unwrap() error {
	return ErrConnection
}

// IsNotFound сообщает, что сервер ответил 404 или 410
func IsNotFound(err error) bool {
	var se *StatusError
	if !errors.As(err, &se) {
		return false
	}
	return se.StatusCode == http.StatusNotFound || se.StatusCode == http.StatusGone
}

func parseError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrParse, fmt.Sprintf(format, args...))
}
