package carddav

import (
	"context"
	"fmt"
	"regexp"
	"strings"
)

const (
	idAlphabet    = "0123456789ABCDEF"
	idRandomChars = 26
)

// дефис вставляется сразу после 8-го и 17-го случайного символа
var (
	idDashAfter       = [...]int{8, 17}
	resourceIDPattern = regexp.MustCompile(`^[0-9A-F]{8}-[0-9A-F]{9}-[0-9A-F]{9}$`)
)

// NewResourceID генерирует кандидата в идентификаторы ресурса.
// intN должна возвращать число в [0, n). Источник не обязан быть
// криптографическим: коллизии исключаются проверкой на сервере.
func NewResourceID(intN func(n int) int) string {
	var b strings.Builder
	b.Grow(idRandomChars + len(idDashAfter))
	for i := 0; i < idRandomChars; i++ {
		for _, pos := range idDashAfter {
			if i == pos {
				b.WriteByte('-')
			}
		}
		b.WriteByte(idAlphabet[intN(len(idAlphabet))])
	}
	return b.String()
}

// ValidResourceID проверяет формат идентификатора, сгенерированного NewResourceID
func ValidResourceID(id string) bool {
	return resourceIDPattern.MatchString(id)
}

// generateID подбирает идентификатор, которого ещё нет на сервере.
// Успешный GET означает, что ресурс существует, 404/410 означает, что
// имя свободно. Любая другая ошибка прерывает подбор: недоступность
// сервера не доказывает отсутствие ресурса.
func (c *Client) generateID(ctx context.Context) (string, error) {
	for attempt := 1; attempt <= c.maxIDAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		id := NewResourceID(c.intN)
		_, err := c.Read(ctx, id)
		switch {
		case err == nil:
			c.logger.Debug("Resource id already taken, regenerating", "attempt", attempt)
		case IsNotFound(err):
			return id, nil
		default:
			return "", fmt.Errorf("failed to verify resource id: %w", err)
		}
	}
	return "", fmt.Errorf("%w after %d attempts", ErrIDExhausted, c.maxIDAttempts)
}

// sanitizeDocument удаляет символы, недопустимые при передаче vCard
func sanitizeDocument(doc string) string {
	return strings.ReplaceAll(doc, "\t", "")
}
