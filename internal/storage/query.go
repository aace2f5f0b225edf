package storage

import (
	"fmt"
	"slices"
	"strings"

	"github.com/iudanet/carddavsync/internal/models"
	"github.com/iudanet/carddavsync/internal/vcf"
)

// Field поле индекса, по которому выполняется поиск
type Field string

const (
	FieldName      Field = "name"
	FieldFirstName Field = "firstname"
	FieldSurname   Field = "surname"
	FieldEmail     Field = "email"
	// FieldWords поиск по нормализованным словам всех полей
	FieldWords Field = "*"
)

// ParseField разбирает имя поля из запроса
func ParseField(s string) (Field, error) {
	f := Field(strings.ToLower(strings.TrimSpace(s)))
	switch f {
	case FieldName, FieldFirstName, FieldSurname, FieldEmail, FieldWords:
		return f, nil
	case "words", "any":
		return FieldWords, nil
	}
	return "", fmt.Errorf("%w: unknown field %q", ErrInvalidQuery, s)
}

// Query типизированный поисковый запрос к локальному кэшу.
// Пустой Value выбирает все записи. Поля объединяются через OR.
type Query struct {
	Value         string
	CollectionIDs []string
	Fields        []Field
	Limit         int // 0 без ограничения
	Offset        int
}

// Validate проверяет запрос
func (q Query) Validate() error {
	for _, f := range q.Fields {
		if _, err := ParseField(string(f)); err != nil {
			return err
		}
	}
	if q.Limit < 0 || q.Offset < 0 {
		return fmt.Errorf("%w: negative limit or offset", ErrInvalidQuery)
	}
	return nil
}

// SearchFields поля поиска, по умолчанию только слова
func (q Query) SearchFields() []Field {
	if len(q.Fields) == 0 {
		return []Field{FieldWords}
	}
	return q.Fields
}

// Term значение поиска, приведённое к форме хранения поля
func (q Query) Term(f Field) string {
	if f == FieldWords {
		return vcf.Normalize(strings.TrimSpace(q.Value))
	}
	return strings.ToLower(strings.TrimSpace(q.Value))
}

// Matches предикат в памяти, эквивалентный SQL фильтру адаптера SQLite
func (q Query) Matches(c *models.Contact) bool {
	if len(q.CollectionIDs) > 0 && !slices.Contains(q.CollectionIDs, c.CollectionID) {
		return false
	}
	if strings.TrimSpace(q.Value) == "" {
		return true
	}
	for _, f := range q.SearchFields() {
		if strings.Contains(strings.ToLower(FieldValue(c, f)), q.Term(f)) {
			return true
		}
	}
	return false
}

// FieldValue значение поля индекса записи
func FieldValue(c *models.Contact, f Field) string {
	switch f {
	case FieldName:
		return c.Index.Name
	case FieldFirstName:
		return c.Index.FirstName
	case FieldSurname:
		return c.Index.Surname
	case FieldEmail:
		return c.Index.Email
	case FieldWords:
		return c.Index.Words
	}
	return ""
}

// Page применяет Offset и Limit к уже отсортированному срезу
func (q Query) Page(contacts []*models.Contact) []*models.Contact {
	if q.Offset >= len(contacts) {
		return []*models.Contact{}
	}
	contacts = contacts[q.Offset:]
	if q.Limit > 0 && q.Limit < len(contacts) {
		contacts = contacts[:q.Limit]
	}
	return contacts
}

// SortContacts упорядочивает записи по имени без учёта регистра, затем по LocalID
func SortContacts(contacts []*models.Contact) {
	slices.SortFunc(contacts, func(a, b *models.Contact) int {
		if c := strings.Compare(strings.ToLower(a.Index.Name), strings.ToLower(b.Index.Name)); c != 0 {
			return c
		}
		switch {
		case a.LocalID < b.LocalID:
			return -1
		case a.LocalID > b.LocalID:
			return 1
		}
		return 0
	})
}
