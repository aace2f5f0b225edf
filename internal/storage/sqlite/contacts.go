package sqlite

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/iudanet/carddavsync/internal/models"
	"github.com/iudanet/carddavsync/internal/storage"
	sqlitedriver "modernc.org/sqlite"
)

const contactColumns = `
	id, collection_id, resource_id, etag, last_modified, vcard,
	name, firstname, surname, email, words, updated_at
`

// lowerFunc SQL функция приведения к нижнему регистру по правилам Unicode.
// Встроенные lower() и LIKE в SQLite понимают только ASCII.
const lowerFunc = "unicode_lower"

func init() {
	sqlitedriver.MustRegisterDeterministicScalarFunction(lowerFunc, 1, unicodeLower)
}

func unicodeLower(_ *sqlitedriver.FunctionContext, args []driver.Value) (driver.Value, error) {
	switch v := args[0].(type) {
	case nil:
		return nil, nil
	case string:
		return strings.ToLower(v), nil
	case []byte:
		return strings.ToLower(string(v)), nil
	default:
		return v, nil
	}
}

// выражения поиска по колонкам индекса. words уже нормализованы при записи.
var searchColumns = map[storage.Field]string{
	storage.FieldName:      lowerFunc + "(name)",
	storage.FieldFirstName: lowerFunc + "(firstname)",
	storage.FieldSurname:   lowerFunc + "(surname)",
	storage.FieldEmail:     lowerFunc + "(email)",
	storage.FieldWords:     "words",
}

// ListMetadata returns resourceID -> change tokens for one collection
func (s *Storage) ListMetadata(ctx context.Context, collectionID string) (meta map[string]models.SyncMeta, err error) {
	query := `SELECT resource_id, etag, last_modified FROM contacts WHERE collection_id = ?`

	rows, err := s.db.QueryContext(ctx, query, collectionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query metadata: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	meta = make(map[string]models.SyncMeta)
	for rows.Next() {
		var id string
		var m models.SyncMeta
		if err := rows.Scan(&id, &m.ETag, &m.LastModified); err != nil {
			return nil, fmt.Errorf("failed to scan metadata: %w", err)
		}
		meta[id] = m
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return meta, nil
}

// GetDocument returns raw vCard of a cached resource
func (s *Storage) GetDocument(ctx context.Context, collectionID, resourceID string) (string, error) {
	query := `SELECT vcard FROM contacts WHERE collection_id = ? AND resource_id = ?`

	var doc string
	err := s.db.QueryRowContext(ctx, query, collectionID, resourceID).Scan(&doc)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", storage.ErrContactNotFound
		}
		return "", fmt.Errorf("failed to get document: %w", err)
	}
	return doc, nil
}

// GetContact returns a cached record by remote resource id
func (s *Storage) GetContact(ctx context.Context, collectionID, resourceID string) (*models.Contact, error) {
	query := `SELECT ` + contactColumns + ` FROM contacts WHERE collection_id = ? AND resource_id = ?`
	return s.getContact(ctx, query, collectionID, resourceID)
}

// GetContactByLocalID returns a cached record by local id
func (s *Storage) GetContactByLocalID(ctx context.Context, collectionID string, localID int64) (*models.Contact, error) {
	query := `SELECT ` + contactColumns + ` FROM contacts WHERE collection_id = ? AND id = ?`
	return s.getContact(ctx, query, collectionID, localID)
}

// Upsert inserts or overwrites the record keyed by (collection_id, resource_id)
func (s *Storage) Upsert(ctx context.Context, c *models.Contact) error {
	c.UpdatedAt = time.Now()

	query := `
		INSERT INTO contacts (
			collection_id, resource_id, etag, last_modified, vcard,
			name, firstname, surname, email, words, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (collection_id, resource_id) DO UPDATE SET
			etag = excluded.etag,
			last_modified = excluded.last_modified,
			vcard = excluded.vcard,
			name = excluded.name,
			firstname = excluded.firstname,
			surname = excluded.surname,
			email = excluded.email,
			words = excluded.words,
			updated_at = excluded.updated_at
		RETURNING id
	`

	err := s.db.QueryRowContext(ctx, query,
		c.CollectionID,
		c.ResourceID,
		c.ETag,
		c.LastModified,
		c.VCard,
		c.Index.Name,
		c.Index.FirstName,
		c.Index.Surname,
		c.Index.Email,
		c.Index.Words,
		c.UpdatedAt.Unix(),
	).Scan(&c.LocalID)
	if err != nil {
		if strings.Contains(err.Error(), "FOREIGN KEY constraint failed") {
			return storage.ErrCollectionNotFound
		}
		return fmt.Errorf("failed to upsert contact: %w", err)
	}
	return nil
}

// Delete removes one record
func (s *Storage) Delete(ctx context.Context, collectionID, resourceID string) error {
	query := `DELETE FROM contacts WHERE collection_id = ? AND resource_id = ?`
	if _, err := s.db.ExecContext(ctx, query, collectionID, resourceID); err != nil {
		return fmt.Errorf("failed to delete contact: %w", err)
	}
	return nil
}

// DeleteAllForCollection removes every record of a collection
func (s *Storage) DeleteAllForCollection(ctx context.Context, collectionID string) (int, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM contacts WHERE collection_id = ?`, collectionID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete collection contacts: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get affected rows: %w", err)
	}
	return int(n), nil
}

// Search returns records matching the query ordered by name
func (s *Storage) Search(ctx context.Context, q storage.Query) (contacts []*models.Contact, err error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	where, args := buildWhere(q)
	query := `SELECT ` + contactColumns + ` FROM contacts ` + where + ` ORDER BY ` + lowerFunc + `(name), id`
	if q.Limit > 0 || q.Offset > 0 {
		limit := q.Limit
		if limit == 0 {
			limit = -1
		}
		query += ` LIMIT ? OFFSET ?`
		args = append(args, limit, q.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to search contacts: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	contacts = make([]*models.Contact, 0)
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan contact: %w", err)
		}
		contacts = append(contacts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return contacts, nil
}

// Count returns the number of records matching the query
func (s *Storage) Count(ctx context.Context, q storage.Query) (int, error) {
	if err := q.Validate(); err != nil {
		return 0, err
	}

	where, args := buildWhere(q)
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM contacts `+where, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count contacts: %w", err)
	}
	return n, nil
}

func (s *Storage) getContact(ctx context.Context, query string, args ...any) (*models.Contact, error) {
	c, err := scanContact(s.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrContactNotFound
		}
		return nil, fmt.Errorf("failed to get contact: %w", err)
	}
	return c, nil
}

// buildWhere строит параметризованное условие из типизированного запроса.
// Имена колонок берутся только из searchColumns.
func buildWhere(q storage.Query) (string, []any) {
	var (
		conds []string
		args  []any
	)

	if len(q.CollectionIDs) > 0 {
		placeholders := strings.TrimSuffix(strings.Repeat("?,", len(q.CollectionIDs)), ",")
		conds = append(conds, "collection_id IN ("+placeholders+")")
		for _, id := range q.CollectionIDs {
			args = append(args, id)
		}
	}

	if strings.TrimSpace(q.Value) != "" {
		var ors []string
		for _, f := range q.SearchFields() {
			column, ok := searchColumns[f]
			if !ok {
				continue
			}
			ors = append(ors, column+` LIKE ? ESCAPE '\'`)
			args = append(args, "%"+escapeLike(q.Term(f))+"%")
		}
		if len(ors) > 0 {
			conds = append(conds, "("+strings.Join(ors, " OR ")+")")
		}
	}

	if len(conds) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(conds, " AND "), args
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func scanContact(row rowScanner) (*models.Contact, error) {
	c := &models.Contact{}
	var updatedAt int64

	err := row.Scan(
		&c.LocalID,
		&c.CollectionID,
		&c.ResourceID,
		&c.ETag,
		&c.LastModified,
		&c.VCard,
		&c.Index.Name,
		&c.Index.FirstName,
		&c.Index.Surname,
		&c.Index.Email,
		&c.Index.Words,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	c.UpdatedAt = unixToTime(updatedAt)
	return c, nil
}
