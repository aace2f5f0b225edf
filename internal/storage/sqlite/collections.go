package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/iudanet/carddavsync/internal/models"
	"github.com/iudanet/carddavsync/internal/storage"
)

const collectionColumns = `
	id, user_id, label, url, username, secret, read_only,
	created_at, updated_at, last_sync_at, last_sync_clean, last_sync_error
`

// CreateCollection stores a new collection
func (s *Storage) CreateCollection(ctx context.Context, c *models.Collection) error {
	now := time.Now()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	if c.UpdatedAt.IsZero() {
		c.UpdatedAt = now
	}

	query := `
		INSERT INTO collections (
			id, user_id, label, url, username, secret, read_only, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		c.ID,
		c.UserID,
		c.Label,
		c.URL,
		c.Username,
		c.Secret,
		boolToInt(c.ReadOnly),
		c.CreatedAt.Unix(),
		c.UpdatedAt.Unix(),
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed: collections.id") {
			return storage.ErrCollectionExists
		}
		return fmt.Errorf("failed to insert collection: %w", err)
	}

	return nil
}

// GetCollection returns a collection by id
func (s *Storage) GetCollection(ctx context.Context, id string) (*models.Collection, error) {
	query := `SELECT ` + collectionColumns + ` FROM collections WHERE id = ?`

	c, err := scanCollection(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrCollectionNotFound
		}
		return nil, fmt.Errorf("failed to get collection: %w", err)
	}
	return c, nil
}

// ListCollections returns collections of one user
func (s *Storage) ListCollections(ctx context.Context, userID string) ([]*models.Collection, error) {
	query := `SELECT ` + collectionColumns + ` FROM collections WHERE user_id = ? ORDER BY label COLLATE NOCASE, id`
	return s.queryCollections(ctx, query, userID)
}

// ListAllCollections returns every registered collection
func (s *Storage) ListAllCollections(ctx context.Context) ([]*models.Collection, error) {
	query := `SELECT ` + collectionColumns + ` FROM collections ORDER BY user_id, label COLLATE NOCASE, id`
	return s.queryCollections(ctx, query)
}

// UpdateSyncStatus records the outcome of the last pass
func (s *Storage) UpdateSyncStatus(ctx context.Context, id string, status models.SyncStatus) error {
	query := `
		UPDATE collections
		SET last_sync_at = ?, last_sync_clean = ?, last_sync_error = ?
		WHERE id = ?
	`

	res, err := s.db.ExecContext(ctx, query, status.At.Unix(), boolToInt(status.Clean), status.Error, id)
	if err != nil {
		return fmt.Errorf("failed to update sync status: %w", err)
	}
	return requireAffected(res, storage.ErrCollectionNotFound)
}

// DeleteCollection removes the collection and, in the same transaction, its contacts
func (s *Storage) DeleteCollection(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, `DELETE FROM contacts WHERE collection_id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete collection contacts: %w", err)
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM collections WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete collection: %w", err)
	}
	if err := requireAffected(res, storage.ErrCollectionNotFound); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (s *Storage) queryCollections(ctx context.Context, query string, args ...any) (collections []*models.Collection, err error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query collections: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	collections = make([]*models.Collection, 0)
	for rows.Next() {
		c, err := scanCollection(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan collection: %w", err)
		}
		collections = append(collections, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return collections, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCollection(row rowScanner) (*models.Collection, error) {
	c := &models.Collection{}
	var (
		readOnly, clean      int
		createdAt, updatedAt int64
		lastSyncAt           sql.NullInt64
	)

	err := row.Scan(
		&c.ID,
		&c.UserID,
		&c.Label,
		&c.URL,
		&c.Username,
		&c.Secret,
		&readOnly,
		&createdAt,
		&updatedAt,
		&lastSyncAt,
		&clean,
		&c.LastSyncError,
	)
	if err != nil {
		return nil, err
	}

	c.ReadOnly = intToBool(readOnly)
	c.LastSyncClean = intToBool(clean)
	c.CreatedAt = unixToTime(createdAt)
	c.UpdatedAt = unixToTime(updatedAt)
	if lastSyncAt.Valid {
		t := unixToTime(lastSyncAt.Int64)
		c.LastSyncAt = &t
	}
	return c, nil
}

func requireAffected(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if n == 0 {
		return notFound
	}
	return nil
}
