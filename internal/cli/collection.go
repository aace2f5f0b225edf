package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/iudanet/carddavsync/internal/models"
	csync "github.com/iudanet/carddavsync/internal/sync"
)

// AddCollectionParams параметры регистрации коллекции
type AddCollectionParams struct {
	Passwords Passwords
	Label     string
	URL       string
	Username  string
	ReadOnly  bool
}

// AddCollection регистрирует коллекцию и выполняет первый проход
func (c *Cli) AddCollection(ctx context.Context, p AddCollectionParams) error {
	if err := c.requireUser(); err != nil {
		return err
	}

	c.io.Println("=== Add Collection ===")
	c.io.Println()

	password, err := c.readPassword(p.Username, p.Passwords)
	if err != nil {
		return err
	}

	label := p.Label
	if label == "" {
		label = p.URL
	}

	col, err := c.manager.RegisterCollection(ctx, csync.NewCollection{
		UserID:   c.userID,
		Label:    label,
		URL:      p.URL,
		Username: p.Username,
		Password: password,
		ReadOnly: p.ReadOnly,
	})
	if err != nil {
		return fmt.Errorf("failed to register collection: %w", err)
	}

	c.io.Println("✓ Collection registered successfully!")
	c.io.Println()
	c.printCollection(col)
	if !col.LastSyncClean {
		c.io.Println("Warning: initial synchronization did not complete. Run 'carddavsync sync " + col.ID + "' to retry.")
	}
	return nil
}

// ListCollections печатает коллекции текущего пользователя
func (c *Cli) ListCollections(ctx context.Context) error {
	if err := c.requireUser(); err != nil {
		return err
	}

	c.io.Println("=== Collections ===")
	c.io.Println()

	cols, err := c.manager.ListCollections(ctx, c.userID)
	if err != nil {
		return fmt.Errorf("failed to list collections: %w", err)
	}

	if len(cols) == 0 {
		c.io.Println("No collections found.")
		c.io.Println()
		c.io.Println("Use 'carddavsync collection add <url>' to register your first address book.")
		return nil
	}

	c.io.Printf("Found %d collection(s):\n", len(cols))
	c.io.Println()
	for i, col := range cols {
		c.io.Printf("%d. %s\n", i+1, col.Label)
		c.printCollection(col)
	}
	return nil
}

func (c *Cli) printCollection(col *models.Collection) {
	c.io.Printf("   ID:        %s\n", col.ID)
	c.io.Printf("   URL:       %s\n", col.URL)
	if col.Username != "" {
		c.io.Printf("   Username:  %s\n", col.Username)
	}
	if col.ReadOnly {
		c.io.Println("   Read-only: yes")
	}
	c.io.Printf("   Last sync: %s\n", syncStatus(col))
	c.io.Println()
}

func syncStatus(col *models.Collection) string {
	if col.LastSyncAt == nil {
		return "never"
	}
	at := col.LastSyncAt.Local().Format(time.DateTime)
	if col.LastSyncClean {
		return at + " (ok)"
	}
	if col.LastSyncError != "" {
		return at + " (" + col.LastSyncError + " error)"
	}
	return at + " (incomplete)"
}

// RemoveCollection удаляет коллекцию и её локальный кэш.
// Контакты на сервере не трогаются.
func (c *Cli) RemoveCollection(ctx context.Context, collectionID string) error {
	if err := c.requireUser(); err != nil {
		return err
	}

	if err := c.manager.RemoveCollection(ctx, c.userID, collectionID); err != nil {
		return fmt.Errorf("failed to remove collection: %w", err)
	}

	c.io.Println("✓ Collection removed. Contacts on the server were not changed.")
	return nil
}

// Discover ищет адресные книги по адресу сервера или принципала
func (c *Cli) Discover(ctx context.Context, url, username string, passwords Passwords) error {
	c.io.Println("=== Discovery ===")
	c.io.Println()

	password, err := c.readPassword(username, passwords)
	if err != nil {
		return err
	}

	books, err := c.manager.DiscoverAddressBooks(ctx, url, username, password)
	if err != nil {
		return fmt.Errorf("discovery failed: %w", err)
	}

	if len(books) == 0 {
		c.io.Println("No address books found.")
		return nil
	}

	c.io.Printf("Found %d address book(s):\n", len(books))
	c.io.Println()
	for i, b := range books {
		name := b.DisplayName
		if name == "" {
			name = "(unnamed)"
		}
		c.io.Printf("%d. %s\n", i+1, name)
		c.io.Printf("   URL: %s\n", b.Href)
		c.io.Println()
	}
	return nil
}
