package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/iudanet/carddavsync/internal/contacts"
	"github.com/iudanet/carddavsync/internal/models"
	"github.com/iudanet/carddavsync/internal/vcf"
)

// SearchParams параметры поиска по кэшу
type SearchParams struct {
	Query         string
	CollectionIDs []string
	Fields        []string
	Limit         int
	Offset        int
}

// SearchContacts печатает страницу контактов из локального кэша.
// Пустой Query перечисляет все контакты.
func (c *Cli) SearchContacts(ctx context.Context, p SearchParams) error {
	if err := c.requireUser(); err != nil {
		return err
	}

	page, err := c.contacts.Search(ctx, c.userID, contacts.SearchParams{
		Value:         p.Query,
		CollectionIDs: p.CollectionIDs,
		Fields:        p.Fields,
		Limit:         p.Limit,
		Offset:        p.Offset,
	})
	if err != nil {
		return fmt.Errorf("failed to search contacts: %w", err)
	}

	if page.Total == 0 {
		c.io.Println("No contacts found.")
		return nil
	}

	c.io.Printf("Found %d contact(s), showing %d from offset %d:\n", page.Total, len(page.Contacts), page.Offset)
	c.io.Println()
	for _, ct := range page.Contacts {
		c.printContact(ct)
	}

	if next := page.Offset + len(page.Contacts); next < page.Total {
		c.io.Printf("Use --offset %d to see more.\n", next)
	}
	return nil
}

func (c *Cli) printContact(ct *models.Contact) {
	name := ct.Index.Name
	if name == "" {
		name = "(no name)"
	}
	c.io.Printf("%d. %s\n", ct.LocalID, name)
	c.io.Printf("   Collection: %s\n", ct.CollectionID)
	if ct.Index.Email != "" {
		c.io.Printf("   Email:      %s\n", ct.Index.Email)
	}
	c.io.Println()
}

// ShowContact печатает исходный vCard документ
func (c *Cli) ShowContact(ctx context.Context, collectionID string, localID int64) error {
	if err := c.requireUser(); err != nil {
		return err
	}

	ct, err := c.contacts.Get(ctx, c.userID, collectionID, localID)
	if err != nil {
		return fmt.Errorf("failed to get contact: %w", err)
	}

	doc := ct.VCard
	if !strings.HasSuffix(doc, "\n") {
		doc += "\n"
	}
	if _, err := c.io.Write([]byte(doc)); err != nil {
		return fmt.Errorf("failed to write contact: %w", err)
	}
	return nil
}

// AddContact создаёт контакт на сервере и в кэше.
// Документ берётся из file, если он задан, иначе собирается из card.
func (c *Cli) AddContact(ctx context.Context, collectionID string, card vcf.Card, file string) error {
	col, err := c.ownedCollection(ctx, collectionID)
	if err != nil {
		return err
	}

	doc, err := documentFrom(file, func() (string, error) { return vcf.Build(card) })
	if err != nil {
		return err
	}

	localID, err := c.manager.PushCreate(ctx, col.ID, doc)
	if err != nil {
		return fmt.Errorf("failed to create contact: %w", err)
	}

	c.io.Println("✓ Contact created successfully!")
	c.io.Printf("Local ID: %d\n", localID)
	return nil
}

// EditContact перезаписывает контакт. Без file заданные поля card
// переносятся в текущий документ из кэша.
func (c *Cli) EditContact(ctx context.Context, collectionID string, localID int64, card vcf.Card, file string) error {
	col, err := c.ownedCollection(ctx, collectionID)
	if err != nil {
		return err
	}

	doc, err := documentFrom(file, func() (string, error) {
		current, err := c.contacts.Get(ctx, c.userID, col.ID, localID)
		if err != nil {
			return "", fmt.Errorf("failed to get contact: %w", err)
		}
		return vcf.Merge(current.VCard, card)
	})
	if err != nil {
		return err
	}

	if err := c.manager.PushUpdate(ctx, col.ID, localID, doc); err != nil {
		return fmt.Errorf("failed to update contact: %w", err)
	}

	c.io.Println("✓ Contact updated successfully!")
	return nil
}

// DeleteContacts удаляет контакты на сервере и в кэше
func (c *Cli) DeleteContacts(ctx context.Context, collectionID string, localIDs []int64) error {
	col, err := c.ownedCollection(ctx, collectionID)
	if err != nil {
		return err
	}

	n, err := c.manager.PushDelete(ctx, col.ID, localIDs)
	if err != nil {
		if n > 0 {
			c.io.Printf("Deleted %d of %d contact(s) before the error.\n", n, len(localIDs))
		}
		return fmt.Errorf("failed to delete contacts: %w", err)
	}

	c.io.Printf("✓ Deleted %d contact(s).\n", n)
	return nil
}

func documentFrom(file string, build func() (string, error)) (string, error) {
	if file == "" {
		return build()
	}
	content, err := os.ReadFile(file)
	if err != nil {
		return "", fmt.Errorf("failed to read vcard file: %w", err)
	}
	if strings.TrimSpace(string(content)) == "" {
		return "", fmt.Errorf("vcard file is empty")
	}
	return string(content), nil
}
