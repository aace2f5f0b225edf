package cli

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/carddavsync/internal/carddav"
	"github.com/iudanet/carddavsync/internal/contacts"
	"github.com/iudanet/carddavsync/internal/models"
	"github.com/iudanet/carddavsync/internal/storage"
	"github.com/iudanet/carddavsync/internal/vcf"
)

const adaCard = "BEGIN:VCARD\r\nVERSION:3.0\r\nUID:ada\r\nFN:Ada Lovelace\r\nN:Lovelace;Ada;;;\r\nEMAIL:ada@example.com\r\nEND:VCARD\r\n"

func TestCli_SearchContacts(t *testing.T) {
	reader := &contacts.ServiceMock{
		SearchFunc: func(ctx context.Context, userID string, params contacts.SearchParams) (*contacts.Page, error) {
			return &contacts.Page{
				Contacts: []*models.Contact{
					{LocalID: 3, CollectionID: "col-1", Index: models.IndexFields{Name: "Ada Lovelace", Email: "ada@example.com"}},
					{LocalID: 4, CollectionID: "col-1"},
				},
				Total:  5,
				Limit:  2,
				Offset: 0,
			}, nil
		},
	}
	c, out, _ := newTestCli(nil, reader)

	err := c.SearchContacts(context.Background(), SearchParams{
		Query:         "ada",
		CollectionIDs: []string{"col-1"},
		Fields:        []string{"name"},
		Limit:         2,
	})
	require.NoError(t, err)

	require.Len(t, reader.SearchCalls(), 1)
	call := reader.SearchCalls()[0]
	assert.Equal(t, testUser, call.UserID)
	assert.Equal(t, contacts.SearchParams{
		Value:         "ada",
		CollectionIDs: []string{"col-1"},
		Fields:        []string{"name"},
		Limit:         2,
	}, call.Params)

	s := out.String()
	assert.Contains(t, s, "Found 5 contact(s), showing 2 from offset 0")
	assert.Contains(t, s, "3. Ada Lovelace")
	assert.Contains(t, s, "Email:      ada@example.com")
	assert.Contains(t, s, "4. (no name)")
	assert.Contains(t, s, "Use --offset 2 to see more.")
}

func TestCli_SearchContacts_Empty(t *testing.T) {
	reader := &contacts.ServiceMock{
		SearchFunc: func(ctx context.Context, userID string, params contacts.SearchParams) (*contacts.Page, error) {
			return &contacts.Page{Limit: contacts.DefaultLimit}, nil
		},
	}
	c, out, _ := newTestCli(nil, reader)

	require.NoError(t, c.SearchContacts(context.Background(), SearchParams{}))
	assert.Contains(t, out.String(), "No contacts found.")
}

func TestCli_SearchContacts_InvalidField(t *testing.T) {
	reader := &contacts.ServiceMock{
		SearchFunc: func(ctx context.Context, userID string, params contacts.SearchParams) (*contacts.Page, error) {
			return nil, storage.ErrInvalidQuery
		},
	}
	c, _, _ := newTestCli(nil, reader)

	err := c.SearchContacts(context.Background(), SearchParams{Fields: []string{"phone"}})
	assert.ErrorIs(t, err, storage.ErrInvalidQuery)
}

func TestCli_ShowContact(t *testing.T) {
	reader := &contacts.ServiceMock{
		GetFunc: func(ctx context.Context, userID, collectionID string, localID int64) (*models.Contact, error) {
			if localID != 3 {
				return nil, storage.ErrContactNotFound
			}
			return &models.Contact{LocalID: 3, VCard: "BEGIN:VCARD\r\nEND:VCARD"}, nil
		},
	}
	c, out, _ := newTestCli(nil, reader)

	require.NoError(t, c.ShowContact(context.Background(), "col-1", 3))
	assert.Equal(t, "BEGIN:VCARD\r\nEND:VCARD\n", string(out.raw))

	err := c.ShowContact(context.Background(), "col-1", 9)
	assert.ErrorIs(t, err, storage.ErrContactNotFound)
}

func TestCli_AddContact(t *testing.T) {
	manager := ownedCollectionMock(&ManagerMock{
		PushCreateFunc: func(ctx context.Context, collectionID, document string) (int64, error) {
			return 42, nil
		},
	})
	c, out, _ := newTestCli(manager, nil)

	err := c.AddContact(context.Background(), "col-1", vcf.Card{
		GivenName:  "Ada",
		FamilyName: "Lovelace",
		Emails:     []string{"ada@example.com"},
	}, "")
	require.NoError(t, err)

	require.Len(t, manager.PushCreateCalls(), 1)
	doc := manager.PushCreateCalls()[0].Document
	assert.Contains(t, doc, "FN:Ada Lovelace")
	assert.Contains(t, doc, "EMAIL:ada@example.com")
	assert.Contains(t, out.String(), "Local ID: 42")
}

func TestCli_AddContact_FromFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "ada.vcf")
	require.NoError(t, os.WriteFile(file, []byte(adaCard), 0o600))

	manager := ownedCollectionMock(&ManagerMock{
		PushCreateFunc: func(ctx context.Context, collectionID, document string) (int64, error) {
			return 1, nil
		},
	})
	c, _, _ := newTestCli(manager, nil)

	require.NoError(t, c.AddContact(context.Background(), "col-1", vcf.Card{}, file))
	assert.Equal(t, adaCard, manager.PushCreateCalls()[0].Document)
}

func TestCli_AddContact_Errors(t *testing.T) {
	t.Run("no name", func(t *testing.T) {
		manager := ownedCollectionMock(&ManagerMock{})
		c, _, _ := newTestCli(manager, nil)

		err := c.AddContact(context.Background(), "col-1", vcf.Card{Emails: []string{"x@example.com"}}, "")
		assert.ErrorIs(t, err, vcf.ErrEmptyName)
	})

	t.Run("ids exhausted", func(t *testing.T) {
		manager := ownedCollectionMock(&ManagerMock{
			PushCreateFunc: func(ctx context.Context, collectionID, document string) (int64, error) {
				return 0, carddav.ErrIDExhausted
			},
		})
		c, _, _ := newTestCli(manager, nil)

		err := c.AddContact(context.Background(), "col-1", vcf.Card{FullName: "Ada"}, "")
		assert.ErrorIs(t, err, carddav.ErrIDExhausted)
	})

	t.Run("empty file", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "empty.vcf")
		require.NoError(t, os.WriteFile(file, []byte("  \n"), 0o600))
		manager := ownedCollectionMock(&ManagerMock{})
		c, _, _ := newTestCli(manager, nil)

		err := c.AddContact(context.Background(), "col-1", vcf.Card{}, file)
		require.Error(t, err)
		assert.Empty(t, manager.PushCreateCalls())
	})
}

func TestCli_EditContact_Merges(t *testing.T) {
	reader := &contacts.ServiceMock{
		GetFunc: func(ctx context.Context, userID, collectionID string, localID int64) (*models.Contact, error) {
			return &models.Contact{LocalID: localID, CollectionID: collectionID, VCard: adaCard}, nil
		},
	}
	manager := ownedCollectionMock(&ManagerMock{
		PushUpdateFunc: func(ctx context.Context, collectionID string, localID int64, document string) error {
			return nil
		},
	})
	c, out, _ := newTestCli(manager, reader)

	err := c.EditContact(context.Background(), "col-1", 7, vcf.Card{Emails: []string{"ada@analytical.org"}}, "")
	require.NoError(t, err)

	require.Len(t, manager.PushUpdateCalls(), 1)
	call := manager.PushUpdateCalls()[0]
	assert.Equal(t, int64(7), call.LocalID)
	assert.Contains(t, call.Document, "FN:Ada Lovelace")
	assert.Contains(t, call.Document, "UID:ada")
	assert.Contains(t, call.Document, "EMAIL:ada@analytical.org")
	assert.NotContains(t, call.Document, "ada@example.com")
	assert.Contains(t, out.String(), "✓ Contact updated successfully!")
}

func TestCli_EditContact_Missing(t *testing.T) {
	reader := &contacts.ServiceMock{
		GetFunc: func(ctx context.Context, userID, collectionID string, localID int64) (*models.Contact, error) {
			return nil, storage.ErrContactNotFound
		},
	}
	manager := ownedCollectionMock(&ManagerMock{})
	c, _, _ := newTestCli(manager, reader)

	err := c.EditContact(context.Background(), "col-1", 7, vcf.Card{Note: "x"}, "")
	assert.ErrorIs(t, err, storage.ErrContactNotFound)
	assert.Empty(t, manager.PushUpdateCalls())
}

func TestCli_DeleteContacts(t *testing.T) {
	t.Run("all deleted", func(t *testing.T) {
		manager := ownedCollectionMock(&ManagerMock{
			PushDeleteFunc: func(ctx context.Context, collectionID string, localIDs []int64) (int, error) {
				return len(localIDs), nil
			},
		})
		c, out, _ := newTestCli(manager, nil)

		require.NoError(t, c.DeleteContacts(context.Background(), "col-1", []int64{1, 2}))
		assert.Equal(t, []int64{1, 2}, manager.PushDeleteCalls()[0].LocalIDs)
		assert.Contains(t, out.String(), "✓ Deleted 2 contact(s).")
	})

	t.Run("partial", func(t *testing.T) {
		manager := ownedCollectionMock(&ManagerMock{
			PushDeleteFunc: func(ctx context.Context, collectionID string, localIDs []int64) (int, error) {
				return 1, errors.New("connection reset")
			},
		})
		c, out, _ := newTestCli(manager, nil)

		err := c.DeleteContacts(context.Background(), "col-1", []int64{1, 2, 3})
		require.Error(t, err)
		assert.Contains(t, out.String(), "Deleted 1 of 3 contact(s) before the error.")
	})

	t.Run("foreign collection", func(t *testing.T) {
		manager := ownedCollectionMock(&ManagerMock{})
		out := &output{}
		c := New(newTestIO(out), manager, nil, "mallory")

		err := c.DeleteContacts(context.Background(), "col-1", []int64{1})
		assert.ErrorIs(t, err, storage.ErrCollectionNotFound)
		assert.Empty(t, manager.PushDeleteCalls())
	})
}
