package sync

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/carddavsync/internal/carddav"
	"github.com/iudanet/carddavsync/internal/carddav/carddavtest"
	"github.com/iudanet/carddavsync/internal/models"
	"github.com/iudanet/carddavsync/internal/storage"
	"github.com/iudanet/carddavsync/internal/storage/sqlite"
	"github.com/iudanet/carddavsync/internal/validation"
)

// plainBox SecretBox без шифрования для тестов
func plainBox() *SecretBoxMock {
	return &SecretBoxMock{
		SealFunc: func(plaintext []byte) ([]byte, error) { return append([]byte("sealed:"), plaintext...), nil },
		OpenFunc: func(ciphertext []byte) ([]byte, error) {
			return []byte(string(ciphertext)[len("sealed:"):]), nil
		},
	}
}

func setupStore(t *testing.T) *sqlite.Storage {
	t.Helper()
	s, err := sqlite.New(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestManager_EndToEnd(t *testing.T) {
	ctx := context.Background()
	srv := carddavtest.NewServer(t)
	srv.Username = "alice"
	srv.Password = "s3cret"
	srv.Put("A", card("Anna"))
	srv.Put("B", card("Boris"))

	store := setupStore(t)
	box := plainBox()
	m := NewManager(store, store, box, CardDAVFactory(carddav.WithHTTPClient(srv.Client())))

	col, err := m.RegisterCollection(ctx, NewCollection{
		UserID:   "user-1",
		Label:    "Personal",
		URL:      srv.CollectionURL(),
		Username: "alice",
		Password: "s3cret",
	})
	require.NoError(t, err)
	assert.Equal(t, []byte("sealed:s3cret"), col.Secret)
	require.NotNil(t, col.LastSyncAt)
	assert.True(t, col.LastSyncClean)
	assert.Empty(t, col.LastSyncError)

	// первый проход закэшировал оба ресурса
	meta, err := store.ListMetadata(ctx, col.ID)
	require.NoError(t, err)
	require.Len(t, meta, 2)
	a, _ := srv.Get("A")
	assert.Equal(t, a.ETag, meta["A"].ETag)
	assert.Equal(t, a.LastModified, meta["A"].LastModified)

	// изменения на сервере
	srv.Put("A", card("Anna Karenina"))
	srv.Remove("B")
	srv.Put("C", card("Clara"))

	res, err := m.SynchronizeCollection(ctx, col.ID)
	require.NoError(t, err)
	assert.True(t, res.AnyChange)
	assert.True(t, res.Clean)
	assert.Equal(t, 1, res.Added)
	assert.Equal(t, 1, res.Updated)
	assert.Equal(t, 1, res.Deleted)

	got, err := store.GetContact(ctx, col.ID, "A")
	require.NoError(t, err)
	assert.Equal(t, "Anna Karenina", got.Index.Name)

	// запись с клиента
	localID, err := m.PushCreate(ctx, col.ID, card("Dora"))
	require.NoError(t, err)
	created, err := store.GetContactByLocalID(ctx, col.ID, localID)
	require.NoError(t, err)
	assert.True(t, carddav.ValidResourceID(created.ResourceID))
	_, ok := srv.Get(created.ResourceID)
	assert.True(t, ok)

	require.NoError(t, m.PushUpdate(ctx, col.ID, localID, card("Dora Maar")))
	updated, err := store.GetContactByLocalID(ctx, col.ID, localID)
	require.NoError(t, err)
	assert.Equal(t, "Dora Maar", updated.Index.Name)

	n, err := m.PushDelete(ctx, col.ID, []int64{localID})
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	_, ok = srv.Get(created.ResourceID)
	assert.False(t, ok)

	// повторный проход ничего не меняет и не загружает тела
	gets := srv.Count("GET")
	res, err = m.SynchronizeCollection(ctx, col.ID)
	require.NoError(t, err)
	assert.False(t, res.AnyChange)
	assert.Equal(t, gets, srv.Count("GET"))

	require.NoError(t, m.RemoveCollection(ctx, "user-1", col.ID))
	meta, err = store.ListMetadata(ctx, col.ID)
	require.NoError(t, err)
	assert.Empty(t, meta)
	_, err = store.GetCollection(ctx, col.ID)
	assert.ErrorIs(t, err, storage.ErrCollectionNotFound)
}

func TestManager_RegisterCollection_Rejects(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid input", func(t *testing.T) {
		store := setupStore(t)
		factoryCalls := 0
		m := NewManager(store, store, plainBox(), func(c *models.Collection, password string) (Remote, error) {
			factoryCalls++
			return newFakeRemote(), nil
		})

		_, err := m.RegisterCollection(ctx, NewCollection{UserID: "user-1", Label: "x", URL: "ftp://example.com/"})
		require.ErrorIs(t, err, validation.ErrInvalid)
		assert.Zero(t, factoryCalls)
		assert.Equal(t, KindInvalid, ErrorKind(err))
	})

	t.Run("unreachable server", func(t *testing.T) {
		store := setupStore(t)
		remote := newFakeRemote()
		remote.ProbeFunc = func(ctx context.Context) error {
			return &carddav.StatusError{Method: "OPTIONS", Path: "/", StatusCode: 401}
		}
		m := NewManager(store, store, plainBox(), func(c *models.Collection, password string) (Remote, error) {
			return remote, nil
		})

		_, err := m.RegisterCollection(ctx, NewCollection{UserID: "user-1", Label: "x", URL: "https://dav.example.com/"})
		require.ErrorIs(t, err, ErrConnectionFailure)
		assert.Len(t, remote.CloseCalls(), 1)

		cols, err := store.ListCollections(ctx, "user-1")
		require.NoError(t, err)
		assert.Empty(t, cols)
	})
}

func seedCollection(t *testing.T, store *sqlite.Storage, userID string, readOnly bool) *models.Collection {
	t.Helper()
	col := &models.Collection{
		ID:       uuid.New().String(),
		UserID:   userID,
		Label:    "Contacts",
		URL:      "https://dav.example.com/contacts/",
		Username: "alice",
		Secret:   []byte("sealed:pw"),
		ReadOnly: readOnly,
	}
	require.NoError(t, store.CreateCollection(context.Background(), col))
	return col
}

func TestManager_SynchronizeCollection_RecordsFailure(t *testing.T) {
	ctx := context.Background()
	store := setupStore(t)
	col := seedCollection(t, store, "user-1", false)

	remote := newFakeRemote()
	remote.CheckConnectionFunc = func(ctx context.Context) bool { return false }

	var gotPassword string
	m := NewManager(store, store, plainBox(), func(c *models.Collection, password string) (Remote, error) {
		gotPassword = password
		return remote, nil
	}, WithClock(func() time.Time { return time.Unix(1700000000, 0) }))

	res, err := m.SynchronizeCollection(ctx, col.ID)
	require.ErrorIs(t, err, ErrConnectionFailure)
	assert.False(t, res.Clean)
	assert.False(t, res.AnyChange)
	assert.Equal(t, "pw", gotPassword)
	assert.Len(t, remote.CloseCalls(), 1)

	saved, err := store.GetCollection(ctx, col.ID)
	require.NoError(t, err)
	require.NotNil(t, saved.LastSyncAt)
	assert.Equal(t, int64(1700000000), saved.LastSyncAt.Unix())
	assert.False(t, saved.LastSyncClean)
	assert.Equal(t, KindConnection, saved.LastSyncError)
}

func TestManager_SynchronizeCollection_NotFound(t *testing.T) {
	store := setupStore(t)
	m := NewManager(store, store, plainBox(), nil)

	_, err := m.SynchronizeCollection(context.Background(), "missing")
	assert.ErrorIs(t, err, storage.ErrCollectionNotFound)
}

func TestManager_SameCollectionNeverOverlaps(t *testing.T) {
	store := setupStore(t)
	col := seedCollection(t, store, "user-1", false)

	var active, maxActive int32
	factory := func(c *models.Collection, password string) (Remote, error) {
		remote := newFakeRemote(element("A", "1"))
		remote.CheckConnectionFunc = func(ctx context.Context) bool {
			n := atomic.AddInt32(&active, 1)
			for {
				cur := atomic.LoadInt32(&maxActive)
				if n <= cur || atomic.CompareAndSwapInt32(&maxActive, cur, n) {
					break
				}
			}
			time.Sleep(20 * time.Millisecond)
			atomic.AddInt32(&active, -1)
			return true
		}
		return remote, nil
	}
	m := NewManager(store, store, plainBox(), factory)

	var wg sync.WaitGroup
	for range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := m.SynchronizeCollection(context.Background(), col.ID)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&maxActive))
	assert.Empty(t, m.locks)
}

func TestManager_LocksReleased(t *testing.T) {
	ctx := context.Background()
	store := setupStore(t)
	first := seedCollection(t, store, "user-1", false)
	second := seedCollection(t, store, "user-1", false)

	factory := func(c *models.Collection, password string) (Remote, error) {
		return newFakeRemote(element("A", "1")), nil
	}
	m := NewManager(store, store, plainBox(), factory)

	results, err := m.SynchronizeAllCollectionsForUser(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Empty(t, m.locks)

	_, err = m.SynchronizeCollection(ctx, first.ID)
	require.NoError(t, err)
	require.NoError(t, m.RemoveCollection(ctx, "user-1", first.ID))
	require.NoError(t, m.RemoveCollection(ctx, "user-1", second.ID))
	assert.Empty(t, m.locks)

	_, err = m.SynchronizeCollection(ctx, first.ID)
	require.ErrorIs(t, err, storage.ErrCollectionNotFound)
	assert.Empty(t, m.locks)
}

func TestManager_SynchronizeAll(t *testing.T) {
	ctx := context.Background()
	store := setupStore(t)
	ok1 := seedCollection(t, store, "user-1", false)
	ok2 := seedCollection(t, store, "user-2", false)
	broken := seedCollection(t, store, "user-2", false)

	factory := func(c *models.Collection, password string) (Remote, error) {
		remote := newFakeRemote(element("A", "1"), element("B", "1"))
		if c.ID == broken.ID {
			remote.CheckConnectionFunc = func(ctx context.Context) bool { return false }
		}
		return remote, nil
	}
	m := NewManager(store, store, plainBox(), factory, WithWorkers(2))

	results, err := m.SynchronizeAll(ctx)
	require.NoError(t, err)
	require.Len(t, results, 3)

	byID := make(map[string]CollectionResult)
	for _, r := range results {
		byID[r.Collection.ID] = r
	}
	for _, id := range []string{ok1.ID, ok2.ID} {
		require.NoError(t, byID[id].Err)
		assert.Equal(t, 2, byID[id].Result.Added)
	}
	assert.ErrorIs(t, byID[broken.ID].Err, ErrConnectionFailure)

	userResults, err := m.SynchronizeAllCollectionsForUser(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, userResults, 1)
	assert.Equal(t, ok1.ID, userResults[0].Collection.ID)
	assert.False(t, userResults[0].Result.AnyChange)
}

func TestManager_SynchronizeAll_Cancelled(t *testing.T) {
	store := setupStore(t)
	seedCollection(t, store, "user-1", false)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	m := NewManager(store, store, plainBox(), func(c *models.Collection, password string) (Remote, error) {
		return newFakeRemote(), nil
	})
	results, err := m.SynchronizeAll(ctx)
	require.ErrorIs(t, err, context.Canceled)
	require.Len(t, results, 1)
	assert.ErrorIs(t, results[0].Err, context.Canceled)
}

func TestManager_Push_ReadOnlyMakesNoCalls(t *testing.T) {
	store := setupStore(t)
	col := seedCollection(t, store, "user-1", true)

	m := NewManager(store, store, plainBox(), func(c *models.Collection, password string) (Remote, error) {
		t.Fatal("remote must not be created for read-only collection")
		return nil, nil
	})

	_, err := m.PushCreate(context.Background(), col.ID, card("x"))
	assert.ErrorIs(t, err, ErrReadOnly)
	assert.ErrorIs(t, m.PushUpdate(context.Background(), col.ID, 1, card("x")), ErrReadOnly)
	_, err = m.PushDelete(context.Background(), col.ID, []int64{1})
	assert.ErrorIs(t, err, ErrReadOnly)
}

func TestManager_CollectionOwnership(t *testing.T) {
	ctx := context.Background()
	store := setupStore(t)
	col := seedCollection(t, store, "user-1", false)
	m := NewManager(store, store, plainBox(), nil)

	_, err := m.Collection(ctx, "user-2", col.ID)
	assert.ErrorIs(t, err, storage.ErrCollectionNotFound)
	assert.ErrorIs(t, m.RemoveCollection(ctx, "user-2", col.ID), storage.ErrCollectionNotFound)

	got, err := m.Collection(ctx, "user-1", col.ID)
	require.NoError(t, err)
	assert.Equal(t, col.ID, got.ID)

	list, err := m.ListCollections(ctx, "user-1")
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestManager_DiscoverAddressBooks(t *testing.T) {
	remote := newFakeRemote()
	remote.DiscoverAddressBooksFunc = func(ctx context.Context) ([]models.AddressBook, error) {
		return []models.AddressBook{{Href: "https://dav.example.com/ab/work/", DisplayName: "Work"}}, nil
	}

	var gotUser, gotPassword string
	m := NewManager(setupStore(t), nil, plainBox(), func(c *models.Collection, password string) (Remote, error) {
		gotUser, gotPassword = c.Username, password
		return remote, nil
	})

	books, err := m.DiscoverAddressBooks(context.Background(), "https://dav.example.com/ab/", "alice", "pw")
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, "Work", books[0].DisplayName)
	assert.Equal(t, "alice", gotUser)
	assert.Equal(t, "pw", gotPassword)
	assert.Len(t, remote.CloseCalls(), 1)

	_, err = m.DiscoverAddressBooks(context.Background(), "not a url", "", "")
	assert.True(t, errors.Is(err, validation.ErrInvalid))
}
