package server

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"github.com/iudanet/carddavsync/internal/carddav"
	"github.com/iudanet/carddavsync/internal/carddav/carddavtest"
	"github.com/iudanet/carddavsync/internal/contacts"
	"github.com/iudanet/carddavsync/internal/crypto"
	"github.com/iudanet/carddavsync/internal/server/handlers"
	"github.com/iudanet/carddavsync/internal/storage/sqlite"
	csync "github.com/iudanet/carddavsync/internal/sync"
	"github.com/iudanet/carddavsync/pkg/api"
)

const testCard = "BEGIN:VCARD\r\nVERSION:3.0\r\nFN:%s\r\nEMAIL:%s@example.com\r\nEND:VCARD\r\n"

func card(name string) string {
	return strings.NewReplacer("%s", name).Replace(testCard)
}

type testEnv struct {
	dav     *carddavtest.Server
	api     *httptest.Server
	manager *csync.Manager
	jwt     handlers.JWTConfig
}

func setupEnv(t *testing.T) *testEnv {
	t.Helper()
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	dav := carddavtest.NewServer(t)

	store, err := sqlite.New(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	box, err := crypto.NewSecretBox(make([]byte, crypto.KeySize))
	require.NoError(t, err)

	manager := csync.NewManager(store, store, box,
		csync.CardDAVFactory(carddav.WithHTTPClient(dav.Client())),
		csync.WithManagerLogger(logger))

	cfg := Config{
		Version:      "test",
		JWT:          handlers.JWTConfig{Secret: []byte("jwt-secret"), AccessTokenTTL: time.Hour},
		RequestRate:  rate.Inf,
		RequestBurst: 1,
	}
	srv := New(cfg, manager, contacts.NewService(store, store), store, logger)
	apiSrv := httptest.NewServer(srv)
	t.Cleanup(apiSrv.Close)
	t.Cleanup(srv.limiter.Stop)

	return &testEnv{dav: dav, api: apiSrv, manager: manager, jwt: cfg.JWT}
}

func (e *testEnv) do(t *testing.T, method, path, userID, contentType, body string, scopes ...string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, e.api.URL+path, strings.NewReader(body))
	require.NoError(t, err)
	if userID != "" {
		token, _, err := handlers.GenerateAccessToken(e.jwt, userID, scopes...)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	resp, err := e.api.Client().Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func TestServer_Health(t *testing.T) {
	env := setupEnv(t)

	resp := env.do(t, http.MethodGet, "/api/v1/health", "", "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "test", decode[api.HealthResponse](t, resp).Version)
}

func TestServer_RequiresToken(t *testing.T) {
	env := setupEnv(t)

	resp := env.do(t, http.MethodPost, "/api/v1/sync", "", "", "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestServer_SyncAndPush(t *testing.T) {
	ctx := context.Background()
	env := setupEnv(t)
	env.dav.Put("A", card("Anna"))
	env.dav.Put("B", card("Boris"))

	col, err := env.manager.RegisterCollection(ctx, csync.NewCollection{
		UserID: "alice",
		Label:  "Personal",
		URL:    env.dav.CollectionURL(),
	})
	require.NoError(t, err)

	// изменения на сервере подхватываются синхронизацией пользователя
	env.dav.Put("C", card("Clara"))
	resp := env.do(t, http.MethodPost, "/api/v1/sync", "alice", "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	syncResp := decode[api.SyncResponse](t, resp)
	assert.Equal(t, api.MessageSynced, syncResp.Message)
	require.Len(t, syncResp.Results, 1)
	assert.Equal(t, 1, syncResp.Results[0].Added)
	assert.Equal(t, 2, syncResp.Results[0].Unchanged)

	// поиск по кэшу
	resp = env.do(t, http.MethodGet, "/api/v1/collections/"+col.ID+"/contacts?q=clara&field=name", "alice", "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	page := decode[api.ContactsResponse](t, resp)
	require.Equal(t, 1, page.Total)
	assert.Equal(t, "C", page.Contacts[0].ResourceID)

	// создание: сервер первым, затем узкая пересинхронизация
	resp = env.do(t, http.MethodPost, "/api/v1/collections/"+col.ID+"/contacts", "alice", "text/vcard", card("Dmitri"))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[api.CreateContactResponse](t, resp)
	assert.NotZero(t, created.LocalID)
	assert.Len(t, env.dav.IDs(), 4)

	path := "/api/v1/collections/" + col.ID + "/contacts/" + itoa(created.LocalID)
	resp = env.do(t, http.MethodGet, path, "alice", "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	got := decode[api.Contact](t, resp)
	assert.Equal(t, "Dmitri", got.Name)
	assert.True(t, carddav.ValidResourceID(got.ResourceID))

	// обновление
	resp = env.do(t, http.MethodPut, path, "alice", "text/vcard", card("Dmitri Ivanov"))
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	remote, ok := env.dav.Get(got.ResourceID)
	require.True(t, ok)
	assert.Contains(t, remote.Body, "Dmitri Ivanov")

	// удаление
	resp = env.do(t, http.MethodDelete, "/api/v1/collections/"+col.ID+"/contacts", "alice", "application/json",
		`{"local_ids":[`+itoa(created.LocalID)+`]}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, decode[api.DeleteContactsResponse](t, resp).Deleted)
	_, ok = env.dav.Get(got.ResourceID)
	assert.False(t, ok)

	// чужой пользователь не видит коллекцию
	resp = env.do(t, http.MethodPost, "/api/v1/collections/"+col.ID+"/sync", "mallory", "", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp = env.do(t, http.MethodGet, "/api/v1/collections/"+col.ID+"/contacts", "mallory", "", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestServer_SyncFailureReportsKind(t *testing.T) {
	ctx := context.Background()
	env := setupEnv(t)

	col, err := env.manager.RegisterCollection(ctx, csync.NewCollection{
		UserID: "alice",
		Label:  "Personal",
		URL:    env.dav.CollectionURL(),
	})
	require.NoError(t, err)

	env.dav.FailNext(http.MethodOptions, http.StatusServiceUnavailable)

	resp := env.do(t, http.MethodPost, "/api/v1/collections/"+col.ID+"/sync", "alice", "", "")
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	syncResp := decode[api.SyncResponse](t, resp)
	assert.Equal(t, api.MessageSyncFailed, syncResp.Message)
	assert.Equal(t, csync.KindConnection, syncResp.Results[0].Kind)
}

func TestServer_SweepNeedsScope(t *testing.T) {
	env := setupEnv(t)

	resp := env.do(t, http.MethodPost, "/api/v1/sweep", "alice", "", "")
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = env.do(t, http.MethodPost, "/api/v1/sweep", "cron", "", "", handlers.ScopeScheduler)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestServer_ServeShutsDownOnCancel(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv := New(Config{RequestRate: rate.Inf, RequestBurst: 1}, nil, nil, nil, logger)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, ln) }()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func itoa(n int64) string {
	return strconv.FormatInt(n, 10)
}
