package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/carddavsync/internal/carddav"
	"github.com/iudanet/carddavsync/internal/contacts"
	"github.com/iudanet/carddavsync/internal/models"
	"github.com/iudanet/carddavsync/internal/storage"
	csync "github.com/iudanet/carddavsync/internal/sync"
	"github.com/iudanet/carddavsync/pkg/api"
)

const testCard = "BEGIN:VCARD\r\nVERSION:3.0\r\nFN:Anna Berg\r\nEND:VCARD\r\n"

func vcardRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "text/vcard; charset=utf-8")
	return req
}

func TestContactsHandler_List(t *testing.T) {
	svc := &contacts.ServiceMock{
		SearchFunc: func(ctx context.Context, userID string, params contacts.SearchParams) (*contacts.Page, error) {
			if len(params.Fields) > 0 && params.Fields[0] == "phone" {
				return nil, fmt.Errorf("%w: unknown field", storage.ErrInvalidQuery)
			}
			return &contacts.Page{
				Contacts: []*models.Contact{{
					LocalID:      7,
					CollectionID: "c1",
					ResourceID:   "A",
					VCard:        testCard,
					Index:        models.IndexFields{Name: "Anna Berg", Email: "anna@example.com"},
				}},
				Total:  1,
				Limit:  params.Limit,
				Offset: params.Offset,
			}, nil
		},
	}
	handler := NewContactsHandler(setupTestLogger(), svc, &PushServiceMock{})

	t.Run("search", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/collections/c1/contacts?q=ann&field=name&field=email&limit=10&offset=5", nil)
		req = withParams(withUser(req, "alice"), "id", "c1")
		w := httptest.NewRecorder()
		handler.List(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		params := svc.SearchCalls()[len(svc.SearchCalls())-1].Params
		assert.Equal(t, contacts.SearchParams{
			Value:         "ann",
			CollectionIDs: []string{"c1"},
			Fields:        []string{"name", "email"},
			Limit:         10,
			Offset:        5,
		}, params)

		var resp api.ContactsResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		require.Len(t, resp.Contacts, 1)
		assert.Equal(t, int64(7), resp.Contacts[0].LocalID)
		assert.Equal(t, "Anna Berg", resp.Contacts[0].Name)
		assert.Empty(t, resp.Contacts[0].VCard)
		assert.Equal(t, 1, resp.Total)
	})

	t.Run("bad limit", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/collections/c1/contacts?limit=ten", nil)
		w := httptest.NewRecorder()
		handler.List(w, withParams(withUser(req, "alice"), "id", "c1"))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown field", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/collections/c1/contacts?field=phone", nil)
		w := httptest.NewRecorder()
		handler.List(w, withParams(withUser(req, "alice"), "id", "c1"))
		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp api.ErrorResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, csync.KindInvalid, resp.Kind)
	})
}

func TestContactsHandler_Get(t *testing.T) {
	svc := &contacts.ServiceMock{
		GetFunc: func(ctx context.Context, userID, collectionID string, localID int64) (*models.Contact, error) {
			if localID != 7 {
				return nil, storage.ErrContactNotFound
			}
			return &models.Contact{LocalID: 7, CollectionID: collectionID, VCard: testCard}, nil
		},
	}
	handler := NewContactsHandler(setupTestLogger(), svc, &PushServiceMock{})

	tests := []struct {
		name     string
		localID  string
		wantCode int
	}{
		{name: "found", localID: "7", wantCode: http.StatusOK},
		{name: "missing", localID: "8", wantCode: http.StatusNotFound},
		{name: "not a number", localID: "x", wantCode: http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/collections/c1/contacts/"+tt.localID, nil)
			w := httptest.NewRecorder()
			handler.Get(w, withParams(withUser(req, "alice"), "id", "c1", "localID", tt.localID))

			assert.Equal(t, tt.wantCode, w.Code)
			if tt.wantCode == http.StatusOK {
				var c api.Contact
				require.NoError(t, json.NewDecoder(w.Body).Decode(&c))
				assert.Equal(t, testCard, c.VCard)
			}
		})
	}
}

func TestContactsHandler_Create(t *testing.T) {
	tests := []struct {
		pushErr     error
		name        string
		userID      string
		contentType string
		body        string
		wantKind    string
		wantCode    int
		wantPush    bool
	}{
		{name: "created", userID: "alice", body: testCard, wantCode: http.StatusCreated, wantPush: true},
		{name: "read only", userID: "alice", body: testCard, pushErr: csync.ErrReadOnly, wantCode: http.StatusForbidden, wantKind: csync.KindReadOnly, wantPush: true},
		{name: "server down", userID: "alice", body: testCard, pushErr: fmt.Errorf("put: %w", carddav.ErrConnection), wantCode: http.StatusBadGateway, wantKind: csync.KindConnection, wantPush: true},
		{name: "ids exhausted", userID: "alice", body: testCard, pushErr: carddav.ErrIDExhausted, wantCode: http.StatusConflict, wantKind: csync.KindIDExhaustion, wantPush: true},
		{name: "foreign collection", userID: "mallory", body: testCard, wantCode: http.StatusNotFound, wantKind: csync.KindNotFound},
		{name: "wrong content type", userID: "alice", body: testCard, contentType: "application/json", wantCode: http.StatusUnsupportedMediaType},
		{name: "empty body", userID: "alice", body: "  ", wantCode: http.StatusBadRequest, wantKind: csync.KindInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			push := &PushServiceMock{
				CollectionFunc: ownedBy("alice"),
				PushCreateFunc: func(ctx context.Context, collectionID, document string) (int64, error) {
					if tt.pushErr != nil {
						return 0, tt.pushErr
					}
					return 42, nil
				},
			}
			handler := NewContactsHandler(setupTestLogger(), &contacts.ServiceMock{}, push)

			req := vcardRequest(http.MethodPost, "/api/v1/collections/c1/contacts", tt.body)
			if tt.contentType != "" {
				req.Header.Set("Content-Type", tt.contentType)
			}
			w := httptest.NewRecorder()
			handler.Create(w, withParams(withUser(req, tt.userID), "id", "c1"))

			assert.Equal(t, tt.wantCode, w.Code)
			if !tt.wantPush {
				assert.Empty(t, push.PushCreateCalls())
			} else {
				require.Len(t, push.PushCreateCalls(), 1)
				assert.Equal(t, tt.body, push.PushCreateCalls()[0].Document)
			}

			if tt.wantCode == http.StatusCreated {
				var resp api.CreateContactResponse
				require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
				assert.Equal(t, int64(42), resp.LocalID)
				return
			}
			if tt.wantKind != "" {
				var resp api.ErrorResponse
				require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
				assert.Equal(t, tt.wantKind, resp.Kind)
			}
		})
	}
}

func TestContactsHandler_CreateTooLarge(t *testing.T) {
	push := &PushServiceMock{CollectionFunc: ownedBy("alice")}
	handler := NewContactsHandler(setupTestLogger(), &contacts.ServiceMock{}, push)

	req := vcardRequest(http.MethodPost, "/api/v1/collections/c1/contacts", strings.Repeat("x", maxVCardSize+1))
	w := httptest.NewRecorder()
	handler.Create(w, withParams(withUser(req, "alice"), "id", "c1"))

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.Empty(t, push.PushCreateCalls())
}

func TestContactsHandler_Update(t *testing.T) {
	push := &PushServiceMock{
		CollectionFunc: ownedBy("alice"),
		PushUpdateFunc: func(ctx context.Context, collectionID string, localID int64, document string) error {
			if localID == 404 {
				return storage.ErrContactNotFound
			}
			return nil
		},
	}
	handler := NewContactsHandler(setupTestLogger(), &contacts.ServiceMock{}, push)

	update := func(localID string) *httptest.ResponseRecorder {
		req := vcardRequest(http.MethodPut, "/api/v1/collections/c1/contacts/"+localID, testCard)
		w := httptest.NewRecorder()
		handler.Update(w, withParams(withUser(req, "alice"), "id", "c1", "localID", localID))
		return w
	}

	assert.Equal(t, http.StatusNoContent, update("7").Code)
	require.Len(t, push.PushUpdateCalls(), 1)
	assert.Equal(t, int64(7), push.PushUpdateCalls()[0].LocalID)
	assert.Equal(t, testCard, push.PushUpdateCalls()[0].Document)

	assert.Equal(t, http.StatusNotFound, update("404").Code)
	assert.Equal(t, http.StatusBadRequest, update("seven").Code)
}

func TestContactsHandler_Delete(t *testing.T) {
	tests := []struct {
		pushErr     error
		name        string
		body        string
		wantDeleted int
		wantCode    int
	}{
		{name: "deleted", body: `{"local_ids":[1,2]}`, wantDeleted: 2, wantCode: http.StatusOK},
		{name: "partial failure", body: `{"local_ids":[1,2]}`, pushErr: errors.Join(fmt.Errorf("delete 2: %w", carddav.ErrConnection)), wantDeleted: 1, wantCode: http.StatusBadGateway},
		{name: "empty ids", body: `{"local_ids":[]}`, wantCode: http.StatusBadRequest},
		{name: "bad json", body: `{`, wantCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			push := &PushServiceMock{
				CollectionFunc: ownedBy("alice"),
				PushDeleteFunc: func(ctx context.Context, collectionID string, localIDs []int64) (int, error) {
					if tt.pushErr != nil {
						return len(localIDs) - 1, tt.pushErr
					}
					return len(localIDs), nil
				},
			}
			handler := NewContactsHandler(setupTestLogger(), &contacts.ServiceMock{}, push)

			req := httptest.NewRequest(http.MethodDelete, "/api/v1/collections/c1/contacts", strings.NewReader(tt.body))
			w := httptest.NewRecorder()
			handler.Delete(w, withParams(withUser(req, "alice"), "id", "c1"))

			assert.Equal(t, tt.wantCode, w.Code)
			if tt.wantCode == http.StatusBadRequest {
				assert.Empty(t, push.PushDeleteCalls())
				return
			}
			var resp api.DeleteContactsResponse
			require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
			assert.Equal(t, tt.wantDeleted, resp.Deleted)
			assert.Equal(t, []int64{1, 2}, push.PushDeleteCalls()[0].LocalIDs)
		})
	}
}
