package apiclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/carddavsync/pkg/api"
)

// TestNewClient проверяет создание нового клиента
func TestNewClient(t *testing.T) {
	client := NewClient("http://localhost:8080", "tok")

	assert.Equal(t, "http://localhost:8080", client.baseURL)
	assert.Equal(t, "tok", client.token)
	assert.Equal(t, defaultTimeout, client.httpClient.Timeout)

	client = NewClient("http://localhost:8080", "", WithTimeout(5*time.Minute))
	assert.Equal(t, 5*time.Minute, client.httpClient.Timeout)
}

func TestClient_Sweep(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/sweep", r.URL.Path)
		assert.Equal(t, "Bearer scheduler-token", r.Header.Get("Authorization"))

		_ = json.NewEncoder(w).Encode(api.SyncResponse{
			Message: api.MessageSyncFailed,
			Results: []api.SyncResult{
				{CollectionID: "a", Message: api.MessageSynced, Added: 2, Clean: true},
				{CollectionID: "b", Message: api.MessageSyncFailed, Kind: "connection"},
			},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, "scheduler-token")
	resp, err := client.Sweep(context.Background())
	require.NoError(t, err)

	assert.Equal(t, api.MessageSyncFailed, resp.Message)
	require.Len(t, resp.Results, 2)
	assert.Equal(t, 2, resp.Results[0].Added)
	assert.Equal(t, "connection", resp.Results[1].Kind)
}

func TestClient_SyncUserAndCollections(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/sync", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(api.SyncResponse{Message: api.MessageSynced})
	})
	mux.HandleFunc("GET /api/v1/collections/", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]api.Collection{{ID: "a", Label: "Work"}})
	})
	mux.HandleFunc("GET /api/v1/health", func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode(api.HealthResponse{Status: "ok", Version: "1.0"})
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	ctx := context.Background()

	resp, err := NewClient(server.URL, "tok").SyncUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, api.MessageSynced, resp.Message)

	cols, err := NewClient(server.URL, "tok").Collections(ctx)
	require.NoError(t, err)
	require.Len(t, cols, 1)
	assert.Equal(t, "Work", cols[0].Label)

	health, err := NewClient(server.URL, "").Health(ctx)
	require.NoError(t, err)
	assert.Equal(t, "1.0", health.Version)
}

// TestClient_Errors проверяет разбор ответов с ошибкой
func TestClient_Errors(t *testing.T) {
	tests := []struct {
		body        string
		name        string
		wantMessage string
		wantKind    string
		status      int
	}{
		{
			name:        "json error",
			status:      http.StatusForbidden,
			body:        `{"error":"forbidden"}`,
			wantMessage: "forbidden",
		},
		{
			name:        "json error with kind",
			status:      http.StatusBadGateway,
			body:        `{"error":"sync failed","kind":"connection"}`,
			wantMessage: "sync failed",
			wantKind:    "connection",
		},
		{
			name:        "plain text",
			status:      http.StatusInternalServerError,
			body:        "boom",
			wantMessage: "boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			_, err := NewClient(server.URL, "tok").Sweep(context.Background())
			require.Error(t, err)

			var serr *StatusError
			require.ErrorAs(t, err, &serr)
			assert.Equal(t, tt.status, serr.StatusCode)
			assert.Equal(t, tt.wantMessage, serr.Message)
			assert.Equal(t, tt.wantKind, serr.Kind)
		})
	}
}

func TestClient_BadJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("{not json"))
	}))
	defer server.Close()

	_, err := NewClient(server.URL, "tok").SyncUser(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode response")
}

func TestClient_ConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	_, err := NewClient(url, "tok").Health(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "request failed")
}
