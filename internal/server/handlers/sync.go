package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"slices"

	"github.com/go-chi/chi/v5"

	"github.com/iudanet/carddavsync/internal/models"
	csync "github.com/iudanet/carddavsync/internal/sync"
	"github.com/iudanet/carddavsync/pkg/api"
)

//go:generate moq -out sync_mock.go . SyncService

// SyncService точки входа синхронизации
type SyncService interface {
	Collection(ctx context.Context, userID, collectionID string) (*models.Collection, error)
	ListCollections(ctx context.Context, userID string) ([]*models.Collection, error)
	SynchronizeCollection(ctx context.Context, collectionID string) (*csync.Result, error)
	SynchronizeAllCollectionsForUser(ctx context.Context, userID string) ([]csync.CollectionResult, error)
	SynchronizeAll(ctx context.Context) ([]csync.CollectionResult, error)
}

var _ SyncService = (*csync.Manager)(nil)

// SyncHandler handles synchronization requests
type SyncHandler struct {
	logger  *slog.Logger
	service SyncService
}

// NewSyncHandler creates a new sync handler
func NewSyncHandler(logger *slog.Logger, service SyncService) *SyncHandler {
	return &SyncHandler{
		logger:  logger,
		service: service,
	}
}

// SyncUser обрабатывает POST /api/v1/sync
// Синхронизирует все коллекции пользователя из токена
func (h *SyncHandler) SyncUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		unauthorized(w, h.logger)
		return
	}

	h.logger.Info("Sync request", "user_id", userID)

	results, err := h.service.SynchronizeAllCollectionsForUser(ctx, userID)
	if err != nil {
		h.logger.Warn("Sync interrupted", "user_id", userID, "error", err)
		writeError(w, h.logger, api.MessageSyncFailed, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, toSyncResponse(results))
}

// Collections обрабатывает GET /api/v1/collections
func (h *SyncHandler) Collections(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		unauthorized(w, h.logger)
		return
	}

	cols, err := h.service.ListCollections(ctx, userID)
	if err != nil {
		h.logger.Error("Failed to list collections", "user_id", userID, "error", err)
		writeError(w, h.logger, "failed to list collections", err)
		return
	}

	out := make([]api.Collection, 0, len(cols))
	for _, c := range cols {
		out = append(out, api.Collection{
			ID:            c.ID,
			Label:         c.Label,
			URL:           c.URL,
			Username:      c.Username,
			ReadOnly:      c.ReadOnly,
			CreatedAt:     c.CreatedAt,
			LastSyncAt:    c.LastSyncAt,
			LastSyncClean: c.LastSyncClean,
			LastSyncError: c.LastSyncError,
		})
	}
	writeJSON(w, h.logger, http.StatusOK, out)
}

// SyncCollection обрабатывает POST /api/v1/collections/{id}/sync
func (h *SyncHandler) SyncCollection(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		unauthorized(w, h.logger)
		return
	}
	collectionID := chi.URLParam(r, "id")

	if _, err := h.service.Collection(ctx, userID, collectionID); err != nil {
		writeError(w, h.logger, "collection not found", err)
		return
	}

	result, err := h.service.SynchronizeCollection(ctx, collectionID)
	res := toSyncResult(collectionID, result, err)
	if err != nil {
		h.logger.Warn("Collection sync failed", "collection_id", collectionID, "kind", res.Kind, "error", err)
		writeJSON(w, h.logger, statusForKind(res.Kind), api.SyncResponse{
			Results: []api.SyncResult{res},
			Message: api.MessageSyncFailed,
		})
		return
	}

	writeJSON(w, h.logger, http.StatusOK, api.SyncResponse{
		Results: []api.SyncResult{res},
		Message: res.Message,
	})
}

// Sweep обрабатывает POST /api/v1/sweep
// Запускается внешним планировщиком, нужен scope scheduler
func (h *SyncHandler) Sweep(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if !slices.Contains(GetScopes(ctx), ScopeScheduler) {
		h.logger.Warn("Sweep without scheduler scope")
		writeJSON(w, h.logger, http.StatusForbidden, api.ErrorResponse{Error: "forbidden"})
		return
	}

	results, err := h.service.SynchronizeAll(ctx)
	if err != nil {
		h.logger.Warn("Sweep interrupted", "error", err)
		writeError(w, h.logger, api.MessageSyncFailed, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, toSyncResponse(results))
}

func toSyncResponse(results []csync.CollectionResult) api.SyncResponse {
	resp := api.SyncResponse{
		Results: make([]api.SyncResult, 0, len(results)),
		Message: api.MessageSynced,
	}
	for _, cr := range results {
		res := toSyncResult(cr.Collection.ID, cr.Result, cr.Err)
		if res.Message != api.MessageSynced {
			resp.Message = api.MessageSyncFailed
		}
		resp.Results = append(resp.Results, res)
	}
	return resp
}

// toSyncResult проход без ошибки, но с пропущенными ресурсами, считается неудачным
func toSyncResult(collectionID string, r *csync.Result, err error) api.SyncResult {
	res := api.SyncResult{
		CollectionID: collectionID,
		Message:      api.MessageSyncFailed,
		Kind:         csync.ErrorKind(err),
	}
	if r != nil {
		res.Failed = r.Failed
		res.Added = r.Added
		res.Updated = r.Updated
		res.Deleted = r.Deleted
		res.Unchanged = r.Unchanged
		res.Skipped = r.Skipped
		res.AnyChange = r.AnyChange
		res.Clean = r.Clean
	}
	if err == nil && r != nil && r.Clean {
		res.Message = api.MessageSynced
	}
	if err == nil && res.Message != api.MessageSynced {
		res.Kind = csync.KindConnection
	}
	return res
}
