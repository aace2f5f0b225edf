package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/iudanet/carddavsync/internal/contacts"
	"github.com/iudanet/carddavsync/internal/models"
	csync "github.com/iudanet/carddavsync/internal/sync"
	"github.com/iudanet/carddavsync/pkg/api"
)

// maxVCardSize ограничение тела запроса с vCard
const maxVCardSize = 1 << 20

//go:generate moq -out push_mock.go . PushService

// PushService запись изменений на сервер
type PushService interface {
	Collection(ctx context.Context, userID, collectionID string) (*models.Collection, error)
	PushCreate(ctx context.Context, collectionID, document string) (int64, error)
	PushUpdate(ctx context.Context, collectionID string, localID int64, document string) error
	PushDelete(ctx context.Context, collectionID string, localIDs []int64) (int, error)
}

var _ PushService = (*csync.Manager)(nil)

// ContactsHandler чтение кэша и запись контактов
type ContactsHandler struct {
	logger   *slog.Logger
	contacts contacts.Service
	push     PushService
}

// NewContactsHandler creates a new contacts handler
func NewContactsHandler(logger *slog.Logger, contacts contacts.Service, push PushService) *ContactsHandler {
	return &ContactsHandler{
		logger:   logger,
		contacts: contacts,
		push:     push,
	}
}

// List обрабатывает GET /api/v1/collections/{id}/contacts?q=&field=&limit=&offset=
func (h *ContactsHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		unauthorized(w, h.logger)
		return
	}

	query := r.URL.Query()
	params := contacts.SearchParams{
		Value:         query.Get("q"),
		CollectionIDs: []string{chi.URLParam(r, "id")},
		Fields:        query["field"],
	}
	var err error
	if params.Limit, err = intParam(query.Get("limit")); err != nil {
		badRequest(w, h.logger, "invalid limit")
		return
	}
	if params.Offset, err = intParam(query.Get("offset")); err != nil {
		badRequest(w, h.logger, "invalid offset")
		return
	}

	page, err := h.contacts.Search(ctx, userID, params)
	if err != nil {
		writeError(w, h.logger, "search failed", err)
		return
	}

	resp := api.ContactsResponse{
		Contacts: make([]api.Contact, 0, len(page.Contacts)),
		Total:    page.Total,
		Limit:    page.Limit,
		Offset:   page.Offset,
	}
	for _, c := range page.Contacts {
		resp.Contacts = append(resp.Contacts, toAPIContact(c, false))
	}
	writeJSON(w, h.logger, http.StatusOK, resp)
}

// Get обрабатывает GET /api/v1/collections/{id}/contacts/{localID}
func (h *ContactsHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		unauthorized(w, h.logger)
		return
	}
	localID, err := strconv.ParseInt(chi.URLParam(r, "localID"), 10, 64)
	if err != nil {
		badRequest(w, h.logger, "invalid contact id")
		return
	}

	c, err := h.contacts.Get(ctx, userID, chi.URLParam(r, "id"), localID)
	if err != nil {
		writeError(w, h.logger, "contact not found", err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, toAPIContact(c, true))
}

// Create обрабатывает POST /api/v1/collections/{id}/contacts с телом text/vcard
func (h *ContactsHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	collectionID, ok := h.authorize(w, r)
	if !ok {
		return
	}
	document, ok := h.readVCard(w, r)
	if !ok {
		return
	}

	localID, err := h.push.PushCreate(ctx, collectionID, document)
	if err != nil {
		writeError(w, h.logger, "create failed", err)
		return
	}

	h.logger.Info("Contact created", "collection_id", collectionID, "local_id", localID)
	writeJSON(w, h.logger, http.StatusCreated, api.CreateContactResponse{
		LocalID: localID,
		Message: "created",
	})
}

// Update обрабатывает PUT /api/v1/collections/{id}/contacts/{localID}
func (h *ContactsHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	collectionID, ok := h.authorize(w, r)
	if !ok {
		return
	}
	localID, err := strconv.ParseInt(chi.URLParam(r, "localID"), 10, 64)
	if err != nil {
		badRequest(w, h.logger, "invalid contact id")
		return
	}
	document, ok := h.readVCard(w, r)
	if !ok {
		return
	}

	if err := h.push.PushUpdate(ctx, collectionID, localID, document); err != nil {
		writeError(w, h.logger, "update failed", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Delete обрабатывает DELETE /api/v1/collections/{id}/contacts
func (h *ContactsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	collectionID, ok := h.authorize(w, r)
	if !ok {
		return
	}

	var req api.DeleteContactsRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, maxVCardSize)).Decode(&req); err != nil {
		h.logger.Warn("Failed to decode delete request", "error", err)
		badRequest(w, h.logger, "invalid request body")
		return
	}
	if len(req.LocalIDs) == 0 {
		badRequest(w, h.logger, "local_ids is empty")
		return
	}

	n, err := h.push.PushDelete(ctx, collectionID, req.LocalIDs)
	resp := api.DeleteContactsResponse{Deleted: n, Message: "deleted"}
	if err != nil {
		// часть контактов могла быть удалена
		resp.Message = "delete failed"
		resp.Kind = csync.ErrorKind(err)
		h.logger.Warn("Delete failed", "collection_id", collectionID, "deleted", n, "error", err)
		writeJSON(w, h.logger, statusForKind(resp.Kind), resp)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, resp)
}

// authorize проверяет, что коллекция из пути принадлежит пользователю
func (h *ContactsHandler) authorize(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		unauthorized(w, h.logger)
		return "", false
	}
	collectionID := chi.URLParam(r, "id")
	if _, err := h.push.Collection(r.Context(), userID, collectionID); err != nil {
		writeError(w, h.logger, "collection not found", err)
		return "", false
	}
	return collectionID, true
}

func (h *ContactsHandler) readVCard(w http.ResponseWriter, r *http.Request) (string, bool) {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || (mediaType != "text/vcard" && mediaType != "text/x-vcard") {
		writeJSON(w, h.logger, http.StatusUnsupportedMediaType, api.ErrorResponse{Error: "expected text/vcard body"})
		return "", false
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxVCardSize))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSON(w, h.logger, http.StatusRequestEntityTooLarge, api.ErrorResponse{Error: "vcard too large"})
			return "", false
		}
		badRequest(w, h.logger, "failed to read body")
		return "", false
	}
	if strings.TrimSpace(string(body)) == "" {
		badRequest(w, h.logger, "empty vcard")
		return "", false
	}
	return string(body), true
}

func intParam(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.Atoi(s)
}

func toAPIContact(c *models.Contact, withVCard bool) api.Contact {
	out := api.Contact{
		LocalID:      c.LocalID,
		CollectionID: c.CollectionID,
		ResourceID:   c.ResourceID,
		Name:         c.Index.Name,
		FirstName:    c.Index.FirstName,
		Surname:      c.Index.Surname,
		Email:        c.Index.Email,
		UpdatedAt:    c.UpdatedAt,
	}
	if withVCard {
		out.VCard = c.VCard
	}
	return out
}
