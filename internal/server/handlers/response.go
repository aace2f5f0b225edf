package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	csync "github.com/iudanet/carddavsync/internal/sync"
	"github.com/iudanet/carddavsync/pkg/api"
)

func writeJSON(w http.ResponseWriter, logger *slog.Logger, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

// statusForKind HTTP статус для вида ошибки
func statusForKind(kind string) int {
	switch kind {
	case csync.KindNotFound:
		return http.StatusNotFound
	case csync.KindReadOnly:
		return http.StatusForbidden
	case csync.KindInvalid:
		return http.StatusBadRequest
	case csync.KindIDExhaustion:
		return http.StatusConflict
	case csync.KindConnection, csync.KindParse:
		return http.StatusBadGateway
	case csync.KindCancelled:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// writeError отвечает сообщением для пользователя и видом ошибки для диагностики.
// Текст внутренних ошибок наружу не отдаётся.
func writeError(w http.ResponseWriter, logger *slog.Logger, message string, err error) {
	kind := csync.ErrorKind(err)
	resp := api.ErrorResponse{Error: message, Kind: kind}
	if kind == csync.KindInvalid {
		resp.Message = err.Error()
	}
	writeJSON(w, logger, statusForKind(kind), resp)
}

func unauthorized(w http.ResponseWriter, logger *slog.Logger) {
	logger.Error("User ID not found in context")
	writeJSON(w, logger, http.StatusUnauthorized, api.ErrorResponse{Error: "unauthorized"})
}

func badRequest(w http.ResponseWriter, logger *slog.Logger, message string) {
	writeJSON(w, logger, http.StatusBadRequest, api.ErrorResponse{Error: message, Kind: csync.KindInvalid})
}
