package handlers

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// setupTestLogger creates a logger for testing
func setupTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// withUser кладёт пользователя и права в контекст, как это делает AuthMiddleware
func withUser(req *http.Request, userID string, scopes ...string) *http.Request {
	ctx := WithClaims(req.Context(), &CustomClaims{UserID: userID, Scopes: scopes})
	return req.WithContext(ctx)
}

// withParams добавляет параметры маршрута chi
func withParams(req *http.Request, kv ...string) *http.Request {
	rctx := chi.NewRouteContext()
	for i := 0; i+1 < len(kv); i += 2 {
		rctx.URLParams.Add(kv[i], kv[i+1])
	}
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}
