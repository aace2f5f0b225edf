package api

import "time"

// Сообщения для пользователя
const (
	MessageSynced     = "synced"
	MessageSyncFailed = "sync failed"
)

// SyncResult итог прохода по одной коллекции
type SyncResult struct {
	CollectionID string   `json:"collection_id"`
	Message      string   `json:"message"`        // synced или sync failed
	Kind         string   `json:"kind,omitempty"` // вид ошибки, если проход не удался
	Failed       []string `json:"failed,omitempty"`
	Added        int      `json:"added"`
	Updated      int      `json:"updated"`
	Deleted      int      `json:"deleted"`
	Unchanged    int      `json:"unchanged"`
	Skipped      int      `json:"skipped"`
	AnyChange    bool     `json:"any_change"`
	Clean        bool     `json:"clean"`
}

// SyncResponse ответ на запрос синхронизации
type SyncResponse struct {
	Results []SyncResult `json:"results"`
	Message string       `json:"message"` // synced, если все коллекции синхронизированы
}

// Collection зарегистрированная коллекция без секрета
type Collection struct {
	CreatedAt     time.Time  `json:"created_at"`
	LastSyncAt    *time.Time `json:"last_sync_at,omitempty"`
	ID            string     `json:"id"`
	Label         string     `json:"label"`
	URL           string     `json:"url"`
	Username      string     `json:"username,omitempty"`
	LastSyncError string     `json:"last_sync_error,omitempty"`
	ReadOnly      bool       `json:"read_only"`
	LastSyncClean bool       `json:"last_sync_clean"`
}
