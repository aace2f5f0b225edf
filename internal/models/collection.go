package models

import "time"

// Collection представляет один удалённый CardDAV address book,
// привязанный к одному пользователю и одному набору учётных данных.
type Collection struct {
	CreatedAt     time.Time  `json:"created_at"`                // CreatedAt время регистрации коллекции
	UpdatedAt     time.Time  `json:"updated_at"`                // UpdatedAt время последнего изменения настроек
	LastSyncAt    *time.Time `json:"last_sync_at,omitempty"`    // LastSyncAt время завершения последнего прохода синхронизации
	ID            string     `json:"id"`                        // ID стабильный идентификатор коллекции (UUID)
	UserID        string     `json:"user_id"`                   // UserID владелец коллекции
	Label         string     `json:"label"`                     // Label отображаемое имя
	URL           string     `json:"url"`                       // URL базовый адрес коллекции на сервере
	Username      string     `json:"username"`                  // Username логин для HTTP Basic
	LastSyncError string     `json:"last_sync_error,omitempty"` // LastSyncError вид ошибки последнего прохода (для диагностики)
	Secret        []byte     `json:"-"`                         // Secret зашифрованный пароль, расшифровывается только на время прохода
	ReadOnly      bool       `json:"read_only"`                 // ReadOnly запрещает запись на сервер
	LastSyncClean bool       `json:"last_sync_clean"`           // LastSyncClean последний проход завершился без ошибок соединения
}

// SyncStatus итог прохода синхронизации, сохраняемый в коллекции
type SyncStatus struct {
	At    time.Time
	Error string
	Clean bool
}

// AddressBook адресная книга, найденная на сервере при discovery
type AddressBook struct {
	Href         string `json:"href"`
	DisplayName  string `json:"display_name"`
	LastModified string `json:"last_modified,omitempty"`
}
