package models

import "time"

// Contact локальная копия одного удалённого ресурса (vCard).
// Пара (CollectionID, ResourceID) уникальна.
type Contact struct {
	UpdatedAt    time.Time   `json:"updated_at"`    // UpdatedAt время последней записи в локальный кэш
	CollectionID string      `json:"collection_id"` // CollectionID коллекция-владелец
	ResourceID   string      `json:"resource_id"`   // ResourceID имя ресурса на сервере без расширения .vcf
	ETag         string      `json:"etag"`          // ETag change-tag сервера без кавычек
	LastModified string      `json:"last_modified"` // LastModified значение getlastmodified как есть
	VCard        string      `json:"vcard"`         // VCard исходный документ, для ядра непрозрачен
	Index        IndexFields `json:"index"`         // Index денормализованные поля для поиска
	LocalID      int64       `json:"local_id"`      // LocalID локальный идентификатор, стабилен при обновлениях
}

// Meta возвращает метаданные синхронизации записи
func (c *Contact) Meta() SyncMeta {
	return SyncMeta{ETag: c.ETag, LastModified: c.LastModified}
}

// IndexFields поля, извлекаемые из vCard для поиска и сортировки
type IndexFields struct {
	Name      string `json:"name"`
	FirstName string `json:"firstname"`
	Surname   string `json:"surname"`
	Email     string `json:"email"` // все адреса через ", "
	Words     string `json:"words"` // нормализованные уникальные слова через пробел
}

// SyncMeta change-токены одного ресурса
type SyncMeta struct {
	ETag         string `json:"etag"`
	LastModified string `json:"last_modified"`
}

// Matches сообщает, совпадают ли оба токена с удалённым элементом.
// Расхождение любого из них означает, что локальная копия устарела.
func (m SyncMeta) Matches(e RemoteElement) bool {
	return m.ETag == e.ETag && m.LastModified == e.LastModified
}

// RemoteElement одна запись из разобранного ответа сервера.
// Живёт только в пределах одного прохода синхронизации.
type RemoteElement struct {
	ID           string
	ETag         string
	LastModified string
	VCard        string // пусто, если тело не запрашивалось
}

// Meta возвращает change-токены элемента
func (e RemoteElement) Meta() SyncMeta {
	return SyncMeta{ETag: e.ETag, LastModified: e.LastModified}
}
