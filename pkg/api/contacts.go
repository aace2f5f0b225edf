package api

import "time"

// Contact запись локального кэша
type Contact struct {
	UpdatedAt    time.Time `json:"updated_at"`
	CollectionID string    `json:"collection_id"`
	ResourceID   string    `json:"resource_id"`
	Name         string    `json:"name"`
	FirstName    string    `json:"firstname,omitempty"`
	Surname      string    `json:"surname,omitempty"`
	Email        string    `json:"email,omitempty"`
	VCard        string    `json:"vcard,omitempty"` // только в ответе на запрос одного контакта
	LocalID      int64     `json:"local_id"`
}

// ContactsResponse страница результатов поиска
type ContactsResponse struct {
	Contacts []Contact `json:"contacts"`
	Total    int       `json:"total"`
	Limit    int       `json:"limit"`
	Offset   int       `json:"offset"`
}

// CreateContactResponse ответ на создание контакта
type CreateContactResponse struct {
	Message string `json:"message"`
	LocalID int64  `json:"local_id"`
}

// DeleteContactsRequest удаление контактов по локальным идентификаторам
type DeleteContactsRequest struct {
	LocalIDs []int64 `json:"local_ids"`
}

// DeleteContactsResponse ответ на удаление
type DeleteContactsResponse struct {
	Message string `json:"message"`
	Kind    string `json:"kind,omitempty"`
	Deleted int    `json:"deleted"`
}
