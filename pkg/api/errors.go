package api

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`          // сообщение для пользователя
	Kind    string `json:"kind,omitempty"` // вид ошибки для диагностики: connection, parse, id_exhaustion, not_found, read_only
	Message string `json:"message,omitempty"`
}

// HealthResponse представляет ответ health check
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}
