package apimodels

// ErrorResponse тело любого ответа с ошибкой
type ErrorResponse struct {
	Error string `json:"error"`
}

func NewError(message string) ErrorResponse {
	return ErrorResponse{
		Error: message,
	}
}

type HealthResponse struct {
	Ok bool `json:"ok"`
}

type HelloResponse struct {
	Message string `json:"message"`
}

// Record запись произвольной таблицы, структура определяется хранилищем
type Record map[string]interface{}
