package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"blogicum/internal/models"
)

// ErrorResponse - стандартный ответ с ошибкой
type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func WriteError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{Error: message})
}

func WriteSuccess(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// writeDomainError отображает доменные ошибки в статусы.
// ErrNotAuthor сюда не попадает: редирект при чужом редактировании
// хендлеры делают сами.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrNotFound):
		WriteError(w, "Запись не найдена", http.StatusNotFound)
	case errors.Is(err, models.ErrPermissionDenied):
		WriteError(w, "Доступ запрещен", http.StatusForbidden)
	case errors.Is(err, models.ErrUserExists):
		WriteError(w, "Пользователь уже существует", http.StatusConflict)
	default:
		WriteError(w, err.Error(), http.StatusInternalServerError)
	}
}
