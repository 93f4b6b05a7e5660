package handlers

import (
	"encoding/json"
	"net/http"
	"reminderTracker/internal/handlers/dto"
	"reminderTracker/internal/logger"
)

func responseWithJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("HTTP: Ошибка записи ответа", err)
	}
}

func responseWithError(w http.ResponseWriter, code int, message string) {
	responseWithJSON(w, code, dto.ErrorResponse{Error: message})
}

func responseWithMessage(w http.ResponseWriter, code int, message string) {
	responseWithJSON(w, code, dto.MessageResponse{Message: message})
}
