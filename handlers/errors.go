package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"school-backend/apperrors"
)

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("❌ Error encoding response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// writeServiceError сопоставляет доменную ошибку с HTTP статусом
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, apperrors.ErrForbidden):
		writeError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, apperrors.ErrConflict):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, apperrors.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		log.Printf("❌ Internal error: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}
