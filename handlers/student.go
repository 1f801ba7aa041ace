package handlers

import (
	"net/http"

	"school-backend/services"
)

type StudentHandler struct {
	service *services.StudentService
}

func NewStudentHandler(service *services.StudentService) *StudentHandler {
	return &StudentHandler{service: service}
}

func (h *StudentHandler) MyMarks(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	studentID, ok := parseID(r, "studentId")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid student ID")
		return
	}

	enrollments, err := h.service.MyMarks(studentID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, enrollments)
}
