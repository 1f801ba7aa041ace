package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"school-backend/models"
	"school-backend/services"
)

type TeacherHandler struct {
	service *services.TeacherService
}

func NewTeacherHandler(service *services.TeacherService) *TeacherHandler {
	return &TeacherHandler{service: service}
}

func (h *TeacherHandler) StudentsOfTeacher(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	teacherID, ok := parseID(r, "teacherId")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid teacher ID")
		return
	}

	students, err := h.service.StudentsOfTeacher(teacherID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, students)
}

func (h *TeacherHandler) SetMark(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	teacherID, ok := parseID(r, "teacherId")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid teacher ID")
		return
	}
	classID, ok := parseID(r, "classId")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid classroom ID")
		return
	}
	studentID, ok := parseID(r, "studentId")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid student ID")
		return
	}

	var req models.MarkUpdateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ Error decoding JSON: %v", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Mark == "" || len(req.Mark) > 10 {
		writeError(w, http.StatusBadRequest, "Mark is required (max 10 chars)")
		return
	}

	enrollment, err := h.service.SetMark(teacherID, classID, studentID, req.Mark)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	log.Printf("✅ Teacher %d set mark %q for student %d in classroom %d",
		teacherID, req.Mark, studentID, classID)
	writeJSON(w, http.StatusOK, enrollment)
}
