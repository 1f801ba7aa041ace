package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"school-backend/models"
	"school-backend/services"

	"github.com/gorilla/mux"
)

type AdminHandler struct {
	service *services.AdminService
}

func NewAdminHandler(service *services.AdminService) *AdminHandler {
	return &AdminHandler{service: service}
}

func parseID(r *http.Request, name string) (uint, bool) {
	id, err := strconv.ParseUint(mux.Vars(r)[name], 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

// ---- Классы ----

func (h *AdminHandler) CreateClass(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req models.CreateClassroomReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ Error decoding JSON: %v", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Name == "" || len(req.Name) > 50 {
		writeError(w, http.StatusBadRequest, "Name is required (max 50 chars)")
		return
	}

	classroom, err := h.service.CreateClass(req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	log.Printf("✅ Classroom created with ID: %d", classroom.ID)
	writeJSON(w, http.StatusCreated, classroom)
}

func (h *AdminHandler) ListClasses(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	classes, err := h.service.ListClasses()
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, classes)
}

func (h *AdminHandler) UpdateClass(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	id, ok := parseID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid classroom ID")
		return
	}

	var req models.CreateClassroomReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Name == "" || len(req.Name) > 50 {
		writeError(w, http.StatusBadRequest, "Name is required (max 50 chars)")
		return
	}

	classroom, err := h.service.UpdateClass(id, req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, classroom)
}

func (h *AdminHandler) DeleteClass(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	id, ok := parseID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid classroom ID")
		return
	}

	if err := h.service.DeleteClass(id); err != nil {
		writeServiceError(w, err)
		return
	}

	log.Printf("🗑️ Classroom %d deleted", id)
	w.WriteHeader(http.StatusNoContent)
}

// ---- Преподаватели ----

func (h *AdminHandler) CreateTeacher(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req models.CreateTeacherReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ Error decoding JSON: %v", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	// Валидация
	if req.Name == "" || req.Email == "" || req.Password == "" || req.ClassID == 0 {
		writeError(w, http.StatusBadRequest, "Name, email, password and classId are required")
		return
	}
	if len(req.Name) > 50 || len(req.Email) > 50 {
		writeError(w, http.StatusBadRequest, "Name and email must be at most 50 chars")
		return
	}

	teacher, err := h.service.CreateTeacher(req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	log.Printf("✅ Teacher created with ID: %d (classroom %d)", teacher.ID, teacher.ClassroomID)
	writeJSON(w, http.StatusCreated, teacher)
}

func (h *AdminHandler) ListTeachers(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	teachers, err := h.service.ListTeachers()
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, teachers)
}

func (h *AdminHandler) UpdateTeacher(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	id, ok := parseID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid teacher ID")
		return
	}

	var req models.UpdateTeacherReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Name == "" || req.Email == "" {
		writeError(w, http.StatusBadRequest, "Name and email are required")
		return
	}
	if len(req.Name) > 50 || len(req.Email) > 50 {
		writeError(w, http.StatusBadRequest, "Name and email must be at most 50 chars")
		return
	}

	teacher, err := h.service.UpdateTeacher(id, req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, teacher)
}

func (h *AdminHandler) DeleteTeacher(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	id, ok := parseID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid teacher ID")
		return
	}

	if err := h.service.DeleteTeacher(id); err != nil {
		writeServiceError(w, err)
		return
	}

	log.Printf("🗑️ Teacher %d deleted", id)
	w.WriteHeader(http.StatusNoContent)
}

// ---- Студенты ----

func (h *AdminHandler) CreateStudent(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req models.CreateStudentReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ Error decoding JSON: %v", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Name == "" || req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "Name, email and password are required")
		return
	}
	if len(req.Name) > 50 || len(req.Email) > 50 {
		writeError(w, http.StatusBadRequest, "Name and email must be at most 50 chars")
		return
	}

	student, err := h.service.CreateStudent(req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	log.Printf("✅ Student created with ID: %d", student.ID)
	writeJSON(w, http.StatusCreated, student)
}

func (h *AdminHandler) ListStudents(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	students, err := h.service.ListStudents()
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, students)
}

func (h *AdminHandler) UpdateStudent(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	id, ok := parseID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid student ID")
		return
	}

	var req models.UpdateStudentReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Name == "" || req.Email == "" {
		writeError(w, http.StatusBadRequest, "Name and email are required")
		return
	}
	if len(req.Name) > 50 || len(req.Email) > 50 {
		writeError(w, http.StatusBadRequest, "Name and email must be at most 50 chars")
		return
	}

	student, err := h.service.UpdateStudent(id, req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, student)
}

func (h *AdminHandler) DeleteStudent(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	id, ok := parseID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid student ID")
		return
	}

	if err := h.service.DeleteStudent(id); err != nil {
		writeServiceError(w, err)
		return
	}

	log.Printf("🗑️ Student %d deleted", id)
	w.WriteHeader(http.StatusNoContent)
}

// ---- Enrollment ----

func (h *AdminHandler) Enroll(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req models.EnrollStudentReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ Error decoding JSON: %v", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.StudentID == 0 || req.ClassID == 0 {
		writeError(w, http.StatusBadRequest, "studentId and classId are required")
		return
	}

	enrollment, err := h.service.EnrollStudent(req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	log.Printf("✅ Student %d enrolled in classroom %d", enrollment.StudentID, enrollment.ClassID)
	writeJSON(w, http.StatusCreated, enrollment)
}

func (h *AdminHandler) Unenroll(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

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

	if err := h.service.UnenrollStudent(studentID, classID); err != nil {
		writeServiceError(w, err)
		return
	}

	log.Printf("🗑️ Student %d unenrolled from classroom %d", studentID, classID)
	w.WriteHeader(http.StatusNoContent)
}
