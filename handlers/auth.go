package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"school-backend/auth"
	"school-backend/models"

	"gorm.io/gorm"
)

type AuthHandler struct {
	db         *gorm.DB
	jwtService *auth.JWTService
}

func NewAuthHandler(db *gorm.DB, jwtService *auth.JWTService) *AuthHandler {
	return &AuthHandler{
		db:         db,
		jwtService: jwtService,
	}
}

// Login обрабатывает вход администратора, преподавателя или студента.
// Email уникален внутри каждой таблицы, поэтому ищем последовательно.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var loginReq models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&loginReq); err != nil {
		log.Printf("❌ Error decoding login request: %v", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if loginReq.Email == "" || loginReq.Password == "" {
		writeError(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	id, role, hashedPassword, found := h.findPrincipal(loginReq.Email)
	if !found {
		log.Printf("❌ User not found: %s", loginReq.Email)
		writeError(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	// Проверяем пароль
	if !auth.CheckPassword(loginReq.Password, hashedPassword) {
		log.Printf("❌ Invalid password for user: %s", loginReq.Email)
		writeError(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	// Генерируем токен
	token, err := h.jwtService.GenerateToken(id, loginReq.Email, role)
	if err != nil {
		log.Printf("❌ Error generating token for user %s: %v", loginReq.Email, err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	log.Printf("✅ User %s logged in (role: %s)", loginReq.Email, role)
	writeJSON(w, http.StatusOK, models.LoginResponse{
		Token: token,
		ID:    id,
		Email: loginReq.Email,
		Role:  role,
	})
}

func (h *AuthHandler) findPrincipal(email string) (uint, string, string, bool) {
	var admin models.Admin
	if err := h.db.Where("email = ?", email).First(&admin).Error; err == nil {
		return admin.ID, admin.Role, admin.Password, true
	}

	var teacher models.Teacher
	if err := h.db.Where("email = ?", email).First(&teacher).Error; err == nil {
		return teacher.ID, teacher.Role, teacher.Password, true
	}

	var student models.Student
	if err := h.db.Where("email = ?", email).First(&student).Error; err == nil {
		return student.ID, student.Role, student.Password, true
	}

	return 0, "", "", false
}
