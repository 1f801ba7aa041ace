package main

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"school-backend/auth"
	"school-backend/config"
	"school-backend/database"
	"school-backend/handlers"
	"school-backend/middleware"
	"school-backend/models"
	"school-backend/services"

	"github.com/gorilla/mux"
)

func main() {
	log.Println("🚀 Starting School Backend Server...")

	// Загрузка конфигурации
	cfg := config.Load()
	log.Printf("📋 Configuration loaded: Server Port %s", cfg.ServerPort)

	// Инициализация подключения к базе данных
	db, dbx, err := database.InitDB(cfg)
	if err != nil {
		log.Fatal("❌ Error initializing database:", err)
	}
	defer dbx.Close()

	// Миграция схемы и начальные данные
	if err := database.Migrate(db); err != nil {
		log.Fatal("❌ Error migrating database:", err)
	}

	// Инициализация JWT сервиса
	jwtService := auth.NewJWTService(cfg.JWTSecret, cfg.JWTExpiry)

	// Инициализация middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService)

	// Инициализация сервисов и обработчиков
	adminService := services.NewAdminService(db, auth.BcryptHasher{})
	teacherService := services.NewTeacherService(db)
	studentService := services.NewStudentService(db)

	authHandler := handlers.NewAuthHandler(db, jwtService)
	adminHandler := handlers.NewAdminHandler(adminService)
	teacherHandler := handlers.NewTeacherHandler(teacherService)
	studentHandler := handlers.NewStudentHandler(studentService)

	// Создание роутера
	r := mux.NewRouter()
	r.Use(middleware.CORS)
	r.Use(middleware.Logging)

	setupRoutes(r, authHandler, adminHandler, teacherHandler, studentHandler, authMiddleware)

	serverAddr := ":" + cfg.ServerPort
	log.Printf("✅ Server successfully started on %s", serverAddr)
	log.Printf("🔐 JWT Expiry: %d hours", cfg.JWTExpiry)

	log.Fatal(http.ListenAndServe(serverAddr, r))
}

func setupRoutes(r *mux.Router,
	authHandler *handlers.AuthHandler,
	adminHandler *handlers.AdminHandler,
	teacherHandler *handlers.TeacherHandler,
	studentHandler *handlers.StudentHandler,
	authMiddleware *middleware.AuthMiddleware) {

	// Публичные маршруты
	r.HandleFunc("/health", healthHandler).Methods("GET")
	r.HandleFunc("/auth/login", authHandler.Login).Methods("POST")

	// Админские маршруты — только ADMIN
	admin := r.PathPrefix("/admin").Subrouter()
	admin.Use(authMiddleware.AuthMiddleware)
	admin.Use(authMiddleware.RequireRole(models.RoleAdmin))

	admin.HandleFunc("/classes", adminHandler.CreateClass).Methods("POST")
	admin.HandleFunc("/classes", adminHandler.ListClasses).Methods("GET")
	admin.HandleFunc("/classes/{id}", adminHandler.UpdateClass).Methods("PUT")
	admin.HandleFunc("/classes/{id}", adminHandler.DeleteClass).Methods("DELETE")

	admin.HandleFunc("/teachers", adminHandler.CreateTeacher).Methods("POST")
	admin.HandleFunc("/teachers", adminHandler.ListTeachers).Methods("GET")
	admin.HandleFunc("/teachers/{id}", adminHandler.UpdateTeacher).Methods("PUT")
	admin.HandleFunc("/teachers/{id}", adminHandler.DeleteTeacher).Methods("DELETE")

	admin.HandleFunc("/students", adminHandler.CreateStudent).Methods("POST")
	admin.HandleFunc("/students", adminHandler.ListStudents).Methods("GET")
	admin.HandleFunc("/students/{id}", adminHandler.UpdateStudent).Methods("PUT")
	admin.HandleFunc("/students/{id}", adminHandler.DeleteStudent).Methods("DELETE")

	admin.HandleFunc("/enrollments", adminHandler.Enroll).Methods("POST")
	admin.HandleFunc("/enrollments/{classId}/{studentId}", adminHandler.Unenroll).Methods("DELETE")

	// Маршруты преподавателя
	teachers := r.PathPrefix("/teachers").Subrouter()
	teachers.Use(authMiddleware.AuthMiddleware)
	teachers.Use(authMiddleware.RequireRole(models.RoleTeacher, models.RoleAdmin))

	teachers.HandleFunc("/{teacherId}/students", teacherHandler.StudentsOfTeacher).Methods("GET")
	teachers.HandleFunc("/{teacherId}/classes/{classId}/students/{studentId}/mark",
		teacherHandler.SetMark).Methods("PUT")

	// Маршруты студента
	students := r.PathPrefix("/students").Subrouter()
	students.Use(authMiddleware.AuthMiddleware)

	students.HandleFunc("/{studentId}/marks", studentHandler.MyMarks).Methods("GET")

	// OPTIONS handlers для всех маршрутов
	r.Methods("OPTIONS").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With, Accept, Origin")
		w.WriteHeader(http.StatusOK)
	})
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	response := map[string]interface{}{
		"status":    "ok",
		"service":   "school-backend",
		"timestamp": time.Now().Format(time.RFC3339),
	}

	json.NewEncoder(w).Encode(response)
}
