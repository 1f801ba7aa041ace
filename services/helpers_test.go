package services

import (
	"fmt"
	"testing"

	"school-backend/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// plainHasher — детерминированный хэшер для тестов, bcrypt здесь не нужен
type plainHasher struct{}

func (plainHasher) Hash(plaintext string) (string, error) {
	return "hashed:" + plaintext, nil
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// Отдельная именованная in-memory база на каждый тест
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("opening sqlite: %v", err)
	}

	err = db.AutoMigrate(
		&models.Admin{},
		&models.Classroom{},
		&models.Teacher{},
		&models.Student{},
		&models.Enrollment{},
	)
	if err != nil {
		t.Fatalf("migrating schema: %v", err)
	}
	return db
}

func mustCreateClass(t *testing.T, s *AdminService, name string) *models.Classroom {
	t.Helper()
	classroom, err := s.CreateClass(models.CreateClassroomReq{Name: name})
	if err != nil {
		t.Fatalf("creating classroom %q: %v", name, err)
	}
	return classroom
}

func mustCreateTeacher(t *testing.T, s *AdminService, name, email string, classID uint) *models.Teacher {
	t.Helper()
	teacher, err := s.CreateTeacher(models.CreateTeacherReq{
		Name:     name,
		Email:    email,
		Password: "secret",
		ClassID:  classID,
	})
	if err != nil {
		t.Fatalf("creating teacher %q: %v", name, err)
	}
	return teacher
}

func mustCreateStudent(t *testing.T, s *AdminService, name, email string) *models.Student {
	t.Helper()
	student, err := s.CreateStudent(models.CreateStudentReq{
		Name:     name,
		Email:    email,
		Password: "secret",
	})
	if err != nil {
		t.Fatalf("creating student %q: %v", name, err)
	}
	return student
}

func mustEnroll(t *testing.T, s *AdminService, studentID, classID uint) *models.Enrollment {
	t.Helper()
	enrollment, err := s.EnrollStudent(models.EnrollStudentReq{
		StudentID: studentID,
		ClassID:   classID,
	})
	if err != nil {
		t.Fatalf("enrolling student %d into classroom %d: %v", studentID, classID, err)
	}
	return enrollment
}

func countEnrollments(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var count int64
	if err := db.Model(&models.Enrollment{}).Count(&count).Error; err != nil {
		t.Fatalf("counting enrollments: %v", err)
	}
	return count
}
