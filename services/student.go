package services

import (
	"fmt"

	"school-backend/models"

	"gorm.io/gorm"
)

type StudentService struct {
	db *gorm.DB
}

func NewStudentService(db *gorm.DB) *StudentService {
	return &StudentService{db: db}
}

// MyMarks — все enrollment студента с классом и оценкой (mark может быть null).
// Для незачисленного или несуществующего студента список просто пуст.
func (s *StudentService) MyMarks(studentID uint) ([]models.Enrollment, error) {
	var enrollments []models.Enrollment
	err := s.db.Preload("Student").Preload("Classroom").
		Where("student_id = ?", studentID).
		Order("class_id ASC").
		Find(&enrollments).Error
	if err != nil {
		return nil, fmt.Errorf("listing marks of student %d: %w", studentID, err)
	}
	return enrollments, nil
}
