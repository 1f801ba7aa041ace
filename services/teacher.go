package services

import (
	"errors"
	"fmt"

	"school-backend/apperrors"
	"school-backend/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TeacherService struct {
	db *gorm.DB
}

func NewTeacherService(db *gorm.DB) *TeacherService {
	return &TeacherService{db: db}
}

// StudentsOfTeacher — студенты единственного класса преподавателя.
func (s *TeacherService) StudentsOfTeacher(teacherID uint) ([]models.Student, error) {
	var teacher models.Teacher
	if err := s.db.First(&teacher, teacherID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("teacher %d: %w", teacherID, apperrors.ErrNotFound)
		}
		return nil, err
	}

	return s.StudentsOfClassroom(teacher.ClassroomID)
}

// StudentsOfClassroom — все студенты с enrollment в данном классе.
// DISTINCT избыточен при уникальности пары, но оставлен защитно.
func (s *TeacherService) StudentsOfClassroom(classID uint) ([]models.Student, error) {
	var students []models.Student
	err := s.db.Model(&models.Student{}).
		Distinct("students.*").
		Joins("INNER JOIN enrollments ON enrollments.student_id = students.id").
		Where("enrollments.class_id = ?", classID).
		Order("students.id ASC").
		Find(&students).Error
	if err != nil {
		return nil, fmt.Errorf("listing students of classroom %d: %w", classID, err)
	}
	return students, nil
}

// SetMark выставляет оценку. Три независимые проверки, каждая со своим
// исходом: преподаватель существует (NotFound), преподаватель владеет
// классом (Forbidden), студент зачислен в класс (NotFound).
func (s *TeacherService) SetMark(teacherID, classID, studentID uint, mark string) (*models.Enrollment, error) {
	var enrollment models.Enrollment

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var teacher models.Teacher
		if err := tx.First(&teacher, teacherID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("teacher %d: %w", teacherID, apperrors.ErrNotFound)
			}
			return err
		}

		if teacher.ClassroomID != classID {
			return fmt.Errorf("teacher does not own this class: %w", apperrors.ErrForbidden)
		}

		err := tx.Preload("Student").Preload("Classroom").
			Where("student_id = ? AND class_id = ?", studentID, classID).
			First(&enrollment).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("enrollment (%d, %d): %w", studentID, classID, apperrors.ErrNotFound)
			}
			return err
		}

		enrollment.Mark = &mark
		return tx.Omit(clause.Associations).Save(&enrollment).Error
	})
	if err != nil {
		return nil, err
	}
	return &enrollment, nil
}
