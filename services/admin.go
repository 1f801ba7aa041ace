package services

import (
	"errors"
	"fmt"

	"school-backend/apperrors"
	"school-backend/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Hasher хэширует пароли перед сохранением. Сервис знает только контракт,
// конкретный алгоритм живёт в пакете auth.
type Hasher interface {
	Hash(plaintext string) (string, error)
}

type AdminService struct {
	db     *gorm.DB
	hasher Hasher
}

func NewAdminService(db *gorm.DB, hasher Hasher) *AdminService {
	return &AdminService{db: db, hasher: hasher}
}

// ---- Классы ----

func (s *AdminService) CreateClass(req models.CreateClassroomReq) (*models.Classroom, error) {
	classroom := models.Classroom{Name: req.Name}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&classroom).Error
	})
	if err != nil {
		return nil, fmt.Errorf("creating classroom: %w", err)
	}
	return &classroom, nil
}

func (s *AdminService) ListClasses() ([]models.Classroom, error) {
	var classes []models.Classroom
	if err := s.db.Order("id ASC").Find(&classes).Error; err != nil {
		return nil, fmt.Errorf("listing classrooms: %w", err)
	}
	return classes, nil
}

func (s *AdminService) UpdateClass(id uint, req models.CreateClassroomReq) (*models.Classroom, error) {
	var classroom models.Classroom

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&classroom, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("classroom %d: %w", id, apperrors.ErrNotFound)
			}
			return err
		}
		classroom.Name = req.Name
		return tx.Save(&classroom).Error
	})
	if err != nil {
		return nil, err
	}
	return &classroom, nil
}

// DeleteClass отказывает, пока на класс ссылается учитель или enrollment —
// осиротевших ссылок не оставляем, каскада нет.
func (s *AdminService) DeleteClass(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var classroom models.Classroom
		if err := tx.First(&classroom, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("classroom %d: %w", id, apperrors.ErrNotFound)
			}
			return err
		}

		var teacherCount int64
		if err := tx.Model(&models.Teacher{}).Where("class_id = ?", id).Count(&teacherCount).Error; err != nil {
			return err
		}
		var enrollmentCount int64
		if err := tx.Model(&models.Enrollment{}).Where("class_id = ?", id).Count(&enrollmentCount).Error; err != nil {
			return err
		}
		if teacherCount > 0 || enrollmentCount > 0 {
			return fmt.Errorf("classroom %d is still referenced: %w", id, apperrors.ErrConflict)
		}

		return tx.Delete(&models.Classroom{}, id).Error
	})
}

// ---- Преподаватели ----

func (s *AdminService) CreateTeacher(req models.CreateTeacherReq) (*models.Teacher, error) {
	// Хэшируем до начала транзакции
	hashed, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	var teacher models.Teacher
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.checkTeacherEmailFree(tx, req.Email, 0); err != nil {
			return err
		}

		var classroom models.Classroom
		if err := tx.First(&classroom, req.ClassID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("classroom %d: %w", req.ClassID, apperrors.ErrNotFound)
			}
			return err
		}

		teacher = models.Teacher{
			Name:        req.Name,
			Email:       req.Email,
			Role:        models.RoleTeacher,
			Password:    hashed,
			ClassroomID: classroom.ID,
		}
		if err := tx.Omit(clause.Associations).Create(&teacher).Error; err != nil {
			return err
		}
		teacher.Classroom = classroom
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &teacher, nil
}

// ListTeachers всегда отдаёт преподавателей с уже загруженным классом —
// наружу не должна уйти ссылка, которую нельзя разыменовать.
func (s *AdminService) ListTeachers() ([]models.Teacher, error) {
	var teachers []models.Teacher
	if err := s.db.Preload("Classroom").Order("id ASC").Find(&teachers).Error; err != nil {
		return nil, fmt.Errorf("listing teachers: %w", err)
	}
	return teachers, nil
}

func (s *AdminService) UpdateTeacher(id uint, req models.UpdateTeacherReq) (*models.Teacher, error) {
	var teacher models.Teacher

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&teacher, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("teacher %d: %w", id, apperrors.ErrNotFound)
			}
			return err
		}

		if req.Email != teacher.Email {
			if err := s.checkTeacherEmailFree(tx, req.Email, id); err != nil {
				return err
			}
		}

		teacher.Name = req.Name
		teacher.Email = req.Email

		if req.ClassID != nil {
			var classroom models.Classroom
			if err := tx.First(&classroom, *req.ClassID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("classroom %d: %w", *req.ClassID, apperrors.ErrNotFound)
				}
				return err
			}
			teacher.ClassroomID = classroom.ID
		}

		return tx.Omit(clause.Associations).Save(&teacher).Error
	})
	if err != nil {
		return nil, err
	}

	// Возвращаем с уже загруженным классом
	if err := s.db.Preload("Classroom").First(&teacher, id).Error; err != nil {
		return nil, fmt.Errorf("reloading teacher %d: %w", id, err)
	}
	return &teacher, nil
}

func (s *AdminService) DeleteTeacher(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var teacher models.Teacher
		if err := tx.First(&teacher, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("teacher %d: %w", id, apperrors.ErrNotFound)
			}
			return err
		}
		return tx.Delete(&models.Teacher{}, id).Error
	})
}

func (s *AdminService) checkTeacherEmailFree(tx *gorm.DB, email string, excludeID uint) error {
	var existing models.Teacher
	err := tx.Where("email = ? AND id != ?", email, excludeID).First(&existing).Error
	if err == nil {
		return fmt.Errorf("teacher with email %s already exists: %w", email, apperrors.ErrConflict)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}

// ---- Студенты ----

func (s *AdminService) CreateStudent(req models.CreateStudentReq) (*models.Student, error) {
	hashed, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	var student models.Student
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.checkStudentEmailFree(tx, req.Email, 0); err != nil {
			return err
		}

		student = models.Student{
			Name:     req.Name,
			Email:    req.Email,
			Role:     models.RoleStudent,
			Password: hashed,
		}
		return tx.Create(&student).Error
	})
	if err != nil {
		return nil, err
	}
	return &student, nil
}

func (s *AdminService) ListStudents() ([]models.Student, error) {
	var students []models.Student
	if err := s.db.Order("id ASC").Find(&students).Error; err != nil {
		return nil, fmt.Errorf("listing students: %w", err)
	}
	return students, nil
}

func (s *AdminService) UpdateStudent(id uint, req models.UpdateStudentReq) (*models.Student, error) {
	var student models.Student

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&student, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("student %d: %w", id, apperrors.ErrNotFound)
			}
			return err
		}

		if req.Email != student.Email {
			if err := s.checkStudentEmailFree(tx, req.Email, id); err != nil {
				return err
			}
		}

		student.Name = req.Name
		student.Email = req.Email
		return tx.Save(&student).Error
	})
	if err != nil {
		return nil, err
	}
	return &student, nil
}

// DeleteStudent отказывает, пока у студента есть enrollment — сначала unenroll.
func (s *AdminService) DeleteStudent(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var student models.Student
		if err := tx.First(&student, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("student %d: %w", id, apperrors.ErrNotFound)
			}
			return err
		}

		var enrollmentCount int64
		if err := tx.Model(&models.Enrollment{}).Where("student_id = ?", id).Count(&enrollmentCount).Error; err != nil {
			return err
		}
		if enrollmentCount > 0 {
			return fmt.Errorf("student %d is still enrolled: %w", id, apperrors.ErrConflict)
		}

		return tx.Delete(&models.Student{}, id).Error
	})
}

func (s *AdminService) checkStudentEmailFree(tx *gorm.DB, email string, excludeID uint) error {
	var existing models.Student
	err := tx.Where("email = ? AND id != ?", email, excludeID).First(&existing).Error
	if err == nil {
		return fmt.Errorf("student with email %s already exists: %w", email, apperrors.ErrConflict)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}

// ---- Enrollment ----

// EnrollStudent создаёт связь студент↔класс без оценки. Обе ссылки
// проверяются в той же транзакции; повторная запись той же пары — Conflict.
func (s *AdminService) EnrollStudent(req models.EnrollStudentReq) (*models.Enrollment, error) {
	var enrollment models.Enrollment

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var student models.Student
		if err := tx.First(&student, req.StudentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("student %d: %w", req.StudentID, apperrors.ErrNotFound)
			}
			return err
		}

		var classroom models.Classroom
		if err := tx.First(&classroom, req.ClassID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("classroom %d: %w", req.ClassID, apperrors.ErrNotFound)
			}
			return err
		}

		var existing models.Enrollment
		err := tx.Where("student_id = ? AND class_id = ?", req.StudentID, req.ClassID).First(&existing).Error
		if err == nil {
			return fmt.Errorf("student %d already enrolled in classroom %d: %w",
				req.StudentID, req.ClassID, apperrors.ErrConflict)
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		// Части составного ключа берутся только из разрешённых строк
		enrollment = models.Enrollment{
			StudentID: student.ID,
			ClassID:   classroom.ID,
		}
		if err := tx.Omit(clause.Associations).Create(&enrollment).Error; err != nil {
			return err
		}
		enrollment.Student = student
		enrollment.Classroom = classroom
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &enrollment, nil
}

func (s *AdminService) UnenrollStudent(studentID, classID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var enrollment models.Enrollment
		err := tx.Where("student_id = ? AND class_id = ?", studentID, classID).First(&enrollment).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("enrollment (%d, %d): %w", studentID, classID, apperrors.ErrNotFound)
			}
			return err
		}

		return tx.Where("student_id = ? AND class_id = ?", studentID, classID).
			Delete(&models.Enrollment{}).Error
	})
}
