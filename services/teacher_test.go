package services

import (
	"errors"
	"testing"

	"school-backend/apperrors"
)

func TestSetMarkSuccessAndOverwrite(t *testing.T) {
	db := newTestDB(t)
	admin := NewAdminService(db, plainHasher{})
	s := NewTeacherService(db)

	classroom := mustCreateClass(t, admin, "Math101")
	teacher := mustCreateTeacher(t, admin, "T1", "t1@example.com", classroom.ID)
	student := mustCreateStudent(t, admin, "S1", "s1@example.com")
	mustEnroll(t, admin, student.ID, classroom.ID)

	enrollment, err := s.SetMark(teacher.ID, classroom.ID, student.ID, "A")
	if err != nil {
		t.Fatalf("SetMark: %v", err)
	}
	if enrollment.Mark == nil || *enrollment.Mark != "A" {
		t.Fatalf("expected mark A, got %v", enrollment.Mark)
	}
	if enrollment.Student.ID != student.ID || enrollment.Classroom.ID != classroom.ID {
		t.Fatal("expected student and classroom embedded in returned enrollment")
	}

	// Повторная запись перетирает оценку
	enrollment, err = s.SetMark(teacher.ID, classroom.ID, student.ID, "B+")
	if err != nil {
		t.Fatalf("SetMark overwrite: %v", err)
	}
	if *enrollment.Mark != "B+" {
		t.Fatalf("expected mark B+, got %q", *enrollment.Mark)
	}
}

func TestSetMarkFailureBranches(t *testing.T) {
	db := newTestDB(t)
	admin := NewAdminService(db, plainHasher{})
	s := NewTeacherService(db)

	math := mustCreateClass(t, admin, "Math101")
	bio := mustCreateClass(t, admin, "Bio201")
	teacher := mustCreateTeacher(t, admin, "T1", "t1@example.com", math.ID)
	student := mustCreateStudent(t, admin, "S1", "s1@example.com")
	mustEnroll(t, admin, student.ID, math.ID)

	// Преподаватель не существует
	_, err := s.SetMark(999, math.ID, student.ID, "A")
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing teacher, got %v", err)
	}
	if errors.Is(err, apperrors.ErrForbidden) {
		t.Fatal("missing teacher must not be reported as Forbidden")
	}

	// Преподаватель не владеет классом
	_, err = s.SetMark(teacher.ID, bio.ID, student.ID, "A")
	if !errors.Is(err, apperrors.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for foreign class, got %v", err)
	}
	if errors.Is(err, apperrors.ErrNotFound) {
		t.Fatal("ownership violation must not be reported as NotFound")
	}

	// Студент не зачислен
	outsider := mustCreateStudent(t, admin, "S2", "s2@example.com")
	_, err = s.SetMark(teacher.ID, math.ID, outsider.ID, "A")
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing enrollment, got %v", err)
	}
}

func TestStudentsOfTeacher(t *testing.T) {
	db := newTestDB(t)
	admin := NewAdminService(db, plainHasher{})
	s := NewTeacherService(db)

	math := mustCreateClass(t, admin, "Math101")
	bio := mustCreateClass(t, admin, "Bio201")
	teacher := mustCreateTeacher(t, admin, "T1", "t1@example.com", math.ID)

	s1 := mustCreateStudent(t, admin, "S1", "s1@example.com")
	s2 := mustCreateStudent(t, admin, "S2", "s2@example.com")
	s3 := mustCreateStudent(t, admin, "S3", "s3@example.com")

	mustEnroll(t, admin, s1.ID, math.ID)
	mustEnroll(t, admin, s2.ID, math.ID)
	// s2 числится и в другом классе, но дубликата быть не должно
	mustEnroll(t, admin, s2.ID, bio.ID)
	// s3 только в другом классе
	mustEnroll(t, admin, s3.ID, bio.ID)

	students, err := s.StudentsOfTeacher(teacher.ID)
	if err != nil {
		t.Fatalf("StudentsOfTeacher: %v", err)
	}

	if len(students) != 2 {
		t.Fatalf("expected exactly 2 students, got %d: %+v", len(students), students)
	}
	seen := map[uint]bool{}
	for _, st := range students {
		if seen[st.ID] {
			t.Fatalf("duplicate student %d in result", st.ID)
		}
		seen[st.ID] = true
	}
	if !seen[s1.ID] || !seen[s2.ID] {
		t.Fatalf("expected students %d and %d, got %+v", s1.ID, s2.ID, students)
	}

	_, err = s.StudentsOfTeacher(999)
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing teacher, got %v", err)
	}
}

func TestStudentsOfClassroomEmpty(t *testing.T) {
	db := newTestDB(t)
	admin := NewAdminService(db, plainHasher{})
	s := NewTeacherService(db)

	classroom := mustCreateClass(t, admin, "Math101")

	students, err := s.StudentsOfClassroom(classroom.ID)
	if err != nil {
		t.Fatalf("StudentsOfClassroom: %v", err)
	}
	if len(students) != 0 {
		t.Fatalf("expected no students, got %d", len(students))
	}
}

// Сценарий из двух классов: T1 ставит оценку своему студенту, T2 в чужом
// классе получает Forbidden.
func TestTwoClassroomScenario(t *testing.T) {
	db := newTestDB(t)
	admin := NewAdminService(db, plainHasher{})
	s := NewTeacherService(db)

	math := mustCreateClass(t, admin, "Math101")
	t1 := mustCreateTeacher(t, admin, "T1", "t1@example.com", math.ID)
	s1 := mustCreateStudent(t, admin, "S1", "s1@example.com")
	mustEnroll(t, admin, s1.ID, math.ID)

	enrollment, err := s.SetMark(t1.ID, math.ID, s1.ID, "B+")
	if err != nil {
		t.Fatalf("SetMark: %v", err)
	}
	if enrollment.StudentID != s1.ID || enrollment.ClassID != math.ID || *enrollment.Mark != "B+" {
		t.Fatalf("unexpected enrollment: %+v", enrollment)
	}

	bio := mustCreateClass(t, admin, "Bio201")
	t2 := mustCreateTeacher(t, admin, "T2", "t2@example.com", bio.ID)

	_, err = s.SetMark(t2.ID, math.ID, s1.ID, "A")
	if !errors.Is(err, apperrors.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for foreign teacher, got %v", err)
	}

	// Оценка не изменилась
	marks, err := NewStudentService(db).MyMarks(s1.ID)
	if err != nil {
		t.Fatalf("MyMarks: %v", err)
	}
	if len(marks) != 1 || marks[0].Mark == nil || *marks[0].Mark != "B+" {
		t.Fatalf("mark must stay B+ after forbidden attempt, got %+v", marks)
	}
}
