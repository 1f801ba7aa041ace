package services

import "testing"

func TestMyMarks(t *testing.T) {
	db := newTestDB(t)
	admin := NewAdminService(db, plainHasher{})
	teachers := NewTeacherService(db)
	s := NewStudentService(db)

	math := mustCreateClass(t, admin, "Math101")
	bio := mustCreateClass(t, admin, "Bio201")
	teacher := mustCreateTeacher(t, admin, "T1", "t1@example.com", math.ID)
	student := mustCreateStudent(t, admin, "S1", "s1@example.com")

	mustEnroll(t, admin, student.ID, math.ID)
	mustEnroll(t, admin, student.ID, bio.ID)

	if _, err := teachers.SetMark(teacher.ID, math.ID, student.ID, "A"); err != nil {
		t.Fatalf("SetMark: %v", err)
	}

	marks, err := s.MyMarks(student.ID)
	if err != nil {
		t.Fatalf("MyMarks: %v", err)
	}
	if len(marks) != 2 {
		t.Fatalf("expected 2 enrollments, got %d", len(marks))
	}

	byClass := map[uint]*string{}
	for _, e := range marks {
		if e.Classroom.ID != e.ClassID || e.Classroom.Name == "" {
			t.Fatalf("expected resolvable classroom on enrollment, got %+v", e.Classroom)
		}
		byClass[e.ClassID] = e.Mark
	}

	if byClass[math.ID] == nil || *byClass[math.ID] != "A" {
		t.Fatalf("expected mark A in Math101, got %v", byClass[math.ID])
	}
	if byClass[bio.ID] != nil {
		t.Fatalf("expected unset mark in Bio201, got %q", *byClass[bio.ID])
	}
}

func TestMyMarksUnknownStudent(t *testing.T) {
	db := newTestDB(t)
	s := NewStudentService(db)

	marks, err := s.MyMarks(12345)
	if err != nil {
		t.Fatalf("MyMarks: %v", err)
	}
	if len(marks) != 0 {
		t.Fatalf("expected empty list for unknown student, got %d", len(marks))
	}
}
