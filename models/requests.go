package models

// Запросы для admin-операций
type CreateClassroomReq struct {
	Name string `json:"name"`
}

type CreateTeacherReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	ClassID  uint   `json:"classId"`
}

type UpdateTeacherReq struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	ClassID *uint  `json:"classId,omitempty"`
}

type CreateStudentReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UpdateStudentReq struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type EnrollStudentReq struct {
	StudentID uint `json:"studentId"`
	ClassID   uint `json:"classId"`
}

type MarkUpdateReq struct {
	Mark string `json:"mark"`
}

// Запросы для аутентификации
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
	ID    uint   `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}
