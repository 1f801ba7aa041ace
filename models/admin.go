package models

// Роли пользователей
const (
	RoleAdmin   = "ADMIN"
	RoleTeacher = "TEACHER"
	RoleStudent = "STUDENT"
)

type Admin struct {
	ID       uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	Name     string `json:"name" gorm:"not null;size:50"`
	Email    string `json:"email" gorm:"uniqueIndex;not null;size:50"`
	Role     string `json:"role" gorm:"not null;size:50"`
	Password string `json:"-" gorm:"not null;size:255"`
}

func (Admin) TableName() string {
	return "admins"
}
