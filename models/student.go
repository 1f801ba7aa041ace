package models

type Student struct {
	ID       uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	Name     string `json:"name" gorm:"not null;size:50"`
	Email    string `json:"email" gorm:"uniqueIndex;not null;size:50"`
	Role     string `json:"role" gorm:"not null;size:50"`
	Password string `json:"-" gorm:"not null;size:255"`
}

func (Student) TableName() string {
	return "students"
}
