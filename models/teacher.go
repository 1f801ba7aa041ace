package models

type Teacher struct {
	ID          uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string    `json:"name" gorm:"not null;size:50"`
	Email       string    `json:"email" gorm:"uniqueIndex;not null;size:50"`
	Role        string    `json:"role" gorm:"not null;size:50"`
	Password    string    `json:"-" gorm:"not null;size:255"`
	ClassroomID uint      `json:"classId" gorm:"column:class_id;not null"`
	Classroom   Classroom `json:"classroom" gorm:"foreignKey:ClassroomID"`
}

func (Teacher) TableName() string {
	return "teachers"
}
