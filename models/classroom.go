package models

type Classroom struct {
	ID   uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	Name string `json:"name" gorm:"not null;size:50"`
}

func (Classroom) TableName() string {
	return "classes"
}
