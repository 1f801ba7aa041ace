package models

// Enrollment связывает студента с классом. Составной ключ (student_id, class_id),
// суррогатного id нет — одна пара не может существовать дважды.
type Enrollment struct {
	StudentID uint      `json:"studentId" gorm:"column:student_id;primaryKey;autoIncrement:false"`
	ClassID   uint      `json:"classId" gorm:"column:class_id;primaryKey;autoIncrement:false"`
	Student   Student   `json:"student" gorm:"foreignKey:StudentID"`
	Classroom Classroom `json:"classroom" gorm:"foreignKey:ClassID"`
	Mark      *string   `json:"mark" gorm:"size:10"`
}

func (Enrollment) TableName() string {
	return "enrollments"
}
