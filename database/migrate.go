package database

import (
	"fmt"
	"log"

	"school-backend/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	log.Println("🔄 Starting database migration...")

	// Сначала независимые таблицы, потом зависимые
	tables := []interface{}{
		&models.Admin{},
		&models.Classroom{},
		&models.Teacher{},
		&models.Student{},
		&models.Enrollment{},
	}

	for _, table := range tables {
		if err := db.AutoMigrate(table); err != nil {
			log.Printf("❌ Error migrating table %T: %v", table, err)
			return err
		}
		log.Printf("✅ Created/Updated table for: %T", table)
	}

	createIndexes(db)

	if err := seedInitialData(db); err != nil {
		log.Printf("⚠️ Error seeding initial data: %v", err)
	}

	log.Println("✅ Database migration completed successfully!")
	return nil
}

func createIndexes(db *gorm.DB) {
	log.Println("📊 Creating indexes...")

	db.Exec("CREATE INDEX IF NOT EXISTS idx_teachers_class_id ON teachers(class_id)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_enrollments_class_id ON enrollments(class_id)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_enrollments_student_id ON enrollments(student_id)")

	log.Println("✅ Indexes created successfully!")
}

func seedInitialData(db *gorm.DB) error {
	log.Println("🌱 Seeding initial data...")

	// Проверяем, есть ли уже администратор
	var adminCount int64
	db.Model(&models.Admin{}).Count(&adminCount)

	if adminCount > 0 {
		log.Println("✅ Database already has an admin, skipping seed")
		return nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	admin := models.Admin{
		Name:     "Administrator",
		Email:    "admin@example.com",
		Role:     models.RoleAdmin,
		Password: string(hashedPassword),
	}

	if err := db.Create(&admin).Error; err != nil {
		log.Printf("❌ Error creating admin user: %v", err)
		return err
	}

	log.Printf("✅ Created admin user: %s (password: admin123)", admin.Email)
	return nil
}
