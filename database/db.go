package database

import (
	"database/sql"
	"fmt"
	"log"

	"school-backend/config"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // драйвер PostgreSQL
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// InitDB открывает соединение с PostgreSQL и возвращает GORM поверх него.
// Низкоуровневое соединение оборачивается в sqlx и отдаётся вторым значением —
// для ping, raw-запросов и корректного закрытия.
func InitDB(cfg *config.Config) (*gorm.DB, *sqlx.DB, error) {
	psqlInfo := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBSSLMode)

	// Сначала используем стандартный database/sql
	sqlDB, err := sql.Open("postgres", psqlInfo)
	if err != nil {
		return nil, nil, fmt.Errorf("error opening database: %v", err)
	}

	// Затем оборачиваем в sqlx
	dbx := sqlx.NewDb(sqlDB, "postgres")

	// Проверяем подключение
	if err := dbx.Ping(); err != nil {
		return nil, nil, fmt.Errorf("error pinging database: %v", err)
	}

	// GORM работает через то же соединение
	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	if err != nil {
		return nil, nil, fmt.Errorf("error initializing GORM: %v", err)
	}

	log.Println("Successfully connected to PostgreSQL!")
	return db, dbx, nil
}
