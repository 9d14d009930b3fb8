package database

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"pathshala_backend/internals/configs"
)

func ConnectDB() *gorm.DB {
	dsn := fmt.Sprintf(
		"user=%s password=%s host=%s port=%s dbname=%s sslmode=%s",
		configs.GetEnv("DB_USER", "postgres"),
		configs.GetEnv("DB_PASSWORD", ""),
		configs.GetEnv("DB_HOST", "localhost"),
		configs.GetEnv("DB_PORT", "5432"),
		configs.GetEnv("DB_NAME", "pathshala"),
		configs.GetEnv("DB_SSLMODE", "disable"),
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: NewGormLogger(),
		// unique violations come back as gorm.ErrDuplicatedKey so the
		// submission services can treat them as per-id conflicts
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("❌ Database connection failed: %v", err)
	}

	log.Println("✅ Database connected")
	return db
}

func TunePool(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Println("[WARN] TunePool: cannot get sql.DB:", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)
}
