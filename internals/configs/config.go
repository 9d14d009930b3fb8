package configs

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var (
	JWTSecret string
	JWTExpiry time.Duration
	AppEnv    string

	AdminSeedName     string
	AdminSeedPassword string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No .env file found, using system ENV")
	} else {
		log.Println("✅ .env file loaded")
	}

	JWTSecret = GetEnv("JWT_SECRET")
	AppEnv = GetEnv("APP_ENV", "development")
	AdminSeedName = GetEnv("ADMIN_NAME", "admin")
	AdminSeedPassword = GetEnv("ADMIN_PASSWORD", "admin123")

	// token lifetime in hours, default 7 days
	hours := 168
	if v := GetEnv("JWT_EXPIRES_HOURS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			hours = n
		}
	}
	JWTExpiry = time.Duration(hours) * time.Hour

	if JWTSecret == "" {
		log.Println("❌ JWT_SECRET is not set!")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}
