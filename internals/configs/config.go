package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	JWTSecret        string
	JWTRefreshSecret string
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
	JWTRefreshSecret = GetEnv("JWT_REFRESH_SECRET")

	if JWTSecret == "" {
		log.Println("❌ JWT_SECRET is not set!")
	}
	if JWTRefreshSecret == "" {
		log.Println("❌ JWT_REFRESH_SECRET is not set!")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}
