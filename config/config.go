package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	ServerPort     string
	DBPath         string
	FrontendOrigin string
)

func LoadConfig() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	ServerPort = getEnv("PORT", "3001")
	DBPath = getEnv("DB_PATH", "data/db.json")
	FrontendOrigin = getEnv("FRONTEND_ORIGIN", "")
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
