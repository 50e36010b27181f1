package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	DBDSN         string
	LogFile       string
	WhatsAppPhone string
}

func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("[config] no .env file, using system environment")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "romix.db" // sqlite file in project root
	}
	logFile := os.Getenv("LOG_FILE")
	if logFile == "" {
		logFile = "./romix.log"
	}
	phone := os.Getenv("WHATSAPP_PHONE")
	if phone == "" {
		phone = "5491154272065"
	}
	cfg := Config{Port: port, DBDSN: dsn, LogFile: logFile, WhatsAppPhone: phone}
	log.Printf("[config] PORT=%s DB_DSN=%s LOG_FILE=%s WHATSAPP_PHONE=%s",
		cfg.Port, cfg.DBDSN, cfg.LogFile, cfg.WhatsAppPhone)
	return cfg
}
