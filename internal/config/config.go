package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv string

	// Persistence. The terminal defaults to a local sqlite file; shops that
	// run a central database point DB_DRIVER at postgres instead.
	DBDriver   string
	SQLitePath string
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string

	// Receipt header and printer geometry.
	StoreName    string
	StoreAddress string
	StorePhone   string
	ReceiptWidth int

	KeybindPath string

	// bcrypt hash checked by the lock screen and the price-unlock challenge.
	SupervisorPINHash string
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:            os.Getenv("APP_ENV"),
		DBDriver:          os.Getenv("DB_DRIVER"),
		SQLitePath:        os.Getenv("SQLITE_PATH"),
		DBHost:            os.Getenv("DB_HOST"),
		DBUser:            os.Getenv("DB_USER"),
		DBPassword:        os.Getenv("DB_PASSWORD"),
		DBName:            os.Getenv("DB_NAME"),
		DBPort:            os.Getenv("DB_PORT"),
		StoreName:         os.Getenv("STORE_NAME"),
		StoreAddress:      os.Getenv("STORE_ADDRESS"),
		StorePhone:        os.Getenv("STORE_PHONE"),
		ReceiptWidth:      parseInt(os.Getenv("RECEIPT_WIDTH"), 32),
		KeybindPath:       os.Getenv("KEYBIND_PATH"),
		SupervisorPINHash: os.Getenv("SUPERVISOR_PIN_HASH"),
	}

	if cfg.DBDriver == "" {
		cfg.DBDriver = "sqlite"
	}
	if cfg.SQLitePath == "" {
		cfg.SQLitePath = "kasirpos.db"
	}
	if cfg.KeybindPath == "" {
		cfg.KeybindPath = "keybinds.yaml"
	}
	if cfg.StoreName == "" {
		cfg.StoreName = "KasirPOS"
	}

	if cfg.DBDriver == "postgres" && cfg.DBHost == "" {
		log.Fatal("Environment variables not loaded properly: postgres driver requires DB_HOST")
	}

	return cfg
}

func parseInt(s string, fallback int) int {
	if s == "" {
		return fallback
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
