package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"crpms/internal/models"
)

// Settings collects everything the server reads from the environment.
type Settings struct {
	ListenAddr string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	DBTimezone string

	// MaxOpenConns bounds the shared connection pool.
	MaxOpenConns int
}

// Load reads .env (if present) and assembles Settings with defaults.
func Load() Settings {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found – relying on env vars")
	}

	return Settings{
		ListenAddr:   getEnv("LISTEN_ADDR", ":3000"),
		DBHost:       getEnv("DB_HOST", "localhost"),
		DBPort:       getEnv("DB_PORT", "5432"),
		DBUser:       getEnv("DB_USER", "postgres"),
		DBPassword:   getEnv("DB_PASSWORD", "password"),
		DBName:       getEnv("DB_NAME", "crpms"),
		DBSSLMode:    getEnv("DB_SSLMODE", "disable"),
		DBTimezone:   getEnv("DB_TIMEZONE", "UTC"),
		MaxOpenConns: getEnvInt("DB_MAX_CONNS", 10),
	}
}

// NewDB opens the database, bounds its connection pool and runs the
// auto-migration. The returned handle is passed to the controllers; the
// caller owns its lifecycle and closes it on shutdown.
func NewDB(s Settings) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		s.DBHost, s.DBUser, s.DBPassword, s.DBName, s.DBPort, s.DBSSLMode, s.DBTimezone,
	)

	// TranslateError turns unique-constraint violations into
	// gorm.ErrDuplicatedKey so handlers can map them to 409.
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(s.MaxOpenConns)

	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("auto-migration failed: %w", err)
	}

	return db, nil
}

// Migrate creates or updates the schema for every entity.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Car{},
		&models.Service{},
		&models.ServiceRecord{},
		&models.Package{},
		&models.ServicePackage{},
		&models.Payment{},
		&models.User{},
		&models.Employee{},
		&models.Department{},
		&models.Salary{},
	)
}

// getEnv reads an environment variable or returns the provided default
func getEnv(key, defaultValue string) string {
	if v, exists := os.LookupEnv(key); exists {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v, exists := os.LookupEnv(key); exists {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		log.Printf("ignoring non-numeric %s=%q", key, v)
	}
	return defaultValue
}
