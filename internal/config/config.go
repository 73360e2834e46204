package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite3"
)

type DB struct {
	Driver        string
	DbHOST        string
	DbPORT        string
	DbUSER        string
	DbPASSWORD    string
	DbNAME        string
	DbSSLMODE     string
	Path          string
	MaxOpenConns  int
	RunMigrations bool
}

type Log struct {
	Level      string
	Path       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// Telemetry controls the OpenTelemetry trace and metric providers.
type Telemetry struct {
	Enabled        bool
	ServiceName    string
	MetricInterval time.Duration
}

type Config struct {
	ServerPort      int
	DB              DB
	Log             Log
	Telemetry       Telemetry
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// DSN builds the connection string for the configured driver.
func (d DB) DSN() string {
	if d.Driver == DriverPostgres {
		return fmt.Sprintf(
			"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			d.DbHOST,
			d.DbPORT,
			d.DbUSER,
			d.DbPASSWORD,
			d.DbNAME,
			d.DbSSLMODE,
		)
	}

	// foreign keys are off by default in SQLite, cascades need them
	return fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000", d.Path)
}

func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return fallback
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return fallback
}

func LoadDB() DB {
	return DB{
		Driver:        getEnv("DB_DRIVER", DriverSQLite),
		DbHOST:        getEnv("DB_HOST", "localhost"),
		DbPORT:        getEnv("DB_PORT", "5432"),
		DbUSER:        getEnv("DB_USER", "postgres"),
		DbPASSWORD:    getEnv("DB_PASSWORD", "password"),
		DbNAME:        getEnv("DB_NAME", "postboard"),
		DbSSLMODE:     getEnv("DB_SSLMODE", "disable"),
		Path:          getEnv("DB_PATH", "./my_database.db"),
		MaxOpenConns:  getEnvAsInt("DB_MAX_OPEN_CONNS", 25),
		RunMigrations: getEnvBool("RUN_MIGRATIONS", true),
	}
}

func LoadLog() Log {
	return Log{
		Level:      getEnv("LOG_LEVEL", "info"),
		Path:       getEnv("LOG_PATH", ""),
		MaxSizeMB:  getEnvAsInt("LOG_MAX_SIZE_MB", 100),
		MaxBackups: getEnvAsInt("LOG_MAX_BACKUPS", 3),
		MaxAgeDays: getEnvAsInt("LOG_MAX_AGE_DAYS", 7),
		Compress:   getEnvBool("LOG_COMPRESS", false),
	}
}

func LoadTelemetry() Telemetry {
	return Telemetry{
		Enabled:        getEnvBool("OTEL_ENABLED", false),
		ServiceName:    getEnv("OTEL_SERVICE_NAME", "postboard"),
		MetricInterval: getEnvDuration("OTEL_METRIC_INTERVAL", time.Minute),
	}
}

func LoadConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	return &Config{
		ServerPort:      getEnvAsInt("SERVER_PORT", 3004),
		DB:              LoadDB(),
		Log:             LoadLog(),
		Telemetry:       LoadTelemetry(),
		ReadTimeout:     getEnvDuration("READ_TIMEOUT", 15*time.Second),
		WriteTimeout:    getEnvDuration("WRITE_TIMEOUT", 15*time.Second),
		ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
	}
}
