package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("SERVER_PORT", "")
	t.Setenv("DB_DRIVER", "")
	os.Unsetenv("DB_DRIVER")
	t.Setenv("OTEL_ENABLED", "")
	t.Setenv("OTEL_METRIC_INTERVAL", "")

	cfg := LoadConfig()

	assert.Equal(t, 3004, cfg.ServerPort)
	assert.Equal(t, DriverSQLite, cfg.DB.Driver)
	assert.Equal(t, 15*time.Second, cfg.ReadTimeout)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.Telemetry.Enabled)
	assert.Equal(t, time.Minute, cfg.Telemetry.MetricInterval)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DB_DRIVER", DriverPostgres)
	t.Setenv("DB_HOST", "db")
	t.Setenv("RUN_MIGRATIONS", "false")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("OTEL_ENABLED", "true")
	t.Setenv("OTEL_SERVICE_NAME", "postboard-test")

	cfg := LoadConfig()

	assert.Equal(t, 9090, cfg.ServerPort)
	assert.Equal(t, DriverPostgres, cfg.DB.Driver)
	assert.Equal(t, "db", cfg.DB.DbHOST)
	assert.False(t, cfg.DB.RunMigrations)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Telemetry.Enabled)
	assert.Equal(t, "postboard-test", cfg.Telemetry.ServiceName)
}

func TestDB_DSN(t *testing.T) {
	pg := DB{
		Driver:     DriverPostgres,
		DbHOST:     "localhost",
		DbPORT:     "5432",
		DbUSER:     "postgres",
		DbPASSWORD: "secret",
		DbNAME:     "postboard",
		DbSSLMODE:  "disable",
	}
	assert.Equal(t, "host=localhost port=5432 user=postgres password=secret dbname=postboard sslmode=disable", pg.DSN())

	lite := DB{Driver: DriverSQLite, Path: "./my_database.db"}
	assert.Equal(t, "file:./my_database.db?_foreign_keys=on&_busy_timeout=5000", lite.DSN())
}
