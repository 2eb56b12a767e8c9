package database

import (
	"fmt"

	"fintrack/internal/config"
)

// DriverSQLite and DriverPostgres are the supported store backends.
// SQLite is the default: the tracker is a single-tenant local tool.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// PostgresDSN returns the GORM connection string for a postgres backend.
func PostgresDSN(cfg *config.Config) string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBSSLMode)
}

// MigrateURL returns the golang-migrate database URL for the configured backend.
func MigrateURL(cfg *config.Config) (string, error) {
	switch cfg.DBDriver {
	case DriverSQLite:
		return "sqlite3://" + cfg.DBPath, nil
	case DriverPostgres:
		return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
			cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName, cfg.DBSSLMode), nil
	default:
		return "", fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
}

// MigrationsPath returns the file source URL with the dialect-specific
// migration set for the configured backend.
func MigrationsPath(cfg *config.Config) string {
	return "file://migrations/" + cfg.DBDriver
}
