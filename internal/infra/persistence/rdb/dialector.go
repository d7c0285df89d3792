package rdb

import (
	"fmt"
	"strings"

	"bookseed/config"
	"bookseed/internal/errors"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// NewDialector returns the gorm dialector for provider connected to dsn.
func NewDialector(provider, dsn string) (gorm.Dialector, error) {
	switch provider {
	case config.ProviderPostgres:
		return postgres.Open(dsn), nil
	case config.ProviderMySQL:
		return mysql.Open(dsn), nil
	case config.ProviderSQLite:
		return sqlite.Open(dsn), nil
	default:
		return nil, errors.Errorf("unsupported database provider %q", provider)
	}
}

// BuildDSN renders the connection string for cfg. An explicit DSN wins.
func BuildDSN(cfg *config.DatabaseConfig) string {
	if cfg.DSN != "" {
		return cfg.DSN
	}

	switch cfg.Provider {
	case config.ProviderPostgres:
		sslMode := cfg.SSLMode
		if sslMode == "" {
			sslMode = "disable"
		}

		return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			cfg.Host, portOr(cfg.Port, "5432"), cfg.UserName, cfg.Password, cfg.DBName, sslMode)
	case config.ProviderMySQL:
		return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=Local",
			cfg.UserName, cfg.Password, cfg.Host, portOr(cfg.Port, "3306"), cfg.DBName)
	case config.ProviderSQLite:
		sep := "?"
		if strings.Contains(cfg.Path, "?") {
			sep = "&"
		}

		return cfg.Path + sep + "_foreign_keys=on"
	default:
		return ""
	}
}

func portOr(port, fallback string) string {
	if port == "" {
		return fallback
	}

	return port
}
