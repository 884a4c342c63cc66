package config

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DSN builds the data source name for the configured driver.
func (c *Config) DSN() string {
	if c.IsTest() {
		return "file::memory:?cache=shared"
	}
	switch c.DBDriver {
	case "postgres":
		return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable TimeZone=UTC",
			c.DBHost, c.DBPort, c.DBUser, c.DBPass, c.DBName)
	case "sqlite":
		return c.DBName
	default:
		return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&loc=UTC", c.DBUser, c.DBPass, c.DBHost, c.DBPort, c.DBName)
	}
}

// ConnectDatabase opens a GORM connection for the configured driver.
// The test environment always uses in-memory SQLite.
func ConnectDatabase(cfg *Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch {
	case cfg.IsTest(), cfg.DBDriver == "sqlite":
		dialector = sqlite.Open(cfg.DSN())
	case cfg.DBDriver == "postgres":
		dialector = postgres.Open(cfg.DSN())
	default:
		dialector = mysql.Open(cfg.DSN())
	}

	gormCfg := &gorm.Config{TranslateError: true}
	if !cfg.IsDev() {
		gormCfg.Logger = logger.Default.LogMode(logger.Warn)
	}

	db, err := gorm.Open(dialector, gormCfg)
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", cfg.DBDriver, err)
	}
	return db, nil
}
