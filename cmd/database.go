package cmd

import (
	"fmt"

	"scheduling/internal/adapters/out/postgres"

	"github.com/glebarez/sqlite"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenDatabase connects to the configured store and brings its schema up to date.
func OpenDatabase(cfg Config) (*gorm.DB, error) {
	cfg = cfg.WithDefaults()
	gormCfg := &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	}

	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "postgres":
		dialector = postgresdriver.Open(PostgresDSN(cfg))
	case "sqlite":
		dialector = sqlite.Open(SQLiteDSN(cfg))
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q: use postgres or sqlite", cfg.DBDriver)
	}

	db, err := gorm.Open(dialector, gormCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if cfg.DBDriver == "sqlite" {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}

	if err := postgres.Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return db, nil
}

func PostgresDSN(cfg Config) string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBSslMode,
	)
}

func SQLiteDSN(cfg Config) string {
	if cfg.SQLitePath == "" {
		return "file:scheduling?mode=memory&cache=shared&_pragma=busy_timeout(5000)"
	}
	return fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", cfg.SQLitePath)
}
