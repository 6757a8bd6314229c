package database

import (
	"log"
	"os"
	"path/filepath"

	"hospital-assist-service/internal/config"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Stores holds the two independent read stores the service queries.
type Stores struct {
	Hospital *gorm.DB
	Users    *gorm.DB
}

// Connect opens both SQLite stores and fails fast if either is unreachable.
// Each handle owns a connection pool; requests borrow a connection per query
// and the driver releases it on every exit path.
func Connect(cfg *config.Config) *Stores {
	return &Stores{
		Hospital: open(ResolvePath(cfg.Database.HospitalPath, "hospital_service.db"), cfg.Server.GinMode),
		Users:    open(ResolvePath(cfg.Database.UsersPath, "users.db"), cfg.Server.GinMode),
	}
}

func open(path string, ginMode string) *gorm.DB {
	// Configure GORM logger
	gormLogger := logger.Default.LogMode(logger.Info)
	if ginMode == "release" {
		gormLogger = logger.Default.LogMode(logger.Error)
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormLogger,
	})
	if err != nil {
		log.Fatalf("Failed to open database %s: %v", path, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get database instance for %s: %v", path, err)
	}

	// Test the connection
	if err := sqlDB.Ping(); err != nil {
		log.Fatalf("Failed to ping database %s: %v", path, err)
	}

	log.Printf("Successfully connected to database: %s", path)

	return db
}

// ResolvePath returns the configured path when the file exists, otherwise a
// file with the default name co-located with the executable.
func ResolvePath(configured, defaultName string) string {
	if _, err := os.Stat(configured); err == nil {
		return configured
	}
	exe, err := os.Executable()
	if err != nil {
		return defaultName
	}
	return filepath.Join(filepath.Dir(exe), defaultName)
}
