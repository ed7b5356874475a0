package testutil

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/punch/message-store/internal/database"
	"github.com/punch/message-store/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// TestDatabase holds a migrated test database connection
type TestDatabase struct {
	DB     *gorm.DB
	DSN    string
	Driver string
}

// SetupTestDatabase creates an in-memory SQLite database for integration tests
// No Docker required! Every call gets its own database name, so suites never share rows.
func SetupTestDatabase(t *testing.T) *TestDatabase {
	t.Helper()

	// cache=shared keeps one database across all pooled connections
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())

	// The database lives as long as one connection stays open
	db, err := database.Open(sqlite.Open(dsn), database.PoolConfig{MaxIdleConns: 2})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	return &TestDatabase{
		DB:     db,
		DSN:    dsn,
		Driver: "sqlite",
	}
}

// Teardown cleans up the test database (closes connection)
func (td *TestDatabase) Teardown(t *testing.T) {
	t.Helper()

	if err := database.Close(td.DB); err != nil {
		t.Logf("Warning: Failed to close database: %v", err)
	}
}

// ResetDatabase drops and recreates the messages table so IDs start again at 1.
// Plain DELETE would keep the auto-increment counter on every backend.
func ResetDatabase(t *testing.T, db *gorm.DB) {
	t.Helper()

	if err := db.Migrator().DropTable(&models.Message{}); err != nil {
		t.Fatalf("Failed to drop messages table: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}
}

// CountMessages returns the number of rows in the messages table
func CountMessages(t *testing.T, db *gorm.DB) int64 {
	t.Helper()

	var count int64
	if err := db.Model(&models.Message{}).Count(&count).Error; err != nil {
		t.Fatalf("Failed to count messages: %v", err)
	}
	return count
}
