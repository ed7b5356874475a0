package testutil

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/punch/message-store/internal/database"
	"github.com/testcontainers/testcontainers-go"
	tcmysql "github.com/testcontainers/testcontainers-go/modules/mysql"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ContainerTestsEnv enables the Docker-backed suites when set to any value.
const ContainerTestsEnv = "MESSAGE_STORE_CONTAINER_TESTS"

const (
	testDBName     = "mydatabase"
	testDBUser     = "user"
	testDBPassword = "password"

	postgresImage = "postgres:16-alpine"
	mysqlImage    = "mysql:8.0.36"

	startupTimeout = 2 * time.Minute
)

// RequireContainers skips the test unless Docker-backed suites were asked for.
func RequireContainers(t *testing.T) {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping container tests in short mode")
	}
	if os.Getenv(ContainerTestsEnv) == "" {
		t.Skipf("set %s=1 to run container tests", ContainerTestsEnv)
	}
}

// SetupPostgresContainer starts a throwaway PostgreSQL container and returns a migrated
// connection to it. The container is removed when t finishes.
func SetupPostgresContainer(t *testing.T) *TestDatabase {
	t.Helper()
	ctx := context.Background()

	ctr, err := tcpostgres.Run(ctx, postgresImage,
		tcpostgres.WithDatabase(testDBName),
		tcpostgres.WithUsername(testDBUser),
		tcpostgres.WithPassword(testDBPassword),
		testcontainers.WithWaitStrategy(
			// Postgres restarts once during init, so wait for the second line
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(startupTimeout),
		),
	)
	testcontainers.CleanupContainer(t, ctr)
	if err != nil {
		t.Fatalf("Failed to start postgres container: %v", err)
	}

	dsn, err := ctr.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("Failed to get postgres connection string: %v", err)
	}

	return openContainerDatabase(t, "postgres", dsn, postgres.Open(dsn))
}

// SetupMySQLContainer starts a throwaway MySQL container and returns a migrated
// connection to it. The container is removed when t finishes.
func SetupMySQLContainer(t *testing.T) *TestDatabase {
	t.Helper()
	ctx := context.Background()

	ctr, err := tcmysql.Run(ctx, mysqlImage,
		tcmysql.WithDatabase(testDBName),
		tcmysql.WithUsername(testDBUser),
		tcmysql.WithPassword(testDBPassword),
	)
	testcontainers.CleanupContainer(t, ctr)
	if err != nil {
		t.Fatalf("Failed to start mysql container: %v", err)
	}

	dsn, err := ctr.ConnectionString(ctx, "parseTime=true")
	if err != nil {
		t.Fatalf("Failed to get mysql connection string: %v", err)
	}

	return openContainerDatabase(t, "mysql", dsn, mysql.Open(dsn))
}

func openContainerDatabase(t *testing.T, driver, dsn string, dialector gorm.Dialector) *TestDatabase {
	t.Helper()

	db, err := database.Open(dialector, database.PoolConfig{MaxOpenConns: 5, MaxIdleConns: 2})
	if err != nil {
		t.Fatalf("Failed to connect to %s container: %v", driver, err)
	}

	if err := database.Migrate(db); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	return &TestDatabase{
		DB:     db,
		DSN:    dsn,
		Driver: driver,
	}
}
