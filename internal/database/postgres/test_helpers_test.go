package postgres

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/osse101/CraftMarket_Go/internal/database"
)

var (
	testDBConnString string
	testPool         *pgxpool.Pool
)

func TestMain(m *testing.M) {
	flag.Parse()

	var terminate func()
	if !testing.Short() {
		testDBConnString, terminate = setupContainer(context.Background())
	}

	code := m.Run()

	if testPool != nil {
		testPool.Close()
	}
	if terminate != nil {
		terminate()
	}
	os.Exit(code)
}

func setupContainer(ctx context.Context) (string, func()) {
	// Handle potential panics from testcontainers
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("Recovered from panic in setupContainer: %v\n", r)
		}
	}()

	pgContainer, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		fmt.Printf("WARNING: Failed to start postgres container: %v\n", err)
		return "", func() {}
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		fmt.Printf("WARNING: Failed to get connection string: %v\n", err)
		_ = pgContainer.Terminate(ctx)
		return "", func() {}
	}

	return connStr, func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			fmt.Printf("Failed to terminate container: %v\n", err)
		}
	}
}

// requireDB returns a migrated pool with all market tables emptied
func requireDB(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	if testDBConnString == "" {
		t.Skip("Skipping integration test: database not available")
	}

	ctx := context.Background()
	if testPool == nil {
		pool, err := database.NewPool(ctx, database.PoolConfig{ConnString: testDBConnString, MaxConns: 5, MaxConnIdle: time.Minute, MaxConnLifetime: 5 * time.Minute})
		if err != nil {
			t.Fatalf("failed to connect to database: %v", err)
		}
		if err := database.Migrate(ctx, pool); err != nil {
			pool.Close()
			t.Fatalf("failed to apply migrations: %v", err)
		}
		testPool = pool
	}

	_, err := testPool.Exec(ctx, "TRUNCATE "+strings.Join(database.MarketTables, ", ")+" RESTART IDENTITY CASCADE")
	if err != nil {
		t.Fatalf("failed to reset tables: %v", err)
	}
	return testPool
}
