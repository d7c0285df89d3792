//go:build integration

package rdbtest

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"bookseed/config"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

var (
	pgOnce sync.Once
	pgDSN  string
	pgErr  error
)

// OpenPostgres starts one postgres container per test process and returns a
// migrated connection to it. Run with -tags integration.
func OpenPostgres(t *testing.T) *gorm.DB {
	t.Helper()

	pgOnce.Do(func() {
		pgDSN, pgErr = startPostgres()
	})
	if pgErr != nil {
		t.Fatalf("rdbtest: start postgres: %v", pgErr)
	}

	cfg := &config.Config{
		Database: &config.DatabaseConfig{
			Provider: config.ProviderPostgres,
			DSN:      pgDSN,
		},
	}

	return open(t, cfg)
}

func startPostgres() (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:17-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "bookseed",
			"POSTGRES_PASSWORD": "bookseed",
			"POSTGRES_DB":       "bookseed",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return "", fmt.Errorf("start container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return "", fmt.Errorf("container host: %w", err)
	}

	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		return "", fmt.Errorf("mapped port: %w", err)
	}

	return fmt.Sprintf("host=%s port=%s user=bookseed password=bookseed dbname=bookseed sslmode=disable", host, port.Port()), nil
}
