//go:build integration

package repository_test

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/AdamaC336/bay2/infrastructure/database"
	"github.com/AdamaC336/bay2/infrastructure/repository"
	"github.com/AdamaC336/bay2/infrastructure/repository/storetest"
)

var pgConn *database.Connection

func TestMain(m *testing.M) {
	if err := exec.Command("docker", "info").Run(); err != nil {
		fmt.Println("Docker indisponível, pulando testes de integração")
		os.Exit(0)
	}

	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("dashboard_test"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		log.Fatalf("falha ao subir container postgres: %v", err)
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = container.Terminate(ctx)
		log.Fatalf("falha ao obter connection string: %v", err)
	}

	pgConn, err = database.NewConnection(ctx, database.DialectPostgres, dsn)
	if err != nil {
		_ = container.Terminate(ctx)
		log.Fatalf("falha ao conectar: %v", err)
	}

	if err := database.Migrate(pgConn); err != nil {
		_ = pgConn.Close()
		_ = container.Terminate(ctx)
		log.Fatalf("falha ao migrar: %v", err)
	}

	code := m.Run()

	_ = pgConn.Close()
	_ = container.Terminate(ctx)

	os.Exit(code)
}

func TestRelationalStorage_Postgres(t *testing.T) {
	storetest.Run(t, func(t *testing.T, now repository.Clock) repository.Storage {
		_, err := pgConn.ExecContext(context.Background(),
			"TRUNCATE users, brands, revenue, ad_spend, ai_agents, ad_performance, ops_tasks RESTART IDENTITY CASCADE")
		require.NoError(t, err)

		return repository.NewStorage(pgConn, now)
	})
}
