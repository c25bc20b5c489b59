package integration

import (
	"context"
	"log"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/shelterhub/shelter-backend/infra"
	"github.com/shelterhub/shelter-backend/repositories"
	"github.com/shelterhub/shelter-backend/usecases"
	"github.com/shelterhub/shelter-backend/utils"
)

const (
	testUser     = "postgres"
	testPassword = "pwd"
	testDbName   = "shelter"
)

var (
	testCtx  context.Context
	testPool *pgxpool.Pool
	testUc   usecases.Usecases
)

// TestMain starts a throwaway postgres container, migrates it, and wires the
// usecases against a real pool so the tests below exercise genuine
// transactions and row locks.
func TestMain(m *testing.M) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	testCtx = utils.StoreLoggerInContext(ctx, logger)

	container, err := postgres.Run(ctx, "postgres:15-alpine",
		postgres.WithDatabase(testDbName),
		postgres.WithUsername(testUser),
		postgres.WithPassword(testPassword),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	if err != nil {
		log.Fatalf("could not start postgres container: %s", err)
	}

	connectionString, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		log.Fatalf("could not read container connection string: %s", err)
	}
	pgConfig := infra.PgConfig{ConnectionString: connectionString}

	if err := repositories.NewMigrater(pgConfig).Run(testCtx); err != nil {
		log.Fatalf("could not run migrations: %s", err)
	}

	testPool, err = infra.NewPostgresConnectionPool(ctx, pgConfig)
	if err != nil {
		log.Fatalf("could not create connection pool: %s", err)
	}
	testUc = usecases.NewUsecases(repositories.NewRepositories(testPool))

	code := m.Run()

	testPool.Close()
	if err := testcontainers.TerminateContainer(container); err != nil {
		log.Printf("could not terminate postgres container: %s", err)
	}
	os.Exit(code)
}
