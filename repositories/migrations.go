package repositories

import (
	"context"
	"embed"

	"github.com/cockroachdb/errors"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/shelterhub/shelter-backend/infra"
	"github.com/shelterhub/shelter-backend/utils"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

type Migrater struct {
	pgConfig infra.PgConfig
}

func NewMigrater(pgConfig infra.PgConfig) *Migrater {
	return &Migrater{pgConfig: pgConfig}
}

func (m *Migrater) Run(ctx context.Context) error {
	logger := utils.LoggerFromContext(ctx)
	logger.InfoContext(ctx, "running migrations")

	goose.SetBaseFS(embedMigrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return errors.Wrap(err, "error setting dialect")
	}

	db, err := goose.OpenDBWithDriver("pgx", m.pgConfig.GetConnectionString())
	if err != nil {
		return errors.Wrap(err, "error opening connection to database")
	}
	defer db.Close()

	if err := goose.Up(db, "migrations"); err != nil {
		return errors.Wrap(err, "error running migrations")
	}
	return nil
}
