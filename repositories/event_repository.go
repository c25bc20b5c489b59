package repositories

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/jackc/pgx/v5"

	"github.com/shelterhub/shelter-backend/models"
	"github.com/shelterhub/shelter-backend/repositories/dbmodels"
)

// GetEventById reads one event. Passing forUpdate=true takes a row lock on
// the event, serializing concurrent assignment batches for that event.
func (repo *ShelterDbRepository) GetEventById(
	ctx context.Context,
	exec Executor,
	eventId string,
	forUpdate ...bool,
) (models.Event, error) {
	query := NewQueryBuilder().
		Select(dbmodels.SelectEventColumns...).
		From(dbmodels.TABLE_EVENTS).
		Where("id = ?", eventId)

	if len(forUpdate) > 0 && forUpdate[0] {
		query = query.Suffix("FOR UPDATE")
	}

	return SqlToModel(ctx, exec, query, dbmodels.AdaptEvent)
}

func (repo *ShelterDbRepository) GetEventRequiredSkills(
	ctx context.Context,
	exec Executor,
	eventId string,
) ([]string, error) {
	sql, args, err := NewQueryBuilder().
		Select("skill").
		From(dbmodels.TABLE_EVENT_REQUIRED_SKILLS).
		Where("event_id = ?", eventId).
		OrderBy("skill").
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "can't build sql query")
	}

	rows, err := exec.Query(ctx, sql, args...)
	if err != nil {
		return nil, errors.Wrap(err, "error executing sql query")
	}
	return pgx.CollectRows(rows, pgx.RowTo[string])
}
