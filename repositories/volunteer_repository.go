package repositories

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/jackc/pgx/v5"

	"github.com/shelterhub/shelter-backend/models"
	"github.com/shelterhub/shelter-backend/repositories/dbmodels"
)

// ListVolunteers returns every user whose role marks them as a volunteer,
// ordered by id so downstream ranking is deterministic.
func (repo *ShelterDbRepository) ListVolunteers(
	ctx context.Context,
	exec Executor,
) ([]models.Volunteer, error) {
	query := NewQueryBuilder().
		Select(dbmodels.SelectVolunteerColumns...).
		From(dbmodels.TABLE_USERS).
		Where("role = ?", models.VOLUNTEER_ROLE).
		OrderBy("id")

	return SqlToListOfModels(ctx, exec, query, dbmodels.AdaptVolunteer)
}

func (repo *ShelterDbRepository) GetVolunteerSkills(
	ctx context.Context,
	exec Executor,
	volunteerId string,
) ([]string, error) {
	sql, args, err := NewQueryBuilder().
		Select("skill").
		From(dbmodels.TABLE_VOLUNTEER_SKILLS).
		Where("user_id = ?", volunteerId).
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

func (repo *ShelterDbRepository) GetVolunteerAvailability(
	ctx context.Context,
	exec Executor,
	volunteerId string,
) ([]models.AvailabilityWindow, error) {
	query := NewQueryBuilder().
		Select(dbmodels.SelectAvailabilityWindowColumns...).
		From(dbmodels.TABLE_VOLUNTEER_AVAILABILITY).
		Where("user_id = ?", volunteerId).
		OrderBy("day_of_week", "start_time")

	return SqlToListOfModels(ctx, exec, query, dbmodels.AdaptAvailabilityWindow)
}
