package repositories

import (
	"context"

	"github.com/cockroachdb/errors"

	"github.com/shelterhub/shelter-backend/models"
	"github.com/shelterhub/shelter-backend/repositories/dbmodels"
)

// CountActiveAssignments counts the volunteers currently holding a slot on
// the event: history rows with status registered or attended, joined through
// the event's tasks. Cancelled rows free their slot.
func (repo *ShelterDbRepository) CountActiveAssignments(
	ctx context.Context,
	exec Executor,
	eventId string,
) (int, error) {
	sql, args, err := NewQueryBuilder().
		Select("COUNT(*)").
		From(dbmodels.TABLE_VOLUNTEER_HISTORY + " AS vh").
		Join(dbmodels.TABLE_TASKS + " AS t ON t.id = vh.task_id").
		Where("t.event_id = ?", eventId).
		Where("vh.participation_status IN (?,?)",
			string(models.ParticipationRegistered),
			string(models.ParticipationAttended)).
		ToSql()
	if err != nil {
		return 0, errors.Wrap(err, "can't build sql query")
	}

	var count int
	if err := exec.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, errors.Wrap(err, "error counting active assignments")
	}
	return count, nil
}

func (repo *ShelterDbRepository) ListEventTasks(
	ctx context.Context,
	exec Executor,
	eventId string,
) ([]models.Task, error) {
	return SqlToListOfModels(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectTaskColumns...).
			From(dbmodels.TABLE_TASKS).
			Where("event_id = ?", eventId).
			OrderBy("due_date", "id"),
		dbmodels.AdaptTask,
	)
}

// ListEventVolunteerHistory returns every participation row attached to the
// event's tasks, cancelled ones included.
func (repo *ShelterDbRepository) ListEventVolunteerHistory(
	ctx context.Context,
	exec Executor,
	eventId string,
) ([]models.VolunteerHistory, error) {
	return SqlToListOfModels(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectVolunteerHistoryColumns...).
			From(dbmodels.TABLE_VOLUNTEER_HISTORY).
			Where("task_id IN (SELECT id FROM "+dbmodels.TABLE_TASKS+" WHERE event_id = ?)",
				eventId).
			OrderBy("participation_date", "id"),
		dbmodels.AdaptVolunteerHistory,
	)
}

func (repo *ShelterDbRepository) CreateTask(
	ctx context.Context,
	exec Executor,
	task models.Task,
) error {
	err := ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Insert(dbmodels.TABLE_TASKS).
			Columns(
				"id",
				"event_id",
				"name",
				"description",
				"due_date",
				"status",
			).
			Values(
				task.Id,
				task.EventId,
				task.Name,
				task.Description,
				task.DueDate,
				string(task.Status),
			),
	)
	return errors.Wrap(err, "error creating task")
}

func (repo *ShelterDbRepository) CreateVolunteerHistory(
	ctx context.Context,
	exec Executor,
	history models.VolunteerHistory,
) error {
	err := ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Insert(dbmodels.TABLE_VOLUNTEER_HISTORY).
			Columns(
				"id",
				"volunteer_id",
				"task_id",
				"participation_status",
				"participation_date",
			).
			Values(
				history.Id,
				history.VolunteerId,
				history.TaskId,
				string(history.Status),
				history.ParticipationDate,
			),
	)
	return errors.Wrap(err, "error creating volunteer history")
}
