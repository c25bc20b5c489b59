package repositories

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shelterhub/shelter-backend/models"
)

func TestCountActiveAssignments(t *testing.T) {
	pool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer pool.Close()

	eventId := "4bb67257-f4a9-4ac5-b779-73ab0f392914"
	expectedSql := "SELECT COUNT(*) FROM volunteer_history AS vh " +
		"JOIN tasks AS t ON t.id = vh.task_id " +
		"WHERE t.event_id = $1 AND vh.participation_status IN ($2,$3)"
	pool.ExpectQuery(regexp.QuoteMeta(expectedSql)).
		WithArgs(eventId, "registered", "attended").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(3))

	repo := &ShelterDbRepository{}
	count, err := repo.CountActiveAssignments(context.Background(), pool, eventId)

	assert.NoError(t, err)
	assert.Equal(t, 3, count)
	assert.NoError(t, pool.ExpectationsWereMet())
}

func TestListEventTasks(t *testing.T) {
	pool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer pool.Close()

	eventId := "4bb67257-f4a9-4ac5-b779-73ab0f392914"
	dueDate := time.Date(2026, time.September, 5, 0, 0, 0, 0, time.UTC)
	expectedSql := "SELECT id, event_id, name, description, due_date, status " +
		"FROM tasks WHERE event_id = $1 ORDER BY due_date, id"
	pool.ExpectQuery(regexp.QuoteMeta(expectedSql)).
		WithArgs(eventId).
		WillReturnRows(pgxmock.
			NewRows([]string{"id", "event_id", "name", "description", "due_date", "status"}).
			AddRow("7d44da0b-7e22-4b43-9f29-6eb6f4a5e7a0", eventId,
				"Adoption day", "Help greet visitors", dueDate, "pending"))

	repo := &ShelterDbRepository{}
	tasks, err := repo.ListEventTasks(context.Background(), pool, eventId)

	assert.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, eventId, tasks[0].EventId)
	assert.Equal(t, models.TaskStatusPending, tasks[0].Status)
	assert.NoError(t, pool.ExpectationsWereMet())
}

func TestListEventVolunteerHistory(t *testing.T) {
	pool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer pool.Close()

	eventId := "4bb67257-f4a9-4ac5-b779-73ab0f392914"
	participationDate := time.Date(2026, time.August, 30, 10, 0, 0, 0, time.UTC)
	expectedSql := "SELECT id, volunteer_id, task_id, participation_status, participation_date " +
		"FROM volunteer_history " +
		"WHERE task_id IN (SELECT id FROM tasks WHERE event_id = $1) " +
		"ORDER BY participation_date, id"
	pool.ExpectQuery(regexp.QuoteMeta(expectedSql)).
		WithArgs(eventId).
		WillReturnRows(pgxmock.
			NewRows([]string{"id", "volunteer_id", "task_id", "participation_status", "participation_date"}).
			AddRow("9be13b3a-5ec9-4db9-b9e3-7b35b2a98d05", "0ae6fda7-f7b3-4218-9fc3-4efa329432a7",
				"7d44da0b-7e22-4b43-9f29-6eb6f4a5e7a0", "registered", participationDate))

	repo := &ShelterDbRepository{}
	history, err := repo.ListEventVolunteerHistory(context.Background(), pool, eventId)

	assert.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, models.ParticipationRegistered, history[0].Status)
	assert.NoError(t, pool.ExpectationsWereMet())
}
