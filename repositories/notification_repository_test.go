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

func TestListUserNotifications(t *testing.T) {
	pool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer pool.Close()

	userId := "0ae6fda7-f7b3-4218-9fc3-4efa329432a7"
	createdAt := time.Date(2026, time.August, 30, 10, 0, 0, 0, time.UTC)
	expectedSql := "SELECT id, user_id, message, type, is_read, created_at " +
		"FROM notifications WHERE user_id = $1 ORDER BY created_at DESC, id"
	pool.ExpectQuery(regexp.QuoteMeta(expectedSql)).
		WithArgs(userId).
		WillReturnRows(pgxmock.
			NewRows([]string{"id", "user_id", "message", "type", "is_read", "created_at"}).
			AddRow("5f0a0fbb-31c5-4a68-bd34-1fbc2b6b3a11", userId,
				`You have been assigned to the event "Adoption day" on 2026-09-05.`,
				"event_assignment", false, createdAt))

	repo := &ShelterDbRepository{}
	notifications, err := repo.ListUserNotifications(context.Background(), pool, userId)

	assert.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.Equal(t, models.NotificationTypeEventAssignment, notifications[0].Type)
	assert.False(t, notifications[0].IsRead)
	assert.NoError(t, pool.ExpectationsWereMet())
}
