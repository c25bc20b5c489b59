package repositories

import (
	"context"

	"github.com/cockroachdb/errors"

	"github.com/shelterhub/shelter-backend/models"
	"github.com/shelterhub/shelter-backend/repositories/dbmodels"
)

func (repo *ShelterDbRepository) ListUserNotifications(
	ctx context.Context,
	exec Executor,
	userId string,
) ([]models.Notification, error) {
	return SqlToListOfModels(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectNotificationColumns...).
			From(dbmodels.TABLE_NOTIFICATIONS).
			Where("user_id = ?", userId).
			OrderBy("created_at DESC", "id"),
		dbmodels.AdaptNotification,
	)
}

func (repo *ShelterDbRepository) CreateNotification(
	ctx context.Context,
	exec Executor,
	notification models.Notification,
) error {
	err := ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Insert(dbmodels.TABLE_NOTIFICATIONS).
			Columns(
				"id",
				"user_id",
				"message",
				"type",
				"is_read",
			).
			Values(
				notification.Id,
				notification.UserId,
				notification.Message,
				string(notification.Type),
				notification.IsRead,
			),
	)
	return errors.Wrap(err, "error creating notification")
}
