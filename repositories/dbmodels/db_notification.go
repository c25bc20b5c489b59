package dbmodels

import (
	"time"

	"github.com/shelterhub/shelter-backend/models"
	"github.com/shelterhub/shelter-backend/utils"
)

const TABLE_NOTIFICATIONS = "notifications"

type DBNotification struct {
	Id        string    `db:"id"`
	UserId    string    `db:"user_id"`
	Message   string    `db:"message"`
	Type      string    `db:"type"`
	IsRead    bool      `db:"is_read"`
	CreatedAt time.Time `db:"created_at"`
}

var SelectNotificationColumns = utils.ColumnList[DBNotification]()

func AdaptNotification(db DBNotification) (models.Notification, error) {
	return models.Notification{
		Id:        db.Id,
		UserId:    db.UserId,
		Message:   db.Message,
		Type:      models.NotificationType(db.Type),
		IsRead:    db.IsRead,
		CreatedAt: db.CreatedAt,
	}, nil
}
