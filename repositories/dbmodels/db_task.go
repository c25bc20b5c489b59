package dbmodels

import (
	"time"

	"github.com/shelterhub/shelter-backend/models"
	"github.com/shelterhub/shelter-backend/utils"
)

const TABLE_TASKS = "tasks"

type DBTask struct {
	Id          string    `db:"id"`
	EventId     string    `db:"event_id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	DueDate     time.Time `db:"due_date"`
	Status      string    `db:"status"`
}

var SelectTaskColumns = utils.ColumnList[DBTask]()

func AdaptTask(db DBTask) (models.Task, error) {
	return models.Task{
		Id:          db.Id,
		EventId:     db.EventId,
		Name:        db.Name,
		Description: db.Description,
		DueDate:     db.DueDate,
		Status:      models.TaskStatus(db.Status),
	}, nil
}
