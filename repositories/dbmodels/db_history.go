package dbmodels

import (
	"time"

	"github.com/shelterhub/shelter-backend/models"
	"github.com/shelterhub/shelter-backend/utils"
)

const TABLE_VOLUNTEER_HISTORY = "volunteer_history"

type DBVolunteerHistory struct {
	Id                  string    `db:"id"`
	VolunteerId         string    `db:"volunteer_id"`
	TaskId              string    `db:"task_id"`
	ParticipationStatus string    `db:"participation_status"`
	ParticipationDate   time.Time `db:"participation_date"`
}

var SelectVolunteerHistoryColumns = utils.ColumnList[DBVolunteerHistory]()

func AdaptVolunteerHistory(db DBVolunteerHistory) (models.VolunteerHistory, error) {
	return models.VolunteerHistory{
		Id:                db.Id,
		VolunteerId:       db.VolunteerId,
		TaskId:            db.TaskId,
		Status:            models.ParticipationStatus(db.ParticipationStatus),
		ParticipationDate: db.ParticipationDate,
	}, nil
}
