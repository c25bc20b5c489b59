package dbmodels

import (
	"github.com/shelterhub/shelter-backend/models"
	"github.com/shelterhub/shelter-backend/utils"
)

const TABLE_VOLUNTEER_AVAILABILITY = "volunteer_availability"

type DBAvailabilityWindow struct {
	DayOfWeek int    `db:"day_of_week"`
	StartTime string `db:"start_time"`
	EndTime   string `db:"end_time"`
}

var SelectAvailabilityWindowColumns = utils.ColumnList[DBAvailabilityWindow]()

func AdaptAvailabilityWindow(db DBAvailabilityWindow) (models.AvailabilityWindow, error) {
	return models.AvailabilityWindow{
		DayOfWeek: db.DayOfWeek,
		StartTime: db.StartTime,
		EndTime:   db.EndTime,
	}, nil
}
