package dbmodels

import (
	"time"

	"github.com/guregu/null/v5"

	"github.com/shelterhub/shelter-backend/models"
	"github.com/shelterhub/shelter-backend/utils"
)

const (
	TABLE_EVENTS                = "events"
	TABLE_EVENT_REQUIRED_SKILLS = "event_required_skills"
)

type DBEvent struct {
	Id            string    `db:"id"`
	Title         string    `db:"title"`
	Description   string    `db:"description"`
	EventDate     time.Time `db:"event_date"`
	EventTime     string    `db:"event_time"`
	Location      string    `db:"location"`
	Urgency       string    `db:"urgency"`
	MaxVolunteers null.Int  `db:"max_volunteers"`
	CreatedAt     time.Time `db:"created_at"`
}

var SelectEventColumns = utils.ColumnList[DBEvent]()

func AdaptEvent(db DBEvent) (models.Event, error) {
	return models.Event{
		Id:            db.Id,
		Title:         db.Title,
		Description:   db.Description,
		Date:          db.EventDate,
		Time:          db.EventTime,
		Location:      db.Location,
		Urgency:       models.UrgencyFromString(db.Urgency),
		MaxVolunteers: db.MaxVolunteers,
		CreatedAt:     db.CreatedAt,
	}, nil
}
