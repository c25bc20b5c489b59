package dbmodels

import (
	"time"

	"github.com/shelterhub/shelter-backend/models"
	"github.com/shelterhub/shelter-backend/utils"
)

const (
	TABLE_USERS            = "users"
	TABLE_VOLUNTEER_SKILLS = "volunteer_skills"
)

type DBVolunteer struct {
	Id        string    `db:"id"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	CreatedAt time.Time `db:"created_at"`
}

var SelectVolunteerColumns = utils.ColumnList[DBVolunteer]()

func AdaptVolunteer(db DBVolunteer) (models.Volunteer, error) {
	return models.Volunteer{
		Id:        db.Id,
		Name:      db.Name,
		Email:     db.Email,
		CreatedAt: db.CreatedAt,
	}, nil
}
