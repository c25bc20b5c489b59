package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repositories struct {
	ExecutorGetter      ExecutorGetter
	ShelterDbRepository *ShelterDbRepository
}

func NewRepositories(pool *pgxpool.Pool) Repositories {
	return Repositories{
		ExecutorGetter:      NewExecutorGetter(pool),
		ShelterDbRepository: &ShelterDbRepository{},
	}
}

// ShelterDbRepository carries every query against the shelter database. Its
// methods are spread over the *_repository.go files of this package.
type ShelterDbRepository struct{}
