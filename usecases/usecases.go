package usecases

import (
	"github.com/shelterhub/shelter-backend/repositories"
	"github.com/shelterhub/shelter-backend/usecases/executor_factory"
)

type Usecases struct {
	Repositories repositories.Repositories
}

func NewUsecases(repositories repositories.Repositories) Usecases {
	return Usecases{
		Repositories: repositories,
	}
}

func (usecases *Usecases) NewExecutorFactory() executor_factory.ExecutorFactory {
	return executor_factory.NewDbExecutorFactory(usecases.Repositories.ExecutorGetter)
}

func (usecases *Usecases) NewTransactionFactory() executor_factory.TransactionFactory {
	return executor_factory.NewDbExecutorFactory(usecases.Repositories.ExecutorGetter)
}

func (usecases *Usecases) NewLivenessUsecase() LivenessUsecase {
	return LivenessUsecase{
		executorFactory:    usecases.NewExecutorFactory(),
		livenessRepository: usecases.Repositories.ShelterDbRepository,
	}
}

func (usecases *Usecases) NewMatchingUsecase() MatchingUsecase {
	return MatchingUsecase{
		executorFactory:        usecases.NewExecutorFactory(),
		transactionFactory:     usecases.NewTransactionFactory(),
		eventRepository:        usecases.Repositories.ShelterDbRepository,
		volunteerRepository:    usecases.Repositories.ShelterDbRepository,
		assignmentRepository:   usecases.Repositories.ShelterDbRepository,
		notificationRepository: usecases.Repositories.ShelterDbRepository,
	}
}
