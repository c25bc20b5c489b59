package usecases

import (
	"context"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/shelterhub/shelter-backend/repositories"
	"github.com/shelterhub/shelter-backend/usecases/executor_factory"
)

func TestLiveness(t *testing.T) {
	stub := executor_factory.NewExecutorFactoryStub()
	stub.Mock.ExpectQuery("SELECT 1").
		WillReturnRows(pgxmock.NewRows([]string{"?column?"}).AddRow(1))

	usecase := LivenessUsecase{
		executorFactory:    stub,
		livenessRepository: &repositories.ShelterDbRepository{},
	}

	assert.NoError(t, usecase.Liveness(context.Background()))
	assert.NoError(t, stub.Mock.ExpectationsWereMet())
}

func TestLiveness_databaseDown(t *testing.T) {
	stub := executor_factory.NewExecutorFactoryStub()
	stub.Mock.ExpectQuery("SELECT 1").
		WillReturnError(assert.AnError)

	usecase := LivenessUsecase{
		executorFactory:    stub,
		livenessRepository: &repositories.ShelterDbRepository{},
	}

	assert.Error(t, usecase.Liveness(context.Background()))
}
