package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/shelterhub/shelter-backend/models"
	"github.com/shelterhub/shelter-backend/repositories"
)

type ShelterDbRepository struct {
	mock.Mock
}

func (_m *ShelterDbRepository) GetEventById(ctx context.Context, exec repositories.Executor,
	eventId string, forUpdate ...bool,
) (models.Event, error) {
	args := _m.Called(ctx, exec, eventId, forUpdate)
	return args.Get(0).(models.Event), args.Error(1)
}

func (_m *ShelterDbRepository) GetEventRequiredSkills(ctx context.Context,
	exec repositories.Executor, eventId string,
) ([]string, error) {
	args := _m.Called(ctx, exec, eventId)
	return args.Get(0).([]string), args.Error(1)
}

func (_m *ShelterDbRepository) ListVolunteers(ctx context.Context,
	exec repositories.Executor,
) ([]models.Volunteer, error) {
	args := _m.Called(ctx, exec)
	return args.Get(0).([]models.Volunteer), args.Error(1)
}

func (_m *ShelterDbRepository) GetVolunteerSkills(ctx context.Context,
	exec repositories.Executor, volunteerId string,
) ([]string, error) {
	args := _m.Called(ctx, exec, volunteerId)
	return args.Get(0).([]string), args.Error(1)
}

func (_m *ShelterDbRepository) GetVolunteerAvailability(ctx context.Context,
	exec repositories.Executor, volunteerId string,
) ([]models.AvailabilityWindow, error) {
	args := _m.Called(ctx, exec, volunteerId)
	return args.Get(0).([]models.AvailabilityWindow), args.Error(1)
}

func (_m *ShelterDbRepository) CountActiveAssignments(ctx context.Context,
	exec repositories.Executor, eventId string,
) (int, error) {
	args := _m.Called(ctx, exec, eventId)
	return args.Int(0), args.Error(1)
}

func (_m *ShelterDbRepository) CreateTask(ctx context.Context,
	exec repositories.Executor, task models.Task,
) error {
	args := _m.Called(ctx, exec, task)
	return args.Error(0)
}

func (_m *ShelterDbRepository) CreateVolunteerHistory(ctx context.Context,
	exec repositories.Executor, history models.VolunteerHistory,
) error {
	args := _m.Called(ctx, exec, history)
	return args.Error(0)
}

func (_m *ShelterDbRepository) CreateNotification(ctx context.Context,
	exec repositories.Executor, notification models.Notification,
) error {
	args := _m.Called(ctx, exec, notification)
	return args.Error(0)
}

func (_m *ShelterDbRepository) Liveness(ctx context.Context, exec repositories.Executor) error {
	args := _m.Called(ctx, exec)
	return args.Error(0)
}
