package usecases

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/shelterhub/shelter-backend/models"
	"github.com/shelterhub/shelter-backend/repositories"
	"github.com/shelterhub/shelter-backend/usecases/executor_factory"
	"github.com/shelterhub/shelter-backend/usecases/matching"
	"github.com/shelterhub/shelter-backend/utils"
)

type eventRepository interface {
	GetEventById(ctx context.Context, exec repositories.Executor, eventId string,
		forUpdate ...bool) (models.Event, error)
	GetEventRequiredSkills(ctx context.Context, exec repositories.Executor,
		eventId string) ([]string, error)
}

type volunteerRepository interface {
	ListVolunteers(ctx context.Context, exec repositories.Executor) ([]models.Volunteer, error)
	GetVolunteerSkills(ctx context.Context, exec repositories.Executor,
		volunteerId string) ([]string, error)
	GetVolunteerAvailability(ctx context.Context, exec repositories.Executor,
		volunteerId string) ([]models.AvailabilityWindow, error)
}

type assignmentRepository interface {
	CountActiveAssignments(ctx context.Context, exec repositories.Executor,
		eventId string) (int, error)
	CreateTask(ctx context.Context, exec repositories.Executor, task models.Task) error
	CreateVolunteerHistory(ctx context.Context, exec repositories.Executor,
		history models.VolunteerHistory) error
}

type notificationRepository interface {
	CreateNotification(ctx context.Context, exec repositories.Executor,
		notification models.Notification) error
}

type MatchingUsecase struct {
	executorFactory        executor_factory.ExecutorFactory
	transactionFactory     executor_factory.TransactionFactory
	eventRepository        eventRepository
	volunteerRepository    volunteerRepository
	assignmentRepository   assignmentRepository
	notificationRepository notificationRepository
}

// FindMatches scores every volunteer against the event and keeps those with
// at least one matching required skill (all of them when the event requires
// none) who are available on the event's weekday at the event's time.
// Results are ordered by matching skill count, ties broken by volunteer id.
func (usecase *MatchingUsecase) FindMatches(
	ctx context.Context,
	eventId string,
) ([]models.Match, error) {
	exec := usecase.executorFactory.NewExecutor()

	event, err := usecase.eventRepository.GetEventById(ctx, exec, eventId)
	if err != nil {
		return nil, err
	}
	requiredSkills, err := usecase.eventRepository.GetEventRequiredSkills(ctx, exec, eventId)
	if err != nil {
		return nil, err
	}
	requiredCount := matching.UniqueSkillCount(requiredSkills)

	volunteers, err := usecase.volunteerRepository.ListVolunteers(ctx, exec)
	if err != nil {
		return nil, err
	}

	matches := make([]models.Match, 0, len(volunteers))
	for _, volunteer := range volunteers {
		skills, err := usecase.volunteerRepository.GetVolunteerSkills(ctx, exec, volunteer.Id)
		if err != nil {
			return nil, err
		}

		matchingSkills := matching.MatchingSkills(skills, requiredSkills)
		if requiredCount > 0 && len(matchingSkills) == 0 {
			continue
		}

		windows, err := usecase.volunteerRepository.GetVolunteerAvailability(ctx, exec, volunteer.Id)
		if err != nil {
			return nil, err
		}
		if !matching.IsAvailableStrict(windows, event.Weekday(), event.Time) {
			continue
		}

		matches = append(matches, models.Match{
			Volunteer:       volunteer,
			Skills:          skills,
			MatchingSkills:  matchingSkills,
			MatchPercentage: matching.MatchPercentage(len(matchingSkills), requiredCount),
		})
	}

	// Volunteers arrive ordered by id, so a stable sort keeps that as the
	// tie break.
	slices.SortStableFunc(matches, func(a, b models.Match) int {
		return len(b.MatchingSkills) - len(a.MatchingSkills)
	})
	return matches, nil
}

// Recommend is the discovery variant: every volunteer is scored, day-of-week
// availability is enough, and skill coverage and availability are folded
// into one weighted score. Only the top scores are returned.
func (usecase *MatchingUsecase) Recommend(
	ctx context.Context,
	eventId string,
) ([]models.Recommendation, error) {
	exec := usecase.executorFactory.NewExecutor()

	event, err := usecase.eventRepository.GetEventById(ctx, exec, eventId)
	if err != nil {
		return nil, err
	}
	requiredSkills, err := usecase.eventRepository.GetEventRequiredSkills(ctx, exec, eventId)
	if err != nil {
		return nil, err
	}
	requiredCount := matching.UniqueSkillCount(requiredSkills)

	volunteers, err := usecase.volunteerRepository.ListVolunteers(ctx, exec)
	if err != nil {
		return nil, err
	}

	recommendations := make([]models.Recommendation, 0, len(volunteers))
	for _, volunteer := range volunteers {
		skills, err := usecase.volunteerRepository.GetVolunteerSkills(ctx, exec, volunteer.Id)
		if err != nil {
			return nil, err
		}
		windows, err := usecase.volunteerRepository.GetVolunteerAvailability(ctx, exec, volunteer.Id)
		if err != nil {
			return nil, err
		}

		matchingSkills := matching.MatchingSkills(skills, requiredSkills)
		pct := matching.SkillMatchPercent(len(matchingSkills), requiredCount)
		available := matching.IsAvailableOnDay(windows, event.Weekday())

		score := matching.OverallScore(pct, available)
		if score == 0 {
			continue
		}

		recommendations = append(recommendations, models.Recommendation{
			Volunteer:         volunteer,
			Skills:            skills,
			MatchingSkills:    matchingSkills,
			SkillMatchPercent: pct,
			AvailableForEvent: available,
			OverallScore:      score,
		})
	}

	slices.SortStableFunc(recommendations, func(a, b models.Recommendation) int {
		switch {
		case a.OverallScore > b.OverallScore:
			return -1
		case a.OverallScore < b.OverallScore:
			return 1
		}
		return 0
	})
	if len(recommendations) > models.RecommendationLimit {
		recommendations = recommendations[:models.RecommendationLimit]
	}
	return recommendations, nil
}

// Assign commits an assignment batch for the event: one task, one history
// row and one notification per volunteer, in a single transaction. The event
// row is locked so concurrent batches serialize on the capacity check; the
// batch either commits whole or not at all.
func (usecase *MatchingUsecase) Assign(
	ctx context.Context,
	eventId string,
	volunteerIds []string,
) (models.AssignmentResult, error) {
	if len(volunteerIds) == 0 {
		return models.AssignmentResult{}, errors.Wrap(models.BadParameterError,
			"assignment batch is empty")
	}
	for _, volunteerId := range volunteerIds {
		if err := utils.ValidateUuid(volunteerId); err != nil {
			return models.AssignmentResult{}, err
		}
	}
	if err := validateNoDuplicates(volunteerIds); err != nil {
		return models.AssignmentResult{}, err
	}

	return executor_factory.TransactionReturnValue(ctx, usecase.transactionFactory,
		func(tx repositories.Transaction) (models.AssignmentResult, error) {
			event, err := usecase.eventRepository.GetEventById(ctx, tx, eventId, true)
			if err != nil {
				return models.AssignmentResult{}, err
			}

			if event.MaxVolunteers.Valid {
				current, err := usecase.assignmentRepository.CountActiveAssignments(ctx, tx, eventId)
				if err != nil {
					return models.AssignmentResult{}, err
				}
				capacity := int(event.MaxVolunteers.Int64)
				if current+len(volunteerIds) > capacity {
					return models.AssignmentResult{}, errors.Wrapf(
						models.ErrEventCapacityExceeded,
						"requested %d volunteers, %d of %d slots taken",
						len(volunteerIds), current, capacity)
				}
			}

			for _, volunteerId := range volunteerIds {
				if err := usecase.assignVolunteer(ctx, tx, event, volunteerId); err != nil {
					return models.AssignmentResult{}, err
				}
			}

			logger := utils.LoggerFromContext(ctx)
			attrs := []any{"event_id", eventId, "count", len(volunteerIds)}
			if creds := utils.CredentialsFromCtx(ctx); creds.ActorId != "" {
				attrs = append(attrs, "actor_id", creds.ActorId)
			}
			logger.InfoContext(ctx, "assigned volunteers to event", attrs...)

			return models.AssignmentResult{
				EventId:              eventId,
				AssignedVolunteerIds: volunteerIds,
			}, nil
		})
}

func (usecase *MatchingUsecase) assignVolunteer(
	ctx context.Context,
	tx repositories.Transaction,
	event models.Event,
	volunteerId string,
) error {
	task := models.Task{
		Id:          uuid.NewString(),
		EventId:     event.Id,
		Name:        event.Title,
		Description: event.Description,
		DueDate:     event.Date,
		Status:      models.TaskStatusPending,
	}
	if err := usecase.assignmentRepository.CreateTask(ctx, tx, task); err != nil {
		return err
	}

	history := models.VolunteerHistory{
		Id:                uuid.NewString(),
		VolunteerId:       volunteerId,
		TaskId:            task.Id,
		Status:            models.ParticipationRegistered,
		ParticipationDate: time.Now(),
	}
	if err := usecase.assignmentRepository.CreateVolunteerHistory(ctx, tx, history); err != nil {
		if repositories.IsForeignKeyViolationError(err) {
			return errors.Wrapf(models.NotFoundError, "volunteer %s not found", volunteerId)
		}
		return err
	}

	notification := models.Notification{
		Id:     uuid.NewString(),
		UserId: volunteerId,
		Type:   models.NotificationTypeEventAssignment,
		Message: fmt.Sprintf("You have been assigned to the event %q on %s.",
			event.Title, event.Date.Format("2006-01-02")),
	}
	return usecase.notificationRepository.CreateNotification(ctx, tx, notification)
}

func validateNoDuplicates(volunteerIds []string) error {
	seen := make(map[string]struct{}, len(volunteerIds))
	for _, id := range volunteerIds {
		if _, ok := seen[id]; ok {
			return errors.Wrapf(models.ErrDuplicateVolunteerIds, "volunteer %s", id)
		}
		seen[id] = struct{}{}
	}
	return nil
}
