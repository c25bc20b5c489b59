package dto

import (
	"github.com/shelterhub/shelter-backend/models"
)

type CreateAssignmentsBody struct {
	VolunteerIds []string `json:"volunteer_ids" binding:"required,dive,uuid"`
}

type APIAssignmentResult struct {
	EventId              string   `json:"event_id"`
	AssignedVolunteerIds []string `json:"assigned_volunteer_ids"`
	AssignedCount        int      `json:"assigned_count"`
}

func AdaptAssignmentResultDto(r models.AssignmentResult) APIAssignmentResult {
	return APIAssignmentResult{
		EventId:              r.EventId,
		AssignedVolunteerIds: r.AssignedVolunteerIds,
		AssignedCount:        r.AssignedCount(),
	}
}
