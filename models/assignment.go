package models

import "time"

type TaskStatus string

const (
	TaskStatusPending   TaskStatus = "pending"
	TaskStatusCompleted TaskStatus = "completed"
	TaskStatusCancelled TaskStatus = "cancelled"
)

type ParticipationStatus string

const (
	ParticipationRegistered ParticipationStatus = "registered"
	ParticipationAttended   ParticipationStatus = "attended"
	ParticipationCancelled  ParticipationStatus = "cancelled"
)

// Task is the work item created for a volunteer when they are assigned to an
// event. Name, description and due date are copied from the event.
type Task struct {
	Id          string
	EventId     string
	Name        string
	Description string
	DueDate     time.Time
	Status      TaskStatus
}

// VolunteerHistory records one volunteer's participation in one task.
// Rows with status registered or attended count against event capacity.
type VolunteerHistory struct {
	Id                string
	VolunteerId       string
	TaskId            string
	Status            ParticipationStatus
	ParticipationDate time.Time
}

// AssignmentResult reports the outcome of an assignment batch. The batch is
// committed atomically: either every requested volunteer appears here, or
// the whole batch failed and nothing was written.
type AssignmentResult struct {
	EventId              string
	AssignedVolunteerIds []string
}

func (r AssignmentResult) AssignedCount() int {
	return len(r.AssignedVolunteerIds)
}
