package dto

type APIErrorResponse struct {
	Message   string    `json:"message"`
	ErrorCode ErrorCode `json:"error_code"`
}

type ErrorCode string

const (
	// assignment related
	EventCapacityExceeded ErrorCode = "event_capacity_exceeded"
	DuplicateVolunteerIds ErrorCode = "duplicate_volunteer_ids"

	// general
	BadParameter  ErrorCode = "bad_parameter"
	Unauthorized  ErrorCode = "unauthorized"
	Forbidden     ErrorCode = "forbidden"
	NotFound      ErrorCode = "not_found"
	Conflict      ErrorCode = "conflict"
	InternalError ErrorCode = "internal_error"
)
