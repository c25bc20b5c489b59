package models

import "time"

type NotificationType string

const NotificationTypeEventAssignment NotificationType = "event_assignment"

type Notification struct {
	Id        string
	UserId    string
	Message   string
	Type      NotificationType
	IsRead    bool
	CreatedAt time.Time
}
