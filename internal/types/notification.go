package types

import "time"

type NotificationType string

const (
	InfoNotification  NotificationType = "info"
	ErrorNotification NotificationType = "error"
)

type Notification struct {
	ID        string           `json:"id"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Timestamp time.Time        `json:"timestamp"`
}

// User is the authenticated operator as returned by the remote API.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	Token    string `json:"token"`
}

type Restaurant struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
