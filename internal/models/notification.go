package models

import "time"

type NotificationSeverity string

const (
	NotificationSeverityInfo    NotificationSeverity = "info"
	NotificationSeveritySuccess NotificationSeverity = "success"
	NotificationSeverityWarning NotificationSeverity = "warning"
	NotificationSeverityError   NotificationSeverity = "error"
)

// IsValidSeverity reports whether s belongs to the closed severity palette.
func IsValidSeverity(s NotificationSeverity) bool {
	switch s {
	case NotificationSeverityInfo, NotificationSeveritySuccess,
		NotificationSeverityWarning, NotificationSeverityError:
		return true
	}
	return false
}

type Notification struct {
	ID        string               `json:"id"`
	Title     string               `json:"title"`
	Message   string               `json:"message"`
	Severity  NotificationSeverity `json:"severity"`
	Read      bool                 `json:"read"`
	CreatedAt time.Time            `json:"createdAt"`
}
