package httpdto

import (
	"time"

	"scipress-events/internal/domain/notification"
)

// NotificationDTO represents an in-app notification in API responses
type NotificationDTO struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Body      string `json:"body,omitempty"`
	Icon      string `json:"icon,omitempty"`
	Action    string `json:"action,omitempty"`
	Read      bool   `json:"read"`
	CreatedAt string `json:"created_at"`
	ReadAt    string `json:"read_at,omitempty"`
}

// ListNotificationsResponse is returned when listing a user's inbox
type ListNotificationsResponse struct {
	Notifications []NotificationDTO `json:"notifications"`
	Unread        int64             `json:"unread"`
}

func FromNotification(n notification.AppNotification) NotificationDTO {
	dto := NotificationDTO{
		ID:        n.ID.String(),
		Title:     n.Title,
		Body:      n.Body,
		Icon:      n.Icon,
		Action:    n.Action,
		Read:      n.Read,
		CreatedAt: n.CreatedAt.Format(time.RFC3339),
	}
	if n.ReadAt != nil {
		dto.ReadAt = n.ReadAt.Format(time.RFC3339)
	}
	return dto
}

func FromNotificationSlice(items []notification.AppNotification) []NotificationDTO {
	out := make([]NotificationDTO, 0, len(items))
	for _, n := range items {
		out = append(out, FromNotification(n))
	}
	return out
}
