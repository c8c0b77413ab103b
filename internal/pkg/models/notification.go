package models

import "time"

// NotificationType categorizes user-facing alerts
type NotificationType string

const (
	NotificationStatusChange NotificationType = "status_change"
	NotificationChatMessage  NotificationType = "chat_message"
	NotificationCounterOffer NotificationType = "counter_offer"
	NotificationRatingPrompt NotificationType = "rating_prompt"
	NotificationRideCleared  NotificationType = "ride_cleared"
)

// Notification is a single user-facing alert pushed to the rider's UI
type Notification struct {
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Body      string           `json:"body"`
	RideID    string           `json:"ride_id,omitempty"`
	Sound     bool             `json:"sound"`
	Unread    int              `json:"unread,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
}
