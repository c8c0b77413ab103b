package models

import "time"

// ChatMessage is a single message in a ride's chat thread
type ChatMessage struct {
	ID       string    `json:"id"`
	RideID   string    `json:"ride_id"`
	SenderID string    `json:"sender_id"`
	Text     string    `json:"text"`
	SentAt   time.Time `json:"sent_at"`
}
