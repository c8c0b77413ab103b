package models

import "time"

// Location represents a geographic coordinate
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// RiderLocation is the rider's live GPS fix. Ephemeral: replaced wholesale
// on every update, never persisted.
type RiderLocation struct {
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	Heading    float64   `json:"heading"`
	Speed      float64   `json:"speed"`
	ObservedAt time.Time `json:"observed_at"`
}
