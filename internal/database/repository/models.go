package repository

import "time"

// EventRecord is an admin-created event definition.
type EventRecord struct {
	Name         string `json:"name"`
	Date         string `json:"date"`
	Location     string `json:"location"`
	Radius       string `json:"radius,omitempty"`
	WithFeedback bool   `json:"withFeedback"`
}

// FeedbackRecord is one submitted event feedback form.
type FeedbackRecord struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Rating    string    `json:"rating,omitempty"`
	Liked     string    `json:"liked,omitempty"`
	Score     int       `json:"score"`
	CreatedAt time.Time `json:"createdAt"`
}
