package domain

import "time"

// Spot is an informal, user-shared place. Owned by exactly one profile
// (clients in the intended flow, though any identity may create one).
type Spot struct {
	ID          string    `json:"id" db:"id"`
	UserID      string    `json:"user_id" db:"user_id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	Latitude    float64   `json:"latitude" db:"latitude"`
	Longitude   float64   `json:"longitude" db:"longitude"`
	ImageURLs   []string  `json:"image_urls" db:"image_urls"`
	VotesSum    int64     `json:"votes_sum" db:"votes_sum"`
	VotesCount  int64     `json:"votes_count" db:"votes_count"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}
