package dto

import (
	"github.com/horecaseek-service/internal/domain"
	"github.com/horecaseek-service/internal/pkg/utils"
)

// CreateSpotRequest - share a new spot. The initial vote seeds the rating
// accumulator (sum = vote, count = 1) the way the original submit did.
type CreateSpotRequest struct {
	Name        string   `json:"name" validate:"omitempty,max=200"`
	Description string   `json:"description" validate:"required,min=1,max=2000"`
	Latitude    *float64 `json:"latitude" validate:"required"`
	Longitude   *float64 `json:"longitude" validate:"required"`
	InitialVote int      `json:"initial_vote" validate:"required,min=1,max=5"`

	Images []FileUpload `json:"-"`
}

// UpdateSpotRequest - owner edit with image append.
type UpdateSpotRequest struct {
	ID          string   `json:"-" validate:"required"`
	Name        string   `json:"name" validate:"omitempty,max=200"`
	Description string   `json:"description" validate:"required,min=1,max=2000"`
	Latitude    *float64 `json:"latitude" validate:"required"`
	Longitude   *float64 `json:"longitude" validate:"required"`

	NewImages []FileUpload `json:"-"`
}

// SpotResponse - a spot as rendered to clients.
type SpotResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Latitude    float64  `json:"latitude"`
	Longitude   float64  `json:"longitude"`
	ImageURLs   []string `json:"image_urls"`
	VotesSum    int64    `json:"votes_sum"`
	VotesCount  int64    `json:"votes_count"`
	MeanRating  string   `json:"mean_rating"`
}

// ConvertSpot maps a domain spot to its response shape.
func ConvertSpot(s *domain.Spot) SpotResponse {
	return SpotResponse{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		Latitude:    s.Latitude,
		Longitude:   s.Longitude,
		ImageURLs:   s.ImageURLs,
		VotesSum:    s.VotesSum,
		VotesCount:  s.VotesCount,
		MeanRating:  utils.FormatMean(s.VotesSum, s.VotesCount),
	}
}

// ConvertSpots maps a slice preserving order.
func ConvertSpots(spots []*domain.Spot) []SpotResponse {
	out := make([]SpotResponse, 0, len(spots))
	for _, s := range spots {
		out = append(out, ConvertSpot(s))
	}
	return out
}
