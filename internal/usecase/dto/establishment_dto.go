package dto

import (
	"github.com/horecaseek-service/internal/domain"
	"github.com/horecaseek-service/internal/pkg/utils"
)

// CreateEstablishmentRequest - submit a new establishment. Coordinates are
// pointers so "missing" is distinguishable from 0.0 and fails validation
// before any storage call.
type CreateEstablishmentRequest struct {
	Name         string              `json:"name" validate:"required,min=1,max=200"`
	Category     string              `json:"category" validate:"required,oneof=restaurant bar traiteur hotel"`
	Email        string              `json:"email" validate:"required,email"`
	Phone        string              `json:"phone" validate:"omitempty,max=30"`
	Website      string              `json:"website" validate:"omitempty,max=500"`
	Latitude     *float64            `json:"latitude" validate:"required"`
	Longitude    *float64            `json:"longitude" validate:"required"`
	PriceRange   int                 `json:"price_range" validate:"required,min=1,max=5"`
	OpeningHours domain.OpeningHours `json:"opening_hours"`

	Gallery []FileUpload `json:"-"`
}

// UpdateEstablishmentRequest - owner edit. New gallery files are appended to
// the existing gallery, never replacing it.
type UpdateEstablishmentRequest struct {
	ID           string              `json:"-" validate:"required"`
	Name         string              `json:"name" validate:"required,min=1,max=200"`
	Category     string              `json:"category" validate:"required,oneof=restaurant bar traiteur hotel"`
	Email        string              `json:"email" validate:"required,email"`
	Phone        string              `json:"phone" validate:"omitempty,max=30"`
	Website      string              `json:"website" validate:"omitempty,max=500"`
	Latitude     *float64            `json:"latitude" validate:"required"`
	Longitude    *float64            `json:"longitude" validate:"required"`
	PriceRange   int                 `json:"price_range" validate:"required,min=1,max=5"`
	OpeningHours domain.OpeningHours `json:"opening_hours"`

	NewGallery []FileUpload `json:"-"`
}

// EstablishmentResponse - an establishment as rendered to clients, with the
// display-only mean rating attached.
type EstablishmentResponse struct {
	ID           string              `json:"id"`
	Name         string              `json:"name"`
	Category     domain.Category     `json:"category"`
	Email        string              `json:"email"`
	Phone        string              `json:"phone"`
	Website      string              `json:"website"`
	Latitude     float64             `json:"latitude"`
	Longitude    float64             `json:"longitude"`
	PriceRange   int                 `json:"price_range"`
	OpeningHours domain.OpeningHours `json:"opening_hours"`
	HoursDisplay string              `json:"hours_display"`
	GalleryURLs  []string            `json:"gallery_urls"`
	VotesSum     int64               `json:"votes_sum"`
	VotesCount   int64               `json:"votes_count"`
	MeanRating   string              `json:"mean_rating"`
}

// ConvertEstablishment maps a domain establishment to its response shape.
// The mean is computed here, for display only, never persisted.
func ConvertEstablishment(e *domain.Establishment) EstablishmentResponse {
	return EstablishmentResponse{
		ID:           e.ID,
		Name:         e.Name,
		Category:     e.Category,
		Email:        e.Email,
		Phone:        e.Phone,
		Website:      e.Website,
		Latitude:     e.Latitude,
		Longitude:    e.Longitude,
		PriceRange:   e.PriceRange,
		OpeningHours: e.OpeningHours,
		HoursDisplay: e.OpeningHours.Display(),
		GalleryURLs:  e.GalleryURLs,
		VotesSum:     e.VotesSum,
		VotesCount:   e.VotesCount,
		MeanRating:   utils.FormatMean(e.VotesSum, e.VotesCount),
	}
}

// ConvertEstablishments maps a slice preserving order.
func ConvertEstablishments(ests []*domain.Establishment) []EstablishmentResponse {
	out := make([]EstablishmentResponse, 0, len(ests))
	for _, e := range ests {
		out = append(out, ConvertEstablishment(e))
	}
	return out
}
