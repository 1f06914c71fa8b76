package domain

import "time"

// Category of an establishment. The four horeca kinds the directory lists.
type Category string

const (
	CategoryRestaurant Category = "restaurant"
	CategoryBar        Category = "bar"
	CategoryTraiteur   Category = "traiteur"
	CategoryHotel      Category = "hotel"
)

// Categories lists all known establishment categories in display order.
var Categories = []Category{CategoryRestaurant, CategoryBar, CategoryTraiteur, CategoryHotel}

// Valid reports whether the category is one of the known kinds.
func (c Category) Valid() bool {
	switch c {
	case CategoryRestaurant, CategoryBar, CategoryTraiteur, CategoryHotel:
		return true
	}
	return false
}

const (
	PriceRangeMin = 1
	PriceRangeMax = 5
)

// Establishment is a professional-owned venue listing. Owned by exactly one
// profile with role "professional". price_range stays within [1,5];
// votes_sum/votes_count back the displayed mean rating.
type Establishment struct {
	ID           string       `json:"id" db:"id"`
	UserID       string       `json:"user_id" db:"user_id"`
	Name         string       `json:"name" db:"name"`
	Category     Category     `json:"category" db:"category"`
	Email        string       `json:"email" db:"email"`
	Phone        string       `json:"phone" db:"phone"`
	Website      string       `json:"website" db:"website"`
	Latitude     float64      `json:"latitude" db:"latitude"`
	Longitude    float64      `json:"longitude" db:"longitude"`
	PriceRange   int          `json:"price_range" db:"price_range"`
	OpeningHours OpeningHours `json:"opening_hours" db:"opening_hours"`
	GalleryURLs  []string     `json:"gallery_urls" db:"gallery_urls"`
	VotesSum     int64        `json:"votes_sum" db:"votes_sum"`
	VotesCount   int64        `json:"votes_count" db:"votes_count"`
	CreatedAt    time.Time    `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at" db:"updated_at"`
}
