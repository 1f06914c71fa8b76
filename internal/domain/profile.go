package domain

import "time"

// Role determines which half of the account view a profile gets:
// professionals manage establishments, clients manage spots.
type Role string

const (
	RoleClient       Role = "client"
	RoleProfessional Role = "professional"
)

// Valid reports whether the role is one of the two known values.
func (r Role) Valid() bool {
	return r == RoleClient || r == RoleProfessional
}

// Profile carries the public-facing info of an identity. Exactly one profile
// exists per user (unique user_id); it is only ever mutated by its owner and
// never hard-deleted.
type Profile struct {
	ID        string    `json:"id" db:"id"`
	UserID    string    `json:"user_id" db:"user_id"`
	FullName  string    `json:"full_name" db:"full_name"`
	Phone     string    `json:"phone" db:"phone"`
	AvatarURL string    `json:"avatar_url" db:"avatar_url"`
	Role      Role      `json:"role" db:"role"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
