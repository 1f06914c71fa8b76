package domain

import "time"

// User is the service-side identity record. Passwords are stored bcrypt-hashed,
// never in clear.
type User struct {
	ID             string    `json:"id" db:"id"`
	Email          string    `json:"email" db:"email"`
	PasswordHash   string    `json:"-" db:"password_hash"`
	EmailConfirmed bool      `json:"email_confirmed" db:"email_confirmed"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}
