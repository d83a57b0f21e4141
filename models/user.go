package models

import (
	"time"

	"github.com/google/uuid"
)

// User is an admin account. Accounts are provisioned out of band; there is
// no self-registration, update, or delete path in this application.
type User struct {
	ID           uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Username     string    `json:"username" db:"username" gorm:"type:text;not null;unique"`
	PasswordHash string    `json:"-" db:"password_hash" gorm:"type:text;not null"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
}
