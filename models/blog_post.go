package models

import (
	"time"

	"github.com/google/uuid"
)

// BlogPost is an author-published post. Slug is the URL-safe identifier
// chosen by the author and must be unique across all posts.
type BlogPost struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Title     string    `json:"title" db:"title" gorm:"type:text;not null"`
	Slug      string    `json:"slug" db:"slug" gorm:"type:text;not null;unique"`
	Body      string    `json:"body" db:"body" gorm:"type:text;not null"`
	Tags      string    `json:"tags,omitempty" db:"tags" gorm:"type:text"`
	CreatedAt time.Time `json:"createdAt" db:"created_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
}
