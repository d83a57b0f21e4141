package api

import (
	"github.com/google/uuid"

	"github.com/celestialmindworks/site-backend/models"
)

// Store interfaces consumed by the handlers. The database package provides
// the production implementations; tests substitute fakes.

type BlogPostStore interface {
	Create(post *models.BlogPost) error
	FindAll() ([]models.BlogPost, error)
	FindRecent(limit int) ([]models.BlogPost, error)
	FindBySlug(slug string) (*models.BlogPost, error)
	Delete(id uuid.UUID) error
	Count() (int64, error)
}

type ContactMessageStore interface {
	Create(message *models.ContactMessage) error
	FindAll() ([]models.ContactMessage, error)
	Count() (int64, error)
}

type UserStore interface {
	FindByUsername(username string) (*models.User, error)
	FindByID(id uuid.UUID) (*models.User, error)
}

// Mailer delivers outbound notification email. Failures are logged and
// never surfaced to the visitor.
type Mailer interface {
	Send(subject, body string, recipients []string) error
}
