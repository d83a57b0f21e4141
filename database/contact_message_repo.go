package database

import (
	"gorm.io/gorm"

	"github.com/celestialmindworks/site-backend/errs"
	"github.com/celestialmindworks/site-backend/models"
)

type ContactMessageRepo struct {
	db *gorm.DB
}

func NewContactMessageRepo(db *gorm.DB) *ContactMessageRepo {
	return &ContactMessageRepo{db}
}

// Create inserts a new contact message.
func (r *ContactMessageRepo) Create(message *models.ContactMessage) error {
	if err := r.db.Create(message).Error; err != nil {
		return errs.FromDB(err, "contact message")
	}
	return nil
}

// FindAll returns all contact messages, newest first.
func (r *ContactMessageRepo) FindAll() ([]models.ContactMessage, error) {
	var messages []models.ContactMessage
	err := r.db.Order("created_at DESC").Find(&messages).Error
	if err != nil {
		return nil, errs.FromDB(err, "contact messages")
	}
	return messages, nil
}

// Count returns the total number of contact messages.
func (r *ContactMessageRepo) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&models.ContactMessage{}).Count(&count).Error; err != nil {
		return 0, errs.FromDB(err, "contact messages")
	}
	return count, nil
}
