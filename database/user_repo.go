package database

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/celestialmindworks/site-backend/errs"
	"github.com/celestialmindworks/site-backend/models"
)

type UserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *UserRepo {
	return &UserRepo{db}
}

// Create inserts a new user. Only the provisioning command uses this; the
// web application never creates accounts.
func (r *UserRepo) Create(user *models.User) error {
	if err := r.db.Create(user).Error; err != nil {
		return errs.FromDB(err, "user")
	}
	return nil
}

// FindByUsername returns the user with the exact username (case-sensitive)
// or errs.ErrNotFound.
func (r *UserRepo) FindByUsername(username string) (*models.User, error) {
	var user models.User
	err := r.db.Where("username = ?", username).First(&user).Error
	if err != nil {
		return nil, errs.FromDB(err, "user")
	}
	return &user, nil
}

// FindByID returns the user with the given id or errs.ErrNotFound.
func (r *UserRepo) FindByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	err := r.db.Where("id = ?", id).First(&user).Error
	if err != nil {
		return nil, errs.FromDB(err, "user")
	}
	return &user, nil
}
