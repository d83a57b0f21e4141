package database

import (
	"gorm.io/gorm"

	"github.com/celestialmindworks/site-backend/models"
)

type Database struct {
	blogPostRepo       *BlogPostRepo
	contactMessageRepo *ContactMessageRepo
	userRepo           *UserRepo
}

// New initializes a new Database struct with each repository using a shared
// GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		blogPostRepo:       NewBlogPostRepo(db),
		contactMessageRepo: NewContactMessageRepo(db),
		userRepo:           NewUserRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) BlogPostRepo() *BlogPostRepo {
	return d.blogPostRepo
}

func (d Database) ContactMessageRepo() *ContactMessageRepo {
	return d.contactMessageRepo
}

func (d Database) UserRepo() *UserRepo {
	return d.userRepo
}

// InitSchema creates the users, blog_posts, and contact_messages tables if
// they are absent. Safe to run on every startup.
func InitSchema(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.BlogPost{},
		&models.ContactMessage{},
	)
}
