package database

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/celestialmindworks/site-backend/errs"
	"github.com/celestialmindworks/site-backend/models"
)

type BlogPostRepo struct {
	db *gorm.DB
}

func NewBlogPostRepo(db *gorm.DB) *BlogPostRepo {
	return &BlogPostRepo{db}
}

// Create inserts a new blog post. A duplicate slug is reported as
// errs.ErrConflict so the caller can show a specific message.
func (r *BlogPostRepo) Create(blogPost *models.BlogPost) error {
	if err := r.db.Create(blogPost).Error; err != nil {
		return errs.FromDB(err, "blog post")
	}
	return nil
}

// FindAll returns all blog posts, newest first.
func (r *BlogPostRepo) FindAll() ([]models.BlogPost, error) {
	var blogPosts []models.BlogPost
	err := r.db.Order("created_at DESC").Find(&blogPosts).Error
	if err != nil {
		return nil, errs.FromDB(err, "blog posts")
	}
	return blogPosts, nil
}

// FindRecent returns the newest limit posts.
func (r *BlogPostRepo) FindRecent(limit int) ([]models.BlogPost, error) {
	var blogPosts []models.BlogPost
	err := r.db.Order("created_at DESC").Limit(limit).Find(&blogPosts).Error
	if err != nil {
		return nil, errs.FromDB(err, "blog posts")
	}
	return blogPosts, nil
}

// FindBySlug returns the post with the given slug or errs.ErrNotFound.
func (r *BlogPostRepo) FindBySlug(slug string) (*models.BlogPost, error) {
	var blogPost models.BlogPost
	err := r.db.Where("slug = ?", slug).First(&blogPost).Error
	if err != nil {
		return nil, errs.FromDB(err, "blog post")
	}
	return &blogPost, nil
}

// Delete removes a blog post by id. Deleting an id that does not exist is
// not an error; it simply affects zero rows.
func (r *BlogPostRepo) Delete(id uuid.UUID) error {
	if err := r.db.Delete(&models.BlogPost{}, id).Error; err != nil {
		return errs.FromDB(err, "blog post")
	}
	return nil
}

// Count returns the total number of blog posts.
func (r *BlogPostRepo) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&models.BlogPost{}).Count(&count).Error; err != nil {
		return 0, errs.FromDB(err, "blog posts")
	}
	return count, nil
}
