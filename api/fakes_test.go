package api

import (
	"github.com/google/uuid"

	"github.com/celestialmindworks/site-backend/errs"
	"github.com/celestialmindworks/site-backend/models"
)

type fakePostStore struct {
	posts     []models.BlogPost
	createErr error
	deleted   []uuid.UUID
	listErr   error
}

func (f *fakePostStore) Create(post *models.BlogPost) error {
	if f.createErr != nil {
		return f.createErr
	}
	if post.ID == uuid.Nil {
		post.ID = uuid.New()
	}
	f.posts = append(f.posts, *post)
	return nil
}

func (f *fakePostStore) FindAll() ([]models.BlogPost, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.posts, nil
}

func (f *fakePostStore) FindRecent(limit int) ([]models.BlogPost, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	if len(f.posts) > limit {
		return f.posts[:limit], nil
	}
	return f.posts, nil
}

func (f *fakePostStore) FindBySlug(slug string) (*models.BlogPost, error) {
	for i := range f.posts {
		if f.posts[i].Slug == slug {
			return &f.posts[i], nil
		}
	}
	return nil, errs.NewNotFound("blog post", nil)
}

func (f *fakePostStore) Delete(id uuid.UUID) error {
	f.deleted = append(f.deleted, id)
	for i := range f.posts {
		if f.posts[i].ID == id {
			f.posts = append(f.posts[:i], f.posts[i+1:]...)
			break
		}
	}
	return nil
}

func (f *fakePostStore) Count() (int64, error) {
	return int64(len(f.posts)), nil
}

type fakeMessageStore struct {
	messages  []models.ContactMessage
	createErr error
}

func (f *fakeMessageStore) Create(message *models.ContactMessage) error {
	if f.createErr != nil {
		return f.createErr
	}
	if message.ID == uuid.Nil {
		message.ID = uuid.New()
	}
	f.messages = append(f.messages, *message)
	return nil
}

func (f *fakeMessageStore) FindAll() ([]models.ContactMessage, error) {
	return f.messages, nil
}

func (f *fakeMessageStore) Count() (int64, error) {
	return int64(len(f.messages)), nil
}

type fakeUserStore struct {
	users []models.User
}

func (f *fakeUserStore) FindByUsername(username string) (*models.User, error) {
	for i := range f.users {
		if f.users[i].Username == username {
			return &f.users[i], nil
		}
	}
	return nil, errs.NewNotFound("user", nil)
}

func (f *fakeUserStore) FindByID(id uuid.UUID) (*models.User, error) {
	for i := range f.users {
		if f.users[i].ID == id {
			return &f.users[i], nil
		}
	}
	return nil, errs.NewNotFound("user", nil)
}

type sentMail struct {
	subject    string
	body       string
	recipients []string
}

type fakeMailer struct {
	sent    []sentMail
	sendErr error
}

func (f *fakeMailer) Send(subject, body string, recipients []string) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = append(f.sent, sentMail{subject: subject, body: body, recipients: recipients})
	return nil
}
