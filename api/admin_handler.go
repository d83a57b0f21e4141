package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/celestialmindworks/site-backend/errs"
	"github.com/celestialmindworks/site-backend/models"
)

const dashboardRecentPosts = 5

type adminHandler struct {
	logger   zerolog.Logger
	renderer *renderer
	posts    BlogPostStore
	messages ContactMessageStore
}

func newAdminHandler(renderer *renderer, posts BlogPostStore, messages ContactMessageStore) adminHandler {
	logger := log.With().Str("handler", "admin").Logger()

	return adminHandler{
		logger:   logger,
		renderer: renderer,
		posts:    posts,
		messages: messages,
	}
}

// dashboard shows entity counts and the most recent posts.
func (h adminHandler) dashboard() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		postsCount, err := h.posts.Count()
		if err != nil {
			h.dashboardError(w, r, err)
			return
		}
		messagesCount, err := h.messages.Count()
		if err != nil {
			h.dashboardError(w, r, err)
			return
		}
		recent, err := h.posts.FindRecent(dashboardRecentPosts)
		if err != nil {
			h.dashboardError(w, r, err)
			return
		}

		h.renderer.render(w, r, "admin_dashboard", pageData{
			Title: "Dashboard",
			Data: map[string]any{
				"PostsCount":    postsCount,
				"MessagesCount": messagesCount,
				"Posts":         recent,
			},
		})
	}
}

func (h adminHandler) dashboardError(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.Error().Err(err).Msg("loading dashboard")
	h.renderer.render(w, r, "admin_dashboard", pageData{
		Title: "Dashboard",
		Flash: &Flash{Category: "danger", Message: "Something went wrong. Please try again later."},
		Data: map[string]any{
			"PostsCount":    int64(0),
			"MessagesCount": int64(0),
			"Posts":         nil,
		},
	})
}

func (h adminHandler) newPostForm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.renderer.render(w, r, "admin_new_post", pageData{Title: "New Post"})
	}
}

// createPost validates the form and creates the post. A duplicate slug is
// surfaced as a specific form error.
func (h adminHandler) createPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		title := strings.TrimSpace(r.FormValue("title"))
		slug := strings.TrimSpace(r.FormValue("slug"))
		body := strings.TrimSpace(r.FormValue("body"))
		tags := strings.TrimSpace(r.FormValue("tags"))

		if title == "" || slug == "" || body == "" {
			h.renderer.render(w, r, "admin_new_post", pageData{
				Title: "New Post",
				Flash: &Flash{Category: "danger", Message: "Please fill in all required fields."},
			})
			return
		}

		err := h.posts.Create(&models.BlogPost{Title: title, Slug: slug, Body: body, Tags: tags})
		if err != nil {
			if errors.Is(err, errs.ErrConflict) {
				h.renderer.render(w, r, "admin_new_post", pageData{
					Title: "New Post",
					Flash: &Flash{Category: "danger", Message: "Slug already exists."},
				})
				return
			}
			h.logger.Error().Err(err).Str("slug", slug).Msg("creating blog post")
			h.renderer.render(w, r, "admin_new_post", pageData{
				Title: "New Post",
				Flash: &Flash{Category: "danger", Message: "Something went wrong. Please try again later."},
			})
			return
		}

		setFlash(w, "success", "Blog post created successfully!")
		http.Redirect(w, r, "/admin/dashboard", http.StatusSeeOther)
	}
}

// deletePost deletes by id. Deleting an id that no longer exists is a
// no-op, so repeating the action is safe.
func (h adminHandler) deletePost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "postID"))
		if err != nil {
			setFlash(w, "danger", "Invalid post id.")
			http.Redirect(w, r, "/admin/dashboard", http.StatusSeeOther)
			return
		}

		if err := h.posts.Delete(id); err != nil {
			h.logger.Error().Err(err).Str("id", id.String()).Msg("deleting blog post")
			setFlash(w, "danger", "Something went wrong. Please try again later.")
			http.Redirect(w, r, "/admin/dashboard", http.StatusSeeOther)
			return
		}

		setFlash(w, "success", "Blog post deleted.")
		http.Redirect(w, r, "/admin/dashboard", http.StatusSeeOther)
	}
}

func (h adminHandler) listMessages() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		messages, err := h.messages.FindAll()
		if err != nil {
			h.logger.Error().Err(err).Msg("listing contact messages")
			h.renderer.render(w, r, "admin_messages", pageData{
				Title: "Messages",
				Flash: &Flash{Category: "danger", Message: "Something went wrong. Please try again later."},
				Data:  map[string]any{"Messages": nil},
			})
			return
		}

		h.renderer.render(w, r, "admin_messages", pageData{
			Title: "Messages",
			Data:  map[string]any{"Messages": messages},
		})
	}
}
