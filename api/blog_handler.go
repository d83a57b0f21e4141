package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/celestialmindworks/site-backend/errs"
)

type blogHandler struct {
	logger   zerolog.Logger
	renderer *renderer
	posts    BlogPostStore
}

func newBlogHandler(renderer *renderer, posts BlogPostStore) blogHandler {
	logger := log.With().Str("handler", "blog").Logger()

	return blogHandler{
		logger:   logger,
		renderer: renderer,
		posts:    posts,
	}
}

// list shows all posts, newest first.
func (h blogHandler) list() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		posts, err := h.posts.FindAll()
		if err != nil {
			h.logger.Error().Err(err).Msg("listing blog posts")
			h.renderer.render(w, r, "blog", pageData{
				Title: "Blog",
				Flash: &Flash{Category: "danger", Message: "Something went wrong. Please try again later."},
				Data:  map[string]any{"Posts": nil},
			})
			return
		}

		h.renderer.render(w, r, "blog", pageData{
			Title: "Blog",
			Data:  map[string]any{"Posts": posts},
		})
	}
}

// show renders a single post; an absent slug redirects back to the listing.
func (h blogHandler) show() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")

		post, err := h.posts.FindBySlug(slug)
		if err != nil {
			if !errors.Is(err, errs.ErrNotFound) {
				h.logger.Error().Err(err).Str("slug", slug).Msg("fetching blog post")
			}
			http.Redirect(w, r, "/blog", http.StatusSeeOther)
			return
		}

		h.renderer.render(w, r, "blog_post", pageData{
			Title: post.Title,
			Data:  map[string]any{"Post": post},
		})
	}
}
