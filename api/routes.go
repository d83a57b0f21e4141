package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/celestialmindworks/site-backend/web"
)

// setupRoutes mounts the public pages, the login flow, and the protected
// admin area.
func setupRoutes(r chi.Router, handlers *routeHandlers, loginLimiter *rateLimiter) {
	// Public marketing pages
	r.Get("/", handlers.pageHandler.page("home", "Home"))
	r.Get("/about", handlers.pageHandler.page("about", "About"))
	r.Get("/modalities", handlers.pageHandler.page("modalities", "Modalities"))
	r.Get("/approach", handlers.pageHandler.page("approach", "Approach"))
	r.Get("/faq", handlers.pageHandler.page("faq", "FAQ"))

	// Blog
	r.Get("/blog", handlers.blogHandler.list())
	r.Get("/blog/{slug}", handlers.blogHandler.show())

	// Contact form
	r.Get("/contact", handlers.contactHandler.show())
	r.Post("/contact", handlers.contactHandler.submit())

	// Login, throttled per client address
	r.Get("/login", handlers.authHandler.showLogin())
	r.With(loginLimiter.Limit).Post("/login", handlers.authHandler.login())

	// Admin area
	r.Group(func(r chi.Router) {
		r.Use(requireAuth)

		r.Get("/logout", handlers.authHandler.logout())
		r.Get("/admin/dashboard", handlers.adminHandler.dashboard())
		r.Get("/admin/blog/new", handlers.adminHandler.newPostForm())
		r.Post("/admin/blog/new", handlers.adminHandler.createPost())
		r.Post("/admin/blog/delete/{postID}", handlers.adminHandler.deletePost())
		r.Get("/admin/messages", handlers.adminHandler.listMessages())
	})

	r.Handle("/static/*", http.FileServer(http.FS(web.Static)))
}
