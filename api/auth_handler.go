package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/celestialmindworks/site-backend/auth"
	"github.com/celestialmindworks/site-backend/errs"
)

type authHandler struct {
	logger   zerolog.Logger
	renderer *renderer
	users    UserStore
	sessions *auth.SessionManager
}

func newAuthHandler(renderer *renderer, users UserStore, sessions *auth.SessionManager) authHandler {
	logger := log.With().Str("handler", "auth").Logger()

	return authHandler{
		logger:   logger,
		renderer: renderer,
		users:    users,
		sessions: sessions,
	}
}

func (h authHandler) showLogin() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.renderer.render(w, r, "login", pageData{Title: "Log in"})
	}
}

// login verifies the submitted credentials. Unknown usernames and wrong
// passwords produce the same message so usernames cannot be enumerated.
func (h authHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := strings.TrimSpace(r.FormValue("username"))
		password := strings.TrimSpace(r.FormValue("password"))

		user, err := h.users.FindByUsername(username)
		if err != nil && !errors.Is(err, errs.ErrNotFound) {
			h.logger.Error().Err(err).Msg("looking up user")
			h.renderer.render(w, r, "login", pageData{
				Title: "Log in",
				Flash: &Flash{Category: "danger", Message: "Something went wrong. Please try again later."},
			})
			return
		}

		if err == nil && auth.CheckPassword(password, user.PasswordHash) {
			if err := h.sessions.Issue(w, user.ID); err != nil {
				h.logger.Error().Err(err).Msg("issuing session")
				h.renderer.render(w, r, "login", pageData{
					Title: "Log in",
					Flash: &Flash{Category: "danger", Message: "Something went wrong. Please try again later."},
				})
				return
			}
			http.Redirect(w, r, "/admin/dashboard", http.StatusSeeOther)
			return
		}

		h.renderer.render(w, r, "login", pageData{
			Title: "Log in",
			Flash: &Flash{Category: "danger", Message: "Invalid username or password."},
		})
	}
}

func (h authHandler) logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.sessions.Clear(w)
		setFlash(w, "success", "You have been logged out.")
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}
