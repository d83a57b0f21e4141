package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/celestialmindworks/site-backend/models"
)

type contactHandler struct {
	logger   zerolog.Logger
	renderer *renderer
	messages ContactMessageStore
	mailer   Mailer
	notifyTo string
}

func newContactHandler(renderer *renderer, messages ContactMessageStore, mailer Mailer, notifyTo string) contactHandler {
	logger := log.With().Str("handler", "contact").Logger()

	return contactHandler{
		logger:   logger,
		renderer: renderer,
		messages: messages,
		mailer:   mailer,
		notifyTo: notifyTo,
	}
}

func (h contactHandler) show() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.renderer.render(w, r, "contact", pageData{Title: "Contact"})
	}
}

// submit validates the form, persists the message, and fires the
// notification email. A failed send is logged but never fails the request;
// the stored message is the system of record.
func (h contactHandler) submit() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimSpace(r.FormValue("name"))
		email := strings.TrimSpace(r.FormValue("email"))
		message := strings.TrimSpace(r.FormValue("message"))

		if name == "" || email == "" || message == "" {
			h.renderer.render(w, r, "contact", pageData{
				Title: "Contact",
				Flash: &Flash{Category: "danger", Message: "Please fill in all fields."},
			})
			return
		}

		if err := h.messages.Create(&models.ContactMessage{Name: name, Email: email, Message: message}); err != nil {
			h.logger.Error().Err(err).Msg("storing contact message")
			h.renderer.render(w, r, "contact", pageData{
				Title: "Contact",
				Flash: &Flash{Category: "danger", Message: "Something went wrong. Please try again later."},
			})
			return
		}

		if h.notifyTo != "" {
			body := fmt.Sprintf("Name: %s\nEmail: %s\n\nMessage:\n%s\n", name, email, message)
			if err := h.mailer.Send("New Contact Form Submission - Celestial Mindworks", body, []string{h.notifyTo}); err != nil {
				h.logger.Error().Err(err).Msg("sending contact notification email")
			}
		}

		setFlash(w, "success", "Thank you for reaching out. We will respond within 24-48 hours.")
		http.Redirect(w, r, "/contact", http.StatusSeeOther)
	}
}
