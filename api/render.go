package api

import (
	"encoding/base64"
	"html/template"
	"io/fs"
	"net/http"
	"path"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/celestialmindworks/site-backend/web"
)

// Flash is a one-shot status message shown on the next rendered page.
type Flash struct {
	Category string // "success" or "danger"
	Message  string
}

// pageData is the data every template render receives.
type pageData struct {
	Title    string
	Flash    *Flash
	LoggedIn bool
	Data     map[string]any
}

// renderer holds one parsed template per page, each combined with the
// shared layout.
type renderer struct {
	tmpl map[string]*template.Template
}

func newRenderer() (*renderer, error) {
	pages, err := fs.Glob(web.Templates, "templates/*.html")
	if err != nil {
		return nil, err
	}

	templates := map[string]*template.Template{}
	for _, page := range pages {
		if path.Base(page) == "layout.html" {
			continue
		}
		t, err := template.ParseFS(web.Templates, "templates/layout.html", page)
		if err != nil {
			return nil, err
		}
		name := strings.TrimSuffix(path.Base(page), ".html")
		templates[name] = t
	}
	return &renderer{tmpl: templates}, nil
}

// render executes the named page inside the layout. A flash set on a
// previous request is consumed here unless the handler passed one directly.
func (rn *renderer) render(w http.ResponseWriter, r *http.Request, name string, data pageData) {
	if data.Flash == nil {
		data.Flash = popFlash(w, r)
	}
	data.LoggedIn = principalFromCtx(r.Context()).IsAuthenticated()

	t, ok := rn.tmpl[name]
	if !ok {
		log.Error().Str("template", name).Msg("template not found")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := t.ExecuteTemplate(w, "layout", data); err != nil {
		log.Error().Err(err).Str("template", name).Msg("render error")
	}
}

const flashCookie = "flash"

// setFlash stores a one-shot message for the page rendered after the next
// redirect.
func setFlash(w http.ResponseWriter, category, message string) {
	value := base64.URLEncoding.EncodeToString([]byte(category + "|" + message))
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    value,
		Path:     "/",
		MaxAge:   60,
		HttpOnly: true,
	})
}

// popFlash reads and clears the flash cookie.
func popFlash(w http.ResponseWriter, r *http.Request) *Flash {
	cookie, err := r.Cookie(flashCookie)
	if err != nil {
		return nil
	}
	http.SetCookie(w, &http.Cookie{Name: flashCookie, Path: "/", MaxAge: -1, HttpOnly: true})

	decoded, err := base64.URLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return nil
	}
	parts := strings.SplitN(string(decoded), "|", 2)
	if len(parts) < 2 {
		return nil
	}
	return &Flash{Category: parts[0], Message: parts[1]}
}
