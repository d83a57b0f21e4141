package api

import "net/http"

// pageHandler serves the static marketing pages.
type pageHandler struct {
	renderer *renderer
}

func newPageHandler(renderer *renderer) pageHandler {
	return pageHandler{renderer: renderer}
}

func (h pageHandler) page(template, title string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.renderer.render(w, r, template, pageData{Title: title})
	}
}
