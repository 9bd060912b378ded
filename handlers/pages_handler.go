package handlers

import (
	"html/template"
	"net/http"

	"go.uber.org/zap"
)

// PageHandler renders the server-side HTML pages
type PageHandler struct {
	templates *template.Template
	siteKey   string
	logger    *zap.Logger
}

// contactPageData is what the contact template receives; SiteKey is the
// public half of the challenge key pair.
type contactPageData struct {
	SiteKey string
}

// NewPageHandler creates a new PageHandler
func NewPageHandler(templates *template.Template, siteKey string, logger *zap.Logger) *PageHandler {
	return &PageHandler{templates: templates, siteKey: siteKey, logger: logger}
}

// HandleLanding handles GET /
func (h *PageHandler) HandleLanding(w http.ResponseWriter, r *http.Request) {
	h.render(w, "index.html", nil)
}

// HandleContact handles GET /contact
func (h *PageHandler) HandleContact(w http.ResponseWriter, r *http.Request) {
	h.render(w, "contact.html", contactPageData{SiteKey: h.siteKey})
}

func (h *PageHandler) render(w http.ResponseWriter, name string, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.templates.ExecuteTemplate(w, name, data); err != nil {
		h.logger.Error("template render failed", zap.String("template", name), zap.Error(err))
	}
}
