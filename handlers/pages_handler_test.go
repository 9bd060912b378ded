package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tupelotree/contact-backend/web"
	"go.uber.org/zap"
)

func newPageHandler(t *testing.T) *PageHandler {
	t.Helper()
	tmpl, err := web.ParseTemplates()
	require.NoError(t, err)
	return NewPageHandler(tmpl, "public-site-key", zap.NewNop())
}

func TestHandleLanding(t *testing.T) {
	h := newPageHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	h.HandleLanding(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "Tupelo Tree Services")
}

func TestHandleContact(t *testing.T) {
	h := newPageHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/contact", nil)
	w := httptest.NewRecorder()
	h.HandleContact(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `name="full-name"`)
	assert.Contains(t, body, `name="email-address"`)
	assert.Contains(t, body, `name="message"`)
	assert.Contains(t, body, `data-sitekey="public-site-key"`, "public challenge key is rendered")
}
