package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	return body
}

func TestWriteOK(t *testing.T) {
	w := httptest.NewRecorder()
	require.NoError(t, WriteOK(w, "Thank you"))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.Equal(t, "Thank you", decodeBody(t, w)["message"])
}

func TestWriteUnprocessableEntity(t *testing.T) {
	w := httptest.NewRecorder()
	details := []map[string]string{{"field": "full-name", "message": "Name must be alphabetic."}}
	require.NoError(t, WriteUnprocessableEntity(w, "Validation failed", details))

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "validation_failed", body["error"])
	assert.NotEmpty(t, body["details"])
}

func TestWriteInternalServerError(t *testing.T) {
	w := httptest.NewRecorder()
	require.NoError(t, WriteInternalServerError(w, ""))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Internal server error", decodeBody(t, w)["message"])
}
