package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondError(t *testing.T) {
	tests := []struct {
		name   string
		write  func(w http.ResponseWriter)
		status int
	}{
		{name: "bad request", write: func(w http.ResponseWriter) { RespondBadRequest(w, "bad") }, status: http.StatusBadRequest},
		{name: "unauthorized", write: func(w http.ResponseWriter) { RespondUnauthorized(w) }, status: http.StatusUnauthorized},
		{name: "not found", write: func(w http.ResponseWriter) { RespondNotFound(w, "missing") }, status: http.StatusNotFound},
		{name: "conflict", write: func(w http.ResponseWriter) { RespondConflict(w, "taken") }, status: http.StatusConflict},
		{name: "unprocessable", write: func(w http.ResponseWriter) { RespondUnprocessable(w, "closed") }, status: http.StatusUnprocessableEntity},
		{name: "internal", write: func(w http.ResponseWriter) { RespondInternalError(w) }, status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tt.write(rec)

			assert.Equal(t, tt.status, rec.Code)
			assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")

			var body ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.status, body.Code)
			assert.NotEmpty(t, body.Message)
		})
	}
}

func TestRespondNoContent(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondNoContent(rec)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestDecodeJSON(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
	}

	var p payload
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Anna"}`))
	require.NoError(t, DecodeJSON(r, &p))
	assert.Equal(t, "Anna", p.Name)

	for _, body := range []string{`{"name":`, `{"unknown":1}`, `{"name":"a"}{"name":"b"}`, ``} {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		assert.Error(t, DecodeJSON(r, &p), body)
	}
}
