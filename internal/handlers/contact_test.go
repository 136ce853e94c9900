package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postContact(t *testing.T, h http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("POST", "/api/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestContactSubmit(t *testing.T) {
	h := routerForDoc(t, `[]`)

	w := postContact(t, h, `{"name":"Ada","email":"ada@example.com","message":"hello"}`)
	require.Equal(t, http.StatusAccepted, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"accepted"`)
	assert.Contains(t, w.Body.String(), `"id"`)
}

func TestContactValidation(t *testing.T) {
	h := routerForDoc(t, `[]`)

	cases := []struct {
		name string
		body string
		want string
	}{
		{"missing name", `{"email":"a@b.c","message":"m"}`, "name is required"},
		{"missing email", `{"name":"Ada","message":"m"}`, "email is required"},
		{"bad email", `{"name":"Ada","email":"nope","message":"m"}`, "email is not valid"},
		{"missing message", `{"name":"Ada","email":"a@b.c"}`, "message is required"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := postContact(t, h, tc.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), tc.want)
		})
	}
}

func TestContactBadBody(t *testing.T) {
	h := routerForDoc(t, `[]`)

	w := postContact(t, h, `{not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}
