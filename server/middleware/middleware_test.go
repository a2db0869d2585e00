package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
})

func TestBearerAuth(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		statusCode int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"no scheme", "right", http.StatusUnauthorized},
		{"wrong scheme", "Basic right", http.StatusUnauthorized},
		{"too many parts", "Bearer right extra", http.StatusUnauthorized},
		{"wrong token", "Bearer wrong", http.StatusForbidden},
		{"correct token", "Bearer right", http.StatusOK},
		{"lowercase scheme", "bearer right", http.StatusOK},
	}

	handler := BearerAuth("right")(okHandler)
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/get_venue_info", nil)
			if test.header != "" {
				req.Header.Set("Authorization", test.header)
			}
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, test.statusCode, rr.Code)
			if test.statusCode != http.StatusOK {
				assert.Contains(t, rr.Body.String(), `"detail"`)
			}
		})
	}
}

func TestBearerAuth_DisabledWithoutToken(t *testing.T) {
	handler := BearerAuth("")(okHandler)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, httptest.NewRequest("GET", "/", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestRequestIDMiddleware(t *testing.T) {
	var seen string
	handler := RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestID(r.Context())
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest("GET", "/", nil))

	_, err := uuid.Parse(seen)
	require.NoError(t, err)
	assert.Equal(t, seen, rr.Header().Get(REQUEST_ID_HEADER))

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(REQUEST_ID_HEADER, "caller-id")
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	assert.Equal(t, "caller-id", seen)
}
