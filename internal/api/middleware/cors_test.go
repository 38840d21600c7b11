package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func corsHandler(origins []string) http.Handler {
	return CORS(origins)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
}

func doCORS(t *testing.T, handler http.Handler, method, origin string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, "/api/regions", http.NoBody)
	if origin != "" {
		req.Header.Set("Origin", origin)
	}
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

func TestCORS_AllowAll(t *testing.T) {
	handler := corsHandler([]string{"*"})

	w := doCORS(t, handler, http.MethodGet, "http://localhost:5173")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "GET, OPTIONS", w.Header().Get("Access-Control-Allow-Methods"))
}

func TestCORS_Allowlist(t *testing.T) {
	handler := corsHandler([]string{"https://dashboard.example.com"})

	t.Run("allowed origin", func(t *testing.T) {
		w := doCORS(t, handler, http.MethodGet, "https://dashboard.example.com")
		assert.Equal(t, "https://dashboard.example.com", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("unlisted origin gets no CORS headers", func(t *testing.T) {
		w := doCORS(t, handler, http.MethodGet, "https://evil.example.com")
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestCORS_Preflight(t *testing.T) {
	handler := corsHandler([]string{"*"})

	w := doCORS(t, handler, http.MethodOptions, "http://localhost:5173")

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestCORS_NoOriginHeader(t *testing.T) {
	handler := corsHandler([]string{"*"})

	w := doCORS(t, handler, http.MethodGet, "")

	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, http.StatusOK, w.Code)
}
