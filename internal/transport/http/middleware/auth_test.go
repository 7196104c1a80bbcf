package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

type staticVerifier struct{ ok bool }

func (v staticVerifier) Verify(string) bool { return v.ok }

func protected(v TokenVerifier) http.Handler {
	return AdminAuth(v)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
}

func TestAdminAuth_MissingHeader(t *testing.T) {
	rr := httptest.NewRecorder()
	protected(staticVerifier{ok: true}).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestAdminAuth_InvalidToken(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("Authorization", "Bearer bogus")
	rr := httptest.NewRecorder()
	protected(staticVerifier{ok: false}).ServeHTTP(rr, r)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestAdminAuth_ValidToken(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("Authorization", "Bearer good")
	rr := httptest.NewRecorder()
	protected(staticVerifier{ok: true}).ServeHTTP(rr, r)
	assert.Equal(t, http.StatusOK, rr.Code)
}
