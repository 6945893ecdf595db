package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ashikraj78/menuMind/internal/auth"

	"github.com/gin-gonic/gin"
)

type fakeVerifier struct {
	users map[string]*auth.User
}

func (f *fakeVerifier) GetUser(_ context.Context, token string) (*auth.User, error) {
	user, ok := f.users[token]
	if !ok {
		return nil, auth.ErrInvalidToken
	}
	return user, nil
}

func setupRouter(verifier auth.Verifier) *gin.Engine {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/protected", AuthMiddleware(verifier), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetString("userID")})
	})
	return r
}

func doRequest(r *gin.Engine, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddlewareMissingHeader(t *testing.T) {
	r := setupRouter(&fakeVerifier{})
	if w := doRequest(r, ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestAuthMiddlewareBadFormat(t *testing.T) {
	r := setupRouter(&fakeVerifier{})

	for _, header := range []string{"token-only", "Basic abc123", "Bearer a b"} {
		if w := doRequest(r, header); w.Code != http.StatusUnauthorized {
			t.Errorf("%q: expected 401, got %d", header, w.Code)
		}
	}
}

func TestAuthMiddlewareInvalidToken(t *testing.T) {
	r := setupRouter(&fakeVerifier{users: map[string]*auth.User{}})
	if w := doRequest(r, "Bearer expired"); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	verifier := &fakeVerifier{users: map[string]*auth.User{
		"good-token": {ID: "user-7", Email: "owner@example.com"},
	}}
	r := setupRouter(verifier)

	w := doRequest(r, "Bearer good-token")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if body := w.Body.String(); body != `{"user_id":"user-7"}` {
		t.Errorf("unexpected body %s", body)
	}
}
