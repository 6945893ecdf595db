package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

type fakeIssuer struct {
	payload json.RawMessage
	err     error
}

func (f *fakeIssuer) IssueToken(_ context.Context, _, _ string) (json.RawMessage, error) {
	return f.payload, f.err
}

func setupRouter(issuer TokenIssuer) *gin.Engine {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.POST("/auth/token", NewHandler(issuer).Token)
	return r
}

func postToken(r *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/auth/token", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestTokenPassesProviderPayloadThrough(t *testing.T) {
	payload := json.RawMessage(`{"access_token":"abc","token_type":"bearer","expires_in":3600}`)
	r := setupRouter(&fakeIssuer{payload: payload})

	w := postToken(r, `{"email":"owner@example.com","password":"secret"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w.Body.String() != string(payload) {
		t.Errorf("payload not passed through: %s", w.Body.String())
	}
}

func TestTokenMissingFields(t *testing.T) {
	r := setupRouter(&fakeIssuer{})

	for _, body := range []string{
		`{}`,
		`{"email":"owner@example.com"}`,
		`{"password":"secret"}`,
		`not json`,
	} {
		if w := postToken(r, body); w.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", body, w.Code)
		}
	}
}

func TestTokenInvalidCredentials(t *testing.T) {
	r := setupRouter(&fakeIssuer{err: ErrInvalidCredentials})

	w := postToken(r, `{"email":"owner@example.com","password":"wrong"}`)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}

	var body map[string]string
	json.Unmarshal(w.Body.Bytes(), &body)
	if body["detail"] != "Invalid credentials or provider error" {
		t.Errorf("unexpected detail %q", body["detail"])
	}
}

func TestGetUserAgainstFakeProvider(t *testing.T) {
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/v1/user" {
			http.NotFound(w, r)
			return
		}
		if r.Header.Get("Authorization") != "Bearer good-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		json.NewEncoder(w).Encode(User{ID: "user-7", Email: "owner@example.com"})
	}))
	defer provider.Close()

	client := NewClient(provider.URL, "anon-key")

	user, err := client.GetUser(context.Background(), "good-token")
	if err != nil {
		t.Fatalf("expected valid user, got %v", err)
	}
	if user.ID != "user-7" {
		t.Errorf("unexpected user %+v", user)
	}

	if _, err := client.GetUser(context.Background(), "bad-token"); err != ErrInvalidToken {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}
