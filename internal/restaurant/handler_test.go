package restaurant

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type memoryRepo struct {
	byOwner map[string]*Restaurant
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{byOwner: make(map[string]*Restaurant)}
}

func (m *memoryRepo) Create(_ context.Context, r *Restaurant) error {
	r.ID = uuid.New()
	m.byOwner[r.OwnerID] = r
	return nil
}

func (m *memoryRepo) ExistsByOwner(_ context.Context, ownerID string) (bool, error) {
	_, ok := m.byOwner[ownerID]
	return ok, nil
}

func (m *memoryRepo) GetByOwner(_ context.Context, ownerID string) (*Restaurant, error) {
	r, ok := m.byOwner[ownerID]
	if !ok {
		return nil, ErrNotFound
	}
	return r, nil
}

func (m *memoryRepo) GetByID(_ context.Context, id uuid.UUID) (*Restaurant, error) {
	for _, r := range m.byOwner {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, ErrNotFound
}

func (m *memoryRepo) UpdateName(_ context.Context, id uuid.UUID, name string) (*Restaurant, error) {
	r, err := m.GetByID(context.Background(), id)
	if err != nil {
		return nil, err
	}
	r.Name = name
	return r, nil
}

func setupRouter(userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)

	handler := NewHandler(NewService(newMemoryRepo()))

	r := gin.New()
	r.Use(func(c *gin.Context) {
		if userID != "" {
			c.Set("userID", userID)
		}
	})
	r.POST("/restaurants", handler.Create)
	r.GET("/restaurants/me", handler.GetMine)
	r.PUT("/restaurants/me", handler.UpdateMine)
	return r
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateRestaurant(t *testing.T) {
	r := setupRouter("owner-1")

	w := doJSON(r, http.MethodPost, "/restaurants", `{"name":"Spice Route"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var created Restaurant
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if created.Name != "Spice Route" || created.OwnerID != "owner-1" {
		t.Errorf("unexpected restaurant %+v", created)
	}
	if created.ID == uuid.Nil {
		t.Error("expected assigned id")
	}
}

func TestCreateRestaurantConflict(t *testing.T) {
	r := setupRouter("owner-1")

	if w := doJSON(r, http.MethodPost, "/restaurants", `{"name":"First"}`); w.Code != http.StatusCreated {
		t.Fatalf("first create failed: %d", w.Code)
	}

	w := doJSON(r, http.MethodPost, "/restaurants", `{"name":"Second"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	var body map[string]string
	json.Unmarshal(w.Body.Bytes(), &body)
	if body["detail"] != "User already owns a restaurant" {
		t.Errorf("unexpected detail %q", body["detail"])
	}
}

func TestGetMineNotFound(t *testing.T) {
	r := setupRouter("owner-1")

	w := doJSON(r, http.MethodGet, "/restaurants/me", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestGetMineAfterCreate(t *testing.T) {
	r := setupRouter("owner-1")

	doJSON(r, http.MethodPost, "/restaurants", `{"name":"Spice Route"}`)

	w := doJSON(r, http.MethodGet, "/restaurants/me", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var fetched Restaurant
	json.Unmarshal(w.Body.Bytes(), &fetched)
	if fetched.Name != "Spice Route" {
		t.Errorf("unexpected name %q", fetched.Name)
	}
}

func TestUpdateMine(t *testing.T) {
	r := setupRouter("owner-1")

	doJSON(r, http.MethodPost, "/restaurants", `{"name":"Old Name"}`)

	w := doJSON(r, http.MethodPut, "/restaurants/me", `{"name":"New Name"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var updated Restaurant
	json.Unmarshal(w.Body.Bytes(), &updated)
	if updated.Name != "New Name" {
		t.Errorf("unexpected name %q", updated.Name)
	}
}

func TestUpdateMineWithoutRestaurant(t *testing.T) {
	r := setupRouter("owner-1")

	w := doJSON(r, http.MethodPut, "/restaurants/me", `{"name":"New Name"}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
